package extract

// genericStopWords are project-description terms too generic to identify a
// domain. A keyword or chunk made only of these is discarded.
var genericStopWords = map[string]struct{}{
	"system": {}, "software": {}, "application": {}, "project": {},
	"platform": {}, "user": {}, "allow": {}, "enable": {}, "provide": {},
	"make": {}, "create": {}, "build": {}, "develop": {}, "feature": {},
	"functionality": {},
}

// functionWords are closed-class words that never contribute keywords:
// determiners, pronouns, prepositions, conjunctions, modals and auxiliaries.
var functionWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "some": {}, "any": {}, "each": {}, "every": {}, "all": {},
	"both": {}, "either": {}, "neither": {}, "no": {}, "such": {},

	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {}, "its": {},
	"their": {}, "our": {}, "your": {}, "his": {}, "who": {}, "whom": {},
	"whose": {}, "which": {}, "what": {}, "where": {}, "when": {}, "why": {},
	"how": {},

	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "with": {},
	"about": {}, "against": {}, "between": {}, "into": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"to": {}, "from": {}, "up": {}, "down": {}, "of": {}, "off": {},
	"over": {}, "under": {}, "via": {}, "within": {}, "without": {},

	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"if": {}, "then": {}, "than": {}, "because": {}, "while": {},
	"although": {}, "as": {}, "also": {}, "not": {},

	"be": {}, "is": {}, "are": {}, "was": {}, "were": {}, "been": {},
	"being": {}, "am": {}, "do": {}, "does": {}, "did": {}, "have": {},
	"has": {}, "had": {}, "can": {}, "could": {}, "may": {}, "might": {},
	"must": {}, "shall": {}, "should": {}, "will": {}, "would": {},
	"there": {}, "here": {},
}

// verbLexicon lists verbs common in project descriptions, including
// inflected forms that would otherwise default to nouns. Gerunds absent from
// this set ("shopping", "billing") deliberately stay nominal.
var verbLexicon = map[string]struct{}{
	"browse": {}, "browses": {}, "browsed": {}, "browsing": {},
	"buy": {}, "buys": {}, "bought": {}, "buying": {},
	"sell": {}, "sells": {}, "sold": {}, "selling": {},
	"manage": {}, "manages": {}, "managed": {}, "managing": {},
	"track": {}, "tracks": {}, "tracked": {},
	"view": {}, "views": {}, "viewed": {}, "viewing": {},
	"search": {}, "searches": {}, "searched": {}, "searching": {},
	"send": {}, "sends": {}, "sent": {}, "sending": {},
	"receive": {}, "receives": {}, "received": {}, "receiving": {},
	"pay": {}, "pays": {}, "paid": {}, "paying": {},
	"borrow": {}, "borrows": {}, "borrowed": {}, "borrowing": {},
	"lend": {}, "lends": {}, "lent": {}, "lending": {},
	"store": {}, "stores": {}, "stored": {}, "storing": {},
	"handle": {}, "handles": {}, "handled": {}, "handling": {},
	"support": {}, "supports": {}, "supported": {}, "supporting": {},
	"offer": {}, "offers": {}, "offered": {}, "offering": {},
	"let": {}, "lets": {}, "letting": {},
	"want": {}, "wants": {}, "wanted": {}, "wanting": {},
	"need": {}, "needs": {}, "needed": {}, "needing": {},
	"use": {}, "uses": {}, "used": {}, "using": {},
	"run": {}, "runs": {}, "ran": {}, "running": {},
	"add": {}, "adds": {}, "added": {}, "adding": {},
	"place": {}, "places": {}, "placed": {}, "placing": {},
	"submit": {}, "submits": {}, "submitted": {}, "submitting": {},
	"register": {}, "registers": {}, "registered": {}, "registering": {},
	"book": {}, "books": {}, "booked": {}, "booking": {},
	"schedule": {}, "schedules": {}, "scheduled": {}, "scheduling": {},
	"become": {}, "becomes": {}, "became": {}, "becoming": {},
	"include": {}, "includes": {}, "included": {}, "including": {},
	"help": {}, "helps": {}, "helped": {}, "helping": {},
	"keep": {}, "keeps": {}, "kept": {}, "keeping": {},
}

// adjectiveLexicon lists adjectives that prefix domain noun phrases.
var adjectiveLexicon = map[string]struct{}{
	"online": {}, "digital": {}, "mobile": {}, "virtual": {}, "electronic": {},
	"new": {}, "small": {}, "large": {}, "local": {}, "global": {},
	"simple": {}, "modern": {}, "medical": {}, "financial": {},
	"personal": {}, "public": {}, "internal": {}, "external": {},
	"available": {}, "multiple": {}, "several": {}, "various": {},
	"easy": {}, "free": {}, "secure": {}, "custom": {},
}
