package classify

import (
	"strings"

	"github.com/dtnitsch/reqscope/pkg/extract"
)

// lexicalFeatureCount is the width of the feature block appended by
// AppendLexicalFeatures.
const lexicalFeatureCount = 5

// frKeywords are action words typical of functional requirements.
var frKeywords = []string{
	"shall", "must", "will", "allow", "enable", "support", "provide",
	"create", "delete", "update", "read", "write", "display", "send",
	"receive", "authenticate", "authorize", "login", "logout", "register",
	"search", "filter", "sort", "upload", "download", "export", "import",
	"generate", "validate", "calculate", "schedule", "notify", "store",
	"retrieve", "sync", "merge", "submit", "process", "view", "add",
	"remove", "edit", "modify", "insert", "select", "query", "fetch",
}

// nfrKeywords are quality-attribute words across all NFR sub-categories,
// used only as a coarse count feature.
var nfrKeywords = []string{
	"fast", "response time", "latency", "throughput", "performance",
	"benchmark", "optimize", "scalable", "scalability", "concurrent",
	"load", "stress", "timeout", "requests per second",
	"encrypt", "encryption", "secure", "security", "authentication",
	"authorization", "access control", "oauth", "ssl", "tls", "https",
	"password", "credential", "audit", "vulnerability", "confidentiality",
	"integrity", "two-factor", "multi-factor", "firewall",
	"user friendly", "user-friendly", "usability", "intuitive",
	"easy to use", "accessibility", "accessible", "user experience",
	"user interface", "responsive", "navigation", "error message",
	"reliability", "reliable", "fault tolerant", "recovery", "backup",
	"restore", "redundancy", "failover", "availability", "uptime",
	"downtime", "disaster recovery", "high availability", "durability",
	"elastic", "sharding", "partitioning", "cluster", "load balancing",
	"capacity", "concurrent users",
	"maintainable", "maintainability", "modular", "extensible", "reusable",
	"refactor", "code quality", "documentation", "testable", "logging",
	"monitoring", "observability",
	"portable", "portability", "cross-platform", "compatible",
	"compatibility", "interoperability", "migration", "containerized",
	"gdpr", "hipaa", "compliance", "compliant", "regulation", "privacy",
	"data protection", "license", "consent", "audit trail", "pii",
}

// KeywordFeatures counts FR and NFR keyword hits in the text, by substring
// presence, mirroring how the classifiers were trained.
func KeywordFeatures(text string) (frHits, nfrHits int) {
	lower := strings.ToLower(text)
	for _, kw := range frKeywords {
		if strings.Contains(lower, kw) {
			frHits++
		}
	}
	for _, kw := range nfrKeywords {
		if strings.Contains(lower, kw) {
			nfrHits++
		}
	}
	return frHits, nfrHits
}

// POSFeatures counts verbs, nouns and adjectives using the lexical tagger.
func POSFeatures(text string) (verbs, nouns, adjectives int) {
	for _, tok := range extract.Tag(text) {
		switch tok.POS {
		case extract.POSVerb:
			verbs++
		case extract.POSNoun, extract.POSProperNoun:
			nouns++
		case extract.POSAdjective:
			adjectives++
		}
	}
	return verbs, nouns, adjectives
}

// AppendLexicalFeatures appends the in-repo feature block to a base vector
// (typically the external TF-IDF terms) in the fixed order the models were
// trained with: FR hits, NFR hits, verb count, noun count, adjective count.
func AppendLexicalFeatures(base []float64, text string) []float64 {
	fr, nfr := KeywordFeatures(text)
	verbs, nouns, adjectives := POSFeatures(text)
	return append(base,
		float64(fr), float64(nfr),
		float64(verbs), float64(nouns), float64(adjectives))
}
