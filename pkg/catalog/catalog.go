// Package catalog holds the curated universal requirement keyword catalog:
// phrases that mark a requirement as relevant to any software project
// regardless of its domain (login, performance, backup, ...). The catalog is
// fixed domain knowledge, not configuration, so it lives in code as
// enumerated constants.
package catalog

// Category groups trigger phrases under a semantic category. Declaration
// order is significant: Flatten preserves first-occurrence order, which fixes
// which phrase gets cited when several match.
type Category struct {
	Name    string
	Phrases []string
}

// Categories is the full curated catalog.
var Categories = []Category{
	{
		Name: "authentication",
		Phrases: []string{
			"login", "log in", "signin", "sign in", "signup", "sign up",
			"register", "registration", "authentication", "authorize", "authorization",
			"logout", "log out", "signout", "sign out", "password", "passphrase",
			"credentials", "token", "session", "two-factor", "2fa", "mfa",
			"multi-factor", "biometric", "sso", "single sign-on", "oauth",
			"saml", "jwt", "api key", "access token", "refresh token",
		},
	},
	{
		Name: "account",
		Phrases: []string{
			"account", "profile", "user profile", "my account", "user account",
			"account settings", "personal information", "update profile",
			"delete account", "deactivate account", "account recovery",
			"forgot password", "reset password", "change password",
			"email verification", "verify email", "account verification",
		},
	},
	{
		Name: "security",
		Phrases: []string{
			"secure", "security", "encrypt", "encryption", "decrypt", "decryption",
			"privacy", "private", "confidential", "gdpr", "compliance",
			"data protection", "ssl", "tls", "https", "certificate",
			"firewall", "vulnerability", "penetration test", "audit",
			"access control", "permission", "role", "privilege",
			"authentication", "integrity", "confidentiality", "availability",
			"breach", "attack", "threat", "risk", "malware", "virus",
			"phishing", "secure connection", "end-to-end encryption",
			"data masking", "anonymization", "tokenization", "hashing",
			"digital signature", "public key", "private key",
		},
	},
	{
		Name: "performance",
		Phrases: []string{
			"performance", "fast", "speed", "quick", "responsive",
			"response time", "latency", "throughput", "bandwidth",
			"load time", "page load", "render time", "ttfb",
			"time to first byte", "optimization", "optimize", "cache",
			"caching", "cdn", "content delivery", "compression",
			"minification", "lazy load", "prefetch", "bottleneck",
			"benchmark", "metric", "kpi", "sla", "uptime",
			"downtime", "availability", "concurrent", "parallel processing",
		},
	},
	{
		Name: "scalability",
		Phrases: []string{
			"scalable", "scalability", "scale", "scaling", "horizontal scaling",
			"vertical scaling", "scale up", "scale down", "auto-scaling",
			"elastic", "elasticity", "load balancing", "load balancer",
			"distributed", "microservices", "cluster", "clustering",
			"replication", "sharding", "partitioning", "high availability",
			"fault tolerance", "redundancy", "capacity", "throughput",
			"resource allocation", "containerization", "kubernetes",
			"docker", "orchestration", "cloud native",
		},
	},
	{
		Name: "reliability",
		Phrases: []string{
			"reliable", "reliability", "stable", "stability", "robust",
			"fault tolerant", "fault tolerance", "resilient", "resilience",
			"uptime", "availability", "high availability", "99.9%",
			"sla", "service level agreement", "disaster recovery",
			"backup", "restore", "failover", "redundancy", "redundant",
			"recovery point", "rpo", "recovery time", "rto",
			"business continuity", "incident response", "monitoring",
			"alerting", "health check", "heartbeat", "graceful degradation",
			"circuit breaker", "retry", "timeout", "error handling",
		},
	},
	{
		Name: "maintainability",
		Phrases: []string{
			"maintainable", "maintainability", "maintenance", "maintain",
			"code quality", "clean code", "refactor", "refactoring",
			"technical debt", "documentation", "documented", "comment",
			"readable", "readability", "modular", "modularity",
			"reusable", "reusability", "testable", "testability",
			"debugging", "troubleshooting", "logging", "log",
			"version control", "git", "code review", "peer review",
			"best practices", "coding standards", "design pattern",
			"solid principles", "dry", "kiss", "yagni",
			"continuous integration", "ci/cd", "automated testing",
			"unit test", "integration test", "regression test",
		},
	},
	{
		Name: "usability",
		Phrases: []string{
			"usable", "usability", "user friendly", "user-friendly",
			"easy to use", "intuitive", "accessible", "accessibility",
			"wcag", "ada compliant", "screen reader", "keyboard navigation",
			"interface", "ui", "user interface", "ux", "user experience",
			"design", "layout", "navigation", "menu", "search",
			"filter", "sort", "responsive", "mobile friendly",
			"mobile-friendly", "adaptive", "cross-browser", "compatibility",
			"consistency", "feedback", "error message", "help",
			"tutorial", "onboarding", "tooltip", "wizard",
			"affordance", "visibility", "learnability", "memorability",
		},
	},
	{
		Name: "portability",
		Phrases: []string{
			"portable", "portability", "cross-platform", "platform independent",
			"compatibility", "compatible", "interoperability", "interoperable",
			"migration", "migrate", "export", "import", "transfer",
			"standard", "standardized", "api", "rest api", "web service",
			"integration", "integrate", "plugin", "extension", "adapter",
			"windows", "linux", "mac", "ios", "android",
			"browser support", "mobile", "desktop", "web", "cloud",
			"on-premise", "hybrid", "container", "virtualization",
			"backward compatible", "forward compatible", "legacy support",
		},
	},
	{
		Name: "legal",
		Phrases: []string{
			"legal", "compliance", "compliant", "regulation", "regulatory",
			"gdpr", "ccpa", "hipaa", "pci dss", "sox", "sarbanes-oxley",
			"terms of service", "tos", "terms and conditions", "privacy policy",
			"cookie policy", "eula", "license", "licensing", "copyright",
			"trademark", "intellectual property", "data protection",
			"right to be forgotten", "data retention", "consent",
			"opt-in", "opt-out", "disclosure", "audit trail",
			"legal notice", "disclaimer", "liability", "indemnification",
			"jurisdiction", "governing law", "dispute resolution",
			"age verification", "age restriction", "parental consent",
		},
	},
	{
		Name: "core_features",
		Phrases: []string{
			"dashboard", "home", "homepage", "main page", "overview",
			"settings", "preferences", "configuration", "options",
			"notifications", "alerts", "messages", "inbox",
			"profile", "user profile", "my profile", "edit profile",
			"search", "find", "lookup", "query", "filter", "sort",
			"upload", "download", "import", "export", "save",
			"delete", "remove", "edit", "update", "modify",
			"create", "add", "new", "cancel", "submit",
			"back", "forward", "next", "previous", "close",
			"menu", "navigation", "sidebar", "header", "footer",
		},
	},
	{
		Name: "data_management",
		Phrases: []string{
			"data", "database", "storage", "save", "retrieve",
			"query", "search", "index", "archive", "backup",
			"restore", "sync", "synchronization", "replication",
			"migration", "import", "export", "transfer", "copy",
			"paste", "duplicate", "delete", "remove", "purge",
			"version", "revision", "history", "changelog", "audit log",
			"metadata", "schema", "structure", "format", "validation",
			"integrity", "consistency", "transaction", "commit", "rollback",
		},
	},
	{
		Name: "communication",
		Phrases: []string{
			"notification", "alert", "message", "email", "sms",
			"push notification", "in-app notification", "reminder",
			"announcement", "news", "update", "bulletin",
			"contact", "support", "help", "faq", "feedback",
			"chat", "messaging", "comment", "reply", "share",
			"invite", "collaboration", "collaborate", "team",
			"subscribe", "unsubscribe", "newsletter", "digest",
		},
	},
	{
		Name: "error_support",
		Phrases: []string{
			"error", "exception", "failure", "issue", "problem",
			"bug", "defect", "crash", "freeze", "hang",
			"warning", "caution", "notice", "info", "information",
			"help", "support", "assistance", "guide", "documentation",
			"manual", "faq", "frequently asked questions", "troubleshooting",
			"contact us", "customer support", "tech support", "helpdesk",
			"ticket", "report", "feedback", "suggestion", "improvement",
		},
	},
	{
		Name: "i18n_l10n",
		Phrases: []string{
			"language", "locale", "localization", "internationalization",
			"translation", "translate", "multilingual", "regional",
			"timezone", "time zone", "date format", "currency",
			"units", "measurement", "character encoding", "utf-8",
			"unicode", "rtl", "right-to-left", "ltr", "left-to-right",
		},
	},
	{
		Name: "quality",
		Phrases: []string{
			"quality", "standard", "excellence", "best practice",
			"accuracy", "accurate", "precision", "correct", "correctness",
			"consistency", "consistent", "predictable", "deterministic",
			"efficiency", "efficient", "effective", "effectiveness",
			"robustness", "durability", "longevity", "sustainability",
		},
	},
	{
		Name: "testing",
		Phrases: []string{
			"test", "testing", "validation", "verify", "verification",
			"quality assurance", "qa", "quality control", "qc",
			"unit test", "integration test", "system test", "acceptance test",
			"regression test", "smoke test", "sanity test", "stress test",
			"load test", "performance test", "security test", "penetration test",
			"automated test", "manual test", "test case", "test coverage",
			"mock", "stub", "fixture", "assertion", "debug", "debugging",
		},
	},
}

// Flatten collapses categories into a single phrase list, dropping
// duplicates while preserving first-occurrence order.
func Flatten(categories []Category) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, cat := range categories {
		for _, p := range cat.Phrases {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// Universal returns the flattened catalog phrase list. The returned slice is
// shared and must not be mutated.
func Universal() []string {
	return universalPhrases
}

var universalPhrases = Flatten(Categories)
