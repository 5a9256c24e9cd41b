package models

// ProjectProfile is the keyword profile built once per project
// initialization. BaseKeywords are the raw extracted terms, Keywords the
// expanded profile used for scoring.
type ProjectProfile struct {
	Description  string   `json:"description"`
	Domain       string   `json:"domain"`
	BaseKeywords []string `json:"base_keywords"`
	Keywords     []string `json:"expanded_keywords"`
}
