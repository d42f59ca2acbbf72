package dto

// ScoringResult carries everything the result view and the persisted row
// need from one classifier invocation.
type ScoringResult struct {
	CreditScore int     `json:"credit_score"`
	Category    string  `json:"credit_category"`
	Color       string  `json:"color"`
	Decision    string  `json:"decision"`
	Risk        string  `json:"risk"`
	Confidence  float64 `json:"confidence"` // winning-class probability, 0..1
}
