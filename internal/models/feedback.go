package models

import "fmt"

// FeedbackContent is the evaluation of one submitted answer. The remote
// provider and the local heuristic scorer both produce this exact shape.
type FeedbackContent struct {
	OverallScore    int      `json:"overallScore"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	SuggestedAnswer string   `json:"suggestedAnswer"`
}

// Validate checks the structural constraints on an evaluation, used to
// reject malformed provider responses before they reach storage.
func (f *FeedbackContent) Validate() error {
	if f.OverallScore < 0 || f.OverallScore > 100 {
		return fmt.Errorf("overallScore %d out of range [0,100]", f.OverallScore)
	}
	if f.SuggestedAnswer == "" {
		return fmt.Errorf("suggestedAnswer must not be empty")
	}
	return nil
}
