package llm

import (
	"context"

	"prepmate/server/internal/models"
)

// defines the interface for LLM providers
type Provider interface {
	GenerateQuestions(ctx context.Context, role, questionType, difficulty string, count int) ([]string, error)
	EvaluateAnswer(ctx context.Context, question, answer, role, questionType, difficulty string) (*models.FeedbackContent, error)
	// Probe performs a cheap call to check that the current credential is
	// usable, without mutating any state.
	Probe(ctx context.Context) error
	// RotateCredential swaps the API key at runtime. Later calls use the new
	// key immediately; calls already in flight keep the old one.
	RotateCredential(apiKey string) error
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
