package gemini

import "os"

// holds Gemini-specific configuration. An empty APIKey is allowed: the
// client then fails fast on every call and the caller's fallback takes over.
type Config struct {
	APIKey string
	Model  string
}

func NewConfig() (*Config, error) {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash" // default model
	}

	return &Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}, nil
}
