package gemini

import (
	"prepmate/server/internal/llm"
	"prepmate/server/internal/prompts"
)

// Register Gemini provider on package import
func init() {
	llm.RegisterProvider("gemini", func() (llm.Provider, error) {
		config, err := NewConfig()
		if err != nil {
			return nil, err
		}
		promptManager, err := prompts.NewPromptManager()
		if err != nil {
			return nil, err
		}
		return NewClient(config, promptManager)
	})
}
