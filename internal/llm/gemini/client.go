package gemini

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/genai"

	"prepmate/server/internal/llm"
	"prepmate/server/internal/models"
	"prepmate/server/internal/prompts"
)

// Client is the Gemini-backed LLM provider. The underlying genai client is
// swapped wholesale on credential rotation; in-flight calls keep the client
// they started with.
type Client struct {
	mu      sync.RWMutex
	client  *genai.Client
	config  *Config
	prompts prompts.PromptProvider
}

func NewClient(config *Config, promptManager prompts.PromptProvider) (*Client, error) {
	c := &Client{
		config:  config,
		prompts: promptManager,
	}
	if config.APIKey != "" {
		client, err := newGenaiClient(config.APIKey)
		if err != nil {
			return nil, err
		}
		c.client = client
	}
	return c, nil
}

func newGenaiClient(apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}
	return client, nil
}

// RotateCredential replaces the API key at runtime. Subsequent calls use the
// new key immediately.
func (c *Client) RotateCredential(apiKey string) error {
	client, err := newGenaiClient(apiKey)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.client = client
	c.config.APIKey = apiKey
	c.mu.Unlock()
	return nil
}

// current returns a snapshot of the genai client, or an error when no
// credential has been configured yet.
func (c *Client) current() (*genai.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.client == nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "No API key configured",
		}
	}
	return c.client, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	client, err := c.current()
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		code := llm.ErrCodeServiceDown
		if ctx.Err() != nil {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     code,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text := result.Text()
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}

// GenerateQuestions asks the model for interview questions, one per
// paragraph, and splits them out of the response.
func (c *Client) GenerateQuestions(ctx context.Context, role, questionType, difficulty string, count int) ([]string, error) {
	prompt, err := c.prompts.BuildPrompt("questions", map[string]string{
		"Role":       role,
		"Type":       questionType,
		"Difficulty": difficulty,
		"Count":      strconv.Itoa(count),
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build prompt",
			Err:      err,
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, paragraph := range strings.Split(text, "\n\n") {
		if q := strings.TrimSpace(paragraph); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Response contained no questions",
		}
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// EvaluateAnswer asks the model for a structured evaluation and parses it
// into the shared feedback shape. Anything that does not parse or validate
// is reported as a provider error so the caller can fall back.
func (c *Client) EvaluateAnswer(ctx context.Context, question, answer, role, questionType, difficulty string) (*models.FeedbackContent, error) {
	prompt, err := c.prompts.BuildPrompt("evaluate", map[string]string{
		"Question":   question,
		"Answer":     answer,
		"Role":       role,
		"Type":       questionType,
		"Difficulty": difficulty,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build prompt",
			Err:      err,
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var feedback models.FeedbackContent
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &feedback); err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Response was not valid evaluation JSON",
			Err:      err,
		}
	}
	if err := feedback.Validate(); err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Evaluation failed validation",
			Err:      err,
		}
	}
	return &feedback, nil
}

// Probe issues a minimal generation call to verify the current credential.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.generate(ctx, "Reply with the single word OK.")
	return err
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// stripCodeFences unwraps ```json ... ``` blocks that models like to emit
// around structured output.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
