package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into the binary at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// PromptProvider is implemented by the manager and by test doubles.
type PromptProvider interface {
	BuildPrompt(mode string, data map[string]string) (string, error)
}

type PromptManager struct {
	prompts map[string]string // mode -> prompt template
}

// loaded prompt template
type PromptTemplate struct {
	BasePrompt string `yaml:"base_prompt"`
}

// creates a new prompt manager and loads templates
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[string]string),
	}
	if err := pm.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return pm, nil
}

// BuildPrompt fills the template for the given mode with the provided data.
// Placeholders use the {{.Key}} form; simple string replacement is enough
// here, no template engine needed.
func (pm *PromptManager) BuildPrompt(mode string, data map[string]string) (string, error) {
	template, exists := pm.prompts[mode]
	if !exists {
		return "", fmt.Errorf("template not found for mode: %s", mode)
	}

	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	if strings.Contains(result, "{{.") {
		return "", fmt.Errorf("unfilled placeholder in template %q", mode)
	}
	return result, nil
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (pm *PromptManager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var promptTemplate PromptTemplate
		if err := yaml.Unmarshal(data, &promptTemplate); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}
		if promptTemplate.BasePrompt == "" {
			return fmt.Errorf("template file %s has no base_prompt", entry.Name())
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		pm.prompts[name] = promptTemplate.BasePrompt
	}

	if len(pm.prompts) == 0 {
		return fmt.Errorf("no prompt templates found")
	}
	return nil
}
