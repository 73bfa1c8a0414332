// Package llm provides the language-model client used for skill extraction.
// The rest of the system treats the model as a black box: given a prompt and
// raw text, produce a structured payload.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: extraction, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning and structured output
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}
