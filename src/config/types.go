// Package config loads and validates the bot configuration file.
package config

// BotConfig is the immutable per-session configuration snapshot. It is loaded
// once at startup and never mutated afterward.
type BotConfig struct {
	// BotName is the display name of the bot, also used in save filenames.
	BotName string `json:"bot_name" validate:"required"`

	// APIKey authenticates against the chat-completions endpoint.
	APIKey string `json:"api_key"`

	// Model is the model identifier sent with every request.
	Model string `json:"model" validate:"required"`

	// MaxHistory is the advertised memory capacity, shown in the banner.
	MaxHistory int `json:"max_history" validate:"min=1"`

	// MaxTokens caps the completion length requested from the model.
	MaxTokens int `json:"max_tokens" validate:"min=1"`

	// Temperature is the sampling temperature, 0 to 2.
	Temperature float64 `json:"temperature" validate:"min=0,max=2"`

	// MaxContextChars is the context budget used by conversation trimming.
	// Content length in characters stands in for token count.
	MaxContextChars int `json:"max_context_chars" validate:"min=1"`

	// SavePath is the directory conversations are saved into.
	SavePath string `json:"save_path" validate:"required"`

	// Username is the display name of the user, also used in save filenames.
	Username string `json:"username" validate:"required"`

	// SystemPrompt, when set, overrides the built-in persona.
	SystemPrompt string `json:"system_prompt,omitempty"`
}
