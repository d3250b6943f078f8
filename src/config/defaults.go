package config

// DefaultPath is where the config file lives when no override is given.
const DefaultPath = "bot_config.json"

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *BotConfig {
	return &BotConfig{
		BotName:         "ChatPal",
		APIKey:          "",
		Model:           "qwen3-235b-a22b",
		MaxHistory:      10,
		MaxTokens:       2000,
		Temperature:     0.8,
		MaxContextChars: 8000,
		SavePath:        "conversations",
		Username:        "user",
	}
}
