package qwenclient

import "chatpal/src/conversation"

// ChatRequest is the chat-completions request body. EnableThinking is always
// serialized (no omitempty) because the endpoint must see it disabled.
type ChatRequest struct {
	Model          string              `json:"model"`
	Messages       []conversation.Turn `json:"messages"`
	Temperature    float64             `json:"temperature"`
	MaxTokens      int                 `json:"max_tokens"`
	EnableThinking bool                `json:"enable_thinking"`
}

// ChatResponse is the chat-completions response body. Usage is optional; a
// missing block means the token count is reported as zero.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// Choice is a single completion choice.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage is the message inside a completion choice.
type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage carries token accounting from the endpoint.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
