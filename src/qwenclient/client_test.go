package qwenclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatpal/src/config"
	"chatpal/src/conversation"
)

func testConfig() *config.BotConfig {
	return &config.BotConfig{
		BotName:         "ChatPal",
		APIKey:          "sk-test",
		Model:           "qwen3-235b-a22b",
		MaxHistory:      10,
		MaxTokens:       2000,
		Temperature:     0.8,
		MaxContextChars: 8000,
		SavePath:        "conversations",
		Username:        "user",
	}
}

func testTurns() []conversation.Turn {
	return []conversation.Turn{
		{Role: conversation.RoleSystem, Content: "sys"},
		{Role: conversation.RoleUser, Content: "hello"},
	}
}

func TestAskSuccess(t *testing.T) {
	var captured ChatRequest
	var gotAuth, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hi there"}},
			},
			"usage": map[string]any{"total_tokens": 42},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	reply, tokens, err := client.Ask(context.Background(), testTurns(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
	assert.Equal(t, 42, tokens)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "qwen3-235b-a22b", captured.Model)
	assert.Equal(t, 0.8, captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
	assert.False(t, captured.EnableThinking)
	assert.Len(t, captured.Messages, 2)
}

func TestAskAlwaysDisablesThinking(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, _, err := client.Ask(context.Background(), testTurns(), testConfig())
	require.NoError(t, err)

	// The field must be serialized explicitly, not omitted.
	field, ok := raw["enable_thinking"]
	require.True(t, ok)
	assert.Equal(t, "false", string(field))
}

func TestAskNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited, slow down"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, _, err := client.Ask(context.Background(), testTurns(), testConfig())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusTooManyRequests, remoteErr.StatusCode)
	assert.Equal(t, "rate limited, slow down", remoteErr.Body)
}

func TestAskEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, _, err := client.Ask(context.Background(), testTurns(), testConfig())
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestAskMissingUsageDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	reply, tokens, err := client.Ask(context.Background(), testTurns(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, 0, tokens)
}

func TestAskMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, _, err := client.Ask(context.Background(), testTurns(), testConfig())

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestAskConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(Config{BaseURL: server.URL})
	_, _, err := client.Ask(context.Background(), testTurns(), testConfig())

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
