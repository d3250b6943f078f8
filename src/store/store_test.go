package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatpal/src/config"
	"chatpal/src/conversation"
)

func testConfig() *config.BotConfig {
	return &config.BotConfig{
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

func testStore(fs afero.Fs, at time.Time) *Store {
	s := New(fs, nil)
	s.now = func() time.Time { return at }
	return s
}

func TestSaveFilename(t *testing.T) {
	fs := afero.NewMemMapFs()
	at := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)

	cfg := testConfig()
	cfg.BotName = "Chat Pal"
	cfg.Username = "a b"

	conv := conversation.New("sys")
	path, err := testStore(fs, at).Save(conv, cfg)
	require.NoError(t, err)
	assert.Equal(t, "conversations/20240102_0304_Chat_Pal_a_b.json", path)

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	conv := conversation.New("you are a companion")
	conv.Append(conversation.RoleUser, "hello")
	conv.Append(conversation.RoleAssistant, "hi! how was your day?")
	conv.Append(conversation.RoleUser, "long, honestly")

	path, err := testStore(fs, time.Now()).Save(conv, testConfig())
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var reloaded conversation.Conversation
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, conv.History, reloaded.History)
	assert.True(t, conv.Timestamp.Equal(reloaded.Timestamp))
}

func TestSaveIncludesSystemTurn(t *testing.T) {
	fs := afero.NewMemMapFs()

	conv := conversation.New("persona")
	path, err := testStore(fs, time.Now()).Save(conv, testConfig())
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var reloaded conversation.Conversation
	require.NoError(t, json.Unmarshal(data, &reloaded))
	require.Len(t, reloaded.History, 1)
	assert.Equal(t, conversation.RoleSystem, reloaded.History[0].Role)
}

func TestSaveOverwritesSameMinute(t *testing.T) {
	fs := afero.NewMemMapFs()
	at := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	s := testStore(fs, at)

	first := conversation.New("sys")
	path1, err := s.Save(first, testConfig())
	require.NoError(t, err)

	second := conversation.New("sys")
	second.Append(conversation.RoleUser, "newer")
	path2, err := s.Save(second, testConfig())
	require.NoError(t, err)
	assert.Equal(t, path1, path2)

	data, err := afero.ReadFile(fs, path2)
	require.NoError(t, err)
	var reloaded conversation.Conversation
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, second.History, reloaded.History)
}

func TestSaveDirectoryCreationIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("conversations", 0755))

	_, err := testStore(fs, time.Now()).Save(conversation.New("sys"), testConfig())
	assert.NoError(t, err)
}

func TestSaveFailureIsStorageError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := testStore(fs, time.Now()).Save(conversation.New("sys"), testConfig())

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create directory", storageErr.Op)
}
