// Package store persists conversations as timestamped JSON files.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"chatpal/src/config"
	"chatpal/src/conversation"
)

// filenameStamp is the minute-resolution timestamp in save filenames.
// Same-minute saves overwrite each other.
const filenameStamp = "20060102_1504"

// StorageError reports a failed save.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s on %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store writes conversations to a filesystem. The afero indirection keeps the
// OS out of tests.
type Store struct {
	fs     afero.Fs
	logger *slog.Logger
	now    func() time.Time
}

// New creates a store backed by fs.
func New(fs afero.Fs, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fs:     fs,
		logger: logger.With("component", "store"),
		now:    time.Now,
	}
}

// Save writes the full conversation, system turn included, as pretty-printed
// JSON under the configured save path and returns the file path. The save
// directory is created if missing; an existing file of the same name is
// overwritten.
func (s *Store) Save(conv *conversation.Conversation, cfg *config.BotConfig) (string, error) {
	if err := s.fs.MkdirAll(cfg.SavePath, 0755); err != nil {
		return "", &StorageError{Op: "create directory", Path: cfg.SavePath, Err: err}
	}

	filename := fmt.Sprintf("%s_%s_%s.json",
		s.now().Format(filenameStamp),
		sanitize(cfg.BotName),
		sanitize(cfg.Username),
	)
	path := filepath.Join(cfg.SavePath, filename)

	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return "", &StorageError{Op: "marshal", Path: path, Err: err}
	}

	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return "", &StorageError{Op: "write", Path: path, Err: err}
	}

	s.logger.Info("conversation saved", "path", path, "turns", conv.Len())
	return path, nil
}

// sanitize makes a name safe for filenames by replacing spaces with
// underscores.
func sanitize(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
