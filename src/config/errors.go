package config

import "fmt"

// ConfigError reports an unusable configuration file. It is the only fatal
// error class: the session never starts on top of a config it cannot trust.
type ConfigError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
