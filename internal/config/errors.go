package config

import "fmt"

// FileError indicates the configuration file could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ConfigError indicates the file was readable but does not describe a valid
// simulation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}
