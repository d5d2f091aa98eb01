// Package config provides the toylang home directory and user settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the settings file inside the home directory.
const FileName = "config.yaml"

// Config holds settings for the toylang front ends.
type Config struct {
	// Home is the root directory for toylang data.
	// Defaults to ~/.toylang
	Home string `yaml:"-"`

	// HistoryFile is where the REPL keeps its line history.
	// Defaults to Home/history
	HistoryFile string `yaml:"history_file"`

	// Prompt is shown when the REPL waits for a new statement.
	Prompt string `yaml:"prompt"`

	// ContinuationPrompt is shown while a statement spans several lines.
	ContinuationPrompt string `yaml:"continuation_prompt"`

	// PrintAll prints the value of every statement instead of only the last.
	PrintAll bool `yaml:"print_all"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home := defaultHome()
	return &Config{
		Home:               home,
		HistoryFile:        filepath.Join(home, "history"),
		Prompt:             ">> ",
		ContinuationPrompt: ".. ",
	}
}

// defaultHome returns the default toylang home directory.
// Uses TOYLANG_HOME environment variable if set, otherwise ~/.toylang
func defaultHome() string {
	if dir := os.Getenv("TOYLANG_HOME"); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory
		return filepath.Join(".", ".toylang")
	}

	return filepath.Join(homeDir, ".toylang")
}

// Path returns the location of the settings file.
func (c *Config) Path() string {
	return filepath.Join(c.Home, FileName)
}

// Load reads the settings file at path on top of the defaults. A missing
// file is not an error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		path = c.Path()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes the settings to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDirs creates the home directory and the history file's directory.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.Home,
		filepath.Dir(c.HistoryFile),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
