// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the CLI configuration.
type Config struct {
	ActiveContext string    `toml:"active_context"`
	Contexts      []Context `toml:"contexts"`
}

// Context represents a named configuration with an API key.
type Context struct {
	Name   string `toml:"name"`
	APIKey string `toml:"api_key"`
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "firectl", "cli.toml"), nil
}

// loadConfig loads the configuration from ~/.config/firectl/cli.toml.
// A missing file yields an empty config.
func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{Contexts: []Context{}}, nil
	}

	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func saveConfig(config *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// The key is a credential, keep it owner-readable only.
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	return nil
}

// find returns a context by name, or nil.
func (c *Config) find(name string) *Context {
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			return &c.Contexts[i]
		}
	}
	return nil
}

// saveContextKey stores an API key under the given context name, creating or
// updating it. The first context that is created becomes the active one.
func saveContextKey(name, apiKey string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	if existing := config.find(name); existing != nil {
		existing.APIKey = apiKey
	} else {
		config.Contexts = append(config.Contexts, Context{Name: name, APIKey: apiKey})
	}

	if len(config.Contexts) == 1 {
		config.ActiveContext = name
	}

	return saveConfig(config)
}