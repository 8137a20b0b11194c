// Package config handles configuration loading and validation for aurora.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aurora-ops/aurora/internal/core/chat"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	Assistant AssistantConfig `yaml:"assistant"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Tasks     TasksConfig     `yaml:"tasks"`
	TUI       TUIConfig       `yaml:"tui"`
}

// AssistantConfig controls the conversational surface.
type AssistantConfig struct {
	// Name is the assistant persona used in greetings and the console header.
	Name string `yaml:"name"`
	// LogCapacity caps the retained conversation entries.
	LogCapacity int `yaml:"log_capacity"`
	// Speech configures spoken replies for announced outcomes.
	Speech SpeechConfig `yaml:"speech"`
}

// SpeechConfig wires announced replies to an external text-to-speech
// command. Disabled by default; the console works fully without audio.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"` // e.g. "say" on macOS, "espeak" on Linux
}

// CatalogConfig controls catalog generation defaults.
type CatalogConfig struct {
	DefaultMarketplace string `yaml:"default_marketplace"`
}

// StarterTask seeds the board at console start.
type StarterTask struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status"`
}

// TasksConfig controls task board seeding.
type TasksConfig struct {
	// Starters are seeded at startup with Source=manual. An explicit empty
	// list in the config file disables seeding.
	Starters []StarterTask `yaml:"starters"`
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults. The starter
// tasks mirror a typical seller morning: one inventory chore pending,
// one listing-copy task already underway.
func DefaultConfig() Config {
	return Config{
		Assistant: AssistantConfig{
			Name:        "Aurora",
			LogCapacity: chat.DefaultLogCapacity,
			Speech: SpeechConfig{
				Enabled: false,
				Command: "say",
			},
		},
		Catalog: CatalogConfig{
			DefaultMarketplace: "amazon",
		},
		Tasks: TasksConfig{
			Starters: []StarterTask{
				{Title: "Reconcile Amazon apparel inventory", Status: string(task.StatusPending)},
				{Title: "Draft Flipkart deal of the day copy", Status: string(task.StatusInProgress)},
			},
		},
		TUI: TUIConfig{},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.Assistant.Name == "" {
		c.Assistant.Name = "Aurora"
	}
	if c.Assistant.LogCapacity == 0 {
		c.Assistant.LogCapacity = chat.DefaultLogCapacity
	}
	if c.Assistant.Speech.Command == "" {
		c.Assistant.Speech.Command = "say"
	}
	if c.Catalog.DefaultMarketplace == "" {
		c.Catalog.DefaultMarketplace = "amazon"
	}
}
