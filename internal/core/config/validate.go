package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"

	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("assistant.name", c.Assistant.Name, nonEmpty),
		criterio.Run("assistant.log_capacity", c.Assistant.LogCapacity, atLeastOne),
		criterio.Run("catalog.default_marketplace", c.Catalog.DefaultMarketplace, knownMarketplace),
		c.validateStarters(),
	)
}

// ValidateDeep performs comprehensive validation including file access and
// speech command lookup. The configPath argument specifies the config file
// location to validate (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateSpeech(),
	)
}

func (c *Config) validateStarters() error {
	var errs criterio.FieldErrorsBuilder
	for i, st := range c.Tasks.Starters {
		if st.Title == "" {
			errs = errs.Append(fmt.Sprintf("tasks.starters[%d].title", i), fmt.Errorf("title is required"))
		}
		if st.Status != "" && !task.ValidStatus(task.Status(st.Status)) {
			errs = errs.Append(fmt.Sprintf("tasks.starters[%d].status", i), fmt.Errorf("unknown status %q", st.Status))
		}
	}
	return errs.ToError()
}

// validateSpeech checks that an enabled speech command resolves on PATH.
func (c *Config) validateSpeech() error {
	if !c.Assistant.Speech.Enabled {
		return nil
	}
	if c.Assistant.Speech.Command == "" {
		return criterio.NewFieldErrors("assistant.speech.command", fmt.Errorf("required when speech is enabled"))
	}
	if _, err := exec.LookPath(c.Assistant.Speech.Command); err != nil {
		return criterio.NewFieldErrors("assistant.speech.command", fmt.Errorf("executable not found: %s", c.Assistant.Speech.Command))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func nonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

func knownMarketplace(s string) error {
	if _, err := catalog.ParseMarketplace(s); err != nil {
		return err
	}
	return nil
}
