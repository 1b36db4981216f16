package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIdentify(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIdentify() error {
	if err := ensurePositiveMap(map[string]int{
		"identify.ngram_size":   c.Identify.NgramSize,
		"identify.profile_size": c.Identify.ProfileSize,
		"identify.top_n":        c.Identify.TopN,
	}); err != nil {
		return err
	}
	switch c.Identify.DefaultModel {
	case "simple", "advanced":
	default:
		return fmt.Errorf("identify.default_model must be %q or %q, got %q", "simple", "advanced", c.Identify.DefaultModel)
	}
	if c.Identify.Alpha < 0 || c.Identify.Alpha > 1 {
		return errors.New("identify.alpha must be between 0 and 1")
	}
	if len(c.Identify.Languages) == 0 {
		return errors.New("identify.languages must include at least one language")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.MaxEntries < 1 {
		return errors.New("history.max_entries must be >= 1 when history.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
