package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateSyllables(); err != nil {
		return err
	}
	if err := c.validateAnnotator(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		return errors.New("paths.source_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ResultsDir) == "" {
		return errors.New("paths.results_dir must be set")
	}
	return nil
}

func (c *Config) validateInput() error {
	for _, name := range c.Input.Files {
		if name == "" {
			return errors.New("input.files must not contain empty names")
		}
	}
	if c.Input.SampleExtraction && c.Input.SampleSize <= 0 {
		return errors.New("input.sample_size must be positive when input.sample_extraction is true")
	}
	return nil
}

func (c *Config) validateSyllables() error {
	if c.Syllables.Threshold < 0 {
		return errors.New("syllables.threshold must be >= 0")
	}
	switch c.Syllables.Comparison {
	case "greater", "less":
		return nil
	default:
		return fmt.Errorf("syllables.comparison must be %q or %q, got %q", "greater", "less", c.Syllables.Comparison)
	}
}

func (c *Config) validateAnnotator() error {
	switch c.Annotator.Provider {
	case "builtin":
		return nil
	case "spacy":
		if strings.TrimSpace(c.Annotator.Command) == "" {
			return errors.New("annotator.command must be set when annotator.provider is \"spacy\"")
		}
		if c.Annotator.TimeoutSeconds <= 0 {
			return errors.New("annotator.timeout_seconds must be positive")
		}
		return nil
	default:
		return fmt.Errorf("annotator.provider must be %q or %q, got %q", "builtin", "spacy", c.Annotator.Provider)
	}
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
