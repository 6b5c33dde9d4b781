package main

import (
	"log/slog"
	"time"

	"silbe/internal/annotate"
	"silbe/internal/annotate/german"
	"silbe/internal/config"
	"silbe/internal/logging"
	"silbe/internal/services/spacy"
)

// commandContext carries lazily constructed shared state between commands.
type commandContext struct {
	configFlag *string

	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = resolvedPath
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// annotator builds the configured annotation pipeline.
func (c *commandContext) annotator() (annotate.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	switch cfg.Annotator.Provider {
	case "spacy":
		return spacy.NewClient(spacy.Config{
			Command: cfg.Annotator.Command,
			Model:   cfg.Annotator.Model,
			Timeout: time.Duration(cfg.Annotator.TimeoutSeconds) * time.Second,
		}), nil
	default:
		return german.New(), nil
	}
}
