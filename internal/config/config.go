package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	SourceDir  string `toml:"source_dir"`
	ResultsDir string `toml:"results_dir"`
	LogDir     string `toml:"log_dir"`
}

// Input describes the batch of files to process per run.
type Input struct {
	Files            []string `toml:"files"`
	SampleExtraction bool     `toml:"sample_extraction"`
	SampleSize       int      `toml:"sample_size"`
}

// Cleaning contains settings for the sentence cleaning pipeline.
type Cleaning struct {
	SegmentSentences bool `toml:"segment_sentences"`
}

// Syllables contains the ranking threshold settings.
type Syllables struct {
	Threshold  int    `toml:"threshold"`
	Comparison string `toml:"comparison"`
}

// Annotator selects and configures the linguistic annotation pipeline.
type Annotator struct {
	Provider       string `toml:"provider"`
	Command        string `toml:"command"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the run-history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Config encapsulates all configuration values for silbe.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Input     Input     `toml:"input"`
	Cleaning  Cleaning  `toml:"cleaning"`
	Syllables Syllables `toml:"syllables"`
	Annotator Annotator `toml:"annotator"`
	Logging   Logging   `toml:"logging"`
	History   History   `toml:"history"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/silbe/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	// A .env next to the working directory may carry SILBE_* overrides.
	_ = godotenv.Load()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func (c *Config) applyEnvOverrides() {
	overrides := map[string]*string{
		"SILBE_SOURCE_DIR":        &c.Paths.SourceDir,
		"SILBE_RESULTS_DIR":       &c.Paths.ResultsDir,
		"SILBE_LOG_DIR":           &c.Paths.LogDir,
		"SILBE_ANNOTATOR_COMMAND": &c.Annotator.Command,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			*target = value
		}
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("silbe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.SourceDir, &c.Paths.ResultsDir, &c.Paths.LogDir} {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}
	c.Syllables.Comparison = strings.ToLower(strings.TrimSpace(c.Syllables.Comparison))
	c.Annotator.Provider = strings.ToLower(strings.TrimSpace(c.Annotator.Provider))
	for i, name := range c.Input.Files {
		c.Input.Files[i] = strings.TrimSpace(name)
	}
	return nil
}

// EnsureDirectories creates the directories a run writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ResultsDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
