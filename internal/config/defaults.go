package config

const (
	defaultSourceDir        = "."
	defaultResultsDir       = "results"
	defaultLogDir           = "~/.local/share/silbe/logs"
	defaultSampleSize       = 20
	defaultThreshold        = 10
	defaultComparison       = "greater"
	defaultProvider         = "builtin"
	defaultSpacyModel       = "de_core_news_sm"
	defaultAnnotatorTimeout = 60
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir:  defaultSourceDir,
			ResultsDir: defaultResultsDir,
			LogDir:     defaultLogDir,
		},
		Input: Input{
			SampleSize: defaultSampleSize,
		},
		Cleaning: Cleaning{
			SegmentSentences: true,
		},
		Syllables: Syllables{
			Threshold:  defaultThreshold,
			Comparison: defaultComparison,
		},
		Annotator: Annotator{
			Provider:       defaultProvider,
			Model:          defaultSpacyModel,
			TimeoutSeconds: defaultAnnotatorTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
