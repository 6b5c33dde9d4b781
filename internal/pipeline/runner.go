// Package pipeline drives the per-file processing flow: load raw lines,
// clean, select, rank, persist. Each file is an independent unit of work;
// one file failing never aborts the batch.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"silbe/internal/annotate"
	"silbe/internal/cleaning"
	"silbe/internal/config"
	"silbe/internal/corpus"
	"silbe/internal/history"
	"silbe/internal/logging"
	"silbe/internal/ranking"
	"silbe/internal/results"
	"silbe/internal/selection"
)

// Outcome summarizes one file's run for rendering and history.
type Outcome struct {
	File       string
	RunID      string
	ResultPath string
	Entries    []ranking.Entry
	Stats      results.Stats
	StatsErr   error
	RawLines   int
	Cleaned    int
	Selected   int
	Duration   time.Duration
	Err        error
}

// Runner executes the pipeline for configured files.
type Runner struct {
	cfg       *config.Config
	annotator annotate.Pipeline
	store     *history.Store
	logger    *slog.Logger
	mode      ranking.Mode
}

// New builds a runner. The comparison mode is validated here so a bad
// configuration is rejected before any file work starts. store may be nil
// when history recording is disabled.
func New(cfg *config.Config, annotator annotate.Pipeline, store *history.Store, logger *slog.Logger) (*Runner, error) {
	mode, err := ranking.ParseMode(cfg.Syllables.Comparison)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:       cfg,
		annotator: annotator,
		store:     store,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		mode:      mode,
	}, nil
}

// ProcessBatch runs every named file sequentially. Failures are logged per
// file and recorded in the outcome; the batch always continues.
func (r *Runner) ProcessBatch(ctx context.Context, files []string) []Outcome {
	outcomes := make([]Outcome, 0, len(files))
	for _, name := range files {
		outcome := r.ProcessFile(ctx, name)
		if outcome.Err != nil {
			r.logger.Error("file run failed",
				logging.String(logging.FieldFile, name),
				logging.Error(outcome.Err))
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// ProcessFile runs the full pipeline for one file.
func (r *Runner) ProcessFile(ctx context.Context, name string) Outcome {
	outcome := Outcome{
		File:  name,
		RunID: uuid.NewString(),
	}
	start := time.Now()
	logger := r.logger.With(
		logging.String(logging.FieldFile, name),
		logging.String(logging.FieldRunID, outcome.RunID),
	)

	defer func() {
		outcome.Duration = time.Since(start)
		r.record(ctx, &outcome)
	}()

	lines, err := r.loadLines(logger, name)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.RawLines = len(lines)

	cleaned, err := r.timedClean(ctx, logger, lines)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Cleaned = len(cleaned)

	selected, err := r.timedSelect(ctx, logger, cleaned)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Selected = len(selected)

	entries, err := r.timedRank(logger, selected)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Entries = entries

	outcome.ResultPath = results.Path(r.cfg.Paths.ResultsDir, name)
	if err := results.Write(outcome.ResultPath, entries); err != nil {
		outcome.Err = err
		return outcome
	}

	stats, err := results.Summarize(entries)
	if err != nil {
		// Degenerate result sets are an outcome to report, not a failure.
		outcome.StatsErr = err
		logger.Warn("statistics unavailable", logging.Error(err))
		return outcome
	}
	outcome.Stats = stats
	return outcome
}

func (r *Runner) loadLines(logger *slog.Logger, name string) ([]string, error) {
	stageStart := time.Now()
	src, err := corpus.NewSource(r.cfg.Paths.SourceDir)
	if err != nil {
		return nil, err
	}
	for _, hidden := range src.Shadowed(name) {
		logger.Warn("duplicate file name in corpus, using last indexed path",
			logging.String("shadowed_path", hidden))
	}

	var lines []string
	if r.cfg.Input.SampleExtraction {
		lines, err = src.Sample(name, r.cfg.Input.SampleSize)
	} else {
		lines, err = src.Lines(name)
	}
	if err != nil {
		return nil, err
	}
	r.logStage(logger, "load", stageStart, len(lines))
	return lines, nil
}

func (r *Runner) timedClean(ctx context.Context, logger *slog.Logger, lines []string) ([]string, error) {
	stageStart := time.Now()
	pipe := cleaning.New(r.annotator).WithSegmentation(r.cfg.Cleaning.SegmentSentences)
	cleaned, err := pipe.Clean(ctx, lines)
	if err != nil {
		return nil, err
	}
	r.logStage(logger, "clean", stageStart, len(cleaned))
	return cleaned, nil
}

func (r *Runner) timedSelect(ctx context.Context, logger *slog.Logger, cleaned []string) ([]annotate.Sentence, error) {
	stageStart := time.Now()
	selected, err := selection.New(r.annotator).Select(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	r.logStage(logger, "select", stageStart, len(selected))
	return selected, nil
}

func (r *Runner) timedRank(logger *slog.Logger, selected []annotate.Sentence) ([]ranking.Entry, error) {
	stageStart := time.Now()
	entries, err := ranking.Rank(selected, r.cfg.Syllables.Threshold, r.mode)
	if err != nil {
		return nil, err
	}
	r.logStage(logger, "rank", stageStart, len(entries))
	return entries, nil
}

func (r *Runner) logStage(logger *slog.Logger, stage string, start time.Time, sentences int) {
	logger.Info("stage completed",
		logging.String(logging.FieldStage, stage),
		logging.Int("sentences", sentences),
		logging.Duration("stage_duration", time.Since(start)))
}

func (r *Runner) record(ctx context.Context, outcome *Outcome) {
	if r.store == nil {
		return
	}
	run := history.Run{
		ID:        outcome.RunID,
		FileName:  outcome.File,
		StartedAt: time.Now().UTC().Add(-outcome.Duration),
		Duration:  outcome.Duration,
		RawLines:  outcome.RawLines,
		Cleaned:   outcome.Cleaned,
		Selected:  outcome.Selected,
		Ranked:    len(outcome.Entries),
		Mean:      outcome.Stats.Mean,
		Mode:      outcome.Stats.Mode,
		StdDev:    outcome.Stats.StdDev,
	}
	if outcome.Err != nil {
		run.ErrMessage = outcome.Err.Error()
	} else if outcome.StatsErr != nil {
		run.ErrMessage = outcome.StatsErr.Error()
	}
	if err := r.store.RecordRun(ctx, run); err != nil {
		r.logger.Warn("record run history", logging.Error(err))
	}
}
