package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks lookups that missed, e.g. a file name absent from
	// the corpus index.
	ErrNotFound = errors.New("not found")
	// ErrAnnotation marks failures inside the linguistic annotator.
	ErrAnnotation = errors.New("annotation error")
	// ErrValidation marks malformed input detected by a stage.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
	// ErrNoResults marks statistics requested over an empty or degenerate
	// result set.
	ErrNoResults = errors.New("no qualifying sentences")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsReportable reports whether err should be surfaced as a per-file notice
// rather than a hard failure. Empty-result statistics fall in this bucket:
// a run that filtered every sentence away is an outcome, not a crash.
func IsReportable(err error) bool {
	return errors.Is(err, ErrNoResults)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
