// Package testsupport provides shared fixtures for silbe tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"silbe/internal/annotate"
	"silbe/internal/config"
)

// FakeAnnotator is a scriptable annotate.Pipeline for tests. Unset hooks
// fall back to identity segmentation and empty annotation.
type FakeAnnotator struct {
	SegmentFunc  func(text string) ([]string, error)
	AnnotateFunc func(sentence string) (annotate.Sentence, error)
}

func (f *FakeAnnotator) Segment(_ context.Context, text string) ([]string, error) {
	if f.SegmentFunc != nil {
		return f.SegmentFunc(text)
	}
	return []string{text}, nil
}

func (f *FakeAnnotator) Annotate(_ context.Context, sentence string) (annotate.Sentence, error) {
	if f.AnnotateFunc != nil {
		return f.AnnotateFunc(sentence)
	}
	return annotate.Sentence{Text: sentence}, nil
}

// WriteCorpusFile writes content under dir (creating parents) and returns
// the file path.
func WriteCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create corpus dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}
	return path
}

// NewConfig returns a valid config rooted in temp directories.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.SourceDir = filepath.Join(base, "corpus")
	cfg.Paths.ResultsDir = filepath.Join(base, "results")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatalf("create source dir: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
