package corpus

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"silbe/internal/services"
	"silbe/internal/testsupport"
)

func TestSourceResolveAndLines(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteCorpusFile(t, dir, "probe.txt", "Erste Zeile.\nZweite Zeile.\n")

	src, err := NewSource(dir)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}

	path, err := src.Resolve("probe.txt")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if filepath.Base(path) != "probe.txt" {
		t.Errorf("Resolve() = %q, want path ending in probe.txt", path)
	}

	lines, err := src.Lines("probe.txt")
	if err != nil {
		t.Fatalf("Lines() error: %v", err)
	}
	want := []string{"Erste Zeile.\n", "Zweite Zeile.\n"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}
}

func TestSourceKeepsTerminatorOnLastLine(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteCorpusFile(t, dir, "ohne.txt", "Zeile ohne Abschluss")

	src, err := NewSource(dir)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	lines, err := src.Lines("ohne.txt")
	if err != nil {
		t.Fatalf("Lines() error: %v", err)
	}
	want := []string{"Zeile ohne Abschluss"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}
}

func TestSourceLastSeenWinsAndRecordsShadowed(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteCorpusFile(t, dir, filepath.Join("a", "doppelt.txt"), "aus a\n")
	testsupport.WriteCorpusFile(t, dir, filepath.Join("b", "doppelt.txt"), "aus b\n")

	src, err := NewSource(dir)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}

	// WalkDir visits a/ before b/, so b's copy wins.
	lines, err := src.Lines("doppelt.txt")
	if err != nil {
		t.Fatalf("Lines() error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "aus b\n" {
		t.Errorf("Lines() = %q, want the copy from b/", lines)
	}
	if shadowed := src.Shadowed("doppelt.txt"); len(shadowed) != 1 {
		t.Errorf("Shadowed() = %q, want one hidden path", shadowed)
	}
}

func TestSourceMissingFile(t *testing.T) {
	src, err := NewSource(t.TempDir())
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	_, err = src.Lines("fehlt.txt")
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Lines(missing) = %v, want ErrNotFound", err)
	}
}

func TestSourceSample(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteCorpusFile(t, dir, "lang.txt", "eins\nzwei\ndrei\nvier\n")

	src, err := NewSource(dir)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}

	lines, err := src.Sample("lang.txt", 2)
	if err != nil {
		t.Fatalf("Sample() error: %v", err)
	}
	want := []string{"eins\n", "zwei\n"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Sample(2) = %q, want %q", lines, want)
	}

	all, err := src.Sample("lang.txt", 100)
	if err != nil {
		t.Fatalf("Sample() error: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Sample(100) returned %d lines, want 4", len(all))
	}
}

func TestSourceNormalizesToNFC(t *testing.T) {
	dir := t.TempDir()
	// "für" with a decomposed umlaut (u + combining diaeresis).
	testsupport.WriteCorpusFile(t, dir, "nfc.txt", "fu\u0308r alle\n")

	src, err := NewSource(dir)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	lines, err := src.Lines("nfc.txt")
	if err != nil {
		t.Fatalf("Lines() error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "für alle\n" {
		t.Errorf("Lines() = %q, want composed form", lines)
	}
}
