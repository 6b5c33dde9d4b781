// Package results persists ranked sentences as CSV and computes the summary
// statistics reported after each run.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"silbe/internal/ranking"
	"silbe/internal/textutil"
)

// Header columns of the results table. Num is the zero-based row index.
var header = []string{"Num", "Sentence", "Syllables"}

// Path derives the output file path for an input file name, following the
// results/<input>_syllables.csv convention.
func Path(resultsDir, inputName string) string {
	return filepath.Join(resultsDir, textutil.SanitizeFileName(inputName)+"_syllables.csv")
}

// Write serializes entries to path as a three-column CSV table indexed
// from 0. Parent directories are created as needed.
func Write(path string, entries []ranking.Entry) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, entry := range entries {
		record := []string{strconv.Itoa(i), entry.Sentence, strconv.Itoa(entry.Syllables)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	return file.Close()
}

// Load reads a results CSV back into ranked entries, preserving row order.
func Load(path string) ([]ranking.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	entries := make([]ranking.Entry, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i, len(header), len(record))
		}
		count, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse syllable count: %w", i, err)
		}
		entries = append(entries, ranking.Entry{Sentence: record[1], Syllables: count})
	}
	return entries, nil
}
