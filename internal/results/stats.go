package results

import (
	"fmt"
	"math"

	"silbe/internal/ranking"
	"silbe/internal/services"
)

// Stats summarizes the syllable counts of a ranked result set.
type Stats struct {
	Sentences int
	Mean      float64
	Mode      int
	StdDev    float64
}

// Summarize computes mean, unique mode, and sample standard deviation over
// the syllable counts. Fewer than two entries or an ambiguous mode yield
// services.ErrNoResults so callers report "no qualifying sentences" instead
// of crashing the batch.
func Summarize(entries []ranking.Entry) (Stats, error) {
	if len(entries) == 0 {
		return Stats{}, services.Wrap(services.ErrNoResults, "results", "summarize", "empty result set", nil)
	}
	if len(entries) < 2 {
		return Stats{}, services.Wrap(services.ErrNoResults, "results", "summarize",
			"sample standard deviation needs at least two sentences", nil)
	}

	sum := 0
	counts := make(map[int]int, len(entries))
	for _, entry := range entries {
		sum += entry.Syllables
		counts[entry.Syllables]++
	}
	mean := float64(sum) / float64(len(entries))

	mode, err := uniqueMode(counts)
	if err != nil {
		return Stats{}, err
	}

	var variance float64
	for _, entry := range entries {
		diff := float64(entry.Syllables) - mean
		variance += diff * diff
	}
	variance /= float64(len(entries) - 1)

	return Stats{
		Sentences: len(entries),
		Mean:      mean,
		Mode:      mode,
		StdDev:    math.Sqrt(variance),
	}, nil
}

func uniqueMode(counts map[int]int) (int, error) {
	best, bestN, ties := 0, 0, 0
	for value, n := range counts {
		switch {
		case n > bestN:
			best, bestN, ties = value, n, 1
		case n == bestN:
			ties++
		}
	}
	if ties > 1 {
		return 0, services.Wrap(services.ErrNoResults, "results", "summarize", "no unique mode", nil)
	}
	return best, nil
}

// String renders the summary line printed after each run.
func (s Stats) String() string {
	return fmt.Sprintf("Sentences: %d | Mean: %.2f | Mode: %d | Std Dev: %.2f",
		s.Sentences, s.Mean, s.Mode, s.StdDev)
}
