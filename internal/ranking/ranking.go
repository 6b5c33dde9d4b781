// Package ranking aggregates per-sentence syllable counts, filters them
// against a threshold, and orders the survivors by count.
package ranking

import (
	"fmt"
	"sort"

	"silbe/internal/annotate"
	"silbe/internal/services"
)

// Mode names the threshold comparison. Both bounds are inclusive: "greater"
// keeps totals >= threshold and "less" keeps totals <= threshold. The
// naming is inherited; the inclusivity is the contract.
type Mode string

const (
	ModeGreater Mode = "greater"
	ModeLess    Mode = "less"
)

// Sentinel rendered for tokens the annotator found no syllables for. Such
// tokens contribute zero to the sentence total.
const NoSyllables = "∅"

// ParseMode validates a comparison mode string. Anything other than
// "greater" or "less" is a configuration error.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeGreater, ModeLess:
		return Mode(value), nil
	default:
		return "", services.Wrap(services.ErrConfiguration, "ranking", "parse mode",
			fmt.Sprintf("unsupported comparison mode %q (want %q or %q)", value, ModeGreater, ModeLess), nil)
	}
}

// Entry is one ranked sentence with its total syllable count.
type Entry struct {
	Sentence  string
	Syllables int
}

// Rank filters annotated sentences by total syllable count against the
// threshold and returns them sorted by count descending. The sort is
// stable, so equal counts retain their annotation order.
func Rank(sentences []annotate.Sentence, threshold int, mode Mode) ([]Entry, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sentences))
	for _, sen := range sentences {
		total := sen.SyllableCount()
		switch mode {
		case ModeGreater:
			if total < threshold {
				continue
			}
		case ModeLess:
			if total > threshold {
				continue
			}
		}
		entries = append(entries, Entry{Sentence: sen.Text, Syllables: total})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Syllables > entries[j].Syllables
	})
	return entries, nil
}

// Breakdown renders the per-token syllable breakdowns of a sentence,
// substituting the ∅ sentinel for tokens without one.
func Breakdown(sentence annotate.Sentence) []string {
	out := make([]string, 0, len(sentence.Tokens))
	for _, tok := range sentence.Tokens {
		if tok.Syllables == nil {
			out = append(out, NoSyllables)
			continue
		}
		out = append(out, fmt.Sprintf("%v", tok.Syllables))
	}
	return out
}
