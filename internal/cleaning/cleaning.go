// Package cleaning turns raw file lines into a clean sentence list through
// an ordered sequence of filter and substitution rules.
//
// Rule order is load-bearing: length filtering runs before whitespace
// normalization collapses multi-line sentences, and header detection runs
// only after blank lines and short fragments are gone so the frequency
// counts are not diluted by noise.
package cleaning

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"silbe/internal/annotate"
	"silbe/internal/services"
)

// HeaderThreshold is the occurrence count at which a sentence is treated as
// repeated boilerplate (page headers, chapter banners) and removed.
const HeaderThreshold = 3

// MinWords is the word-count bound for the length filter: sentences with
// MinWords or fewer whitespace-delimited words are discarded.
const MinWords = 2

var (
	blankPattern = regexp.MustCompile(`^\t\n$|^\s*\n\s*$`)
	spacePattern = regexp.MustCompile(`[\n\t]`)
	// The disallow set: bullet glyphs from exported worksheets, the U+F0A7
	// private-use marker, the no-break space, and a literal hyphen.
	invalidPattern = regexp.MustCompile(`[\x{F0A7}\x{00A0}❍●❏-]`)
	digitPattern   = regexp.MustCompile(`\d`)
)

// Pipeline applies the cleaning rules. The annotator is only used for the
// initial sentence segmentation step.
type Pipeline struct {
	annotator annotate.Pipeline
	segment   bool
}

// New builds a cleaning pipeline with sentence segmentation enabled.
func New(annotator annotate.Pipeline) *Pipeline {
	return &Pipeline{annotator: annotator, segment: true}
}

// WithSegmentation toggles the initial segmentation step. When disabled the
// raw lines themselves are treated as sentences.
func (p *Pipeline) WithSegmentation(enabled bool) *Pipeline {
	p.segment = enabled
	return p
}

// Clean runs every rule in order and returns the cleaned sentence list.
// Each step builds a fresh slice; the input is never mutated.
func (p *Pipeline) Clean(ctx context.Context, lines []string) ([]string, error) {
	sentences, err := p.segmented(ctx, lines)
	if err != nil {
		return nil, err
	}

	sentences = RemoveBlank(sentences)
	sentences = FilterMinWords(sentences, MinWords)
	sentences = NormalizeWhitespace(sentences)
	sentences = RemoveHeaders(sentences, HeaderPattern(HeaderCounts(sentences), HeaderThreshold))
	sentences = RemoveInvalidChars(sentences)
	sentences = RemoveDigits(sentences)
	return sentences, nil
}

func (p *Pipeline) segmented(ctx context.Context, lines []string) ([]string, error) {
	if !p.segment {
		return append([]string(nil), lines...), nil
	}
	var sentences []string
	for _, line := range lines {
		split, err := p.annotator.Segment(ctx, line)
		if err != nil {
			return nil, services.Wrap(services.ErrAnnotation, "cleaning", "segment", "", err)
		}
		sentences = append(sentences, split...)
	}
	return sentences, nil
}

// RemoveBlank discards sentences that are entirely whitespace, a sole tab
// line, or an empty line.
func RemoveBlank(sentences []string) []string {
	return discardMatching(sentences, blankPattern)
}

// FilterMinWords keeps only sentences with more than min whitespace-delimited
// words.
func FilterMinWords(sentences []string, min int) []string {
	kept := make([]string, 0, len(sentences))
	for _, sen := range sentences {
		if len(strings.Fields(sen)) > min {
			kept = append(kept, sen)
		}
	}
	return kept
}

// NormalizeWhitespace replaces newlines and tabs with single spaces and
// trims the result. Applying it twice changes nothing.
func NormalizeWhitespace(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	for _, sen := range sentences {
		out = append(out, strings.TrimSpace(spacePattern.ReplaceAllString(sen, " ")))
	}
	return out
}

// HeaderCounts builds the sentence-text frequency map. It must be computed
// over the current, already partially cleaned list; stale counts from the
// raw list would misidentify headers.
func HeaderCounts(sentences []string) map[string]int {
	counts := make(map[string]int, len(sentences))
	for _, sen := range sentences {
		counts[sen]++
	}
	return counts
}

// HeaderPattern compiles a pattern matching every sentence text whose count
// reached the threshold. Returns nil when no sentence qualifies, which makes
// the header filter a no-op.
func HeaderPattern(counts map[string]int, threshold int) *regexp.Regexp {
	var quoted []string
	for text, n := range counts {
		if n >= threshold && text != "" {
			quoted = append(quoted, regexp.QuoteMeta(text))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	sort.Strings(quoted)
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// RemoveHeaders discards sentences matching the header pattern. A nil
// pattern passes everything through.
func RemoveHeaders(sentences []string, pattern *regexp.Regexp) []string {
	if pattern == nil {
		return append([]string(nil), sentences...)
	}
	return discardMatching(sentences, pattern)
}

// RemoveInvalidChars discards sentences containing bullet or marker glyphs
// from the disallow set.
func RemoveInvalidChars(sentences []string) []string {
	return discardMatching(sentences, invalidPattern)
}

// RemoveDigits discards sentences containing a decimal digit.
func RemoveDigits(sentences []string) []string {
	return discardMatching(sentences, digitPattern)
}

func discardMatching(sentences []string, pattern *regexp.Regexp) []string {
	kept := make([]string, 0, len(sentences))
	for _, sen := range sentences {
		if !pattern.MatchString(sen) {
			kept = append(kept, sen)
		}
	}
	return kept
}
