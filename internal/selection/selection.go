// Package selection re-annotates cleaned sentences and keeps only those
// whose grammatical composition qualifies them for syllable ranking.
package selection

import (
	"context"

	"silbe/internal/annotate"
	"silbe/internal/services"
)

// The keep rule: a sentence survives when its part-of-speech set contains
// none of the excluded categories and at least one required category.
var (
	excludedTags = []string{annotate.PosNum}
	requiredTags = []string{annotate.PosVerb}
)

// Selector runs cleaned sentences through annotation and applies the keep
// rule.
type Selector struct {
	annotator annotate.Pipeline
}

// New builds a selector over the given annotation pipeline.
func New(annotator annotate.Pipeline) *Selector {
	return &Selector{annotator: annotator}
}

// Select annotates each sentence and returns, in input order, the annotated
// sentences that pass the keep rule.
func (s *Selector) Select(ctx context.Context, sentences []string) ([]annotate.Sentence, error) {
	selected := make([]annotate.Sentence, 0, len(sentences))
	for _, text := range sentences {
		annotated, err := s.annotator.Annotate(ctx, text)
		if err != nil {
			return nil, services.Wrap(services.ErrAnnotation, "selection", "annotate", text, err)
		}
		if Keep(annotated) {
			selected = append(selected, annotated)
		}
	}
	return selected, nil
}

// Keep reports whether an annotated sentence passes the keep rule.
func Keep(sentence annotate.Sentence) bool {
	pos := sentence.POSSet()
	for _, tag := range excludedTags {
		if _, ok := pos[tag]; ok {
			return false
		}
	}
	for _, tag := range requiredTags {
		if _, ok := pos[tag]; ok {
			return true
		}
	}
	return false
}
