// Package annotate defines the linguistic annotation contract the pipeline
// depends on: sentence segmentation, part-of-speech tagging, and per-token
// syllable breakdowns. Implementations live in annotate/german (built-in
// rule-based tagger) and services/spacy (external helper process).
package annotate

import "context"

// Universal part-of-speech tags the pipeline cares about. The selector only
// branches on Verb and Num; the rest exist so annotators can be honest about
// what they saw.
const (
	PosVerb  = "VERB"
	PosNum   = "NUM"
	PosNoun  = "NOUN"
	PosAdj   = "ADJ"
	PosAdv   = "ADV"
	PosDet   = "DET"
	PosPron  = "PRON"
	PosAdp   = "ADP"
	PosConj  = "CCONJ"
	PosPart  = "PART"
	PosPunct = "PUNCT"
	PosOther = "X"
)

// Token is one annotated token of a sentence. Syllables is nil when the
// annotator found no syllable breakdown for the token; ranking treats that
// as zero syllables and renders it with the ∅ sentinel.
type Token struct {
	Text      string
	POS       string
	Syllables []string
}

// Sentence is an annotated sentence: its surface text plus tokens in order.
type Sentence struct {
	Text   string
	Tokens []Token
}

// POSSet returns the set of distinct part-of-speech tags in the sentence.
func (s Sentence) POSSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Tokens))
	for _, tok := range s.Tokens {
		set[tok.POS] = struct{}{}
	}
	return set
}

// SyllableCount is the total number of syllable units across all tokens.
// Tokens without a breakdown contribute nothing.
func (s Sentence) SyllableCount() int {
	total := 0
	for _, tok := range s.Tokens {
		total += len(tok.Syllables)
	}
	return total
}

// Pipeline is the annotation capability consumed by the cleaning, selection,
// and ranking stages. Implementations must be stateless per call.
type Pipeline interface {
	// Segment splits a block of text into individual sentences.
	Segment(ctx context.Context, text string) ([]string, error)
	// Annotate tags and syllabizes a single sentence.
	Annotate(ctx context.Context, sentence string) (Sentence, error)
}
