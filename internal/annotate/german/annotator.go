package german

import (
	"context"
	"strings"
	"unicode"

	"silbe/internal/annotate"
)

// Annotator is the built-in rule-based German annotation pipeline.
type Annotator struct{}

// New returns the built-in annotator. It holds no state; one instance can
// serve the whole process.
func New() *Annotator {
	return &Annotator{}
}

var _ annotate.Pipeline = (*Annotator)(nil)

// Segment splits text into sentences.
func (a *Annotator) Segment(_ context.Context, text string) ([]string, error) {
	return splitSentences(text), nil
}

// Annotate tokenizes a sentence and attaches POS tags and syllable
// breakdowns. Punctuation tokens carry no syllables.
func (a *Annotator) Annotate(_ context.Context, sentence string) (annotate.Sentence, error) {
	words := tokenize(sentence)
	tokens := make([]annotate.Token, 0, len(words))

	prev := ""
	first := true
	for _, word := range words {
		pos := tagToken(word, prev, first)
		tok := annotate.Token{Text: word, POS: pos}
		if pos != annotate.PosPunct {
			tok.Syllables = syllabify(word)
		}
		tokens = append(tokens, tok)
		if pos != annotate.PosPunct {
			prev = strings.ToLower(word)
			first = false
		}
	}

	return annotate.Sentence{Text: sentence, Tokens: tokens}, nil
}

// tokenize splits a sentence into word and punctuation tokens. Leading and
// trailing punctuation of each whitespace field becomes its own token;
// word-internal characters (hyphens, apostrophes) stay put.
func tokenize(sentence string) []string {
	var tokens []string
	for _, field := range strings.Fields(sentence) {
		runes := []rune(field)

		start := 0
		for start < len(runes) && isPunctRune(runes[start]) {
			tokens = append(tokens, string(runes[start]))
			start++
		}

		end := len(runes)
		var trailing []string
		for end > start && isPunctRune(runes[end-1]) {
			trailing = append([]string{string(runes[end-1])}, trailing...)
			end--
		}

		if end > start {
			tokens = append(tokens, string(runes[start:end]))
		}
		tokens = append(tokens, trailing...)
	}
	return tokens
}

func isPunctRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
