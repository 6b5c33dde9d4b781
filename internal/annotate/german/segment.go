package german

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"z.b":   {},
	"d.h":   {},
	"u.a":   {},
	"o.ä":   {},
	"usw":   {},
	"bzw":   {},
	"ca":    {},
	"etc":   {},
	"evtl":  {},
	"ggf":   {},
	"inkl":  {},
	"max":   {},
	"min":   {},
	"nr":    {},
	"s":     {},
	"str":   {},
	"dr":    {},
	"prof":  {},
	"hr":    {},
	"fr":    {},
	"bsp":   {},
	"vgl":   {},
	"sog":   {},
	"zzgl":  {},
	"abs":   {},
	"kap":   {},
	"o.g":   {},
	"u.u":   {},
	"i.d.r": {},
}

// splitSentences segments a block of text into sentences. Terminators stay
// attached to their sentence. Periods after known abbreviations, single
// initials, and digits do not split.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && !periodTerminates(runes, start, i) {
			continue
		}
		// Consume any run of closing terminators and quotes.
		end := i + 1
		for end < len(runes) && (runes[end] == '.' || runes[end] == '!' || runes[end] == '?' || runes[end] == '"' || runes[end] == '\'' || runes[end] == ')') {
			end++
		}
		sentence := strings.TrimSpace(string(runes[start:end]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
		i = end - 1
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// periodTerminates decides whether the period at index i is a sentence
// boundary given the sentence started at index start.
func periodTerminates(runes []rune, start, i int) bool {
	// Decimal numbers and ordinals: digit on both sides, or digit before
	// and the period is part of "3." style ordinals followed by lowercase.
	if i > 0 && unicode.IsDigit(runes[i-1]) {
		if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			return false
		}
		if next := nextLetter(runes, i+1); next != 0 && unicode.IsLower(next) {
			return false
		}
	}

	word := trailingWord(runes, start, i)
	if word == "" {
		return true
	}
	lower := strings.ToLower(word)
	if _, ok := abbreviations[lower]; ok {
		return false
	}
	// Single-letter initials ("J. Müller") and abbreviation parts ("z.B.").
	if len([]rune(word)) == 1 {
		return false
	}
	return true
}

func trailingWord(runes []rune, start, i int) string {
	j := i
	for j > start {
		r := runes[j-1]
		if unicode.IsLetter(r) || r == '.' {
			j--
			continue
		}
		break
	}
	return strings.TrimSuffix(string(runes[j:i]), ".")
}

func nextLetter(runes []rune, from int) rune {
	for _, r := range runes[from:] {
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsLetter(r) {
			return r
		}
		return 0
	}
	return 0
}
