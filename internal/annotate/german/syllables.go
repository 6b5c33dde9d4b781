package german

import (
	"strings"
	"unicode"
)

var vowels = map[rune]struct{}{
	'a': {}, 'e': {}, 'i': {}, 'o': {}, 'u': {},
	'ä': {}, 'ö': {}, 'ü': {}, 'y': {},
}

// Vowel pairs that form a single nucleus: diphthongs plus long-vowel
// doublings (Haar, See, Boot) and the ie digraph.
var nucleusPairs = map[string]struct{}{
	"ei": {}, "ai": {}, "au": {}, "eu": {}, "äu": {}, "ie": {},
	"aa": {}, "ee": {}, "oo": {},
}

// syllabify splits a word into orthographic syllables. Returns nil when the
// word has no vowel nucleus (the caller records the ∅ sentinel).
//
// The split rule between two nuclei: a single consonant joins the following
// syllable, a cluster splits before its last consonant. The sch/ch/ck
// digraphs stay together.
func syllabify(word string) []string {
	runes := []rune(strings.ToLower(word))
	letters := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return nil
	}

	nuclei := findNuclei(letters)
	if len(nuclei) == 0 {
		return nil
	}
	if len(nuclei) == 1 {
		return []string{string(letters)}
	}

	syllables := make([]string, 0, len(nuclei))
	start := 0
	for n := 0; n < len(nuclei)-1; n++ {
		// Consonant cluster between the end of this nucleus and the start
		// of the next one.
		clusterStart := nuclei[n].end
		clusterEnd := nuclei[n+1].start
		split := splitPoint(letters, clusterStart, clusterEnd)
		syllables = append(syllables, string(letters[start:split]))
		start = split
	}
	syllables = append(syllables, string(letters[start:]))
	return syllables
}

type nucleus struct {
	start, end int // [start, end)
}

func findNuclei(letters []rune) []nucleus {
	var nuclei []nucleus
	i := 0
	for i < len(letters) {
		if _, ok := vowels[letters[i]]; !ok {
			i++
			continue
		}
		// Start of a vowel run: group it into nuclei, pairing diphthongs.
		j := i
		for j < len(letters) {
			if _, ok := vowels[letters[j]]; !ok {
				break
			}
			j++
		}
		for k := i; k < j; {
			if k+1 < j {
				if _, ok := nucleusPairs[string(letters[k:k+2])]; ok {
					nuclei = append(nuclei, nucleus{start: k, end: k + 2})
					k += 2
					continue
				}
			}
			nuclei = append(nuclei, nucleus{start: k, end: k + 1})
			k++
		}
		i = j
	}
	return nuclei
}

func splitPoint(letters []rune, clusterStart, clusterEnd int) int {
	switch clusterEnd - clusterStart {
	case 0:
		return clusterEnd
	case 1:
		return clusterStart
	}
	// Keep digraphs with the following syllable when they end the cluster.
	tail := string(letters[max(clusterStart, clusterEnd-3):clusterEnd])
	if strings.HasSuffix(tail, "sch") && clusterEnd-3 >= clusterStart {
		return clusterEnd - 3
	}
	for _, digraph := range []string{"ch", "ck", "sp", "st"} {
		if strings.HasSuffix(tail, digraph) && clusterEnd-2 >= clusterStart {
			return clusterEnd - 2
		}
	}
	return clusterEnd - 1
}
