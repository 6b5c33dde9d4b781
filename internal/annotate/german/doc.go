// Package german provides the built-in rule-based annotator for German
// text. It is deliberately heuristic: segmentation guards a list of common
// abbreviations, tagging combines closed function-word lists with suffix
// rules, and syllabification works on orthographic vowel nuclei. It exists
// so silbe runs without an external NLP helper and so tests are
// deterministic; the spacy client is the higher-fidelity alternative.
package german
