package german

import (
	"context"
	"strings"
	"testing"

	"silbe/internal/annotate"
)

func TestSegmentSplitsOnTerminators(t *testing.T) {
	a := New()
	got, err := a.Segment(context.Background(), "Er kommt heute. Sie bleibt zu Hause! Kommst du mit?")
	if err != nil {
		t.Fatalf("Segment() error: %v", err)
	}
	want := []string{"Er kommt heute.", "Sie bleibt zu Hause!", "Kommst du mit?"}
	if len(got) != len(want) {
		t.Fatalf("Segment() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSegmentGuards(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"abbreviation", "Er kommt z.B. heute vorbei.", 1},
		{"initial", "Das Buch von J. Müller ist gut.", 1},
		{"decimal number", "Der Preis beträgt 3.50 Euro.", 1},
		{"ordinal before lowercase", "Am 3. tag regnet es.", 1},
		{"no terminator", "Kapitel eins", 1},
		{"empty", "   \n", 0},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Segment(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Segment() error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Segment(%q) = %v, want %d sentences", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnnotatePOS(t *testing.T) {
	a := New()
	sen, err := a.Annotate(context.Background(), "Er geht nach Hause und kocht Abendessen.")
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}

	wantPOS := map[string]string{
		"Er":         annotate.PosPron,
		"geht":       annotate.PosVerb,
		"nach":       annotate.PosAdp,
		"Hause":      annotate.PosNoun,
		"und":        annotate.PosConj,
		"kocht":      annotate.PosVerb,
		"Abendessen": annotate.PosNoun,
		".":          annotate.PosPunct,
	}
	if len(sen.Tokens) != len(wantPOS) {
		t.Fatalf("got %d tokens, want %d: %+v", len(sen.Tokens), len(wantPOS), sen.Tokens)
	}
	for _, tok := range sen.Tokens {
		if want := wantPOS[tok.Text]; tok.POS != want {
			t.Errorf("POS(%q) = %s, want %s", tok.Text, tok.POS, want)
		}
	}
}

func TestAnnotateTagsNumerals(t *testing.T) {
	a := New()
	for _, text := range []string{"Kapitel 1 beginnt hier.", "Sie hat zwei Katzen gekauft."} {
		sen, err := a.Annotate(context.Background(), text)
		if err != nil {
			t.Fatalf("Annotate(%q) error: %v", text, err)
		}
		if _, ok := sen.POSSet()[annotate.PosNum]; !ok {
			t.Errorf("Annotate(%q): expected a NUM tag, got %+v", text, sen.Tokens)
		}
	}
}

func TestSyllabify(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"geht", []string{"geht"}},
		{"Hause", []string{"hau", "se"}},
		{"Abendessen", []string{"a", "ben", "des", "sen"}},
		{"Beispiel", []string{"bei", "spiel"}},
		{"kochen", []string{"ko", "chen"}},
		{"Mädchen", []string{"mäd", "chen"}},
		{"Tasche", []string{"ta", "sche"}},
		{"Haar", []string{"haar"}},
		{"und", []string{"und"}},
		{"hm", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := syllabify(tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("syllabify(%q) = %v, want %v", tt.word, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("syllable[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if strings.Join(got, "") != strings.Join(tt.want, "") {
				t.Errorf("syllables do not reassemble the word: %v", got)
			}
		})
	}
}

func TestSyllableCountTotals(t *testing.T) {
	a := New()
	sen, err := a.Annotate(context.Background(), "Er geht nach Hause und kocht Abendessen.")
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	// er 1 + geht 1 + nach 1 + hau-se 2 + und 1 + kocht 1 + a-ben-des-sen 4
	if got := sen.SyllableCount(); got != 11 {
		t.Errorf("SyllableCount() = %d, want 11", got)
	}
}

func TestTokenizeSplitsPunctuation(t *testing.T) {
	got := tokenize(`"Komm mit!", sagte er.`)
	want := []string{`"`, "Komm", "mit", "!", `"`, ",", "sagte", "er", "."}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
