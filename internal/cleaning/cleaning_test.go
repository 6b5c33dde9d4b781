package cleaning

import (
	"context"
	"reflect"
	"testing"

	"silbe/internal/annotate/german"
	"silbe/internal/testsupport"
)

func TestRemoveBlank(t *testing.T) {
	in := []string{"\t\n", "  \n ", "\n", "Ein ganzer Satz hier.", ""}
	got := RemoveBlank(in)
	want := []string{"Ein ganzer Satz hier.", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveBlank() = %q, want %q", got, want)
	}
}

func TestFilterMinWordsBoundary(t *testing.T) {
	in := []string{"Kapitel 1", "genau zwei", "genau drei Wörter", "vier Wörter sind hier"}
	got := FilterMinWords(in, MinWords)
	want := []string{"genau drei Wörter", "vier Wörter sind hier"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterMinWords() = %q, want %q", got, want)
	}
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	in := []string{"Das ist\nein Satz.", "\tMit Tab\tgetrennt.", "  schon sauber  "}
	once := NormalizeWhitespace(in)
	want := []string{"Das ist ein Satz.", "Mit Tab getrennt.", "schon sauber"}
	if !reflect.DeepEqual(once, want) {
		t.Errorf("NormalizeWhitespace() = %q, want %q", once, want)
	}
	if twice := NormalizeWhitespace(once); !reflect.DeepEqual(twice, once) {
		t.Errorf("second application changed output: %q -> %q", once, twice)
	}
}

func TestHeaderRemoval(t *testing.T) {
	header := "Deutsch lernen mit Geschichten"
	in := []string{
		header, "Der erste richtige Satz steht hier.",
		header, "Der zweite richtige Satz steht hier.",
		header,
	}
	got := RemoveHeaders(in, HeaderPattern(HeaderCounts(in), HeaderThreshold))
	want := []string{
		"Der erste richtige Satz steht hier.",
		"Der zweite richtige Satz steht hier.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveHeaders() = %q, want %q", got, want)
	}
}

func TestHeaderBelowThresholdKept(t *testing.T) {
	in := []string{
		"Nur zweimal wiederholt hier.", "Nur zweimal wiederholt hier.",
		"Ein einmaliger Satz dazu.",
	}
	if pattern := HeaderPattern(HeaderCounts(in), HeaderThreshold); pattern != nil {
		t.Fatalf("HeaderPattern() = %v, want nil below threshold", pattern)
	}
	got := RemoveHeaders(in, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("RemoveHeaders(nil pattern) = %q, want unchanged input", got)
	}
}

func TestHeaderPatternEscapesMetaCharacters(t *testing.T) {
	header := "Was ist das?"
	in := []string{header, header, header, "Was ist dasX unähnlicher Satz."}
	pattern := HeaderPattern(HeaderCounts(in), HeaderThreshold)
	if pattern == nil {
		t.Fatal("HeaderPattern() = nil, want a compiled pattern")
	}
	got := RemoveHeaders(in, pattern)
	// The ? must match literally, not turn "das" optional.
	want := []string{"Was ist dasX unähnlicher Satz."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveHeaders() = %q, want %q", got, want)
	}
}

func TestRemoveInvalidChars(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		kept     bool
	}{
		{"plain sentence", "Ein ganz normaler Satz.", true},
		{"regular spaces survive", "Wörter mit normalen Leerzeichen bleiben.", true},
		{"bullet glyph", "● Erster Punkt der Liste.", false},
		{"square bullet", "❏ Noch ein Listenpunkt.", false},
		{"circle bullet", "❍ Und noch einer.", false},
		{"no-break space", "Satz mit\u00a0hartem Leerzeichen.", false},
		{"private-use marker", "Markierter\uf0a7 Satz.", false},
		{"hyphen", "Ein mehr-teiliges Wort.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveInvalidChars([]string{tt.sentence})
			if kept := len(got) == 1; kept != tt.kept {
				t.Errorf("RemoveInvalidChars(%q): kept = %v, want %v", tt.sentence, kept, tt.kept)
			}
		})
	}
}

func TestRemoveDigits(t *testing.T) {
	in := []string{"Kapitel 1 beginnt hier.", "Ohne Ziffern geht es weiter."}
	want := []string{"Ohne Ziffern geht es weiter."}
	if got := RemoveDigits(in); !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveDigits() = %q, want %q", got, want)
	}
}

func TestCleanInputNotMutated(t *testing.T) {
	in := []string{"Das ist\nein langer Satz."}
	snapshot := append([]string(nil), in...)
	p := New(&testsupport.FakeAnnotator{}).WithSegmentation(false)
	if _, err := p.Clean(context.Background(), in); err != nil {
		t.Fatalf("Clean() error: %v", err)
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("Clean() mutated its input: %q", in)
	}
}

func TestCleanEndToEnd(t *testing.T) {
	lines := []string{
		"Kapitel 1\n",
		"\t\n",
		"Das ist ein Beispiel für einen Satz.\n",
		"Das ist ein Beispiel für einen Satz.\n",
		"Das ist ein Beispiel für einen Satz.\n",
		"Er geht nach Hause und kocht Abendessen.\n",
	}

	p := New(german.New())
	got, err := p.Clean(context.Background(), lines)
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}
	want := []string{"Er geht nach Hause und kocht Abendessen."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}
