package turkmorph

import (
	"strings"
	"testing"
)

// FuzzAnalyze drives the full pipeline with arbitrary input and checks
// the structural invariants that hold for every result: no panic, a
// non-nil result, and each analysis reconstructing the normalized input
// from its stem and morpheme surfaces.
func FuzzAnalyze(f *testing.F) {
	m, err := New(DefaultLexicon(), Config{})
	if err != nil {
		f.Fatal(err)
	}

	seeds := []string{
		"", "ev", "Evler", "kitabı", "geliyorum", "istanbul'a",
		"ahmet'", "'de", "1234", "Zeynep", "xqzzt", "ev araba",
		"kâğıt", "IŞIK", "a.ş.", "...", "geldimi", "burnu", "hissi",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		wa := m.Analyze(input)
		if wa == nil {
			t.Fatal("Analyze returned nil")
		}
		for _, a := range wa.Analyses {
			if a.Item == nil {
				t.Fatalf("analysis without item for %q", input)
			}
			surface := a.Surface()
			// Apostrophe-split parses reconstruct the input with the
			// apostrophe removed.
			if surface != wa.NormalizedInput &&
				surface != strings.ReplaceAll(wa.NormalizedInput, "'", "") {
				t.Fatalf("surface %q does not reconstruct normalized input %q (raw %q)",
					surface, wa.NormalizedInput, input)
			}
		}
	})
}

// FuzzNormalizeForAnalysis checks the normalizer is idempotent and never
// introduces uppercase or circumflexed characters.
func FuzzNormalizeForAnalysis(f *testing.F) {
	for _, s := range []string{"", "Kitap", "İstanbul", "IŞIK", "kâğıt", "a.ş.", "ev’de", "..."} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		once := NormalizeForAnalysis(input)
		twice := NormalizeForAnalysis(once)
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
		if strings.ContainsAny(once, "ÂÎÛâîû") {
			t.Fatalf("circumflex survived normalization: %q -> %q", input, once)
		}
	})
}
