package turkmorph

import "testing"

func TestNormalizeForAnalysis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kitap", "kitap"},
		{"İstanbul", "istanbul"},
		{"IŞIK", "ışık"},
		{"kâğıt", "kağıt"},   // kâğıt → kağıt
		{"Rüzgâr", "rüzgar"},           // Rüzgâr → rüzgar
		{"a.ş.", "aş"},                      // abbreviation dots stripped
		{"...", "..."},                                // stripping would empty: kept
		{"ahmet’ın", "ahmet'ın"},       // curly apostrophe canonicalized
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeForAnalysis(tt.in); got != tt.want {
			t.Errorf("NormalizeForAnalysis(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeForAnalysisIdempotent(t *testing.T) {
	inputs := []string{"Kitap", "İstanbul", "a.ş.", "...", "ahmet'ın", "kâğıt"}
	for _, in := range inputs {
		once := NormalizeForAnalysis(in)
		twice := NormalizeForAnalysis(once)
		if once != twice {
			t.Errorf("NormalizeForAnalysis not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestHarmony(t *testing.T) {
	tests := []struct {
		lastVowel rune
		wantA     rune
		wantI     rune
	}{
		{'a', 'a', 'ı'}, // back unrounded → a, ı
		{'ı', 'a', 'ı'},
		{'o', 'a', 'u'}, // back rounded → a, u
		{'u', 'a', 'u'},
		{'e', 'e', 'i'}, // front unrounded → e, i
		{'i', 'e', 'i'},
		{'ö', 'e', 'ü'}, // front rounded → e, ü
		{'ü', 'e', 'ü'},
	}
	for _, tt := range tests {
		if got := HarmonyA(tt.lastVowel); got != tt.wantA {
			t.Errorf("HarmonyA(%c) = %c, want %c", tt.lastVowel, got, tt.wantA)
		}
		if got := HarmonyI(tt.lastVowel); got != tt.wantI {
			t.Errorf("HarmonyI(%c) = %c, want %c", tt.lastVowel, got, tt.wantI)
		}
	}
}

func TestRunesEqualDiacritics(t *testing.T) {
	tests := []struct {
		a, b   rune
		ignore bool
		want   bool
	}{
		{'s', 'ş', false, false}, // s vs ş, strict
		{'s', 'ş', true, true},   // s vs ş, insensitive
		{'ş', 's', true, true},   // either direction
		{'c', 'ç', true, true},
		{'ı', 'i', true, true},
		{'a', 'e', true, false},
		{'k', 'k', false, true},
	}
	for _, tt := range tests {
		if got := RunesEqual(tt.a, tt.b, tt.ignore); got != tt.want {
			t.Errorf("RunesEqual(%c, %c, %v) = %v, want %v", tt.a, tt.b, tt.ignore, got, tt.want)
		}
	}
}

func TestVoiced(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'p', 'b'},
		{'ç', 'c'},
		{'t', 'd'},
		{'k', 'ğ'},
		{'m', 0},
	}
	for _, tt := range tests {
		if got := Voiced(tt.in); got != tt.want {
			t.Errorf("Voiced(%c) = %c, want %c", tt.in, got, tt.want)
		}
	}
}

func TestLastVowel(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"kitap", 'a'},
		{"ev", 'e'},
		{"göz", 'ö'},
		{"krt", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := LastVowel(tt.in); got != tt.want {
			t.Errorf("LastVowel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
