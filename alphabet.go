package turkmorph

import (
	"strings"
	"unicode"
)

// lowerReplacer applies the Turkish-specific case folding before the
// generic unicode lowering: dotless I and dotted İ do not follow the
// default Latin mapping.
var lowerReplacer = strings.NewReplacer(
	"I", "ı", // I → ı
	"İ", "i", // İ → i
)

// ToLower lowercases s using the Turkish case mapping.
func ToLower(s string) string {
	return strings.ToLower(lowerReplacer.Replace(s))
}

// circumflexReplacer folds circumflexed vowels to their plain forms.
var circumflexReplacer = strings.NewReplacer(
	"â", "a", // â → a
	"î", "i", // î → i
	"û", "u", // û → u
	"Â", "A", // Â → A
	"Î", "I", // Î → I
	"Û", "U", // Û → U
)

// NormalizeCircumflex strips circumflex marks from s.
func NormalizeCircumflex(s string) string {
	return circumflexReplacer.Replace(s)
}

// apostropheReplacer canonicalizes apostrophe-like characters to U+0027.
var apostropheReplacer = strings.NewReplacer(
	"‘", "'", // ‘
	"’", "'", // ’
	"‛", "'", // ‛
	"ʼ", "'", // ʼ
	"`", "'", // `
	"´", "'", // ´
	"′", "'", // ′
)

// NormalizeApostrophes maps all apostrophe variants in s to a single
// canonical apostrophe character.
func NormalizeApostrophes(s string) string {
	return apostropheReplacer.Replace(s)
}

// ContainsApostrophe reports whether s contains a canonical apostrophe.
func ContainsApostrophe(s string) bool {
	return strings.ContainsRune(s, '\'')
}

// Normalize is the standard alphabet normalization for lexicon keys:
// Turkish lowering followed by circumflex folding.
func Normalize(s string) string {
	return NormalizeCircumflex(ToLower(s))
}

// NormalizeForAnalysis prepares a raw token for morphological analysis:
// Turkish lowering, circumflex folding, internal dot removal (abbreviations),
// apostrophe canonicalization. Dots are kept when removing them would empty
// the string. Idempotent.
func NormalizeForAnalysis(word string) string {
	s := Normalize(word)
	noDot := strings.ReplaceAll(s, ".", "")
	if len(noDot) == 0 {
		noDot = s
	}
	return NormalizeApostrophes(noDot)
}

// backVowels contains the Turkish back vowels (lowercase).
var backVowels = map[rune]bool{
	'a': true, 'ı': true, // ı
	'o': true, 'u': true,
}

// frontVowels contains the Turkish front vowels (lowercase).
var frontVowels = map[rune]bool{
	'e': true, 'i': true,
	'ö': true, 'ü': true, // ö ü
}

// roundedVowels contains the Turkish rounded vowels (lowercase).
var roundedVowels = map[rune]bool{
	'o': true, 'u': true,
	'ö': true, 'ü': true, // ö ü
}

// voicelessCons contains the Turkish voiceless consonants (fıstıkçı şahap).
var voicelessCons = map[rune]bool{
	'f': true, 's': true, 't': true, 'k': true,
	'ç': true, // ç
	'ş': true, // ş
	'h': true, 'p': true,
}

// voicingPairs maps a stem-final voiceless consonant to its voiced form
// used before vowel-initial suffixes: kitap → kitab-ı.
var voicingPairs = map[rune]rune{
	'p': 'b',
	'ç': 'c', // ç → c
	't': 'd',
	'k': 'ğ', // k → ğ
	'g': 'ğ', // g → ğ
}

// diacriticFold maps diacritic-bearing Turkish letters to their plain
// ASCII counterparts for diacritic-insensitive matching.
var diacriticFold = map[rune]rune{
	'ç': 'c', // ç
	'ğ': 'g', // ğ
	'ı': 'i', // ı
	'ö': 'o', // ö
	'ş': 's', // ş
	'ü': 'u', // ü
}

// IsVowel reports whether r is a Turkish vowel (lowercase).
func IsVowel(r rune) bool {
	return backVowels[r] || frontVowels[r]
}

// IsBackVowel reports whether r is a back vowel.
func IsBackVowel(r rune) bool {
	return backVowels[r]
}

// IsRoundedVowel reports whether r is a rounded vowel.
func IsRoundedVowel(r rune) bool {
	return roundedVowels[r]
}

// IsVoiceless reports whether r is a voiceless consonant.
func IsVoiceless(r rune) bool {
	return voicelessCons[r]
}

// Voiced returns the voiced counterpart of a stem-final consonant,
// or 0 when the consonant does not alternate.
func Voiced(r rune) rune {
	return voicingPairs[r]
}

// FoldDiacritic returns the plain counterpart of a diacritic-bearing
// Turkish letter, or r unchanged.
func FoldDiacritic(r rune) rune {
	if p, ok := diacriticFold[r]; ok {
		return p
	}
	return r
}

// RunesEqual reports whether a and b are the same letter. When
// ignoreDiacritics is true, a diacritic-bearing letter also matches its
// plain counterpart in either direction (ş matches s, s matches ş).
func RunesEqual(a, b rune, ignoreDiacritics bool) bool {
	if a == b {
		return true
	}
	if !ignoreDiacritics {
		return false
	}
	return FoldDiacritic(a) == FoldDiacritic(b)
}

// LastVowel returns the last vowel of s, or 0 when s has none.
func LastVowel(s string) rune {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if IsVowel(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

// LastRune returns the final rune of s, or 0 for the empty string.
func LastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// HarmonyA resolves the two-way harmony metavowel A against the last
// vowel of the preceding surface: back → a, front → e.
func HarmonyA(lastVowel rune) rune {
	if lastVowel == 0 || IsBackVowel(lastVowel) {
		return 'a'
	}
	return 'e'
}

// HarmonyI resolves the four-way harmony metavowel I against the last
// vowel of the preceding surface: aı→ı, ou→u, ei→i, öü→ü.
func HarmonyI(lastVowel rune) rune {
	back := lastVowel == 0 || IsBackVowel(lastVowel)
	rounded := IsRoundedVowel(lastVowel)
	switch {
	case back && rounded:
		return 'u'
	case back:
		return 'ı' // ı
	case rounded:
		return 'ü' // ü
	default:
		return 'i'
	}
}

// IsAllDigits reports whether s is non-empty and consists solely of digits.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// StartsUpper reports whether the first rune of s is an uppercase letter.
func StartsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
