package turkmorph

import "strings"

// MorphemeSurface is one applied morpheme together with the surface form
// it realized as in the analyzed word.
type MorphemeSurface struct {
	Morpheme *Morpheme
	Surface  string
}

// SingleAnalysis is one complete derivation of a word: the lexical item
// used as root, the stem surface, and the ordered morpheme chain.
// Immutable once produced.
type SingleAnalysis struct {
	// Item is the root lexeme, shared by pointer with the lexicon.
	Item *LexicalItem
	// Stem is the portion of the analyzed word matched by the root.
	Stem string
	// Morphemes is the ordered suffix chain. Concatenating Stem with
	// every surface reconstructs the analyzed word exactly.
	Morphemes []MorphemeSurface
	// POS is the derived part of speech after all derivations.
	POS PartOfSpeech
}

// Surface reconstructs the analyzed word from stem and morpheme surfaces.
func (a *SingleAnalysis) Surface() string {
	var sb strings.Builder
	sb.WriteString(a.Stem)
	for _, m := range a.Morphemes {
		sb.WriteString(m.Surface)
	}
	return sb.String()
}

// Ending returns the suffix portion of the analyzed word.
func (a *SingleAnalysis) Ending() string {
	var sb strings.Builder
	for _, m := range a.Morphemes {
		sb.WriteString(m.Surface)
	}
	return sb.String()
}

// ContainsMorpheme reports whether the chain applies the morpheme with
// the given id.
func (a *SingleAnalysis) ContainsMorpheme(id string) bool {
	for _, m := range a.Morphemes {
		if m.Morpheme.ID == id {
			return true
		}
	}
	return false
}

// IsUnknown reports whether the analysis is rooted in the synthetic
// unknown item.
func (a *SingleAnalysis) IsUnknown() bool {
	return a.Item.IsUnknown()
}

// String returns a debug representation,
// e.g. kitap[kitap:Noun]+lar:A3pl+da:Loc.
func (a *SingleAnalysis) String() string {
	var sb strings.Builder
	sb.WriteString(a.Stem)
	sb.WriteByte('[')
	sb.WriteString(a.Item.Lemma)
	sb.WriteByte(':')
	sb.WriteString(a.Item.POS.String())
	sb.WriteByte(']')
	for _, m := range a.Morphemes {
		sb.WriteByte('+')
		sb.WriteString(m.Surface)
		sb.WriteByte(':')
		sb.WriteString(m.Morpheme.ID)
	}
	return sb.String()
}

// key builds a structural identity string for deduplication and ordering.
func (a *SingleAnalysis) key() string {
	var sb strings.Builder
	sb.WriteString(a.Item.Lemma)
	sb.WriteByte('/')
	sb.WriteString(a.Item.POS.String())
	sb.WriteByte('/')
	sb.WriteString(a.Stem)
	for _, m := range a.Morphemes {
		sb.WriteByte('|')
		sb.WriteString(m.Morpheme.ID)
		sb.WriteByte(':')
		sb.WriteString(m.Surface)
	}
	return sb.String()
}

// Equal reports structural equality with other.
func (a *SingleAnalysis) Equal(other *SingleAnalysis) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return a.key() == other.key()
}

// WordAnalysis bundles the original input, its normalized form, and the
// ordered candidate analyses for one word.
type WordAnalysis struct {
	// Input is the raw token text.
	Input string
	// NormalizedInput is the form the search actually ran on. For input
	// that was not analyzed (multi-token, empty) it equals Input.
	NormalizedInput string
	// Analyses holds the candidate derivations, possibly empty.
	Analyses []*SingleAnalysis
}

// EmptyInputResult is the shared result for empty-string input.
var EmptyInputResult = &WordAnalysis{}

// IsCorrect reports whether the word was analyzed successfully: at least
// one candidate whose root item is not the unknown placeholder.
func (w *WordAnalysis) IsCorrect() bool {
	return len(w.Analyses) > 0 && !w.Analyses[0].IsUnknown()
}

// String returns a debug representation of the whole result.
func (w *WordAnalysis) String() string {
	var sb strings.Builder
	sb.WriteString("WordAnalysis{input=")
	sb.WriteString(w.Input)
	sb.WriteString(", normalized=")
	sb.WriteString(w.NormalizedInput)
	sb.WriteString(", analyses=[")
	for i, a := range w.Analyses {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString("]}")
	return sb.String()
}
