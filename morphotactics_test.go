package turkmorph

import "testing"

func TestRealize(t *testing.T) {
	tests := []struct {
		template  string
		prevLast  rune
		lastVowel rune
		want      string
	}{
		// Two-way harmony: plural after back and front vowels.
		{"lAr", 'v', 'e', "ler"},
		{"lAr", 'p', 'a', "lar"},
		// Four-way harmony.
		{"lIk", 'ı', 'ı', "lık"},
		{"lIk", 'z', 'ö', "lük"},
		// Consonant hardening.
		{">dA", 'v', 'e', "de"},
		{">dA", 'p', 'a', "ta"},
		{">dIr", 'ş', 'i', "tir"},
		{">cI", 'p', 'a', "çı"},
		{">cI", 'a', 'a', "cı"},
		// Optional vowel: dropped after a vowel-final surface.
		{"+Im", 'v', 'e', "im"},
		{"+Im", 'a', 'a', "m"},
		// Buffer consonant: inserted only after a vowel-final surface.
		{"+yA", 'v', 'e', "e"},
		{"+yA", 'a', 'a', "ya"},
		{"+sI", 'v', 'e', "i"},
		{"+sI", 'a', 'a', "sı"},
		{"+nIn", 't', 'e', "in"},
		{"+nIn", 'a', 'a', "nın"},
		// Progressive: optional vowel plus invariant tail.
		{"+Iyor", 'l', 'e', "iyor"},
		{"+Iyor", 'u', 'u', "yor"},
		// Future: buffer y plus harmony vowels.
		{"+yAcAk", 'l', 'e', "ecek"},
		{"+yAcAk", 'u', 'u', "yacak"},
	}
	for _, tt := range tests {
		got := Realize(tt.template, tt.prevLast, tt.lastVowel)
		if got != tt.want {
			t.Errorf("Realize(%q, %c, %c) = %q, want %q", tt.template, tt.prevLast, tt.lastVowel, got, tt.want)
		}
	}
}

func TestEntryState(t *testing.T) {
	m := NewMorphotactics(false)
	tests := []struct {
		pos  PartOfSpeech
		want string
	}{
		{POSNoun, "noun_S"},
		{POSAdjective, "noun_S"},
		{POSProperNoun, "noun_S"},
		{POSVerb, "verb_root"},
		{POSConjunction, "other_S"},
	}
	for _, tt := range tests {
		got := m.EntryState(&LexicalItem{POS: tt.pos})
		if got.ID != tt.want {
			t.Errorf("EntryState(%v) = %s, want %s", tt.pos, got.ID, tt.want)
		}
	}
}

func TestInformalVariantAddsColloquialPaths(t *testing.T) {
	strict := NewMorphotactics(false)
	informal := NewMorphotactics(true)

	hasMorpheme := func(m *Morphotactics, state *State, id string) bool {
		for _, tr := range state.Transitions() {
			if tr.Morpheme.ID == id {
				return true
			}
		}
		return false
	}

	if hasMorpheme(strict, strict.verbRoot, "Prog1Informal") {
		t.Error("strict graph offers the colloquial progressive")
	}
	if !hasMorpheme(informal, informal.verbRoot, "Prog1Informal") {
		t.Error("informal graph misses the colloquial progressive")
	}
	if hasMorpheme(strict, strict.verbPast, "Ques") {
		t.Error("strict graph offers the attached question particle")
	}
	if !hasMorpheme(informal, informal.verbPast, "Ques") {
		t.Error("informal graph misses the attached question particle")
	}
}

func TestGraphStatesTerminalFlags(t *testing.T) {
	m := NewMorphotactics(false)
	if m.verbNeg.Terminal {
		t.Error("negation state must not be terminal: a bare gelme- is not a word ending")
	}
	for _, s := range []*State{m.nounS, m.nounA3pl, m.nounPoss, m.nounCase, m.verbRoot, m.verbPast, m.verbPres} {
		if !s.Terminal {
			t.Errorf("state %s must be terminal", s.ID)
		}
	}
}
