package turkmorph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLexiconLine(t *testing.T) {
	tests := []struct {
		line     string
		wantLem  string
		wantRoot string
		wantPOS  PartOfSpeech
		wantAttr RootAttributes
	}{
		{"ev|Noun", "ev", "ev", POSNoun, 0},
		{"kitap|Noun|Voicing", "kitap", "kitap", POSNoun, AttrVoicing},
		{"gelmek|Verb", "gelmek", "gel", POSVerb, 0},
		{"gitmek=git|Verb|Voicing", "gitmek", "git", POSVerb, AttrVoicing},
		{"ahmet|Prop", "ahmet", "ahmet", POSProperNoun, AttrProperNoun},
		{"his|Noun|Doubling", "his", "his", POSNoun, AttrDoubling},
		{"kâğıt|Noun|Voicing", "kâğıt", "kağıt", POSNoun, AttrVoicing},
	}
	for _, tt := range tests {
		it, err := ParseLexiconLine(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.wantLem, it.Lemma, "lemma of %q", tt.line)
		assert.Equal(t, tt.wantRoot, it.Root, "root of %q", tt.line)
		assert.Equal(t, tt.wantPOS, it.POS, "POS of %q", tt.line)
		assert.Equal(t, tt.wantAttr, it.Attributes, "attributes of %q", tt.line)
	}
}

func TestParseLexiconLineErrors(t *testing.T) {
	for _, line := range []string{"", "ev", "ev|Nope", "ev|Noun|Sparkly", "|Noun"} {
		_, err := ParseLexiconLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestStemVariants(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"ev|Noun", []string{"ev"}},
		{"kitap|Noun|Voicing", []string{"kitap", "kitab"}},
		{"ağaç|Noun|Voicing", []string{"ağaç", "ağac"}},
		{"burun|Noun|LastVowelDrop", []string{"burun", "burn"}},
		{"his|Noun|Doubling", []string{"his", "hiss"}},
		{"sepet|Noun|NoVoicing", []string{"sepet"}},
		{"renk|Noun|Voicing", []string{"renk", "reng"}},
	}
	for _, tt := range tests {
		it, err := ParseLexiconLine(tt.line)
		require.NoError(t, err)
		var got []string
		for _, v := range stemVariants(it) {
			got = append(got, v.Surface)
		}
		assert.Equal(t, tt.want, got, "variants of %q", tt.line)
	}
}

func TestItemsWithStemPrefix(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader("ev|Noun\nel|Noun\nkitap|Noun|Voicing\nkişi|Noun\n"))
	require.NoError(t, err)

	surfaces := func(word string, fold bool) []string {
		var out []string
		for _, c := range lex.ItemsWithStemPrefix(word, fold) {
			out = append(out, c.Surface)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"ev"}, surfaces("evler", false))
	// Only the voiced allomorph is a prefix of kitabı.
	assert.ElementsMatch(t, []string{"kitab"}, surfaces("kitabı", false))
	assert.ElementsMatch(t, []string{"kitap"}, surfaces("kitaplar", false))
	assert.Empty(t, surfaces("masa", false))

	// Diacritic-insensitive walk: plain s reaches ş.
	assert.Empty(t, surfaces("kisiler", false))
	assert.ElementsMatch(t, []string{"kişi"}, surfaces("kisiler", true))
}

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	require.NotNil(t, lex)
	assert.Greater(t, lex.Size(), 80, "embedded lexicon unexpectedly small")

	// Every embedded line must parse and carry a sensible root.
	for _, it := range lex.Items() {
		assert.NotEmpty(t, it.Root, "item %s", it.Lemma)
		assert.Equal(t, Normalize(it.Root), it.Root, "root of %s not normalized", it.Lemma)
	}
}
