package turkmorph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/acikdil/turkmorph/data"
)

// PartOfSpeech represents the primary grammatical category of a lexical item.
type PartOfSpeech int

const (
	POSNoun PartOfSpeech = iota
	POSAdjective
	POSVerb
	POSAdverb
	POSPronoun
	POSNumeral
	POSConjunction
	POSPostposition
	POSInterjection
	POSProperNoun
	POSUnknown
)

// posNames maps PartOfSpeech values to their string names.
var posNames = map[PartOfSpeech]string{
	POSNoun:         "Noun",
	POSAdjective:    "Adj",
	POSVerb:         "Verb",
	POSAdverb:       "Adv",
	POSPronoun:      "Pron",
	POSNumeral:      "Num",
	POSConjunction:  "Conj",
	POSPostposition: "Postp",
	POSInterjection: "Interj",
	POSProperNoun:   "Prop",
	POSUnknown:      "Unk",
}

// posFromName maps string names back to PartOfSpeech values.
var posFromName = func() map[string]PartOfSpeech {
	m := make(map[string]PartOfSpeech, len(posNames))
	for pos, name := range posNames {
		m[name] = pos
	}
	return m
}()

// String returns the name of the part of speech.
func (p PartOfSpeech) String() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PartOfSpeech(%d)", int(p))
}

// RootAttributes is a bit set of irregularity flags on a lexical item.
type RootAttributes uint16

const (
	// AttrVoicing marks a root whose final voiceless consonant voices
	// before vowel-initial suffixes: kitap → kitab-ı.
	AttrVoicing RootAttributes = 1 << iota
	// AttrNoVoicing suppresses voicing where the default phonology would
	// apply it: sepet → sepet-i.
	AttrNoVoicing
	// AttrLastVowelDrop marks a root that drops its last vowel before
	// vowel-initial suffixes: burun → burn-u.
	AttrLastVowelDrop
	// AttrDoubling marks a root whose final consonant doubles before
	// vowel-initial suffixes: his → hiss-i.
	AttrDoubling
	// AttrInverseHarmony marks a root whose suffixes harmonize with a
	// front vowel despite a back final vowel: saat → saat-i.
	AttrInverseHarmony
	// AttrProperNoun marks a proper noun root.
	AttrProperNoun
)

// Has reports whether all bits of attr are set.
func (a RootAttributes) Has(attr RootAttributes) bool {
	return a&attr == attr
}

// attrFromName maps lexicon-file attribute names to their bits.
var attrFromName = map[string]RootAttributes{
	"Voicing":       AttrVoicing,
	"NoVoicing":     AttrNoVoicing,
	"LastVowelDrop": AttrLastVowelDrop,
	"Doubling":      AttrDoubling,
	"InverseHarm":   AttrInverseHarmony,
	"Prop":          AttrProperNoun,
}

// LexicalItem is a root lexeme. Items are immutable after lexicon
// construction and shared by pointer across every analysis that uses them.
type LexicalItem struct {
	// Lemma is the dictionary headword (e.g. "gelmek" for the root "gel").
	Lemma string
	// Root is the normalized root form used for matching.
	Root string
	// POS is the primary part of speech.
	POS PartOfSpeech
	// Attributes holds the irregularity flags.
	Attributes RootAttributes

	// unknown marks the synthetic placeholder item.
	unknown bool
}

// IsUnknown reports whether the item is the synthetic unknown placeholder.
func (it *LexicalItem) IsUnknown() bool {
	return it.unknown
}

func (it *LexicalItem) String() string {
	return fmt.Sprintf("[%s %s]", it.Lemma, it.POS)
}

// UnknownItem is the shared placeholder for non-analyzable input.
var UnknownItem = &LexicalItem{
	Lemma:   "UNK",
	Root:    "UNK",
	POS:     POSUnknown,
	unknown: true,
}

// StemCandidate pairs a lexical item with one of its stem allomorph
// surfaces. VowelExpected candidates may only be followed by a
// vowel-initial suffix and never end the word.
type StemCandidate struct {
	Item          *LexicalItem
	Surface       string
	VowelExpected bool
}

// stemVariants derives the stem allomorph surfaces for an item from its
// attributes. The plain root is always a candidate; irregular roots add
// the alternated surface, valid only before vowel-initial suffixes.
func stemVariants(it *LexicalItem) []StemCandidate {
	variants := []StemCandidate{{Item: it, Surface: it.Root}}
	runes := []rune(it.Root)
	if len(runes) == 0 {
		return variants
	}

	if it.Attributes.Has(AttrVoicing) && !it.Attributes.Has(AttrNoVoicing) {
		if v := Voiced(runes[len(runes)-1]); v != 0 {
			// k voices to g, not ğ, after n: renk → rengi.
			if v == 'ğ' && len(runes) >= 2 && runes[len(runes)-2] == 'n' {
				v = 'g'
			}
			voiced := string(runes[:len(runes)-1]) + string(v)
			variants = append(variants, StemCandidate{Item: it, Surface: voiced, VowelExpected: true})
		}
	}
	if it.Attributes.Has(AttrLastVowelDrop) && len(runes) >= 3 {
		// The drop removes the vowel before the final consonant:
		// burun → burn, ağız → ağz.
		last := len(runes) - 1
		if !IsVowel(runes[last]) && IsVowel(runes[last-1]) {
			dropped := string(runes[:last-1]) + string(runes[last])
			variants = append(variants, StemCandidate{Item: it, Surface: dropped, VowelExpected: true})
		}
	}
	if it.Attributes.Has(AttrDoubling) {
		last := runes[len(runes)-1]
		if !IsVowel(last) {
			doubled := it.Root + string(last)
			variants = append(variants, StemCandidate{Item: it, Surface: doubled, VowelExpected: true})
		}
	}
	return variants
}

// trieNode is one rune of the stem trie. Candidates whose surface ends at
// this node are stored on the node itself.
type trieNode struct {
	children   map[rune]*trieNode
	candidates []StemCandidate
}

func newTrieNode() *trieNode {
	return &trieNode{children: map[rune]*trieNode{}}
}

// RootLexicon maps normalized stem surfaces to lexical items. It is
// read-only after construction and safe for unrestricted concurrent use.
type RootLexicon struct {
	root  *trieNode
	items []*LexicalItem
}

// NewRootLexicon returns an empty lexicon.
func NewRootLexicon() *RootLexicon {
	return &RootLexicon{root: newTrieNode()}
}

// Add inserts an item and all of its stem allomorphs into the lexicon.
func (l *RootLexicon) Add(it *LexicalItem) {
	l.items = append(l.items, it)
	for _, cand := range stemVariants(it) {
		node := l.root
		for _, r := range cand.Surface {
			next, ok := node.children[r]
			if !ok {
				next = newTrieNode()
				node.children[r] = next
			}
			node = next
		}
		node.candidates = append(node.candidates, cand)
	}
}

// Size returns the number of items in the lexicon.
func (l *RootLexicon) Size() int {
	return len(l.items)
}

// Items returns the loaded items in insertion order.
func (l *RootLexicon) Items() []*LexicalItem {
	return l.items
}

// ItemsWithStemPrefix returns every stem candidate whose surface is a
// prefix of word. With ignoreDiacritics, a plain input letter also matches
// a diacritic-bearing lexicon letter (kisi → kişi).
func (l *RootLexicon) ItemsWithStemPrefix(word string, ignoreDiacritics bool) []StemCandidate {
	var out []StemCandidate
	nodes := []*trieNode{l.root}
	for _, r := range word {
		var next []*trieNode
		for _, n := range nodes {
			if child, ok := n.children[r]; ok {
				next = append(next, child)
			}
			if ignoreDiacritics {
				for cr, child := range n.children {
					if cr != r && FoldDiacritic(cr) == FoldDiacritic(r) {
						next = append(next, child)
					}
				}
			}
		}
		if len(next) == 0 {
			break
		}
		for _, n := range next {
			out = append(out, n.candidates...)
		}
		nodes = next
	}
	return out
}

// ParseLexiconLine parses one lexicon line into a LexicalItem.
// Line format: lemma[=root]|POS[|attr1,attr2,...]
// When no root is given the root is the normalized lemma; for verbs the
// -mek/-mak infinitive ending is stripped.
func ParseLexiconLine(line string) (*LexicalItem, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil, fmt.Errorf("lexicon line %q: want lemma|POS", line)
	}

	it := &LexicalItem{}

	lemmaRoot := strings.SplitN(parts[0], "=", 2)
	it.Lemma = strings.TrimSpace(lemmaRoot[0])
	if it.Lemma == "" {
		return nil, fmt.Errorf("lexicon line %q: empty lemma", line)
	}

	pos, ok := posFromName[strings.TrimSpace(parts[1])]
	if !ok {
		return nil, fmt.Errorf("lexicon line %q: unknown POS %q", line, parts[1])
	}
	it.POS = pos

	if len(lemmaRoot) > 1 {
		it.Root = Normalize(strings.TrimSpace(lemmaRoot[1]))
	} else {
		it.Root = Normalize(it.Lemma)
		if pos == POSVerb {
			for _, inf := range []string{"mek", "mak"} {
				if strings.HasSuffix(it.Root, inf) && len(it.Root) > len(inf) {
					it.Root = it.Root[:len(it.Root)-len(inf)]
					break
				}
			}
		}
	}

	if len(parts) > 2 && parts[2] != "" {
		for _, name := range strings.Split(parts[2], ",") {
			attr, ok := attrFromName[strings.TrimSpace(name)]
			if !ok {
				return nil, fmt.Errorf("lexicon line %q: unknown attribute %q", line, name)
			}
			it.Attributes |= attr
		}
	}
	if it.POS == POSProperNoun {
		it.Attributes |= AttrProperNoun
	}
	return it, nil
}

// LoadLexicon reads lexicon lines from r. Blank lines and lines starting
// with '#' are skipped.
func LoadLexicon(r io.Reader) (*RootLexicon, error) {
	lex := NewRootLexicon()
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		it, err := ParseLexiconLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		lex.Add(it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return lex, nil
}

// DefaultLexicon loads the embedded root lexicon.
func DefaultLexicon() *RootLexicon {
	lex, err := LoadLexicon(strings.NewReader(data.Lexicon))
	if err != nil {
		// The embedded file is validated by tests; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	log.Debug().Int("items", lex.Size()).Msg("default lexicon loaded")
	return lex
}
