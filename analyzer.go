package turkmorph

import "sort"

// RuleBasedAnalyzer walks the morphotactics graph from every lexicon
// root that is a prefix-compatible stem of the input and collects all
// complete derivations. Instances are immutable after construction and
// safe for unrestricted concurrent use; all mutable search state is
// call-local.
type RuleBasedAnalyzer struct {
	lexicon          *RootLexicon
	morphotactics    *Morphotactics
	ignoreDiacritics bool
}

// NewRuleBasedAnalyzer returns the diacritic-sensitive analyzer.
func NewRuleBasedAnalyzer(lexicon *RootLexicon, m *Morphotactics) *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{lexicon: lexicon, morphotactics: m}
}

// NewDiacriticInsensitiveAnalyzer returns the analyzer variant whose
// guards accept a plain letter where the lexicon or a suffix carries the
// diacritic-bearing counterpart.
func NewDiacriticInsensitiveAnalyzer(lexicon *RootLexicon, m *Morphotactics) *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{lexicon: lexicon, morphotactics: m, ignoreDiacritics: true}
}

// walker holds the call-local state of one analysis run.
type walker struct {
	analyzer *RuleBasedAnalyzer
	input    []rune
	results  []*SingleAnalysis
}

// Analyze returns every valid derivation of the normalized word. An
// empty result is the expected outcome for out-of-grammar input, not an
// error. The returned order is deterministic: longer stems first, then
// fewer morphemes, then structural key.
func (a *RuleBasedAnalyzer) Analyze(word string) []*SingleAnalysis {
	if word == "" {
		return nil
	}
	w := &walker{analyzer: a, input: []rune(word)}

	for _, cand := range a.lexicon.ItemsWithStemPrefix(word, a.ignoreDiacritics) {
		stemLen := len([]rune(cand.Surface))
		rest := w.input[stemLen:]
		if cand.VowelExpected && len(rest) == 0 {
			// Alternated stems never end the word: kitab, burn, hiss.
			continue
		}
		// The stem is recorded from the input, not the lexicon, so the
		// surface invariant holds under diacritic-insensitive matching.
		stem := string(w.input[:stemLen])

		lastVowel := LastVowel(cand.Surface)
		if cand.Item.Attributes.Has(AttrInverseHarmony) {
			lastVowel = 'e'
		}

		w.walk(searchPoint{
			item:       cand.Item,
			stem:       stem,
			state:      a.morphotactics.EntryState(cand.Item),
			pos:        stemLen,
			prevLast:   LastRune(cand.Surface),
			lastVowel:  lastVowel,
			needsVowel: cand.VowelExpected,
			derivedPOS: cand.Item.POS,
		}, nil)
	}

	w.results = dedupAnalyses(w.results)
	sortAnalyses(w.results)
	return w.results
}

// searchPoint is one node of the depth-first search.
type searchPoint struct {
	item       *LexicalItem
	stem       string
	state      *State
	pos        int  // rune index of the first unconsumed input rune
	prevLast   rune // final rune of the surface built so far
	lastVowel  rune // harmony-governing vowel of the surface so far
	needsVowel bool // next suffix must be vowel-initial (alternated stem)
	derivedPOS PartOfSpeech
}

// walk explores every outgoing transition whose guard passes. All
// branches are tried; structural ambiguity is intentional fan-out, not
// an error.
func (w *walker) walk(p searchPoint, morphemes []MorphemeSurface) {
	if p.pos == len(w.input) && p.state.Terminal && !p.needsVowel {
		w.results = append(w.results, &SingleAnalysis{
			Item:      p.item,
			Stem:      p.stem,
			Morphemes: cloneMorphemes(morphemes),
			POS:       p.derivedPOS,
		})
	}
	if p.pos >= len(w.input) {
		return
	}

	rest := w.input[p.pos:]
	for _, tr := range p.state.Transitions() {
		surface := Realize(tr.Template, p.prevLast, p.lastVowel)
		if surface == "" {
			continue
		}
		sr := []rune(surface)
		if p.needsVowel && !IsVowel(sr[0]) {
			continue
		}
		if !runesHavePrefix(rest, sr, w.analyzer.ignoreDiacritics) {
			continue
		}

		next := searchPoint{
			item:       p.item,
			stem:       p.stem,
			state:      tr.To,
			pos:        p.pos + len(sr),
			prevLast:   sr[len(sr)-1],
			lastVowel:  p.lastVowel,
			derivedPOS: p.derivedPOS,
		}
		if v := LastVowel(surface); v != 0 {
			next.lastVowel = v
		}
		if tr.Morpheme.Derivational {
			next.derivedPOS = tr.Morpheme.DerivedPOS
		}

		// Record the surface as it appears in the input so that
		// stem+suffixes reconstructs the analyzed word exactly.
		consumed := string(rest[:len(sr)])
		w.walk(next, append(morphemes, MorphemeSurface{Morpheme: tr.Morpheme, Surface: consumed}))
	}
}

// runesHavePrefix reports whether input starts with the realized suffix,
// under diacritic-tolerant comparison when requested.
func runesHavePrefix(input, prefix []rune, ignoreDiacritics bool) bool {
	if len(prefix) > len(input) {
		return false
	}
	for i := range prefix {
		if !RunesEqual(input[i], prefix[i], ignoreDiacritics) {
			return false
		}
	}
	return true
}

func cloneMorphemes(ms []MorphemeSurface) []MorphemeSurface {
	out := make([]MorphemeSurface, len(ms))
	copy(out, ms)
	return out
}

// dedupAnalyses removes structurally equal derivations. Distinct suffix
// paths consuming the same characters survive; only true duplicates
// (same root item, stem and morpheme chain) collapse.
func dedupAnalyses(results []*SingleAnalysis) []*SingleAnalysis {
	if len(results) <= 1 {
		return results
	}
	seen := make(map[string]struct{}, len(results))
	out := results[:0]
	for _, a := range results {
		k := a.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}

// sortAnalyses orders results for reproducibility: longer stems first
// (less stripping), then fewer morphemes, then structural key.
func sortAnalyses(results []*SingleAnalysis) {
	sort.Slice(results, func(i, j int) bool {
		si, sj := len(results[i].Stem), len(results[j].Stem)
		if si != sj {
			return si > sj
		}
		mi, mj := len(results[i].Morphemes), len(results[j].Morphemes)
		if mi != mj {
			return mi < mj
		}
		return results[i].key() < results[j].key()
	})
}
