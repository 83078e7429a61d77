// Package turkmorph decomposes Turkish surface word forms into candidate
// morphological parses: a root lexeme plus an ordered suffix chain
// consistent with Turkish vowel harmony, consonant assimilation and
// morpheme ordering rules.
//
// The engine is a morpheme-transition graph walked by a backtracking
// depth-first search seeded from every lexicon root that is a
// prefix-compatible stem of the input. Multiple valid derivations for one
// surface form are returned together; ambiguity is data, not an error.
//
// All exported types are immutable after construction and safe for
// concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Vowel elision before the progressive (bekle → bekliyor) is not
//     recovered; only buffer-dropped forms (oku → okuyor) analyze.
//   - Suffix-internal voicing under further suffixation (gelecek →
//     geleceğim) is not modeled.
//   - Compound and multi-word lexemes are not supported.
package turkmorph

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config selects the engine variant at construction time. The zero value
// is the strict, diacritic-sensitive engine with the fallback analyzer
// enabled.
type Config struct {
	// Informal enables the colloquial morphotactics variant.
	Informal bool
	// IgnoreDiacriticsInAnalysis selects the diacritic-insensitive
	// analyzer: a plain vowel or consonant also matches its
	// diacritic-bearing counterpart.
	IgnoreDiacriticsInAnalysis bool
	// DisableUnidentifiedTokenAnalyzer turns off the out-of-vocabulary
	// fallback stage.
	DisableUnidentifiedTokenAnalyzer bool
	// UseCache requests the dynamic analysis cache. The cache is not
	// implemented; setting this makes New fail with ErrCacheUnsupported
	// rather than silently running uncached.
	UseCache bool
	// Tokenizer overrides the default word tokenizer.
	Tokenizer Tokenizer
}

// Morphology is the word-level analysis orchestrator. Built once, then
// read-only; every Analyze call is an independent computation over the
// shared immutable graph and lexicon.
type Morphology struct {
	lexicon       *RootLexicon
	morphotactics *Morphotactics
	analyzer      *RuleBasedAnalyzer
	unidentified  *UnidentifiedTokenAnalyzer
	tokenizer     Tokenizer
	useFallback   bool
}

// New builds a Morphology over the given lexicon. The configuration is
// validated once; the resulting engine is immutable.
func New(lexicon *RootLexicon, cfg Config) (*Morphology, error) {
	if cfg.UseCache {
		return nil, ErrCacheUnsupported
	}
	if lexicon == nil {
		return nil, fmt.Errorf("turkmorph: nil lexicon")
	}

	start := time.Now()
	morphotactics := NewMorphotactics(cfg.Informal)

	var analyzer *RuleBasedAnalyzer
	if cfg.IgnoreDiacriticsInAnalysis {
		analyzer = NewDiacriticInsensitiveAnalyzer(lexicon, morphotactics)
	} else {
		analyzer = NewRuleBasedAnalyzer(lexicon, morphotactics)
	}

	tokenizer := cfg.Tokenizer
	if tokenizer == nil {
		tokenizer = DefaultTokenizer
	}

	m := &Morphology{
		lexicon:       lexicon,
		morphotactics: morphotactics,
		analyzer:      analyzer,
		unidentified:  NewUnidentifiedTokenAnalyzer(analyzer),
		tokenizer:     tokenizer,
		useFallback:   !cfg.DisableUnidentifiedTokenAnalyzer,
	}
	log.Info().
		Int("items", lexicon.Size()).
		Bool("informal", cfg.Informal).
		Dur("elapsed", time.Since(start)).
		Msg("morphology initialized")
	return m, nil
}

// NewWithDefaults builds the strict engine over the embedded default
// lexicon.
func NewWithDefaults() (*Morphology, error) {
	return New(DefaultLexicon(), Config{})
}

// Lexicon returns the root lexicon the engine was built over.
func (m *Morphology) Lexicon() *RootLexicon {
	return m.lexicon
}

// Analyze analyzes a single word. Input that does not tokenize into
// exactly one token is returned unanalyzed with NormalizedInput equal to
// the raw input.
func (m *Morphology) Analyze(word string) *WordAnalysis {
	if word == "" {
		return EmptyInputResult
	}
	tokens := m.tokenizer.Tokenize(word)
	if len(tokens) != 1 {
		return &WordAnalysis{Input: word, NormalizedInput: word}
	}
	return m.AnalyzeToken(tokens[0])
}

// AnalyzeToken analyzes one tokenized word.
func (m *Morphology) AnalyzeToken(token Token) *WordAnalysis {
	word := token.Text
	s := NormalizeForAnalysis(word)
	if s == "" {
		return EmptyInputResult
	}

	var result []*SingleAnalysis
	if ContainsApostrophe(s) {
		result = m.analyzeWithApostrophe(s)
	} else {
		result = m.analyzer.Analyze(s)
	}

	if len(result) == 0 && m.useFallback {
		result = m.unidentified.Analyze(token)
	}
	// A lone unknown-item result carries no information; collapse it to
	// "no analyses".
	if len(result) == 1 && result[0].IsUnknown() {
		result = nil
	}

	return &WordAnalysis{Input: word, NormalizedInput: s, Analyses: result}
}

// AnalyzeSentence tokenizes text and analyzes each word in order.
func (m *Morphology) AnalyzeSentence(text string) []*WordAnalysis {
	tokens := m.tokenizer.Tokenize(text)
	results := make([]*WordAnalysis, 0, len(tokens))
	for _, t := range tokens {
		results = append(results, m.AnalyzeToken(t))
	}
	return results
}

// analyzeWithApostrophe handles the pattern stem'suffix used for proper
// nouns with case or possessive endings attached after an apostrophe.
// The word is analyzed with the apostrophe removed and the results are
// filtered to noun-compatible parses that either apply the third-person
// singular possessive or whose stem equals the pre-apostrophe part. An
// apostrophe at the first or last position is a malformed pattern and
// yields no analyses.
func (m *Morphology) analyzeWithApostrophe(word string) []*SingleAnalysis {
	index := strings.IndexRune(word, '\'')
	if index <= 0 || index == len(word)-1 {
		return nil
	}

	stem := Normalize(word[:index])
	withoutQuote := strings.ReplaceAll(word, "'", "")

	parses := m.analyzer.Analyze(withoutQuote)
	var out []*SingleAnalysis
	for _, p := range parses {
		if !nounCompatible(p.Item.POS) {
			continue
		}
		if p.ContainsMorpheme("P3sg") || p.Stem == stem {
			out = append(out, p)
		}
	}
	return out
}

// nounCompatible reports whether a part of speech licenses the
// apostrophe-before-suffix pattern.
func nounCompatible(pos PartOfSpeech) bool {
	return pos == POSNoun || pos == POSProperNoun
}
