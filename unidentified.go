package turkmorph

// UnidentifiedTokenAnalyzer handles out-of-vocabulary tokens: numbers,
// foreign words and proper nouns absent from the lexicon. It is invoked
// only when the rule-based analyzer yields nothing, and synthesizes a
// lexical item tagging the token instead of failing.
type UnidentifiedTokenAnalyzer struct {
	analyzer *RuleBasedAnalyzer
}

// NewUnidentifiedTokenAnalyzer wires the fallback to the rule-based
// analyzer it backs up.
func NewUnidentifiedTokenAnalyzer(analyzer *RuleBasedAnalyzer) *UnidentifiedTokenAnalyzer {
	return &UnidentifiedTokenAnalyzer{analyzer: analyzer}
}

// Analyze produces a synthetic analysis for an unidentified token. Digit
// sequences become numerals and capitalized tokens proper nouns; anything
// else is rooted in the shared unknown item, which the orchestrator
// suppresses when it is the lone result.
func (u *UnidentifiedTokenAnalyzer) Analyze(token Token) []*SingleAnalysis {
	normalized := NormalizeForAnalysis(token.Text)
	if normalized == "" {
		return nil
	}

	if IsAllDigits(normalized) {
		item := &LexicalItem{Lemma: token.Text, Root: normalized, POS: POSNumeral}
		return []*SingleAnalysis{{Item: item, Stem: normalized, POS: POSNumeral}}
	}

	if StartsUpper(token.Text) {
		item := &LexicalItem{
			Lemma:      token.Text,
			Root:       normalized,
			POS:        POSProperNoun,
			Attributes: AttrProperNoun,
		}
		return []*SingleAnalysis{{Item: item, Stem: normalized, POS: POSProperNoun}}
	}

	return []*SingleAnalysis{{Item: UnknownItem, Stem: normalized, POS: POSUnknown}}
}
