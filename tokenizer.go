package turkmorph

import "regexp"

// Token is one word-level span of input text.
type Token struct {
	// Text is the token content.
	Text string
	// Start is the byte offset of the token in the source text.
	Start int
}

// Tokenizer splits raw text into word-level tokens. The orchestrator
// requires exactly one token for single-word analysis.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// reToken matches a word run: letters and digits, with internal
// apostrophes (ahmet'ın) and dots (abbreviations like a.ş.) kept inside
// the token.
var reToken = regexp.MustCompile(`[\pL\pN'\x{2019}.]+`)

// wordTokenizer is the default regexp-based word scanner.
type wordTokenizer struct{}

// DefaultTokenizer is the tokenizer used when the configuration does not
// supply one.
var DefaultTokenizer Tokenizer = wordTokenizer{}

func (wordTokenizer) Tokenize(text string) []Token {
	spans := reToken.FindAllStringIndex(text, -1)
	if spans == nil {
		return nil
	}
	tokens := make([]Token, 0, len(spans))
	for _, sp := range spans {
		tokens = append(tokens, Token{Text: text[sp[0]:sp[1]], Start: sp[0]})
	}
	return tokens
}
