// Package data embeds the default root lexicon.
package data

import _ "embed"

//go:embed lexicon.txt
var Lexicon string
