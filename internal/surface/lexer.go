// Package surface implements the S-expression surface grammar of spec §6:
//
//	expr  := fluid | mix
//	fluid := "(fluid" NUM NUM ")"
//	mix   := "(mix" expr expr ")"
//	NUM   := signed decimal literal | fraction "a/b"
//
// The lexer and grammar follow the stateful-lexer-plus-struct-tags idiom
// the teacher (kanso-lang-kanso) uses for its own language, built on
// github.com/alecthomas/participle/v2.
package surface

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// MixLangLexer tokenizes the surface grammar. Numbers are captured whole
// (including an optional "a/b" fraction and leading sign) so the grammar
// layer can hand them to numeric.ParseQ without further lexical work.
var MixLangLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Keyword", Pattern: `fluid|mix`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?(/[0-9]+(\.[0-9]+)?)?`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
