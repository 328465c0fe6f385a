// Package lexer implements the preprocessor-level lexical analyzer for
// Verilog/SystemVerilog source. It recognizes conditional compilation
// directives and treats all other source text as opaque runs, which is all
// the variant analysis needs.
package lexer

import (
	"fmt"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// definition describes the preprocessor-level lexical structure. Comments and
// string literals are matched as single tokens so that directive-looking text
// inside them is never mistaken for a directive. Backtick directives other
// than the conditional set (`define, `include, `timescale, ...) pass through
// as plain text.
var definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?:[^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"(?:[^"\\\n]|\\.)*"`},
	{Name: "Ifdef", Pattern: "`ifdef\\b"},
	{Name: "Ifndef", Pattern: "`ifndef\\b"},
	{Name: "Elsif", Pattern: "`elsif\\b"},
	{Name: "Else", Pattern: "`else\\b"},
	{Name: "Endif", Pattern: "`endif\\b"},
	{Name: "Directive", Pattern: "`[A-Za-z_][A-Za-z0-9_$]*"},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_$]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Text", Pattern: "[^A-Za-z_ \t\r\n\"/`]+|[/`]"},
})

// symbolTypes maps rule names to token types.
var symbolTypes = map[string]TokenType{
	"Comment":    TokenComment,
	"String":     TokenString,
	"Ifdef":      TokenIfdef,
	"Ifndef":     TokenIfndef,
	"Elsif":      TokenElsif,
	"Else":       TokenElse,
	"Endif":      TokenEndif,
	"Directive":  TokenText,
	"Ident":      TokenIdentifier,
	"Whitespace": TokenWhitespace,
	"Text":       TokenText,
}

// typeForSymbol is the rule-id to token-type mapping derived from definition.
var typeForSymbol = func() map[plexer.TokenType]TokenType {
	m := make(map[plexer.TokenType]TokenType, len(symbolTypes))
	for name, id := range definition.Symbols() {
		if tt, ok := symbolTypes[name]; ok {
			m[id] = tt
		}
	}
	return m
}()

// Tokenize lexes source into the flat token sequence consumed by the variant
// analysis. The returned sequence does not include an EOF token.
func Tokenize(filename, source string) ([]Token, error) {
	lx, err := definition.LexString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("lexing %s: %w", filename, err)
	}

	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, fmt.Errorf("lexing %s: %w", filename, err)
		}
		if tok.EOF() {
			break
		}
		tt, ok := typeForSymbol[tok.Type]
		if !ok {
			tt = TokenText
		}
		tokens = append(tokens, Token{
			Type:    tt,
			Literal: tok.Value,
			Pos: Position{
				Line:   tok.Pos.Line,
				Column: tok.Pos.Column,
				Offset: tok.Pos.Offset,
			},
		})
	}
	return tokens, nil
}
