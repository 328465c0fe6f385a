package lexer

import "fmt"

// TokenType represents the type of a token.
type TokenType int

// Token types. Only preprocessor conditionals are given dedicated types;
// everything else in the source is opaque to the variant analysis.
const (
	TokenEOF TokenType = iota
	TokenText
	TokenWhitespace
	TokenComment
	TokenString
	TokenIdentifier

	// Conditional compilation directives.
	TokenIfdef
	TokenIfndef
	TokenElsif
	TokenElse
	TokenEndif
)

// tokenNames provides string representations for token types.
var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenText:       "TEXT",
	TokenWhitespace: "WHITESPACE",
	TokenComment:    "COMMENT",
	TokenString:     "STRING",
	TokenIdentifier: "IDENTIFIER",
	TokenIfdef:      "IFDEF",
	TokenIfndef:     "IFNDEF",
	TokenElsif:      "ELSIF",
	TokenElse:       "ELSE",
	TokenEndif:      "ENDIF",
}

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// OpensConditional reports whether the token type starts a conditional block.
func (tt TokenType) OpensConditional() bool {
	return tt == TokenIfdef || tt == TokenIfndef
}

// TestsMacro reports whether the token type tests a macro's definedness and is
// therefore followed by a macro-name identifier.
func (tt TokenType) TestsMacro() bool {
	return tt == TokenIfdef || tt == TokenIfndef || tt == TokenElsif
}

// IsConditional reports whether the token type is any conditional directive.
func (tt TokenType) IsConditional() bool {
	return tt >= TokenIfdef && tt <= TokenEndif
}

// Position represents a position in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset in source
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
}
