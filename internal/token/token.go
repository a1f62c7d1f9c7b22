package token

import "fmt"

// Token is a single lexical token. Lexeme is a non-owning view into
// the source buffer; it remains valid as long as the buffer lives.
type Token struct {
	Lexeme string
	Type   Leaf
	Line   uint64
	Column uint64
}

// New builds a Token.
func New(lexeme string, typ Leaf, line, column uint64) Token {
	return Token{Lexeme: lexeme, Type: typ, Line: line, Column: column}
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("Token{%s, %q, %d:%d}", t.Type, t.Lexeme, t.Line, t.Column)
}
