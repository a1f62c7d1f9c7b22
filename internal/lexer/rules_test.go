package lexer

import (
	"testing"

	"github.com/emberlang/ember/internal/token"
)

func lexOne(t *testing.T, src string) (token.Token, *Error) {
	t.Helper()
	s := NewState(src)
	l := New()
	return l.NextToken(s)
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		typ     token.Leaf
		lexeme  string
		errKind ErrKind
	}{
		{"zero", "0", token.LvSigned, "0", Success},
		{"zero_then_space", "0 rest", token.LvSigned, "0", Success},
		{"octal", "0123", token.LvSigned, "0123", Success},
		{"decimal_multi", "9081", token.LvSigned, "9081", Success},
		{"float", "3.14", token.LvDecimal, "3.14", Success},
		{"trailing_dot_untouched", "3.", token.LvSigned, "3", Success},
		{"binary", "0b1010", token.LvSigned, "0b1010", Success},
		{"binary_missing_body", "0b", 0, "", InvalidBinary},
		{"hex", "0xFF_not", token.LvSigned, "0xFF", Success},
		{"hex_missing_body", "0x", 0, "", InvalidHexadecimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := lexOne(t, tt.src)
			if tt.errKind != Success {
				if err == nil || err.Kind != tt.errKind {
					t.Fatalf("expected error kind %s, got %v", tt.errKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != tt.typ || tok.Lexeme != tt.lexeme {
				t.Errorf("got {%s,%q}, want {%s,%q}", tok.Type, tok.Lexeme, tt.typ, tt.lexeme)
			}
		})
	}
}

func TestCharacterLiterals(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		lexeme  string
		errKind ErrKind
	}{
		{"simple", "'a'", "'a'", Success},
		{"escaped_newline", `'\n'`, `'\n'`, Success},
		{"unicode_short", `'\uB'`, `'\uB'`, Success},
		{"unicode_full", `'\uBeeF'`, `'\uBeeF'`, Success},
		{"unicode_too_long", `'\uDEADBEEF'`, "", InvalidUnicode},
		{"unterminated", "'a", "", InvalidCharacter},
		// A raw multi-byte codepoint is more than one code unit: the
		// byte-oriented character rule only ever consumes a single
		// code unit directly, so a non-ASCII literal must go through
		// the \u escape instead.
		{"raw_multibyte_rejected", "'é'", "", InvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := lexOne(t, tt.src)
			if tt.errKind != Success {
				if err == nil || err.Kind != tt.errKind {
					t.Fatalf("expected error kind %s, got %v", tt.errKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != token.LvCharacter || tok.Lexeme != tt.lexeme {
				t.Errorf("got {%s,%q}, want {%s,%q}", tok.Type, tok.Lexeme, token.LvCharacter, tt.lexeme)
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		typ     token.Leaf
		errKind ErrKind
	}{
		{"plain", `"hello"`, token.LvRawString, Success},
		{"interpolated", `"hi {name}"`, token.LvIntString, Success},
		{"escaped_brace_not_interpolation", `"hi \{name}"`, token.LvRawString, Success},
		{"unterminated_newline", "\"hi\n", 0, InvalidRawString},
		{"multiline", `"""hi
there"""`, token.LvMlString, Success},
		{"multiline_interpolated", `"""hi {name}"""`, token.LvMliString, Success},
		{"multiline_unterminated", `"""hi`, 0, InvalidMlString},
		{"raw_multiline", `r"""hi
there"""`, token.LvRawString, Success},
		// raw strings never interpolate (§9 open question): braces are
		// literal content, so this still yields lv_raw_string.
		{"raw_multiline_interpolated", `r"""hi {name}"""`, token.LvRawString, Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := lexOne(t, tt.src)
			if tt.errKind != Success {
				if err == nil || err.Kind != tt.errKind {
					t.Fatalf("expected error kind %s, got %v", tt.errKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != tt.typ {
				t.Errorf("got type %s, want %s (lexeme %q)", tok.Type, tt.typ, tok.Lexeme)
			}
		})
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	tests := []struct {
		src string
		typ token.Leaf
	}{
		{"+", token.OpAdd}, {"++", token.OpInc}, {"+=", token.OpAddAssign},
		{"-", token.OpSub}, {"--", token.OpDec}, {"-=", token.OpSubAssign},
		{"==", token.OpEquals}, {"=", token.OpAssign},
		{"&", token.OpBitAnd}, {"&&", token.OpLogAnd}, {"&&=", token.OpLogAndAssign}, {"&=", token.OpBitAndAssign},
		{"|", token.OpBitOr}, {"||", token.OpLogOr}, {"||=", token.OpLogOrAssign},
		{"<", token.OpLess}, {"<=", token.OpLessEq}, {"<<", token.OpBitLsh}, {"<<=", token.OpBitLshAssign},
		{">", token.OpGreater}, {">=", token.OpGreaterEq}, {">>", token.OpBitRsh}, {">>=", token.OpBitRshAssign},
		{".", token.OpAccess}, {"..", token.OpCascade}, {"...", token.OpEllipsis},
		{"?", token.OpTernary},
		{"(", token.DcLparen}, {")", token.DcRparen},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok, err := lexOne(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.src, err)
			}
			if tok.Type != tt.typ || tok.Lexeme != tt.src {
				t.Errorf("%q: got {%s,%q}, want {%s,%q}", tt.src, tok.Type, tok.Lexeme, tt.typ, tt.src)
			}
		})
	}
}

func TestUnrecognizedCharacterIsNotMyToken(t *testing.T) {
	// '@' isn't in the closed punctuation set (§4.2.9) and isn't a
	// digit, letter, quote, or '#' either: every rule declines and the
	// dispatcher reports not_my_token without consuming input.
	_, err := lexOne(t, "@")
	if err == nil || err.Kind != NotMyToken {
		t.Fatalf("expected not_my_token, got %v", err)
	}
}

func TestOperatorUnknownFallback(t *testing.T) {
	// Every character in the punctuation set is handled explicitly by
	// the table in §4.2.9, so the operator rule's Unknown default is
	// never reached through the default rules; bytes outside the set
	// get a not_my_token error from the dispatcher instead (see
	// TestUnrecognizedCharacterIsNotMyToken). This checks that a set
	// member, '(', lexes to its own kind rather than falling back.
	tok, err := lexOne(t, "(")
	if err != nil || tok.Type != token.DcLparen {
		t.Fatalf("sanity check failed: %v %v", tok, err)
	}
}

func TestCommentAndIdentifier(t *testing.T) {
	tok, err := lexOne(t, "# a comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.Comment || tok.Lexeme != "# a comment" {
		t.Errorf("got {%s,%q}", tok.Type, tok.Lexeme)
	}

	tok, err = lexOne(t, "myVar_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.Identifier || tok.Lexeme != "myVar_2" {
		t.Errorf("got {%s,%q}", tok.Type, tok.Lexeme)
	}

	tok, err = lexOne(t, "while")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.KwWhile {
		t.Errorf("got %s, want keyword while", tok.Type)
	}
}

func TestLitmusNeverAdvancesOnFalse(t *testing.T) {
	// §8: if a rule's Litmus is false, its Tokenize is never invoked by
	// the dispatcher. We check the contrapositive end-to-end: feeding a
	// source that only the operator rule accepts must not disturb the
	// cursor for any of the other rules (each declines without
	// consuming input).
	s := NewState("+")
	for _, r := range DefaultRules() {
		r.Litmus(s.RemainingSource())
		if s.Index != 0 {
			t.Fatalf("rule %T advanced state via Litmus", r)
		}
	}
}
