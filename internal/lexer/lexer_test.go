package lexer

import (
	"testing"

	"github.com/emberlang/ember/internal/token"
)

func TestLexerIntegrationScenario(t *testing.T) {
	src := "using std;\n" +
		"module sample.hello;\n" +
		"# Test Comment\n" +
		"var mystr: string = \"\"\"ml\n" +
		"test\"\"\";\n" +
		"entry(args: ...string) : void {\n" +
		"    console.print(\"Hello, World!\");\n" +
		"}"

	want := []struct {
		typ    token.Leaf
		lexeme string
		line   uint64
	}{
		{token.KwUsing, "using", 1},
		{token.Identifier, "std", 1},
		{token.DcTerminator, ";", 1},
		{token.KwModule, "module", 2},
		{token.Identifier, "sample", 2},
		{token.OpAccess, ".", 2},
		{token.Identifier, "hello", 2},
		{token.DcTerminator, ";", 2},
		{token.Comment, "# Test Comment", 3},
		{token.KwVar, "var", 4},
		{token.Identifier, "mystr", 4},
		{token.DcColon, ":", 4},
		{token.KwString, "string", 4},
		{token.OpAssign, "=", 4},
		{token.LvMlString, "\"\"\"ml\ntest\"\"\"", 4},
		{token.DcTerminator, ";", 5},
		{token.Identifier, "entry", 6},
		{token.DcLparen, "(", 6},
		{token.Identifier, "args", 6},
		{token.DcColon, ":", 6},
		{token.OpEllipsis, "...", 6},
		{token.KwString, "string", 6},
		{token.DcRparen, ")", 6},
		{token.DcColon, ":", 6},
		{token.KwVoid, "void", 6},
		{token.DcLbrace, "{", 6},
		{token.Identifier, "console", 7},
		{token.OpAccess, ".", 7},
		{token.Identifier, "print", 7},
		{token.DcLparen, "(", 7},
		{token.LvRawString, "\"Hello, World!\"", 7},
		{token.DcRparen, ")", 7},
		{token.DcTerminator, ";", 7},
		{token.DcRbrace, "}", 8},
		{token.EOS, "", 8},
	}

	s := NewState(src)
	l := New()
	for i, w := range want {
		tok, err := l.NextToken(s)
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Type != w.typ || tok.Lexeme != w.lexeme || tok.Line != w.line {
			t.Fatalf("token %d: got {%s,%q,line=%d}, want {%s,%q,line=%d}",
				i, tok.Type, tok.Lexeme, tok.Line, w.typ, w.lexeme, w.line)
		}
	}
}

func TestLexerEmptySource(t *testing.T) {
	s := NewState("")
	l := New()
	tok, err := l.NextToken(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.EOS || tok.Line != 1 || tok.Column != 0 {
		t.Errorf("got %v, want EOS at (1,0)", tok)
	}

	// A second call past end of source must stay idempotent.
	tok2, err := l.NextToken(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok2.Type != token.EOS {
		t.Errorf("got %v, want EOS again", tok2)
	}
}

func TestLexerOnlyWhitespace(t *testing.T) {
	s := NewState("   \n\t\n  ")
	l := New()
	tok, err := l.NextToken(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.EOS {
		t.Errorf("got %v, want EOS", tok)
	}
}
