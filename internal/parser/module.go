package parser

import (
	"strings"

	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseModule implements ModuleParser (SPEC_FULL §4.8): `module
// SimplePath { ModuleMember* }` or the bare `module SimplePath ;`
// form shown in spec.md §8 scenario 6 — both are accepted since the
// source's own worked example uses the semicolon form. A brace body
// is fully consumed here; the bare semicolon form returns with open
// == true, and DocumentParser feeds the module's own trailing
// top-level members (there being no brace to delimit them) into the
// same Module until the next 'module'/'using' or end of source.
func ParseModule(s *State) (mod *ast.Module, open bool, err *SynErr) {
	if s.Current.Type != token.KwModule {
		return nil, false, notMySyntax(s, "expected 'module'")
	}
	line, col := s.pos()
	if nerr := s.NextToken(); nerr != nil {
		return nil, false, hardErr(Unrecoverable, s, nerr.Error())
	}

	path, perr := ParseSimplePath(s)
	if perr != nil {
		return nil, false, promote(perr)
	}

	mod = &ast.Module{Path: path, Pos: ast.Pos{Line: line, Column: col}}

	switch s.Current.Type {
	case token.DcTerminator:
		if nerr := s.NextToken(); nerr != nil {
			return nil, false, hardErr(Unrecoverable, s, nerr.Error())
		}
		return mod, true, nil
	case token.DcLbrace:
		if nerr := s.NextToken(); nerr != nil {
			return nil, false, hardErr(Unrecoverable, s, nerr.Error())
		}
		for s.Current.Type != token.DcRbrace {
			if s.Current.Type == token.EOS {
				return nil, false, hardErr(Failure, s, "unterminated module body")
			}
			if merr := parseModuleMember(s, mod); merr != nil {
				return nil, false, merr
			}
		}
		if nerr := s.NextToken(); nerr != nil { // '}'
			return nil, false, hardErr(Unrecoverable, s, nerr.Error())
		}
		return mod, false, nil
	default:
		return nil, false, hardErr(ExpectedTerminator, s, "expected ';' or '{' after module path")
	}
}

// isModuleMemberStart reports whether t can begin a ModuleMember
// (SPEC_FULL §4.8 dispatch table).
func isModuleMemberStart(t token.Leaf) bool {
	switch t {
	case token.KwVar, token.KwConst, token.KwStatic, token.KwAlias,
		token.KwDef, token.KwObject, token.KwExtend, token.Identifier:
		return true
	}
	return false
}

// parseModuleMember dispatches on the leading keyword of one
// ModuleMember and appends the parsed node to the matching sequence
// of mod, preserving source order within that sequence.
func parseModuleMember(s *State, mod *ast.Module) *SynErr {
	switch s.Current.Type {
	case token.KwVar, token.KwConst, token.KwStatic:
		v, err := parseVariable(s)
		if err != nil {
			return err
		}
		mod.Variables = append(mod.Variables, v)
		return nil
	case token.KwAlias:
		a, err := parseAlias(s)
		if err != nil {
			return err
		}
		mod.Aliases = append(mod.Aliases, a)
		return nil
	case token.KwDef:
		f, err := parseFunction(s)
		if err != nil {
			return err
		}
		mod.Functions = append(mod.Functions, f)
		return nil
	case token.KwObject:
		o, err := parseObject(s)
		if err != nil {
			return err
		}
		mod.Objects = append(mod.Objects, o)
		return nil
	case token.KwExtend:
		e, err := parseExtension(s)
		if err != nil {
			return err
		}
		mod.Extensions = append(mod.Extensions, e)
		return nil
	case token.Identifier:
		e, err := parseEnumeration(s)
		if err != nil {
			return err
		}
		mod.Enumerations = append(mod.Enumerations, e)
		return nil
	default:
		return hardErr(ExpectedModuleMember, s, "unrecognized module member")
	}
}

// parseVariable parses `(var|const|static) NAME : TYPE ;` as a
// header-only Variable (spec.md §9: initializer expressions deferred).
func parseVariable(s *State) (*ast.Variable, *SynErr) {
	line, col := s.pos()
	if err := s.NextToken(); err != nil { // var/const/static
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.Identifier {
		return nil, hardErr(ExpectedIdentifier, s, "expected variable name")
	}
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.DcColon {
		return nil, hardErr(Failure, s, "expected ':' after variable name")
	}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	typ, terr := ParseType(s)
	if terr != nil {
		return nil, promote(terr)
	}
	if err := skipPastInitializer(s); err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name, VarType: typ, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// skipPastInitializer consumes an optional `= <expr>` and the closing
// ';': expression parsing is deferred (spec §9), so any initializer is
// skipped as a raw span up to the next top-level ';'.
func skipPastInitializer(s *State) *SynErr {
	if s.Current.Type == token.OpAssign {
		for s.Current.Type != token.DcTerminator {
			if s.Current.Type == token.EOS {
				return hardErr(ExpectedTerminator, s, "expected ';' after variable initializer")
			}
			if err := s.NextToken(); err != nil {
				return hardErr(Unrecoverable, s, err.Error())
			}
		}
	}
	if s.Current.Type != token.DcTerminator {
		return hardErr(ExpectedTerminator, s, "expected ';' after variable declaration")
	}
	return finishNextToken(s)
}

func finishNextToken(s *State) *SynErr {
	if err := s.NextToken(); err != nil {
		return hardErr(Unrecoverable, s, err.Error())
	}
	return nil
}

// parseAlias parses `alias NAME = TYPE ;`.
func parseAlias(s *State) (*ast.Alias, *SynErr) {
	line, col := s.pos()
	if err := s.NextToken(); err != nil { // 'alias'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.Identifier {
		return nil, hardErr(ExpectedIdentifier, s, "expected alias name")
	}
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.OpAssign {
		return nil, hardErr(Failure, s, "expected '=' after alias name")
	}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	typ, terr := ParseType(s)
	if terr != nil {
		return nil, promote(terr)
	}
	if s.Current.Type != token.DcTerminator {
		return nil, hardErr(ExpectedTerminator, s, "expected ';' after alias")
	}
	if err := finishNextToken(s); err != nil {
		return nil, err
	}
	return &ast.Alias{Name: name, Aliased: typ, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseEnumeration parses `NAME { V1, V2, ... }`.
func parseEnumeration(s *State) (*ast.Enumeration, *SynErr) {
	line, col := s.pos()
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.DcLbrace {
		// parseModuleMember has no alternative production for a bare
		// leading identifier: once committed to it, a missing '{' is
		// a hard error, not a soft decline.
		return nil, hardErr(Failure, s, "expected '{' to open enumeration body")
	}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var values []string
	for s.Current.Type != token.DcRbrace {
		if s.Current.Type != token.Identifier {
			return nil, hardErr(ExpectedIdentifier, s, "expected enumeration variant name")
		}
		values = append(values, s.Current.Lexeme)
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
		if s.Current.Type == token.DcComma {
			if err := s.NextToken(); err != nil {
				return nil, hardErr(Unrecoverable, s, err.Error())
			}
			continue
		}
		break
	}
	if s.Current.Type != token.DcRbrace {
		return nil, hardErr(Failure, s, "expected '}' to close enumeration body")
	}
	if err := finishNextToken(s); err != nil {
		return nil, err
	}
	return &ast.Enumeration{Name: name, Values: values, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseObject parses `object NAME { ... }`, recording each member as
// an opaque StubMember span (spec.md §9: member grammars deferred).
func parseObject(s *State) (*ast.Object, *SynErr) {
	line, col := s.pos()
	if err := s.NextToken(); err != nil { // 'object'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.Identifier {
		return nil, hardErr(ExpectedIdentifier, s, "expected object name")
	}
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	members, berr := parseStubMembers(s)
	if berr != nil {
		return nil, berr
	}
	return &ast.Object{Name: name, Members: members, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseExtension parses `extend TARGET { ... }`.
func parseExtension(s *State) (*ast.Extension, *SynErr) {
	line, col := s.pos()
	if err := s.NextToken(); err != nil { // 'extend'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	target, terr := ParsePathExpr(s)
	if terr != nil {
		return nil, promote(terr)
	}
	members, berr := parseStubMembers(s)
	if berr != nil {
		return nil, berr
	}
	return &ast.Extension{Target: target, Members: members, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseStubMembers consumes a '{'-delimited body, recording each
// top-level, semicolon- or brace-terminated member as a raw
// StubMember span (its token lexemes joined by single spaces) rather
// than a parsed declaration.
func parseStubMembers(s *State) ([]*ast.StubMember, *SynErr) {
	if s.Current.Type != token.DcLbrace {
		return nil, hardErr(Failure, s, "expected '{' to open body")
	}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var members []*ast.StubMember
	for s.Current.Type != token.DcRbrace {
		if s.Current.Type == token.EOS {
			return nil, hardErr(Failure, s, "unterminated body")
		}
		line, col := s.pos()
		var raw []string
		depth := 0
		for {
			if s.Current.Type == token.EOS {
				return nil, hardErr(Failure, s, "unterminated member span")
			}
			if depth == 0 && (s.Current.Type == token.DcTerminator || s.Current.Type == token.DcRbrace) {
				break
			}
			switch s.Current.Type {
			case token.DcLbrace:
				depth++
			case token.DcRbrace:
				depth--
			}
			closedBrace := depth == 0 && s.Current.Type == token.DcRbrace
			raw = append(raw, s.Current.Lexeme)
			if err := s.NextToken(); err != nil {
				return nil, hardErr(Unrecoverable, s, err.Error())
			}
			if closedBrace {
				break
			}
		}
		if s.Current.Type == token.DcTerminator {
			raw = append(raw, ";")
			if err := s.NextToken(); err != nil {
				return nil, hardErr(Unrecoverable, s, err.Error())
			}
		}
		members = append(members, &ast.StubMember{Raw: strings.Join(raw, " "), Pos: ast.Pos{Line: line, Column: col}})
	}
	if err := finishNextToken(s); err != nil { // '}'
		return nil, err
	}
	return members, nil
}

// parseFunction parses `def NAME SIGNATURE ;` or `def NAME SIGNATURE {
// ... }`. SIGNATURE is the parenthesized part of a function type,
// `( inputs ) [: output]`, recorded as an FnType with no path
// segments; a brace body is skipped as a balanced span and kept as
// its token lexemes joined by single spaces (spec.md §9: statement
// grammar deferred).
func parseFunction(s *State) (*ast.Function, *SynErr) {
	line, col := s.pos()
	if err := s.NextToken(); err != nil { // 'def'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}
	if s.Current.Type != token.Identifier {
		return nil, hardErr(ExpectedIdentifier, s, "expected function name")
	}
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	if s.Current.Type != token.DcLparen {
		return nil, hardErr(Failure, s, "expected '(' to open function signature")
	}
	sigLine, sigCol := s.pos()
	sig, terr := parseFnType(s, nil, sigLine, sigCol)
	if terr != nil {
		return nil, promote(terr)
	}

	if s.Current.Type == token.DcTerminator {
		if err := finishNextToken(s); err != nil {
			return nil, err
		}
		return &ast.Function{Name: name, Signature: sig, Pos: ast.Pos{Line: line, Column: col}}, nil
	}

	body, berr := captureBalancedBraceSpan(s)
	if berr != nil {
		return nil, berr
	}
	return &ast.Function{Name: name, Signature: sig, Body: body, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// captureBalancedBraceSpan consumes a '{'-delimited span (nested
// braces included) and returns its token lexemes joined by single
// spaces; original spacing and comments are not kept.
func captureBalancedBraceSpan(s *State) (string, *SynErr) {
	if s.Current.Type != token.DcLbrace {
		return "", hardErr(Failure, s, "expected '{' to open function body")
	}
	var raw []string
	depth := 0
	for {
		if s.Current.Type == token.EOS {
			return "", hardErr(Failure, s, "unterminated function body")
		}
		switch s.Current.Type {
		case token.DcLbrace:
			depth++
		case token.DcRbrace:
			depth--
		}
		raw = append(raw, s.Current.Lexeme)
		if err := s.NextToken(); err != nil {
			return "", hardErr(Unrecoverable, s, err.Error())
		}
		if depth == 0 {
			break
		}
	}
	return strings.Join(raw, " "), nil
}
