package parser

import (
	"fmt"

	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseDocument implements DocumentParser (SPEC_FULL §4.8): (Import)*
// (Module)*. This is the one parser that recovers a panic into an
// Unrecoverable SynErr (spec.md's ambient-error-handling carry-over of
// the teacher's ParseFile wrapper) — every parser below it returns
// values only.
func ParseDocument(s *State) (doc *ast.Document, err *SynErr) {
	defer func() {
		if r := recover(); r != nil {
			line, col := s.pos()
			doc = nil
			err = &SynErr{Kind: Unrecoverable, Line: line, Column: col, Detail: fmt.Sprintf("recovered: %v", r)}
		}
	}()

	result := &ast.Document{}

	for s.Current.Type == token.KwUsing {
		imp, ierr := ParseImport(s)
		if ierr != nil {
			return nil, ierr
		}
		result.Imports = append(result.Imports, imp)
	}

	for s.Current.Type == token.KwModule {
		mod, open, merr := ParseModule(s)
		if merr != nil {
			return nil, merr
		}
		result.Modules = append(result.Modules, mod)

		if open {
			for isModuleMemberStart(s.Current.Type) {
				if merr := parseModuleMember(s, mod); merr != nil {
					return nil, merr
				}
			}
		}
	}

	if s.Current.Type != token.EOS {
		line, col := s.pos()
		return nil, &SynErr{Kind: Failure, Line: line, Column: col,
			Detail: "unconsumed input after imports and modules"}
	}

	return result, nil
}
