// Command emberfront drives the Ember lexer and parser from the
// command line: tokenize or parse a source file and report either the
// resulting tokens/AST or a structured diagnostic.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emberlang/ember/internal/ast"
	emberrors "github.com/emberlang/ember/internal/errors"
	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/parser"
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		jsonFlag    = flag.Bool("json", false, "Emit diagnostics as JSON reports")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s dev\n", bold("emberfront"))
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch command := flag.Arg(0); command {
	case "lex":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: emberfront lex <file.em>")
			os.Exit(1)
		}
		lexFile(flag.Arg(1), *jsonFlag)
	case "parse":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: emberfront parse <file.em>")
			os.Exit(1)
		}
		parseFile(flag.Arg(1), *jsonFlag)
	case "repl":
		runRepl()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("emberfront - Ember lexer/parser front end"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  emberfront <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>    Tokenize a source file\n", cyan("lex"))
	fmt.Printf("  %s <file>  Parse a source file into a document\n", cyan("parse"))
	fmt.Printf("  %s           Start the interactive REPL\n", cyan("repl"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --json       Emit diagnostics as structured JSON reports")
	fmt.Println("  --version    Print version information")
	fmt.Println("  --help       Show this help message")
}

func lexFile(path string, asJSON bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file %q: %v\n", red("Error"), path, err)
		os.Exit(1)
	}

	normalized := lexer.Normalize(content)
	st := lexer.NewState(string(normalized))
	lx := lexer.New()

	toks, lerr := lx.Tokenize(st)
	for _, tok := range toks {
		fmt.Printf("%s %-16s %q\n", yellow(fmt.Sprintf("%d:%d", tok.Line, tok.Column)), tok.Type, tok.Lexeme)
	}
	if lerr != nil {
		reportLexError(lerr, asJSON)
		os.Exit(1)
	}
	fmt.Printf("%s %d tokens\n", green("✓"), len(toks))
}

func parseFile(path string, asJSON bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file %q: %v\n", red("Error"), path, err)
		os.Exit(1)
	}

	s, lerr := parser.NewState(path, content)
	if lerr != nil {
		reportLexError(lerr, asJSON)
		os.Exit(1)
	}

	doc, perr := parser.ParseDocument(s)
	if perr != nil {
		reportSynError(perr, asJSON)
		os.Exit(1)
	}

	printDocument(doc)
	fmt.Printf("%s parsed %d import(s), %d module(s)\n", green("✓"), len(doc.Imports), len(doc.Modules))
}

func printDocument(doc *ast.Document) {
	for _, imp := range doc.Imports {
		fmt.Println(imp.String())
	}
	for _, mod := range doc.Modules {
		fmt.Println(mod.String())
		for _, v := range mod.Variables {
			fmt.Printf("  %s\n", v.String())
		}
		for _, a := range mod.Aliases {
			fmt.Printf("  %s\n", a.String())
		}
		for _, e := range mod.Enumerations {
			fmt.Printf("  %s\n", e.String())
		}
		for _, f := range mod.Functions {
			fmt.Printf("  %s\n", f.String())
		}
		for _, o := range mod.Objects {
			fmt.Printf("  %s\n", o.String())
		}
		for _, ext := range mod.Extensions {
			fmt.Printf("  %s\n", ext.String())
		}
	}
}

func reportLexError(err *lexer.Error, asJSON bool) {
	printDiagnostic(emberrors.WrapReport(emberrors.FromLexErr(err)), "lex error", asJSON)
}

func reportSynError(err *parser.SynErr, asJSON bool) {
	printDiagnostic(emberrors.WrapReport(emberrors.FromSynErr(err)), "parse error", asJSON)
}

// printDiagnostic renders a diagnostic wrapped by WrapReport, going
// through AsReport to recover the structured Report rather than
// assuming its concrete type — the same seam a host embedding this
// front end would use if the error passed through other, unrelated
// error-handling code first.
func printDiagnostic(err error, label string, asJSON bool) {
	rep, ok := emberrors.AsReport(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red(label), err)
		return
	}
	if asJSON {
		out, _ := rep.ToJSON(true)
		fmt.Println(out)
		return
	}
	fmt.Fprintf(os.Stderr, "%s [%s] %d:%d %s\n", red(label), rep.Code, rep.Line, rep.Column, rep.Message)
}
