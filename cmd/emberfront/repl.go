package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/parser"
	"github.com/peterh/liner"
)

// runRepl starts an interactive loop: each line is lexed and parsed as
// a standalone document fragment, echoing either the resulting tokens
// and AST or a structured diagnostic. Grounded on the teacher's own
// liner-based REPL loop (history file, multiline mode, completer).
func runRepl() {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".emberfront_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	line.SetMultiLineMode(true)
	line.SetCompleter(func(text string) (c []string) {
		if strings.HasPrefix(text, ":") {
			for _, cmd := range []string{":help", ":quit", ":tokens"} {
				if strings.HasPrefix(cmd, text) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Printf("%s\n", bold("emberfront repl"))
	fmt.Println("Type :help for help, :quit to exit")
	fmt.Println()

	showTokens := false

	for {
		input, err := line.Prompt("ember> ")
		if err == io.EOF {
			fmt.Println(green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			continue
		}
		line.AppendHistory(input)

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":help":
				fmt.Println("  :help      Show this help")
				fmt.Println("  :quit      Exit the REPL")
				fmt.Println("  :tokens    Toggle printing the raw token stream before parsing")
			case ":quit":
				return
			case ":tokens":
				showTokens = !showTokens
				fmt.Printf("token printing: %v\n", showTokens)
			default:
				fmt.Printf("Unknown command: %s\n", trimmed)
			}
			continue
		}

		if showTokens {
			replPrintTokens(input)
		}
		replParse(input)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func replPrintTokens(src string) {
	normalized := lexer.Normalize([]byte(src))
	st := lexer.NewState(string(normalized))
	lx := lexer.New()
	toks, lerr := lx.Tokenize(st)
	for _, tok := range toks {
		fmt.Printf("  %s\n", tok.String())
	}
	if lerr != nil {
		reportLexError(lerr, false)
	}
}

func replParse(src string) {
	s, lerr := parser.NewState("<repl>", []byte(src))
	if lerr != nil {
		reportLexError(lerr, false)
		return
	}
	doc, perr := parser.ParseDocument(s)
	if perr != nil {
		reportSynError(perr, false)
		return
	}
	printDocument(doc)
}
