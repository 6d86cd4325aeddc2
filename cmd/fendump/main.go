// Command fendump is a small demo driver for the lexer and ast packages.
// It is deliberately outside the library's scope (spec §1 excludes the CLI
// driver and file I/O), in the same spirit as the teacher's cmd/mibdump:
// a thin flag-parsing shell around the library that makes it runnable from
// a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/lukeod/fen/ast"
	"github.com/lukeod/fen/lexer"
	"github.com/lukeod/fen/source"
)

func main() {
	log.SetFlags(0)

	file := flag.String("file", "", "path to a source file to tokenize")
	mode := flag.String("mode", "tokens", "output mode: tokens, repr, or ast")
	indentUnit := flag.String("indent", "  ", "indent unit for -mode=ast")
	flag.Parse()

	switch *mode {
	case "tokens", "repr":
		if *file == "" {
			log.Fatal("Error: -file is required for -mode=tokens/repr")
		}
		runTokenDump(*file, *mode)
	case "ast":
		runASTDemo(*indentUnit)
	default:
		log.Fatalf("Error: invalid -mode %q. Must be 'tokens', 'repr', or 'ast'", *mode)
	}
}

// runTokenDump tokenizes the named file and prints every token, collecting
// (rather than aborting on) lexical errors, then reports them afterward.
func runTokenDump(path, mode string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error reading %s: %v", path, err)
	}

	file := source.NewWithOrigin(string(contents), path)

	var lexErrors []string
	onError := func(span *source.FileSpan, message string) {
		line, _ := span.Line()
		col, _ := span.Column()
		lexErrors = append(lexErrors, fmt.Sprintf("%s %q at %d:%d", message, span.Text(), line+1, col+1))
	}

	tokens, err := lexer.Tokenize(file, onError)
	if err != nil {
		log.Fatalf("Error tokenizing %s: %v", path, err)
	}

	switch mode {
	case "repr":
		repr.Println(tokens)
	default:
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
	}

	if len(lexErrors) > 0 {
		fmt.Fprintln(os.Stderr, "--- lexical errors ---")
		for _, e := range lexErrors {
			fmt.Fprintln(os.Stderr, e)
		}
	}
}

// runASTDemo walks a small hand-built tree through PrintTreeVisitor. There
// is no parser in scope to build a tree from tokens, so this exists purely
// to exercise the visitor framework end to end.
func runASTDemo(indentUnit string) {
	unit := &ast.CompilationUnit{
		Functions: []*ast.FunctionDeclaration{
			{
				Name:   "add",
				Params: []string{"a", "b"},
				Body: []ast.Node{
					&ast.ReturnStatement{
						Value: &ast.InvocationExpression{
							Target: &ast.Identifier{Name: "a"},
							Args:   []ast.Node{&ast.Identifier{Name: "b"}},
						},
					},
				},
			},
		},
	}

	unit.Accept(ast.NewPrintTreeVisitorIndent(os.Stdout, indentUnit))
}
