package repl

import (
	"bufio"
	"fmt"
	"io"

	"klang/interpreter"
	"klang/lexer"
	"klang/object"
	"klang/parser"
)

const PROMPT = `>>>`

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	// one table for the whole session, variables survive across lines
	table := object.NewSymbolTable()
	evaluator := interpreter.NewInterpreter(table, out)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}
		line := scanner.Text()

		l := lexer.NewLexer("", line)
		p := parser.NewParser(l, "")

		program, err := p.Parse()
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if result := evaluator.Eval(program); result != nil {
			fmt.Fprintln(out, result.Inspect())
		}
	}
}
