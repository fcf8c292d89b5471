package interpreter_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"klang/interpreter"
	"klang/lexer"
	"klang/parser"
)

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

type fixtureManifest struct {
	Cases []fixtureCase `yaml:"cases"`
}

// TestProgramFixtures runs whole programs end to end through the real
// pipeline, the expectations live in testdata/programs.yaml.
func TestProgramFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("reading fixture manifest: %v", err)
	}

	var manifest fixtureManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("parsing fixture manifest: %v", err)
	}

	for _, tc := range manifest.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			l := lexer.NewLexer(tc.Name, tc.Source)
			p := parser.NewParser(l, tc.Name)

			program, err := p.Parse()
			if err != nil {
				if tc.Error == "" {
					t.Fatalf("unexpected parse error: %v", err)
				}
				if !strings.Contains(err.Error(), tc.Error) {
					t.Fatalf("expected error containing %q, got %q", tc.Error, err.Error())
				}
				return
			}

			var out bytes.Buffer
			i := interpreter.NewInterpreter(nil, &out)
			result := i.Eval(program)

			if tc.Error != "" {
				if result == nil {
					t.Fatalf("expected error containing %q, got none", tc.Error)
				}
				if !strings.Contains(result.Inspect(), tc.Error) {
					t.Fatalf("expected error containing %q, got %q", tc.Error, result.Inspect())
				}
			} else if result != nil {
				t.Fatalf("unexpected runtime error: %s", result.Inspect())
			}

			if out.String() != tc.Output {
				t.Errorf("expected=%q, got=%q", tc.Output, out.String())
			}
		})
	}
}
