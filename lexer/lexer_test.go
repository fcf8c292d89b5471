package lexer_test

import (
	"testing"

	"github.com/go-test/deep"

	"klang/lexer"
)

func literalTokens(input string) []lexer.LiteralToken {
	l := lexer.NewLexer("", input)
	tokens := l.Tokenize()

	literals := make([]lexer.LiteralToken, 0, len(tokens))
	for _, tok := range tokens {
		literals = append(literals, tok.LiteralToken)
	}
	return literals
}

func TestOperatorTokens(t *testing.T) {
	input := `+ - * / ( ) , = == != > < >= <=`

	expected := []lexer.LiteralToken{
		{Text: "+", Kind: lexer.TokenPlus},
		{Text: "-", Kind: lexer.TokenMinus},
		{Text: "*", Kind: lexer.TokenMultiply},
		{Text: "/", Kind: lexer.TokenSlash},
		{Text: "(", Kind: lexer.TokenBraceOpen},
		{Text: ")", Kind: lexer.TokenBraceClose},
		{Text: ",", Kind: lexer.TokenComma},
		{Text: "=", Kind: lexer.TokenAssign},
		{Text: "==", Kind: lexer.TokenEquals},
		{Text: "!=", Kind: lexer.TokenNotEquals},
		{Text: ">", Kind: lexer.TokenGreater},
		{Text: "<", Kind: lexer.TokenLess},
		{Text: ">=", Kind: lexer.TokenGreaterOrEqual},
		{Text: "<=", Kind: lexer.TokenLessOrEqual},
		{Text: "", Kind: lexer.TokenEOF},
	}

	if diff := deep.Equal(literalTokens(input), expected); diff != nil {
		t.Error(diff)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	input := `print PRINT printx While while`

	expected := []lexer.LiteralToken{
		{Text: "print", Kind: lexer.TokenPrint},
		{Text: "PRINT", Kind: lexer.TokenIdentifier},
		{Text: "printx", Kind: lexer.TokenIdentifier},
		{Text: "While", Kind: lexer.TokenIdentifier},
		{Text: "while", Kind: lexer.TokenWhile},
		{Text: "", Kind: lexer.TokenEOF},
	}

	if diff := deep.Equal(literalTokens(input), expected); diff != nil {
		t.Error(diff)
	}
}

func TestAllKeywords(t *testing.T) {
	input := `print if then end and or for to while`

	expected := []lexer.LiteralToken{
		{Text: "print", Kind: lexer.TokenPrint},
		{Text: "if", Kind: lexer.TokenIf},
		{Text: "then", Kind: lexer.TokenThen},
		{Text: "end", Kind: lexer.TokenEnd},
		{Text: "and", Kind: lexer.TokenAnd},
		{Text: "or", Kind: lexer.TokenOr},
		{Text: "for", Kind: lexer.TokenFor},
		{Text: "to", Kind: lexer.TokenTo},
		{Text: "while", Kind: lexer.TokenWhile},
		{Text: "", Kind: lexer.TokenEOF},
	}

	if diff := deep.Equal(literalTokens(input), expected); diff != nil {
		t.Error(diff)
	}
}

func TestNumberAndIdentifierRuns(t *testing.T) {
	input := `12abc count_2 x`

	expected := []lexer.LiteralToken{
		{Text: "12", Kind: lexer.TokenInt},
		{Text: "abc", Kind: lexer.TokenIdentifier},
		{Text: "count_2", Kind: lexer.TokenIdentifier},
		{Text: "x", Kind: lexer.TokenIdentifier},
		{Text: "", Kind: lexer.TokenEOF},
	}

	if diff := deep.Equal(literalTokens(input), expected); diff != nil {
		t.Error(diff)
	}
}

func TestInvalidCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.LiteralToken
	}{
		{
			// a lone ! isn't an operator in this grammar
			input: `!`,
			expected: []lexer.LiteralToken{
				{Text: "!", Kind: lexer.TokenError},
				{Text: "", Kind: lexer.TokenEOF},
			},
		},
		{
			input: `x = @`,
			expected: []lexer.LiteralToken{
				{Text: "x", Kind: lexer.TokenIdentifier},
				{Text: "=", Kind: lexer.TokenAssign},
				{Text: "@", Kind: lexer.TokenError},
				{Text: "", Kind: lexer.TokenEOF},
			},
		},
		{
			// underscore can't start an identifier, only continue one
			input: `_x`,
			expected: []lexer.LiteralToken{
				{Text: "_", Kind: lexer.TokenError},
				{Text: "x", Kind: lexer.TokenIdentifier},
				{Text: "", Kind: lexer.TokenEOF},
			},
		},
	}

	for _, tt := range tests {
		if diff := deep.Equal(literalTokens(tt.input), tt.expected); diff != nil {
			t.Error(diff)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "x = 7\ny = x"

	l := lexer.NewLexer("", input)
	tokens := l.Tokenize()

	expected := []lexer.Token{
		{LiteralToken: lexer.LiteralToken{Text: "x", Kind: lexer.TokenIdentifier}, Row: 1, Col: 1},
		{LiteralToken: lexer.LiteralToken{Text: "=", Kind: lexer.TokenAssign}, Row: 1, Col: 3},
		{LiteralToken: lexer.LiteralToken{Text: "7", Kind: lexer.TokenInt}, Row: 1, Col: 5},
		{LiteralToken: lexer.LiteralToken{Text: "y", Kind: lexer.TokenIdentifier}, Row: 2, Col: 1},
		{LiteralToken: lexer.LiteralToken{Text: "=", Kind: lexer.TokenAssign}, Row: 2, Col: 3},
		{LiteralToken: lexer.LiteralToken{Text: "x", Kind: lexer.TokenIdentifier}, Row: 2, Col: 5},
		{LiteralToken: lexer.LiteralToken{Text: "", Kind: lexer.TokenEOF}, Row: 2, Col: 6},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestNextTokenIsDestructive(t *testing.T) {
	l := lexer.NewLexer("", "x = 7")

	kinds := []lexer.TokenKind{
		lexer.TokenIdentifier,
		lexer.TokenAssign,
		lexer.TokenInt,
		lexer.TokenEOF,
	}

	for _, kind := range kinds {
		tok := l.NextToken()
		if tok.Kind != kind {
			t.Errorf("expected=%q, got=%q", kind, tok.Kind)
		}
	}

	// once exhausted the lexer keeps answering EOF, it never restarts
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Kind != lexer.TokenEOF {
			t.Errorf("expected=%q, got=%q", lexer.TokenEOF, tok.Kind)
		}
	}
}
