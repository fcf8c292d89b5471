package lexer

type TokenKind = string

const (

	// Keywords
	TokenPrint TokenKind = "print"
	TokenIf    TokenKind = "if"
	TokenThen  TokenKind = "then"
	TokenEnd   TokenKind = "end"
	TokenAnd   TokenKind = "and"
	TokenOr    TokenKind = "or"
	TokenFor   TokenKind = "for"
	TokenTo    TokenKind = "to"
	TokenWhile TokenKind = "while"

	// Units
	TokenBraceOpen  TokenKind = "("
	TokenBraceClose TokenKind = ")"
	TokenComma      TokenKind = ","

	// Arithmetic Operators
	TokenPlus     TokenKind = "+"
	TokenMinus    TokenKind = "-"
	TokenMultiply TokenKind = "*"
	TokenSlash    TokenKind = "/"

	// Comparison Operators
	TokenEquals         TokenKind = "=="
	TokenNotEquals      TokenKind = "!="
	TokenGreater        TokenKind = ">"
	TokenLess           TokenKind = "<"
	TokenGreaterOrEqual TokenKind = ">="
	TokenLessOrEqual    TokenKind = "<="

	// Bind Operators
	TokenAssign TokenKind = "="

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// number type (used in the lexing phase)
	TokenInt TokenKind = "int"

	// Error
	TokenError TokenKind = "error"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

type Token struct {
	LiteralToken
	Row int
	Col int
}

type Lexer struct {
	Content []rune
	// help mainly in error detection when having multi file execution
	FilePath string
	Row      int
	Col      int
	Cur      int
}
