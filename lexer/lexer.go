package lexer

import (
	"unicode"
)

func NewLexer(filePath string, content string) *Lexer {
	lexer := Lexer{
		Content:  []rune(content),
		FilePath: filePath,
		Row:      1,
		Col:      1,
		Cur:      0,
	}
	return &lexer
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		// reach end of input
		return
	}

	char := l.Content[l.Cur]

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	// increment to deal with the next char
	l.Cur++
}

func (l *Lexer) peekChar() rune {
	if l.Cur >= len(l.Content) {
		return 0
	}
	return l.Content[l.Cur]
}

// NextToken consumes the input destructively, the position only ever
// moves forward. Once the text is exhausted it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhiteSpace()

	token := Token{
		Row: l.Row,
		Col: l.Col,
	}

	if l.Cur >= len(l.Content) {
		token.LiteralToken = LiteralToken{
			Kind: TokenEOF,
			Text: "",
		}
		return token
	}

	char := l.Content[l.Cur]

	switch string(char) {
	case TokenBraceOpen:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceOpen,
			Text: "(",
		}
	case TokenBraceClose:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceClose,
			Text: ")",
		}
	case TokenComma:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenComma,
			Text: ",",
		}
	case TokenPlus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenPlus,
			Text: "+",
		}
	case TokenMinus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMinus,
			Text: "-",
		}
	case TokenMultiply:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMultiply,
			Text: "*",
		}
	case TokenSlash:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenSlash,
			Text: "/",
		}
	case TokenAssign:
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenEquals,
				Text: "==",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenAssign,
				Text: "=",
			}
		}
	case "!":
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenNotEquals,
				Text: "!=",
			}
		} else {
			// a lone ! isn't an operator in this grammar
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: "!",
			}
		}
	case TokenGreater:
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenGreaterOrEqual,
				Text: ">=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenGreater,
				Text: ">",
			}
		}
	case TokenLess:
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenLessOrEqual,
				Text: "<=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenLess,
				Text: "<",
			}
		}
	default:
		if isLetter(char) {
			return l.readIdentifier()
		} else if isDigit(char) {
			return l.readNumber()
		} else {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: string(char),
			}
		}
	}
	return token
}

func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

// identifiers must start with a letter, underscore is only allowed
// as a continuation character
func isLetter(char rune) bool {
	return unicode.IsLetter(char)
}

func isIdentChar(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '_'
}

func isDigit(char rune) bool {
	return unicode.IsDigit(char)
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur

	// save them to return
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) && isIdentChar(l.Content[l.Cur]) {
		l.readChar()
	}

	text := string(l.Content[startPos:l.Cur])

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return Token{LiteralToken: LiteralToken{
			Kind: tokenKind,
			Text: text,
		}, Row: row, Col: col}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenIdentifier,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readNumber() Token {
	startPos := l.Cur
	row := l.Row
	col := l.Col

	// maximal run of digits, always a non-negative decimal integer,
	// negation isn't an operator in this grammar
	for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
		l.readChar()
	}

	text := string(l.Content[startPos:l.Cur])

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenInt,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.Content[l.Cur]) {
		l.readChar()
	}
}
