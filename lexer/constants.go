package lexer

type Operator = string

var (
	Keywords = map[string]TokenKind{
		"print": TokenPrint,
		"if":    TokenIf,
		"then":  TokenThen,
		"end":   TokenEnd,
		"and":   TokenAnd,
		"or":    TokenOr,
		"for":   TokenFor,
		"to":    TokenTo,
		"while": TokenWhile,
	}

	CmpOperators = map[TokenKind]Operator{
		TokenEquals:         "==",
		TokenNotEquals:      "!=",
		TokenGreater:        ">",
		TokenLess:           "<",
		TokenGreaterOrEqual: ">=",
		TokenLessOrEqual:    "<=",
	}

	LogicalOperators = map[TokenKind]Operator{
		TokenAnd: "and",
		TokenOr:  "or",
	}
)
