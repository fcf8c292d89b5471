package parser

import (
	"fmt"
	"strconv"

	"klang/ast"
	"klang/internals"
	"klang/lexer"
)

// Parser is a plain recursive descent over the grammar
//
//	factor      := INTEGER | ID | '(' expr ')'
//	term        := factor (('*'|'/') factor)*
//	expr        := term (('+'|'-') term)*
//	simple_cond := expr CMP_OP expr
//	condition   := simple_cond (('and'|'or') simple_cond)*
//	statement   := if_stmt | for_stmt | while_stmt | assignment | print_stmt
//
// with a single token of lookahead pulled from the lexer on demand.
// The whole tree is materialized before anything gets evaluated.
type Parser struct {
	lexer    *lexer.Lexer
	FilePath string

	curToken lexer.Token // one token lookahead
}

func NewParser(lex *lexer.Lexer, filepath string) *Parser {
	p := Parser{
		lexer:    lex,
		FilePath: filepath,
	}

	// load the first token
	p.nextToken()

	return &p
}

func (p *Parser) nextToken() {
	p.curToken = p.lexer.NextToken()
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) error(kind internals.ErrorKind, tok lexer.Token, msg ...interface{}) error {
	return internals.Errorf(kind, "%s:%d:%d: %s", p.FilePath, tok.Row, tok.Col, fmt.Sprint(msg...))
}

func display(tok lexer.Token) string {
	if tok.Text == "" {
		return tok.Kind
	}
	return tok.Text
}

// eat consumes the current token when it matches the expected kind,
// anything else is fatal, there is no recovery or resynchronization
func (p *Parser) eat(kind lexer.TokenKind) (lexer.Token, error) {
	tok := p.curToken
	if tok.Kind == lexer.TokenError {
		return tok, p.error(internals.LexError, tok, "invalid character ", tok.Text)
	}
	if tok.Kind != kind {
		return tok, p.error(internals.SyntaxError, tok, "expected ", kind, ", instead got ", display(tok))
	}
	p.nextToken()
	return tok, nil
}

func (p *Parser) Parse() (*ast.Program, error) {
	program := ast.Program{
		Statements: []ast.Statement{},
	}

	for !p.curTokenKindIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return &program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Kind {
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenWhile:
		return p.parseWhileStatement()
	case lexer.TokenFor:
		return p.parseForStatement()
	case lexer.TokenPrint:
		return p.parsePrintStatement()
	case lexer.TokenIdentifier:
		return p.parseAssignStatement()
	case lexer.TokenError:
		return nil, p.error(internals.LexError, p.curToken, "invalid character ", p.curToken.Text)
	default:
		return nil, p.error(internals.SyntaxError, p.curToken, "expected a statement, instead got ", display(p.curToken))
	}
}

func (p *Parser) parseAssignStatement() (*ast.AssignStatement, error) {
	nameTok, err := p.eat(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}

	assignTok, err := p.eat(lexer.TokenAssign)
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStatement{
		Token: assignTok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Text},
		Value: value,
	}, nil
}

func (p *Parser) parsePrintStatement() (*ast.PrintStatement, error) {
	tok, err := p.eat(lexer.TokenPrint)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TokenBraceOpen); err != nil {
		return nil, err
	}

	values := make([]ast.Expression, 0)

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	values = append(values, expr)

	for p.curTokenKindIs(lexer.TokenComma) {
		// consume the , token
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, expr)
	}

	if _, err := p.eat(lexer.TokenBraceClose); err != nil {
		return nil, err
	}

	return &ast.PrintStatement{Token: tok, Values: values}, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	tok, err := p.eat(lexer.TokenIf)
	if err != nil {
		return nil, err
	}

	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TokenThen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.IfStatement{Token: tok, Condition: condition, Body: body}, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStatement, error) {
	tok, err := p.eat(lexer.TokenWhile)
	if err != nil {
		return nil, err
	}

	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TokenThen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStatement{Token: tok, Condition: condition, Body: body}, nil
}

func (p *Parser) parseForStatement() (*ast.ForStatement, error) {
	tok, err := p.eat(lexer.TokenFor)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.eat(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TokenAssign); err != nil {
		return nil, err
	}

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TokenTo); err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStatement{
		Token: tok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Text},
		Start: start,
		End:   end,
		Body:  body,
	}, nil
}

// parseBlock parses the statements of a body up to the closing end
// keyword, and consumes it
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	body := make([]ast.Statement, 0)

	for !p.curTokenKindIs(lexer.TokenEnd) && !p.curTokenKindIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if _, err := p.eat(lexer.TokenEnd); err != nil {
		return nil, err
	}

	return body, nil
}

// condition folds and/or strictly left to right, there is no
// precedence distinction between the two
func (p *Parser) parseCondition() (ast.Expression, error) {
	left, err := p.parseSimpleCondition()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := lexer.LogicalOperators[p.curToken.Kind]
		if !ok {
			break
		}
		tok := p.curToken
		p.nextToken()

		right, err := p.parseSimpleCondition()
		if err != nil {
			return nil, err
		}

		left = &ast.LogicalExpression{Token: tok, Operator: op, Left: left, Right: right}
	}

	return left, nil
}

// exactly one comparison per simple condition, chaining isn't allowed
func (p *Parser) parseSimpleCondition() (ast.Expression, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	op, ok := lexer.CmpOperators[p.curToken.Kind]
	if !ok {
		return nil, p.error(internals.SyntaxError, p.curToken, "expected a comparison operator (== | != | > | < | >= | <=), instead got ", display(p.curToken))
	}
	tok := p.curToken
	p.nextToken()

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ComparisonExpression{Token: tok, Operator: op, Left: left, Right: right}, nil
}

func (p *Parser) parseExpr() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTokenKindIs(lexer.TokenPlus) || p.curTokenKindIs(lexer.TokenMinus) {
		tok := p.curToken
		p.nextToken()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{Token: tok, Operator: tok.Text, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTokenKindIs(lexer.TokenMultiply) || p.curTokenKindIs(lexer.TokenSlash) {
		tok := p.curToken
		p.nextToken()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{Token: tok, Operator: tok.Text, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.curToken

	switch tok.Kind {
	case lexer.TokenInt:
		p.nextToken()
		num, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.error(internals.SyntaxError, tok, "invalid integer literal ", tok.Text)
		}
		return &ast.IntegerLiteral{Token: tok, Value: num}, nil

	case lexer.TokenIdentifier:
		p.nextToken()
		return &ast.Identifier{Token: tok, Value: tok.Text}, nil

	case lexer.TokenBraceOpen:
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.TokenBraceClose); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.TokenError:
		return nil, p.error(internals.LexError, tok, "invalid character ", tok.Text)

	default:
		return nil, p.error(internals.SyntaxError, tok, "expected an integer, an identifier or (, instead got ", display(tok))
	}
}
