package ast

import (
	"bytes"
	"strings"

	"klang/lexer"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the tree, every node below it is exclusively
// owned by its parent, there are no cycles and no sharing.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return lexer.Token{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Text }
func (il *IntegerLiteral) GetToken() lexer.Token { return il.Token }
func (il *IntegerLiteral) String() string        { return il.Token.Text }

type Identifier struct {
	Token lexer.Token
	Value string
}

func (id *Identifier) expressionNode()       {}
func (id *Identifier) TokenLiteral() string  { return id.Token.Text }
func (id *Identifier) GetToken() lexer.Token { return id.Token }
func (id *Identifier) String() string        { return id.Value }

// BinaryExpression covers the arithmetic operators + - * /
type BinaryExpression struct {
	Token    lexer.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()       {}
func (be *BinaryExpression) TokenLiteral() string  { return be.Token.Text }
func (be *BinaryExpression) GetToken() lexer.Token { return be.Token }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// ComparisonExpression covers == != > < >= <=, exactly one per
// simple condition, chaining isn't allowed by the grammar
type ComparisonExpression struct {
	Token    lexer.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ce *ComparisonExpression) expressionNode()       {}
func (ce *ComparisonExpression) TokenLiteral() string  { return ce.Token.Text }
func (ce *ComparisonExpression) GetToken() lexer.Token { return ce.Token }
func (ce *ComparisonExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ce.Left.String())
	out.WriteString(" " + ce.Operator + " ")
	out.WriteString(ce.Right.String())
	out.WriteString(")")
	return out.String()
}

// LogicalExpression covers and/or, folded strictly left to right
type LogicalExpression struct {
	Token    lexer.Token // the and/or token
	Operator string
	Left     Expression
	Right    Expression
}

func (le *LogicalExpression) expressionNode()       {}
func (le *LogicalExpression) TokenLiteral() string  { return le.Token.Text }
func (le *LogicalExpression) GetToken() lexer.Token { return le.Token }
func (le *LogicalExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(le.Left.String())
	out.WriteString(" " + le.Operator + " ")
	out.WriteString(le.Right.String())
	out.WriteString(")")
	return out.String()
}

type AssignStatement struct {
	Token lexer.Token // the = token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Text }
func (as *AssignStatement) GetToken() lexer.Token { return as.Token }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(as.Name.String())
	out.WriteString(" = ")
	out.WriteString(as.Value.String())
	out.WriteString(")")
	return out.String()
}

type PrintStatement struct {
	Token  lexer.Token // the print token
	Values []Expression
}

func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Text }
func (ps *PrintStatement) GetToken() lexer.Token { return ps.Token }
func (ps *PrintStatement) String() string {
	var out bytes.Buffer
	values := make([]string, 0, len(ps.Values))
	for _, v := range ps.Values {
		values = append(values, v.String())
	}
	out.WriteString("print(")
	out.WriteString(strings.Join(values, ", "))
	out.WriteString(")")
	return out.String()
}

// IfStatement has no else branch, the body shares the enclosing scope
type IfStatement struct {
	Token     lexer.Token // the if token
	Condition Expression
	Body      []Statement
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Text }
func (is *IfStatement) GetToken() lexer.Token { return is.Token }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" then ")
	for _, s := range is.Body {
		out.WriteString(s.String())
	}
	out.WriteString(" end")
	return out.String()
}

type WhileStatement struct {
	Token     lexer.Token // the while token
	Condition Expression
	Body      []Statement
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Text }
func (ws *WhileStatement) GetToken() lexer.Token { return ws.Token }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(ws.Condition.String())
	out.WriteString(" then ")
	for _, s := range ws.Body {
		out.WriteString(s.String())
	}
	out.WriteString(" end")
	return out.String()
}

// ForStatement, both bounds evaluate once at loop entry and the loop
// variable stays bound after the loop ends
type ForStatement struct {
	Token lexer.Token // the for token
	Name  *Identifier
	Start Expression
	End   Expression
	Body  []Statement
}

func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Text }
func (fs *ForStatement) GetToken() lexer.Token { return fs.Token }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	out.WriteString(fs.Name.String())
	out.WriteString(" = ")
	out.WriteString(fs.Start.String())
	out.WriteString(" to ")
	out.WriteString(fs.End.String())
	out.WriteString(" ")
	for _, s := range fs.Body {
		out.WriteString(s.String())
	}
	out.WriteString(" end")
	return out.String()
}
