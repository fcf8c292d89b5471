package interpreter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"klang/ast"
	"klang/internals"
	"klang/object"
)

var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

type Interpreter struct {
	table *object.SymbolTable
	out   io.Writer
}

func NewInterpreter(table *object.SymbolTable, out io.Writer) *Interpreter {
	if table == nil {
		table = object.NewSymbolTable()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{
		table: table,
		out:   out,
	}
}

func newError(kind internals.ErrorKind, format string, a ...interface{}) *object.Error {
	return &object.Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

// Eval walks the already built tree depth first. Every expression node
// yields its value directly to the caller, there is no shared result
// slot between nodes. Statements yield nil, errors come back as
// *object.Error and abort the whole run.
func (i *Interpreter) Eval(node ast.Node) object.Object {
	switch nd := node.(type) {
	case *ast.Program:
		return i.evalStatements(nd.Statements)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: nd.Value}

	case *ast.Identifier:
		return i.evalIdentifier(nd)

	case *ast.BinaryExpression:
		// left before right, both always evaluated
		left := i.Eval(nd.Left)
		if isError(left) {
			return left
		}
		right := i.Eval(nd.Right)
		if isError(right) {
			return right
		}
		return i.evalBinaryExpression(nd.Operator, left, right)

	case *ast.ComparisonExpression:
		left := i.Eval(nd.Left)
		if isError(left) {
			return left
		}
		right := i.Eval(nd.Right)
		if isError(right) {
			return right
		}
		return i.evalComparisonExpression(nd.Operator, left, right)

	case *ast.LogicalExpression:
		return i.evalLogicalExpression(nd)

	case *ast.AssignStatement:
		return i.evalAssignStatement(nd)

	case *ast.PrintStatement:
		return i.evalPrintStatement(nd)

	case *ast.IfStatement:
		return i.evalIfStatement(nd)

	case *ast.WhileStatement:
		return i.evalWhileStatement(nd)

	case *ast.ForStatement:
		return i.evalForStatement(nd)

	default:
		return newError(internals.SyntaxError, "unexpected node %T", node)
	}
}

func (i *Interpreter) evalStatements(stmts []ast.Statement) object.Object {
	var result object.Object
	for _, statement := range stmts {
		result = i.Eval(statement)
		if isError(result) {
			return result
		}
	}
	return result
}

func nativeBooleanObject(val bool) *object.Boolean {
	if val {
		return TRUE
	}
	return FALSE
}

// 0 is false and any other integer is true, booleans are their own truth
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj.Value
	case *object.Integer:
		return obj.Value != 0
	}
	return false
}

func (i *Interpreter) evalIdentifier(identifier *ast.Identifier) object.Object {
	if obj, ok := i.table.Get(identifier.Value); ok {
		return obj
	}
	return newError(internals.UndefinedVariable, "identifier not found: %s", identifier.Value)
}

func (i *Interpreter) evalBinaryExpression(operator string, left, right object.Object) object.Object {
	lt, lok := left.(*object.Integer)
	rt, rok := right.(*object.Integer)
	if !lok || !rok {
		return newError(internals.TypeMismatch, "arithmetic expects integers, got %s %s %s", left.Type(), operator, right.Type())
	}

	switch operator {
	case "+":
		return &object.Integer{Value: lt.Value + rt.Value}
	case "-":
		return &object.Integer{Value: lt.Value - rt.Value}
	case "*":
		return &object.Integer{Value: lt.Value * rt.Value}
	case "/":
		if rt.Value == 0 {
			return newError(internals.DivisionByZero, "division by zero")
		}
		// Go integer division already truncates toward zero
		return &object.Integer{Value: lt.Value / rt.Value}
	default:
		return newError(internals.SyntaxError, "unknown operator: %s", operator)
	}
}

func (i *Interpreter) evalComparisonExpression(operator string, left, right object.Object) object.Object {
	lt, lok := left.(*object.Integer)
	rt, rok := right.(*object.Integer)
	if !lok || !rok {
		return newError(internals.TypeMismatch, "comparison expects integers, got %s %s %s", left.Type(), operator, right.Type())
	}

	switch operator {
	case "==":
		return nativeBooleanObject(lt.Value == rt.Value)
	case "!=":
		return nativeBooleanObject(lt.Value != rt.Value)
	case ">":
		return nativeBooleanObject(lt.Value > rt.Value)
	case "<":
		return nativeBooleanObject(lt.Value < rt.Value)
	case ">=":
		return nativeBooleanObject(lt.Value >= rt.Value)
	case "<=":
		return nativeBooleanObject(lt.Value <= rt.Value)
	default:
		return newError(internals.SyntaxError, "unknown operator: %s", operator)
	}
}

func (i *Interpreter) evalLogicalExpression(nd *ast.LogicalExpression) object.Object {
	left := i.Eval(nd.Left)
	if isError(left) {
		return left
	}

	// short-circuit, the right side only runs when it can still flip
	// the result
	switch nd.Operator {
	case "and":
		if !isTruthy(left) {
			return FALSE
		}
	case "or":
		if isTruthy(left) {
			return TRUE
		}
	default:
		return newError(internals.SyntaxError, "unknown operator: %s", nd.Operator)
	}

	right := i.Eval(nd.Right)
	if isError(right) {
		return right
	}
	return nativeBooleanObject(isTruthy(right))
}

func (i *Interpreter) evalAssignStatement(nd *ast.AssignStatement) object.Object {
	val := i.Eval(nd.Value)
	if isError(val) {
		return val
	}
	if err := i.table.AddOrUpdate(nd.Name.Value, val); err != nil {
		return &object.Error{Kind: err.Kind, Message: err.Message}
	}
	return nil
}

func (i *Interpreter) evalPrintStatement(nd *ast.PrintStatement) object.Object {
	values := make([]string, 0, len(nd.Values))
	for _, expr := range nd.Values {
		val := i.Eval(expr)
		if isError(val) {
			return val
		}
		values = append(values, val.Inspect())
	}

	// one atomic write per print statement
	fmt.Fprintln(i.out, strings.Join(values, " "))
	return nil
}

func (i *Interpreter) evalIfStatement(nd *ast.IfStatement) object.Object {
	condition := i.Eval(nd.Condition)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return i.evalStatements(nd.Body)
	}
	return nil
}

func (i *Interpreter) evalWhileStatement(nd *ast.WhileStatement) object.Object {
	// the condition is re-checked before every round against the same
	// tree, nothing gets re-lexed or re-parsed
	for {
		condition := i.Eval(nd.Condition)
		if isError(condition) {
			return condition
		}
		if !isTruthy(condition) {
			return nil
		}

		if result := i.evalStatements(nd.Body); isError(result) {
			return result
		}
	}
}

func (i *Interpreter) evalForStatement(nd *ast.ForStatement) object.Object {
	// both bounds evaluate exactly once, before the first round
	start := i.Eval(nd.Start)
	if isError(start) {
		return start
	}
	end := i.Eval(nd.End)
	if isError(end) {
		return end
	}

	startInt, ok := start.(*object.Integer)
	if !ok {
		return newError(internals.TypeMismatch, "for bounds expect integers, got %s", start.Type())
	}
	endInt, ok := end.(*object.Integer)
	if !ok {
		return newError(internals.TypeMismatch, "for bounds expect integers, got %s", end.Type())
	}

	if err := i.table.AddOrUpdate(nd.Name.Value, &object.Integer{Value: startInt.Value}); err != nil {
		return &object.Error{Kind: err.Kind, Message: err.Message}
	}

	for {
		current, ok := i.table.Get(nd.Name.Value)
		if !ok {
			return newError(internals.UndefinedVariable, "identifier not found: %s", nd.Name.Value)
		}
		curInt, ok := current.(*object.Integer)
		if !ok {
			return newError(internals.TypeMismatch, "for variable %s expects an integer, got %s", nd.Name.Value, current.Type())
		}

		// inclusive range, the loop variable stays bound after the
		// loop ends, one past the last executed round
		if curInt.Value > endInt.Value {
			return nil
		}

		if result := i.evalStatements(nd.Body); isError(result) {
			return result
		}

		// increment goes through the table so the body sees it like
		// any other variable
		next, ok := i.table.Get(nd.Name.Value)
		if !ok {
			return newError(internals.UndefinedVariable, "identifier not found: %s", nd.Name.Value)
		}
		nextInt, ok := next.(*object.Integer)
		if !ok {
			return newError(internals.TypeMismatch, "for variable %s expects an integer, got %s", nd.Name.Value, next.Type())
		}
		if err := i.table.AddOrUpdate(nd.Name.Value, &object.Integer{Value: nextInt.Value + 1}); err != nil {
			return &object.Error{Kind: err.Kind, Message: err.Message}
		}
	}
}
