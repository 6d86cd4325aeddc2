// Package ast defines the node types consumed by the visitor framework
// (spec §4.F). The parser that produces these nodes is out of scope; this
// package only fixes the shape downstream passes traverse.
package ast

// Node is implemented by every AST node. Accept performs the double
// dispatch: it calls the one Visitor method matching the node's concrete
// type, handing the visitor a chance to either do its own thing or fall
// back to the default recursive walk via BaseVisitor.
type Node interface {
	Accept(v Visitor)
}

// CompilationUnit is the root of a parsed program: a flat list of
// top-level function declarations.
type CompilationUnit struct {
	Functions []*FunctionDeclaration
}

func (n *CompilationUnit) Accept(v Visitor) { v.VisitCompilationUnit(n) }

// FunctionDeclaration is a named function with positional parameters and
// a body of statements/expressions.
type FunctionDeclaration struct {
	Name   string
	Params []string
	Body   []Node
}

func (n *FunctionDeclaration) Accept(v Visitor) { v.VisitFunctionDeclaration(n) }

// VariableDeclaration binds Name to the result of evaluating Value.
type VariableDeclaration struct {
	Name  string
	Value Node
}

func (n *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(n) }

// LiteralBoolean is a `true`/`false` literal.
type LiteralBoolean struct {
	Value bool
}

func (n *LiteralBoolean) Accept(v Visitor) { v.VisitLiteralBoolean(n) }

// LiteralNumber is a NUMBER token's lexeme, carried as-is: the parser
// decides what numeric type (if any) it denotes (spec Non-goals exclude
// float normalization here).
type LiteralNumber struct {
	Value string
}

func (n *LiteralNumber) Accept(v Visitor) { v.VisitLiteralNumber(n) }

// LiteralString is a STRING token's lexeme with surrounding quotes
// already stripped by the lexer.
type LiteralString struct {
	Value string
}

func (n *LiteralString) Accept(v Visitor) { v.VisitLiteralString(n) }

// Identifier is a bare name reference: a variable, parameter, or
// function name used as a value.
type Identifier struct {
	Name string
}

func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

// ParenthesizedExpression groups Body, a parenthesized sequence.
type ParenthesizedExpression struct {
	Body []Node
}

func (n *ParenthesizedExpression) Accept(v Visitor) { v.VisitParenthesizedExpression(n) }

// IfExpression is a conditional with a then-body and an optional
// else-body (empty when absent).
type IfExpression struct {
	Condition Node
	ThenBody  []Node
	ElseBody  []Node
}

func (n *IfExpression) Accept(v Visitor) { v.VisitIfExpression(n) }

// InvocationExpression calls Target with Args. The base visitor
// deliberately does not descend into Target (spec §4.F); callers that
// need to see the callee override VisitInvocationExpression.
type InvocationExpression struct {
	Target Node
	Args   []Node
}

func (n *InvocationExpression) Accept(v Visitor) { v.VisitInvocationExpression(n) }

// ReturnStatement exits a function with Value.
type ReturnStatement struct {
	Value Node
}

func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }
