package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/lukeod/fen/internal/indent"
)

// PrintTreeVisitor renders an AST as an indented text tree: one line per
// node carrying its key attributes, children indented one level deeper
// (spec §4.F). Traversal order is fixed, so two runs over the same tree
// produce byte-identical output.
type PrintTreeVisitor struct {
	BaseVisitor
	w      io.Writer
	indent string
}

// NewPrintTreeVisitor returns a visitor writing to w with the default
// two-space indent unit.
func NewPrintTreeVisitor(w io.Writer) *PrintTreeVisitor {
	return NewPrintTreeVisitorIndent(w, "  ")
}

// NewPrintTreeVisitorIndent is NewPrintTreeVisitor with a caller-chosen
// indent unit.
func NewPrintTreeVisitorIndent(w io.Writer, unit string) *PrintTreeVisitor {
	v := &PrintTreeVisitor{w: w, indent: unit}
	v.Self = v
	return v
}

// child returns a visitor that writes to an indent.Writer one level
// deeper than v, for recursing into a node's children.
func (v *PrintTreeVisitor) child() *PrintTreeVisitor {
	return NewPrintTreeVisitorIndent(indent.NewWriter(v.w, v.indent), v.indent)
}

func (v *PrintTreeVisitor) line(format string, args ...interface{}) {
	fmt.Fprintf(v.w, format+"\n", args...)
}

func (v *PrintTreeVisitor) VisitCompilationUnit(n *CompilationUnit) {
	v.line("CompilationUnit")
	c := v.child()
	for _, fn := range n.Functions {
		fn.Accept(c)
	}
}

func (v *PrintTreeVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	v.line("FunctionDeclaration name=%s params=(%s)", n.Name, strings.Join(n.Params, ", "))
	c := v.child()
	for _, stmt := range n.Body {
		stmt.Accept(c)
	}
}

func (v *PrintTreeVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	v.line("VariableDeclaration name=%s", n.Name)
	if n.Value == nil {
		return
	}
	c := v.child()
	n.Value.Accept(c)
}

func (v *PrintTreeVisitor) VisitLiteralBoolean(n *LiteralBoolean) {
	v.line("LiteralBoolean value=%t", n.Value)
}

func (v *PrintTreeVisitor) VisitLiteralNumber(n *LiteralNumber) {
	v.line("LiteralNumber value=%s", n.Value)
}

func (v *PrintTreeVisitor) VisitLiteralString(n *LiteralString) {
	v.line("LiteralString value=%q", n.Value)
}

func (v *PrintTreeVisitor) VisitIdentifier(n *Identifier) {
	v.line("Identifier name=%s", n.Name)
}

func (v *PrintTreeVisitor) VisitParenthesizedExpression(n *ParenthesizedExpression) {
	v.line("ParenthesizedExpression")
	c := v.child()
	for _, stmt := range n.Body {
		stmt.Accept(c)
	}
}

func (v *PrintTreeVisitor) VisitIfExpression(n *IfExpression) {
	v.line("IfExpression")
	c := v.child()

	c.line("If:")
	if n.Condition != nil {
		n.Condition.Accept(c.child())
	}

	c.line("Then:")
	thenVisitor := c.child()
	for _, stmt := range n.ThenBody {
		stmt.Accept(thenVisitor)
	}

	if len(n.ElseBody) > 0 {
		c.line("Else:")
		elseVisitor := c.child()
		for _, stmt := range n.ElseBody {
			stmt.Accept(elseVisitor)
		}
	}
}

func (v *PrintTreeVisitor) VisitInvocationExpression(n *InvocationExpression) {
	v.line("InvocationExpression")
	c := v.child()

	c.line("Target:")
	if n.Target != nil {
		n.Target.Accept(c.child())
	}

	c.line("Args:")
	argVisitor := c.child()
	for _, arg := range n.Args {
		arg.Accept(argVisitor)
	}
}

func (v *PrintTreeVisitor) VisitReturnStatement(n *ReturnStatement) {
	v.line("ReturnStatement")
	if n.Value == nil {
		return
	}
	n.Value.Accept(v.child())
}
