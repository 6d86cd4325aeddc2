package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFunctionTree() *CompilationUnit {
	return &CompilationUnit{
		Functions: []*FunctionDeclaration{
			{
				Name:   "add",
				Params: []string{"a", "b"},
				Body: []Node{
					&ReturnStatement{
						Value: &InvocationExpression{
							Target: &Identifier{Name: "a"},
							Args:   []Node{&Identifier{Name: "b"}},
						},
					},
				},
			},
		},
	}
}

func TestPrintTreeVisitorRendersIndentedTree(t *testing.T) {
	var buf bytes.Buffer
	v := NewPrintTreeVisitor(&buf)
	sampleFunctionTree().Accept(v)

	want := "" +
		"CompilationUnit\n" +
		"  FunctionDeclaration name=add params=(a, b)\n" +
		"    ReturnStatement\n" +
		"      InvocationExpression\n" +
		"        Target:\n" +
		"          Identifier name=a\n" +
		"        Args:\n" +
		"          Identifier name=b\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTreeVisitorLiterals(t *testing.T) {
	unit := &CompilationUnit{
		Functions: []*FunctionDeclaration{
			{
				Name: "f",
				Body: []Node{
					&VariableDeclaration{Name: "x", Value: &LiteralNumber{Value: "42"}},
					&VariableDeclaration{Name: "s", Value: &LiteralString{Value: "hi"}},
					&VariableDeclaration{Name: "b", Value: &LiteralBoolean{Value: true}},
				},
			},
		},
	}

	var buf bytes.Buffer
	unit.Accept(NewPrintTreeVisitor(&buf))

	want := "" +
		"CompilationUnit\n" +
		"  FunctionDeclaration name=f params=()\n" +
		"    VariableDeclaration name=x\n" +
		"      LiteralNumber value=42\n" +
		"    VariableDeclaration name=s\n" +
		"      LiteralString value=\"hi\"\n" +
		"    VariableDeclaration name=b\n" +
		"      LiteralBoolean value=true\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTreeVisitorIfWithoutElseOmitsElseHeading(t *testing.T) {
	ifExpr := &IfExpression{
		Condition: &LiteralBoolean{Value: true},
		ThenBody:  []Node{&Identifier{Name: "a"}},
	}

	var buf bytes.Buffer
	ifExpr.Accept(NewPrintTreeVisitor(&buf))

	want := "" +
		"IfExpression\n" +
		"  If:\n" +
		"    LiteralBoolean value=true\n" +
		"  Then:\n" +
		"    Identifier name=a\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTreeVisitorIfWithElse(t *testing.T) {
	ifExpr := &IfExpression{
		Condition: &LiteralBoolean{Value: false},
		ThenBody:  []Node{&Identifier{Name: "a"}},
		ElseBody:  []Node{&Identifier{Name: "b"}},
	}

	var buf bytes.Buffer
	ifExpr.Accept(NewPrintTreeVisitor(&buf))

	want := "" +
		"IfExpression\n" +
		"  If:\n" +
		"    LiteralBoolean value=false\n" +
		"  Then:\n" +
		"    Identifier name=a\n" +
		"  Else:\n" +
		"    Identifier name=b\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTreeVisitorParenthesizedExpression(t *testing.T) {
	p := &ParenthesizedExpression{Body: []Node{&Identifier{Name: "x"}}}

	var buf bytes.Buffer
	p.Accept(NewPrintTreeVisitor(&buf))

	want := "ParenthesizedExpression\n  Identifier name=x\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTreeVisitorCustomIndentUnit(t *testing.T) {
	unit := &CompilationUnit{
		Functions: []*FunctionDeclaration{{Name: "f", Body: []Node{&Identifier{Name: "x"}}}},
	}

	var buf bytes.Buffer
	unit.Accept(NewPrintTreeVisitorIndent(&buf, "\t"))

	want := "" +
		"CompilationUnit\n" +
		"\tFunctionDeclaration name=f params=()\n" +
		"\t\tIdentifier name=x\n"

	assert.Equal(t, want, buf.String())
}

// Determinism: traversal order is fixed by Accept/Visitor dispatch, so
// printing the same tree twice must yield byte-identical output.
func TestPrintTreeVisitorIsDeterministicAcrossRuns(t *testing.T) {
	tree := sampleFunctionTree()

	var first, second bytes.Buffer
	tree.Accept(NewPrintTreeVisitor(&first))
	tree.Accept(NewPrintTreeVisitor(&second))

	require.Equal(t, first.String(), second.String())
	assert.NotEmpty(t, first.String())
}
