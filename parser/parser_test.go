package parser

import (
	"testing"

	"github.com/Eusha122/Elang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Block {
	t.Helper()
	p := NewParser(src)
	block := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return block
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	block := parseOK(t, "2 ** 3 ** 2")
	require.Len(t, block.Statements, 1)
	bin := block.Statements[0].(*ast.BinaryOp)
	assert.Equal(t, "**", bin.Op)
	_, leftIsInt := bin.Left.(*ast.IntLiteral)
	assert.True(t, leftIsInt)
	rightBin, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok, "right operand should itself be a ** node")
	assert.Equal(t, "**", rightBin.Op)
}

func TestParseComparisonDoesNotChain(t *testing.T) {
	block := parseOK(t, "a < b < c")
	require.Len(t, block.Statements, 1)
	outer := block.Statements[0].(*ast.BinaryOp)
	assert.Equal(t, "<", outer.Op)
	_, leftIsBin := outer.Left.(*ast.BinaryOp)
	assert.True(t, leftIsBin, "a < b < c must group as (a < b) < c")
}

func TestParsePrecedenceLadder(t *testing.T) {
	block := parseOK(t, "1 + 2 * 3")
	add := block.Statements[0].(*ast.BinaryOp)
	assert.Equal(t, "+", add.Op)
	mul, ok := add.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestParseAssignment(t *testing.T) {
	block := parseOK(t, "x = 5")
	assign := block.Statements[0].(*ast.Assign)
	assert.Equal(t, "x", assign.Name)
}

func TestParseCompoundAssign(t *testing.T) {
	block := parseOK(t, "x += 1")
	ca := block.Statements[0].(*ast.CompoundAssign)
	assert.Equal(t, "x", ca.Name)
	assert.Equal(t, ast.CAddAssign, ca.Op)
}

func TestParseIndexAssignVsIndexRead(t *testing.T) {
	block := parseOK(t, "xs[0] = 1\nxs[0]")
	require.Len(t, block.Statements, 2)
	set := block.Statements[0].(*ast.IndexSet)
	assert.Equal(t, "xs", set.Target.(*ast.Identifier).Name)
	_, isGet := block.Statements[1].(*ast.IndexGet)
	assert.True(t, isGet)
}

func TestParseLambdaSingleParam(t *testing.T) {
	block := parseOK(t, "x => x * 2")
	lam := block.Statements[0].(*ast.Lambda)
	assert.Equal(t, []string{"x"}, lam.Params)
}

func TestParseLambdaMultiParam(t *testing.T) {
	block := parseOK(t, "(a, b) => a + b")
	lam := block.Statements[0].(*ast.Lambda)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
}

func TestParseGroupedExpressionNotLambda(t *testing.T) {
	block := parseOK(t, "(1 + 2) * 3")
	mul := block.Statements[0].(*ast.BinaryOp)
	assert.Equal(t, "*", mul.Op)
	_, isAdd := mul.Left.(*ast.BinaryOp)
	assert.True(t, isAdd)
}

func TestParseForRangeWithStepAndReverse(t *testing.T) {
	block := parseOK(t, "for (i in 0..10 step 2 reverse) {\n  say(i)\n}")
	fr := block.Statements[0].(*ast.ForRange)
	assert.Equal(t, "i", fr.Var)
	assert.True(t, fr.Reverse)
	require.NotNil(t, fr.Step)
}

func TestParseMethodCallChain(t *testing.T) {
	block := parseOK(t, "xs.push(1).length()")
	outer := block.Statements[0].(*ast.MethodCall)
	assert.Equal(t, "length", outer.Method)
	inner, ok := outer.Receiver.(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "push", inner.Method)
}

func TestParseInterpolatedString(t *testing.T) {
	block := parseOK(t, `"hello {name}!"`)
	str := block.Statements[0].(*ast.InterpolatedString)
	require.Len(t, str.Segments, 3)
	assert.Equal(t, "hello ", str.Segments[0].Literal)
	require.NotNil(t, str.Segments[1].Expr)
	ident := str.Segments[1].Expr.(*ast.Identifier)
	assert.Equal(t, "name", ident.Name)
	assert.Equal(t, "!", str.Segments[2].Literal)
}

func TestParseIfElseIfChain(t *testing.T) {
	block := parseOK(t, "if a {\n  say(1)\n} else if b {\n  say(2)\n} else {\n  say(3)\n}")
	ifNode := block.Statements[0].(*ast.If)
	elseIf, ok := ifNode.Else.(*ast.If)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestParseUnterminatedBlockReportsHint(t *testing.T) {
	p := NewParser("fn f() {\n  say(1)\n")
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0].Error(), "did you forget a closing '}'?")
}
