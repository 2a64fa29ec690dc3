package eval

import (
	"bytes"
	"testing"

	"github.com/Eusha122/Elang/object"
	"github.com/Eusha122/Elang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (object.Object, string, error) {
	t.Helper()
	p := parser.NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())

	ev := NewEvaluator(".")
	var out bytes.Buffer
	ev.SetOutput(&out)
	result, err := ev.Eval(root)
	return result, out.String(), err
}

func TestHelloWorld(t *testing.T) {
	_, out, err := run(t, `say("hello, world").newl`)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\n", out)
}

func TestArithmeticPrecedenceWithPower(t *testing.T) {
	result, _, err := run(t, "2 + 3 * 2 ** 2")
	require.NoError(t, err)
	assert.Equal(t, int64(14), result.(*object.Integer).Value)
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := run(t, "1 / 0")
	require.Error(t, err)
}

// TestClosureReadsButCannotMutateEnclosingVariable exercises the same
// documented divergence as TestAssignWritesOnlyCurrentFrame, one level
// deeper: a closure can still read a variable from its captured scope,
// but `=` inside it can never accumulate state there, since every write
// lands in that call's own fresh frame and is discarded when it returns.
func TestClosureReadsButCannotMutateEnclosingVariable(t *testing.T) {
	src := `
fn makeCounter() {
  count = 0
  fn increment() {
    count = count + 1
    return count
  }
  return increment
}
counter = makeCounter()
counter()
counter()
counter()
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.(*object.Integer).Value, "each call starts from the captured count of 0 since = never rebinds it")
}

// TestClosureReadsCapturedValue confirms closures DO see values already
// bound in their defining scope at call time, even though they cannot
// write back to it.
func TestClosureReadsCapturedValue(t *testing.T) {
	src := `
fn makeAdder(base) {
  fn addToBase(n) {
    return base + n
  }
  return addToBase
}
addFive = makeAdder(5)
addFive(10)
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(15), result.(*object.Integer).Value)
}

// TestAssignWritesOnlyCurrentFrame locks in the documented divergence from
// a typical scope chain: plain `=` inside a function never rebinds a
// variable captured from an enclosing scope, it always shadows locally.
func TestAssignWritesOnlyCurrentFrame(t *testing.T) {
	src := `
x = 1
fn trySet() {
  x = 2
}
trySet()
x
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.(*object.Integer).Value)
}

func TestForRangeWithStepAndReverse(t *testing.T) {
	src := `
total = 0
for (i in 0..10 step 2 reverse) {
  total = total + i
}
total
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.(*object.Integer).Value)
}

// TestForRangeWithDescendingBoundsAndReverse covers the case the previous
// reverse formula got wrong: start > end, the shape of spec.md's own
// `10..1 reverse` worked example.
func TestForRangeWithDescendingBoundsAndReverse(t *testing.T) {
	src := `
seen = []
for (i in 10..1 step 3 reverse) {
  seen = seen + [i]
}
seen
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	list := result.(*object.List)
	require.Len(t, list.Elements, 4)
	assert.Equal(t, int64(10), list.Elements[0].(*object.Integer).Value)
	assert.Equal(t, int64(7), list.Elements[1].(*object.Integer).Value)
	assert.Equal(t, int64(4), list.Elements[2].(*object.Integer).Value)
	assert.Equal(t, int64(1), list.Elements[3].(*object.Integer).Value)
}

// TestForRangeNegativeStepIsTreatedAsMagnitude exercises a negative step
// value, which must be accepted and iterate by its absolute value rather
// than being rejected.
func TestForRangeNegativeStepIsTreatedAsMagnitude(t *testing.T) {
	src := `
total = 0
for (i in 1..5 step -2) {
  total = total + i
}
total
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.(*object.Integer).Value)
}

func TestDivisionPromotesToFloatWhenNotExact(t *testing.T) {
	result, _, err := run(t, "7 / 2")
	require.NoError(t, err)
	f, ok := result.(*object.Float)
	require.True(t, ok, "expected a float result, got %T", result)
	assert.Equal(t, 3.5, f.Value)
}

func TestDivisionStaysIntegerWhenExact(t *testing.T) {
	result, _, err := run(t, "8 / 2")
	require.NoError(t, err)
	i, ok := result.(*object.Integer)
	require.True(t, ok, "expected an integer result, got %T", result)
	assert.Equal(t, int64(4), i.Value)
}

func TestListMapAndFilterWithLambdas(t *testing.T) {
	src := `
xs = [1, 2, 3, 4, 5]
doubled = xs.map(x => x * 2)
evens = doubled.filter(x => x % 4 == 0)
evens
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	list := result.(*object.List)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, int64(4), list.Elements[0].(*object.Integer).Value)
}

func TestStringInterpolation(t *testing.T) {
	src := `
name = "Eusha"
"hello {name}, 1 + 1 = {1 + 1}"
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "hello Eusha, 1 + 1 = 2", result.(*object.String).Value)
}

func TestBreakAndContinueInWhileLoop(t *testing.T) {
	src := `
i = 0
total = 0
while i < 10 {
  i = i + 1
  if i % 2 == 0 {
    continue
  }
  if i > 7 {
    break
  }
  total = total + i
}
total
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(16), result.(*object.Integer).Value)
}

func TestIndexAssignmentMutatesList(t *testing.T) {
	src := `
xs = [1, 2, 3]
xs[1] = 99
xs
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	list := result.(*object.List)
	assert.Equal(t, int64(99), list.Elements[1].(*object.Integer).Value)
}

func TestMapLiteralAndMethods(t *testing.T) {
	src := `
m = {name: "Eusha", version: 1}
m.keys().length()
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.(*object.Integer).Value)
}

func TestMathModule(t *testing.T) {
	src := `
use math
math.sqrt(16)
`
	result, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, float64(4), result.(*object.Float).Value)
}
