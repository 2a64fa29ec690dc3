package eval

import (
	"math"
	"strings"

	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (object.Object, error) {
	if v, ok := e.Env.Get(n.Name); ok {
		return v, nil
	}
	return nil, errs.NewRuntimeError(n.Line, n.Column, "name %q is not defined", n.Name)
}

// evalInterpolatedString rebuilds the display form of a `"...{expr}..."`
// literal by evaluating each captured expression segment and concatenating
// its ToString() form with the literal runs, per spec.md section 4.1.
func (e *Evaluator) evalInterpolatedString(n *ast.InterpolatedString) (object.Object, error) {
	var b strings.Builder
	for _, seg := range n.Segments {
		if seg.Expr == nil {
			b.WriteString(seg.Literal)
			continue
		}
		v, err := e.Eval(seg.Expr)
		if err != nil {
			return nil, err
		}
		b.WriteString(v.ToString())
	}
	return &object.String{Value: b.String()}, nil
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) (object.Object, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		switch v := operand.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		}
		return nil, errs.NewRuntimeError(n.Line, n.Column, "unary '-' requires a number, got %s", operand.GetType())
	case "not":
		return &object.Boolean{Value: !object.Truthy(operand)}, nil
	}
	return nil, errs.NewRuntimeError(n.Line, n.Column, "unknown unary operator %q", n.Op)
}

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (object.Object, error) {
	// "and"/"or" short-circuit, so the right operand is only evaluated when
	// it can still change the result.
	if n.Op == "and" {
		left, err := e.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(left) {
			return &object.Boolean{Value: false}, nil
		}
		right, err := e.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: object.Truthy(right)}, nil
	}
	if n.Op == "or" {
		left, err := e.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		if object.Truthy(left) {
			return &object.Boolean{Value: true}, nil
		}
		right, err := e.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: object.Truthy(right)}, nil
	}

	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	if n.Op == "say-concat" {
		return &object.String{Value: left.ToString() + right.ToString()}, nil
	}

	switch n.Op {
	case "==":
		return &object.Boolean{Value: objectsEqual(left, right)}, nil
	case "!=":
		return &object.Boolean{Value: !objectsEqual(left, right)}, nil
	case "<", ">", "<=", ">=":
		return compareOrdered(n.Line, n.Column, n.Op, left, right)
	case "+":
		return addValues(n.Line, n.Column, left, right)
	case "-", "*", "/", "%":
		return arithmetic(n.Line, n.Column, n.Op, left, right)
	case "**":
		return power(n.Line, n.Column, left, right)
	}
	return nil, errs.NewRuntimeError(n.Line, n.Column, "unknown binary operator %q", n.Op)
}

func objectsEqual(a, b object.Object) bool {
	switch av := a.(type) {
	case *object.Integer:
		switch bv := b.(type) {
		case *object.Integer:
			return av.Value == bv.Value
		case *object.Float:
			return float64(av.Value) == bv.Value
		}
	case *object.Float:
		switch bv := b.(type) {
		case *object.Integer:
			return av.Value == float64(bv.Value)
		case *object.Float:
			return av.Value == bv.Value
		}
	case *object.String:
		if bv, ok := b.(*object.String); ok {
			return av.Value == bv.Value
		}
	case *object.Boolean:
		if bv, ok := b.(*object.Boolean); ok {
			return av.Value == bv.Value
		}
	case *object.Null:
		_, ok := b.(*object.Null)
		return ok
	}
	return false
}

func compareOrdered(line, col int, op string, a, b object.Object) (object.Object, error) {
	var lt, gt bool
	switch av := a.(type) {
	case *object.Integer:
		switch bv := b.(type) {
		case *object.Integer:
			lt, gt = av.Value < bv.Value, av.Value > bv.Value
		case *object.Float:
			lt, gt = float64(av.Value) < bv.Value, float64(av.Value) > bv.Value
		default:
			return nil, errs.NewRuntimeError(line, col, "cannot compare %s and %s", a.GetType(), b.GetType())
		}
	case *object.Float:
		switch bv := b.(type) {
		case *object.Integer:
			lt, gt = av.Value < float64(bv.Value), av.Value > float64(bv.Value)
		case *object.Float:
			lt, gt = av.Value < bv.Value, av.Value > bv.Value
		default:
			return nil, errs.NewRuntimeError(line, col, "cannot compare %s and %s", a.GetType(), b.GetType())
		}
	case *object.String:
		bv, ok := b.(*object.String)
		if !ok {
			return nil, errs.NewRuntimeError(line, col, "cannot compare %s and %s", a.GetType(), b.GetType())
		}
		lt, gt = av.Value < bv.Value, av.Value > bv.Value
	default:
		return nil, errs.NewRuntimeError(line, col, "cannot compare %s and %s", a.GetType(), b.GetType())
	}
	switch op {
	case "<":
		return &object.Boolean{Value: lt}, nil
	case ">":
		return &object.Boolean{Value: gt}, nil
	case "<=":
		return &object.Boolean{Value: !gt}, nil
	case ">=":
		return &object.Boolean{Value: !lt}, nil
	}
	return &object.Boolean{Value: false}, nil
}

// addValues implements `+`, which is overloaded for numeric addition,
// string concatenation, and list concatenation, per spec.md section 4.3.
func addValues(line, col int, a, b object.Object) (object.Object, error) {
	switch av := a.(type) {
	case *object.String:
		if bv, ok := b.(*object.String); ok {
			return &object.String{Value: av.Value + bv.Value}, nil
		}
	case *object.List:
		if bv, ok := b.(*object.List); ok {
			out := make([]object.Object, 0, len(av.Elements)+len(bv.Elements))
			out = append(out, av.Elements...)
			out = append(out, bv.Elements...)
			return &object.List{Elements: out}, nil
		}
	}
	return arithmetic(line, col, "+", a, b)
}

func arithmetic(line, col int, op string, a, b object.Object) (object.Object, error) {
	ai, aIsInt := a.(*object.Integer)
	bi, bIsInt := b.(*object.Integer)
	if aIsInt && bIsInt {
		switch op {
		case "+":
			return &object.Integer{Value: ai.Value + bi.Value}, nil
		case "-":
			return &object.Integer{Value: ai.Value - bi.Value}, nil
		case "*":
			return &object.Integer{Value: ai.Value * bi.Value}, nil
		case "/":
			if bi.Value == 0 {
				return nil, errs.NewRuntimeError(line, col, "division by zero")
			}
			if ai.Value%bi.Value != 0 {
				return &object.Float{Value: float64(ai.Value) / float64(bi.Value)}, nil
			}
			return &object.Integer{Value: ai.Value / bi.Value}, nil
		case "%":
			if bi.Value == 0 {
				return nil, errs.NewRuntimeError(line, col, "division by zero")
			}
			return &object.Integer{Value: ai.Value % bi.Value}, nil
		}
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, errs.NewRuntimeError(line, col, "operator %q requires numbers, got %s and %s", op, a.GetType(), b.GetType())
	}
	switch op {
	case "+":
		return &object.Float{Value: af + bf}, nil
	case "-":
		return &object.Float{Value: af - bf}, nil
	case "*":
		return &object.Float{Value: af * bf}, nil
	case "/":
		if bf == 0 {
			return nil, errs.NewRuntimeError(line, col, "division by zero")
		}
		return &object.Float{Value: af / bf}, nil
	case "%":
		return nil, errs.NewRuntimeError(line, col, "'%%' requires integer operands")
	}
	return nil, errs.NewRuntimeError(line, col, "unknown arithmetic operator %q", op)
}

// power implements `**`. A float result is only produced when either
// operand is a float or the exponent is negative.
func power(line, col int, a, b object.Object) (object.Object, error) {
	ai, aIsInt := a.(*object.Integer)
	bi, bIsInt := b.(*object.Integer)
	if aIsInt && bIsInt && bi.Value >= 0 {
		result := int64(1)
		base := ai.Value
		exp := bi.Value
		for i := int64(0); i < exp; i++ {
			result *= base
		}
		return &object.Integer{Value: result}, nil
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, errs.NewRuntimeError(line, col, "'**' requires numbers, got %s and %s", a.GetType(), b.GetType())
	}
	return &object.Float{Value: math.Pow(af, bf)}, nil
}

func toFloat(o object.Object) (float64, bool) {
	switch v := o.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	}
	return 0, false
}
