package builtin

import (
	"fmt"
	stdmath "math"

	"github.com/Eusha122/Elang/env"
	"github.com/Eusha122/Elang/object"
)

// NewMathModule builds the `use math` module: a handful of constants plus
// native numeric functions, grounded on the teacher's std/math.go catalog
// (abs, floor, ceil, round, sqrt, pow, sin, cos, tan, log) narrowed to
// what spec.md's math module names.
func NewMathModule() *object.Module {
	e := env.New(nil)
	e.SetLocal("pi", &object.Float{Value: stdmath.Pi})
	e.SetLocal("e", &object.Float{Value: stdmath.E})

	reg := func(name string, min, max int, fn object.NativeFunc) {
		e.SetLocal(name, &object.Native{Name: name, MinArity: min, MaxArity: max, Fn: fn})
	}

	reg("sqrt", 1, 1, mathUnary(stdmath.Sqrt))
	reg("abs", 1, 1, mathAbs)
	reg("floor", 1, 1, mathUnary(stdmath.Floor))
	reg("ceil", 1, 1, mathUnary(stdmath.Ceil))
	reg("round", 1, 1, mathUnary(stdmath.Round))
	reg("sin", 1, 1, mathUnary(stdmath.Sin))
	reg("cos", 1, 1, mathUnary(stdmath.Cos))
	reg("tan", 1, 1, mathUnary(stdmath.Tan))
	reg("log", 1, 1, mathUnary(stdmath.Log))
	reg("pow", 2, 2, mathPow)

	return &object.Module{Name: "math", Env: e}
}

func mathArgFloat(args []object.Object, idx int) (float64, error) {
	switch v := args[idx].(type) {
	case *object.Integer:
		return float64(v.Value), nil
	case *object.Float:
		return v.Value, nil
	}
	return 0, fmt.Errorf("expected a number, got %s", args[idx].GetType())
}

func mathUnary(fn func(float64) float64) object.NativeFunc {
	return func(args []object.Object) (object.Object, error) {
		x, err := mathArgFloat(args, 0)
		if err != nil {
			return nil, err
		}
		return &object.Float{Value: fn(x)}, nil
	}
}

func mathAbs(args []object.Object) (object.Object, error) {
	switch v := args[0].(type) {
	case *object.Integer:
		if v.Value < 0 {
			return &object.Integer{Value: -v.Value}, nil
		}
		return v, nil
	case *object.Float:
		return &object.Float{Value: stdmath.Abs(v.Value)}, nil
	}
	return nil, fmt.Errorf("abs() expects a number, got %s", args[0].GetType())
}

func mathPow(args []object.Object) (object.Object, error) {
	x, err := mathArgFloat(args, 0)
	if err != nil {
		return nil, err
	}
	y, err := mathArgFloat(args, 1)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: stdmath.Pow(x, y)}, nil
}
