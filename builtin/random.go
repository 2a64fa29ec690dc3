package builtin

import (
	"fmt"
	"math/rand"

	"github.com/Eusha122/Elang/env"
	"github.com/Eusha122/Elang/object"
)

// NewRandomModule builds the `use random` module: randint, random,
// choice, shuffle, uniform, grounded on the teacher's std/math.go
// rand/rand_int functions, split into their own module per spec.md.
func NewRandomModule() *object.Module {
	e := env.New(nil)
	reg := func(name string, min, max int, fn object.NativeFunc) {
		e.SetLocal(name, &object.Native{Name: name, MinArity: min, MaxArity: max, Fn: fn})
	}

	reg("randint", 2, 2, randIntFn)
	reg("random", 0, 0, func(args []object.Object) (object.Object, error) {
		return &object.Float{Value: rand.Float64()}, nil
	})
	reg("uniform", 2, 2, uniformFn)
	reg("choice", 1, 1, choiceFn)
	reg("shuffle", 1, 1, shuffleFn)

	return &object.Module{Name: "random", Env: e}
}

func randIntFn(args []object.Object) (object.Object, error) {
	lo, ok1 := args[0].(*object.Integer)
	hi, ok2 := args[1].(*object.Integer)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("randint() expects two integers")
	}
	if lo.Value > hi.Value {
		return nil, fmt.Errorf("randint(): low bound must not exceed high bound")
	}
	return &object.Integer{Value: lo.Value + rand.Int63n(hi.Value-lo.Value+1)}, nil
}

func uniformFn(args []object.Object) (object.Object, error) {
	lo, err := mathArgFloat(args, 0)
	if err != nil {
		return nil, err
	}
	hi, err := mathArgFloat(args, 1)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: lo + rand.Float64()*(hi-lo)}, nil
}

func choiceFn(args []object.Object) (object.Object, error) {
	l, ok := args[0].(*object.List)
	if !ok {
		return nil, fmt.Errorf("choice() expects a list")
	}
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("choice() on an empty list")
	}
	return l.Elements[rand.Intn(len(l.Elements))], nil
}

func shuffleFn(args []object.Object) (object.Object, error) {
	l, ok := args[0].(*object.List)
	if !ok {
		return nil, fmt.Errorf("shuffle() expects a list")
	}
	shuffled := make([]object.Object, len(l.Elements))
	copy(shuffled, l.Elements)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return &object.List{Elements: shuffled}, nil
}
