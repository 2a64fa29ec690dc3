package eval

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

// evalWhile shares the enclosing frame across the whole loop. No new
// frame is created per iteration: the same assignment semantics that
// govern plain `=` everywhere else apply here too, so an accumulator
// declared before the loop keeps accumulating rather than being shadowed
// away each iteration, per spec.md section 4.3.
func (e *Evaluator) evalWhile(n *ast.While) (object.Object, error) {
	for {
		cond, err := e.Eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			break
		}
		result, err := e.Eval(n.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *object.BreakSignal:
			return &object.Null{}, nil
		case *object.ContinueSignal:
			// fall through to the next condition check
		case *object.ReturnSignal:
			return result, nil
		}
	}
	return &object.Null{}, nil
}

// evalForRange implements `for (i in start..end [step N] [reverse])`. The
// loop variable is rebound in the enclosing frame on every iteration
// (overwriting its previous value) rather than given a fresh per-iteration
// frame, for the same reason evalWhile shares its frame: a for-loop body
// that writes to a variable declared outside the loop must be able to
// accumulate into it.
func (e *Evaluator) evalForRange(n *ast.ForRange) (object.Object, error) {
	startObj, err := e.Eval(n.Start)
	if err != nil {
		return nil, err
	}
	endObj, err := e.Eval(n.End)
	if err != nil {
		return nil, err
	}
	start, ok := startObj.(*object.Integer)
	if !ok {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "for-range start must be an integer, got %s", startObj.GetType())
	}
	end, ok := endObj.(*object.Integer)
	if !ok {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "for-range end must be an integer, got %s", endObj.GetType())
	}

	step := int64(1)
	if n.Step != nil {
		stepObj, err := e.Eval(n.Step)
		if err != nil {
			return nil, err
		}
		stepInt, ok := stepObj.(*object.Integer)
		if !ok {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "for-range step must be an integer, got %s", stepObj.GetType())
		}
		if stepInt.Value == 0 {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "for-range step must not be zero")
		}
		step = abs(stepInt.Value)
	}

	values := buildRangeValues(start.Value, end.Value, step, n.Reverse)
	for _, v := range values {
		e.Env.SetLocal(n.Var, &object.Integer{Value: v})
		result, err := e.Eval(n.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *object.BreakSignal:
			return &object.Null{}, nil
		case *object.ContinueSignal:
		case *object.ReturnSignal:
			return result, nil
		}
	}
	return &object.Null{}, nil
}

func buildRangeValues(start, end, step int64, reverse bool) []int64 {
	var values []int64
	if !reverse {
		for i := start; i <= end; i += step {
			values = append(values, i)
		}
	} else {
		for i := start; i >= end; i -= step {
			values = append(values, i)
		}
	}
	return values
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// evalForEach implements `for (x in iterable)` over lists, map keys, and
// strings (one single-character string per iteration).
func (e *Evaluator) evalForEach(n *ast.ForEach) (object.Object, error) {
	iterObj, err := e.Eval(n.Iterable)
	if err != nil {
		return nil, err
	}

	var items []object.Object
	switch it := iterObj.(type) {
	case *object.List:
		items = it.Elements
	case *object.Map:
		for _, k := range it.Order {
			items = append(items, it.Keys[k])
		}
	case *object.String:
		for _, r := range it.Value {
			items = append(items, &object.String{Value: string(r)})
		}
	default:
		return nil, errs.NewRuntimeError(n.Line, n.Column, "cannot iterate over a value of type %s", iterObj.GetType())
	}

	for _, item := range items {
		e.Env.SetLocal(n.Var, item)
		result, err := e.Eval(n.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *object.BreakSignal:
			return &object.Null{}, nil
		case *object.ContinueSignal:
		case *object.ReturnSignal:
			return result, nil
		}
	}
	return &object.Null{}, nil
}
