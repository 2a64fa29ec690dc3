package builtin

import (
	"fmt"

	"github.com/Eusha122/Elang/object"
)

func callListMethod(l *object.List, method string, args []object.Object, invoke Invoker) (object.Object, bool, error) {
	switch method {
	case "push":
		if err := arity(method, 1, len(args)); err != nil {
			return nil, true, err
		}
		l.Elements = append(l.Elements, args[0])
		return l, true, nil
	case "pop":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		if len(l.Elements) == 0 {
			return nil, true, fmt.Errorf("pop() on an empty list")
		}
		last := l.Elements[len(l.Elements)-1]
		l.Elements = l.Elements[:len(l.Elements)-1]
		return last, true, nil
	case "length":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.Integer{Value: int64(len(l.Elements))}, true, nil
	case "sort":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		l.Elements = object.SortedCopy(l.Elements)
		return l, true, nil
	case "reverse":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		reversed := make([]object.Object, len(l.Elements))
		for i, e := range l.Elements {
			reversed[len(l.Elements)-1-i] = e
		}
		l.Elements = reversed
		return l, true, nil
	case "sum":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return listSum(l)
	case "min":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return listExtreme(l, true)
	case "max":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return listExtreme(l, false)
	case "map":
		if err := arity(method, 1, len(args)); err != nil {
			return nil, true, err
		}
		out := make([]object.Object, len(l.Elements))
		for i, e := range l.Elements {
			v, err := invoke(args[0], []object.Object{e})
			if err != nil {
				return nil, true, err
			}
			out[i] = v
		}
		return &object.List{Elements: out}, true, nil
	case "filter":
		if err := arity(method, 1, len(args)); err != nil {
			return nil, true, err
		}
		var out []object.Object
		for _, e := range l.Elements {
			v, err := invoke(args[0], []object.Object{e})
			if err != nil {
				return nil, true, err
			}
			if object.Truthy(v) {
				out = append(out, e)
			}
		}
		return &object.List{Elements: out}, true, nil
	}
	return nil, false, nil
}

func listSum(l *object.List) (object.Object, bool, error) {
	var intSum int64
	var floatSum float64
	isFloat := false
	for _, e := range l.Elements {
		switch v := e.(type) {
		case *object.Integer:
			intSum += v.Value
		case *object.Float:
			isFloat = true
			floatSum += v.Value
		default:
			return nil, true, fmt.Errorf("sum() requires a list of numbers, found %s", e.GetType())
		}
	}
	if isFloat {
		return &object.Float{Value: floatSum + float64(intSum)}, true, nil
	}
	return &object.Integer{Value: intSum}, true, nil
}

func listExtreme(l *object.List, wantMin bool) (object.Object, bool, error) {
	if len(l.Elements) == 0 {
		return nil, true, fmt.Errorf("cannot take min/max of an empty list")
	}
	best := l.Elements[0]
	for _, e := range l.Elements[1:] {
		if wantMin && object.Less(e, best) {
			best = e
		}
		if !wantMin && object.Less(best, e) {
			best = e
		}
	}
	return best, true, nil
}
