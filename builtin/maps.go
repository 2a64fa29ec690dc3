package builtin

import "github.com/Eusha122/Elang/object"

func callMapMethod(m *object.Map, method string, args []object.Object) (object.Object, bool, error) {
	switch method {
	case "keys":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		out := make([]object.Object, len(m.Order))
		for i, k := range m.Order {
			out[i] = m.Keys[k]
		}
		return &object.List{Elements: out}, true, nil
	case "values":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		out := make([]object.Object, len(m.Order))
		for i, k := range m.Order {
			out[i] = m.Values[k]
		}
		return &object.List{Elements: out}, true, nil
	case "length":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.Integer{Value: int64(len(m.Order))}, true, nil
	case "has":
		if err := arity(method, 1, len(args)); err != nil {
			return nil, true, err
		}
		_, ok, err := m.Get(args[0])
		if err != nil {
			return nil, true, err
		}
		return &object.Boolean{Value: ok}, true, nil
	}
	return nil, false, nil
}
