package builtin

import (
	"fmt"
	"strings"

	"github.com/Eusha122/Elang/object"
)

func callStringMethod(s *object.String, method string, args []object.Object) (object.Object, bool, error) {
	switch method {
	case "length":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.Integer{Value: int64(len([]rune(s.Value)))}, true, nil
	case "upper":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.String{Value: strings.ToUpper(s.Value)}, true, nil
	case "lower":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.String{Value: strings.ToLower(s.Value)}, true, nil
	case "trim":
		if err := arity(method, 0, len(args)); err != nil {
			return nil, true, err
		}
		return &object.String{Value: strings.TrimSpace(s.Value)}, true, nil
	case "contains":
		sub, err := stringArg(method, args, 0)
		if err != nil {
			return nil, true, err
		}
		return &object.Boolean{Value: strings.Contains(s.Value, sub)}, true, nil
	case "split":
		var parts []string
		switch len(args) {
		case 0:
			parts = strings.Fields(s.Value)
		case 1:
			sep, err := stringArg(method, args, 0)
			if err != nil {
				return nil, true, err
			}
			parts = strings.Split(s.Value, sep)
		default:
			return nil, true, fmt.Errorf("split() expects 0 or 1 argument(s), got %d", len(args))
		}
		elems := make([]object.Object, len(parts))
		for i, p := range parts {
			elems[i] = &object.String{Value: p}
		}
		return &object.List{Elements: elems}, true, nil
	case "replace":
		if err := arity(method, 2, len(args)); err != nil {
			return nil, true, err
		}
		old, err := stringArg(method, args, 0)
		if err != nil {
			return nil, true, err
		}
		newStr, err := stringArg(method, args, 1)
		if err != nil {
			return nil, true, err
		}
		return &object.String{Value: strings.ReplaceAll(s.Value, old, newStr)}, true, nil
	}
	return nil, false, nil
}

func arity(method string, want, got int) error {
	if want != got {
		return fmt.Errorf("%s() expects %d argument(s), got %d", method, want, got)
	}
	return nil
}

func stringArg(method string, args []object.Object, idx int) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("%s() missing argument %d", method, idx+1)
	}
	s, ok := args[idx].(*object.String)
	if !ok {
		return "", fmt.Errorf("%s() expects a string argument, got %s", method, args[idx].GetType())
	}
	return s.Value, nil
}
