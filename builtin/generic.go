package builtin

import (
	"fmt"
	"strconv"

	"github.com/Eusha122/Elang/object"
)

// Invoker lets a builtin method (list.map, list.filter) call back into an
// Eusha-level function or lambda value without this package importing
// eval, which would create an import cycle.
type Invoker func(fn object.Object, args []object.Object) (object.Object, error)

// CallMethod dispatches `.method(args)` against the builtin catalog for
// receiver's dynamic type. The bool result reports whether method was
// recognized at all (a recognized method that errors on its arguments
// still returns true, so the caller can tell "wrong args" apart from "no
// such method").
func CallMethod(receiver object.Object, method string, args []object.Object, invoke Invoker) (object.Object, bool, error) {
	if result, ok, err := callUniversalMethod(receiver, method, args); ok {
		return result, true, err
	}
	switch receiver.(type) {
	case *object.String:
		return callStringMethod(receiver.(*object.String), method, args)
	case *object.List:
		return callListMethod(receiver.(*object.List), method, args, invoke)
	case *object.Map:
		return callMapMethod(receiver.(*object.Map), method, args)
	}
	return nil, false, nil
}

// callUniversalMethod implements to_int/to_float/to_str, which apply to
// every value kind rather than one specific type.
func callUniversalMethod(receiver object.Object, method string, args []object.Object) (object.Object, bool, error) {
	switch method {
	case "to_str":
		if len(args) != 0 {
			return nil, true, fmt.Errorf("to_str() takes no arguments")
		}
		return &object.String{Value: receiver.ToString()}, true, nil
	case "to_int":
		if len(args) != 0 {
			return nil, true, fmt.Errorf("to_int() takes no arguments")
		}
		v, err := toInt(receiver)
		return v, true, err
	case "to_float":
		if len(args) != 0 {
			return nil, true, fmt.Errorf("to_float() takes no arguments")
		}
		v, err := toFloatObj(receiver)
		return v, true, err
	}
	return nil, false, nil
}

func toInt(o object.Object) (object.Object, error) {
	switch v := o.(type) {
	case *object.Integer:
		return v, nil
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}, nil
	case *object.String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", v.Value)
		}
		return &object.Integer{Value: n}, nil
	case *object.Boolean:
		if v.Value {
			return &object.Integer{Value: 1}, nil
		}
		return &object.Integer{Value: 0}, nil
	}
	return nil, fmt.Errorf("cannot convert %s to int", o.GetType())
}

func toFloatObj(o object.Object) (object.Object, error) {
	switch v := o.(type) {
	case *object.Float:
		return v, nil
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}, nil
	case *object.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", v.Value)
		}
		return &object.Float{Value: f}, nil
	}
	return nil, fmt.Errorf("cannot convert %s to float", o.GetType())
}
