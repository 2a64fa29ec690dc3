package eval

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/builtin"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

// normalizeListIndex resolves a possibly-negative index (Python-style,
// -1 is the last element) against a slice length and bounds-checks it.
func normalizeListIndex(line, col int, idx int64, length int) (int, error) {
	if idx < 0 {
		idx += int64(length)
	}
	if idx < 0 || idx >= int64(length) {
		return 0, errs.NewRuntimeError(line, col, "index out of range: %d (length %d)", idx, length)
	}
	return int(idx), nil
}

func (e *Evaluator) evalIndexGet(n *ast.IndexGet) (object.Object, error) {
	target, err := e.Eval(n.Target)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(n.Index)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *object.List:
		i, ok := idx.(*object.Integer)
		if !ok {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "list index must be an integer, got %s", idx.GetType())
		}
		pos, err := normalizeListIndex(n.Line, n.Column, i.Value, len(t.Elements))
		if err != nil {
			return nil, err
		}
		return t.Elements[pos], nil
	case *object.String:
		i, ok := idx.(*object.Integer)
		if !ok {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "string index must be an integer, got %s", idx.GetType())
		}
		runes := []rune(t.Value)
		pos, err := normalizeListIndex(n.Line, n.Column, i.Value, len(runes))
		if err != nil {
			return nil, err
		}
		return &object.String{Value: string(runes[pos])}, nil
	case *object.Map:
		v, ok, err := t.Get(idx)
		if err != nil {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
		}
		if !ok {
			return &object.Null{}, nil
		}
		return v, nil
	}
	return nil, errs.NewRuntimeError(n.Line, n.Column, "value of type %s does not support indexing", target.GetType())
}

// evalMethodCall dispatches `.method(args)`. A module receiver resolves
// the method as a lookup in its environment; every other receiver goes
// through the builtin method catalog (builtin.CallMethod), with a final
// fallback treating a no-argument, unrecognized call on a map as
// `.key`-style sugar for a string-keyed get.
func (e *Evaluator) evalMethodCall(n *ast.MethodCall) (object.Object, error) {
	receiver, err := e.Eval(n.Receiver)
	if err != nil {
		return nil, err
	}

	if mod, ok := receiver.(*object.Module); ok {
		member, ok := asEnvironment(mod.Env).Get(n.Method)
		if !ok {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "module %q has no member %q", mod.Name, n.Method)
		}
		switch member.(type) {
		case *object.Function, *object.Lambda, *object.Native:
			args, err := e.evalArgs(n.Args)
			if err != nil {
				return nil, err
			}
			return e.callFunction(n.Line, n.Column, member, args)
		default:
			// A bare constant member (e.g. math.pi), not a call.
			return member, nil
		}
	}

	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	if callback, isLambda := receiver.(*object.Lambda); isLambda && n.Method == "call" {
		return e.callFunction(n.Line, n.Column, callback, args)
	}

	result, found, err := builtin.CallMethod(receiver, n.Method, args, e.callBuiltinCallback)
	if err != nil {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
	}
	if found {
		return result, nil
	}

	if m, ok := receiver.(*object.Map); ok && len(n.Args) == 0 {
		if v, exists, _ := m.Get(&object.String{Value: n.Method}); exists {
			return v, nil
		}
		return &object.Null{}, nil
	}

	return nil, errs.NewRuntimeError(n.Line, n.Column, "value of type %s has no method %q", receiver.GetType(), n.Method)
}

// callBuiltinCallback lets builtin methods like list.map/list.filter invoke
// an Eusha-level lambda or function value passed as an argument, without
// the builtin package importing eval (which would cycle).
func (e *Evaluator) callBuiltinCallback(fn object.Object, args []object.Object) (object.Object, error) {
	return e.callFunction(0, 0, fn, args)
}

func (e *Evaluator) evalArgs(nodes []ast.Node) ([]object.Object, error) {
	args := make([]object.Object, len(nodes))
	for i, n := range nodes {
		v, err := e.Eval(n)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalFunctionCall resolves a bare `name(args)` call to a free builtin
// function, a user-defined function, or a lambda bound to that name.
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) (object.Object, error) {
	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	if native, ok := builtin.Lookup(n.Name); ok {
		if err := native.CheckArity(len(args)); err != nil {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
		}
		if n.Name == "help" {
			return builtin.Help(e.Out, args)
		}
		result, err := native.Fn(args)
		if err != nil {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
		}
		return result, nil
	}

	callee, ok := e.Env.Get(n.Name)
	if !ok {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "function %q is not defined", n.Name)
	}
	return e.callFunction(n.Line, n.Column, callee, args)
}
