package eval

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

// evalAssign implements plain `=`. It always writes into the current
// environment frame and never walks outward to rebind a variable captured
// by an enclosing scope — this is Eusha's documented assignment semantics,
// per spec.md section 9, and is deliberately preserved rather than
// "fixed" to the more common walk-the-chain behavior.
func (e *Evaluator) evalAssign(n *ast.Assign) (object.Object, error) {
	val, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	e.Env.SetLocal(n.Name, val)
	return val, nil
}

// evalCompoundAssign implements +=, -=, *=, /=. The current value is read
// by walking the chain (Get), but the result is written with the same
// current-frame-only semantics as plain assignment.
func (e *Evaluator) evalCompoundAssign(n *ast.CompoundAssign) (object.Object, error) {
	current, ok := e.Env.Get(n.Name)
	if !ok {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "name %q is not defined", n.Name)
	}
	rhs, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}

	var result object.Object
	switch n.Op {
	case ast.CAddAssign:
		result, err = addValues(n.Line, n.Column, current, rhs)
	case ast.CSubAssign:
		result, err = arithmetic(n.Line, n.Column, "-", current, rhs)
	case ast.CMulAssign:
		result, err = arithmetic(n.Line, n.Column, "*", current, rhs)
	case ast.CDivAssign:
		result, err = arithmetic(n.Line, n.Column, "/", current, rhs)
	default:
		return nil, errs.NewRuntimeError(n.Line, n.Column, "unknown compound assignment operator %q", n.Op)
	}
	if err != nil {
		return nil, err
	}
	e.Env.SetLocal(n.Name, result)
	return result, nil
}

func (e *Evaluator) evalIndexSet(n *ast.IndexSet) (object.Object, error) {
	target, err := e.Eval(n.Target)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(n.Index)
	if err != nil {
		return nil, err
	}
	val, err := e.Eval(n.Value)
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
		t.Elements[pos] = val
		return val, nil
	case *object.Map:
		if err := t.Set(idx, val); err != nil {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
		}
		return val, nil
	}
	return nil, errs.NewRuntimeError(n.Line, n.Column, "cannot index-assign into a value of type %s", target.GetType())
}

func (e *Evaluator) evalFunctionDef(n *ast.FunctionDef) (object.Object, error) {
	fn := &object.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: e.Env}
	e.Env.SetLocal(n.Name, fn)
	return fn, nil
}

func (e *Evaluator) evalReturn(n *ast.Return) (object.Object, error) {
	if n.Value == nil {
		return &object.ReturnSignal{Value: &object.Null{}}, nil
	}
	val, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	return &object.ReturnSignal{Value: val}, nil
}
