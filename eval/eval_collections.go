package eval

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

func (e *Evaluator) evalList(n *ast.List) (object.Object, error) {
	elems, err := e.evalArgs(n.Elements)
	if err != nil {
		return nil, err
	}
	return &object.List{Elements: elems}, nil
}

func (e *Evaluator) evalObjectLiteral(n *ast.ObjectLiteral) (object.Object, error) {
	m := object.NewMap()
	for _, entry := range n.Entries {
		key, err := e.Eval(entry.Key)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(entry.Value)
		if err != nil {
			return nil, err
		}
		if err := m.Set(key, val); err != nil {
			return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
		}
	}
	return m, nil
}
