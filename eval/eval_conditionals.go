package eval

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/object"
)

// evalIf shares the enclosing environment frame rather than opening a new
// one: only a function call gets a fresh frame, per spec.md section 4.3 —
// an if-block is not itself a new lexical scope.
func (e *Evaluator) evalIf(n *ast.If) (object.Object, error) {
	cond, err := e.Eval(n.Cond)
	if err != nil {
		return nil, err
	}
	if object.Truthy(cond) {
		return e.Eval(n.Then)
	}
	switch elseNode := n.Else.(type) {
	case nil:
		return &object.Null{}, nil
	case *ast.If:
		return e.evalIf(elseNode)
	case *ast.Block:
		return e.Eval(elseNode)
	}
	return &object.Null{}, nil
}
