package eval

import (
	"fmt"
	"strings"

	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/builtin"
	"github.com/Eusha122/Elang/object"
)

// evalSay implements the `say(...)​.modifier` output statement. Each
// trailing modifier appends its own terminator; say() with no modifiers
// prints the bare value with no terminator at all, per spec.md section 5.
func (e *Evaluator) evalSay(n *ast.Say) (object.Object, error) {
	val, err := e.Eval(n.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(e.Out, val.ToString())
	for _, mod := range n.Modifiers {
		switch mod {
		case ast.ModNewline:
			fmt.Fprint(e.Out, "\n")
		case ast.ModSpace:
			fmt.Fprint(e.Out, " ")
		case ast.ModTab:
			fmt.Fprint(e.Out, "\t")
		}
	}
	return &object.Null{}, nil
}

// evalTake implements the `take([prompt])` input expression, reading one
// line from the evaluator's input stream and returning it as a string.
func (e *Evaluator) evalTake(n *ast.Take) (object.Object, error) {
	if n.Prompt != nil {
		prompt, err := e.Eval(n.Prompt)
		if err != nil {
			return nil, err
		}
		fmt.Fprint(e.Out, prompt.ToString())
	}
	line, err := e.In.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return &object.String{Value: ""}, nil
	}
	return &object.String{Value: line}, nil
}

// evalBuiltinCommand implements `&&name.with.dots`, Eusha's small catalog
// of diagnostic/informational commands separate from the callable
// function namespace.
func (e *Evaluator) evalBuiltinCommand(n *ast.BuiltinCommand) (object.Object, error) {
	return builtin.RunCommand(e.Out, n.Path)
}
