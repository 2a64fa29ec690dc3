package eval

import (
	"os"

	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/builtin"
	"github.com/Eusha122/Elang/env"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
	"github.com/Eusha122/Elang/parser"
)

// evalUse implements `use NAME`. It resolves NAME to either a predefined
// catalog module (math, random) or a `NAME.elang` source file, evaluates
// it once in its own environment, and binds the resulting module value
// under NAME in the current frame. Repeated `use` of the same module
// returns the cached instance rather than re-running the file.
func (e *Evaluator) evalUse(n *ast.Use) (object.Object, error) {
	if mod, ok := e.modules[n.ModuleName]; ok {
		e.Env.SetLocal(n.ModuleName, mod)
		return mod, nil
	}

	switch n.ModuleName {
	case "math":
		mod := builtin.NewMathModule()
		e.modules[n.ModuleName] = mod
		e.Env.SetLocal(n.ModuleName, mod)
		return mod, nil
	case "random":
		mod := builtin.NewRandomModule()
		e.modules[n.ModuleName] = mod
		e.Env.SetLocal(n.ModuleName, mod)
		return mod, nil
	}

	path, err := e.resolveModulePath(n.ModuleName)
	if err != nil {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "%s", err.Error())
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "could not read module %q: %s", n.ModuleName, err.Error())
	}

	p := parser.NewParser(string(src))
	root := p.Parse()
	if p.HasErrors() {
		return nil, errs.NewRuntimeError(n.Line, n.Column, "module %q failed to parse: %s", n.ModuleName, p.GetErrors()[0].Error())
	}

	modEnv := env.New(nil)
	sub := &Evaluator{Env: modEnv, Out: e.Out, In: e.In, BaseDir: e.BaseDir, modules: e.modules}
	if _, err := sub.Eval(root); err != nil {
		return nil, err
	}

	mod := &object.Module{Name: n.ModuleName, Env: modEnv}
	e.modules[n.ModuleName] = mod
	e.Env.SetLocal(n.ModuleName, mod)
	return mod, nil
}
