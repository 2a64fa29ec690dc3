// Package eval implements the tree-walking evaluator for Eusha. It walks
// ast.Node values with a single type switch, grounded on the teacher's
// Evaluator (eval/evaluator.go) — same Eval-entry-point-plus-per-concern-
// file split — generalized to Eusha's AST shape and to explicit (Object,
// error) returns rather than error-as-object propagation.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/env"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/object"
)

// Evaluator holds everything needed to execute a parsed program: the
// current environment frame, I/O streams for say/take, and the base
// directory used to resolve `use` module paths.
type Evaluator struct {
	Env     *env.Environment
	Out     io.Writer
	In      *bufio.Reader
	BaseDir string
	modules map[string]*object.Module
}

// NewEvaluator creates a root evaluator with a fresh global environment.
func NewEvaluator(baseDir string) *Evaluator {
	return &Evaluator{
		Env:     env.New(nil),
		Out:     os.Stdout,
		In:      bufio.NewReader(os.Stdin),
		BaseDir: baseDir,
		modules: make(map[string]*object.Module),
	}
}

// SetOutput redirects say/take output, primarily for tests.
func (e *Evaluator) SetOutput(w io.Writer) { e.Out = w }

// SetInput redirects take's input source, primarily for tests.
func (e *Evaluator) SetInput(r io.Reader) { e.In = bufio.NewReader(r) }

// child returns a new Evaluator sharing I/O and module cache but running
// against the given environment frame; callers pass in the fresh frame
// they created.
func (e *Evaluator) child(parent *env.Environment) *Evaluator {
	return &Evaluator{Env: parent, Out: e.Out, In: e.In, BaseDir: e.BaseDir, modules: e.modules}
}

// asEnvironment recovers the concrete *env.Environment behind the
// object.Env interface. Every object.Env value in the interpreter is an
// *env.Environment (closure and module environments built here, and the
// math/random module environments built in builtin), so the assertion
// always holds.
func asEnvironment(e object.Env) *env.Environment {
	return e.(*env.Environment)
}

// Eval dispatches on the dynamic type of node. It is the single entry
// point into the evaluator, per spec.md section 4.4.
func (e *Evaluator) Eval(node ast.Node) (object.Object, error) {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.IntLiteral:
		return &object.Integer{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return &object.Float{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, nil
	case *ast.BoolLiteral:
		return &object.Boolean{Value: n.Value}, nil
	case *ast.NullLiteral:
		return &object.Null{}, nil
	case *ast.InterpolatedString:
		return e.evalInterpolatedString(n)
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.Assign:
		return e.evalAssign(n)
	case *ast.CompoundAssign:
		return e.evalCompoundAssign(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	case *ast.List:
		return e.evalList(n)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n)
	case *ast.IndexGet:
		return e.evalIndexGet(n)
	case *ast.IndexSet:
		return e.evalIndexSet(n)
	case *ast.MethodCall:
		return e.evalMethodCall(n)
	case *ast.FunctionDef:
		return e.evalFunctionDef(n)
	case *ast.FunctionCall:
		return e.evalFunctionCall(n)
	case *ast.Return:
		return e.evalReturn(n)
	case *ast.Lambda:
		return &object.Lambda{Params: n.Params, Body: n.Body, Env: e.Env}, nil
	case *ast.If:
		return e.evalIf(n)
	case *ast.While:
		return e.evalWhile(n)
	case *ast.ForRange:
		return e.evalForRange(n)
	case *ast.ForEach:
		return e.evalForEach(n)
	case *ast.Break:
		return &object.BreakSignal{}, nil
	case *ast.Continue:
		return &object.ContinueSignal{}, nil
	case *ast.Say:
		return e.evalSay(n)
	case *ast.Take:
		return e.evalTake(n)
	case *ast.Use:
		return e.evalUse(n)
	case *ast.BuiltinCommand:
		return e.evalBuiltinCommand(n)
	case nil:
		return &object.Null{}, nil
	default:
		line, col := node.Pos()
		return nil, errs.NewRuntimeError(line, col, "cannot evaluate node of type %T", node)
	}
}

// evalBlock runs every statement in order, stopping early on error or on
// a break/continue/return sentinel so the enclosing loop or call frame can
// catch it, per spec.md section 4.4 "Control flow as sentinel values".
func (e *Evaluator) evalBlock(b *ast.Block) (object.Object, error) {
	var result object.Object = &object.Null{}
	for _, stmt := range b.Statements {
		r, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = r
		switch result.(type) {
		case *object.BreakSignal, *object.ContinueSignal, *object.ReturnSignal:
			return result, nil
		}
	}
	return result, nil
}

// callFunction invokes a user-defined named function or lambda with
// already-evaluated arguments, binding parameters in a fresh child frame
// of the function's captured environment.
func (e *Evaluator) callFunction(line, col int, callee object.Object, args []object.Object) (object.Object, error) {
	switch fn := callee.(type) {
	case *object.Function:
		if len(args) != len(fn.Params) {
			return nil, errs.NewRuntimeError(line, col, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
		}
		frame := env.New(asEnvironment(fn.Env))
		for i, p := range fn.Params {
			frame.SetLocal(p, args[i])
		}
		sub := e.child(frame)
		result, err := sub.Eval(fn.Body)
		if err != nil {
			return nil, err
		}
		if ret, ok := result.(*object.ReturnSignal); ok {
			return ret.Value, nil
		}
		return &object.Null{}, nil
	case *object.Lambda:
		if len(args) != len(fn.Params) {
			return nil, errs.NewRuntimeError(line, col, "lambda expects %d argument(s), got %d", len(fn.Params), len(args))
		}
		frame := env.New(asEnvironment(fn.Env))
		for i, p := range fn.Params {
			frame.SetLocal(p, args[i])
		}
		sub := e.child(frame)
		return sub.Eval(fn.Body)
	case *object.Native:
		if err := fn.CheckArity(len(args)); err != nil {
			return nil, errs.NewRuntimeError(line, col, "%s", err.Error())
		}
		result, err := fn.Fn(args)
		if err != nil {
			return nil, errs.NewRuntimeError(line, col, "%s", err.Error())
		}
		return result, nil
	default:
		return nil, errs.NewRuntimeError(line, col, "value of type %s is not callable", callee.GetType())
	}
}

// moduleBasePath returns the directory `use` resolves relative paths
// against.
func (e *Evaluator) moduleBasePath() string {
	if e.BaseDir == "" {
		return "."
	}
	return e.BaseDir
}

func (e *Evaluator) resolveModulePath(name string) (string, error) {
	direct := filepath.Join(e.moduleBasePath(), name+".elang")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}
	fallback := filepath.Join(e.moduleBasePath(), "modules", name+".elang")
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}
	return "", fmt.Errorf("module %q not found (looked for %s and %s)", name, direct, fallback)
}
