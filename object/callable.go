package object

import (
	"fmt"
	"strings"

	"github.com/Eusha122/Elang/ast"
)

// Env is the slice of env.Environment that object values need to capture
// closures without object importing env (which itself holds Objects —
// importing env here would create a cycle).
type Env interface {
	Get(name string) (Object, bool)
	SetLocal(name string, val Object)
}

// Function is a user-defined, named function value. Its captured
// environment is the scope in which the `fn` statement was evaluated, not
// the call site, per spec.md section 3.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    Env
}

func (f *Function) GetType() Kind    { return FunctionKind }
func (f *Function) ToString() string { return fmt.Sprintf("func(%s)", f.Name) }
func (f *Function) ToObject() string {
	return fmt.Sprintf("<func[%s(%s)]>", f.Name, strings.Join(f.Params, ", "))
}

// Lambda is an anonymous, single-expression function value.
type Lambda struct {
	Params []string
	Body   ast.Node
	Env    Env
}

func (l *Lambda) GetType() Kind    { return LambdaKind }
func (l *Lambda) ToString() string { return fmt.Sprintf("lambda(%s)", strings.Join(l.Params, ", ")) }
func (l *Lambda) ToObject() string { return l.ToString() }

// NativeFunc is the signature every host-implemented builtin must satisfy.
type NativeFunc func(args []Object) (Object, error)

// Native wraps a host function as a callable Eusha value, with an
// inclusive arity range (MaxArity -1 means unbounded).
type Native struct {
	Name     string
	Fn       NativeFunc
	MinArity int
	MaxArity int // -1 for unbounded
}

func (n *Native) GetType() Kind    { return NativeKind }
func (n *Native) ToString() string { return fmt.Sprintf("native(%s)", n.Name) }
func (n *Native) ToObject() string { return n.ToString() }

func (n *Native) CheckArity(got int) error {
	if got < n.MinArity || (n.MaxArity >= 0 && got > n.MaxArity) {
		if n.MinArity == n.MaxArity {
			return fmt.Errorf("wrong number of arguments to `%s`: got=%d, want=%d", n.Name, got, n.MinArity)
		}
		return fmt.Errorf("wrong number of arguments to `%s`: got=%d", n.Name, got)
	}
	return nil
}

// Module is a named handle to an environment, populated either by loading
// another source file or by one of the predefined catalogs (math, random).
type Module struct {
	Name string
	Env  Env
}

func (m *Module) GetType() Kind    { return ModuleKind }
func (m *Module) ToString() string { return fmt.Sprintf("module(%s)", m.Name) }
func (m *Module) ToObject() string { return m.ToString() }
