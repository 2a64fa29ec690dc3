package builtin

import (
	"fmt"
	"io"

	"github.com/Eusha122/Elang/object"
)

// commands backs the `&&name.with.dots` diagnostic command syntax, kept
// separate from the callable-function namespace per spec.md section 6.
var commands = map[string]func(io.Writer) error{
	"who.is.eusha": func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "Eusha is a small, dynamically-typed, expression-oriented scripting language.")
		return err
	},
}

// RunCommand executes the named `&&` command, writing its output to w.
func RunCommand(w io.Writer, path string) (object.Object, error) {
	cmd, ok := commands[path]
	if !ok {
		return nil, fmt.Errorf("unknown command '&&%s'", path)
	}
	if err := cmd(w); err != nil {
		return nil, err
	}
	return &object.Null{}, nil
}
