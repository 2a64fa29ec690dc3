// Package builtin implements Eusha's host-provided surface: free functions
// (len, help), per-type methods (string/list/map), the math and random
// modules, and the `&&` diagnostic command catalog. Grounded on the
// teacher's std package (std/builtins.go, std/math.go, std/list.go) — same
// table-of-Builtin-plus-init-registration shape, generalized to Eusha's
// value set and method-call syntax rather than free-function-per-builtin.
package builtin

import (
	"fmt"
	"io"

	"github.com/Eusha122/Elang/object"
)

// free holds every top-level callable function: len(x), help([topic]).
var free = map[string]*object.Native{}

func registerFree(n *object.Native) {
	free[n.Name] = n
}

// Lookup resolves a bare `name(args)` call against the free-function
// table.
func Lookup(name string) (*object.Native, bool) {
	n, ok := free[name]
	return n, ok
}

func init() {
	registerFree(&object.Native{Name: "len", MinArity: 1, MaxArity: 1, Fn: builtinLen})
	registerFree(&object.Native{Name: "help", MinArity: 0, MaxArity: 1, Fn: func(args []object.Object) (object.Object, error) {
		return &object.Null{}, nil // actual I/O handled by Help, called directly by eval
	}})
}

func builtinLen(args []object.Object) (object.Object, error) {
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *object.List:
		return &object.Integer{Value: int64(len(v.Elements))}, nil
	case *object.Map:
		return &object.Integer{Value: int64(len(v.Order))}, nil
	}
	return nil, fmt.Errorf("len() does not support values of type %s", args[0].GetType())
}

// Help writes the topic text for the requested help subject (or the full
// index when called with no arguments) to w, per spec.md's supplemented
// help() feature.
func Help(w io.Writer, args []object.Object) (object.Object, error) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Available topics: "+helpIndex())
		return &object.Null{}, nil
	}
	topic, ok := args[0].(*object.String)
	if !ok {
		return nil, fmt.Errorf("help() expects a string topic name")
	}
	text, ok := helpTopics[topic.Value]
	if !ok {
		fmt.Fprintf(w, "No help available for %q. Try: %s\n", topic.Value, helpIndex())
		return &object.Null{}, nil
	}
	fmt.Fprintln(w, text)
	return &object.Null{}, nil
}

func helpIndex() string {
	keys := make([]string, 0, len(helpTopics))
	for k := range helpTopics {
		keys = append(keys, k)
	}
	return fmt.Sprintf("%v", keys)
}

// helpTopics is the catalog backing the `help()` builtin.
var helpTopics = map[string]string{
	"say":      "say(expr[, expr...]).modifier  — prints a value. Modifiers: .newl, .space, .tab",
	"take":     "take([prompt])  — reads a line of input, returning it as a string",
	"if":       "if cond { ... } else if cond { ... } else { ... }",
	"for":      "for (i in start..end [step N] [reverse]) { ... }  or  for (x in iterable) { ... }",
	"while":    "while cond { ... }",
	"fn":       "fn name(params) { ... }  — defines a named function",
	"return":   "return [expr]  — exits the current function with an optional value",
	"use":      "use name  — loads a module (math, random, or name.elang)",
	"break":    "break  — exits the nearest enclosing loop",
	"continue": "continue  — skips to the next iteration of the nearest enclosing loop",
	"len":      "len(x)  — returns the length of a string, list, or map",
	"help":     "help([topic])  — prints this catalog, or detail on one topic",
}
