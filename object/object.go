// Package object defines Eusha's runtime value representation: a closed
// tagged union over every kind a value can take, grounded on the teacher's
// GoMixObject interface (objects/objects.go) — same GetType/ToString/
// ToObject vocabulary, generalized to Eusha's value set.
package object

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the dynamic type of a runtime value.
type Kind string

const (
	IntegerKind  Kind = "int"
	FloatKind    Kind = "float"
	StringKind   Kind = "string"
	BooleanKind  Kind = "bool"
	NullKind     Kind = "none"
	ListKind     Kind = "list"
	MapKind      Kind = "map"
	FunctionKind Kind = "func"
	LambdaKind   Kind = "lambda"
	NativeKind   Kind = "native"
	ModuleKind   Kind = "module"

	// control-flow sentinels, never observable as a program value
	BreakKind    Kind = "break"
	ContinueKind Kind = "continue"
	ReturnKind   Kind = "return"
)

// Object is implemented by every Eusha runtime value.
type Object interface {
	GetType() Kind
	ToString() string // display form, per spec.md "Formatting for display"
	ToObject() string // debug form, used by REPL auto-print
}

// Truthy implements the truthiness predicate from spec.md section 4.3.
func Truthy(o Object) bool {
	switch v := o.(type) {
	case *Boolean:
		return v.Value
	case *Null:
		return false
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *List:
		return len(v.Elements) != 0
	case *Map:
		return len(v.Order) != 0
	default:
		return true
	}
}

type Integer struct{ Value int64 }

func (i *Integer) GetType() Kind    { return IntegerKind }
func (i *Integer) ToString() string { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) ToObject() string { return fmt.Sprintf("<int(%d)>", i.Value) }

type Float struct{ Value float64 }

func (f *Float) GetType() Kind    { return FloatKind }
func (f *Float) ToString() string { return formatFloat(f.Value) }
func (f *Float) ToObject() string { return fmt.Sprintf("<float(%s)>", formatFloat(f.Value)) }

func formatFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

type String struct{ Value string }

func (s *String) GetType() Kind    { return StringKind }
func (s *String) ToString() string { return s.Value }
func (s *String) ToObject() string { return fmt.Sprintf("<string(%q)>", s.Value) }

type Boolean struct{ Value bool }

func (b *Boolean) GetType() Kind { return BooleanKind }
func (b *Boolean) ToString() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) ToObject() string { return fmt.Sprintf("<bool(%s)>", b.ToString()) }

type Null struct{}

func (n *Null) GetType() Kind    { return NullKind }
func (n *Null) ToString() string { return "none" }
func (n *Null) ToObject() string { return "<none>" }

// List is a mutable, ordered, heterogeneous sequence. Pointer semantics
// make aliasing visible across bindings, per spec.md section 5.
type List struct{ Elements []Object }

func (l *List) GetType() Kind { return ListKind }
func (l *List) ToString() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) ToObject() string { return fmt.Sprintf("<list(%s)>", l.ToString()) }

// Map is an insertion-ordered mapping keyed by any hashable value. Keys are
// stored by their canonical hash string alongside the original key object,
// so iteration, formatting, and .keys()/.values() all preserve insertion
// order as required by spec.md section 3.
type Map struct {
	Order  []string
	Keys   map[string]Object
	Values map[string]Object
}

func NewMap() *Map {
	return &Map{Keys: make(map[string]Object), Values: make(map[string]Object)}
}

func (m *Map) GetType() Kind { return MapKind }

func (m *Map) ToString() string {
	parts := make([]string, len(m.Order))
	for i, k := range m.Order {
		parts[i] = fmt.Sprintf("%s: %s", m.Keys[k].ToString(), m.Values[k].ToString())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (m *Map) ToObject() string { return fmt.Sprintf("<map(%s)>", m.ToString()) }

// Set inserts or overwrites a key, preserving first-insertion order.
func (m *Map) Set(key, value Object) error {
	hk, err := HashKey(key)
	if err != nil {
		return err
	}
	if _, exists := m.Keys[hk]; !exists {
		m.Order = append(m.Order, hk)
	}
	m.Keys[hk] = key
	m.Values[hk] = value
	return nil
}

func (m *Map) Get(key Object) (Object, bool, error) {
	hk, err := HashKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := m.Values[hk]
	return v, ok, nil
}

// HashKey computes a canonical string for use as a map key. Strings,
// integers, floats, booleans, and none are all hashable.
func HashKey(o Object) (string, error) {
	switch v := o.(type) {
	case *String:
		return "s:" + v.Value, nil
	case *Integer:
		return fmt.Sprintf("i:%d", v.Value), nil
	case *Float:
		return fmt.Sprintf("f:%g", v.Value), nil
	case *Boolean:
		return fmt.Sprintf("b:%t", v.Value), nil
	case *Null:
		return "n:none", nil
	default:
		return "", fmt.Errorf("unhashable type: %s", o.GetType())
	}
}

// SortedCopy returns a new slice of elements sorted by natural ordering.
// Used by the list sort method in builtin/lists.go.
func SortedCopy(elems []Object) []Object {
	out := make([]Object, len(elems))
	copy(out, elems)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Less provides natural ordering across matching numeric/string types.
func Less(a, b Object) bool {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value < bv.Value
		case *Float:
			return float64(av.Value) < bv.Value
		}
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value < float64(bv.Value)
		case *Float:
			return av.Value < bv.Value
		}
	case *String:
		if bv, ok := b.(*String); ok {
			return av.Value < bv.Value
		}
	}
	return false
}

// --- control-flow sentinels ---

// BreakSignal unwinds through enclosing block statements until caught by
// the nearest loop.
type BreakSignal struct{}

func (b *BreakSignal) GetType() Kind    { return BreakKind }
func (b *BreakSignal) ToString() string { return "<break>" }
func (b *BreakSignal) ToObject() string { return "<break>" }

// ContinueSignal unwinds like BreakSignal but restarts the loop body.
type ContinueSignal struct{}

func (c *ContinueSignal) GetType() Kind    { return ContinueKind }
func (c *ContinueSignal) ToString() string { return "<continue>" }
func (c *ContinueSignal) ToObject() string { return "<continue>" }

// ReturnSignal unwinds through enclosing blocks until caught by the
// nearest function call frame.
type ReturnSignal struct{ Value Object }

func (r *ReturnSignal) GetType() Kind    { return ReturnKind }
func (r *ReturnSignal) ToString() string { return r.Value.ToString() }
func (r *ReturnSignal) ToObject() string { return fmt.Sprintf("<return(%s)>", r.Value.ToObject()) }
