// Package typesystem describes the semantic types of values seen by the
// code generator. The target VM erases types at runtime (structured
// values travel as uniformly encoded data), but lowering still tracks
// them so the assembler can pick decoding primitives and so generated
// bindings stay inspectable.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// TCon represents a type constant/constructor (e.g. Int, Data, List).
type TCon struct {
	Name string
}

func (t TCon) String() string {
	return t.Name
}

func (t TCon) typeNode() {}

// TApp represents an applied type constructor (e.g. List Data).
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	args := []string{}
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	if len(args) == 0 {
		return t.Constructor.String()
	}
	return fmt.Sprintf("(%s %s)", t.Constructor.String(), strings.Join(args, " "))
}

func (t TApp) typeNode() {}

// TTuple represents a tuple type (e.g. (Int, Bool, Data)).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	args := []string{}
	for _, el := range t.Elements {
		args = append(args, el.String())
	}
	return fmt.Sprintf("(%s)", strings.Join(args, ", "))
}

func (t TTuple) typeNode() {}

// TPair represents the VM's primitive pair of two components.
// Pairs are distinct from two-element tuples: the VM exposes them
// through dedicated projection builtins instead of list traversal.
type TPair struct {
	Fst Type
	Snd Type
}

func (t TPair) String() string {
	return fmt.Sprintf("(Pair %s %s)", t.Fst.String(), t.Snd.String())
}

func (t TPair) typeNode() {}

// Data returns the opaque data type, the erased encoding every
// structured runtime value shares.
func Data() Type {
	return TCon{Name: "Data"}
}

// Int returns the builtin integer type.
func Int() Type {
	return TCon{Name: "Int"}
}

// ListOf returns the list type with the given element type.
func ListOf(elem Type) Type {
	return TApp{Constructor: TCon{Name: "List"}, Args: []Type{elem}}
}

// PairOf returns the primitive pair type with the given components.
func PairOf(fst, snd Type) Type {
	return TPair{Fst: fst, Snd: snd}
}

// ElemOf returns the element type of a list type, or Data when the
// type is opaque or not a list.
func ElemOf(t Type) Type {
	if app, ok := t.(TApp); ok {
		if con, ok := app.Constructor.(TCon); ok && con.Name == "List" && len(app.Args) == 1 {
			return app.Args[0]
		}
	}
	return Data()
}
