package codegen

import "github.com/funvibe/funcase/internal/typesystem"

// Path is one step of a structural path: how the decision tree navigates
// from the subject term towards a sub-value. The decision tree builder
// produces these; the code generator only consumes them.
type Path interface {
	pathStep()
}

// PairIdx selects one component of a primitive pair. Index must be 0 or 1.
type PairIdx struct {
	Index int
}

func (PairIdx) pathStep() {}

// ListIdx selects the element at Index of a list-encoded value.
type ListIdx struct {
	Index int
}

func (ListIdx) pathStep() {}

// TupleIdx selects the element at Index of a tuple. Tuples share the
// list encoding, so it lowers exactly like ListIdx.
type TupleIdx struct {
	Index int
}

func (TupleIdx) pathStep() {}

// ConstrIdx selects the field at Index of an algebraic-data constructor.
// The decision tree has already resolved which constructor applies, so
// the step carries the constructor's name and field types directly.
type ConstrIdx struct {
	Name   string
	Index  int
	Fields []typesystem.Type
}

func (ConstrIdx) pathStep() {}

// ListTailIdx selects the sublist remaining after dropping Count
// elements. Unlike the other steps it has no terminal element access.
type ListTailIdx struct {
	Count int
}

func (ListTailIdx) pathStep() {}

// TipoAtPath resolves the semantic type of the value reached from
// subject by following path. Lowering calls it once per rebuilt path
// prefix to annotate element accesses. The VM erases types, so any
// structure the path descends through that the type no longer describes
// resolves to opaque Data.
func TipoAtPath(subject typesystem.Type, path []Path) typesystem.Type {
	current := subject

	for _, step := range path {
		switch s := step.(type) {
		case PairIdx:
			switch t := current.(type) {
			case typesystem.TPair:
				if s.Index == 0 {
					current = t.Fst
				} else {
					current = t.Snd
				}
			case typesystem.TTuple:
				if s.Index < len(t.Elements) {
					current = t.Elements[s.Index]
				} else {
					current = typesystem.Data()
				}
			default:
				current = typesystem.Data()
			}

		case ListIdx:
			current = typesystem.ElemOf(current)

		case TupleIdx:
			if t, ok := current.(typesystem.TTuple); ok && s.Index < len(t.Elements) {
				current = t.Elements[s.Index]
			} else {
				current = typesystem.ElemOf(current)
			}

		case ConstrIdx:
			if s.Index < len(s.Fields) {
				current = s.Fields[s.Index]
			} else {
				current = typesystem.Data()
			}

		case ListTailIdx:
			// Dropping elements keeps the list type.

		default:
			panic("codegen: unknown path step")
		}
	}

	return current
}
