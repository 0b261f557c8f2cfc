package codegen

import (
	"fmt"
	"strings"

	"github.com/funvibe/funcase/internal/ir"
	"github.com/funvibe/funcase/internal/typesystem"
)

// Accessors is an ordered chain of accessor operations applied left to
// right, starting from some subject value. The empty chain is valid and
// denotes the subject itself.
type Accessors struct {
	ops []Accessor
}

// NewAccessors returns the empty chain.
func NewAccessors() Accessors {
	return Accessors{}
}

// FromListCase returns the degenerate chain used by list-length
// discriminators: depth tail operations and no terminal head, reaching
// the sublist whose emptiness the decision tree tests.
func FromListCase(depth int) Accessors {
	if depth < 0 {
		panic(fmt.Sprintf("codegen: negative list case depth %d", depth))
	}
	ops := make([]Accessor, depth)
	for i := range ops {
		ops[i] = TailList{}
	}
	return Accessors{ops: ops}
}

// FromPath translates a structural path into the accessor chain that
// reaches the value at that path, annotating element accesses with the
// type at each rebuilt path prefix.
func FromPath(subject typesystem.Type, path []Path) Accessors {
	var ops []Accessor
	prefix := make([]Path, 0, len(path))

	for _, step := range path {
		prefix = append(prefix, step)

		switch s := step.(type) {
		case PairIdx:
			switch s.Index {
			case 0:
				// Pinned: the first pair component goes through the
				// list head primitive, not fstPair. See
				// TestPairIndexZeroLowersToHead before changing.
				ops = append(ops, HeadList{ElemTipo: TipoAtPath(subject, prefix)})
			case 1:
				ops = append(ops, SndPair{CompTipo: TipoAtPath(subject, prefix)})
			default:
				panic(fmt.Sprintf("codegen: pair index %d out of range", s.Index))
			}

		case ListIdx:
			ops = appendElemAccess(ops, s.Index, TipoAtPath(subject, prefix))

		case TupleIdx:
			ops = appendElemAccess(ops, s.Index, TipoAtPath(subject, prefix))

		case ConstrIdx:
			ops = append(ops, UnconstrFields{})
			ops = appendElemAccess(ops, s.Index, TipoAtPath(subject, prefix))

		case ListTailIdx:
			for i := 0; i < s.Count; i++ {
				ops = append(ops, TailList{})
			}

		default:
			panic("codegen: unknown path step")
		}
	}

	return Accessors{ops: ops}
}

// appendElemAccess emits index tail steps followed by a typed head.
func appendElemAccess(ops []Accessor, index int, elemTipo typesystem.Type) []Accessor {
	for i := 0; i < index; i++ {
		ops = append(ops, TailList{})
	}
	return append(ops, HeadList{ElemTipo: elemTipo})
}

// Len returns the number of operations in the chain.
func (a Accessors) Len() int {
	return len(a.ops)
}

// IsEmpty reports whether the chain has no operations.
func (a Accessors) IsEmpty() bool {
	return len(a.ops) == 0
}

// PopLast removes the last operation. Popping an empty chain is a no-op.
func (a *Accessors) PopLast() {
	if len(a.ops) > 0 {
		a.ops = a.ops[:len(a.ops)-1]
	}
}

// Merge returns the chain a followed by other. Neither receiver is
// modified.
func (a Accessors) Merge(other Accessors) Accessors {
	ops := make([]Accessor, 0, len(a.ops)+len(other.ops))
	ops = append(ops, a.ops...)
	ops = append(ops, other.ops...)
	return Accessors{ops: ops}
}

// Equal reports element-wise equality under the SameOp rule. A chain
// containing FstPair is therefore never equal to anything.
func (a Accessors) Equal(other Accessors) bool {
	if len(a.ops) != len(other.ops) {
		return false
	}
	for i, op := range a.ops {
		if !op.SameOp(other.ops[i]) {
			return false
		}
	}
	return true
}

// Name returns the canonical name of the chain: the operation tags
// joined with underscores. Binding names derive from it, which is what
// lets independently lowered chains sharing a prefix bind identical
// names.
func (a Accessors) Name() string {
	tags := make([]string, len(a.ops))
	for i, op := range a.ops {
		tags[i] = op.Tag()
	}
	return strings.Join(tags, "_")
}

// Lower wraps then in one let binding per operation. The first
// operation becomes the outermost binding, applied to prevName of type
// subjectTipo; each subsequent binding applies its operation to the name
// bound just outside it. Names are deterministic: prev + "_" + tag.
func (a Accessors) Lower(funcs *SpecialFuncs, prevName string, subjectTipo typesystem.Type, then ir.Expr) ir.Expr {
	type step struct {
		prevName string
		prevTipo typesystem.Type
		nextName string
		op       Accessor
	}

	name, tipo := prevName, subjectTipo
	steps := make([]step, 0, len(a.ops))
	for _, op := range a.ops {
		next := name + "_" + op.Tag()
		steps = append(steps, step{prevName: name, prevTipo: tipo, nextName: next, op: op})
		name, tipo = next, op.Tipo()
	}

	// Wrap inside out: the last operation ends up closest to then.
	expr := then
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		expr = &ir.Let{
			Name:  s.nextName,
			Value: s.op.call(funcs, &ir.Var{Name: s.prevName, Tipo: s.prevTipo}),
			Body:  expr,
		}
	}
	return expr
}
