package codegen

import (
	"testing"

	"github.com/funvibe/funcase/internal/ir"
	"github.com/funvibe/funcase/internal/typesystem"
	"github.com/google/go-cmp/cmp"
)

func tags(a Accessors) []string {
	out := make([]string, 0, a.Len())
	for _, op := range a.ops {
		out = append(out, op.Tag())
	}
	return out
}

func constrStep(index int, fields ...typesystem.Type) ConstrIdx {
	return ConstrIdx{Name: "Ctor", Index: index, Fields: fields}
}

func TestFromPathTranslation(t *testing.T) {
	listData := typesystem.ListOf(typesystem.Data())

	tests := []struct {
		name     string
		subject  typesystem.Type
		path     []Path
		expected []string
	}{
		{
			name:     "constructor field two",
			subject:  typesystem.Data(),
			path:     []Path{constrStep(2, typesystem.Int(), typesystem.Int(), typesystem.Data())},
			expected: []string{"unconstrfields", "tail", "tail", "head"},
		},
		{
			name:     "list tail three",
			subject:  listData,
			path:     []Path{ListTailIdx{Count: 3}},
			expected: []string{"tail", "tail", "tail"},
		},
		{
			name:     "list index zero",
			subject:  listData,
			path:     []Path{ListIdx{Index: 0}},
			expected: []string{"head"},
		},
		{
			name:     "list index two",
			subject:  listData,
			path:     []Path{ListIdx{Index: 2}},
			expected: []string{"tail", "tail", "head"},
		},
		{
			name:     "tuple index one",
			subject:  typesystem.TTuple{Elements: []typesystem.Type{typesystem.Int(), typesystem.Data()}},
			path:     []Path{TupleIdx{Index: 1}},
			expected: []string{"tail", "head"},
		},
		{
			name:     "pair second component",
			subject:  typesystem.PairOf(typesystem.Int(), typesystem.Data()),
			path:     []Path{PairIdx{Index: 1}},
			expected: []string{"snd"},
		},
		{
			name:    "nested constructor then list",
			subject: typesystem.Data(),
			path: []Path{
				constrStep(1, typesystem.Int(), listData),
				ListIdx{Index: 1},
			},
			expected: []string{"unconstrfields", "tail", "head", "tail", "head"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := FromPath(tt.subject, tt.path)
			if diff := cmp.Diff(tt.expected, tags(seq)); diff != "" {
				t.Fatalf("operation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The first pair component lowers through headList, not fstPair, and no
// translator rule ever constructs FstPair. Pinned behavior.
func TestPairIndexZeroLowersToHead(t *testing.T) {
	subject := typesystem.PairOf(typesystem.Int(), typesystem.Data())
	seq := FromPath(subject, []Path{PairIdx{Index: 0}})

	if diff := cmp.Diff([]string{"head"}, tags(seq)); diff != "" {
		t.Fatalf("operation mismatch (-want +got):\n%s", diff)
	}
	head, ok := seq.ops[0].(HeadList)
	if !ok {
		t.Fatalf("PairIdx(0) must produce HeadList, got %T", seq.ops[0])
	}
	if head.ElemTipo.String() != "Int" {
		t.Fatalf("PairIdx(0) element type = %s, want Int", head.ElemTipo)
	}
}

func TestFromPathOutOfRangePairPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("pair index 2 must panic")
		}
	}()
	FromPath(typesystem.Data(), []Path{PairIdx{Index: 2}})
}

func TestFromListCase(t *testing.T) {
	if got := FromListCase(0).Len(); got != 0 {
		t.Fatalf("FromListCase(0) length = %d, want 0", got)
	}
	seq := FromListCase(3)
	if diff := cmp.Diff([]string{"tail", "tail", "tail"}, tags(seq)); diff != "" {
		t.Fatalf("operation mismatch (-want +got):\n%s", diff)
	}
}

func TestFromListCaseNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("negative depth must panic")
		}
	}()
	FromListCase(-1)
}

func TestMergeComposesPaths(t *testing.T) {
	subject := typesystem.Data()
	p1 := []Path{constrStep(1, typesystem.Int(), typesystem.ListOf(typesystem.Data()))}
	p2 := []Path{ListIdx{Index: 2}}

	full := FromPath(subject, append(append([]Path{}, p1...), p2...))
	first := FromPath(subject, p1)
	rest := FromPath(TipoAtPath(subject, p1), p2)

	if !first.Merge(rest).Equal(full) {
		t.Fatalf("merge of split paths must equal the full path:\nmerged %s\nfull   %s",
			first.Merge(rest).Name(), full.Name())
	}
}

func TestMergeLeavesOperandsUntouched(t *testing.T) {
	a := FromListCase(2)
	b := FromListCase(1)
	merged := a.Merge(b)

	if a.Len() != 2 || b.Len() != 1 || merged.Len() != 3 {
		t.Fatalf("lengths after merge: a=%d b=%d merged=%d", a.Len(), b.Len(), merged.Len())
	}

	merged.PopLast()
	if a.Len() != 2 {
		t.Fatalf("popping the merged chain must not alias the operand")
	}
}

func TestPopLastRoundTrip(t *testing.T) {
	seq := FromPath(typesystem.Data(), []Path{constrStep(1, typesystem.Int(), typesystem.Int())})
	last := seq.ops[seq.Len()-1]

	popped := seq
	popped.ops = append([]Accessor{}, seq.ops...)
	popped.PopLast()

	if !popped.Merge(Accessors{ops: []Accessor{last}}).Equal(seq) {
		t.Fatalf("pop then re-append must restore the chain")
	}

	empty := NewAccessors()
	empty.PopLast() // no-op
	if !empty.IsEmpty() {
		t.Fatalf("popping an empty chain must keep it empty")
	}
}

func TestName(t *testing.T) {
	seq := FromPath(typesystem.Data(), []Path{constrStep(2, typesystem.Int(), typesystem.Int(), typesystem.Int())})
	if got := seq.Name(); got != "unconstrfields_tail_tail_head" {
		t.Fatalf("Name() = %q", got)
	}
	if got := NewAccessors().Name(); got != "" {
		t.Fatalf("empty chain Name() = %q, want empty", got)
	}
}

func TestEqualExcludesFstPair(t *testing.T) {
	a := Accessors{ops: []Accessor{FstPair{CompTipo: typesystem.Int()}}}
	if a.Equal(a) {
		t.Fatalf("a chain containing FstPair must not even equal itself")
	}

	b := FromListCase(2)
	c := FromListCase(2)
	if !b.Equal(c) {
		t.Fatalf("identical tail chains must be equal")
	}
	if b.Equal(FromListCase(3)) {
		t.Fatalf("chains of different length must differ")
	}
}

func TestLowerEmptyIsContinuation(t *testing.T) {
	then := &ir.Var{Name: "clause_0"}
	got := NewAccessors().Lower(NewSpecialFuncs(), "subject", typesystem.Data(), then)
	if got != ir.Expr(then) {
		t.Fatalf("lowering the empty chain must return the continuation unchanged")
	}
}

func TestLowerNamingAndNesting(t *testing.T) {
	listData := typesystem.ListOf(typesystem.Data())
	seq := FromPath(listData, []Path{ListIdx{Index: 1}}) // tail, head
	then := &ir.Var{Name: "clause_0"}

	expr := seq.Lower(NewSpecialFuncs(), "x", listData, then)

	outer, ok := expr.(*ir.Let)
	if !ok || outer.Name != "x_tail" {
		t.Fatalf("outer binding = %v, want let x_tail", expr)
	}
	outerVal, ok := outer.Value.(*ir.Builtin)
	if !ok || outerVal.Fn != ir.B_TAIL_LIST {
		t.Fatalf("outer binding must compute tailList")
	}
	if arg, ok := outerVal.Args[0].(*ir.Var); !ok || arg.Name != "x" {
		t.Fatalf("outer binding must apply to x")
	}

	inner, ok := outer.Body.(*ir.Let)
	if !ok || inner.Name != "x_tail_head" {
		t.Fatalf("inner binding = %v, want let x_tail_head", outer.Body)
	}
	innerVal, ok := inner.Value.(*ir.Builtin)
	if !ok || innerVal.Fn != ir.B_HEAD_LIST {
		t.Fatalf("inner binding must compute headList")
	}
	if arg, ok := innerVal.Args[0].(*ir.Var); !ok || arg.Name != "x_tail" {
		t.Fatalf("inner binding must apply to x_tail, got %s", ir.Dump(innerVal.Args[0]))
	}
	if inner.Body != ir.Expr(then) {
		t.Fatalf("continuation must sit innermost")
	}
}
