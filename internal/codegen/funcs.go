package codegen

import (
	"fmt"

	"github.com/funvibe/funcase/internal/ir"
	"github.com/funvibe/funcase/internal/typesystem"
)

// FieldsExposerName is the fixed name of the synthesized helper that
// exposes a constructor value's field list. Accessor lowering resolves
// UnconstrFields through this name so every compilation unit shares one
// definition.
const FieldsExposerName = "constr_fields_exposer"

// SpecialFuncs is the registry of synthesized helper functions available
// to one compilation unit. It records which helpers were actually used
// so the driver can prepend only those definitions to the final program.
type SpecialFuncs struct {
	defs map[string]ir.Expr
	used []string // usage order, deduplicated
	seen map[string]bool
}

// NewSpecialFuncs returns a registry with the standard helpers defined.
func NewSpecialFuncs() *SpecialFuncs {
	listData := typesystem.ListOf(typesystem.Data())

	// \constr -> sndPair(unConstrData(constr))
	exposer := &ir.Lambda{
		Params: []string{"constr"},
		Body: &ir.Builtin{
			Fn:   ir.B_SND_PAIR,
			Tipo: listData,
			Args: []ir.Expr{&ir.Builtin{
				Fn:   ir.B_UNCONSTR_DATA,
				Tipo: typesystem.PairOf(typesystem.Int(), listData),
				Args: []ir.Expr{&ir.Var{Name: "constr", Tipo: typesystem.Data()}},
			}},
		},
	}

	return &SpecialFuncs{
		defs: map[string]ir.Expr{FieldsExposerName: exposer},
		seen: make(map[string]bool),
	}
}

// UseFunction marks the named helper as used and returns a reference to
// it. Requesting an unregistered helper is a compiler bug.
func (s *SpecialFuncs) UseFunction(name string) ir.Expr {
	if _, ok := s.defs[name]; !ok {
		panic(fmt.Sprintf("codegen: unknown special function %q", name))
	}
	if !s.seen[name] {
		s.seen[name] = true
		s.used = append(s.used, name)
	}
	return &ir.Var{Name: name}
}

// WrapUsed binds every used helper's definition around body, first-used
// outermost, so references inside body resolve.
func (s *SpecialFuncs) WrapUsed(body ir.Expr) ir.Expr {
	for i := len(s.used) - 1; i >= 0; i-- {
		name := s.used[i]
		body = &ir.Let{Name: name, Value: s.defs[name], Body: body}
	}
	return body
}
