// Package funcase exposes the pattern-match lowering engine for
// inspection: given a unit description (subject type plus decision-tree
// leaf paths in visitation order), it reports the accessor bindings each
// leaf emits once shared prefixes are deduplicated, the sharing trie's
// final shape, and the helper definitions the unit needs.
package funcase

import (
	"fmt"
	"strings"

	"github.com/funvibe/funcase/internal/casefile"
	"github.com/funvibe/funcase/internal/codegen"
	"github.com/funvibe/funcase/internal/ir"
)

// LeafOutput is the lowering result for one leaf.
type LeafOutput struct {
	// Name is the leaf's label from the unit description.
	Name string

	// Source is the rendered binding chain, ending in the leaf's
	// placeholder continuation.
	Source string
}

// Output is the lowering result for one unit.
type Output struct {
	// Subject is the subject's variable name.
	Subject string

	// Leaves holds per-leaf results in visitation order.
	Leaves []LeafOutput

	// Trie is the rendered sharing trie after all insertions.
	Trie string

	// Prelude renders the used helper-function definitions wrapped
	// around a placeholder body. Empty when no leaf needed a helper.
	Prelude string
}

// LowerFile loads a unit description from disk and lowers it.
func LowerFile(path string) (*Output, error) {
	f, err := casefile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Lower(f)
}

// Lower lowers a parsed unit description leaf by leaf.
func Lower(f *casefile.File) (*Output, error) {
	subjectTipo := f.Subject.Type.BuildType()
	unit := codegen.NewUnit(f.Subject.Name, subjectTipo)

	out := &Output{Subject: f.Subject.Name}
	for _, leaf := range f.Leaves {
		then := &ir.Var{Name: leaf.Name}

		var expr ir.Expr
		if leaf.TailCount != nil {
			expr = unit.LowerListCase(*leaf.TailCount, then)
		} else {
			expr = unit.LowerLeaf(codegen.Leaf{
				Name: leaf.Name,
				Path: leaf.BuildPath(),
				Then: then,
			})
		}

		out.Leaves = append(out.Leaves, LeafOutput{Name: leaf.Name, Source: ir.Dump(expr)})
	}

	out.Trie = unit.TrieDump()

	placeholder := &ir.Var{Name: "script"}
	if program := unit.Finish(placeholder); program != ir.Expr(placeholder) {
		out.Prelude = ir.Dump(program)
	}

	return out, nil
}

// Render formats the output the way the CLI prints it without color.
func (o *Output) Render() string {
	var sb strings.Builder

	for _, leaf := range o.Leaves {
		sb.WriteString(fmt.Sprintf("== %s ==\n", leaf.Name))
		sb.WriteString(leaf.Source)
		sb.WriteString("\n")
	}

	sb.WriteString("== trie ==\n")
	sb.WriteString(o.Trie)

	if o.Prelude != "" {
		sb.WriteString("\n== helpers ==\n")
		sb.WriteString(o.Prelude)
	}

	return sb.String()
}
