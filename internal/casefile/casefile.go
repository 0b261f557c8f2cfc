// Package casefile reads YAML descriptions of one pattern-match
// lowering unit: the subject's semantic type plus the structural path of
// every decision-tree leaf, in leaf-visitation order. The funcase CLI
// and the golden tests feed units through this format; the compiler
// proper constructs codegen values directly and never touches it.
package casefile

import (
	"fmt"
	"os"

	"github.com/funvibe/funcase/internal/codegen"
	"github.com/funvibe/funcase/internal/typesystem"
	"gopkg.in/yaml.v3"
)

// File is the top-level unit description.
type File struct {
	// Subject describes the value the decision tree scrutinizes.
	Subject Subject `yaml:"subject"`

	// Leaves lists the decision-tree leaves in visitation order. Order
	// matters: it decides which leaf owns each shared accessor binding.
	Leaves []Leaf `yaml:"leaves"`
}

// Subject is the scrutinized value.
type Subject struct {
	// Name is the variable the subject is bound to. Defaults to "subject".
	Name string `yaml:"name,omitempty"`

	// Type is the subject's semantic type.
	Type *TypeSpec `yaml:"type"`
}

// Leaf is one decision-tree leaf.
type Leaf struct {
	// Name labels the leaf; it doubles as the placeholder continuation
	// in CLI output. Must be unique within the file.
	Name string `yaml:"name"`

	// Path is the structural path to the value this leaf scrutinizes.
	// An empty path targets the subject itself.
	Path []StepSpec `yaml:"path,omitempty"`

	// TailCount marks a list-length discriminator leaf instead of a
	// field path: the lowered chain is TailCount tail accesses with no
	// terminal head. Mutually exclusive with Path.
	TailCount *int `yaml:"tail_count,omitempty"`
}

// TypeSpec is a recursive type description. Exactly one field is set.
type TypeSpec struct {
	// Con names an atomic type (e.g. "Data", "Int").
	Con string `yaml:"con,omitempty"`

	// List is the element type of a list.
	List *TypeSpec `yaml:"list,omitempty"`

	// Pair holds the two component types of a primitive pair.
	Pair []*TypeSpec `yaml:"pair,omitempty"`

	// Tuple holds the element types of a tuple.
	Tuple []*TypeSpec `yaml:"tuple,omitempty"`
}

// StepSpec is one structural path step. Exactly one field is set.
type StepSpec struct {
	// Pair selects a pair component (0 or 1).
	Pair *int `yaml:"pair,omitempty"`

	// List selects the element at the given list index.
	List *int `yaml:"list,omitempty"`

	// Tuple selects the element at the given tuple index.
	Tuple *int `yaml:"tuple,omitempty"`

	// Tail selects the sublist after dropping the given element count.
	Tail *int `yaml:"tail,omitempty"`

	// Constr selects a constructor field.
	Constr *ConstrSpec `yaml:"constr,omitempty"`
}

// ConstrSpec selects a field of an already-matched constructor.
type ConstrSpec struct {
	// Name is the constructor's name, used for error messages only.
	Name string `yaml:"name,omitempty"`

	// Index is the selected field.
	Index int `yaml:"index"`

	// Fields lists the constructor's field types in order.
	Fields []*TypeSpec `yaml:"fields"`
}

// LoadFile reads and parses a unit description from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading unit file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses a unit description from bytes.
// The path argument is used only for error messages.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	f.setDefaults()
	return &f, nil
}

func (f *File) setDefaults() {
	if f.Subject.Name == "" {
		f.Subject.Name = "subject"
	}
}

func (f *File) validate(path string) error {
	if f.Subject.Type == nil {
		return fmt.Errorf("%s: subject.type is required", path)
	}
	if err := f.Subject.Type.validate(path); err != nil {
		return err
	}
	if len(f.Leaves) == 0 {
		return fmt.Errorf("%s: at least one leaf is required", path)
	}

	seen := make(map[string]bool)
	for i, leaf := range f.Leaves {
		if leaf.Name == "" {
			return fmt.Errorf("%s: leaf %d: name is required", path, i)
		}
		if seen[leaf.Name] {
			return fmt.Errorf("%s: duplicate leaf name %q", path, leaf.Name)
		}
		seen[leaf.Name] = true

		if leaf.TailCount != nil {
			if len(leaf.Path) > 0 {
				return fmt.Errorf("%s: leaf %q: tail_count and path are mutually exclusive", path, leaf.Name)
			}
			if *leaf.TailCount < 0 {
				return fmt.Errorf("%s: leaf %q: tail_count must be non-negative", path, leaf.Name)
			}
			continue
		}

		for j, step := range leaf.Path {
			if err := step.validate(path, leaf.Name, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *TypeSpec) validate(path string) error {
	set := 0
	if t.Con != "" {
		set++
	}
	if t.List != nil {
		set++
	}
	if len(t.Pair) > 0 {
		set++
	}
	if len(t.Tuple) > 0 {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%s: type must set exactly one of con, list, pair, tuple", path)
	}

	switch {
	case t.List != nil:
		return t.List.validate(path)
	case len(t.Pair) > 0:
		if len(t.Pair) != 2 {
			return fmt.Errorf("%s: pair type needs exactly two components, got %d", path, len(t.Pair))
		}
		for _, comp := range t.Pair {
			if err := comp.validate(path); err != nil {
				return err
			}
		}
	case len(t.Tuple) > 0:
		if len(t.Tuple) < 2 {
			return fmt.Errorf("%s: tuple type needs at least two elements, got %d", path, len(t.Tuple))
		}
		for _, el := range t.Tuple {
			if err := el.validate(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s StepSpec) validate(path, leaf string, idx int) error {
	set := 0
	if s.Pair != nil {
		set++
	}
	if s.List != nil {
		set++
	}
	if s.Tuple != nil {
		set++
	}
	if s.Tail != nil {
		set++
	}
	if s.Constr != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%s: leaf %q: step %d must set exactly one of pair, list, tuple, tail, constr", path, leaf, idx)
	}

	switch {
	case s.Pair != nil:
		if *s.Pair != 0 && *s.Pair != 1 {
			return fmt.Errorf("%s: leaf %q: step %d: pair index must be 0 or 1, got %d", path, leaf, idx, *s.Pair)
		}
	case s.List != nil:
		if *s.List < 0 {
			return fmt.Errorf("%s: leaf %q: step %d: list index must be non-negative", path, leaf, idx)
		}
	case s.Tuple != nil:
		if *s.Tuple < 0 {
			return fmt.Errorf("%s: leaf %q: step %d: tuple index must be non-negative", path, leaf, idx)
		}
	case s.Tail != nil:
		if *s.Tail < 0 {
			return fmt.Errorf("%s: leaf %q: step %d: tail count must be non-negative", path, leaf, idx)
		}
	case s.Constr != nil:
		if s.Constr.Index < 0 {
			return fmt.Errorf("%s: leaf %q: step %d: constructor field index must be non-negative", path, leaf, idx)
		}
		if len(s.Constr.Fields) == 0 {
			return fmt.Errorf("%s: leaf %q: step %d: constructor fields are required", path, leaf, idx)
		}
		if s.Constr.Index >= len(s.Constr.Fields) {
			return fmt.Errorf("%s: leaf %q: step %d: constructor %q has %d fields, index %d out of range",
				path, leaf, idx, s.Constr.Name, len(s.Constr.Fields), s.Constr.Index)
		}
		for _, field := range s.Constr.Fields {
			if err := field.validate(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildType resolves a validated TypeSpec into a semantic type.
func (t *TypeSpec) BuildType() typesystem.Type {
	switch {
	case t.List != nil:
		return typesystem.ListOf(t.List.BuildType())
	case len(t.Pair) == 2:
		return typesystem.PairOf(t.Pair[0].BuildType(), t.Pair[1].BuildType())
	case len(t.Tuple) > 0:
		elems := make([]typesystem.Type, len(t.Tuple))
		for i, el := range t.Tuple {
			elems[i] = el.BuildType()
		}
		return typesystem.TTuple{Elements: elems}
	default:
		return typesystem.TCon{Name: t.Con}
	}
}

// BuildPath resolves a validated leaf's steps into a structural path.
func (l Leaf) BuildPath() []codegen.Path {
	steps := make([]codegen.Path, 0, len(l.Path))
	for _, s := range l.Path {
		switch {
		case s.Pair != nil:
			steps = append(steps, codegen.PairIdx{Index: *s.Pair})
		case s.List != nil:
			steps = append(steps, codegen.ListIdx{Index: *s.List})
		case s.Tuple != nil:
			steps = append(steps, codegen.TupleIdx{Index: *s.Tuple})
		case s.Tail != nil:
			steps = append(steps, codegen.ListTailIdx{Count: *s.Tail})
		case s.Constr != nil:
			fields := make([]typesystem.Type, len(s.Constr.Fields))
			for i, f := range s.Constr.Fields {
				fields[i] = f.BuildType()
			}
			steps = append(steps, codegen.ConstrIdx{
				Name:   s.Constr.Name,
				Index:  s.Constr.Index,
				Fields: fields,
			})
		}
	}
	return steps
}
