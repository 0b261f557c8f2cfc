package funcase

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/funcase/internal/casefile"
	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"
)

// Golden units: each archive holds a unit description and the exact
// rendering the lowering must produce for it.
func TestGoldenUnits(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(archives) == 0 {
		t.Fatalf("no golden archives under testdata")
	}

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parsing archive: %v", err)
			}

			var unitSrc, expected []byte
			for _, f := range ar.Files {
				switch f.Name {
				case "unit.yaml":
					unitSrc = f.Data
				case "expected":
					expected = f.Data
				default:
					t.Fatalf("unexpected file %q in archive", f.Name)
				}
			}
			if unitSrc == nil || expected == nil {
				t.Fatalf("archive must contain unit.yaml and expected")
			}

			unit, err := casefile.Parse(unitSrc, path)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			out, err := Lower(unit)
			if err != nil {
				t.Fatalf("Lower: %v", err)
			}

			if diff := cmp.Diff(string(expected), out.Render()); diff != "" {
				t.Fatalf("rendering mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
