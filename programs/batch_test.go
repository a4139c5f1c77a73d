package programs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/modes"
)

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, action := range []string{
		"add: 1 2",
		"divide: 1 0",
		"power: 3 4",
		"bogus: 1",
	} {
		path := filepath.Join(dir, string(rune('a'+i))+".json")
		data, err := json.Marshal(New(&Step{Action: action}))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(dir, "missing.json"))

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		runFiles RunFiles,
	) {
		results := runFiles(t.Context(), paths)
		if len(results) != len(paths) {
			t.Fatalf("got %d", len(results))
		}
		for i, res := range results {
			if res.Path != paths[i] {
				t.Fatalf("got %s", res.Path)
			}
		}

		if results[0].Err != nil || results[0].Program.Steps[0].Output != "3" {
			t.Fatalf("got %+v", results[0])
		}
		if results[1].Err != nil || results[1].Program.Steps[0].Status != StatusFailed {
			t.Fatalf("got %+v", results[1])
		}
		if results[2].Machine.History()[0] != "power: 3^4 = 81" {
			t.Fatalf("got %v", results[2].Machine.History())
		}
		if results[3].Err == nil || !strings.Contains(results[3].Err.Error(), "unknown action type") {
			t.Fatalf("got %v", results[3].Err)
		}
		if !strings.Contains(results[3].Err.Error(), "(span: d.json.") {
			t.Fatalf("got %v", results[3].Err)
		}
		if results[4].Err == nil || results[4].Program != nil {
			t.Fatalf("got %+v", results[4])
		}

		// machines are independent
		if results[0].Machine == results[2].Machine {
			t.Fatal()
		}
		if len(results[0].Machine.History()) != 1 {
			t.Fatal()
		}
	})
}
