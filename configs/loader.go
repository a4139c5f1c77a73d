package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files lazily, in order. Earlier files take precedence.
type Loader struct {
	load func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schema string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]file, error) {
			return loadFiles(paths, schema)
		}),
	}
}

func loadFiles(paths []string, schemaSrc string) ([]file, error) {
	// values must share a context to unify
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	files := make([]file, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile config %s: %w", path, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
				return nil, fmt.Errorf("validate config %s: %w", path, err)
			}
		}
		files = append(files, file{
			path:  path,
			value: value,
		})
	}
	return files, nil
}

// Lookup yields the value at path from each file that sets it.
func (l Loader) Lookup(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		files, err := l.load()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	files, err := l.load()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, f := range files {
		value := f.value.LookupPath(cuePath)
		if !value.Exists() {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s from %s: %w", path, f.path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
