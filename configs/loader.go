// Package configs loads CUE config files. A Loader holds an ordered list of
// roots; lookups walk them in order, so earlier files shadow later ones.
package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type Loader struct {
	load func() ([]root, error)
}

// root is one parsed config file, in lookup order.
type root struct {
	value cue.Value
	path  string
}

// NewLoader builds a lazy loader over the given files. Nothing is read until
// the first lookup; reading happens once. A non-empty schemaSrc is compiled
// as a closed struct and every file must validate against it, so unknown
// fields are load errors rather than silently ignored values.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]root, error) {

			schema, err := compileSchema(schemaSrc)
			if err != nil {
				return nil, err
			}

			roots := make([]root, 0, len(filePaths))
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := cuecontext.New().CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				roots = append(roots, root{
					value: value,
					path:  filePath,
				})
			}

			return roots, nil
		}),
	}
}

func compileSchema(schemaSrc string) (schema cue.Value, err error) {
	if schemaSrc == "" {
		return
	}
	schema = cuecontext.New().CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return cue.Value{}, err
	}
	return schema, nil
}

// AssignFirst decodes the first root that defines path into target.
// ErrValueNotFound reports that no root defines it.
func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.load()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, root := range roots {
		value := root.value.LookupPath(cuePath)
		if value.Err() != nil {
			continue
		}
		return value.Decode(target)
	}

	return ErrValueNotFound
}

// IterCueValues visits the value at path in every root that defines it, in
// root order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.load()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, root := range roots {
			value := root.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				break
			}
		}
	}
}
