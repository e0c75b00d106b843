package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Source is an in-memory config file.
type Source struct {
	Name    string
	Content []byte
}

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

// NewLoader reads the files lazily. Earlier files take precedence.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(func() (ret []Source, err error) {
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, err
			}
			ret = append(ret, Source{
				Name:    filePath,
				Content: content,
			})
		}
		return
	}, schemaSrc)
}

func NewSourceLoader(sources []Source, schemaSrc string) Loader {
	return newLoader(func() ([]Source, error) {
		return sources, nil
	}, schemaSrc)
}

func newLoader(getSources func() ([]Source, error), schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			sources, err := getSources()
			if err != nil {
				return nil, err
			}

			for _, source := range sources {
				value := ctx.CompileBytes(
					source.Content,
					cue.Filename(source.Name),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  source.Name,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// Paths lists the config sources in precedence order.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}
