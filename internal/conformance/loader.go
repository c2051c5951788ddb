package conformance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Loader provides access to conformance case files. All data access
// goes through this interface; the harness never reads ambient global
// state.
type Loader interface {
	// Names lists the available case names in deterministic order.
	Names() ([]string, error)

	// Load parses the named case.
	Load(name string) (*Case, error)
}

// FSLoader loads cases from a file system. Case files are the .yaml
// and .yml files at the root of the tree; the case name is the file
// name without its extension.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over an fs.FS.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDirLoader creates a loader over a directory path.
func NewDirLoader(dir string) *FSLoader {
	return &FSLoader{fsys: os.DirFS(dir)}
}

// Names implements Loader.
func (l *FSLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// Load implements Loader.
func (l *FSLoader) Load(name string) (*Case, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	c, err := ParseCase(data)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", name, err)
	}
	return c, nil
}

func (l *FSLoader) read(name string) ([]byte, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		data, err := fs.ReadFile(l.fsys, name+ext)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read case %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("case not found: %s", name)
}
