// Package modules resolves `include` targets to source text. Source modules
// are searched on disk first and then in the library embedded in the binary.
package modules

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

//go:embed stdlib/*.ei
var stdlibFS embed.FS

// Source is a resolved module ready to be parsed.
type Source struct {
	Name string // name or path as written after include
	Path string // file path used in error positions
	Code string
	// Embedded is set when the code came from the built-in library.
	Embedded bool
}

// Loader handles locating module sources.
type Loader struct {
	// StdlibPath is the directory searched for `include name`.
	StdlibPath string
	// BaseDir is the directory string includes are relative to.
	BaseDir string
}

func NewLoader(stdlibPath, baseDir string) *Loader {
	return &Loader{StdlibPath: stdlibPath, BaseDir: baseDir}
}

// ResolveName finds the source of `include name`: <StdlibPath>/name.ei on
// disk, then the embedded library.
func (l *Loader) ResolveName(name string) (*Source, error) {
	fileName := name + config.SourceFileExt

	if l.StdlibPath != "" {
		p := filepath.Join(l.StdlibPath, fileName)
		if data, err := os.ReadFile(p); err == nil {
			return &Source{Name: name, Path: p, Code: string(data)}, nil
		}
	}

	data, err := fs.ReadFile(stdlibFS, path.Join("stdlib", fileName))
	if err != nil {
		return nil, diagnostics.New(diagnostics.IOError, "Module %s not found", name)
	}
	return &Source{Name: name, Path: "stdlib/" + fileName, Code: string(data), Embedded: true}, nil
}

// ResolvePath finds the source of `include "path"`. The .ei extension is
// added when the path has none; any other extension is rejected.
func (l *Loader) ResolvePath(p string) (*Source, error) {
	switch ext := filepath.Ext(p); ext {
	case "":
		p += config.SourceFileExt
	case config.SourceFileExt:
	default:
		return nil, diagnostics.New(diagnostics.RuntimeError, "Not a %s file", config.SourceFileExt)
	}

	full := p
	if !filepath.IsAbs(full) && l.BaseDir != "" {
		full = filepath.Join(l.BaseDir, p)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, diagnostics.New(diagnostics.IOError, "Cannot read file %s", p)
	}
	return &Source{Name: p, Path: full, Code: string(data)}, nil
}

// EmbeddedNames lists the modules compiled into the binary.
func EmbeddedNames() []string {
	entries, err := fs.ReadDir(stdlibFS, "stdlib")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), config.SourceFileExt) {
			names = append(names, strings.TrimSuffix(e.Name(), config.SourceFileExt))
		}
	}
	sort.Strings(names)
	return names
}
