// Package target registers the output languages a package can be rendered to.
package target

import (
	"fmt"
	"sort"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/converter"
)

// Target renders the first class of a package into one output language.
type Target interface {
	// Name returns the target's identifier (e.g. "kotlin", "go")
	Name() string

	// FileExtension returns the extension of generated files, with the dot
	FileExtension() string

	// Dir returns the directory a file for package pkg is written to
	Dir(outDir, pkg string) string

	// Render returns the source text for pkg, written to a file named fileName
	Render(pkg codemodel.Package, fileName string) (string, error)
}

// Factory builds a target from conversion options.
type Factory func(opts *converter.Options) (Target, error)

var factories = make(map[string]Factory)

// Register adds a target factory to the registry.
func Register(name string, f Factory) {
	factories[name] = f
}

// Get builds the target registered under opts.Target.
func Get(opts *converter.Options) (Target, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	f, ok := factories[opts.Target]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s (available: %v)", opts.Target, Available())
	}
	return f(opts)
}

// Available returns all registered target names, sorted.
func Available() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Kotlin, newKotlin)
	Register(Go, newGo)
}
