package target

import (
	"errors"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/converter"
	"github.com/cmmoran/kotlinmodelgen/internal/gostruct"
)

const Go = "go"

type golang struct {
	gen *gostruct.Generator
}

func newGo(opts *converter.Options) (Target, error) {
	importPath, err := gostruct.ImportPath(opts.OutDir)
	if err != nil && !errors.Is(err, gostruct.ErrNoModule) {
		return nil, err
	}
	opts.Logger.Debug("go import path", "dir", opts.OutDir, "import_path", importPath)

	return &golang{gen: gostruct.New(
		gostruct.WithImportPath(importPath),
		gostruct.WithLogger(opts.Logger),
	)}, nil
}

func (g *golang) Name() string          { return Go }
func (g *golang) FileExtension() string { return ".go" }

// Dir is outDir itself: the Go package is the output directory.
func (g *golang) Dir(outDir, _ string) string { return outDir }

func (g *golang) Render(pkg codemodel.Package, _ string) (string, error) {
	return g.gen.Generate(pkg)
}
