package target

import (
	"path/filepath"
	"strings"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/converter"
)

const Kotlin = "kotlin"

type kotlin struct {
	conv *converter.Converter
}

func newKotlin(opts *converter.Options) (Target, error) {
	conv, err := converter.NewWithOpts(opts)
	if err != nil {
		return nil, err
	}
	return &kotlin{conv: conv}, nil
}

func (k *kotlin) Name() string          { return Kotlin }
func (k *kotlin) FileExtension() string { return ".kt" }

// Dir follows the package directory convention: com.example → com/example.
func (k *kotlin) Dir(outDir, pkg string) string {
	if pkg == "" {
		return outDir
	}
	return filepath.Join(outDir, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))
}

func (k *kotlin) Render(pkg codemodel.Package, fileName string) (string, error) {
	return k.conv.Convert(pkg, fileName)
}
