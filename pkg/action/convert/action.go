package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/converter"
	"github.com/cmmoran/kotlinmodelgen/internal/target"
)

// Result describes a written file.
type Result struct {
	Class  string
	Target string
	File   string
}

// Generate loads opts.InFile, renders its first class with the selected target
// and writes the source under opts.OutDir.
func Generate(opts *converter.Options) (Result, error) {
	if opts.InFile == "" {
		return Result{}, fmt.Errorf("convert: no input file")
	}
	pkg, err := codemodel.Load(opts.InFile)
	if err != nil {
		return Result{}, err
	}
	return Write(opts, pkg)
}

// Write renders pkg with the selected target and writes it to disk.
func Write(opts *converter.Options, pkg codemodel.Package) (Result, error) {
	tgt, err := target.Get(opts)
	if err != nil {
		return Result{}, err
	}
	classes := pkg.Classes()
	if len(classes) == 0 {
		return Result{}, fmt.Errorf("convert %q: %w", pkg.Name(), converter.ErrNoClass)
	}
	class := classes[0].Name()

	name := FileName(opts.OutFile, class, tgt.FileExtension())
	src, err := tgt.Render(pkg, name)
	if err != nil {
		return Result{}, err
	}

	dir := tgt.Dir(opts.OutDir, pkg.Name())
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	outFile := filepath.Clean(filepath.Join(dir, name))
	if err = os.WriteFile(outFile, []byte(src), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", outFile, err)
	}
	opts.Logger.Info("generated", "class", class, "target", tgt.Name(), "file", outFile)

	return Result{Class: class, Target: tgt.Name(), File: outFile}, nil
}

// FileName is outFile with a .java extension swapped for ext, or <class><ext>
// when outFile is empty.
func FileName(outFile, class, ext string) string {
	if outFile == "" {
		return class + ext
	}
	if strings.HasSuffix(outFile, ".java") {
		return strings.TrimSuffix(outFile, ".java") + ext
	}
	return outFile
}
