package gostruct

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

var ErrNoModule = errors.New("no go.mod found")

// FindGoModDir walks up from dir until it finds go.mod.
func FindGoModDir(dir string) (string, error) {
	from, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("%s: %w", dir, ErrNoModule)
		}
		from = parent
	}
}

// ImportPath derives the Go import path of dir from the module path declared
// by the enclosing go.mod.
func ImportPath(dir string) (string, error) {
	modDir, err := FindGoModDir(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("%s: go.mod declares no module", modDir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(modDir, abs)
	if err != nil {
		return "", err
	}
	return path.Join(modulePath, filepath.ToSlash(rel)), nil
}
