package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/kotlinmodelgen/internal/converter"
	"github.com/cmmoran/kotlinmodelgen/pkg/action/convert"
	"github.com/cmmoran/kotlinmodelgen/pkg/manifest"
)

// Generate converts opts.InFile into a directory named after version below
// opts.OutDir and records the generated file in the manifest.
func Generate(opts *converter.Options, manifestPath, version string) (string, error) {
	if version == "" {
		return "", fmt.Errorf("snapshot: no version")
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	versioned := *opts
	versioned.OutDir = filepath.Join(opts.OutDir, version)
	res, err := convert.Generate(&versioned)
	if err != nil {
		return "", err
	}

	m.AddGeneration(manifest.Generation{Class: res.Class, Target: res.Target, Version: version, File: res.File})
	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return res.File, nil
}

// List returns all generations recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest and diffs every file of the
// current version against the same class and target of the previous version.
// Files new in the current version are diffed against empty content. An
// empty result means nothing changed.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous generations recorded")
	}

	var sb strings.Builder
	for _, current := range m.Version(m.CurrentVersion) {
		currentSrc, err := os.ReadFile(current.File)
		if err != nil {
			return "", fmt.Errorf("read current generation: %w", err)
		}

		var previousSrc []byte
		if previous, ok := m.Find(current.Class, current.Target, m.PreviousVersion); ok {
			if previousSrc, err = os.ReadFile(previous.File); err != nil {
				return "", fmt.Errorf("read previous generation: %w", err)
			}
		}

		if diff := cmp.Diff(string(previousSrc), string(currentSrc)); diff != "" {
			fmt.Fprintf(&sb, "%s (%s) %s..%s:\n%s", current.Class, current.Target, m.PreviousVersion, m.CurrentVersion, diff)
		}
	}

	return sb.String(), nil
}
