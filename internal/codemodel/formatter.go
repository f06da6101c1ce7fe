package codemodel

import (
	"fmt"
	"io"
	"strings"
)

// Formatter is the text sink annotation values generate themselves into.
// The first write error sticks; later writes are dropped.
type Formatter struct {
	w   io.Writer
	err error
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Print writes s verbatim.
func (f *Formatter) Print(s string) *Formatter {
	if f.err != nil {
		return f
	}
	if _, err := io.WriteString(f.w, s); err != nil {
		f.err = fmt.Errorf("formatter write: %w", err)
	}
	return f
}

// Generable lets v render itself into f.
func (f *Formatter) Generable(v AnnotationValue) *Formatter {
	if f.err != nil || v == nil {
		return f
	}
	v.Generate(f)
	return f
}

func (f *Formatter) Err() error { return f.err }

// Generate renders v into a fresh string.
func Generate(v AnnotationValue) (string, error) {
	var sb strings.Builder
	f := NewFormatter(&sb)
	f.Generable(v)
	if err := f.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
