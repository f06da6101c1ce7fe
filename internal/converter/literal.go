package converter

import (
	"fmt"
	"strings"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
)

const (
	javaClassLiteral   = ".class"
	kotlinClassLiteral = "::class"
)

// RenderLiteral renders an annotation value as kotlin source.
//
// Values only render themselves as java text, so the result is the java
// rendering with every `.class` rewritten to `::class`. Nothing else is
// translated: arrays keep their `{...}` form and nested annotations their
// java syntax.
func RenderLiteral(v codemodel.AnnotationValue) (string, error) {
	java, err := codemodel.Generate(v)
	if err != nil {
		return "", fmt.Errorf("render literal: %w", err)
	}
	return strings.ReplaceAll(java, javaClassLiteral, kotlinClassLiteral), nil
}
