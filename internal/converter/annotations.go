package converter

import (
	"errors"
	"fmt"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

// AnnotationTranslator maps a field's java annotation usages to kotlin
// annotation specs, one for one and in order.
type AnnotationTranslator struct {
	table   TypeTable
	useSite kotlinpoet.UseSiteTarget
}

func NewAnnotationTranslator(table TypeTable, useSite kotlinpoet.UseSiteTarget) AnnotationTranslator {
	return AnnotationTranslator{table: table, useSite: useSite}
}

// Translate builds the annotation specs for f.
//
// Member names are written unescaped: a kotlin keyword such as `as`
// (@JsonDeserialize(as = ...)) yields source that does not compile.
// TODO: backtick-escape member names that are kotlin hard keywords.
func (a AnnotationTranslator) Translate(f codemodel.Field) ([]kotlinpoet.AnnotationSpec, error) {
	uses := f.Annotations()
	specs := make([]kotlinpoet.AnnotationSpec, 0, len(uses))
	for _, use := range uses {
		spec, err := a.translate(use)
		if err != nil {
			return nil, fmt.Errorf("annotation @%s: %w", use.AnnotationClass().FullName(), err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (a AnnotationTranslator) translate(use codemodel.AnnotationUse) (kotlinpoet.AnnotationSpec, error) {
	b := kotlinpoet.AnnotationBuilder(a.table.ClassName(use.AnnotationClass().FullName())).
		UseSiteTarget(a.useSite)

	members, err := annotationMembers(use)
	if err != nil {
		return kotlinpoet.AnnotationSpec{}, err
	}
	for _, m := range members {
		value, err := RenderLiteral(m.Value)
		if err != nil {
			return kotlinpoet.AnnotationSpec{}, fmt.Errorf("member %s: %w", m.Name, err)
		}
		b.AddMember(m.Name + " = " + value)
	}
	return b.Build(), nil
}

// annotationMembers returns the members of use in the order the codemodel
// reports them. A usage declared without arguments has no members.
func annotationMembers(use codemodel.AnnotationUse) ([]codemodel.Member, error) {
	members, err := use.Members()
	if errors.Is(err, codemodel.ErrNoMembers) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return members, nil
}
