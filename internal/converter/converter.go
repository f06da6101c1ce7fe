// Package converter turns a codemodel class into a kotlin data class.
//
// For every field of the first class in a package the Converter resolves a
// kotlin type (TypeResolver) and kotlin annotations (AnnotationTranslator),
// then emits a data class whose primary constructor declares one property
// per field, in field order.
package converter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

var ErrNoClass = errors.New("package contains no class")

// Converter holds the resolved lookup tables. It keeps no state between
// calls and may be shared between goroutines.
type Converter struct {
	Opts Options

	types       TypeResolver
	annotations AnnotationTranslator
	log         *slog.Logger
}

// New builds a Converter from functional options over NewOptions defaults.
func New(opts ...Option) (*Converter, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Converter, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	useSite, err := kotlinpoet.ParseUseSiteTarget(opts.UseSiteTarget)
	if err != nil {
		return nil, err
	}

	table := EmptyTypeTable()
	if opts.KnownTypes {
		table = DefaultTypeTable()
	}
	table = table.With(opts.TypeMappings)

	return &Converter{
		Opts:        *opts,
		types:       NewTypeResolver(table),
		annotations: NewAnnotationTranslator(table, useSite),
		log:         opts.Logger,
	}, nil
}

// Convert renders the first class of pkg as a kotlin source file.
func (c *Converter) Convert(pkg codemodel.Package, fileName string) (string, error) {
	file, err := c.FileSpec(pkg, fileName)
	if err != nil {
		return "", err
	}
	return file.String(), nil
}

// FileSpec builds the kotlin file for the first class of pkg.
func (c *Converter) FileSpec(pkg codemodel.Package, fileName string) (kotlinpoet.FileSpec, error) {
	classes := pkg.Classes()
	if len(classes) == 0 {
		return kotlinpoet.FileSpec{}, fmt.Errorf("convert %q: %w", pkg.Name(), ErrNoClass)
	}
	class := classes[0]

	fields, err := c.Fields(class)
	if err != nil {
		return kotlinpoet.FileSpec{}, fmt.Errorf("convert %s.%s: %w", pkg.Name(), class.Name(), err)
	}

	ctor := kotlinpoet.ConstructorBuilder()
	typeSpec := kotlinpoet.ClassBuilder(kotlinpoet.NewClassName(pkg.Name(), class.Name())).
		AddModifiers(kotlinpoet.Data)
	for _, f := range fields {
		ctor.AddParameter(kotlinpoet.NewParameter(f.Name, f.Type))
		typeSpec.AddProperty(
			kotlinpoet.PropertyBuilder(f.Name, f.Type).
				Initializer(f.Name).
				AddAnnotations(f.Annotations...).
				Build(),
		)
	}
	typeSpec.PrimaryConstructor(ctor.Build())

	return kotlinpoet.FileBuilder(pkg.Name(), fileName).
		AddType(typeSpec.Build()).
		Build(), nil
}

// Field is a codemodel field translated to kotlin.
type Field struct {
	Name        string
	Type        kotlinpoet.TypeName
	Annotations []kotlinpoet.AnnotationSpec
}

// Fields translates every field of class, in declaration order.
func (c *Converter) Fields(class codemodel.Class) ([]Field, error) {
	out := make([]Field, 0, len(class.Fields()))
	for _, f := range class.Fields() {
		typ := c.types.Resolve(f)
		annotations, err := c.annotations.Translate(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		c.log.With(
			"class", class.Name(),
			"field", f.Name(),
			"type", typ.String(),
			"nullable", typ.IsNullable(),
			"annotations", len(annotations),
		).Debug("translated field")
		out = append(out, Field{Name: f.Name(), Type: typ, Annotations: annotations})
	}
	return out, nil
}
