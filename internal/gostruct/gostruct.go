// Package gostruct renders a codemodel class as a Go struct with json tags.
//
// It reads the same source model as the kotlin converter and applies the
// same nullability policy: a nullable scalar or named type becomes a
// pointer, slices, maps and any never do.
package gostruct

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/converter"
)

const jsonPropertyAnnotation = "JsonProperty"

type kind int

const (
	scalar kind = iota
	slice
	dict
	dynamic
)

type goType struct {
	kind kind
	code func() *jen.Statement
}

var javaToGo = map[string]goType{
	"java.lang.String":     {scalar, jen.String},
	"java.lang.Integer":    {scalar, jen.Int},
	"java.lang.Long":       {scalar, jen.Int64},
	"java.lang.Short":      {scalar, jen.Int16},
	"java.lang.Byte":       {scalar, jen.Int8},
	"java.lang.Double":     {scalar, jen.Float64},
	"java.lang.Float":      {scalar, jen.Float32},
	"java.lang.Boolean":    {scalar, jen.Bool},
	"java.lang.Object":     {dynamic, func() *jen.Statement { return jen.Id("any") }},
	"java.lang.Iterable":   {kind: slice},
	"java.util.Collection": {kind: slice},
	"java.util.List":       {kind: slice},
	"java.util.Set":        {kind: slice},
	"java.util.Map":        {kind: dict},
}

// Generator renders Go structs. It is stateless and safe for concurrent use.
type Generator struct {
	Opts Options
	log  *slog.Logger
}

func New(opts ...Option) *Generator {
	o := &Options{}
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) *Generator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Generator{Opts: *opts, log: opts.Logger}
}

// Generate renders the first class of pkg as Go source.
func (g *Generator) Generate(pkg codemodel.Package) (string, error) {
	f, err := g.File(pkg)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err = f.Render(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", pkg.Name(), err)
	}
	return buf.String(), nil
}

// File builds the jennifer file for the first class of pkg.
func (g *Generator) File(pkg codemodel.Package) (*jen.File, error) {
	classes := pkg.Classes()
	if len(classes) == 0 {
		return nil, fmt.Errorf("generate %q: %w", pkg.Name(), converter.ErrNoClass)
	}
	class := classes[0]

	name := PackageName(pkg.Name())
	var f *jen.File
	if g.Opts.ImportPath != "" {
		f = jen.NewFilePathName(g.Opts.ImportPath, name)
	} else {
		f = jen.NewFile(name)
	}
	f.HeaderComment("Code generated by kotlinmodelgen. DO NOT EDIT.")

	fields := make([]jen.Code, 0, len(class.Fields()))
	for _, field := range class.Fields() {
		typ := g.fieldType(pkg.Name(), field)
		tag := JSONName(field)
		g.log.With(
			"class", class.Name(),
			"field", field.Name(),
			"json", tag,
		).Debug("translated go field")
		fields = append(fields, jen.Id(FieldName(field.Name())).Add(typ).Tag(map[string]string{
			"json": tag + ",omitempty",
		}))
	}
	f.Type().Id(class.Name()).Struct(fields...)

	return f, nil
}

func (g *Generator) fieldType(javaPkg string, field codemodel.Field) *jen.Statement {
	t := field.Type()
	k, code := g.typeOf(javaPkg, t.Erasure().FullName(), converter.GenericArguments(t))
	if k == scalar && converter.Nullable(field.Annotations()) {
		return jen.Op("*").Add(code)
	}
	return code
}

func (g *Generator) typeOf(javaPkg, fullName string, args []string) (kind, *jen.Statement) {
	known, ok := javaToGo[fullName]
	if !ok {
		return scalar, g.named(javaPkg, fullName)
	}
	switch known.kind {
	case slice:
		return slice, jen.Index().Add(g.argument(javaPkg, args, 0))
	case dict:
		return dict, jen.Map(g.argument(javaPkg, args, 0)).Add(g.argument(javaPkg, args, 1))
	}
	return known.kind, known.code()
}

// argument resolves the i-th generic argument; missing arguments become any.
func (g *Generator) argument(javaPkg string, args []string, i int) *jen.Statement {
	if i >= len(args) {
		return jen.Id("any")
	}
	_, code := g.typeOf(javaPkg, args[i], nil)
	return code
}

// named references a type outside the table by its simple name. Types of the
// class's own package are qualified with the output import path, which
// jennifer renders unqualified.
func (g *Generator) named(javaPkg, fullName string) *jen.Statement {
	simple := fullName
	pkg := ""
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		pkg, simple = fullName[:i], fullName[i+1:]
	}
	if g.Opts.ImportPath != "" && pkg == javaPkg {
		return jen.Qual(g.Opts.ImportPath, simple)
	}
	return jen.Id(simple)
}

// PackageName is the last segment of a dotted package name.
func PackageName(javaPkg string) string {
	if javaPkg == "" {
		return "main"
	}
	if i := strings.LastIndex(javaPkg, "."); i >= 0 {
		return javaPkg[i+1:]
	}
	return javaPkg
}

// FieldName exports name by upper-casing its first rune.
func FieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// JSONName is the value of the field's JsonProperty annotation, or the
// field name when there is none.
func JSONName(field codemodel.Field) string {
	for _, use := range field.Annotations() {
		if use.AnnotationClass().Name() != jsonPropertyAnnotation {
			continue
		}
		members, err := use.Members()
		if err != nil {
			continue
		}
		for _, m := range members {
			if m.Name != "value" {
				continue
			}
			rendered, err := codemodel.Generate(m.Value)
			if err != nil || rendered == "" {
				continue
			}
			if s, err := strconv.Unquote(decodeSurrogates(rendered)); err == nil {
				return s
			}
			return strings.Trim(rendered, `"`)
		}
	}
	return field.Name()
}

// decodeSurrogates replaces java \uXXXX\uXXXX surrogate pair escapes with
// the rune they encode; Go escapes cannot name a surrogate.
func decodeSurrogates(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		if r, ok := surrogatePair(s[i:]); ok {
			sb.WriteRune(r)
			i += len(`\uXXXX\uXXXX`) - 1
			continue
		}
		// keep the escape whole so an escaped backslash is not rescanned
		sb.WriteString(s[i : i+2])
		i++
	}
	return sb.String()
}

func surrogatePair(s string) (rune, bool) {
	if len(s) < 12 || s[1] != 'u' || s[6] != '\\' || s[7] != 'u' {
		return 0, false
	}
	hi, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	lo, err := strconv.ParseUint(s[8:12], 16, 16)
	if err != nil {
		return 0, false
	}
	r := utf16.DecodeRune(rune(hi), rune(lo))
	return r, r != unicode.ReplacementChar
}
