package converter

import (
	"strings"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

const (
	nullableAnnotation = "Nullable"
	nonnullAnnotation  = "Nonnull"
)

// TypeResolver maps a field's declared java type to a kotlin type.
type TypeResolver struct {
	table TypeTable
}

func NewTypeResolver(table TypeTable) TypeResolver {
	return TypeResolver{table: table}
}

// Resolve returns the kotlin type of f, with nullability taken from the
// field's annotations and generic arguments parsed out of the type's binary
// name.
func (r TypeResolver) Resolve(f codemodel.Field) kotlinpoet.TypeName {
	return r.TypeName(f.Type()).Copy(Nullable(f.Annotations()))
}

// TypeName resolves t without nullability.
//
// The codemodel does not expose type arguments, so they are recovered from
// the difference between the binary name and the erasure's name. Only one
// level is supported: Map<String,Map<String,Object>> splits into garbage.
func (r TypeResolver) TypeName(t codemodel.Type) kotlinpoet.TypeName {
	erasure := t.Erasure()
	className := r.table.ClassName(erasure.FullName())

	args := GenericArguments(t)
	if len(args) == 0 {
		return className
	}
	typeArgs := make([]kotlinpoet.TypeName, 0, len(args))
	for _, arg := range args {
		typeArgs = append(typeArgs, r.table.ClassName(arg))
	}
	return className.ParameterizedBy(typeArgs...)
}

// GenericArguments returns the comma separated names inside the `<...>`
// suffix of t's binary name, or nil when t is not parameterized.
func GenericArguments(t codemodel.Type) []string {
	binary := t.BinaryName()
	full := t.Erasure().FullName()
	if binary == full {
		return nil
	}
	generics := strings.TrimPrefix(binary, full)
	generics = strings.TrimPrefix(generics, "<")
	generics = strings.TrimSuffix(generics, ">")
	if strings.TrimSpace(generics) == "" {
		return nil
	}
	parts := strings.Split(generics, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		args = append(args, strings.TrimSpace(p))
	}
	return args
}

// Nullable applies the nullability policy: nullable unless annotated
// Nonnull, and always nullable when annotated Nullable.
func Nullable(annotations []codemodel.AnnotationUse) bool {
	var nullable, nonnull bool
	for _, a := range annotations {
		switch a.AnnotationClass().Name() {
		case nullableAnnotation:
			nullable = true
		case nonnullAnnotation:
			nonnull = true
		}
	}
	return nullable || !nonnull
}
