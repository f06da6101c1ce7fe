// Package kotlinpoet builds Kotlin source files from immutable specs.
//
// Specs are assembled through builders and rendered by FileSpec. Rendering
// manages imports: classes outside the default-imported kotlin packages are
// imported when their simple name is unambiguous in the file, otherwise they
// are written fully qualified.
package kotlinpoet

import (
	"strings"
)

// TypeName is a reference to a Kotlin type.
type TypeName interface {
	IsNullable() bool
	// Copy returns the same type with the given nullability.
	Copy(nullable bool) TypeName
	// String is the fully qualified form, e.g. "kotlin.collections.List<kotlin.String>?".
	String() string

	render(names nameFunc) string
	visit(fn func(ClassName))
}

type nameFunc func(ClassName) string

func canonicalNames(c ClassName) string { return c.CanonicalName() }

// ClassName is a named class, optionally nullable.
type ClassName struct {
	packageName string
	simpleName  string
	nullable    bool
}

func NewClassName(packageName, simpleName string) ClassName {
	return ClassName{packageName: packageName, simpleName: simpleName}
}

// BestGuess splits a fully qualified name on its last dot: everything before
// it is the package, the last segment is the simple name.
func BestGuess(fullName string) ClassName {
	fullName = strings.TrimSpace(fullName)
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return NewClassName(fullName[:i], fullName[i+1:])
	}
	return NewClassName("", fullName)
}

func (c ClassName) PackageName() string { return c.packageName }

func (c ClassName) SimpleName() string { return c.simpleName }

func (c ClassName) CanonicalName() string {
	if c.packageName == "" {
		return c.simpleName
	}
	return c.packageName + "." + c.simpleName
}

func (c ClassName) IsNullable() bool { return c.nullable }

func (c ClassName) Copy(nullable bool) TypeName {
	c.nullable = nullable
	return c
}

// ParameterizedBy applies type arguments to c.
func (c ClassName) ParameterizedBy(args ...TypeName) ParameterizedTypeName {
	raw := c
	raw.nullable = false
	return ParameterizedTypeName{
		rawType:       raw,
		typeArguments: append([]TypeName{}, args...),
		nullable:      c.nullable,
	}
}

func (c ClassName) String() string { return c.render(canonicalNames) }

func (c ClassName) render(names nameFunc) string {
	if c.nullable {
		return names(c) + "?"
	}
	return names(c)
}

func (c ClassName) visit(fn func(ClassName)) { fn(c) }

// ParameterizedTypeName is a generic class with its type arguments.
type ParameterizedTypeName struct {
	rawType       ClassName
	typeArguments []TypeName
	nullable      bool
}

func (p ParameterizedTypeName) RawType() ClassName { return p.rawType }

func (p ParameterizedTypeName) TypeArguments() []TypeName {
	return append([]TypeName{}, p.typeArguments...)
}

func (p ParameterizedTypeName) IsNullable() bool { return p.nullable }

func (p ParameterizedTypeName) Copy(nullable bool) TypeName {
	p.nullable = nullable
	return p
}

func (p ParameterizedTypeName) String() string { return p.render(canonicalNames) }

func (p ParameterizedTypeName) render(names nameFunc) string {
	var sb strings.Builder
	sb.WriteString(names(p.rawType))
	sb.WriteByte('<')
	for i, arg := range p.typeArguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.render(names))
	}
	sb.WriteByte('>')
	if p.nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

func (p ParameterizedTypeName) visit(fn func(ClassName)) {
	fn(p.rawType)
	for _, arg := range p.typeArguments {
		arg.visit(fn)
	}
}

// Well-known Kotlin classes.
var (
	Any        = NewClassName("kotlin", "Any")
	String     = NewClassName("kotlin", "String")
	Int        = NewClassName("kotlin", "Int")
	Long       = NewClassName("kotlin", "Long")
	Short      = NewClassName("kotlin", "Short")
	Byte       = NewClassName("kotlin", "Byte")
	Double     = NewClassName("kotlin", "Double")
	Float      = NewClassName("kotlin", "Float")
	Boolean    = NewClassName("kotlin", "Boolean")
	Iterable   = NewClassName("kotlin.collections", "Iterable")
	Collection = NewClassName("kotlin.collections", "Collection")
	List       = NewClassName("kotlin.collections", "List")
	Set        = NewClassName("kotlin.collections", "Set")
	Map        = NewClassName("kotlin.collections", "Map")
)
