package codemodel

import (
	"errors"
	"strings"
)

// ErrNoMembers is returned by AnnotationUse.Members when the usage was
// declared without explicit arguments.
var ErrNoMembers = errors.New("annotation declares no members")

// Package is the container the schema stage hands over: a package name and
// the classes generated into it, in declaration order.
type Package interface {
	Name() string
	Classes() []Class
}

// Class is a generated data class.
type Class interface {
	Name() string
	Fields() []Field // declaration order
}

// Field is a single field of a generated class.
type Field interface {
	Name() string
	Type() Type
	Annotations() []AnnotationUse
}

// Type is a reference to a class.
//
// Generic arguments are not exposed structurally. BinaryName carries them as
// a textual `<A,B>` suffix appended to the erasure's FullName.
type Type interface {
	FullName() string   // e.g. "java.util.List"
	Name() string       // e.g. "List"
	BinaryName() string // e.g. "java.util.List<java.lang.String>"
	Erasure() Type
}

// AnnotationUse is a single annotation applied to a field.
type AnnotationUse interface {
	AnnotationClass() Type
	Members() ([]Member, error)
}

// Member is one `name = value` argument of an annotation usage.
type Member struct {
	Name  string
	Value AnnotationValue
}

// AnnotationValue is a literal that can only render itself.
type AnnotationValue interface {
	Generate(f *Formatter)
}

// ClassRef is the in-memory Type implementation.
type ClassRef struct {
	fullName   string
	binaryName string
}

// NewType builds a Type from its binary name. Everything from the first '<'
// onward is treated as the generic suffix.
func NewType(binaryName string) *ClassRef {
	binaryName = strings.TrimSpace(binaryName)
	fullName := binaryName
	if i := strings.IndexByte(binaryName, '<'); i >= 0 {
		fullName = binaryName[:i]
	}
	return &ClassRef{fullName: fullName, binaryName: binaryName}
}

func (c *ClassRef) FullName() string { return c.fullName }

func (c *ClassRef) Name() string {
	if i := strings.LastIndexByte(c.fullName, '.'); i >= 0 {
		return c.fullName[i+1:]
	}
	return c.fullName
}

func (c *ClassRef) BinaryName() string { return c.binaryName }

func (c *ClassRef) Erasure() Type {
	if c.fullName == c.binaryName {
		return c
	}
	return &ClassRef{fullName: c.fullName, binaryName: c.fullName}
}

func (c *ClassRef) String() string { return c.binaryName }

// AnnotationUsage is the in-memory AnnotationUse implementation.
type AnnotationUsage struct {
	class   Type
	members []Member // nil when declared without arguments
}

// NewAnnotationUse builds an annotation usage. Passing no members yields a
// usage whose Members call fails with ErrNoMembers.
func NewAnnotationUse(class Type, members ...Member) *AnnotationUsage {
	u := &AnnotationUsage{class: class}
	if len(members) > 0 {
		u.members = append([]Member{}, members...)
	}
	return u
}

func (u *AnnotationUsage) AnnotationClass() Type { return u.class }

func (u *AnnotationUsage) Members() ([]Member, error) {
	if u.members == nil {
		return nil, ErrNoMembers
	}
	return u.members, nil
}

// FieldVar is the in-memory Field implementation.
type FieldVar struct {
	name        string
	typ         Type
	annotations []AnnotationUse
}

func NewField(name string, typ Type, annotations ...AnnotationUse) *FieldVar {
	return &FieldVar{name: name, typ: typ, annotations: annotations}
}

func (f *FieldVar) Name() string                 { return f.name }
func (f *FieldVar) Type() Type                   { return f.typ }
func (f *FieldVar) Annotations() []AnnotationUse { return f.annotations }

// DefinedClass is the in-memory Class implementation.
type DefinedClass struct {
	name   string
	fields []Field
}

func NewClass(name string, fields ...Field) *DefinedClass {
	return &DefinedClass{name: name, fields: fields}
}

func (c *DefinedClass) Name() string    { return c.name }
func (c *DefinedClass) Fields() []Field { return c.fields }

// Pkg is the in-memory Package implementation.
type Pkg struct {
	name    string
	classes []Class
}

func NewPackage(name string, classes ...Class) *Pkg {
	return &Pkg{name: name, classes: classes}
}

func (p *Pkg) Name() string      { return p.name }
func (p *Pkg) Classes() []Class { return p.classes }
