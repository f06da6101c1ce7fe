package codemodel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// ClassLiteral renders as `pkg.Type.class`.
type ClassLiteral struct {
	Type Type
}

func (l ClassLiteral) Generate(f *Formatter) {
	f.Print(l.Type.FullName()).Print(".class")
}

// StringLiteral renders as a double-quoted, escaped string.
type StringLiteral string

func (l StringLiteral) Generate(f *Formatter) {
	f.Print(quotify(string(l)))
}

// NumberLiteral renders its text unchanged, e.g. `42`, `3.5`, `10L`.
type NumberLiteral string

func (l NumberLiteral) Generate(f *Formatter) {
	f.Print(string(l))
}

type BooleanLiteral bool

func (l BooleanLiteral) Generate(f *Formatter) {
	f.Print(strconv.FormatBool(bool(l)))
}

// EnumConstant renders as `pkg.Enum.CONSTANT`.
type EnumConstant struct {
	Type Type
	Name string
}

func (l EnumConstant) Generate(f *Formatter) {
	f.Print(l.Type.FullName()).Print(".").Print(l.Name)
}

// ArrayLiteral renders as `{a, b}`.
type ArrayLiteral []AnnotationValue

func (l ArrayLiteral) Generate(f *Formatter) {
	f.Print("{")
	for i, v := range l {
		if i > 0 {
			f.Print(", ")
		}
		f.Generable(v)
	}
	f.Print("}")
}

// AnnotationLiteral is an annotation nested as a member value and renders
// as `@pkg.Ann(k = v)`.
type AnnotationLiteral struct {
	Use AnnotationUse
}

func (l AnnotationLiteral) Generate(f *Formatter) {
	f.Print("@").Print(l.Use.AnnotationClass().FullName())
	members, err := l.Use.Members()
	if err != nil || len(members) == 0 {
		return
	}
	f.Print("(")
	for i, m := range members {
		if i > 0 {
			f.Print(", ")
		}
		f.Print(m.Name).Print(" = ").Generable(m.Value)
	}
	f.Print(")")
}

// quotify escapes s the way Java string literals are written.
func quotify(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if r < 0x20 || (r > 0x7e && !unicode.IsPrint(r)) {
				if r > 0xffff {
					r1, r2 := utf16.EncodeRune(r)
					fmt.Fprintf(&sb, `\u%04x\u%04x`, r1, r2)
					continue
				}
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
