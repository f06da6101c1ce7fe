package codemodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(ttt *testing.T) {
	tests := []struct {
		name  string
		value AnnotationValue
		want  string
	}{
		{name: "class", value: ClassLiteral{Type: NewType("java.util.LinkedHashSet")}, want: "java.util.LinkedHashSet.class"},
		{name: "string", value: StringLiteral("city"), want: `"city"`},
		{name: "string escapes", value: StringLiteral("a\"b\\c\nd\te"), want: `"a\"b\\c\nd\te"`},
		{name: "string control", value: StringLiteral("\x01"), want: `"\u0001"`},
		{name: "string unicode", value: StringLiteral("żółw"), want: `"żółw"`},
		{name: "number", value: NumberLiteral("10L"), want: "10L"},
		{name: "boolean", value: BooleanLiteral(true), want: "true"},
		{name: "enum", value: EnumConstant{Type: NewType("com.fasterxml.jackson.annotation.JsonInclude.Include"), Name: "NON_NULL"}, want: "com.fasterxml.jackson.annotation.JsonInclude.Include.NON_NULL"},
		{name: "empty array", value: ArrayLiteral{}, want: "{}"},
		{name: "array", value: ArrayLiteral{StringLiteral("a"), StringLiteral("b")}, want: `{"a", "b"}`},
		{
			name:  "nested annotation",
			value: AnnotationLiteral{Use: NewAnnotationUse(NewType("com.example.Tag"), Member{Name: "value", Value: ClassLiteral{Type: NewType("com.example.Kind")}})},
			want:  "@com.example.Tag(value = com.example.Kind.class)",
		},
		{
			name:  "nested annotation without members",
			value: AnnotationLiteral{Use: NewAnnotationUse(NewType("com.example.Marker"))},
			want:  "@com.example.Marker",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatter_StickyError(t *testing.T) {
	f := NewFormatter(failingWriter{})
	f.Print("a").Print("b").Generable(StringLiteral("c"))
	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), "disk full")
}
