package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

func annotation(fullName string, members ...codemodel.Member) codemodel.AnnotationUse {
	return codemodel.NewAnnotationUse(codemodel.NewType(fullName), members...)
}

var (
	nonnull  = annotation("javax.annotation.Nonnull")
	nullable = annotation("javax.annotation.Nullable")
)

func TestTypeResolver_Resolve(ttt *testing.T) {
	tests := []struct {
		name        string
		binary      string
		annotations []codemodel.AnnotationUse
		want        string
	}{
		{name: "string defaults to nullable", binary: "java.lang.String", want: "kotlin.String?"},
		{name: "nonnull", binary: "java.lang.String", annotations: []codemodel.AnnotationUse{nonnull}, want: "kotlin.String"},
		{name: "nullable", binary: "java.lang.Integer", annotations: []codemodel.AnnotationUse{nullable}, want: "kotlin.Int?"},
		{name: "nullable wins over nonnull", binary: "java.lang.Long", annotations: []codemodel.AnnotationUse{nonnull, nullable}, want: "kotlin.Long?"},
		{name: "boxed primitives", binary: "java.lang.Boolean", annotations: []codemodel.AnnotationUse{nonnull}, want: "kotlin.Boolean"},
		{name: "object", binary: "java.lang.Object", want: "kotlin.Any?"},
		{
			name:        "list of string",
			binary:      "java.util.List<java.lang.String>",
			annotations: []codemodel.AnnotationUse{nonnull},
			want:        "kotlin.collections.List<kotlin.String>",
		},
		{
			name:   "map of table types",
			binary: "java.util.Map<java.lang.String,java.lang.Object>",
			want:   "kotlin.collections.Map<kotlin.String, kotlin.Any>?",
		},
		{
			name:   "iterable",
			binary: "java.lang.Iterable<java.lang.Double>",
			want:   "kotlin.collections.Iterable<kotlin.Double>?",
		},
		{
			name:   "collection",
			binary: "java.util.Collection<java.lang.Float>",
			want:   "kotlin.collections.Collection<kotlin.Float>?",
		},
		{name: "unknown type is used as-is", binary: "java.net.URL", want: "java.net.URL?"},
		{
			name:   "unknown generic argument is used as-is",
			binary: "java.util.Set<com.example.Tag>",
			want:   "kotlin.collections.Set<com.example.Tag>?",
		},
		{name: "default package", binary: "Address", annotations: []codemodel.AnnotationUse{nonnull}, want: "Address"},
	}
	r := NewTypeResolver(DefaultTypeTable())
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			f := codemodel.NewField("f", codemodel.NewType(tt.binary), tt.annotations...)
			assert.Equal(t, tt.want, r.Resolve(f).String())
		})
	}
}

func TestTypeResolver_NestedGenerics(t *testing.T) {
	// nested arguments are split on every comma
	r := NewTypeResolver(DefaultTypeTable())
	typ := r.TypeName(codemodel.NewType("java.util.Map<java.lang.String,java.util.Map<java.lang.String,java.lang.Object>>"))

	p, ok := typ.(kotlinpoet.ParameterizedTypeName)
	require.True(t, ok)
	require.Len(t, p.TypeArguments(), 3)
	assert.Equal(t, "kotlin.collections.Map<kotlin.String, java.util.Map<java.lang.String, java.lang.Object>>", typ.String())
}

func TestTypeResolver_EmptyTable(t *testing.T) {
	r := NewTypeResolver(EmptyTypeTable())
	f := codemodel.NewField("names", codemodel.NewType("java.util.List<java.lang.String>"))
	assert.Equal(t, "java.util.List<java.lang.String>?", r.Resolve(f).String())
}

func TestGenericArguments(ttt *testing.T) {
	tests := []struct {
		name   string
		binary string
		want   []string
	}{
		{name: "plain", binary: "java.lang.String"},
		{name: "one", binary: "java.util.List<java.lang.String>", want: []string{"java.lang.String"}},
		{name: "two", binary: "java.util.Map<java.lang.String,java.lang.Long>", want: []string{"java.lang.String", "java.lang.Long"}},
		{name: "spaced", binary: "java.util.Map<java.lang.String, java.lang.Long>", want: []string{"java.lang.String", "java.lang.Long"}},
		{name: "empty brackets", binary: "java.util.List<>"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenericArguments(codemodel.NewType(tt.binary)))
		})
	}
}

func TestTypeTable_With(t *testing.T) {
	base := DefaultTypeTable()
	extended := base.With(map[string]string{
		"java.net.URI":     "java.net.URL",
		"java.lang.String": "kotlin.CharSequence",
	})

	assert.Equal(t, base.Len()+1, extended.Len())
	assert.Equal(t, "java.net.URL", extended.ClassName("java.net.URI").CanonicalName())
	assert.Equal(t, "kotlin.CharSequence", extended.ClassName("java.lang.String").CanonicalName())

	_, ok := base.Lookup("java.net.URI")
	assert.False(t, ok, "base table must not change")
	assert.Equal(t, "kotlin.String", base.ClassName("java.lang.String").CanonicalName())
}

func TestNullable(t *testing.T) {
	assert.True(t, Nullable(nil))
	assert.False(t, Nullable([]codemodel.AnnotationUse{nonnull}))
	assert.True(t, Nullable([]codemodel.AnnotationUse{nullable}))
	assert.True(t, Nullable([]codemodel.AnnotationUse{nullable, nonnull}))
	assert.False(t, Nullable([]codemodel.AnnotationUse{annotation("org.jetbrains.annotations.NotNull"), nonnull}))
	// matched on simple name only
	assert.False(t, Nullable([]codemodel.AnnotationUse{annotation("com.example.Nonnull")}))
}
