package converter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/kotlinmodelgen/internal/codemodel"
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	c, err := New(append([]Option{quiet()}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestConvert(ttt *testing.T) {
	str := codemodel.NewType("java.lang.String")
	tests := []struct {
		name string
		opts []Option
		pkg  codemodel.Package
		want string
	}{
		{
			name: "single nullable field",
			pkg:  codemodel.NewPackage("generated", codemodel.NewClass("Address", codemodel.NewField("city", str))),
			want: `package generated

data class Address(
  val city: String?,
)
`,
		},
		{
			name: "no fields",
			pkg:  codemodel.NewPackage("generated", codemodel.NewClass("Empty")),
			want: `package generated

data class Empty()
`,
		},
		{
			name: "list of string",
			pkg: codemodel.NewPackage("generated", codemodel.NewClass("Tags",
				codemodel.NewField("values", codemodel.NewType("java.util.List<java.lang.String>"), nonnull))),
			want: `package generated

import javax.annotation.Nonnull

data class Tags(
  @field:Nonnull
  val values: List<String>,
)
`,
		},
		{
			name: "without known types",
			opts: []Option{WithoutKnownTypes()},
			pkg: codemodel.NewPackage("generated", codemodel.NewClass("Address",
				codemodel.NewField("city", str),
				codemodel.NewField("lines", codemodel.NewType("java.util.List<java.lang.String>")))),
			want: `package generated

import java.lang.String
import java.util.List

data class Address(
  val city: String?,
  val lines: List<String>?,
)
`,
		},
		{
			name: "type mapping",
			opts: []Option{WithTypeMapping("java.net.URI", "java.net.URL")},
			pkg: codemodel.NewPackage("generated", codemodel.NewClass("Link",
				codemodel.NewField("href", codemodel.NewType("java.net.URI")))),
			want: `package generated

import java.net.URL

data class Link(
  val href: URL?,
)
`,
		},
		{
			name: "no use-site target",
			opts: []Option{WithUseSiteTarget(kotlinpoet.UseSiteNone)},
			pkg: codemodel.NewPackage("generated", codemodel.NewClass("Address",
				codemodel.NewField("city", str, nonnull))),
			want: `package generated

import javax.annotation.Nonnull

data class Address(
  @Nonnull
  val city: String,
)
`,
		},
		{
			name: "only the first class",
			pkg: codemodel.NewPackage("generated",
				codemodel.NewClass("First", codemodel.NewField("a", str)),
				codemodel.NewClass("Second", codemodel.NewField("b", str))),
			want: `package generated

data class First(
  val a: String?,
)
`,
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			c := newConverter(t, tt.opts...)
			got, err := c.Convert(tt.pkg, tt.pkg.Classes()[0].Name()+".kt")
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_Golden(ttt *testing.T) {
	tests := []struct {
		name   string
		in     string
		golden string
	}{
		{name: "person", in: "testdata/person.yaml", golden: "testdata/person.kt.golden"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			pkg, err := codemodel.Load(tt.in)
			require.NoError(t, err)

			got, err := newConverter(t).Convert(pkg, "Person.kt")
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Clean(tt.golden))
			require.NoError(t, err)
			if diff := cmp.Diff(string(want), got); diff != "" {
				t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	pkg, err := codemodel.Load("testdata/person.yaml")
	require.NoError(t, err)
	c := newConverter(t)

	first, err := c.Convert(pkg, "Person.kt")
	require.NoError(t, err)
	second, err := c.Convert(pkg, "Person.kt")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvert_NoClass(t *testing.T) {
	_, err := newConverter(t).Convert(codemodel.NewPackage("generated"), "X.kt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoClass)
}

func TestConvert_ReservedMemberName(t *testing.T) {
	// `as` is written as-is; escaping is not done yet
	pkg := codemodel.NewPackage("generated", codemodel.NewClass("Bag",
		codemodel.NewField("items", codemodel.NewType("java.util.Set<java.lang.String>"),
			annotation("com.fasterxml.jackson.databind.annotation.JsonDeserialize",
				codemodel.Member{Name: "as", Value: codemodel.ClassLiteral{Type: codemodel.NewType("java.util.LinkedHashSet")}}))))

	got, err := newConverter(t).Convert(pkg, "Bag.kt")
	require.NoError(t, err)
	assert.Contains(t, got, "@field:JsonDeserialize(as = java.util.LinkedHashSet::class)")
}

func TestFields_Order(t *testing.T) {
	str := codemodel.NewType("java.lang.String")
	class := codemodel.NewClass("Abc",
		codemodel.NewField("a", str),
		codemodel.NewField("b", codemodel.NewType("java.lang.Integer"), nonnull),
		codemodel.NewField("c", str, nullable))

	fields, err := newConverter(t).Fields(class)
	require.NoError(t, err)

	names := make([]string, 0, len(fields))
	types := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
		types = append(types, f.Type.String())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []string{"kotlin.String?", "kotlin.Int", "kotlin.String?"}, types)
}

func TestFileSpec(t *testing.T) {
	pkg := codemodel.NewPackage("com.example", codemodel.NewClass("Address",
		codemodel.NewField("city", codemodel.NewType("java.lang.String"))))

	file, err := newConverter(t).FileSpec(pkg, "Address.kt")
	require.NoError(t, err)
	assert.Equal(t, "com.example", file.PackageName())
	assert.Equal(t, "Address.kt", file.Name())
	require.Len(t, file.Types(), 1)

	typ := file.Types()[0]
	assert.Equal(t, "com.example.Address", typ.Name().CanonicalName())
	assert.Equal(t, []kotlinpoet.Modifier{kotlinpoet.Data}, typ.Modifiers())
	require.NotNil(t, typ.PrimaryConstructor())
	params := typ.PrimaryConstructor().Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "city", params[0].Name())
	props := typ.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "city", props[0].Initializer())
}

func TestNew_Options(ttt *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults"},
		{name: "bad use-site target", opts: []Option{WithUseSiteTarget("nowhere")}, wantErr: true},
		{name: "empty mapping target", opts: []Option{WithTypeMapping("java.net.URI", " ")}, wantErr: true},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			c, err := New(append([]Option{quiet()}, tt.opts...)...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "kotlin", c.Opts.Target)
			assert.True(t, c.Opts.KnownTypes)
			assert.Equal(t, "field", c.Opts.UseSiteTarget)
			assert.True(t, filepath.IsAbs(c.Opts.OutDir))
		})
	}
}

func TestConvert_ReservedFieldName(ttt *testing.T) {
	// keyword field names are written as-is; escaping is not done yet
	tests := []struct {
		field string
		want  string
	}{
		{field: "val", want: "  val val: String?,\n"},
		{field: "fun", want: "  val fun: String?,\n"},
		{field: "object", want: "  val object: String?,\n"},
	}
	for _, tt := range tests {
		ttt.Run(tt.field, func(t *testing.T) {
			pkg := codemodel.NewPackage("generated", codemodel.NewClass("Keywords",
				codemodel.NewField(tt.field, codemodel.NewType("java.lang.String"))))

			got, err := newConverter(t).Convert(pkg, "Keywords.kt")
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}
