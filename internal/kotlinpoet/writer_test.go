package kotlinpoet

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func dataClass(name ClassName, props ...PropertySpec) TypeSpec {
	ctor := ConstructorBuilder()
	b := ClassBuilder(name).AddModifiers(Data)
	for _, p := range props {
		ctor.AddParameter(NewParameter(p.Name(), p.Type()))
		b.AddProperty(p)
	}
	return b.PrimaryConstructor(ctor.Build()).Build()
}

func TestFileSpec_String(ttt *testing.T) {
	jsonProperty := BestGuess("com.fasterxml.jackson.annotation.JsonProperty")
	field := func(member string) AnnotationSpec {
		return AnnotationBuilder(jsonProperty).AddMember(member).UseSiteTarget(UseSiteField).Build()
	}

	tests := []struct {
		name string
		file FileSpec
		want string
	}{
		{
			name: "data class with import",
			file: FileBuilder("com.example", "Person.kt").AddType(dataClass(NewClassName("com.example", "Person"),
				PropertyBuilder("name", String.Copy(true)).Initializer("name").AddAnnotations(field(`value = "name"`)).Build(),
				PropertyBuilder("tags", List.ParameterizedBy(String)).Initializer("tags").Build(),
			)).Build(),
			want: `package com.example

import com.fasterxml.jackson.annotation.JsonProperty

data class Person(
  @field:JsonProperty(value = "name")
  val name: String?,
  val tags: List<String>,
)
`,
		},
		{
			name: "no fields",
			file: FileBuilder("generated", "Empty.kt").AddType(dataClass(NewClassName("generated", "Empty"))).Build(),
			want: `package generated

data class Empty()
`,
		},
		{
			name: "ambiguous simple names are qualified",
			file: FileBuilder("com.example", "Event.kt").AddType(dataClass(NewClassName("com.example", "Event"),
				PropertyBuilder("at", BestGuess("java.util.Date").Copy(true)).Initializer("at").Build(),
				PropertyBuilder("day", BestGuess("com.example.time.Date")).Initializer("day").Build(),
				PropertyBuilder("url", BestGuess("java.net.URL")).Initializer("url").Build(),
				PropertyBuilder("sibling", BestGuess("com.example.Address")).Initializer("sibling").Build(),
			)).Build(),
			want: `package com.example

import java.net.URL

data class Event(
  val at: java.util.Date?,
  val day: com.example.time.Date,
  val url: URL,
  val sibling: Address,
)
`,
		},
		{
			name: "class named like the declared type is qualified",
			file: FileBuilder("generated", "Address.kt").AddType(dataClass(NewClassName("generated", "Address"),
				PropertyBuilder("legacy", BestGuess("com.legacy.Address")).Initializer("legacy").Build(),
			)).Build(),
			want: `package generated

data class Address(
  val legacy: com.legacy.Address,
)
`,
		},
		{
			name: "property outside constructor goes to body",
			file: FileBuilder("", "Holder.kt").AddType(ClassBuilder(NewClassName("", "Holder")).
				PrimaryConstructor(ConstructorBuilder().AddParameter(NewParameter("raw", String)).Build()).
				AddProperty(PropertyBuilder("value", String).Initializer("raw.trim()").Build()).
				AddProperty(PropertyBuilder("count", Int).Mutable(true).Initializer("0").AddAnnotations(
					AnnotationBuilder(BestGuess("kotlin.jvm.Transient")).Build()).Build()).
				Build()).Build(),
			want: `class Holder(
  raw: String,
) {
  val value: String = raw.trim()

  @Transient
  var count: Int = 0
}
`,
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got := tt.file.String()
			require.Equalf(t, tt.want, got, "diff = %s", cmp.Diff(tt.want, got))
		})
	}
}

func TestFileSpec_WriteTo(t *testing.T) {
	file := FileBuilder("generated", "A.kt").AddType(dataClass(NewClassName("generated", "A"),
		PropertyBuilder("id", Long).Initializer("id").Build())).Build()

	var buf bytes.Buffer
	n, err := file.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, file.String(), buf.String())
}
