package kotlinpoet

import (
	"fmt"
	"strings"
)

// UseSiteTarget selects which construct an annotation binds to when one
// declaration produces several, e.g. `@field:` on a constructor property.
type UseSiteTarget string

const (
	UseSiteNone     UseSiteTarget = ""
	UseSiteFile     UseSiteTarget = "file"
	UseSiteProperty UseSiteTarget = "property"
	UseSiteField    UseSiteTarget = "field"
	UseSiteGet      UseSiteTarget = "get"
	UseSiteSet      UseSiteTarget = "set"
	UseSiteReceiver UseSiteTarget = "receiver"
	UseSiteParam    UseSiteTarget = "param"
	UseSiteSetParam UseSiteTarget = "setparam"
	UseSiteDelegate UseSiteTarget = "delegate"
)

// ParseUseSiteTarget accepts the lowercase Kotlin spelling or an empty
// string for no target.
func ParseUseSiteTarget(s string) (UseSiteTarget, error) {
	t := UseSiteTarget(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case UseSiteNone, UseSiteFile, UseSiteProperty, UseSiteField, UseSiteGet, UseSiteSet,
		UseSiteReceiver, UseSiteParam, UseSiteSetParam, UseSiteDelegate:
		return t, nil
	}
	return UseSiteNone, fmt.Errorf("unknown use-site target %q", s)
}

// AnnotationSpec is an annotation with pre-rendered `name = value` members.
type AnnotationSpec struct {
	typeName      ClassName
	members       []string
	useSiteTarget UseSiteTarget
}

func (a AnnotationSpec) TypeName() ClassName { return a.typeName }

func (a AnnotationSpec) Members() []string { return append([]string{}, a.members...) }

func (a AnnotationSpec) UseSiteTarget() UseSiteTarget { return a.useSiteTarget }

func (a AnnotationSpec) String() string { return a.render(canonicalNames) }

func (a AnnotationSpec) render(names nameFunc) string {
	var sb strings.Builder
	sb.WriteByte('@')
	if a.useSiteTarget != UseSiteNone {
		sb.WriteString(string(a.useSiteTarget))
		sb.WriteByte(':')
	}
	sb.WriteString(names(a.typeName))
	if len(a.members) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(a.members, ", "))
		sb.WriteByte(')')
	}
	return sb.String()
}

type AnnotationSpecBuilder struct {
	spec AnnotationSpec
}

func AnnotationBuilder(typeName ClassName) *AnnotationSpecBuilder {
	return &AnnotationSpecBuilder{spec: AnnotationSpec{typeName: typeName}}
}

// AddMember appends a member verbatim, e.g. `min = 1`.
func (b *AnnotationSpecBuilder) AddMember(code string) *AnnotationSpecBuilder {
	b.spec.members = append(b.spec.members, code)
	return b
}

func (b *AnnotationSpecBuilder) UseSiteTarget(t UseSiteTarget) *AnnotationSpecBuilder {
	b.spec.useSiteTarget = t
	return b
}

func (b *AnnotationSpecBuilder) Build() AnnotationSpec {
	spec := b.spec
	spec.members = append([]string{}, b.spec.members...)
	return spec
}
