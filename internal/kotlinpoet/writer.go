package kotlinpoet

import (
	"io"
	"sort"
	"strings"
)

const indent = "  "

// defaultImports are the packages every Kotlin file sees without imports.
var defaultImports = map[string]bool{
	"kotlin":             true,
	"kotlin.collections": true,
	"kotlin.annotation":  true,
	"kotlin.jvm":         true,
}

// String renders the file.
func (f FileSpec) String() string {
	var sb strings.Builder
	f.render(&sb)
	return sb.String()
}

// WriteTo renders the file into w.
func (f FileSpec) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

func (f FileSpec) render(sb *strings.Builder) {
	names, imports := f.resolveNames()

	if f.packageName != "" {
		sb.WriteString("package ")
		sb.WriteString(f.packageName)
		sb.WriteString("\n\n")
	}
	if len(imports) > 0 {
		for _, imp := range imports {
			sb.WriteString("import ")
			sb.WriteString(imp)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for i, t := range f.types {
		if i > 0 {
			sb.WriteByte('\n')
		}
		t.render(sb, names)
	}
}

// resolveNames decides, per referenced class, whether it is written by its
// simple name (default-imported, same package, or imported) or fully
// qualified (simple name ambiguous within the file).
func (f FileSpec) resolveNames() (nameFunc, []string) {
	declared := make(map[string]string, len(f.types))
	for _, t := range f.types {
		declared[t.name.simpleName] = NewClassName(f.packageName, t.name.simpleName).CanonicalName()
	}

	bySimple := make(map[string]map[string]bool)
	var referenced []ClassName
	seen := make(map[string]bool)
	collect := func(c ClassName) {
		c.nullable = false
		canonical := c.CanonicalName()
		if seen[canonical] {
			return
		}
		seen[canonical] = true
		referenced = append(referenced, c)
		if bySimple[c.simpleName] == nil {
			bySimple[c.simpleName] = make(map[string]bool)
		}
		bySimple[c.simpleName][canonical] = true
	}
	for _, t := range f.types {
		t.visit(collect)
	}

	resolved := make(map[string]string, len(referenced))
	imports := make([]string, 0)
	for _, c := range referenced {
		canonical := c.CanonicalName()
		switch {
		case c.packageName == "":
			resolved[canonical] = c.simpleName
		case len(bySimple[c.simpleName]) > 1:
			resolved[canonical] = canonical
		case declared[c.simpleName] != "" && declared[c.simpleName] != canonical:
			resolved[canonical] = canonical
		case defaultImports[c.packageName] || c.packageName == f.packageName:
			resolved[canonical] = c.simpleName
		default:
			resolved[canonical] = c.simpleName
			imports = append(imports, canonical)
		}
	}
	sort.Strings(imports)

	return func(c ClassName) string {
		if name, ok := resolved[c.CanonicalName()]; ok {
			return name
		}
		return c.CanonicalName()
	}, imports
}

func (t TypeSpec) visit(fn func(ClassName)) {
	if t.primaryConstructor != nil {
		for _, p := range t.primaryConstructor.parameters {
			p.typ.visit(fn)
			for _, a := range p.annotations {
				fn(a.typeName)
			}
		}
	}
	for _, p := range t.properties {
		p.typ.visit(fn)
		for _, a := range p.annotations {
			fn(a.typeName)
		}
	}
}

// constructorProperty reports the property declared through parameter p:
// same name and type, initialized from p.
func (t TypeSpec) constructorProperty(p ParameterSpec) (int, bool) {
	for i, prop := range t.properties {
		if prop.name == p.name && prop.initializer == p.name && prop.typ.String() == p.typ.String() {
			return i, true
		}
	}
	return -1, false
}

func (t TypeSpec) render(sb *strings.Builder, names nameFunc) {
	for _, m := range t.modifiers {
		sb.WriteString(string(m))
		sb.WriteByte(' ')
	}
	sb.WriteString("class ")
	sb.WriteString(t.name.simpleName)

	merged := make(map[int]bool)
	if t.primaryConstructor != nil {
		params := t.primaryConstructor.parameters
		if len(params) == 0 {
			sb.WriteString("()")
		} else {
			sb.WriteString("(\n")
			for _, p := range params {
				annotations := p.annotations
				keyword := ""
				if i, ok := t.constructorProperty(p); ok && !merged[i] {
					merged[i] = true
					prop := t.properties[i]
					annotations = append(append([]AnnotationSpec{}, prop.annotations...), p.annotations...)
					keyword = "val "
					if prop.mutable {
						keyword = "var "
					}
				}
				writeAnnotations(sb, annotations, indent, names)
				sb.WriteString(indent)
				sb.WriteString(keyword)
				sb.WriteString(p.name)
				sb.WriteString(": ")
				sb.WriteString(p.typ.render(names))
				sb.WriteString(",\n")
			}
			sb.WriteByte(')')
		}
	}

	var body []PropertySpec
	for i, prop := range t.properties {
		if !merged[i] {
			body = append(body, prop)
		}
	}
	if len(body) == 0 {
		sb.WriteByte('\n')
		return
	}

	sb.WriteString(" {\n")
	for i, prop := range body {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeAnnotations(sb, prop.annotations, indent, names)
		sb.WriteString(indent)
		if prop.mutable {
			sb.WriteString("var ")
		} else {
			sb.WriteString("val ")
		}
		sb.WriteString(prop.name)
		sb.WriteString(": ")
		sb.WriteString(prop.typ.render(names))
		if prop.initializer != "" {
			sb.WriteString(" = ")
			sb.WriteString(prop.initializer)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
}

func writeAnnotations(sb *strings.Builder, annotations []AnnotationSpec, prefix string, names nameFunc) {
	for _, a := range annotations {
		sb.WriteString(prefix)
		sb.WriteString(a.render(names))
		sb.WriteByte('\n')
	}
}
