package kotlinpoet

// Modifier is a Kotlin declaration modifier.
type Modifier string

const Data Modifier = "data"

// ParameterSpec is a function or constructor parameter.
type ParameterSpec struct {
	name        string
	typ         TypeName
	annotations []AnnotationSpec
}

func NewParameter(name string, typ TypeName, annotations ...AnnotationSpec) ParameterSpec {
	return ParameterSpec{name: name, typ: typ, annotations: append([]AnnotationSpec{}, annotations...)}
}

func (p ParameterSpec) Name() string                  { return p.name }
func (p ParameterSpec) Type() TypeName                { return p.typ }
func (p ParameterSpec) Annotations() []AnnotationSpec { return append([]AnnotationSpec{}, p.annotations...) }

// PropertySpec is a `val` or `var` declaration.
type PropertySpec struct {
	name        string
	typ         TypeName
	initializer string
	mutable     bool
	annotations []AnnotationSpec
}

func (p PropertySpec) Name() string                  { return p.name }
func (p PropertySpec) Type() TypeName                { return p.typ }
func (p PropertySpec) Initializer() string           { return p.initializer }
func (p PropertySpec) Mutable() bool                 { return p.mutable }
func (p PropertySpec) Annotations() []AnnotationSpec { return append([]AnnotationSpec{}, p.annotations...) }

type PropertySpecBuilder struct {
	spec PropertySpec
}

func PropertyBuilder(name string, typ TypeName) *PropertySpecBuilder {
	return &PropertySpecBuilder{spec: PropertySpec{name: name, typ: typ}}
}

// Initializer sets the expression the property is initialized from.
func (b *PropertySpecBuilder) Initializer(code string) *PropertySpecBuilder {
	b.spec.initializer = code
	return b
}

func (b *PropertySpecBuilder) Mutable(mutable bool) *PropertySpecBuilder {
	b.spec.mutable = mutable
	return b
}

func (b *PropertySpecBuilder) AddAnnotations(annotations ...AnnotationSpec) *PropertySpecBuilder {
	b.spec.annotations = append(b.spec.annotations, annotations...)
	return b
}

func (b *PropertySpecBuilder) Build() PropertySpec {
	spec := b.spec
	spec.annotations = append([]AnnotationSpec{}, b.spec.annotations...)
	return spec
}

// FunSpec is a primary constructor.
type FunSpec struct {
	parameters []ParameterSpec
}

func (f FunSpec) Parameters() []ParameterSpec { return append([]ParameterSpec{}, f.parameters...) }

type FunSpecBuilder struct {
	spec FunSpec
}

func ConstructorBuilder() *FunSpecBuilder {
	return &FunSpecBuilder{}
}

func (b *FunSpecBuilder) AddParameter(p ParameterSpec) *FunSpecBuilder {
	b.spec.parameters = append(b.spec.parameters, p)
	return b
}

func (b *FunSpecBuilder) Build() FunSpec {
	return FunSpec{parameters: append([]ParameterSpec{}, b.spec.parameters...)}
}

// TypeSpec is a class declaration.
type TypeSpec struct {
	name               ClassName
	modifiers          []Modifier
	primaryConstructor *FunSpec
	properties         []PropertySpec
}

func (t TypeSpec) Name() ClassName              { return t.name }
func (t TypeSpec) Modifiers() []Modifier        { return append([]Modifier{}, t.modifiers...) }
func (t TypeSpec) PrimaryConstructor() *FunSpec { return t.primaryConstructor }
func (t TypeSpec) Properties() []PropertySpec   { return append([]PropertySpec{}, t.properties...) }

type TypeSpecBuilder struct {
	spec TypeSpec
}

func ClassBuilder(name ClassName) *TypeSpecBuilder {
	return &TypeSpecBuilder{spec: TypeSpec{name: name}}
}

func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	b.spec.modifiers = append(b.spec.modifiers, modifiers...)
	return b
}

func (b *TypeSpecBuilder) PrimaryConstructor(f FunSpec) *TypeSpecBuilder {
	b.spec.primaryConstructor = &f
	return b
}

func (b *TypeSpecBuilder) AddProperty(p PropertySpec) *TypeSpecBuilder {
	b.spec.properties = append(b.spec.properties, p)
	return b
}

func (b *TypeSpecBuilder) Build() TypeSpec {
	spec := b.spec
	spec.modifiers = append([]Modifier{}, b.spec.modifiers...)
	spec.properties = append([]PropertySpec{}, b.spec.properties...)
	if b.spec.primaryConstructor != nil {
		ctor := *b.spec.primaryConstructor
		spec.primaryConstructor = &ctor
	}
	return spec
}

// FileSpec is one Kotlin source file.
type FileSpec struct {
	packageName string
	name        string
	types       []TypeSpec
}

func (f FileSpec) PackageName() string { return f.packageName }
func (f FileSpec) Name() string        { return f.name }
func (f FileSpec) Types() []TypeSpec   { return append([]TypeSpec{}, f.types...) }

type FileSpecBuilder struct {
	spec FileSpec
}

func FileBuilder(packageName, name string) *FileSpecBuilder {
	return &FileSpecBuilder{spec: FileSpec{packageName: packageName, name: name}}
}

func (b *FileSpecBuilder) AddType(t TypeSpec) *FileSpecBuilder {
	b.spec.types = append(b.spec.types, t)
	return b
}

func (b *FileSpecBuilder) Build() FileSpec {
	spec := b.spec
	spec.types = append([]TypeSpec{}, b.spec.types...)
	return spec
}
