package codemodel

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a package descriptor file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the descriptor format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown descriptor format %q", filepath.Ext(path))
	}
}

// PackageDescriptor is the serialized form of a Package.
//
//	package: com.example
//	classes:
//	  - name: Address
//	    fields:
//	      - name: tags
//	        type: java.util.List<java.lang.String>
//	        annotations:
//	          - type: com.fasterxml.jackson.annotation.JsonProperty
//	            members:
//	              - name: value
//	                kind: string
//	                value: tags
type PackageDescriptor struct {
	Package string            `json:"package" yaml:"package"`
	Classes []ClassDescriptor `json:"classes" yaml:"classes"`
}

type ClassDescriptor struct {
	Name   string            `json:"name" yaml:"name"`
	Fields []FieldDescriptor `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type FieldDescriptor struct {
	Name        string                 `json:"name" yaml:"name"`
	Type        string                 `json:"type" yaml:"type"`
	Annotations []AnnotationDescriptor `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type AnnotationDescriptor struct {
	Type    string             `json:"type" yaml:"type"`
	Members []MemberDescriptor `json:"members,omitempty" yaml:"members,omitempty"`
}

type MemberDescriptor struct {
	Name            string `json:"name" yaml:"name"`
	ValueDescriptor `yaml:",inline"`
}

// ValueDescriptor is a literal. Kind is one of class, string (default),
// number, boolean, enum, array, annotation.
type ValueDescriptor struct {
	Kind       string                `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value      string                `json:"value,omitempty" yaml:"value,omitempty"`
	Values     []ValueDescriptor     `json:"values,omitempty" yaml:"values,omitempty"`
	Annotation *AnnotationDescriptor `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Load reads a descriptor file and builds the in-memory Package.
func Load(path string) (Package, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	pkg, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg, nil
}

// Decode parses descriptor bytes in the given format.
func Decode(data []byte, format Format) (Package, error) {
	var d PackageDescriptor
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("unmarshal descriptor: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("unmarshal descriptor: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown descriptor format %q", format)
	}
	return d.Build()
}

// Build converts the descriptor into the in-memory model.
func (d PackageDescriptor) Build() (Package, error) {
	classes := make([]Class, 0, len(d.Classes))
	for _, cd := range d.Classes {
		if cd.Name == "" {
			return nil, fmt.Errorf("class without name in package %q", d.Package)
		}
		fields := make([]Field, 0, len(cd.Fields))
		for _, fd := range cd.Fields {
			f, err := fd.build()
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", cd.Name, fd.Name, err)
			}
			fields = append(fields, f)
		}
		classes = append(classes, NewClass(cd.Name, fields...))
	}
	return NewPackage(d.Package, classes...), nil
}

func (fd FieldDescriptor) build() (Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if strings.TrimSpace(fd.Type) == "" {
		return nil, fmt.Errorf("missing type")
	}
	uses := make([]AnnotationUse, 0, len(fd.Annotations))
	for _, ad := range fd.Annotations {
		u, err := ad.build()
		if err != nil {
			return nil, err
		}
		uses = append(uses, u)
	}
	return NewField(fd.Name, NewType(fd.Type), uses...), nil
}

func (ad AnnotationDescriptor) build() (AnnotationUse, error) {
	if ad.Type == "" {
		return nil, fmt.Errorf("annotation without type")
	}
	members := make([]Member, 0, len(ad.Members))
	for _, md := range ad.Members {
		if md.Name == "" {
			return nil, fmt.Errorf("@%s: member without name", ad.Type)
		}
		v, err := md.ValueDescriptor.build()
		if err != nil {
			return nil, fmt.Errorf("@%s(%s): %w", ad.Type, md.Name, err)
		}
		members = append(members, Member{Name: md.Name, Value: v})
	}
	return NewAnnotationUse(NewType(ad.Type), members...), nil
}

func (vd ValueDescriptor) build() (AnnotationValue, error) {
	switch vd.Kind {
	case "", "string":
		return StringLiteral(vd.Value), nil
	case "class":
		if vd.Value == "" {
			return nil, fmt.Errorf("class literal without type")
		}
		return ClassLiteral{Type: NewType(vd.Value)}, nil
	case "number":
		if !isNumber(vd.Value) {
			return nil, fmt.Errorf("invalid number %q", vd.Value)
		}
		return NumberLiteral(vd.Value), nil
	case "boolean":
		b, err := strconv.ParseBool(vd.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", vd.Value)
		}
		return BooleanLiteral(b), nil
	case "enum":
		i := strings.LastIndexByte(vd.Value, '.')
		if i <= 0 || i == len(vd.Value)-1 {
			return nil, fmt.Errorf("invalid enum constant %q", vd.Value)
		}
		return EnumConstant{Type: NewType(vd.Value[:i]), Name: vd.Value[i+1:]}, nil
	case "array":
		values := make(ArrayLiteral, 0, len(vd.Values))
		for _, e := range vd.Values {
			v, err := e.build()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	case "annotation":
		if vd.Annotation == nil {
			return nil, fmt.Errorf("annotation literal without annotation")
		}
		u, err := vd.Annotation.build()
		if err != nil {
			return nil, err
		}
		return AnnotationLiteral{Use: u}, nil
	default:
		return nil, fmt.Errorf("unknown literal kind %q", vd.Kind)
	}
}

// isNumber accepts Java numeric literal text, including L/F/D suffixes and
// hex or octal integers.
func isNumber(s string) bool {
	if _, err := strconv.ParseInt(strings.TrimRight(s, "lL"), 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimRight(s, "fFdD"), 64)
	return err == nil
}
