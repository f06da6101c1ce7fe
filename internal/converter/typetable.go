package converter

import (
	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

// TypeTable is the nominal-name lookup: java class names with an idiomatic
// kotlin counterpart. Names missing from the table are best-guessed, i.e.
// used as-is. A TypeTable is never mutated after construction.
type TypeTable struct {
	known map[string]kotlinpoet.ClassName
}

var javaToKotlin = map[string]kotlinpoet.ClassName{
	"java.lang.String":     kotlinpoet.String,
	"java.lang.Integer":    kotlinpoet.Int,
	"java.lang.Double":     kotlinpoet.Double,
	"java.lang.Float":      kotlinpoet.Float,
	"java.lang.Byte":       kotlinpoet.Byte,
	"java.lang.Short":      kotlinpoet.Short,
	"java.lang.Long":       kotlinpoet.Long,
	"java.lang.Boolean":    kotlinpoet.Boolean,
	"java.lang.Iterable":   kotlinpoet.Iterable,
	"java.util.Collection": kotlinpoet.Collection,
	"java.util.List":       kotlinpoet.List,
	"java.util.Set":        kotlinpoet.Set,
	"java.util.Map":        kotlinpoet.Map,
	"java.lang.Object":     kotlinpoet.Any,
}

// DefaultTypeTable maps java.lang boxed primitives, String, Object and the
// java.util collection interfaces.
func DefaultTypeTable() TypeTable {
	return NewTypeTable(javaToKotlin)
}

// EmptyTypeTable best-guesses every name.
func EmptyTypeTable() TypeTable {
	return TypeTable{}
}

func NewTypeTable(entries map[string]kotlinpoet.ClassName) TypeTable {
	known := make(map[string]kotlinpoet.ClassName, len(entries))
	for k, v := range entries {
		known[k] = v
	}
	return TypeTable{known: known}
}

// With returns a copy of t extended with java → kotlin fully qualified name
// mappings. Later entries override table entries.
func (t TypeTable) With(mappings map[string]string) TypeTable {
	if len(mappings) == 0 {
		return t
	}
	out := NewTypeTable(t.known)
	for from, to := range mappings {
		out.known[from] = kotlinpoet.BestGuess(to)
	}
	return out
}

// Lookup reports the table entry for fullName.
func (t TypeTable) Lookup(fullName string) (kotlinpoet.ClassName, bool) {
	c, ok := t.known[fullName]
	return c, ok
}

// ClassName resolves fullName through the table, falling back to BestGuess.
func (t TypeTable) ClassName(fullName string) kotlinpoet.ClassName {
	if c, ok := t.known[fullName]; ok {
		return c
	}
	return kotlinpoet.BestGuess(fullName)
}

func (t TypeTable) Len() int { return len(t.known) }
