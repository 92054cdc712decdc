package catalog

import (
	"fmt"
	"slices"
)

// Metadata describes where an operation sits in the curriculum.
type Metadata struct {
	Category Category
	Grades   []string
	Tags     []string
}

// DefaultMetadata is reported for operations missing from the registry.
func DefaultMetadata() Metadata {
	return Metadata{Category: CategoryCore, Grades: []string{"3"}, Tags: []string{}}
}

type entry struct {
	Op   Operation
	Meta Metadata
}

// registry holds the operation table with precomputed indices.
type registry struct {
	entries    []entry
	byOp       map[Operation]*entry
	byCategory map[Category][]Operation
	byGrade    map[string][]Operation
}

// r is the package-level registry singleton, set by init() in seed.go.
var r *registry

// buildRegistry constructs the registry indices from the seed table.
// Table order is preserved inside every index.
func buildRegistry(entries []entry) *registry {
	reg := &registry{
		entries:    entries,
		byOp:       make(map[Operation]*entry, len(entries)),
		byCategory: make(map[Category][]Operation),
		byGrade:    make(map[string][]Operation),
	}
	for i := range reg.entries {
		e := &reg.entries[i]
		if _, dup := reg.byOp[e.Op]; !dup {
			reg.byOp[e.Op] = e
		}
		reg.byCategory[e.Meta.Category] = append(reg.byCategory[e.Meta.Category], e.Op)
		for _, g := range e.Meta.Grades {
			reg.byGrade[g] = append(reg.byGrade[g], e.Op)
		}
	}
	return reg
}

// Lookup returns the metadata of a registered operation.
func Lookup(op Operation) (Metadata, bool) {
	e, ok := r.byOp[op]
	if !ok {
		return Metadata{}, false
	}
	return cloneMetadata(e.Meta), true
}

// MetadataFor returns the operation's metadata, or DefaultMetadata when the
// operation is not registered.
func MetadataFor(op Operation) Metadata {
	if m, ok := Lookup(op); ok {
		return m
	}
	return DefaultMetadata()
}

// GetOperation resolves a raw key to a registered operation.
func GetOperation(key string) (Operation, error) {
	op := Operation(key)
	if _, ok := r.byOp[op]; !ok {
		return "", fmt.Errorf("operation not found: %q", key)
	}
	return op, nil
}

// AllOperations returns every registered operation in category order.
func AllOperations() []Operation {
	ops := make([]Operation, 0, len(r.entries))
	for _, c := range AllCategories() {
		ops = append(ops, r.byCategory[c]...)
	}
	return ops
}

// ByCategory returns the operations of a category in table order.
func ByCategory(c Category) []Operation {
	return slices.Clone(r.byCategory[c])
}

// ByGrade returns the operations suggested for a grade label, in table order.
func ByGrade(grade string) []Operation {
	return slices.Clone(r.byGrade[grade])
}

// Validate checks the registry for structural issues.
func Validate() error {
	return validateEntries(r.entries)
}

func cloneMetadata(m Metadata) Metadata {
	out := Metadata{Category: m.Category, Grades: slices.Clone(m.Grades), Tags: slices.Clone(m.Tags)}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}
