// Package mapping implements category-aware parameter resolution: user-facing
// parameter names are alias-resolved to canonical names, located in
// per-category or shared lookup tables (instance level before type level), and
// unit-normalized per field. Tables are built once at startup and never
// mutated, so a shared reference is safe for concurrent reads.
package mapping

import (
	"sort"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/units"
)

// CategoryMapping holds the lookup tables for one element category: canonical
// name -> field location (instance and type level separately), alias ->
// canonical name(s), a curated ordered list of common parameter names, and
// per-name unit-conversion rules. Within one mapping a canonical name has at
// most one instance location and at most one type location; instance wins.
type CategoryMapping struct {
	category  domain.Category
	instance  map[string]host.FieldID
	typeLevel map[string]host.FieldID
	aliases   map[string][]string
	common    []string
	rules     map[string]units.Rule
}

// NewCategoryMapping starts a mapping for one category. The builder methods
// are only called during registry construction; the finished mapping is
// read-only.
func NewCategoryMapping(cat domain.Category) *CategoryMapping {
	return &CategoryMapping{
		category:  cat,
		instance:  make(map[string]host.FieldID),
		typeLevel: make(map[string]host.FieldID),
		aliases:   make(map[string][]string),
		rules:     make(map[string]units.Rule),
	}
}

// Instance registers an instance-level field location.
func (m *CategoryMapping) Instance(name string, field host.FieldID) *CategoryMapping {
	m.instance[domain.NormalizeParameterName(name)] = field
	return m
}

// Type registers a type-level field location.
func (m *CategoryMapping) Type(name string, field host.FieldID) *CategoryMapping {
	m.typeLevel[domain.NormalizeParameterName(name)] = field
	return m
}

// Alias registers an alias for one or more canonical names. Multi-name
// aliases are the documented special-case expansions; callers must handle the
// list form.
func (m *CategoryMapping) Alias(alias string, canonical ...string) *CategoryMapping {
	names := make([]string, len(canonical))
	for i, c := range canonical {
		names[i] = domain.NormalizeParameterName(c)
	}
	m.aliases[domain.NormalizeParameterName(alias)] = names
	return m
}

// Common sets the curated ordered list of common parameter names.
func (m *CategoryMapping) Common(names ...string) *CategoryMapping {
	for _, n := range names {
		m.common = append(m.common, domain.NormalizeParameterName(n))
	}
	return m
}

// Rule registers the unit-conversion rule for a canonical name. Names without
// a rule convert by identity.
func (m *CategoryMapping) Rule(name string, r units.Rule) *CategoryMapping {
	m.rules[domain.NormalizeParameterName(name)] = r
	return m
}

// Category returns the mapped category.
func (m *CategoryMapping) Category() domain.Category { return m.category }

// InstanceField returns the instance-level field for a canonical name.
func (m *CategoryMapping) InstanceField(name string) (host.FieldID, bool) {
	f, ok := m.instance[domain.NormalizeParameterName(name)]
	return f, ok
}

// TypeField returns the type-level field for a canonical name.
func (m *CategoryMapping) TypeField(name string) (host.FieldID, bool) {
	f, ok := m.typeLevel[domain.NormalizeParameterName(name)]
	return f, ok
}

// ResolveAlias returns the canonical names an alias expands to, or nil when
// the key has no alias in this mapping.
func (m *CategoryMapping) ResolveAlias(key string) []string {
	names, ok := m.aliases[domain.NormalizeParameterName(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// CommonNames returns the curated common parameter list in order.
func (m *CategoryMapping) CommonNames() []string {
	out := make([]string, len(m.common))
	copy(out, m.common)
	return out
}

// Aliases returns a copy of the alias table.
func (m *CategoryMapping) Aliases() map[string][]string {
	out := make(map[string][]string, len(m.aliases))
	for k, v := range m.aliases {
		names := make([]string, len(v))
		copy(names, v)
		out[k] = names
	}
	return out
}

// ConversionRule returns the unit rule for a canonical name, if one is
// registered.
func (m *CategoryMapping) ConversionRule(name string) (units.Rule, bool) {
	r, ok := m.rules[domain.NormalizeParameterName(name)]
	return r, ok
}

// MappedNames returns every canonical name with a location, sorted, instance
// names first.
func (m *CategoryMapping) MappedNames() []string {
	seen := make(map[string]bool, len(m.instance)+len(m.typeLevel))
	var inst, typ []string
	for n := range m.instance {
		inst = append(inst, n)
		seen[n] = true
	}
	for n := range m.typeLevel {
		if !seen[n] {
			typ = append(typ, n)
		}
	}
	sort.Strings(inst)
	sort.Strings(typ)
	return append(inst, typ...)
}
