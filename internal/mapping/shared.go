package mapping

import (
	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/units"
)

// SharedMapping is the cross-category fallback table for fields that are
// structurally identical across most categories: identity data, phasing,
// marks and comments. It is consulted after the category-specific mapping
// misses.
type SharedMapping struct {
	instance  map[string]host.FieldID
	typeLevel map[string]host.FieldID
	aliases   map[string][]string
	rules     map[string]units.Rule
}

// NewSharedMapping builds the shared fallback table.
func NewSharedMapping() *SharedMapping {
	s := &SharedMapping{
		instance: map[string]host.FieldID{
			"mark":             "ALL_MODEL_MARK",
			"comments":         "ALL_MODEL_INSTANCE_COMMENTS",
			"phase created":    "PHASE_CREATED",
			"phase demolished": "PHASE_DEMOLISHED",
			"image":            "ALL_MODEL_IMAGE",
		},
		typeLevel: map[string]host.FieldID{
			"type name":     "SYMBOL_NAME_PARAM",
			"family name":   "SYMBOL_FAMILY_NAME_PARAM",
			"type mark":     "ALL_MODEL_TYPE_MARK",
			"type comments": "ALL_MODEL_TYPE_COMMENTS",
			"description":   "ALL_MODEL_DESCRIPTION",
			"manufacturer":  "ALL_MODEL_MANUFACTURER",
			"model":         "ALL_MODEL_MODEL",
			"cost":          "ALL_MODEL_COST",
			"url":           "ALL_MODEL_URL",
			"keynote":       "KEYNOTE_PARAM",
			"assembly code": "UNIFORMAT_CODE",
		},
		aliases: map[string][]string{
			// One-to-many expansion: "phase" names two real fields and must
			// be expanded by the caller, never treated as a single lookup.
			"phase":      {"phase created", "phase demolished"},
			"note":       {"comments"},
			"notes":      {"comments"},
			"comment":    {"comments"},
			"tag":        {"mark"},
			"family":     {"family name"},
			"type":       {"type name"},
			"maker":      {"manufacturer"},
			"price":      {"cost"},
			"link":       {"url"},
			"created":    {"phase created"},
			"demolished": {"phase demolished"},
		},
		rules: map[string]units.Rule{
			"cost": {Class: units.ClassCurrency},
		},
	}
	return s
}

// InstanceField returns the shared instance-level field for a canonical name.
func (s *SharedMapping) InstanceField(name string) (host.FieldID, bool) {
	f, ok := s.instance[domain.NormalizeParameterName(name)]
	return f, ok
}

// TypeField returns the shared type-level field for a canonical name.
func (s *SharedMapping) TypeField(name string) (host.FieldID, bool) {
	f, ok := s.typeLevel[domain.NormalizeParameterName(name)]
	return f, ok
}

// ResolveAlias returns the canonical names a shared alias expands to, or nil.
func (s *SharedMapping) ResolveAlias(key string) []string {
	names, ok := s.aliases[domain.NormalizeParameterName(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ConversionRule returns the shared unit rule for a canonical name.
func (s *SharedMapping) ConversionRule(name string) (units.Rule, bool) {
	r, ok := s.rules[domain.NormalizeParameterName(name)]
	return r, ok
}
