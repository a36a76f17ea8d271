// Package extract serializes elements at a requested detail level, reusing
// the mapping registry for every parameter resolution.
package extract

import (
	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/mapping"
)

// Extractor turns host elements into ElementInfo payloads.
type Extractor struct {
	registry *mapping.Registry
}

// New creates an extractor over the given registry.
func New(reg *mapping.Registry) *Extractor {
	return &Extractor{registry: reg}
}

// Element serializes one element. Basic emits identity only; standard adds
// the category's curated common parameters; full adds every mapped name plus
// the shared identity fields. A parameter that does not resolve is omitted,
// never an error.
func (x *Extractor) Element(e host.Element, level domain.DetailLevel) domain.ElementInfo {
	info := domain.ElementInfo{
		ID:       e.ID(),
		Name:     e.Name(),
		Category: e.Category(),
		IsType:   e.IsType(),
	}
	if t, ok := e.Type(); ok {
		info.TypeName = t.Name()
	}
	if level == domain.DetailBasic || level == "" {
		return info
	}

	names := x.registry.CommonParameterNames(e.Category())
	if level == domain.DetailFull {
		if m, ok := x.registry.Mapping(e.Category()); ok {
			names = m.MappedNames()
		}
		names = append(names, "mark", "comments", "type name", "family name", "phase created", "phase demolished")
	}

	info.Parameters = make(map[string]domain.ParameterValue)
	for _, name := range names {
		if _, seen := info.Parameters[name]; seen {
			continue
		}
		v, err := x.registry.GetParameter(e, name, e.Category())
		if err != nil {
			// Unresolvable names are omitted, not errors.
			continue
		}
		info.Parameters[name] = v
	}
	if len(info.Parameters) == 0 {
		info.Parameters = nil
	}
	return info
}

// Elements serializes a batch at one detail level.
func (x *Extractor) Elements(elems []host.Element, level domain.DetailLevel) []domain.ElementInfo {
	out := make([]domain.ElementInfo, 0, len(elems))
	for _, e := range elems {
		out = append(out, x.Element(e, level))
	}
	return out
}
