package mapping

import (
	"fmt"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/units"
)

// Registry orchestrates parameter resolution across the category mappings,
// the shared mapping, and the host's generic name lookup. Built once at
// startup and injected read-only; safe for concurrent reads.
type Registry struct {
	categories map[domain.Category]*CategoryMapping
	shared     *SharedMapping
}

// NewRegistry builds the registry with every category mapping registered.
func NewRegistry() *Registry {
	r := &Registry{
		categories: make(map[domain.Category]*CategoryMapping),
		shared:     NewSharedMapping(),
	}
	for _, m := range allCategoryMappings() {
		r.categories[m.Category()] = m
	}
	return r
}

// HasMapping reports whether the category has a registered mapping.
func (r *Registry) HasMapping(cat domain.Category) bool {
	_, ok := r.categories[cat]
	return ok
}

// Mapping returns the category mapping, if registered.
func (r *Registry) Mapping(cat domain.Category) (*CategoryMapping, bool) {
	m, ok := r.categories[cat]
	return m, ok
}

// CommonParameterNames returns the curated common list for a category, empty
// for unregistered categories.
func (r *Registry) CommonParameterNames(cat domain.Category) []string {
	m, ok := r.categories[cat]
	if !ok {
		return nil
	}
	return m.CommonNames()
}

// Aliases returns the alias table for a category, empty for unregistered
// categories.
func (r *Registry) Aliases(cat domain.Category) map[string][]string {
	m, ok := r.categories[cat]
	if !ok {
		return map[string][]string{}
	}
	return m.Aliases()
}

// ExpandAlias resolves a user-facing key to its canonical names, in order:
// the category alias table, then the shared alias table, then the key itself.
// The result always has at least one entry; more than one marks a documented
// special-case expansion the caller must handle.
func (r *Registry) ExpandAlias(cat domain.Category, key string) []string {
	if m, ok := r.categories[cat]; ok {
		if names := m.ResolveAlias(key); names != nil {
			return names
		}
	}
	if names := r.shared.ResolveAlias(key); names != nil {
		return names
	}
	return []string{domain.NormalizeParameterName(key)}
}

// GetParameter resolves a parameter on an element. Fixed precedence, never
// reordered: category mapping (instance then type field), shared mapping
// (instance then type field), then the host's generic name lookup on the
// instance and finally on its type. A miss returns ErrParameterNotFound and
// must be treated as "parameter absent", not as failure. When the key is a
// multi-name alias, the names are probed in expansion order and the first hit
// wins; callers needing stricter handling expand the alias themselves.
func (r *Registry) GetParameter(e host.Element, key string, cat domain.Category) (domain.ParameterValue, error) {
	names := r.ExpandAlias(cat, key)

	if m, ok := r.categories[cat]; ok {
		for _, name := range names {
			if f, ok := m.InstanceField(name); ok {
				if p, ok := e.Parameter(f); ok {
					return ReadValue(p), nil
				}
			}
			if f, ok := m.TypeField(name); ok {
				if p, ok := probeType(e, f); ok {
					return ReadValue(p), nil
				}
			}
		}
	}

	for _, name := range names {
		if f, ok := r.shared.InstanceField(name); ok {
			if p, ok := e.Parameter(f); ok {
				return ReadValue(p), nil
			}
		}
		if f, ok := r.shared.TypeField(name); ok {
			if p, ok := probeType(e, f); ok {
				return ReadValue(p), nil
			}
		}
	}

	for _, name := range names {
		if p, ok := e.ParameterByName(name); ok {
			return ReadValue(p), nil
		}
		if t, ok := e.Type(); ok {
			if p, ok := t.ParameterByName(name); ok {
				return ReadValue(p), nil
			}
		}
	}

	return domain.ParameterValue{}, fmt.Errorf("%w: %q on category %s", domain.ErrParameterNotFound, key, cat)
}

// FindParameter resolves the writable host parameter slot for a key, using
// the same precedence as GetParameter. Used by set operations.
func (r *Registry) FindParameter(e host.Element, key string, cat domain.Category) (host.Parameter, bool) {
	names := r.ExpandAlias(cat, key)

	if m, ok := r.categories[cat]; ok {
		for _, name := range names {
			if f, ok := m.InstanceField(name); ok {
				if p, ok := e.Parameter(f); ok {
					return p, true
				}
			}
			if f, ok := m.TypeField(name); ok {
				if p, ok := probeType(e, f); ok {
					return p, true
				}
			}
		}
	}
	for _, name := range names {
		if f, ok := r.shared.InstanceField(name); ok {
			if p, ok := e.Parameter(f); ok {
				return p, true
			}
		}
		if f, ok := r.shared.TypeField(name); ok {
			if p, ok := probeType(e, f); ok {
				return p, true
			}
		}
	}
	for _, name := range names {
		if p, ok := e.ParameterByName(name); ok {
			return p, true
		}
		if t, ok := e.Type(); ok {
			if p, ok := t.ParameterByName(name); ok {
				return p, true
			}
		}
	}
	return nil, false
}

// ConvertValue normalizes a raw user-supplied value for a key into internal
// units using the category mapping's rule. Keys without a registered rule
// (and unregistered categories) convert by identity; that default is
// intentional, not a fallback error.
func (r *Registry) ConvertValue(cat domain.Category, key string, raw interface{}) (interface{}, error) {
	names := r.ExpandAlias(cat, key)
	if m, ok := r.categories[cat]; ok {
		for _, name := range names {
			if rule, ok := m.ConversionRule(name); ok {
				return rule.Convert(raw)
			}
		}
	}
	for _, name := range names {
		if rule, ok := r.shared.ConversionRule(name); ok {
			return rule.Convert(raw)
		}
	}
	return raw, nil
}

// ConversionRule returns the unit rule in effect for a key on a category.
func (r *Registry) ConversionRule(cat domain.Category, key string) (units.Rule, bool) {
	names := r.ExpandAlias(cat, key)
	if m, ok := r.categories[cat]; ok {
		for _, name := range names {
			if rule, ok := m.ConversionRule(name); ok {
				return rule, true
			}
		}
	}
	for _, name := range names {
		if rule, ok := r.shared.ConversionRule(name); ok {
			return rule, true
		}
	}
	return units.Rule{}, false
}

func probeType(e host.Element, f host.FieldID) (host.Parameter, bool) {
	if e.IsType() {
		return e.Parameter(f)
	}
	t, ok := e.Type()
	if !ok {
		return nil, false
	}
	return t.Parameter(f)
}

// ReadValue converts a host parameter slot into the domain value union.
func ReadValue(p host.Parameter) domain.ParameterValue {
	if !p.HasValue() {
		v := domain.EmptyValue("parameter has no value")
		v.Display = p.Display()
		return v
	}
	var v domain.ParameterValue
	switch p.Kind() {
	case domain.StorageDouble:
		v = domain.DoubleValue(p.Double())
	case domain.StorageInteger:
		v = domain.IntegerValue(p.Integer())
	case domain.StorageString:
		v = domain.StringValue(p.String())
	case domain.StorageElementRef:
		v = domain.IntegerValue(p.Integer())
		v.Kind = domain.StorageElementRef
	default:
		v = domain.EmptyValue("unsupported storage kind")
	}
	v.Display = p.Display()
	return v
}
