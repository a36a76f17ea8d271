// Package filter implements the two-stage element query pipeline: a base
// query over category, class, family type and spatial bounds, followed by a
// post-filtering pass of parameter predicates that the host's native query
// system cannot express.
package filter

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/mapping"
	"revos/internal/units"
)

// Pipeline composes and evaluates element filters against a document.
type Pipeline struct {
	registry *mapping.Registry
}

// NewPipeline creates a pipeline over the given mapping registry.
func NewPipeline(reg *mapping.Registry) *Pipeline {
	return &Pipeline{registry: reg}
}

// Filter runs both stages and returns the surviving elements plus any
// non-fatal warnings. Malformed criteria (unknown category or class name,
// ambiguous alias predicates, bad operators) reject the whole request.
func (p *Pipeline) Filter(doc host.Document, c domain.FilterCriteria) ([]host.Element, []domain.Warning, error) {
	var warnings []domain.Warning

	base, err := p.buildBase(doc, c)
	if err != nil {
		return nil, nil, err
	}

	// Stage A runs as separate instance and type passes, unioned. "Types or
	// instances" is never expressed as one combined predicate.
	var survivors []host.Element
	if c.WantInstances() {
		for _, e := range base.candidates(doc) {
			if !e.IsType() && base.matches(e) {
				survivors = append(survivors, e)
			}
		}
	}
	if c.IncludeTypes {
		for _, e := range base.candidates(doc) {
			if e.IsType() && base.matches(e) {
				survivors = append(survivors, e)
			}
		}
	}
	warnings = append(warnings, base.warnings...)

	// Stage B: conjunctive parameter predicates.
	preds := c.ParameterFilters
	if len(preds) == 0 && strings.TrimSpace(c.Query) != "" {
		var qw []domain.Warning
		preds, qw = ParseQuery(c.Query)
		warnings = append(warnings, qw...)
	}
	cat, _ := domain.ParseCategory(c.Category)
	compiled, err := p.compilePredicates(cat, preds)
	if err != nil {
		return nil, nil, err
	}
	if len(compiled) > 0 {
		filtered := survivors[:0]
		for _, e := range survivors {
			if p.evalAll(e, cat, compiled) {
				filtered = append(filtered, e)
			}
		}
		survivors = filtered
	}

	if c.Limit > 0 && len(survivors) > c.Limit {
		warnings = append(warnings, domain.Warning{
			Code:    "RESULT_TRUNCATED",
			Message: fmt.Sprintf("result truncated to first %d of %d elements", c.Limit, len(survivors)),
		})
		survivors = survivors[:c.Limit]
	}
	return survivors, warnings, nil
}

// baseQuery holds the compiled stage-A filters.
type baseQuery struct {
	category      domain.Category
	hasCategory   bool
	classNames    map[string]bool
	familySymbols map[int64]bool
	useFamily     bool
	elementIDs    map[int64]bool
	bbox          *domain.BoundingBox
	warnings      []domain.Warning
}

func (p *Pipeline) buildBase(doc host.Document, c domain.FilterCriteria) (*baseQuery, error) {
	q := &baseQuery{}

	if strings.TrimSpace(c.Category) != "" {
		cat, ok := domain.ParseCategory(c.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %q", domain.ErrInvalidFilter, domain.ErrUnknownCategory, c.Category)
		}
		q.category = cat
		q.hasCategory = true
	}

	if len(c.ClassNames) > 0 {
		q.classNames = make(map[string]bool)
		for _, name := range c.ClassNames {
			resolved, err := resolveClassName(doc, name)
			if err != nil {
				// An unresolvable class name fails the whole filter rather
				// than being silently skipped.
				return nil, err
			}
			q.classNames[resolved] = true
		}
	}

	if len(c.FamilySymbolIDs) > 0 {
		q.familySymbols = make(map[int64]bool)
		for _, id := range c.FamilySymbolIDs {
			if _, ok := doc.FamilySymbol(id); !ok {
				// A dangling or wrong-kind family reference is logged and
				// excluded; it is not fatal.
				log.Printf("filter: family symbol %d does not resolve, excluding from filter", id)
				q.warnings = append(q.warnings, domain.Warning{
					Code:    "FAMILY_SYMBOL_SKIPPED",
					Message: fmt.Sprintf("family symbol %d does not resolve and was excluded", id),
				})
				continue
			}
			q.familySymbols[id] = true
		}
		q.useFamily = len(q.familySymbols) > 0
	}

	if len(c.ElementIDs) > 0 {
		q.elementIDs = make(map[int64]bool, len(c.ElementIDs))
		for _, id := range c.ElementIDs {
			q.elementIDs[id] = true
		}
	}

	if c.BoundingBox != nil {
		b := c.BoundingBox
		q.bbox = &domain.BoundingBox{
			MinX: units.MMToFeet(b.MinX), MinY: units.MMToFeet(b.MinY), MinZ: units.MMToFeet(b.MinZ),
			MaxX: units.MMToFeet(b.MaxX), MaxY: units.MMToFeet(b.MaxY), MaxZ: units.MMToFeet(b.MaxZ),
		}
	}
	return q, nil
}

func (q *baseQuery) candidates(doc host.Document) []host.Element {
	if q.hasCategory {
		return doc.ElementsByCategory(q.category)
	}
	return doc.Elements()
}

func (q *baseQuery) matches(e host.Element) bool {
	if q.elementIDs != nil && !q.elementIDs[e.ID()] {
		return false
	}
	if q.classNames != nil && !q.classNames[e.ClassName()] {
		return false
	}
	if q.useFamily {
		id, ok := e.FamilySymbolID()
		if !ok || !q.familySymbols[id] {
			return false
		}
	}
	if q.bbox != nil {
		b, ok := e.BoundingBox()
		if !ok || !b.Intersects(*q.bbox) {
			return false
		}
	}
	return true
}

// resolveClassName matches a requested class against the document's known
// classes, accepting several namespace-qualified spellings: the exact name,
// the last dot-separated segment, and case-insensitive forms of both.
func resolveClassName(doc host.Document, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	short := trimmed
	if i := strings.LastIndex(short, "."); i >= 0 {
		short = short[i+1:]
	}
	for _, known := range doc.KnownClasses() {
		if known == trimmed || known == short || strings.EqualFold(known, short) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %w: cannot resolve element class %q", domain.ErrInvalidFilter, domain.ErrUnknownClass, name)
}

// predicate is a compiled stage-B check.
type predicate struct {
	name      string
	op        domain.Operator
	value     interface{}
	valueType string
}

func (p *Pipeline) compilePredicates(cat domain.Category, filters []domain.ParameterFilter) ([]predicate, error) {
	out := make([]predicate, 0, len(filters))
	for _, f := range filters {
		op, ok := domain.ParseOperator(f.Operator)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported operator %q", domain.ErrInvalidFilter, f.Operator)
		}
		// A one-to-many alias cannot carry a single predicate: requiring one
		// check would silently pick one expansion. Rejected as ambiguous;
		// callers filter on the expanded names instead.
		if names := p.registry.ExpandAlias(cat, f.Name); len(names) > 1 {
			return nil, fmt.Errorf("%w: %w: %q expands to %s; filter on one of those instead",
				domain.ErrInvalidFilter, domain.ErrAmbiguousAlias, f.Name, strings.Join(names, ", "))
		}
		out = append(out, predicate{name: f.Name, op: op, value: f.Value, valueType: f.ValueType})
	}
	return out, nil
}

// evalAll applies every predicate conjunctively. An element whose parameter
// cannot be resolved fails that predicate; resolution failure is never "no
// constraint".
func (p *Pipeline) evalAll(e host.Element, cat domain.Category, preds []predicate) bool {
	for _, pr := range preds {
		v, err := p.registry.GetParameter(e, pr.name, cat)
		if err != nil {
			return false
		}
		ok, err := evalPredicate(v, pr)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func evalPredicate(v domain.ParameterValue, pr predicate) (bool, error) {
	kind := coercionKind(v, pr)
	switch kind {
	case "number":
		lhs, ok := v.AsFloat()
		if !ok {
			return false, nil
		}
		rhs, err := literalFloat(pr.value)
		if err != nil {
			return false, err
		}
		return compareFloat(lhs, rhs, pr.op)
	case "boolean":
		lhs, ok := v.AsFloat()
		if !ok {
			return false, nil
		}
		rhs, err := units.ParseBool(pr.value)
		if err != nil {
			return false, err
		}
		rf := 0.0
		if rhs {
			rf = 1
		}
		return compareFloat(lhs, rf, pr.op)
	default:
		return compareString(v.AsString(), literalString(pr.value), pr.op)
	}
}

// coercionKind picks the common operand type: the declared value type wins,
// otherwise the host's storage classification of the resolved value, with
// string as the final fallback.
func coercionKind(v domain.ParameterValue, pr predicate) string {
	switch strings.ToLower(pr.valueType) {
	case "number", "double", "integer":
		return "number"
	case "boolean", "bool":
		return "boolean"
	case "string", "text":
		return "string"
	}
	if pr.op.IsNumeric() {
		return "number"
	}
	switch v.Kind {
	case domain.StorageDouble, domain.StorageInteger:
		if _, err := literalFloat(pr.value); err == nil {
			return "number"
		}
	}
	return "string"
}

func compareFloat(lhs, rhs float64, op domain.Operator) (bool, error) {
	switch op {
	case domain.OpGreater:
		return lhs > rhs+domain.Epsilon, nil
	case domain.OpLess:
		return lhs < rhs-domain.Epsilon, nil
	case domain.OpGreaterEqual:
		return lhs > rhs-domain.Epsilon, nil
	case domain.OpLessEqual:
		return lhs < rhs+domain.Epsilon, nil
	case domain.OpEqual:
		return math.Abs(lhs-rhs) <= domain.Epsilon, nil
	case domain.OpNotEqual:
		return math.Abs(lhs-rhs) > domain.Epsilon, nil
	}
	return false, fmt.Errorf("operator %q not defined for numbers", op)
}

func compareString(lhs, rhs string, op domain.Operator) (bool, error) {
	l, r := strings.ToLower(lhs), strings.ToLower(rhs)
	switch op {
	case domain.OpEqual:
		return l == r, nil
	case domain.OpNotEqual:
		return l != r, nil
	case domain.OpContains:
		return strings.Contains(l, r), nil
	case domain.OpStartsWith:
		return strings.HasPrefix(l, r), nil
	case domain.OpEndsWith:
		return strings.HasSuffix(l, r), nil
	}
	return false, fmt.Errorf("operator %q not defined for strings", op)
}

func literalFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot compare %q as number", v)
		}
		return f, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot compare %T as number", raw)
}

func literalString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", raw)
}
