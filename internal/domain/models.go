package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Epsilon is the tolerance used for numeric comparisons in internal units. It
// absorbs floating-point noise in predicate evaluation and view-range checks.
const Epsilon = 0.001

// ParameterValue is the discriminated result of a parameter resolution. At most
// one of the four value fields is set; EmptyReason explains an absent value.
// Raw numeric values are always in internal units (feet, radians).
type ParameterValue struct {
	Kind        StorageKind `json:"kind"`
	Double      *float64    `json:"double,omitempty"`
	Integer     *int64      `json:"integer,omitempty"`
	Str         *string     `json:"string,omitempty"`
	Bool        *bool       `json:"bool,omitempty"`
	Display     string      `json:"display,omitempty"`
	EmptyReason string      `json:"empty_reason,omitempty"`
}

// DoubleValue wraps a float in a ParameterValue.
func DoubleValue(v float64) ParameterValue {
	return ParameterValue{Kind: StorageDouble, Double: &v}
}

// IntegerValue wraps an integer in a ParameterValue.
func IntegerValue(v int64) ParameterValue {
	return ParameterValue{Kind: StorageInteger, Integer: &v}
}

// StringValue wraps a string in a ParameterValue.
func StringValue(v string) ParameterValue {
	return ParameterValue{Kind: StorageString, Str: &v}
}

// BoolValue wraps a boolean in a ParameterValue.
func BoolValue(v bool) ParameterValue {
	return ParameterValue{Kind: StorageInteger, Bool: &v}
}

// EmptyValue returns a ParameterValue carrying only an empty reason.
func EmptyValue(reason string) ParameterValue {
	return ParameterValue{Kind: StorageNone, EmptyReason: reason}
}

// HasValue reports whether any of the four variants is populated.
func (p ParameterValue) HasValue() bool {
	return p.Double != nil || p.Integer != nil || p.Str != nil || p.Bool != nil
}

// AsFloat returns the value as a float64 when the variant is numeric.
func (p ParameterValue) AsFloat() (float64, bool) {
	switch {
	case p.Double != nil:
		return *p.Double, true
	case p.Integer != nil:
		return float64(*p.Integer), true
	case p.Bool != nil:
		if *p.Bool {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsString returns a string rendering of the value, preferring the display
// string when one exists.
func (p ParameterValue) AsString() string {
	if p.Display != "" {
		return p.Display
	}
	switch {
	case p.Str != nil:
		return *p.Str
	case p.Double != nil:
		return strconv.FormatFloat(*p.Double, 'f', -1, 64)
	case p.Integer != nil:
		return strconv.FormatInt(*p.Integer, 10)
	case p.Bool != nil:
		return strconv.FormatBool(*p.Bool)
	}
	return ""
}

// ParameterFilter is a single predicate over a named parameter. ValueType, when
// set, declares how the literal value should be coerced ("number", "string",
// "boolean"); otherwise the parameter's own storage kind decides.
type ParameterFilter struct {
	Name      string      `json:"name"`
	Operator  string      `json:"operator"`
	Value     interface{} `json:"value"`
	ValueType string      `json:"valueType,omitempty"`
}

// BoundingBoxMM is an axis-aligned box supplied by clients in millimeters.
type BoundingBoxMM struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MinZ float64 `json:"min_z"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
	MaxZ float64 `json:"max_z"`
}

// BoundingBox is an axis-aligned box in internal units (feet).
type BoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Intersects reports whether two boxes overlap (inclusive of touching faces).
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY &&
		b.MinZ <= o.MaxZ && b.MaxZ >= o.MinZ
}

// FilterCriteria describes an element query: the stage-A base filters plus the
// stage-B parameter predicates. Category and ClassNames narrow by kind,
// FamilySymbolIDs by family type, BoundingBox spatially. Types and instances
// are queried as separate passes and unioned when both are requested.
type FilterCriteria struct {
	Category         string            `json:"category,omitempty"`
	ClassNames       []string          `json:"class_names,omitempty"`
	FamilySymbolIDs  []int64           `json:"family_symbol_ids,omitempty"`
	ElementIDs       []int64           `json:"element_ids,omitempty"`
	BoundingBox      *BoundingBoxMM    `json:"bounding_box,omitempty"`
	IncludeInstances *bool             `json:"include_instances,omitempty"`
	IncludeTypes     bool              `json:"include_types,omitempty"`
	ParameterFilters []ParameterFilter `json:"parameter_filters,omitempty"`
	Query            string            `json:"query,omitempty"`
	Limit            int               `json:"limit,omitempty"`
}

// WantInstances reports whether instance elements should be returned.
// Instances are included unless explicitly disabled.
func (c FilterCriteria) WantInstances() bool {
	return c.IncludeInstances == nil || *c.IncludeInstances
}

// Warning is a non-fatal configuration concern returned alongside a success
// result. Warnings never block an operation.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// BatchItemResult records the outcome of one element in a batch operation. A
// failing element never aborts the batch; its error lands here instead.
type BatchItemResult struct {
	ElementID int64  `json:"element_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// ElementInfo is the serialized form of one element at a given detail level.
type ElementInfo struct {
	ID         int64                     `json:"id"`
	Name       string                    `json:"name"`
	Category   Category                  `json:"category"`
	IsType     bool                      `json:"is_type,omitempty"`
	TypeName   string                    `json:"type_name,omitempty"`
	Parameters map[string]ParameterValue `json:"parameters,omitempty"`
}

// TabularResult re-encodes a list of ElementInfo grouped by value: properties
// shared by every element are hoisted into Common once, varying properties
// become name -> {elementID -> value} maps. Same data, smaller payload.
type TabularResult struct {
	ElementIDs []int64                      `json:"element_ids"`
	Common     map[string]string            `json:"common"`
	Varying    map[string]map[string]string `json:"varying"`
}

// ViewRangePlane is one elevation boundary of a plan view's visible slice.
// LevelID may be a real level, LevelUnlimited, or LevelBelow.
type ViewRangePlane struct {
	Kind    PlaneKind `json:"kind"`
	LevelID int64     `json:"level_id"`
	Offset  float64   `json:"offset"`
}

// Sentinel level references for view-range planes.
const (
	// LevelUnlimited marks a plane with no level bound; it is exempt from
	// ordering validation.
	LevelUnlimited int64 = -1
	// LevelBelow marks a plane bound to the nearest level under the view's
	// own reference level, resolved dynamically.
	LevelBelow int64 = -2
)

// Unlimited reports whether the plane has the unlimited sentinel reference.
func (p ViewRangePlane) Unlimited() bool {
	return p.LevelID == LevelUnlimited
}

// ViewRangeConfig holds the four planes of a plan view plus the view's own
// reference level, needed to resolve LevelBelow.
type ViewRangeConfig struct {
	ViewLevelID int64          `json:"view_level_id"`
	Top         ViewRangePlane `json:"top"`
	Cut         ViewRangePlane `json:"cut"`
	Bottom      ViewRangePlane `json:"bottom"`
	ViewDepth   ViewRangePlane `json:"view_depth"`
}

// Color is an RGB override color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CommandLog is one recorded automation command, persisted for auditing.
type CommandLog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RequestID  string    `json:"request_id" db:"request_id"`
	Tool       string    `json:"tool" db:"tool"`
	Method     string    `json:"method" db:"method"`
	Status     int       `json:"status" db:"status"`
	Success    bool      `json:"success" db:"success"`
	Message    string    `json:"message,omitempty" db:"message"`
	DurationMS int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NormalizeParameterName lowercases and collapses whitespace so lookups are
// case-insensitive.
func NormalizeParameterName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
