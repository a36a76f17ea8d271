// Package host defines the boundary with the building-model host. The host's
// object model (elements, categories, parameters, geometry) is consumed as
// opaque types behind these interfaces; the real host binding lives outside
// this process, and memdoc provides the in-memory implementation used by tests
// and development mode.
package host

import (
	"revos/internal/domain"
)

// FieldID is an opaque handle identifying a built-in parameter field. It is
// meaningful only to the host object model.
type FieldID string

// Point is a location in internal units.
type Point struct {
	X, Y, Z float64
}

// Parameter is one parameter slot on an element or type.
type Parameter interface {
	// Kind is the host's storage classification for this parameter.
	Kind() domain.StorageKind
	// HasValue reports whether the slot currently holds a value.
	HasValue() bool
	Double() float64
	Integer() int64
	String() string
	// Display is the host's formatted value string, when one exists.
	Display() string
	// Set writes a value. Fails outside a transaction or on a read-only slot.
	Set(v domain.ParameterValue) error
}

// Element is one element (instance or type) in the document.
type Element interface {
	ID() int64
	Name() string
	Category() domain.Category
	// ClassName is the host's class for the element, e.g. "Wall" or
	// "FamilyInstance".
	ClassName() string
	IsType() bool
	// Type returns the element's type element, when it has one.
	Type() (Element, bool)
	// Parameter looks up a parameter by built-in field handle.
	Parameter(field FieldID) (Parameter, bool)
	// ParameterByName looks up a parameter by its user-visible display name.
	ParameterByName(name string) (Parameter, bool)
	// BoundingBox returns the element's extent in internal units, when the
	// element has geometry.
	BoundingBox() (domain.BoundingBox, bool)
	// FamilySymbolID returns the family type the instance was placed from.
	FamilySymbolID() (int64, bool)
}

// Level is a level element with its elevation data.
type Level interface {
	ID() int64
	Name() string
	// Elevation is the raw stored elevation, which may already be relative to
	// an elevation base.
	Elevation() float64
	// ProjectElevation is the elevation normalized to the project base.
	ProjectElevation() float64
}

// Transaction scopes document mutations with commit-or-rollback semantics.
type Transaction interface {
	Start() error
	Commit() error
	// Rollback undoes every mutation recorded since Start.
	Rollback() error
}

// Document is the host building model for one session.
type Document interface {
	// Elements returns every element, instances and types both.
	Elements() []Element
	// Element looks up a single element by ID.
	Element(id int64) (Element, bool)
	// ElementsByCategory returns elements of one category (instances and
	// types both; callers split by IsType).
	ElementsByCategory(cat domain.Category) []Element
	// KnownClasses lists the host class names present in the document's
	// schema, used to validate class-name filters.
	KnownClasses() []string
	// FamilySymbol resolves a family-type reference; ok is false for a
	// dangling ID or an element that is not a family type.
	FamilySymbol(id int64) (Element, bool)
	// Levels returns all levels in the document.
	Levels() []Level
	// BasePoint is the project base point position.
	BasePoint() Point
	// SurveyPoint is the survey point position.
	SurveyPoint() Point
	// NewTransaction opens a named transaction scope. Mutations outside a
	// started transaction fail.
	NewTransaction(name string) Transaction
	// OverrideElementColor applies a graphics color override to one element.
	// Must run inside a transaction.
	OverrideElementColor(id int64, c domain.Color) error
}
