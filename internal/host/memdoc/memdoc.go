// Package memdoc is an in-memory implementation of the host document
// boundary. It backs unit tests and the development server; a production
// deployment swaps in the real host binding instead.
package memdoc

import (
	"fmt"
	"sort"

	"revos/internal/domain"
	"revos/internal/host"
)

// Document is an in-memory building model. All access is serialized through
// the event queue, matching the host's single-threaded execution model.
type Document struct {
	elements    map[int64]*Element
	order       []int64
	levels      []*Level
	basePoint   host.Point
	surveyPoint host.Point
	classes     map[string]struct{}
	overrides   map[int64]domain.Color
	activeTx    *Transaction
}

// New creates an empty document.
func New() *Document {
	return &Document{
		elements:  make(map[int64]*Element),
		classes:   make(map[string]struct{}),
		overrides: make(map[int64]domain.Color),
	}
}

// SetBasePoint sets the project base point position.
func (d *Document) SetBasePoint(p host.Point) { d.basePoint = p }

// SetSurveyPoint sets the survey point position.
func (d *Document) SetSurveyPoint(p host.Point) { d.surveyPoint = p }

// AddLevel registers a level.
func (d *Document) AddLevel(id int64, name string, elevation, projectElevation float64) *Level {
	l := &Level{id: id, name: name, elevation: elevation, projectElevation: projectElevation}
	d.levels = append(d.levels, l)
	sort.Slice(d.levels, func(i, j int) bool { return d.levels[i].id < d.levels[j].id })
	return l
}

// AddElement registers an element and returns it for parameter setup.
func (d *Document) AddElement(e *Element) *Element {
	e.doc = d
	d.elements[e.id] = e
	d.order = append(d.order, e.id)
	if e.className != "" {
		d.classes[e.className] = struct{}{}
	}
	return e
}

// Elements returns every element in insertion order.
func (d *Document) Elements() []host.Element {
	out := make([]host.Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Element looks up one element by ID.
func (d *Document) Element(id int64) (host.Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}

// ElementsByCategory returns elements of the given category.
func (d *Document) ElementsByCategory(cat domain.Category) []host.Element {
	var out []host.Element
	for _, id := range d.order {
		if e := d.elements[id]; e.category == cat {
			out = append(out, e)
		}
	}
	return out
}

// KnownClasses lists the class names present in the document.
func (d *Document) KnownClasses() []string {
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FamilySymbol resolves a family-type element reference.
func (d *Document) FamilySymbol(id int64) (host.Element, bool) {
	e, ok := d.elements[id]
	if !ok || !e.isType {
		return nil, false
	}
	return e, true
}

// Levels returns all registered levels.
func (d *Document) Levels() []host.Level {
	out := make([]host.Level, 0, len(d.levels))
	for _, l := range d.levels {
		out = append(out, l)
	}
	return out
}

// BasePoint returns the project base point position.
func (d *Document) BasePoint() host.Point { return d.basePoint }

// SurveyPoint returns the survey point position.
func (d *Document) SurveyPoint() host.Point { return d.surveyPoint }

// ColorOverride reports the current override for an element, for assertions.
func (d *Document) ColorOverride(id int64) (domain.Color, bool) {
	c, ok := d.overrides[id]
	return c, ok
}

// OverrideElementColor applies a graphics override. Requires an open
// transaction.
func (d *Document) OverrideElementColor(id int64, c domain.Color) error {
	if d.activeTx == nil {
		return fmt.Errorf("%w: color override outside transaction", domain.ErrHostOperation)
	}
	if _, ok := d.elements[id]; !ok {
		return fmt.Errorf("%w: element %d", domain.ErrElementNotFound, id)
	}
	prev, had := d.overrides[id]
	d.activeTx.undo = append(d.activeTx.undo, func() {
		if had {
			d.overrides[id] = prev
		} else {
			delete(d.overrides, id)
		}
	})
	d.overrides[id] = c
	return nil
}

// NewTransaction opens a named transaction scope.
func (d *Document) NewTransaction(name string) host.Transaction {
	return &Transaction{doc: d, name: name}
}

// Transaction records undo steps for every mutation so Rollback can restore
// the document exactly.
type Transaction struct {
	doc     *Document
	name    string
	started bool
	undo    []func()
}

// Start begins the transaction. Nested transactions are rejected.
func (t *Transaction) Start() error {
	if t.doc.activeTx != nil {
		return fmt.Errorf("%w: transaction %q already active", domain.ErrHostOperation, t.doc.activeTx.name)
	}
	t.started = true
	t.doc.activeTx = t
	return nil
}

// Commit keeps all mutations and closes the scope.
func (t *Transaction) Commit() error {
	if !t.started {
		return fmt.Errorf("%w: commit before start", domain.ErrHostOperation)
	}
	t.doc.activeTx = nil
	t.started = false
	t.undo = nil
	return nil
}

// Rollback undoes every recorded mutation in reverse order.
func (t *Transaction) Rollback() error {
	if !t.started {
		return nil
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.doc.activeTx = nil
	t.started = false
	t.undo = nil
	return nil
}

// Level is an in-memory level.
type Level struct {
	id               int64
	name             string
	elevation        float64
	projectElevation float64
}

func (l *Level) ID() int64                 { return l.id }
func (l *Level) Name() string              { return l.name }
func (l *Level) Elevation() float64        { return l.elevation }
func (l *Level) ProjectElevation() float64 { return l.projectElevation }

// Element is an in-memory element.
type Element struct {
	doc            *Document
	id             int64
	name           string
	category       domain.Category
	className      string
	isType         bool
	typeID         int64
	familySymbolID int64
	bbox           *domain.BoundingBox
	params         []*Parameter
}

// NewElement builds an element; callers attach parameters with AddParam.
func NewElement(id int64, name string, cat domain.Category, class string) *Element {
	return &Element{id: id, name: name, category: cat, className: class}
}

// AsType marks the element as a type element.
func (e *Element) AsType() *Element { e.isType = true; return e }

// WithType links an instance to its type element.
func (e *Element) WithType(typeID int64) *Element { e.typeID = typeID; return e }

// WithFamilySymbol records the family type the instance was placed from.
func (e *Element) WithFamilySymbol(id int64) *Element { e.familySymbolID = id; return e }

// WithBoundingBox attaches geometry extent in internal units.
func (e *Element) WithBoundingBox(b domain.BoundingBox) *Element { e.bbox = &b; return e }

// AddParam attaches a parameter slot addressable by field handle and display
// name.
func (e *Element) AddParam(field host.FieldID, display string, v domain.ParameterValue) *Element {
	e.params = append(e.params, &Parameter{elem: e, field: field, display: display, value: v})
	return e
}

func (e *Element) ID() int64                 { return e.id }
func (e *Element) Name() string              { return e.name }
func (e *Element) Category() domain.Category { return e.category }
func (e *Element) ClassName() string         { return e.className }
func (e *Element) IsType() bool              { return e.isType }

func (e *Element) Type() (host.Element, bool) {
	if e.typeID == 0 {
		return nil, false
	}
	t, ok := e.doc.elements[e.typeID]
	return t, ok
}

func (e *Element) Parameter(field host.FieldID) (host.Parameter, bool) {
	for _, p := range e.params {
		if p.field == field {
			return p, true
		}
	}
	return nil, false
}

func (e *Element) ParameterByName(name string) (host.Parameter, bool) {
	want := domain.NormalizeParameterName(name)
	for _, p := range e.params {
		if domain.NormalizeParameterName(p.display) == want {
			return p, true
		}
	}
	return nil, false
}

func (e *Element) BoundingBox() (domain.BoundingBox, bool) {
	if e.bbox == nil {
		return domain.BoundingBox{}, false
	}
	return *e.bbox, true
}

func (e *Element) FamilySymbolID() (int64, bool) {
	if e.familySymbolID == 0 {
		return 0, false
	}
	return e.familySymbolID, true
}

// Parameter is an in-memory parameter slot.
type Parameter struct {
	elem     *Element
	field    host.FieldID
	display  string
	value    domain.ParameterValue
	readOnly bool
}

// ReadOnly marks the slot as not writable.
func (p *Parameter) ReadOnly() *Parameter { p.readOnly = true; return p }

func (p *Parameter) Kind() domain.StorageKind { return p.value.Kind }
func (p *Parameter) HasValue() bool           { return p.value.HasValue() }

func (p *Parameter) Double() float64 {
	if p.value.Double != nil {
		return *p.value.Double
	}
	return 0
}

func (p *Parameter) Integer() int64 {
	if p.value.Integer != nil {
		return *p.value.Integer
	}
	if p.value.Bool != nil && *p.value.Bool {
		return 1
	}
	return 0
}

func (p *Parameter) String() string {
	if p.value.Str != nil {
		return *p.value.Str
	}
	return ""
}

func (p *Parameter) Display() string { return p.value.Display }

// Set writes a value, recording the previous one for rollback. Requires an
// open transaction on the owning document.
func (p *Parameter) Set(v domain.ParameterValue) error {
	if p.readOnly {
		return fmt.Errorf("%w: parameter %q is read-only", domain.ErrHostOperation, p.display)
	}
	doc := p.elem.doc
	if doc == nil || doc.activeTx == nil {
		return fmt.Errorf("%w: parameter write outside transaction", domain.ErrHostOperation)
	}
	prev := p.value
	doc.activeTx.undo = append(doc.activeTx.undo, func() { p.value = prev })
	p.value = v
	return nil
}
