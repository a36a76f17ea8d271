package memdoc

import (
	"encoding/json"
	"fmt"
	"os"

	"revos/internal/domain"
	"revos/internal/host"
)

// ModelFile is the JSON shape of a development model document.
type ModelFile struct {
	BasePoint   [3]float64    `json:"base_point"`
	SurveyPoint [3]float64    `json:"survey_point"`
	Levels      []LevelSpec   `json:"levels"`
	Elements    []ElementSpec `json:"elements"`
}

// LevelSpec describes one level.
type LevelSpec struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Elevation        float64 `json:"elevation"`
	ProjectElevation float64 `json:"project_elevation"`
}

// ElementSpec describes one element.
type ElementSpec struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Class          string      `json:"class"`
	IsType         bool        `json:"is_type,omitempty"`
	TypeID         int64       `json:"type_id,omitempty"`
	FamilySymbolID int64       `json:"family_symbol_id,omitempty"`
	BoundingBox    *[6]float64 `json:"bounding_box,omitempty"`
	Parameters     []ParamSpec `json:"parameters,omitempty"`
}

// ParamSpec describes one parameter slot.
type ParamSpec struct {
	Field    string      `json:"field"`
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Value    interface{} `json:"value"`
	Display  string      `json:"display,omitempty"`
	ReadOnly bool        `json:"read_only,omitempty"`
}

// Load reads a model document from a JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	var mf ModelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	return FromModel(mf)
}

// FromModel builds a Document from a parsed model file.
func FromModel(mf ModelFile) (*Document, error) {
	doc := New()
	doc.SetBasePoint(host.Point{X: mf.BasePoint[0], Y: mf.BasePoint[1], Z: mf.BasePoint[2]})
	doc.SetSurveyPoint(host.Point{X: mf.SurveyPoint[0], Y: mf.SurveyPoint[1], Z: mf.SurveyPoint[2]})

	for _, l := range mf.Levels {
		doc.AddLevel(l.ID, l.Name, l.Elevation, l.ProjectElevation)
	}

	for _, es := range mf.Elements {
		cat, ok := domain.ParseCategory(es.Category)
		if !ok && es.Category != "" {
			return nil, fmt.Errorf("element %d: %w: %q", es.ID, domain.ErrUnknownCategory, es.Category)
		}
		e := NewElement(es.ID, es.Name, cat, es.Class)
		if es.IsType {
			e.AsType()
		}
		if es.TypeID != 0 {
			e.WithType(es.TypeID)
		}
		if es.FamilySymbolID != 0 {
			e.WithFamilySymbol(es.FamilySymbolID)
		}
		if es.BoundingBox != nil {
			b := es.BoundingBox
			e.WithBoundingBox(domain.BoundingBox{
				MinX: b[0], MinY: b[1], MinZ: b[2],
				MaxX: b[3], MaxY: b[4], MaxZ: b[5],
			})
		}
		for _, ps := range es.Parameters {
			v, err := paramValue(ps)
			if err != nil {
				return nil, fmt.Errorf("element %d parameter %q: %w", es.ID, ps.Name, err)
			}
			e.AddParam(host.FieldID(ps.Field), ps.Name, v)
			if ps.ReadOnly {
				e.params[len(e.params)-1].ReadOnly()
			}
		}
		doc.AddElement(e)
	}
	return doc, nil
}

func paramValue(ps ParamSpec) (domain.ParameterValue, error) {
	var v domain.ParameterValue
	switch domain.StorageKind(ps.Kind) {
	case domain.StorageDouble:
		f, ok := ps.Value.(float64)
		if !ok {
			return v, fmt.Errorf("expected number, got %T", ps.Value)
		}
		v = domain.DoubleValue(f)
	case domain.StorageInteger:
		f, ok := ps.Value.(float64)
		if !ok {
			return v, fmt.Errorf("expected integer, got %T", ps.Value)
		}
		v = domain.IntegerValue(int64(f))
	case domain.StorageString:
		s, ok := ps.Value.(string)
		if !ok {
			return v, fmt.Errorf("expected string, got %T", ps.Value)
		}
		v = domain.StringValue(s)
	case domain.StorageNone:
		v = domain.EmptyValue("no value")
	default:
		return v, fmt.Errorf("unsupported storage kind %q", ps.Kind)
	}
	v.Display = ps.Display
	return v, nil
}
