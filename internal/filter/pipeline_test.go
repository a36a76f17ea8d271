package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/filter"
	"revos/internal/host"
	"revos/internal/host/memdoc"
	"revos/internal/mapping"
)

// doorDoc builds a document with two door instances (widths 2.5 and 3.5 feet
// on their types) plus a wall, for the classic width filter scenario.
func doorDoc() *memdoc.Document {
	doc := memdoc.New()

	narrowType := memdoc.NewElement(200, "Single 30in", domain.CategoryDoor, "FamilySymbol").AsType()
	narrowType.AddParam("DOOR_WIDTH", "Width", domain.DoubleValue(2.5))
	doc.AddElement(narrowType)

	wideType := memdoc.NewElement(201, "Single 42in", domain.CategoryDoor, "FamilySymbol").AsType()
	wideType.AddParam("DOOR_WIDTH", "Width", domain.DoubleValue(3.5))
	doc.AddElement(wideType)

	narrow := memdoc.NewElement(1, "Door 1", domain.CategoryDoor, "FamilyInstance").
		WithType(200).WithFamilySymbol(200).
		WithBoundingBox(domain.BoundingBox{MinX: 0, MinY: 0, MinZ: 0, MaxX: 3, MaxY: 1, MaxZ: 7})
	narrow.AddParam("ALL_MODEL_MARK", "Mark", domain.StringValue("D-01"))
	doc.AddElement(narrow)

	wide := memdoc.NewElement(2, "Door 2", domain.CategoryDoor, "FamilyInstance").
		WithType(201).WithFamilySymbol(201).
		WithBoundingBox(domain.BoundingBox{MinX: 50, MinY: 0, MinZ: 0, MaxX: 54, MaxY: 1, MaxZ: 7})
	wide.AddParam("ALL_MODEL_MARK", "Mark", domain.StringValue("D-02"))
	doc.AddElement(wide)

	wall := memdoc.NewElement(3, "Wall 1", domain.CategoryWall, "Wall").
		WithBoundingBox(domain.BoundingBox{MinX: 0, MinY: 0, MinZ: 0, MaxX: 60, MaxY: 1, MaxZ: 10})
	doc.AddElement(wall)

	return doc
}

func ids(elems []host.Element) []int64 {
	out := make([]int64, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.ID())
	}
	return out
}

func TestFilter_DoorWidthScenario(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "OST_Doors",
		ParameterFilters: []domain.ParameterFilter{
			{Name: "width", Operator: ">", Value: 3.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilter_CategoryOnly(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{Category: "doors"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestFilter_UnknownCategoryRejected(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	_, _, err := p.Filter(doorDoc(), domain.FilterCriteria{Category: "OST_Sprockets"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestFilter_PredicateConjunction(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())
	doc := doorDoc()

	p1 := domain.ParameterFilter{Name: "width", Operator: ">", Value: 2.0}
	p2 := domain.ParameterFilter{Name: "mark", Operator: "=", Value: "D-01"}

	only1, _, err := p.Filter(doc, domain.FilterCriteria{Category: "doors", ParameterFilters: []domain.ParameterFilter{p1}})
	require.NoError(t, err)
	only2, _, err := p.Filter(doc, domain.FilterCriteria{Category: "doors", ParameterFilters: []domain.ParameterFilter{p2}})
	require.NoError(t, err)
	both, _, err := p.Filter(doc, domain.FilterCriteria{Category: "doors", ParameterFilters: []domain.ParameterFilter{p1, p2}})
	require.NoError(t, err)

	// AND semantics: the two-predicate result is exactly the intersection.
	inter := make(map[int64]bool)
	for _, id := range ids(only1) {
		inter[id] = true
	}
	var want []int64
	for _, id := range ids(only2) {
		if inter[id] {
			want = append(want, id)
		}
	}
	assert.Equal(t, want, ids(both))
}

func TestFilter_UnresolvableParameterFailsPredicate(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	// No door carries "fire rating"; the predicate excludes all elements
	// rather than acting as "no constraint".
	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "doors",
		ParameterFilters: []domain.ParameterFilter{
			{Name: "fire rating", Operator: "=", Value: "60 min"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilter_PhaseAliasRejectedAsAmbiguous(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	_, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "doors",
		ParameterFilters: []domain.ParameterFilter{
			{Name: "phase", Operator: "=", Value: "New Construction"},
		},
	})
	require.ErrorIs(t, err, domain.ErrAmbiguousAlias)
	assert.Contains(t, err.Error(), "phase created")
	assert.Contains(t, err.Error(), "phase demolished")
}

func TestFilter_ClassName(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		ClassNames: []string{"Autodesk.Revit.DB.Wall"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilter_UnknownClassNameFailsWholeFilter(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	_, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		ClassNames: []string{"Wall", "NoSuchClass"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownClass)
	assert.Contains(t, err.Error(), "NoSuchClass")
}

func TestFilter_DanglingFamilySymbolSkippedWithWarning(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, warnings, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category:        "doors",
		FamilySymbolIDs: []int64{200, 9999},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(got))

	var codes []string
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, "FAMILY_SYMBOL_SKIPPED")
}

func TestFilter_BoundingBoxInMillimeters(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	// 10 feet = 3048 mm. A box covering x in [0, 3048]mm reaches only the
	// first door (x up to 3 feet), not the second (x from 50 feet).
	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "doors",
		BoundingBox: &domain.BoundingBoxMM{
			MinX: 0, MinY: 0, MinZ: 0,
			MaxX: 3048, MaxY: 3048, MaxZ: 3048,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilter_TypesAndInstancesUnioned(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())
	yes := true

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category:         "doors",
		IncludeInstances: &yes,
		IncludeTypes:     true,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 200, 201}, ids(got))
}

func TestFilter_TypesOnly(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())
	no := false

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category:         "doors",
		IncludeInstances: &no,
		IncludeTypes:     true,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{200, 201}, ids(got))
}

func TestFilter_LimitTruncatesWithWarning(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, warnings, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "doors",
		Limit:    1,
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.Len(t, warnings, 1)
	assert.Equal(t, "RESULT_TRUNCATED", warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "first 1 of 2")
}

func TestFilter_FreeTextQuery(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category: "doors",
		Query:    "show me doors with width greater than 3",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilter_ElementIDRestriction(t *testing.T) {
	p := filter.NewPipeline(mapping.NewRegistry())

	got, _, err := p.Filter(doorDoc(), domain.FilterCriteria{
		Category:   "doors",
		ElementIDs: []int64{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))
}
