package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/extract"
	"revos/internal/host"
	"revos/internal/host/memdoc"
	"revos/internal/mapping"
)

func conduit(id int64, diameter float64, mark string) *memdoc.Element {
	e := memdoc.NewElement(id, "Conduit", domain.CategoryConduit, "Conduit")
	e.AddParam("RBS_CONDUIT_DIAMETER_PARAM", "Diameter", domain.DoubleValue(diameter))
	e.AddParam("CURVE_ELEM_LENGTH", "Length", domain.DoubleValue(20))
	e.AddParam("ALL_MODEL_MARK", "Mark", domain.StringValue(mark))
	return e
}

func TestElement_BasicLevel(t *testing.T) {
	doc := memdoc.New()
	e := doc.AddElement(conduit(1, 0.25, "C-01"))
	x := extract.New(mapping.NewRegistry())

	info := x.Element(e, domain.DetailBasic)
	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, domain.CategoryConduit, info.Category)
	assert.Nil(t, info.Parameters)
}

func TestElement_StandardLevelUsesCommonList(t *testing.T) {
	doc := memdoc.New()
	e := doc.AddElement(conduit(1, 0.25, "C-01"))
	x := extract.New(mapping.NewRegistry())

	info := x.Element(e, domain.DetailStandard)
	require.NotNil(t, info.Parameters)
	assert.Contains(t, info.Parameters, "diameter")
	assert.Contains(t, info.Parameters, "length")
	// Unresolvable common names are omitted, not errors.
	assert.NotContains(t, info.Parameters, "reference level")
	// Mark is not in the conduit common list.
	assert.NotContains(t, info.Parameters, "mark")
}

func TestElement_FullLevelAddsSharedIdentity(t *testing.T) {
	doc := memdoc.New()
	e := doc.AddElement(conduit(1, 0.25, "C-01"))
	x := extract.New(mapping.NewRegistry())

	info := x.Element(e, domain.DetailFull)
	require.NotNil(t, info.Parameters)
	assert.Contains(t, info.Parameters, "mark")
	require.NotNil(t, info.Parameters["mark"].Str)
	assert.Equal(t, "C-01", *info.Parameters["mark"].Str)
}

func TestTabular_HoistsCommonValues(t *testing.T) {
	doc := memdoc.New()
	e1 := doc.AddElement(conduit(1, 0.25, "C-01"))
	e2 := doc.AddElement(conduit(2, 0.5, "C-02"))
	x := extract.New(mapping.NewRegistry())

	result := extract.Tabular(x.Elements([]host.Element{e1, e2}, domain.DetailStandard))
	assert.ElementsMatch(t, []int64{1, 2}, result.ElementIDs)

	// Every conduit has length 20, so it hoists; diameter varies.
	assert.Equal(t, "20", result.Common["length"])
	require.Contains(t, result.Varying, "diameter")
	assert.Equal(t, "0.25", result.Varying["diameter"]["1"])
	assert.Equal(t, "0.5", result.Varying["diameter"]["2"])
}
