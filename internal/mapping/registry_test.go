package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/host/memdoc"
	"revos/internal/mapping"
	"revos/internal/units"
)

// wallWithType builds a wall instance linked to a wall type in a fresh
// document.
func wallWithType(t *testing.T) (*memdoc.Document, *memdoc.Element, *memdoc.Element) {
	t.Helper()
	doc := memdoc.New()
	wallType := memdoc.NewElement(100, "Generic - 200mm", domain.CategoryWall, "WallType").AsType()
	wallType.AddParam("WALL_ATTR_WIDTH_PARAM", "Width", domain.DoubleValue(0.656))
	wallType.AddParam("ANALYTICAL_HEAT_TRANSFER_COEFFICIENT", "Heat Transfer Coefficient (U)", domain.DoubleValue(0.35))
	doc.AddElement(wallType)

	wall := memdoc.NewElement(1, "Basic Wall", domain.CategoryWall, "Wall").WithType(100)
	wall.AddParam("CURVE_ELEM_LENGTH", "Length", domain.DoubleValue(32.8))
	wall.AddParam("ALL_MODEL_MARK", "Mark", domain.StringValue("W-01"))
	doc.AddElement(wall)
	return doc, wall, wallType
}

func TestGetParameter_InstanceMappingPrecedence(t *testing.T) {
	_, wall, _ := wallWithType(t)
	reg := mapping.NewRegistry()

	// "Length" also exists as a display-name param, but resolution must hit
	// the mapped instance field, not fall through to the generic lookup.
	v, err := reg.GetParameter(wall, "length", domain.CategoryWall)
	require.NoError(t, err)
	require.NotNil(t, v.Double)
	assert.InDelta(t, 32.8, *v.Double, 1e-9)
}

func TestGetParameter_TypeLevelFallback(t *testing.T) {
	_, wall, _ := wallWithType(t)
	reg := mapping.NewRegistry()

	// Width lives on the wall type; resolving it on the instance must probe
	// the type-level table.
	v, err := reg.GetParameter(wall, "width", domain.CategoryWall)
	require.NoError(t, err)
	require.NotNil(t, v.Double)
	assert.InDelta(t, 0.656, *v.Double, 1e-9)
}

func TestGetParameter_UValueScenario(t *testing.T) {
	_, wall, _ := wallWithType(t)
	reg := mapping.NewRegistry()

	// "u value" aliases to "heat transfer coefficient", a type-level thermal
	// field with pass-through conversion.
	names := reg.ExpandAlias(domain.CategoryWall, "u value")
	assert.Equal(t, []string{"heat transfer coefficient"}, names)

	v, err := reg.GetParameter(wall, "u value", domain.CategoryWall)
	require.NoError(t, err)
	require.NotNil(t, v.Double)
	assert.InDelta(t, 0.35, *v.Double, 1e-9)

	rule, ok := reg.ConversionRule(domain.CategoryWall, "u value")
	require.True(t, ok)
	assert.Equal(t, units.ClassThermal, rule.Class)
	out, err := reg.ConvertValue(domain.CategoryWall, "u value", 0.42)
	require.NoError(t, err)
	assert.Equal(t, 0.42, out)
}

func TestGetParameter_SharedMappingFallback(t *testing.T) {
	_, wall, _ := wallWithType(t)
	reg := mapping.NewRegistry()

	// "mark" is not in the wall mapping; it resolves through the shared
	// cross-category table.
	v, err := reg.GetParameter(wall, "mark", domain.CategoryWall)
	require.NoError(t, err)
	require.NotNil(t, v.Str)
	assert.Equal(t, "W-01", *v.Str)
}

func TestGetParameter_GenericNameFallback(t *testing.T) {
	doc := memdoc.New()
	wall := memdoc.NewElement(1, "Basic Wall", domain.CategoryWall, "Wall")
	wall.AddParam("PROJECT_PARAM_0001", "Fire Zone", domain.StringValue("Z2"))
	doc.AddElement(wall)
	reg := mapping.NewRegistry()

	v, err := reg.GetParameter(wall, "Fire Zone", domain.CategoryWall)
	require.NoError(t, err)
	require.NotNil(t, v.Str)
	assert.Equal(t, "Z2", *v.Str)
}

func TestGetParameter_NotFound(t *testing.T) {
	_, wall, _ := wallWithType(t)
	reg := mapping.NewRegistry()

	_, err := reg.GetParameter(wall, "no such parameter", domain.CategoryWall)
	assert.ErrorIs(t, err, domain.ErrParameterNotFound)
}

func TestExpandAlias_Transparency(t *testing.T) {
	reg := mapping.NewRegistry()

	// Resolving an alias and resolving its canonical name agree.
	for alias, canonical := range map[string]string{
		"thickness": "width",
		"u value":   "heat transfer coefficient",
		"tag":       "mark",
	} {
		assert.Equal(t,
			reg.ExpandAlias(domain.CategoryWall, canonical),
			reg.ExpandAlias(domain.CategoryWall, alias),
			"alias %q", alias)
	}
}

func TestExpandAlias_PhaseExpandsToTwo(t *testing.T) {
	reg := mapping.NewRegistry()

	names := reg.ExpandAlias(domain.CategoryDoor, "phase")
	assert.Equal(t, []string{"phase created", "phase demolished"}, names)
}

func TestExpandAlias_IdentityDefault(t *testing.T) {
	reg := mapping.NewRegistry()

	names := reg.ExpandAlias(domain.CategoryWall, "Custom Field")
	assert.Equal(t, []string{"custom field"}, names)
}

func TestCapabilityQueries_UnregisteredCategory(t *testing.T) {
	reg := mapping.NewRegistry()

	assert.False(t, reg.HasMapping("OST_Furniture"))
	assert.Empty(t, reg.CommonParameterNames("OST_Furniture"))
	assert.Empty(t, reg.Aliases("OST_Furniture"))
}

func TestCommonParameterNames_Ordered(t *testing.T) {
	reg := mapping.NewRegistry()

	names := reg.CommonParameterNames(domain.CategoryConduit)
	assert.Equal(t, []string{"diameter", "length", "reference level", "bottom elevation"}, names)
}

func TestConvertValue_IdentityForUnruledKeys(t *testing.T) {
	reg := mapping.NewRegistry()

	out, err := reg.ConvertValue(domain.CategoryGrid, "name", "A")
	assert.NoError(t, err)
	assert.Equal(t, "A", out)
}

func TestConvertValue_FieldSpecificThresholds(t *testing.T) {
	reg := mapping.NewRegistry()

	// 2 on a conduit diameter is inside the diameter inch range.
	out, err := reg.ConvertValue(domain.CategoryConduit, "diameter", 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/12, out.(float64), 1e-9)

	// 2400 inches is the top of the structural length range.
	out, err = reg.ConvertValue(domain.CategoryFraming, "length", 2400.0)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, out.(float64), 1e-9)

	// 0.75 is already internal units everywhere.
	out, err = reg.ConvertValue(domain.CategoryConduit, "diameter", 0.75)
	require.NoError(t, err)
	assert.Equal(t, 0.75, out)
}

func TestAllCategoriesRegistered(t *testing.T) {
	reg := mapping.NewRegistry()
	for _, c := range domain.AllCategories {
		assert.True(t, reg.HasMapping(c), "category %s", c)
	}
}
