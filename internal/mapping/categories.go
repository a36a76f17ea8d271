package mapping

import (
	"revos/internal/domain"
	"revos/internal/units"
)

// allCategoryMappings builds every registered category table. The tables are
// mechanical data: canonical name -> built-in field handle, split by storage
// level, plus aliases, common lists, and unit rules.
func allCategoryMappings() []*CategoryMapping {
	return []*CategoryMapping{
		wallMapping(),
		doorMapping(),
		windowMapping(),
		floorMapping(),
		roofMapping(),
		ceilingMapping(),
		gridMapping(),
		levelMapping(),
		columnMapping(),
		foundationMapping(),
		framingMapping(),
		conduitMapping(),
		scopeBoxMapping(),
	}
}

func wallMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryWall).
		Instance("length", "CURVE_ELEM_LENGTH").
		Instance("area", "HOST_AREA_COMPUTED").
		Instance("volume", "HOST_VOLUME_COMPUTED").
		Instance("unconnected height", "WALL_USER_HEIGHT_PARAM").
		Instance("base offset", "WALL_BASE_OFFSET").
		Instance("top offset", "WALL_TOP_OFFSET").
		Instance("base constraint", "WALL_BASE_CONSTRAINT").
		Instance("top constraint", "WALL_HEIGHT_TYPE").
		Instance("structural", "WALL_STRUCTURAL_SIGNIFICANT").
		Instance("room bounding", "WALL_ATTR_ROOM_BOUNDING").
		Type("width", "WALL_ATTR_WIDTH_PARAM").
		Type("function", "FUNCTION_PARAM").
		Type("heat transfer coefficient", "ANALYTICAL_HEAT_TRANSFER_COEFFICIENT").
		Type("thermal resistance", "ANALYTICAL_THERMAL_RESISTANCE").
		Alias("thickness", "width").
		Alias("height", "unconnected height").
		Alias("u value", "heat transfer coefficient").
		Alias("u-value", "heat transfer coefficient").
		Alias("r value", "thermal resistance").
		Alias("r-value", "thermal resistance").
		Alias("load bearing", "structural").
		Common("width", "length", "unconnected height", "area", "volume", "base constraint", "function").
		Rule("width", units.LengthRule(units.RangeThickness)).
		Rule("length", units.LengthRule(units.RangeLength)).
		Rule("unconnected height", units.LengthRule(units.RangeLength)).
		Rule("base offset", units.LengthRule(units.RangeElevation)).
		Rule("top offset", units.LengthRule(units.RangeElevation)).
		Rule("structural", units.Rule{Class: units.ClassBoolean}).
		Rule("room bounding", units.Rule{Class: units.ClassBoolean}).
		Rule("area", units.Rule{Class: units.ClassArea}).
		Rule("volume", units.Rule{Class: units.ClassVolume}).
		Rule("heat transfer coefficient", units.Rule{Class: units.ClassThermal}).
		Rule("thermal resistance", units.Rule{Class: units.ClassThermal})
}

func doorMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryDoor).
		Instance("level", "FAMILY_LEVEL_PARAM").
		Instance("sill height", "INSTANCE_SILL_HEIGHT_PARAM").
		Instance("head height", "INSTANCE_HEAD_HEIGHT_PARAM").
		Instance("finish", "DOOR_FINISH").
		Type("width", "DOOR_WIDTH").
		Type("height", "DOOR_HEIGHT").
		Type("thickness", "DOOR_THICKNESS").
		Type("function", "FUNCTION_PARAM").
		Type("fire rating", "DOOR_FIRE_RATING").
		Alias("door width", "width").
		Alias("door height", "height").
		Alias("rating", "fire rating").
		Common("width", "height", "level", "sill height", "head height", "fire rating").
		Rule("width", units.LengthRule(units.RangeOpening)).
		Rule("height", units.LengthRule(units.RangeOpening)).
		Rule("thickness", units.LengthRule(units.RangeThickness)).
		Rule("sill height", units.LengthRule(units.RangeElevation)).
		Rule("head height", units.LengthRule(units.RangeElevation))
}

func windowMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryWindow).
		Instance("level", "FAMILY_LEVEL_PARAM").
		Instance("sill height", "INSTANCE_SILL_HEIGHT_PARAM").
		Instance("head height", "INSTANCE_HEAD_HEIGHT_PARAM").
		Type("width", "WINDOW_WIDTH").
		Type("height", "WINDOW_HEIGHT").
		Type("heat transfer coefficient", "ANALYTICAL_HEAT_TRANSFER_COEFFICIENT").
		Alias("window width", "width").
		Alias("window height", "height").
		Alias("u value", "heat transfer coefficient").
		Alias("u-value", "heat transfer coefficient").
		Common("width", "height", "level", "sill height").
		Rule("width", units.LengthRule(units.RangeOpening)).
		Rule("height", units.LengthRule(units.RangeOpening)).
		Rule("sill height", units.LengthRule(units.RangeElevation)).
		Rule("head height", units.LengthRule(units.RangeElevation)).
		Rule("heat transfer coefficient", units.Rule{Class: units.ClassThermal})
}

func floorMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryFloor).
		Instance("level", "LEVEL_PARAM").
		Instance("height offset from level", "FLOOR_HEIGHTABOVELEVEL_PARAM").
		Instance("area", "HOST_AREA_COMPUTED").
		Instance("volume", "HOST_VOLUME_COMPUTED").
		Instance("perimeter", "HOST_PERIMETER_COMPUTED").
		Instance("structural", "FLOOR_PARAM_IS_STRUCTURAL").
		Type("thickness", "FLOOR_ATTR_THICKNESS_PARAM").
		Type("function", "FUNCTION_PARAM").
		Alias("offset", "height offset from level").
		Alias("depth", "thickness").
		Common("thickness", "level", "area", "perimeter", "height offset from level").
		Rule("thickness", units.LengthRule(units.RangeThickness)).
		Rule("height offset from level", units.LengthRule(units.RangeElevation)).
		Rule("perimeter", units.LengthRule(units.RangeLength)).
		Rule("structural", units.Rule{Class: units.ClassBoolean}).
		Rule("area", units.Rule{Class: units.ClassArea}).
		Rule("volume", units.Rule{Class: units.ClassVolume})
}

func roofMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryRoof).
		Instance("base level", "ROOF_BASE_LEVEL_PARAM").
		Instance("base offset from level", "ROOF_LEVEL_OFFSET_PARAM").
		Instance("slope", "ROOF_SLOPE").
		Instance("area", "HOST_AREA_COMPUTED").
		Instance("volume", "HOST_VOLUME_COMPUTED").
		Type("thickness", "ROOF_ATTR_THICKNESS_PARAM").
		Alias("pitch", "slope").
		Alias("offset", "base offset from level").
		Common("base level", "slope", "thickness", "area").
		Rule("thickness", units.LengthRule(units.RangeThickness)).
		Rule("base offset from level", units.LengthRule(units.RangeElevation)).
		Rule("slope", units.Rule{Class: units.ClassAngle}).
		Rule("area", units.Rule{Class: units.ClassArea}).
		Rule("volume", units.Rule{Class: units.ClassVolume})
}

func ceilingMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryCeiling).
		Instance("level", "LEVEL_PARAM").
		Instance("height offset from level", "CEILING_HEIGHTABOVELEVEL_PARAM").
		Instance("area", "HOST_AREA_COMPUTED").
		Instance("perimeter", "HOST_PERIMETER_COMPUTED").
		Type("thickness", "CEILING_THICKNESS").
		Alias("ceiling height", "height offset from level").
		Alias("offset", "height offset from level").
		Common("level", "height offset from level", "area").
		Rule("thickness", units.LengthRule(units.RangeThickness)).
		Rule("height offset from level", units.LengthRule(units.RangeElevation)).
		Rule("perimeter", units.LengthRule(units.RangeLength)).
		Rule("area", units.Rule{Class: units.ClassArea})
}

func gridMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryGrid).
		Instance("name", "DATUM_TEXT").
		Instance("scope box", "DATUM_VOLUME_OF_INTEREST").
		Alias("label", "name").
		Common("name", "scope box")
}

func levelMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryLevel).
		Instance("elevation", "LEVEL_ELEV").
		Instance("name", "DATUM_TEXT").
		Instance("computation height", "LEVEL_ROOM_COMPUTATION_HEIGHT").
		Instance("building story", "LEVEL_IS_BUILDING_STORY").
		Alias("height", "elevation").
		Alias("story", "building story").
		Common("name", "elevation", "building story").
		Rule("elevation", units.LengthRule(units.RangeElevation)).
		Rule("computation height", units.LengthRule(units.RangeElevation)).
		Rule("building story", units.Rule{Class: units.ClassBoolean})
}

func columnMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryColumn).
		Instance("base level", "FAMILY_BASE_LEVEL_PARAM").
		Instance("top level", "FAMILY_TOP_LEVEL_PARAM").
		Instance("base offset", "FAMILY_BASE_LEVEL_OFFSET_PARAM").
		Instance("top offset", "FAMILY_TOP_LEVEL_OFFSET_PARAM").
		Instance("length", "INSTANCE_LENGTH_PARAM").
		Type("width", "COLUMN_WIDTH").
		Type("depth", "COLUMN_DEPTH").
		Alias("column height", "length").
		Common("base level", "top level", "length", "base offset", "top offset").
		Rule("length", units.LengthRule(units.RangeLength)).
		Rule("base offset", units.LengthRule(units.RangeElevation)).
		Rule("top offset", units.LengthRule(units.RangeElevation)).
		Rule("width", units.LengthRule(units.RangeThickness)).
		Rule("depth", units.LengthRule(units.RangeThickness))
}

func foundationMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryFoundation).
		Instance("level", "LEVEL_PARAM").
		Instance("elevation at bottom", "STRUCTURAL_ELEVATION_AT_BOTTOM").
		Instance("elevation at top", "STRUCTURAL_ELEVATION_AT_TOP").
		Type("width", "STRUCTURAL_FOUNDATION_WIDTH").
		Type("length", "STRUCTURAL_FOUNDATION_LENGTH").
		Type("thickness", "STRUCTURAL_FOUNDATION_THICKNESS").
		Alias("footing thickness", "thickness").
		Common("level", "width", "length", "thickness").
		Rule("width", units.LengthRule(units.RangeLength)).
		Rule("length", units.LengthRule(units.RangeLength)).
		Rule("thickness", units.LengthRule(units.RangeThickness)).
		Rule("elevation at bottom", units.LengthRule(units.RangeElevation)).
		Rule("elevation at top", units.LengthRule(units.RangeElevation))
}

func framingMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryFraming).
		Instance("reference level", "INSTANCE_REFERENCE_LEVEL_PARAM").
		Instance("length", "INSTANCE_LENGTH_PARAM").
		Instance("cut length", "STRUCTURAL_FRAME_CUT_LENGTH").
		Instance("start level offset", "STRUCTURAL_BEAM_END0_ELEVATION").
		Instance("end level offset", "STRUCTURAL_BEAM_END1_ELEVATION").
		Instance("structural usage", "INSTANCE_STRUCT_USAGE_PARAM").
		Alias("beam length", "length").
		Alias("usage", "structural usage").
		Common("reference level", "length", "cut length", "structural usage").
		Rule("length", units.LengthRule(units.RangeLength)).
		Rule("cut length", units.LengthRule(units.RangeLength)).
		Rule("start level offset", units.LengthRule(units.RangeElevation)).
		Rule("end level offset", units.LengthRule(units.RangeElevation))
}

func conduitMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryConduit).
		Instance("diameter", "RBS_CONDUIT_DIAMETER_PARAM").
		Instance("outside diameter", "RBS_CONDUIT_OUTER_DIAM_PARAM").
		Instance("inside diameter", "RBS_CONDUIT_INNER_DIAM_PARAM").
		Instance("length", "CURVE_ELEM_LENGTH").
		Instance("bottom elevation", "RBS_CTC_BOTTOM_ELEVATION").
		Instance("top elevation", "RBS_CTC_TOP_ELEVATION").
		Instance("reference level", "RBS_START_LEVEL_PARAM").
		Type("standard", "CONDUIT_STANDARD_TYPE_PARAM").
		Alias("size", "diameter").
		Alias("od", "outside diameter").
		Alias("id", "inside diameter").
		Alias("conduit size", "diameter").
		Common("diameter", "length", "reference level", "bottom elevation").
		Rule("diameter", units.LengthRule(units.RangeDiameter)).
		Rule("outside diameter", units.LengthRule(units.RangeDiameter)).
		Rule("inside diameter", units.LengthRule(units.RangeDiameter)).
		Rule("length", units.LengthRule(units.RangeLength)).
		Rule("bottom elevation", units.LengthRule(units.RangeElevation)).
		Rule("top elevation", units.LengthRule(units.RangeElevation))
}

func scopeBoxMapping() *CategoryMapping {
	return NewCategoryMapping(domain.CategoryScopeBox).
		Instance("name", "DATUM_TEXT").
		Instance("height", "SCOPE_BOX_HEIGHT").
		Alias("label", "name").
		Common("name", "height").
		Rule("height", units.LengthRule(units.RangeLength))
}
