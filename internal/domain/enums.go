package domain

import "strings"

// Category identifies a host element category.
type Category string

const (
	CategoryWall       Category = "OST_Walls"
	CategoryDoor       Category = "OST_Doors"
	CategoryWindow     Category = "OST_Windows"
	CategoryFloor      Category = "OST_Floors"
	CategoryRoof       Category = "OST_Roofs"
	CategoryCeiling    Category = "OST_Ceilings"
	CategoryGrid       Category = "OST_Grids"
	CategoryLevel      Category = "OST_Levels"
	CategoryColumn     Category = "OST_StructuralColumns"
	CategoryFoundation Category = "OST_StructuralFoundation"
	CategoryFraming    Category = "OST_StructuralFraming"
	CategoryConduit    Category = "OST_Conduit"
	CategoryScopeBox   Category = "OST_VolumeOfInterest"
	CategoryNone       Category = ""
)

// categoryAliases maps lowercase user-facing names to categories.
var categoryAliases = map[string]Category{
	"wall":                  CategoryWall,
	"walls":                 CategoryWall,
	"door":                  CategoryDoor,
	"doors":                 CategoryDoor,
	"window":                CategoryWindow,
	"windows":               CategoryWindow,
	"floor":                 CategoryFloor,
	"floors":                CategoryFloor,
	"roof":                  CategoryRoof,
	"roofs":                 CategoryRoof,
	"ceiling":               CategoryCeiling,
	"ceilings":              CategoryCeiling,
	"grid":                  CategoryGrid,
	"grids":                 CategoryGrid,
	"level":                 CategoryLevel,
	"levels":                CategoryLevel,
	"column":                CategoryColumn,
	"columns":               CategoryColumn,
	"structural column":     CategoryColumn,
	"structural columns":    CategoryColumn,
	"foundation":            CategoryFoundation,
	"foundations":           CategoryFoundation,
	"structural foundation": CategoryFoundation,
	"framing":               CategoryFraming,
	"beam":                  CategoryFraming,
	"beams":                 CategoryFraming,
	"structural framing":    CategoryFraming,
	"conduit":               CategoryConduit,
	"conduits":              CategoryConduit,
	"scope box":             CategoryScopeBox,
	"scope boxes":           CategoryScopeBox,
}

// ParseCategory resolves a user-facing category name (either the OST_ form or a
// plain-English name) to a Category. Returns CategoryNone and false when the
// name is unknown.
func ParseCategory(name string) (Category, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return CategoryNone, false
	}
	if strings.HasPrefix(trimmed, "OST_") {
		for _, c := range AllCategories {
			if string(c) == trimmed {
				return c, true
			}
		}
		return CategoryNone, false
	}
	c, ok := categoryAliases[strings.ToLower(trimmed)]
	return c, ok
}

// AllCategories lists every category with a registered mapping.
var AllCategories = []Category{
	CategoryWall, CategoryDoor, CategoryWindow, CategoryFloor, CategoryRoof,
	CategoryCeiling, CategoryGrid, CategoryLevel, CategoryColumn,
	CategoryFoundation, CategoryFraming, CategoryConduit, CategoryScopeBox,
}

// StorageKind tags how a host parameter stores its value.
type StorageKind string

const (
	StorageNone       StorageKind = "none"
	StorageString     StorageKind = "string"
	StorageInteger    StorageKind = "integer"
	StorageDouble     StorageKind = "double"
	StorageElementRef StorageKind = "element_ref"
)

// Operator is a comparison operator for parameter predicates.
type Operator string

const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpContains     Operator = "contains"
	OpStartsWith   Operator = "startswith"
	OpEndsWith     Operator = "endswith"
)

// ParseOperator normalizes a user-supplied operator token.
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ">", "gt", "greater":
		return OpGreater, true
	case "<", "lt", "less":
		return OpLess, true
	case ">=", "gte":
		return OpGreaterEqual, true
	case "<=", "lte":
		return OpLessEqual, true
	case "=", "==", "eq", "equals":
		return OpEqual, true
	case "!=", "<>", "ne", "neq":
		return OpNotEqual, true
	case "contains":
		return OpContains, true
	case "startswith", "starts_with":
		return OpStartsWith, true
	case "endswith", "ends_with":
		return OpEndsWith, true
	}
	return "", false
}

// IsNumeric reports whether the operator only makes sense on numeric operands.
func (o Operator) IsNumeric() bool {
	switch o {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return true
	}
	return false
}

// DetailLevel controls how much parameter data element extraction emits.
type DetailLevel string

const (
	DetailBasic    DetailLevel = "basic"
	DetailStandard DetailLevel = "standard"
	DetailFull     DetailLevel = "full"
)

// ParseDetailLevel maps a request string to a DetailLevel. Empty input
// defaults to standard.
func ParseDetailLevel(s string) (DetailLevel, bool) {
	switch DetailLevel(strings.ToLower(s)) {
	case "":
		return DetailStandard, true
	case DetailBasic, DetailStandard, DetailFull:
		return DetailLevel(strings.ToLower(s)), true
	}
	return DetailStandard, false
}

// PlaneKind identifies one of the four view-range planes.
type PlaneKind string

const (
	PlaneTop       PlaneKind = "top"
	PlaneCut       PlaneKind = "cut"
	PlaneBottom    PlaneKind = "bottom"
	PlaneViewDepth PlaneKind = "view_depth"
)
