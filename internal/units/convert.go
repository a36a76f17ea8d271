// Package units converts between the host's internal unit system (feet for
// length, radians for angle) and the user-facing units automation clients
// supply (millimeters, inches, degrees).
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	mmPerFoot     = 304.8
	inchesPerFoot = 12.0
)

// FeetToMM converts internal length units to millimeters.
func FeetToMM(feet float64) float64 { return feet * mmPerFoot }

// MMToFeet converts millimeters to internal length units.
func MMToFeet(mm float64) float64 { return mm / mmPerFoot }

// FeetToInches converts internal length units to inches.
func FeetToInches(feet float64) float64 { return feet * inchesPerFoot }

// InchesToFeet converts inches to internal length units.
func InchesToFeet(in float64) float64 { return in / inchesPerFoot }

// DegreesToRadians converts degrees to the host's internal angle unit.
func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// RadiansToDegrees converts internal angle units to degrees.
func RadiansToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Class is the unit class a mapped parameter converts under.
type Class string

const (
	ClassLength      Class = "length"
	ClassArea        Class = "area"
	ClassVolume      Class = "volume"
	ClassAngle       Class = "angle"
	ClassBoolean     Class = "boolean"
	ClassCurrency    Class = "currency"
	ClassThermal     Class = "thermal"
	ClassPassThrough Class = "pass_through"
)

// InchRange bounds the plausible inch magnitudes for one field. The bounds are
// field-specific: a conduit diameter and a structural length live in very
// different ranges, so each mapped length field declares its own.
type InchRange struct {
	Min float64
	Max float64
}

// Plausible inch ranges for the field families the category mappings use.
var (
	RangeDiameter  = InchRange{Min: 0.5, Max: 48}   // conduit and pipe diameters
	RangeThickness = InchRange{Min: 0.5, Max: 48}   // wall widths, slab thicknesses
	RangeOpening   = InchRange{Min: 6, Max: 240}    // door and window sizes
	RangeLength    = InchRange{Min: 1, Max: 2400}   // structural member lengths
	RangeElevation = InchRange{Min: 1, Max: 12000}  // level elevations, offsets
)

// NormalizeLength interprets an ambiguous numeric length that arrived without
// explicit units and returns internal units (feet). In order: values under 1.0
// are assumed to already be feet; values inside the field's plausible inch
// range are treated as inches; anything larger is treated as millimeters.
func NormalizeLength(v float64, r InchRange) float64 {
	abs := math.Abs(v)
	if abs < 1.0 {
		return v
	}
	if abs >= r.Min && abs <= r.Max {
		return InchesToFeet(v)
	}
	return MMToFeet(v)
}

// Rule couples a unit class with its field-specific inch range (length class
// only; other classes ignore it).
type Rule struct {
	Class  Class
	Inches InchRange
}

// LengthRule builds a length rule over the given inch range.
func LengthRule(r InchRange) Rule { return Rule{Class: ClassLength, Inches: r} }

// Convert normalizes a raw user-supplied value into internal units according
// to the rule. Non-numeric input for numeric classes is parsed from string
// form where possible. The zero rule (ClassPassThrough) returns input as-is.
func (r Rule) Convert(raw interface{}) (interface{}, error) {
	switch r.Class {
	case ClassLength:
		v, err := toFloat(raw)
		if err != nil {
			return nil, err
		}
		return NormalizeLength(v, r.Inches), nil
	case ClassArea, ClassVolume, ClassCurrency, ClassThermal, ClassPassThrough, "":
		return raw, nil
	case ClassAngle:
		v, err := toFloat(raw)
		if err != nil {
			return nil, err
		}
		return DegreesToRadians(v), nil
	case ClassBoolean:
		b, err := ParseBool(raw)
		if err != nil {
			return nil, err
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	}
	return raw, nil
}

// ParseBool accepts boolean literals, "yes"/"no", "true"/"false" (any case)
// and numeric 0/1.
func ParseBool(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "true", "1":
			return true, nil
		case "no", "false", "0":
			return false, nil
		}
		return false, fmt.Errorf("cannot interpret %q as boolean", v)
	}
	return false, fmt.Errorf("cannot interpret %T as boolean", raw)
}

func toFloat(raw interface{}) (float64, error) {
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
			return 0, fmt.Errorf("cannot interpret %q as number", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("cannot interpret %T as number", raw)
}
