package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"revos/internal/units"
)

func TestNormalizeLength_AlreadyInternal(t *testing.T) {
	// Values under 1.0 are assumed to already be feet and pass unchanged.
	assert.Equal(t, 0.5, units.NormalizeLength(0.5, units.RangeDiameter))
	assert.Equal(t, 0.999, units.NormalizeLength(0.999, units.RangeLength))
}

func TestNormalizeLength_InchRange(t *testing.T) {
	// 24 is inside the diameter inch range, so it converts inches -> feet.
	assert.InDelta(t, 2.0, units.NormalizeLength(24, units.RangeDiameter), 1e-9)
	// 120 inches inside the structural length range.
	assert.InDelta(t, 10.0, units.NormalizeLength(120, units.RangeLength), 1e-9)
}

func TestNormalizeLength_Millimeters(t *testing.T) {
	// 3000 is above the opening inch range, so it is treated as millimeters.
	got := units.NormalizeLength(3000, units.RangeOpening)
	assert.InDelta(t, 3000/304.8, got, 1e-9)
}

func TestNormalizeLength_RangesDiffer(t *testing.T) {
	// 100 is inches for a structural length but millimeters for a diameter.
	assert.InDelta(t, 100.0/12, units.NormalizeLength(100, units.RangeLength), 1e-9)
	assert.InDelta(t, 100/304.8, units.NormalizeLength(100, units.RangeDiameter), 1e-9)
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi/2, units.DegreesToRadians(90), 1e-9)
	assert.InDelta(t, 180.0, units.RadiansToDegrees(math.Pi), 1e-9)
}

func TestRuleConvert_Angle(t *testing.T) {
	rule := units.Rule{Class: units.ClassAngle}
	out, err := rule.Convert(45.0)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/4, out.(float64), 1e-9)
}

func TestRuleConvert_Boolean(t *testing.T) {
	rule := units.Rule{Class: units.ClassBoolean}

	for _, in := range []interface{}{true, "yes", "TRUE", 1, 1.0} {
		out, err := rule.Convert(in)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out, "input %v", in)
	}
	for _, in := range []interface{}{false, "no", "False", 0} {
		out, err := rule.Convert(in)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), out, "input %v", in)
	}

	_, err := rule.Convert("maybe")
	assert.Error(t, err)
}

func TestRuleConvert_PassThrough(t *testing.T) {
	rule := units.Rule{Class: units.ClassThermal}
	out, err := rule.Convert(0.35)
	assert.NoError(t, err)
	assert.Equal(t, 0.35, out)
}

func TestRoundTripMM(t *testing.T) {
	assert.InDelta(t, 12.5, units.MMToFeet(units.FeetToMM(12.5)), 1e-9)
}
