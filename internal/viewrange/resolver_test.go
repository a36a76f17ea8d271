package viewrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/host/memdoc"
	"revos/internal/viewrange"
)

// threeStoryDoc has levels at project elevations 0, 10 and 20 with the
// project base point raised to Z=5.
func threeStoryDoc() *memdoc.Document {
	doc := memdoc.New()
	doc.SetBasePoint(host.Point{Z: 5})
	doc.AddLevel(1, "Level 1", 0, 0)
	doc.AddLevel(2, "Level 2", 10, 10)
	doc.AddLevel(3, "Level 3", 20, 20)
	return doc
}

func plane(kind domain.PlaneKind, levelID int64, offset float64) domain.ViewRangePlane {
	return domain.ViewRangePlane{Kind: kind, LevelID: levelID, Offset: offset}
}

func TestAbsoluteElevation_UsesBasePoint(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	abs, err := r.AbsoluteElevation(2)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, abs, 1e-9)
}

func TestToAbsolute_RoundTrip(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	for _, offset := range []float64{-4.5, 0, 0.001, 7.25} {
		abs, err := r.ToAbsolute(plane(domain.PlaneCut, 2, offset), 2)
		require.NoError(t, err)
		back, err := r.ToLevelOffset(2, abs)
		require.NoError(t, err)
		assert.InDelta(t, offset, back, domain.Epsilon, "offset %v", offset)
	}
}

func TestToAbsolute_LevelBelow(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	// View on level 3; the level below is level 2 (absolute 15).
	abs, err := r.ToAbsolute(plane(domain.PlaneViewDepth, domain.LevelBelow, -1), 3)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, abs, 1e-9)
}

func TestToAbsolute_LevelBelow_NoLowerLevel(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	// View on the lowest level: the offset is returned unchanged.
	abs, err := r.ToAbsolute(plane(domain.PlaneViewDepth, domain.LevelBelow, -2.5), 1)
	require.NoError(t, err)
	assert.Equal(t, -2.5, abs)
}

func TestValidate_EqualBoundariesValid(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	cfg := domain.ViewRangeConfig{
		ViewLevelID: 2,
		Top:         plane(domain.PlaneTop, 2, 10),
		Cut:         plane(domain.PlaneCut, 2, 10),
		Bottom:      plane(domain.PlaneBottom, 2, 10),
		ViewDepth:   plane(domain.PlaneViewDepth, 2, 10),
	}
	warnings, err := r.Validate(cfg)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_CutAboveTop(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	cfg := domain.ViewRangeConfig{
		ViewLevelID: 2,
		Top:         plane(domain.PlaneTop, 2, 5),
		Cut:         plane(domain.PlaneCut, 2, 10),
		Bottom:      plane(domain.PlaneBottom, 2, 0),
		ViewDepth:   plane(domain.PlaneViewDepth, 2, 0),
	}
	_, err := r.Validate(cfg)
	require.ErrorIs(t, err, domain.ErrInvalidViewRange)
	assert.Contains(t, err.Error(), "Cut plane")
	assert.Contains(t, err.Error(), "above Top plane")
}

func TestValidate_UnlimitedPlaneWarnsButValid(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	cfg := domain.ViewRangeConfig{
		ViewLevelID: 2,
		Top:         plane(domain.PlaneTop, domain.LevelUnlimited, 0),
		Cut:         plane(domain.PlaneCut, 2, 4),
		Bottom:      plane(domain.PlaneBottom, 2, 0),
		ViewDepth:   plane(domain.PlaneViewDepth, 2, -1),
	}
	warnings, err := r.Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "PLANE_UNLIMITED", warnings[0].Code)
}

func TestValidate_AllUnlimited(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	unlimited := plane(domain.PlaneTop, domain.LevelUnlimited, 0)
	cfg := domain.ViewRangeConfig{
		ViewLevelID: 1,
		Top:         unlimited, Cut: unlimited, Bottom: unlimited, ViewDepth: unlimited,
	}
	warnings, err := r.Validate(cfg)
	require.NoError(t, err)

	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, "NO_USABLE_RANGE")
}

func TestValidate_ToleranceAbsorbsNoise(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	cfg := domain.ViewRangeConfig{
		ViewLevelID: 2,
		Top:         plane(domain.PlaneTop, 2, 4),
		Cut:         plane(domain.PlaneCut, 2, 4.0005),
		Bottom:      plane(domain.PlaneBottom, 2, 0),
		ViewDepth:   plane(domain.PlaneViewDepth, 2, 0),
	}
	_, err := r.Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_UnknownLevel(t *testing.T) {
	r := viewrange.NewResolver(threeStoryDoc())

	cfg := domain.ViewRangeConfig{
		ViewLevelID: 1,
		Top:         plane(domain.PlaneTop, 99, 0),
		Cut:         plane(domain.PlaneCut, 1, 4),
		Bottom:      plane(domain.PlaneBottom, 1, 0),
		ViewDepth:   plane(domain.PlaneViewDepth, 1, 0),
	}
	_, err := r.Validate(cfg)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)
}
