package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/host/event"
	"revos/internal/host/memdoc"
	"revos/internal/service"
)

func levelDoc() *memdoc.Document {
	doc := memdoc.New()
	doc.AddLevel(10, "Level 1", 0.0, 0.0)
	doc.AddLevel(20, "Level 2", 10.0, 10.0)
	return doc
}

func newViewRangeService(t *testing.T, doc *memdoc.Document) service.ViewRangeService {
	t.Helper()
	q := event.New(time.Second)
	t.Cleanup(q.Close)
	return service.NewViewRangeService(doc, q)
}

func TestViewRangeService_Resolve(t *testing.T) {
	svc := newViewRangeService(t, levelDoc())

	out, warnings, err := svc.Resolve(context.Background(), domain.ViewRangeConfig{
		ViewLevelID: 20,
		Top:         domain.ViewRangePlane{Kind: domain.PlaneTop, LevelID: 20, Offset: 7},
		Cut:         domain.ViewRangePlane{Kind: domain.PlaneCut, LevelID: 20, Offset: 4},
		Bottom:      domain.ViewRangePlane{Kind: domain.PlaneBottom, LevelID: 20, Offset: 0},
		ViewDepth:   domain.ViewRangePlane{Kind: domain.PlaneViewDepth, LevelID: domain.LevelBelow, Offset: 0},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, out.Planes, 4)

	assert.InDelta(t, 17.0, out.Planes[0].Absolute, domain.Epsilon)
	assert.InDelta(t, 14.0, out.Planes[1].Absolute, domain.Epsilon)
	assert.InDelta(t, 10.0, out.Planes[2].Absolute, domain.Epsilon)
	// View depth resolves against the level below the view's own level.
	assert.InDelta(t, 0.0, out.Planes[3].Absolute, domain.Epsilon)
}

func TestViewRangeService_Resolve_OrderingViolation(t *testing.T) {
	svc := newViewRangeService(t, levelDoc())

	_, _, err := svc.Resolve(context.Background(), domain.ViewRangeConfig{
		ViewLevelID: 20,
		Top:         domain.ViewRangePlane{Kind: domain.PlaneTop, LevelID: 20, Offset: 2},
		Cut:         domain.ViewRangePlane{Kind: domain.PlaneCut, LevelID: 20, Offset: 4},
		Bottom:      domain.ViewRangePlane{Kind: domain.PlaneBottom, LevelID: 20, Offset: 0},
		ViewDepth:   domain.ViewRangePlane{Kind: domain.PlaneViewDepth, LevelID: 20, Offset: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidViewRange)
}

func TestViewRangeService_Levels(t *testing.T) {
	doc := levelDoc()
	doc.SetBasePoint(host.Point{Z: 1.5})
	doc.SetSurveyPoint(host.Point{Z: -8.5})
	svc := newViewRangeService(t, doc)

	levels, err := svc.Levels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "Level 1", levels[0].Name)
	assert.InDelta(t, 1.5, levels[0].Absolute, domain.Epsilon)
	assert.InDelta(t, 11.5, levels[1].Absolute, domain.Epsilon)
	// Survey elevations are the same levels measured from the survey point.
	assert.InDelta(t, 10.0, levels[0].Survey, domain.Epsilon)
	assert.InDelta(t, 20.0, levels[1].Survey, domain.Epsilon)
}
