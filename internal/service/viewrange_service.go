package service

import (
	"context"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/host/event"
	"revos/internal/viewrange"
)

// PlaneElevation is one resolved view-range plane.
type PlaneElevation struct {
	Kind     domain.PlaneKind `json:"kind"`
	LevelID  int64            `json:"level_id"`
	Offset   float64          `json:"offset"`
	Absolute float64          `json:"absolute_elevation"`
}

// ViewRangeOutput is the resolved view range with absolute elevations.
type ViewRangeOutput struct {
	Planes []PlaneElevation `json:"planes"`
}

// LevelInfo describes one level of the document. Absolute is normalized to
// the project base point; Survey is the same elevation expressed against the
// survey point, which is what site drawings report.
type LevelInfo struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Absolute float64 `json:"absolute_elevation"`
	Survey   float64 `json:"survey_elevation"`
}

// ViewRangeService resolves and validates plan-view range configurations.
type ViewRangeService interface {
	Resolve(ctx context.Context, cfg domain.ViewRangeConfig) (*ViewRangeOutput, []domain.Warning, error)
	Levels(ctx context.Context) ([]LevelInfo, error)
}

type viewRangeService struct {
	doc   host.Document
	queue *event.Queue
}

// NewViewRangeService creates a new ViewRangeService implementation.
func NewViewRangeService(doc host.Document, queue *event.Queue) ViewRangeService {
	return &viewRangeService{doc: doc, queue: queue}
}

// Resolve validates the configuration and converts every plane to an absolute
// elevation. Validation warnings pass through; ordering violations fail.
func (s *viewRangeService) Resolve(ctx context.Context, cfg domain.ViewRangeConfig) (*ViewRangeOutput, []domain.Warning, error) {
	var (
		out      ViewRangeOutput
		warnings []domain.Warning
	)
	err := s.queue.Do(ctx, "viewrange.resolve", func() error {
		r := viewrange.NewResolver(s.doc)
		warns, err := r.Validate(cfg)
		if err != nil {
			return err
		}
		warnings = warns

		planes := []struct {
			kind  domain.PlaneKind
			plane domain.ViewRangePlane
		}{
			{domain.PlaneTop, cfg.Top},
			{domain.PlaneCut, cfg.Cut},
			{domain.PlaneBottom, cfg.Bottom},
			{domain.PlaneViewDepth, cfg.ViewDepth},
		}
		for _, p := range planes {
			abs, err := r.ToAbsolute(p.plane, cfg.ViewLevelID)
			if err != nil {
				return err
			}
			out.Planes = append(out.Planes, PlaneElevation{
				Kind:     p.kind,
				LevelID:  p.plane.LevelID,
				Offset:   p.plane.Offset,
				Absolute: abs,
			})
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &out, warnings, nil
}

// Levels lists the document's levels with elevations normalized to both
// shared origins, sorted as the host returns them.
func (s *viewRangeService) Levels(ctx context.Context) ([]LevelInfo, error) {
	var infos []LevelInfo
	err := s.queue.Do(ctx, "viewrange.levels", func() error {
		r := viewrange.NewResolver(s.doc)
		surveyZ := s.doc.SurveyPoint().Z
		for _, l := range s.doc.Levels() {
			abs, err := r.AbsoluteElevation(l.ID())
			if err != nil {
				return err
			}
			infos = append(infos, LevelInfo{
				ID:       l.ID(),
				Name:     l.Name(),
				Absolute: abs,
				Survey:   abs - surveyZ,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}
