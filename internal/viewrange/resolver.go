// Package viewrange reconciles view-range plane offsets between level-relative
// and absolute elevations. Levels can carry different elevation-base settings
// (project base point vs. survey point), so every comparison goes through an
// absolute elevation normalized against the project base point.
package viewrange

import (
	"fmt"
	"sort"

	"revos/internal/domain"
	"revos/internal/host"
)

// Resolver converts plane offsets for one document's level set. Construct per
// request; levels are read once.
type Resolver struct {
	levels map[int64]host.Level
	// byElevation is sorted ascending by absolute elevation for "level below"
	// resolution.
	byElevation []host.Level
	baseZ       float64
}

// NewResolver reads the document's levels and project base point.
func NewResolver(doc host.Document) *Resolver {
	r := &Resolver{
		levels: make(map[int64]host.Level),
		baseZ:  doc.BasePoint().Z,
	}
	for _, l := range doc.Levels() {
		r.levels[l.ID()] = l
		r.byElevation = append(r.byElevation, l)
	}
	sort.Slice(r.byElevation, func(i, j int) bool {
		return r.absolute(r.byElevation[i]) < r.absolute(r.byElevation[j])
	})
	return r
}

// absolute is the level's project elevation plus the base point Z. The raw
// elevation field is never used directly - it may already be base-relative,
// and adding the base offset to it would double-count.
func (r *Resolver) absolute(l host.Level) float64 {
	return l.ProjectElevation() + r.baseZ
}

// AbsoluteElevation returns the normalized absolute elevation of a level.
func (r *Resolver) AbsoluteElevation(levelID int64) (float64, error) {
	l, ok := r.levels[levelID]
	if !ok {
		return 0, fmt.Errorf("%w: level %d", domain.ErrLevelNotFound, levelID)
	}
	return r.absolute(l), nil
}

// LevelBelow finds the level with the greatest absolute elevation still below
// the reference level's. Returns false when no lower level exists.
func (r *Resolver) LevelBelow(refLevelID int64) (host.Level, bool) {
	ref, ok := r.levels[refLevelID]
	if !ok {
		return nil, false
	}
	refAbs := r.absolute(ref)
	var best host.Level
	for _, l := range r.byElevation {
		if l.ID() == refLevelID {
			continue
		}
		if r.absolute(l) < refAbs-domain.Epsilon {
			best = l
			continue
		}
		break
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// ToAbsolute converts a plane's level-relative offset to an absolute
// elevation. A "level below" reference resolves dynamically against the
// view's own level; when no lower level exists the offset is treated as the
// literal absolute elevation. Unlimited planes also yield their raw offset.
func (r *Resolver) ToAbsolute(plane domain.ViewRangePlane, viewLevelID int64) (float64, error) {
	switch plane.LevelID {
	case domain.LevelUnlimited:
		return plane.Offset, nil
	case domain.LevelBelow:
		below, ok := r.LevelBelow(viewLevelID)
		if !ok {
			return plane.Offset, nil
		}
		return r.absolute(below) + plane.Offset, nil
	default:
		abs, err := r.AbsoluteElevation(plane.LevelID)
		if err != nil {
			return 0, err
		}
		return abs + plane.Offset, nil
	}
}

// ToLevelOffset converts an absolute elevation back to an offset relative to
// the given level.
func (r *Resolver) ToLevelOffset(levelID int64, elevation float64) (float64, error) {
	abs, err := r.AbsoluteElevation(levelID)
	if err != nil {
		return 0, err
	}
	return elevation - abs, nil
}

// Validate checks the elevation ordering Top >= Cut >= Bottom >= ViewDepth
// with the standard tolerance. Unlimited planes are exempt from ordering and
// produce warnings; four unlimited planes produce a "no usable range" warning
// but remain valid. Ordering violations return ErrInvalidViewRange.
func (r *Resolver) Validate(cfg domain.ViewRangeConfig) ([]domain.Warning, error) {
	planes := []domain.ViewRangePlane{cfg.Top, cfg.Cut, cfg.Bottom, cfg.ViewDepth}
	labels := []string{"Top", "Cut", "Bottom", "View Depth"}

	var warnings []domain.Warning
	unlimited := 0
	elev := make([]float64, len(planes))
	bounded := make([]bool, len(planes))

	for i, p := range planes {
		if p.Unlimited() {
			unlimited++
			warnings = append(warnings, domain.Warning{
				Code:    "PLANE_UNLIMITED",
				Message: fmt.Sprintf("%s plane is unlimited and excluded from ordering checks", labels[i]),
			})
			continue
		}
		abs, err := r.ToAbsolute(p, cfg.ViewLevelID)
		if err != nil {
			return warnings, err
		}
		elev[i] = abs
		bounded[i] = true
	}

	if unlimited == len(planes) {
		warnings = append(warnings, domain.Warning{
			Code:    "NO_USABLE_RANGE",
			Message: "all view range planes are unlimited; no usable range",
		})
		return warnings, nil
	}

	// Compare each bounded plane against the next bounded one below it.
	prev := -1
	for i := range planes {
		if !bounded[i] {
			continue
		}
		if prev >= 0 && elev[prev] < elev[i]-domain.Epsilon {
			return warnings, fmt.Errorf("%w: %s plane (%.4f) is above %s plane (%.4f)",
				domain.ErrInvalidViewRange, labels[i], elev[i], labels[prev], elev[prev])
		}
		prev = i
	}
	return warnings, nil
}
