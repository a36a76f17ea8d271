package service

import (
	"context"
	"fmt"
	"log"

	"revos/internal/domain"
	"revos/internal/extract"
	"revos/internal/filter"
	"revos/internal/host"
	"revos/internal/host/event"
	"revos/internal/mapping"
)

// FilterInput is the DTO for element filter requests.
type FilterInput struct {
	Criteria domain.FilterCriteria `json:"criteria"`
	Detail   string                `json:"detail,omitempty"`
	Tabular  bool                  `json:"tabular,omitempty"`
}

// FilterOutput carries the filtered elements in list or tabular form.
type FilterOutput struct {
	Count    int                   `json:"count"`
	Elements []domain.ElementInfo  `json:"elements,omitempty"`
	Tabular  *domain.TabularResult `json:"tabular,omitempty"`
}

// ColorOverrideInput is the DTO for batch color override requests.
type ColorOverrideInput struct {
	ElementIDs []int64      `json:"element_ids" binding:"required,min=1"`
	Color      domain.Color `json:"color"`
}

// ElementService defines element query and mutation operations. Every host
// read and write is marshaled onto the host thread through the event queue.
type ElementService interface {
	Filter(ctx context.Context, input FilterInput) (*FilterOutput, []domain.Warning, error)
	Get(ctx context.Context, id int64, detail domain.DetailLevel) (*domain.ElementInfo, error)
	OverrideColor(ctx context.Context, input ColorOverrideInput) ([]domain.BatchItemResult, error)
}

type elementService struct {
	doc       host.Document
	queue     *event.Queue
	pipeline  *filter.Pipeline
	extractor *extract.Extractor
}

// NewElementService creates a new ElementService implementation.
func NewElementService(doc host.Document, queue *event.Queue, reg *mapping.Registry) ElementService {
	return &elementService{
		doc:       doc,
		queue:     queue,
		pipeline:  filter.NewPipeline(reg),
		extractor: extract.New(reg),
	}
}

func (s *elementService) Filter(ctx context.Context, input FilterInput) (*FilterOutput, []domain.Warning, error) {
	detail, ok := domain.ParseDetailLevel(input.Detail)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown detail level %q", domain.ErrInvalidFilter, input.Detail)
	}

	var (
		infos    []domain.ElementInfo
		warnings []domain.Warning
	)
	err := s.queue.Do(ctx, "element.filter", func() error {
		elems, warns, err := s.pipeline.Filter(s.doc, input.Criteria)
		if err != nil {
			return err
		}
		warnings = warns
		infos = s.extractor.Elements(elems, detail)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	out := &FilterOutput{Count: len(infos)}
	if input.Tabular {
		t := extract.Tabular(infos)
		out.Tabular = &t
	} else {
		out.Elements = infos
	}
	return out, warnings, nil
}

func (s *elementService) Get(ctx context.Context, id int64, detail domain.DetailLevel) (*domain.ElementInfo, error) {
	var info domain.ElementInfo
	err := s.queue.Do(ctx, "element.get", func() error {
		e, ok := s.doc.Element(id)
		if !ok {
			return fmt.Errorf("%w: element %d", domain.ErrElementNotFound, id)
		}
		info = s.extractor.Element(e, detail)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// OverrideColor applies a graphics override to each element in its own
// transaction, so one bad ID does not roll back the rest of the batch.
func (s *elementService) OverrideColor(ctx context.Context, input ColorOverrideInput) ([]domain.BatchItemResult, error) {
	results := make([]domain.BatchItemResult, 0, len(input.ElementIDs))
	err := s.queue.Do(ctx, "element.override_color", func() error {
		for _, id := range input.ElementIDs {
			results = append(results, s.overrideOne(id, input.Color))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *elementService) overrideOne(id int64, c domain.Color) domain.BatchItemResult {
	if _, ok := s.doc.Element(id); !ok {
		return domain.BatchItemResult{ElementID: id, Error: domain.ErrElementNotFound.Error()}
	}

	tx := s.doc.NewTransaction("Override element color")
	if err := tx.Start(); err != nil {
		return domain.BatchItemResult{ElementID: id, Error: err.Error()}
	}
	if err := s.doc.OverrideElementColor(id, c); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback after color override failure on element %d: %v", id, rbErr)
		}
		return domain.BatchItemResult{ElementID: id, Error: err.Error()}
	}
	if err := tx.Commit(); err != nil {
		return domain.BatchItemResult{ElementID: id, Error: err.Error()}
	}
	return domain.BatchItemResult{ElementID: id, Success: true}
}
