package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"revos/internal/domain"
	"revos/internal/host"
	"revos/internal/host/event"
	"revos/internal/mapping"
)

// SetParameterInput is the DTO for one parameter write.
type SetParameterInput struct {
	ElementID int64       `json:"element_id" binding:"required"`
	Name      string      `json:"name" binding:"required"`
	Value     interface{} `json:"value" binding:"required"`
}

// ParameterService resolves and mutates element parameters by their
// natural-language names.
type ParameterService interface {
	Get(ctx context.Context, elementID int64, name string) (*domain.ParameterValue, error)
	GetMany(ctx context.Context, elementID int64, names []string) (map[string]domain.ParameterValue, error)
	Set(ctx context.Context, input SetParameterInput) error
	SetBatch(ctx context.Context, inputs []SetParameterInput) ([]domain.BatchItemResult, error)
}

type parameterService struct {
	doc   host.Document
	queue *event.Queue
	reg   *mapping.Registry
}

// NewParameterService creates a new ParameterService implementation.
func NewParameterService(doc host.Document, queue *event.Queue, reg *mapping.Registry) ParameterService {
	return &parameterService{doc: doc, queue: queue, reg: reg}
}

func (s *parameterService) Get(ctx context.Context, elementID int64, name string) (*domain.ParameterValue, error) {
	var value domain.ParameterValue
	err := s.queue.Do(ctx, "parameter.get", func() error {
		e, ok := s.doc.Element(elementID)
		if !ok {
			return fmt.Errorf("%w: element %d", domain.ErrElementNotFound, elementID)
		}
		v, err := s.reg.GetParameter(e, name, e.Category())
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetMany reads several parameters in one host round trip. Unresolvable names
// come back as empty values instead of failing the whole read.
func (s *parameterService) GetMany(ctx context.Context, elementID int64, names []string) (map[string]domain.ParameterValue, error) {
	values := make(map[string]domain.ParameterValue, len(names))
	err := s.queue.Do(ctx, "parameter.get_many", func() error {
		e, ok := s.doc.Element(elementID)
		if !ok {
			return fmt.Errorf("%w: element %d", domain.ErrElementNotFound, elementID)
		}
		for _, name := range names {
			v, err := s.reg.GetParameter(e, name, e.Category())
			if err != nil {
				values[name] = domain.EmptyValue(err.Error())
				continue
			}
			values[name] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *parameterService) Set(ctx context.Context, input SetParameterInput) error {
	return s.queue.Do(ctx, "parameter.set", func() error {
		return s.setOne(input)
	})
}

// SetBatch writes each parameter in its own transaction and reports per-item
// outcomes; one failed write never blocks the others.
func (s *parameterService) SetBatch(ctx context.Context, inputs []SetParameterInput) ([]domain.BatchItemResult, error) {
	results := make([]domain.BatchItemResult, 0, len(inputs))
	err := s.queue.Do(ctx, "parameter.set_batch", func() error {
		for _, input := range inputs {
			r := domain.BatchItemResult{ElementID: input.ElementID, Success: true}
			if err := s.setOne(input); err != nil {
				r.Success = false
				r.Error = err.Error()
			}
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// setOne runs on the host thread.
func (s *parameterService) setOne(input SetParameterInput) error {
	e, ok := s.doc.Element(input.ElementID)
	if !ok {
		return fmt.Errorf("%w: element %d", domain.ErrElementNotFound, input.ElementID)
	}
	cat := e.Category()

	names := s.reg.ExpandAlias(cat, input.Name)
	if len(names) > 1 {
		return fmt.Errorf("%w: %q maps to %s; set each parameter separately",
			domain.ErrAmbiguousAlias, input.Name, strings.Join(names, " and "))
	}

	p, ok := s.reg.FindParameter(e, input.Name, cat)
	if !ok {
		return fmt.Errorf("%w: %q on element %d", domain.ErrParameterNotFound, input.Name, input.ElementID)
	}

	converted, err := s.reg.ConvertValue(cat, input.Name, input.Value)
	if err != nil {
		return err
	}
	value, err := slotValue(p.Kind(), converted)
	if err != nil {
		return err
	}

	tx := s.doc.NewTransaction("Set parameter " + input.Name)
	if err := tx.Start(); err != nil {
		return err
	}
	if err := p.Set(value); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback after parameter set failure on element %d: %v", input.ElementID, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// slotValue coerces a converted value to the storage kind of the target slot.
func slotValue(kind domain.StorageKind, v interface{}) (domain.ParameterValue, error) {
	switch kind {
	case domain.StorageDouble:
		f, err := coerceFloat(v)
		if err != nil {
			return domain.ParameterValue{}, err
		}
		return domain.DoubleValue(f), nil
	case domain.StorageInteger, domain.StorageElementRef:
		n, err := coerceInt(v)
		if err != nil {
			return domain.ParameterValue{}, err
		}
		pv := domain.IntegerValue(n)
		pv.Kind = kind
		return pv, nil
	case domain.StorageString:
		return domain.StringValue(fmt.Sprint(v)), nil
	}
	return domain.ParameterValue{}, fmt.Errorf("%w: unsupported storage kind %q", domain.ErrHostOperation, kind)
}

func coerceFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot use %q as a number", t)
		}
		return f, nil
	}
	return 0, fmt.Errorf("cannot use %T as a number", v)
}

func coerceInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot use %q as an integer", t)
		}
		return n, nil
	}
	return 0, fmt.Errorf("cannot use %T as an integer", v)
}
