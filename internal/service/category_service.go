package service

import (
	"fmt"

	"revos/internal/domain"
	"revos/internal/mapping"
)

// CategoryInfo describes resolution capabilities for one category.
type CategoryInfo struct {
	Category   domain.Category     `json:"category"`
	HasMapping bool                `json:"has_mapping"`
	Parameters []string            `json:"parameters,omitempty"`
	Common     []string            `json:"common,omitempty"`
	Aliases    map[string][]string `json:"aliases,omitempty"`
}

// CategoryService exposes the parameter-resolution capabilities per category.
// Pure metadata; no host access, so no event queue involved.
type CategoryService interface {
	List() []CategoryInfo
	Get(name string) (*CategoryInfo, error)
}

type categoryService struct {
	reg *mapping.Registry
}

// NewCategoryService creates a new CategoryService implementation.
func NewCategoryService(reg *mapping.Registry) CategoryService {
	return &categoryService{reg: reg}
}

func (s *categoryService) List() []CategoryInfo {
	cats := domain.AllCategories
	infos := make([]CategoryInfo, 0, len(cats))
	for _, cat := range cats {
		infos = append(infos, s.describe(cat))
	}
	return infos
}

func (s *categoryService) Get(name string) (*CategoryInfo, error) {
	cat, ok := domain.ParseCategory(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, name)
	}
	info := s.describe(cat)
	return &info, nil
}

func (s *categoryService) describe(cat domain.Category) CategoryInfo {
	info := CategoryInfo{
		Category:   cat,
		HasMapping: s.reg.HasMapping(cat),
		Common:     s.reg.CommonParameterNames(cat),
		Aliases:    s.reg.Aliases(cat),
	}
	if m, ok := s.reg.Mapping(cat); ok {
		info.Parameters = m.MappedNames()
	}
	return info
}
