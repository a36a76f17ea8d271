package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/mapping"
	"revos/internal/service"
)

func TestCategoryService_List(t *testing.T) {
	svc := service.NewCategoryService(mapping.NewRegistry())

	infos := svc.List()
	require.Len(t, infos, len(domain.AllCategories))

	byCat := make(map[domain.Category]service.CategoryInfo, len(infos))
	for _, info := range infos {
		byCat[info.Category] = info
	}
	for _, cat := range domain.AllCategories {
		info, ok := byCat[cat]
		require.True(t, ok, "category %s missing from listing", cat)
		assert.True(t, info.HasMapping, "category %s", cat)
	}

	walls := byCat[domain.CategoryWall]
	assert.NotEmpty(t, walls.Parameters)
	assert.NotEmpty(t, walls.Common)
}

func TestCategoryService_Get(t *testing.T) {
	svc := service.NewCategoryService(mapping.NewRegistry())

	info, err := svc.Get("walls")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWall, info.Category)
	assert.True(t, info.HasMapping)

	_, err = svc.Get("teapots")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
