package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/repository/memory"
)

func seed(t *testing.T, repo interface {
	Create(ctx context.Context, entry *domain.CommandLog) error
}, n int, tool string) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), &domain.CommandLog{
			ID:        uuid.New(),
			Tool:      tool,
			RequestID: fmt.Sprintf("req-%d", i),
		})
		require.NoError(t, err)
	}
}

func TestMemoryCommandLogRepo_ListNewestFirst(t *testing.T) {
	repo := memory.NewCommandLogRepo(10)
	seed(t, repo, 3, "/api/v1/reports")

	entries, total, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, entries, 3)
	assert.Equal(t, "req-2", entries[0].RequestID)
	assert.Equal(t, "req-0", entries[2].RequestID)
}

func TestMemoryCommandLogRepo_CapacityEviction(t *testing.T) {
	repo := memory.NewCommandLogRepo(2)
	seed(t, repo, 3, "/api/v1/reports")

	entries, total, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, entries, 2)
	// Oldest entry fell off.
	assert.Equal(t, "req-2", entries[0].RequestID)
	assert.Equal(t, "req-1", entries[1].RequestID)
}

func TestMemoryCommandLogRepo_ListByTool(t *testing.T) {
	repo := memory.NewCommandLogRepo(10)
	seed(t, repo, 2, "/api/v1/reports")
	seed(t, repo, 1, "/api/v1/elements/filter")

	entries, total, err := repo.ListByTool(context.Background(), "/api/v1/reports", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, e := range entries {
		assert.Equal(t, "/api/v1/reports", e.Tool)
	}
}

func TestMemoryCommandLogRepo_Pagination(t *testing.T) {
	repo := memory.NewCommandLogRepo(10)
	seed(t, repo, 5, "/api/v1/reports")

	entries, total, err := repo.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-2", entries[0].RequestID)
	assert.Equal(t, "req-1", entries[1].RequestID)
}
