package memdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/host/memdoc"
)

func wallDoc() *memdoc.Document {
	doc := memdoc.New()
	wall := memdoc.NewElement(1, "Wall 1", domain.CategoryWall, "Wall")
	wall.AddParam("ALL_MODEL_MARK", "Mark", domain.StringValue("W-01"))
	doc.AddElement(wall)
	return doc
}

func TestParameterSet_RequiresTransaction(t *testing.T) {
	doc := wallDoc()
	e, _ := doc.Element(1)
	p, ok := e.Parameter("ALL_MODEL_MARK")
	require.True(t, ok)

	err := p.Set(domain.StringValue("W-02"))
	assert.ErrorIs(t, err, domain.ErrHostOperation)
	assert.Equal(t, "W-01", p.String())
}

func TestTransaction_RollbackRestoresValues(t *testing.T) {
	doc := wallDoc()
	e, _ := doc.Element(1)
	p, _ := e.Parameter("ALL_MODEL_MARK")

	tx := doc.NewTransaction("edit")
	require.NoError(t, tx.Start())
	require.NoError(t, p.Set(domain.StringValue("W-02")))
	require.NoError(t, doc.OverrideElementColor(1, domain.Color{R: 200}))
	require.NoError(t, tx.Rollback())

	assert.Equal(t, "W-01", p.String())
	_, ok := doc.ColorOverride(1)
	assert.False(t, ok)
}

func TestTransaction_CommitKeepsValues(t *testing.T) {
	doc := wallDoc()
	e, _ := doc.Element(1)
	p, _ := e.Parameter("ALL_MODEL_MARK")

	tx := doc.NewTransaction("edit")
	require.NoError(t, tx.Start())
	require.NoError(t, p.Set(domain.StringValue("W-02")))
	require.NoError(t, tx.Commit())

	assert.Equal(t, "W-02", p.String())
}

func TestTransaction_NestedRejected(t *testing.T) {
	doc := wallDoc()

	first := doc.NewTransaction("outer")
	require.NoError(t, first.Start())
	defer func() { _ = first.Rollback() }()

	second := doc.NewTransaction("inner")
	assert.ErrorIs(t, second.Start(), domain.ErrHostOperation)
}

func TestReadOnlyParameterRejectsWrites(t *testing.T) {
	doc := memdoc.New()
	wall := memdoc.NewElement(1, "Wall 1", domain.CategoryWall, "Wall")
	wall.AddParam("WALL_ATTR_WIDTH_PARAM", "Width", domain.DoubleValue(0.5))
	doc.AddElement(wall)

	e, _ := doc.Element(1)
	p, _ := e.Parameter("WALL_ATTR_WIDTH_PARAM")
	p.(*memdoc.Parameter).ReadOnly()

	tx := doc.NewTransaction("edit")
	require.NoError(t, tx.Start())
	defer func() { _ = tx.Rollback() }()

	assert.ErrorIs(t, p.Set(domain.DoubleValue(1.0)), domain.ErrHostOperation)
}
