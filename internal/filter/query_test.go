package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/filter"
)

func TestParseQuery_GreaterThan(t *testing.T) {
	filters, warnings := filter.ParseQuery("walls with width greater than 200")
	require.Len(t, filters, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "width", filters[0].Name)
	assert.Equal(t, string(domain.OpGreater), filters[0].Operator)
	assert.Equal(t, 200.0, filters[0].Value)
	assert.Equal(t, "number", filters[0].ValueType)
}

func TestParseQuery_OperatorSynonyms(t *testing.T) {
	cases := map[string]domain.Operator{
		"doors with height over 7":            domain.OpGreater,
		"doors with height under 7":           domain.OpLess,
		"doors with height at least 7":        domain.OpGreaterEqual,
		"doors with height at most 7":         domain.OpLessEqual,
		"doors with height equal to 7":        domain.OpEqual,
		"conduits with diameter more than 2":  domain.OpGreater,
		"conduits with diameter smaller than 2": domain.OpLess,
	}
	for query, want := range cases {
		filters, _ := filter.ParseQuery(query)
		require.Len(t, filters, 1, "query %q", query)
		assert.Equal(t, string(want), filters[0].Operator, "query %q", query)
	}
}

func TestParseQuery_LongestOperatorWins(t *testing.T) {
	filters, _ := filter.ParseQuery("walls with length greater than or equal to 30")
	require.Len(t, filters, 1)
	assert.Equal(t, string(domain.OpGreaterEqual), filters[0].Operator)
	assert.Equal(t, 30.0, filters[0].Value)
}

func TestParseQuery_NoParameterMention(t *testing.T) {
	filters, warnings := filter.ParseQuery("show me everything on the second floor")
	assert.Empty(t, filters)
	require.Len(t, warnings, 1)
	assert.Equal(t, "QUERY_UNPARSED", warnings[0].Code)
}

func TestParseQuery_OperatorBeforeParameterIgnored(t *testing.T) {
	// The comparison phrase must occur after the parameter mention.
	filters, warnings := filter.ParseQuery("over the area")
	assert.Empty(t, filters)
	assert.NotEmpty(t, warnings)
}

func TestParseQuery_MultiClauseDropsRestWithWarning(t *testing.T) {
	filters, warnings := filter.ParseQuery("walls with width greater than 200 and height less than 4000")
	require.Len(t, filters, 1)
	assert.Equal(t, "width", filters[0].Name)

	var codes []string
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, "QUERY_EXTRA_CLAUSES")
}

func TestParseQuery_DecimalValue(t *testing.T) {
	filters, _ := filter.ParseQuery("conduits with diameter above 0.5")
	require.Len(t, filters, 1)
	assert.Equal(t, 0.5, filters[0].Value)
}
