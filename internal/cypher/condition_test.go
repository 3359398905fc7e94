package cypher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

func TestCompileCondition_OperatorTable(t *testing.T) {
	cases := []struct {
		operator graph.Operator
		want     string
	}{
		{graph.OperatorEqual, "n.age = $s0_age_equal"},
		{graph.OperatorNotEqual, "n.age <> $s0_age_not_equal"},
		{graph.OperatorGreater, "n.age > $s0_age_greater"},
		{graph.OperatorGreaterEqual, "n.age >= $s0_age_greater_equal"},
		{graph.OperatorLess, "n.age < $s0_age_less"},
		{graph.OperatorLessEqual, "n.age <= $s0_age_less_equal"},
		{graph.OperatorContains, "n.age CONTAINS $s0_age_contains"},
		{graph.OperatorStartsWith, "n.age STARTS WITH $s0_age_starts_with"},
		{graph.OperatorEndsWith, "n.age ENDS WITH $s0_age_ends_with"},
		{graph.OperatorRegex, "n.age =~ $s0_age_regex"},
	}

	for _, tc := range cases {
		t.Run(string(tc.operator), func(t *testing.T) {
			params := newParamTable()
			e, err := compileCondition(graph.PropertyCondition{
				PropertyName: "age",
				Operator:     tc.operator,
				Value:        25,
			}, "n", "s0", params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, render(e))
		})
	}
}

func TestCompileCondition_InBindsListParameter(t *testing.T) {
	params := newParamTable()
	e, err := compileCondition(graph.PropertyCondition{
		PropertyName: "status",
		Operator:     graph.OperatorIn,
		Value:        []string{"open", "pending"},
	}, "n", "s0", params)
	require.NoError(t, err)

	assert.Equal(t, "n.status IN $s0_status_in", render(e))
	assert.Equal(t, []string{"open", "pending"}, params.values["s0_status_in"])
}

func TestCompileCondition_NotInNegates(t *testing.T) {
	params := newParamTable()
	e, err := compileCondition(graph.PropertyCondition{
		PropertyName: "status",
		Operator:     graph.OperatorNotIn,
		Value:        []string{"closed"},
	}, "r", "rel1", params)
	require.NoError(t, err)

	assert.Equal(t, "NOT r.status IN $rel1_status_not_in", render(e))
}

func TestCompileCondition_UnknownOperatorFails(t *testing.T) {
	params := newParamTable()
	_, err := compileCondition(graph.PropertyCondition{
		PropertyName: "age",
		Operator:     graph.Operator("LIKE"),
		Value:        25,
	}, "n", "s0", params)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operator")
	assert.Empty(t, params.values)
}

func TestCompileCondition_ValueNeverInText(t *testing.T) {
	params := newParamTable()
	e, err := compileCondition(graph.PropertyCondition{
		PropertyName: "name",
		Operator:     graph.OperatorEqual,
		Value:        "') DETACH DELETE n //",
	}, "n", "s0", params)
	require.NoError(t, err)

	assert.NotContains(t, render(e), "DETACH")
	assert.Equal(t, "') DETACH DELETE n //", params.values["s0_name_equal"])
}

func TestCompileCondition_QuotesNonIdentifierProperties(t *testing.T) {
	params := newParamTable()
	e, err := compileCondition(graph.PropertyCondition{
		PropertyName: "first name",
		Operator:     graph.OperatorEqual,
		Value:        "Ana",
	}, "n", "s0", params)
	require.NoError(t, err)

	assert.Equal(t, "n.`first name` = $s0_first_name_equal", render(e))
}

func TestCompileCondition_CollidingKeysGetSuffixed(t *testing.T) {
	params := newParamTable()
	cond := graph.PropertyCondition{PropertyName: "age", Operator: graph.OperatorGreater, Value: 20}

	first, err := compileCondition(cond, "n", "s0", params)
	require.NoError(t, err)
	cond.Value = 30
	second, err := compileCondition(cond, "n", "s0", params)
	require.NoError(t, err)

	assert.Equal(t, "n.age > $s0_age_greater", render(first))
	assert.Equal(t, "n.age > $s0_age_greater_2", render(second))
	assert.Len(t, params.values, 2)
	assert.Equal(t, 20, params.values["s0_age_greater"])
	assert.Equal(t, 30, params.values["s0_age_greater_2"])
}

func TestSanitizeParamFragment(t *testing.T) {
	assert.Equal(t, "first_name", sanitizeParamFragment("first.name"))
	assert.Equal(t, "a_b_c", sanitizeParamFragment("a-b c"))
	assert.Equal(t, "plain", sanitizeParamFragment("plain"))
}

func TestPlainIdentifier(t *testing.T) {
	assert.True(t, plainIdentifier("age"))
	assert.True(t, plainIdentifier("_private"))
	assert.True(t, plainIdentifier("camelCase9"))
	assert.False(t, plainIdentifier(""))
	assert.False(t, plainIdentifier("9lives"))
	assert.False(t, plainIdentifier("first name"))
	assert.False(t, plainIdentifier("with-dash"))
}
