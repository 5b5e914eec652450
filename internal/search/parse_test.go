package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techpark-119/Todo-App/internal/domain"
)

func TestParse(t *testing.T) {
	c, err := Parse(Query{Q: "  milk ", Category: "Shopping", Priority: "HIGH", Completed: "false"})
	require.NoError(t, err)
	assert.Equal(t, "milk", c.Text)
	assert.Equal(t, "Shopping", c.Category)
	assert.Equal(t, domain.PriorityHigh, c.Priority)
	require.NotNil(t, c.Completed)
	assert.False(t, *c.Completed)

	c, err = Parse(Query{})
	require.NoError(t, err)
	assert.Equal(t, Criteria{}, c, "absent parameters are not criteria")
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse(Query{Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = Parse(Query{Completed: "yes"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseCompleted(t *testing.T) {
	v, err := ParseCompleted("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseCompleted("TRUE")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	_, err = ParseCompleted("1")
	assert.Error(t, err)
}
