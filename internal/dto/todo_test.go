package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/techpark-119/Todo-App/internal/domain"
)

func TestDueAt(t *testing.T) {
	cases := []struct {
		in   string
		want *time.Time
	}{
		{`"2025-04-01"`, ptrTime(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))},
		{`"2025-04-01T10:30:00+02:00"`, ptrTime(time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC))},
		{`"2025-04-01T10:30:00"`, ptrTime(time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC))},
		{`null`, nil},
		{`""`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var req CreateTodoRequest
			require.NoError(t, json.Unmarshal([]byte(`{"title":"x","dueDate":`+tc.in+`}`), &req))
			assert.True(t, req.DueDate.IsSet())
			if tc.want == nil {
				assert.Nil(t, req.DueDate.Ptr())
				return
			}
			require.NotNil(t, req.DueDate.Ptr())
			assert.True(t, tc.want.Equal(*req.DueDate.Ptr()))
		})
	}

	var req CreateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &req))
	assert.False(t, req.DueDate.IsSet())

	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"next tuesday"}`), &req))
}

func TestTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`"a, b,,c "`, []string{"a", "b", "c"}},
		{`["a", " b ", ""]`, []string{"a", "b"}},
		{`null`, []string{}},
		{`""`, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var req UpdateTodoRequest
			require.NoError(t, json.Unmarshal([]byte(`{"tags":`+tc.in+`}`), &req))
			assert.True(t, req.Tags.IsSet())
			assert.Equal(t, tc.want, req.Tags.List())
		})
	}

	var req UpdateTodoRequest
	assert.Error(t, json.Unmarshal([]byte(`{"tags":[1,2]}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"tags":5}`), &req))
}

func TestUpdateTodoRequest_Patch(t *testing.T) {
	var req UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"priority":"High","dueDate":null,"completed":false}`), &req))

	p, err := req.Patch()
	require.NoError(t, err)
	require.NotNil(t, p.Priority)
	assert.Equal(t, dom.PriorityHigh, *p.Priority)
	assert.True(t, p.SetDueDate)
	assert.Nil(t, p.DueDate)
	require.NotNil(t, p.Completed)
	assert.False(t, *p.Completed)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Tags)

	empty, err := UpdateTodoRequest{}.Patch()
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	bad := "urgent"
	_, err = UpdateTodoRequest{Priority: &bad}.Patch()
	assert.ErrorIs(t, err, dom.ErrValidation)
}

func ptrTime(t time.Time) *time.Time { return &t }
