package service

import (
	"context"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	dom "github.com/techpark-119/Todo-App/internal/domain"
)

var exportedAt = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

// seedExport builds two users' data and returns the export service and
// alice's id.
func seedExport(t *testing.T) (*ExportService, string) {
	t.Helper()
	ctx := context.Background()
	f := newFixture(t)

	alice, err := f.users.Create(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	bob, err := f.users.Create(ctx, "bob", "bob@example.com", "hash")
	require.NoError(t, err)

	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	report, err := f.todos.Create(ctx, alice.ID, dom.NewTodo{
		Title:       "Write report",
		Description: "Q1 numbers",
		Category:    "Work",
		Priority:    dom.PriorityHigh,
		DueDate:     &due,
		Tags:        []string{"finance", "q1"},
	})
	require.NoError(t, err)
	_, err = f.todos.Create(ctx, bob.ID, dom.NewTodo{Title: "Bob's todo"})
	require.NoError(t, err)
	milk, err := f.todos.Create(ctx, alice.ID, dom.NewTodo{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = f.categories.Create(ctx, alice.ID, "Garden", "#00ff00")
	require.NoError(t, err)
	_, err = f.categories.Create(ctx, bob.ID, "Music", "")
	require.NoError(t, err)

	require.NoError(t, f.todos.Reorder(ctx, alice.ID, []string{milk.ID, report.ID}))
	done := true
	_, err = f.todos.Update(ctx, alice.ID, report.ID, dom.TodoPatch{Completed: &done})
	require.NoError(t, err)

	svc := NewExportService(f.todos, f.categories, f.users).
		WithClock(func() time.Time { return exportedAt })
	return svc, alice.ID
}

func TestExportService_JSONGolden(t *testing.T) {
	svc, aliceID := seedExport(t)

	e, err := svc.Export(context.Background(), aliceID)
	require.NoError(t, err)
	body, err := Encode(e, FormatJSON)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export", body)
}

func TestExportService_Contents(t *testing.T) {
	svc, aliceID := seedExport(t)

	e, err := svc.Export(context.Background(), aliceID)
	require.NoError(t, err)

	require.Len(t, e.Todos, 2)
	assert.Equal(t, "Buy milk", e.Todos[0].Title, "display order")
	assert.Equal(t, "Write report", e.Todos[1].Title)
	require.Len(t, e.Categories, 1, "only categories the user created")
	assert.Equal(t, "Garden", e.Categories[0].Name)
	assert.Equal(t, dom.Profile{Username: "alice", Email: "alice@example.com"}, e.User)
	assert.Equal(t, exportedAt, e.ExportedAt)
}

func TestExportService_YAML(t *testing.T) {
	svc, aliceID := seedExport(t)

	e, err := svc.Export(context.Background(), aliceID)
	require.NoError(t, err)
	body, err := Encode(e, FormatYAML)
	require.NoError(t, err)

	s := string(body)
	assert.Contains(t, s, "username: alice")
	assert.Contains(t, s, "exportedAt: 2025-03-02T12:00:00Z")
	assert.NotContains(t, s, "hash")

	var back dom.Export
	require.NoError(t, yaml.Unmarshal(body, &back))
	assert.Equal(t, e.User, back.User)
	require.Len(t, back.Todos, 2)
	assert.Equal(t, e.Todos[1].Tags, back.Todos[1].Tags)
}

func TestExportService_UnknownUser(t *testing.T) {
	svc, _ := seedExport(t)
	_, err := svc.Export(context.Background(), "ghost")
	assert.ErrorIs(t, err, dom.ErrNotFound)
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(dom.Export{}, "xml")
	assert.ErrorIs(t, err, dom.ErrValidation)
}
