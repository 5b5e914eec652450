package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/repo"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportService builds read-only snapshots of a user's data.
type ExportService struct {
	todos      repo.TodoRepo
	categories repo.CategoryRepo
	users      repo.UserRepo
	now        func() time.Time
}

func NewExportService(t repo.TodoRepo, c repo.CategoryRepo, u repo.UserRepo) *ExportService {
	return &ExportService{
		todos:      t,
		categories: c,
		users:      u,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the exportedAt time source.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// Export collects the user's todos (display order), the categories they
// created and their profile. Nothing is written.
func (s *ExportService) Export(ctx context.Context, userID string) (dom.Export, error) {
	var (
		todos      []dom.Todo
		categories []dom.Category
		user       dom.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todos, err = s.todos.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.Owned(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dom.Export{}, err
	}
	return dom.Export{
		Todos:      todos,
		Categories: categories,
		ExportedAt: s.now(),
		User:       user.Profile(),
	}, nil
}

// Encode renders e as indented JSON or YAML, ending with a newline.
func Encode(e dom.Export, format string) ([]byte, error) {
	switch format {
	case "", FormatJSON:
		b, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode export: %w", err)
		}
		return append(b, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return nil, fmt.Errorf("encode export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode export: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, &dom.ValidationError{Field: "format", Reason: "must be json or yaml"}
}
