package repo

import (
	"time"

	"github.com/google/uuid"
)

// Collection names in the store.
const (
	TodosCollection      = "todos"
	CategoriesCollection = "categories"
	UsersCollection      = "users"
)

type options struct {
	now   func() time.Time
	newID func() string
}

// Option configures a repository.
type Option func(*options)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides uuid generation.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
