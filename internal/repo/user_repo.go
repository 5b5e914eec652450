package repo

import (
	"context"
	"strings"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/store"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (dom.User, error)
}

var _ UserRepo = (*CollectionUserRepo)(nil)

// CollectionUserRepo implements UserRepo on the "users" store collection.
type CollectionUserRepo struct {
	users *store.Collection[dom.User]
	opts  options
}

// NewUserRepo returns a new CollectionUserRepo.
func NewUserRepo(s *store.Store, opts ...Option) *CollectionUserRepo {
	return &CollectionUserRepo{
		users: store.NewCollection[dom.User](s, UsersCollection),
		opts:  buildOptions(opts),
	}
}

// Init makes sure the collection exists.
func (r *CollectionUserRepo) Init(ctx context.Context) error {
	_, err := r.users.Ensure(ctx, nil)
	return err
}

// GetByID returns the user with the given id.
func (r *CollectionUserRepo) GetByID(ctx context.Context, id string) (dom.User, error) {
	for _, u := range r.users.Load(ctx) {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, dom.ErrNotFound
}

// GetByEmail returns the user registered with email.
func (r *CollectionUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	for _, u := range r.users.Load(ctx) {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, dom.ErrNotFound
}

// Create inserts a new user. Either a taken username or a taken email
// rejects the registration with ErrUserExists.
func (r *CollectionUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return dom.User{}, dom.Required("username")
	case email == "":
		return dom.User{}, dom.Required("email")
	case passwordHash == "":
		return dom.User{}, dom.Required("password")
	}

	u := dom.User{
		ID:        r.opts.newID(),
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: r.opts.now(),
	}
	err := r.users.Update(ctx, func(all []dom.User) ([]dom.User, error) {
		for _, existing := range all {
			if existing.Username == username || existing.Email == email {
				return nil, dom.ErrUserExists
			}
		}
		return append(all, u), nil
	})
	if err != nil {
		return dom.User{}, err
	}
	return u, nil
}
