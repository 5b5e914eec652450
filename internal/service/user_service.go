package service

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/repo"
)

// UserService handles registration and credential checks.
type UserService struct {
	repo   repo.UserRepo
	cost   int
	logger *log.Logger
}

// NewUserService returns a new UserService.
func NewUserService(r repo.UserRepo, logger *log.Logger) *UserService {
	return &UserService{repo: r, cost: bcrypt.DefaultCost, logger: orDiscard(logger)}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (s *UserService) WithCost(cost int) *UserService {
	s.cost = cost
	return s
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, dom.ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dom.ErrNotFound) {
			return dom.User{}, dom.ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return dom.User{}, dom.ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	if password == "" {
		return dom.User{}, dom.Required("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		return dom.User{}, err
	}
	s.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return u, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (dom.User, error) {
	return s.repo.GetByID(ctx, id)
}
