package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/techpark-119/Todo-App/internal/auth"
	"github.com/techpark-119/Todo-App/internal/config"
	"github.com/techpark-119/Todo-App/internal/repo"
	"github.com/techpark-119/Todo-App/internal/service"
	"github.com/techpark-119/Todo-App/internal/store"
)

type App struct {
	cfg      config.Config
	logger   *log.Logger
	store    *store.Store
	redis    *redis.Client
	services *Services
	router   *gin.Engine
}

// Services bundles the repositories and services over one store.
type Services struct {
	TodoRepo     *repo.CollectionTodoRepo
	CategoryRepo *repo.CollectionCategoryRepo
	UserRepo     *repo.CollectionUserRepo

	Todos      *service.TodoService
	Categories *service.CategoryService
	Users      *service.UserService
	Export     *service.ExportService
}

// NewServices wires repositories and services over s.
func NewServices(s *store.Store, logger *log.Logger, opts ...repo.Option) *Services {
	todos := repo.NewTodoRepo(s, opts...)
	categories := repo.NewCategoryRepo(s, opts...)
	users := repo.NewUserRepo(s, opts...)
	return &Services{
		TodoRepo:     todos,
		CategoryRepo: categories,
		UserRepo:     users,
		Todos:        service.NewTodoService(todos, logger),
		Categories:   service.NewCategoryService(categories, logger),
		Users:        service.NewUserService(users, logger),
		Export:       service.NewExportService(todos, categories, users),
	}
}

// Init creates the collections and seeds the default categories.
func (s *Services) Init(ctx context.Context) error {
	if err := s.UserRepo.Init(ctx); err != nil {
		return fmt.Errorf("init users: %w", err)
	}
	if err := s.TodoRepo.Init(ctx); err != nil {
		return fmt.Errorf("init todos: %w", err)
	}
	if err := s.CategoryRepo.Init(ctx); err != nil {
		return fmt.Errorf("init categories: %w", err)
	}
	return nil
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	if cfg.NeedsRedis() {
		rdb, err := NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
	}

	st, err := OpenStore(context.Background(), cfg, a.redis, logger)
	if err != nil {
		a.closeRedis()
		return nil, err
	}
	a.store = st

	a.services = NewServices(st, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.services.Init(ctx); err != nil {
		_ = a.store.Close()
		a.closeRedis()
		return nil, err
	}

	var sessions auth.Sessions
	if cfg.Session.Store == config.SessionsRedis {
		sessions = auth.NewRedisStore(a.redis, cfg.Session.TTL.Duration())
	} else {
		sessions = auth.NewMemoryStore(cfg.Session.TTL.Duration())
	}

	a.router = newRouter(cfg, a.services, sessions)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	var err error
	if a.store != nil {
		err = a.store.Close()
	}
	// the redis store backend owns the client and closed it already
	if a.cfg.Store.Driver != config.DriverRedis {
		a.closeRedis()
	}
	return err
}

func (a *App) closeRedis() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

// OpenStore opens the backend selected by cfg.Store.Driver. rdb is used only
// by the redis driver.
func OpenStore(ctx context.Context, cfg config.Config, rdb *redis.Client, logger *log.Logger) (*store.Store, error) {
	var (
		b   store.Backend
		err error
	)
	switch cfg.Store.Driver {
	case config.DriverFile:
		b, err = store.NewFileBackend(cfg.Store.DataDir)
	case config.DriverSQLite:
		b, err = store.OpenSQLite(cfg.Store.SQLitePath)
	case config.DriverPostgres:
		b, err = store.OpenPostgres(ctx, cfg.PG.DSN)
	case config.DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis store: no client")
		}
		b = store.NewRedisBackend(rdb)
	case config.DriverMemory:
		b = store.NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	logger.Info("store opened", "driver", cfg.Store.Driver)
	return store.New(b, logger), nil
}

// NewRedis connects and pings.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, svcs *Services, sessions auth.Sessions) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, svcs, sessions)
	return r
}
