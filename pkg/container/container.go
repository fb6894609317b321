package container

import (
	"context"
	"fmt"
	"time"

	"github.com/boychukmk/library/internal/config"
	"github.com/boychukmk/library/internal/infrastructure/database"
	"github.com/boychukmk/library/pkg/jwt"
	"github.com/boychukmk/library/pkg/logger"

	"github.com/boychukmk/library/internal/domains/author"
	authorHandler "github.com/boychukmk/library/internal/domains/author/handler"
	authorRepo "github.com/boychukmk/library/internal/domains/author/repository"
	authorService "github.com/boychukmk/library/internal/domains/author/service"

	bookHandler "github.com/boychukmk/library/internal/domains/book/handler"
	bookRepo "github.com/boychukmk/library/internal/domains/book/repository"
	bookService "github.com/boychukmk/library/internal/domains/book/service"

	"github.com/boychukmk/library/internal/domains/user"
	userHandler "github.com/boychukmk/library/internal/domains/user/handler"
	userRepo "github.com/boychukmk/library/internal/domains/user/repository"
	userService "github.com/boychukmk/library/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager

	AuthorRepo author.Repository
	BookRepo   bookRepo.BookRepository
	UserRepo   user.Repository

	AuthorService author.Service
	BookService   bookService.BookService
	ImportService bookService.ImportService
	UserService   user.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	ImportHandler *bookHandler.ImportHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer builds the whole graph in dependency order: config, then
// database, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.AuthorRepo)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.ImportService = bookService.NewImportService(c.BookService)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ImportHandler = bookHandler.NewImportHandler(c.ImportService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Close releases held resources, currently just the database pool.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
