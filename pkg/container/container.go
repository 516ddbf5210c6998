package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/config"
	bookhandler "bookstore-backoffice/internal/domains/book/handler"
	bookrepo "bookstore-backoffice/internal/domains/book/repository"
	bookservice "bookstore-backoffice/internal/domains/book/service"
	customerhandler "bookstore-backoffice/internal/domains/customer/handler"
	customerrepo "bookstore-backoffice/internal/domains/customer/repository"
	customerservice "bookstore-backoffice/internal/domains/customer/service"
	offerhandler "bookstore-backoffice/internal/domains/offer/handler"
	offerrepo "bookstore-backoffice/internal/domains/offer/repository"
	offerservice "bookstore-backoffice/internal/domains/offer/service"
	orderhandler "bookstore-backoffice/internal/domains/order/handler"
	orderrepo "bookstore-backoffice/internal/domains/order/repository"
	orderservice "bookstore-backoffice/internal/domains/order/service"
	packhandler "bookstore-backoffice/internal/domains/pack/handler"
	packrepo "bookstore-backoffice/internal/domains/pack/repository"
	packservice "bookstore-backoffice/internal/domains/pack/service"
	statshandler "bookstore-backoffice/internal/domains/stats/handler"
	statsrepo "bookstore-backoffice/internal/domains/stats/repository"
	statsservice "bookstore-backoffice/internal/domains/stats/service"
	infracache "bookstore-backoffice/internal/infrastructure/cache"
	"bookstore-backoffice/internal/infrastructure/database"
	"bookstore-backoffice/internal/infrastructure/queue"
	"bookstore-backoffice/internal/infrastructure/storage"
	"bookstore-backoffice/pkg/cache"
	"bookstore-backoffice/pkg/logger"
)

// Container wires configuration, infrastructure and the domain stacks for
// the API process. Everything is constructed once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	asynqClient *asynq.Client

	// Exposed for the worker process.
	Storage        *storage.MinIOStorage
	ImageProcessor *storage.ImageProcessor
	OrderRepo      orderrepo.RepositoryInterface
	OfferService   offerservice.ServiceInterface

	BookHandler     *bookhandler.BookHandler
	CustomerHandler *customerhandler.CustomerHandler
	OrderHandler    *orderhandler.OrderHandler
	PackHandler     *packhandler.PackHandler
	OfferHandler    *offerhandler.OfferHandler
	StatsHandler    *statshandler.StatsHandler
}

func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if connector, ok := redisCache.(interface{ Connect(context.Context) error }); ok {
		if err := connector.Connect(ctx); err != nil {
			return nil, err
		}
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, err
	}
	imageProcessor := storage.NewImageProcessor()

	enqueuer, asynqClient := queue.NewEnqueuer(cfg.Redis.Host)

	// Repositories
	bookRepository := bookrepo.NewPostgresRepository(db.Pool)
	customerRepository := customerrepo.NewPostgresRepository(db.Pool)
	orderRepository := orderrepo.NewPostgresRepository(db.Pool)
	packRepository := packrepo.NewPostgresRepository(db.Pool)
	offerRepository := offerrepo.NewPostgresRepository(db.Pool)
	statsRepository := statsrepo.NewPostgresRepository(db.Pool)

	// Services
	bookService := bookservice.NewBookService(bookRepository, redisCache)
	imageService := bookservice.NewImageService(bookRepository, minioStorage, imageProcessor, enqueuer)
	importService := bookservice.NewImportService(bookRepository)
	customerService := customerservice.NewCustomerService(customerRepository)
	orderService := orderservice.NewOrderService(
		orderRepository, customerService, bookRepository,
		enqueuer, redisCache, cfg.Order.DeductStock)
	packService := packservice.NewPackService(packRepository)
	offerService := offerservice.NewOfferService(offerRepository)
	statsService := statsservice.NewStatsService(statsRepository, redisCache)

	logger.Info("container initialized", map[string]interface{}{
		"env":          cfg.App.Environment,
		"deduct_stock": cfg.Order.DeductStock,
	})

	return &Container{
		Config:          cfg,
		DB:              db,
		Cache:           redisCache,
		asynqClient:     asynqClient,
		Storage:         minioStorage,
		ImageProcessor:  imageProcessor,
		OrderRepo:       orderRepository,
		OfferService:    offerService,
		BookHandler:     bookhandler.NewBookHandler(bookService, imageService, importService),
		CustomerHandler: customerhandler.NewCustomerHandler(customerService),
		OrderHandler:    orderhandler.NewOrderHandler(orderService),
		PackHandler:     packhandler.NewPackHandler(packService),
		OfferHandler:    offerhandler.NewOfferHandler(offerService),
		StatsHandler:    statshandler.NewStatsHandler(statsService),
	}, nil
}

// Cleanup releases external connections; called on shutdown.
func (c *Container) Cleanup() {
	if c.asynqClient != nil {
		if err := c.asynqClient.Close(); err != nil {
			logger.Warn("failed to close asynq client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
