package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/blobstore"
	"logistics/internal/adapters/out/eventbus"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	redisadapter "logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/demo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/metrics"
	"logistics/internal/notifications"
	"logistics/internal/pkg/latency"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	bus        ports.EventBus
	redis      *goredis.Client
	closers    []func() error

	metrics *metrics.Metrics
	feed    *notifications.Feed
	latency latency.Simulator
	ranker  services.DistanceRanker
}

// NewCompositionRoot opens the configured storage and event bus and loads or
// seeds the entity store. A freshly seeded store gets the demo assignments.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	origin, err := kernel.NewCoordinates(cfg.OriginLatitude, cfg.OriginLongitude)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	ranker, err := services.NewDistanceRanker(origin)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		feed:    notifications.NewFeed(cfg.NotificationTTL, notifications.WithObserver(m)),
		latency: latency.New(cfg.APILatency),
		ranker:  ranker,
	}

	if err := c.open(ctx); err != nil {
		return nil, errors.Join(err, c.closeResources())
	}
	return c, nil
}

func (c *CompositionRoot) open(ctx context.Context) error {
	blobs, err := c.blobStore(ctx)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", c.cfg.StorageDriver, err)
	}

	c.bus, err = c.eventBus(ctx)
	if err != nil {
		return fmt.Errorf("open %s event bus: %w", c.cfg.EventBus, err)
	}

	seed, err := memory.DefaultSeed(time.Now())
	if err != nil {
		return err
	}
	c.store, err = memory.Open(ctx, blobs, seed)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return c.store.Close(ctx)
	})
	c.uowFactory = memory.NewUnitOfWorkFactory(c.store)

	if c.store.Seeded() {
		c.logger.Info("store seeded", "storage", c.cfg.StorageDriver)
		scenario, err := c.demoScenario()
		if err != nil {
			return err
		}
		if err := scenario.Seed(ctx); err != nil {
			c.logger.Warn("demo assignments incomplete", "error", err)
		}
	}
	return nil
}

func (c *CompositionRoot) blobStore(ctx context.Context) (ports.BlobStore, error) {
	switch c.cfg.StorageDriver {
	case StorageMemory:
		return blobstore.NewMemoryStore(), nil
	case StoragePostgres:
		db, err := postgres.OpenDB(postgres.ConnectionConfig{
			Host:     c.cfg.DBHost,
			Port:     c.cfg.DBPort,
			User:     c.cfg.DBUser,
			Password: c.cfg.DBPassword,
			Name:     c.cfg.DBName,
			SSLMode:  c.cfg.DBSslMode,
			Driver:   c.cfg.DBDriver,
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, sqlDB.Close)

		store := postgres.NewBlobStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case StorageRedis:
		rdb, err := c.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		return redisadapter.NewBlobStore(rdb, c.cfg.RedisKeyPrefix), nil
	default:
		return blobstore.NewFileStore(c.cfg.StorageDir)
	}
}

func (c *CompositionRoot) eventBus(ctx context.Context) (ports.EventBus, error) {
	if c.cfg.EventBus != EventBusRedis {
		return eventbus.NewBroker(), nil
	}
	rdb, err := c.redisClient(ctx)
	if err != nil {
		return nil, err
	}
	return redisadapter.NewEventBus(rdb, c.cfg.RedisKeyPrefix, c.logger), nil
}

// redisClient connects once and shares the client between storage and bus.
func (c *CompositionRoot) redisClient(ctx context.Context) (*goredis.Client, error) {
	if c.redis != nil {
		return c.redis, nil
	}
	rdb, err := redisadapter.NewClient(ctx, c.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	c.redis = rdb
	c.closers = append(c.closers, rdb.Close)
	return rdb, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.latency)
}

func (c *CompositionRoot) CreateChangeObservationCommandHandler() commands.ChangeObservationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeObservationCommandHandler(f, c.latency)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler(l commands.Latency) commands.AssignVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f, l)
}

func (c *CompositionRoot) CreateUnassignVehicleCommandHandler() commands.UnassignVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.bus, c.logger)
}

func (c *CompositionRoot) CreateToggleFavouriteCommandHandler(l commands.Latency) commands.ToggleFavouriteCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleFavouriteCommandHandler(f, l)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store, c.store, c.latency)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.store, c.store)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.store, c.latency)
}

func (c *CompositionRoot) CreateGetVehicleDetailsQueryHandler() queries.GetVehicleDetailsQueryHandler {
	return queries.NewGetVehicleDetailsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetVehicleScheduleQueryHandler() queries.GetVehicleScheduleQueryHandler {
	return queries.NewGetVehicleScheduleQueryHandler(c.store, c.store, c.ranker)
}

// demoScenario runs through the regular handlers without simulated latency.
func (c *CompositionRoot) demoScenario() (*demo.Scenario, error) {
	return demo.NewScenario(
		c.store,
		c.store,
		c.CreateAssignVehicleCommandHandler(latency.None()),
		c.CreateToggleFavouriteCommandHandler(latency.None()),
		c.CreateCompleteDeliveryCommandHandler(),
		c.logger,
	)
}

// CreateRouter builds the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	handlers := httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeObservation: c.CreateChangeObservationCommandHandler(),
		AssignVehicle:     c.CreateAssignVehicleCommandHandler(c.latency),
		UnassignVehicle:   c.CreateUnassignVehicleCommandHandler(),
		CompleteDelivery:  c.CreateCompleteDeliveryCommandHandler(),
		ToggleFavourite:   c.CreateToggleFavouriteCommandHandler(c.latency),

		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetUnassigned:      c.CreateGetUnassignedOrdersQueryHandler(),
		GetOrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
		ListVehicles:       c.CreateListVehiclesQueryHandler(),
		GetVehicleDetails:  c.CreateGetVehicleDetailsQueryHandler(),
		GetVehicleSchedule: c.CreateGetVehicleScheduleQueryHandler(),
	}

	server := httpadapter.NewServer(handlers, c.feed, c.bus, c.logger)
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		RateLimit: c.cfg.RateLimit,
		LogLevel:  httpadapter.ParseLogLevel(c.cfg.LogLevel),
	}, server, c.metrics, c.logger)
}

// CreateNotificationListener feeds bus events into the notification feed.
func (c *CompositionRoot) CreateNotificationListener() (*notifications.Listener, error) {
	return notifications.NewListener(c.feed, c.bus, c.metrics, c.logger)
}

// CreateJobManager schedules notification expiry and, when enabled, the
// demo deliveries.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var completer jobs.DemoCompleter
	if c.cfg.DemoAutocomplete {
		scenario, err := c.demoScenario()
		if err != nil {
			return nil, err
		}
		completer = scenario
	}
	return jobs.NewJobManager(c.feed, completer, demo.CompletionDelays, c.metrics, c.logger), nil
}

// Close flushes the store and releases connections in reverse order.
func (c *CompositionRoot) Close() error {
	return c.closeResources()
}

func (c *CompositionRoot) closeResources() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
