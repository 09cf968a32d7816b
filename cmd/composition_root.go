package cmd

import (
	"context"
	"log/slog"

	httpadapter "laundrytrack/internal/adapters/in/http"
	"laundrytrack/internal/adapters/out/kafka"
	"laundrytrack/internal/adapters/out/postgres"
	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/application/usecases/queries"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/core/ports"
	"laundrytrack/internal/jobs"
	"laundrytrack/internal/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: database, tag pool, event
// publisher, use case handlers and background jobs.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tagPool    *services.TagPool
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and an open
// database connection. The tag pool starts with the whole configured universe
// available; call RehydrateTagPool before serving to reserve tags that are
// already bound to stored orders.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	universe := make([]kernel.TagID, 0, len(config.TagUniverseList()))
	for _, value := range config.TagUniverseList() {
		tag, err := kernel.NewTagID(value)
		if err != nil {
			return nil, err
		}
		universe = append(universe, tag)
	}

	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher([]string{config.KafkaHost}, config.KafkaOrderStatusTopic)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tagPool:    services.NewTagPool(universe),
		publisher:  publisher,
		logger:     logger,
	}, nil
}

// RehydrateTagPool reserves every tag that is bound to a stored non-completed
// order, so a restart never hands out a tag that is physically attached to
// someone's laundry.
func (c *CompositionRoot) RehydrateTagPool(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bound, err := uow.OrderRepository().GetAllWithTag(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range bound {
		tag := aggregate.Tag()
		if tag == nil {
			continue
		}
		if err = c.tagPool.Reserve(*tag); err != nil {
			c.logger.Warn("stored order holds a tag outside the configured universe",
				"order_id", aggregate.ID().String(),
				"tag", tag.String(),
				"error", err)
		}
	}

	metrics.TagPoolAvailable.Set(float64(c.tagPool.AvailableCount()))
	c.logger.Info("tag pool rehydrated",
		"universe", len(c.config.TagUniverseList()),
		"available", c.tagPool.AvailableCount())

	return uow.Commit(ctx)
}

// Close releases external resources held by the graph.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateNfcOrderCommandHandler() commands.CreateNfcOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateNfcOrderCommandHandler(f, c.tagPool, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(
		f, c.config.Policy(), c.config.RequireStaff(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(
		f, c.tagPool, c.config.Policy(), c.config.RequireStaff(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateShelfCommandHandler() commands.CreateShelfCommandHandler {
	var f commands.ShelfUoWFactory = FuncShelfUoWFactory(func() commands.ShelfUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShelfCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShelfCommandHandler() commands.UpdateShelfCommandHandler {
	var f commands.ShelfUoWFactory = FuncShelfUoWFactory(func() commands.ShelfUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShelfCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShelfQueryHandler() queries.GetShelfQueryHandler {
	return queries.NewGetShelfQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShelvesQueryHandler() queries.GetAllShelvesQueryHandler {
	return queries.NewGetAllShelvesQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over the full handler set.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateNfcOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCreateShelfCommandHandler(),
		c.CreateUpdateShelfCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetShelfQueryHandler(),
		c.CreateGetAllShelvesQueryHandler(),
	)
}

// CreateJobManager assembles the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(jobs.NewTagReconciliationJob(f, c.tagPool, c.logger))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShelfUoWFactory func() commands.ShelfUoW

func (f FuncShelfUoWFactory) Create() commands.ShelfUoW {
	return f()
}
