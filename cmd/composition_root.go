package cmd

import (
	"log/slog"

	httpadapter "ordertracking/internal/adapters/in/http"
	"ordertracking/internal/adapters/out/inmemory"
	"ordertracking/internal/adapters/out/notify"
	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/ports"
	"ordertracking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	logger          *slog.Logger
	uowFactory      ports.UnitOfWorkFactory
	notifier        ports.Notifier
	scheduler       *jobs.CronScheduler
	progressManager *jobs.ProgressManager
}

// NewCompositionRoot wires the application graph. gormDB may be nil when
// the config selects in-memory storage.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:    config,
		logger:    logger,
		notifier:  notify.NewSlogNotifier(logger),
		scheduler: jobs.NewCronScheduler(),
	}

	if config.Storage == StorageMemory {
		root.uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	} else {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, logger)
	}

	root.progressManager = jobs.NewProgressManager(
		root.CreateAdvanceOrderCommandHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.scheduler,
		root.notifier,
		logger,
		config.AutoProgressInterval,
	)

	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderReader returns a repository outside any transaction, bound to the
// base store, for the query side.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderNotesCommandHandler() commands.UpdateOrderNotesCommandHandler {
	return commands.NewUpdateOrderNotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDuplicateOrderCommandHandler() commands.DuplicateOrderCommandHandler {
	return commands.NewDuplicateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearOrdersCommandHandler() commands.ClearOrdersCommandHandler {
	return commands.NewClearOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReplaceOrdersCommandHandler() commands.ReplaceOrdersCommandHandler {
	return commands.NewReplaceOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSeedDemoOrdersCommandHandler() commands.SeedDemoOrdersCommandHandler {
	return commands.NewSeedDemoOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.orderReader())
}

func (c *CompositionRoot) ProgressManager() *jobs.ProgressManager {
	return c.progressManager
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	watchJob := jobs.NewStoreWatchJob(c.orderReader(), c.notifier, nil, c.scheduler, c.logger)
	return jobs.NewJobManager(c.progressManager, watchJob, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	commandHandlers := httpadapter.CommandHandlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		UpdateOrderNotes:  c.CreateUpdateOrderNotesCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		DuplicateOrder:    c.CreateDuplicateOrderCommandHandler(),
		ClearOrders:       c.CreateClearOrdersCommandHandler(),
		ReplaceOrders:     c.CreateReplaceOrdersCommandHandler(),
	}

	queryHandlers := httpadapter.QueryHandlers{
		GetAllOrders:       c.CreateGetAllOrdersQueryHandler(),
		GetOrderByID:       c.CreateGetOrderByIDQueryHandler(),
		GetOrderStatistics: c.CreateGetOrderStatisticsQueryHandler(),
	}

	return httpadapter.NewServer(commandHandlers, queryHandlers, c.progressManager)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
