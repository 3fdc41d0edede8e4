package cmd

import (
	"context"
	"fmt"

	apihttp "repairshop/internal/adapters/in/http"
	"repairshop/internal/adapters/out/document"
	"repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/postgres/historyrepo"
	"repairshop/internal/core/application/effects"
	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/core/ports"
	"repairshop/internal/jobs"
	"repairshop/internal/pkg/logger"
	"repairshop/internal/pkg/worker"

	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived collaborator and builds the use case
// handlers from them.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     logger.Logger

	clock    kernel.Clock
	statuses *order.StatusCatalog
	worker   *worker.Worker

	resolver   *services.EntityResolver
	linker     *services.OwnershipLinker
	history    *effects.HistoryRecorder
	documents  *effects.DocumentDispatcher
	jobManager *jobs.JobManager
}

// NewCompositionRoot wires the application. cache may be nil, which disables
// resolution caching.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	cache ports.ResolutionCache,
	statuses *order.StatusCatalog,
	log logger.Logger,
) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clock := kernel.NewSystemClock(loc)

	renderer, err := document.NewHTMLRenderer(cfg.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("document renderer: %w", err)
	}

	w := worker.New("side_effects", cfg.WorkerQueueSize, cfg.WorkerTaskTimeout, log)
	dispatcher := effects.NewDocumentDispatcher(queries.NewOrderDocumentSource(gormDB), renderer, w, clock, log)

	return &CompositionRoot{
		config:     cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     log,
		clock:      clock,
		statuses:   statuses,
		worker:     w,
		resolver:   services.NewEntityResolver(clock, cache, log),
		linker:     services.NewOwnershipLinker(clock),
		history:    effects.NewHistoryRecorder(historyrepo.NewGormHistoryRepository(gormDB), w, clock, log),
		documents:  dispatcher,
		jobManager: jobs.NewJobManager(dispatcher, cfg.DocumentRetrySchedule, log),
	}, nil
}

// Start launches the side effect worker and the scheduled jobs.
func (c *CompositionRoot) Start() error {
	c.worker.Start()
	return c.jobManager.StartAll()
}

// Stop halts the jobs and drains the worker until ctx expires.
func (c *CompositionRoot) Stop(ctx context.Context) error {
	c.jobManager.StopAll()
	return c.worker.Stop(ctx)
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderCollaborators() commands.OrderCollaborators {
	return commands.OrderCollaborators{
		Resolver:  c.resolver,
		Linker:    c.linker,
		Clock:     c.clock,
		Statuses:  c.statuses,
		Auditor:   c.history,
		Documents: c.documents,
	}
}

func (c *CompositionRoot) CreateResolveClientCommandHandler() commands.ResolveClientCommandHandler {
	return commands.NewResolveClientCommandHandler(c.unitOfWorkFactory(), c.resolver)
}

func (c *CompositionRoot) CreateResolveEquipmentCommandHandler() commands.ResolveEquipmentCommandHandler {
	return commands.NewResolveEquipmentCommandHandler(c.unitOfWorkFactory(), c.resolver)
}

func (c *CompositionRoot) CreateResolveCatalogEntryCommandHandler() commands.ResolveCatalogEntryCommandHandler {
	return commands.NewResolveCatalogEntryCommandHandler(c.unitOfWorkFactory(), c.resolver)
}

func (c *CompositionRoot) CreateLinkOwnershipCommandHandler() commands.LinkOwnershipCommandHandler {
	return commands.NewLinkOwnershipCommandHandler(c.unitOfWorkFactory(), c.linker)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.unitOfWorkFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.unitOfWorkFactory(), c.resolver)
}

func (c *CompositionRoot) CreateCreateEquipmentCommandHandler() commands.CreateEquipmentCommandHandler {
	return commands.NewCreateEquipmentCommandHandler(c.unitOfWorkFactory(), c.linker, c.clock)
}

func (c *CompositionRoot) CreateUpdateEquipmentCommandHandler() commands.UpdateEquipmentCommandHandler {
	return commands.NewUpdateEquipmentCommandHandler(c.unitOfWorkFactory(), c.resolver, c.linker)
}

func (c *CompositionRoot) CreateCreateCatalogEntryCommandHandler() commands.CreateCatalogEntryCommandHandler {
	return commands.NewCreateCatalogEntryCommandHandler(c.unitOfWorkFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.unitOfWorkFactory(), c.orderCollaborators())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.unitOfWorkFactory(), c.orderCollaborators())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.unitOfWorkFactory(), c.orderCollaborators())
}

// HTTPHandlers bundles every use case the API serves.
func (c *CompositionRoot) HTTPHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		ResolveClient:       c.CreateResolveClientCommandHandler(),
		ResolveEquipment:    c.CreateResolveEquipmentCommandHandler(),
		ResolveCatalogEntry: c.CreateResolveCatalogEntryCommandHandler(),
		LinkOwnership:       c.CreateLinkOwnershipCommandHandler(),

		CreateClient:       c.CreateCreateClientCommandHandler(),
		UpdateClient:       c.CreateUpdateClientCommandHandler(),
		CreateEquipment:    c.CreateCreateEquipmentCommandHandler(),
		UpdateEquipment:    c.CreateUpdateEquipmentCommandHandler(),
		CreateCatalogEntry: c.CreateCreateCatalogEntryCommandHandler(),

		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		UpdateOrder:     c.CreateUpdateOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderCommandHandler(),

		ListClients:     queries.NewListClientsQueryHandler(c.gormDB),
		ListEquipment:   queries.NewListEquipmentQueryHandler(c.gormDB),
		ListCatalog:     queries.NewListCatalogQueryHandler(c.gormDB),
		ListStatuses:    queries.NewListStatusesQueryHandler(c.statuses),
		ListOrders:      queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrderHistory: queries.NewGetOrderHistoryQueryHandler(c.gormDB),

		Documents: c.documents,
	}
}

// FuncUoWFactory adapts a constructor function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
