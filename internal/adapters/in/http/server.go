package http

import (
	"context"
	"net/http"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// ActorHeader names who performed a change. It ends up in the order history.
const ActorHeader = "X-Actor"

// Handler is a use case that returns a result.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Executor is a use case that only reports success.
type Executor[C any] interface {
	Handle(ctx context.Context, c C) error
}

// DocumentRenderer renders an order document on demand and returns where it
// was written.
type DocumentRenderer interface {
	Render(ctx context.Context, orderID int64) (string, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	ResolveClient       Handler[commands.ResolveClientCommand, int64]
	ResolveEquipment    Handler[commands.ResolveEquipmentCommand, int64]
	ResolveCatalogEntry Handler[commands.ResolveCatalogEntryCommand, int64]
	LinkOwnership       Executor[commands.LinkOwnershipCommand]

	CreateClient       Handler[commands.CreateClientCommand, int64]
	UpdateClient       Executor[commands.UpdateClientCommand]
	CreateEquipment    Handler[commands.CreateEquipmentCommand, int64]
	UpdateEquipment    Executor[commands.UpdateEquipmentCommand]
	CreateCatalogEntry Handler[commands.CreateCatalogEntryCommand, int64]

	CreateOrder     Handler[commands.CreateOrderCommand, int64]
	UpdateOrder     Executor[commands.UpdateOrderCommand]
	TransitionOrder Handler[commands.TransitionOrderCommand, int64]

	ListClients     Handler[queries.ListClientsQuery, []queries.ClientResponse]
	ListEquipment   Handler[queries.ListEquipmentQuery, []queries.EquipmentResponse]
	ListCatalog     Handler[queries.ListCatalogQuery, []queries.CatalogEntryResponse]
	ListStatuses    Handler[queries.ListStatusesQuery, []queries.StatusResponse]
	ListOrders      Handler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder        Handler[queries.GetOrderQuery, queries.OrderResponse]
	GetOrderHistory Handler[queries.GetOrderHistoryQuery, []queries.HistoryEntryResponse]

	Documents DocumentRenderer
}

// Server translates HTTP requests into commands and queries and maps their
// results and errors back to JSON.
type Server struct {
	handlers Handlers
	logger   logger.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, log logger.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   log.With(logger.String("component", "http")),
	}
}

// NewEcho builds the router with recovery, request ids, access logging,
// OpenAPI request validation and every route registered.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := OpenAPI()
	if err != nil {
		return nil, err
	}
	validate, err := s.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(AccessLog(s.logger))
	e.Use(validate)
	s.Register(e)
	return e, nil
}

// Register mounts the API on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/clientes", s.GetClients)
	api.POST("/clientes", s.CreateClient)
	api.PUT("/clientes/:id", s.UpdateClient)
	api.POST("/clientes/resolver", s.ResolveClient)

	api.GET("/equipos", s.GetEquipment)
	api.POST("/equipos", s.CreateEquipment)
	api.PUT("/equipos/:id", s.UpdateEquipment)
	api.PUT("/equipos/:id/propietario", s.LinkOwner)
	api.POST("/equipos/resolver", s.ResolveEquipment)

	api.GET("/catalogo/:kind", s.GetCatalog)
	api.POST("/catalogo/:kind", s.CreateCatalogEntry)
	api.POST("/catalogo/:kind/resolver", s.ResolveCatalogEntry)

	api.GET("/estados", s.GetStatuses)

	api.GET("/ordenes", s.GetOrders)
	api.POST("/ordenes", s.CreateOrder)
	api.GET("/ordenes/:id", s.GetOrder)
	api.PUT("/ordenes/:id", s.UpdateOrder)
	api.GET("/ordenes/:id/historial", s.GetOrderHistory)
	api.POST("/ordenes/:id/documento", s.RenderOrderDocument)
	api.POST("/ordenes/:id/terminar", s.transition(commands.ActionFinish))
	api.POST("/ordenes/:id/retirar", s.transition(commands.ActionPickup))
	api.POST("/ordenes/:id/reabrir", s.transition(commands.ActionReopen))
	api.POST("/ordenes/:id/suspender", s.transition(commands.ActionSuspend))
	api.POST("/ordenes/:id/duplicar", s.transition(commands.ActionDuplicate))
}

func actor(ctx echo.Context) string {
	return ctx.Request().Header.Get(ActorHeader)
}
