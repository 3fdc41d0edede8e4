package http

import (
	"net/http"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var catalogKinds = map[string]catalog.Kind{
	"fallas":       catalog.Fault,
	"accesorios":   catalog.Accessory,
	"repuestos":    catalog.SparePart,
	"reparaciones": catalog.Repair,
}

func catalogKind(ctx echo.Context) (catalog.Kind, error) {
	kind, ok := catalogKinds[ctx.Param("kind")]
	if !ok {
		return "", errs.NewObjectNotFoundError("catalog", ctx.Param("kind"))
	}
	return kind, nil
}

type CatalogEntryRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Costo       *float64 `json:"costo"`
}

type ResolveCatalogEntryRequest struct {
	Texto string `json:"texto"`
}

type CatalogEntry struct {
	ID          int64    `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Costo       *float64 `json:"costo,omitempty"`
}

type Status struct {
	Estado string `json:"estado"`
	Tipo   string `json:"tipo"`
}

// GetCatalog handles GET /api/catalogo/:kind.
func (s *Server) GetCatalog(ctx echo.Context) error {
	kind, err := catalogKind(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCatalogQuery(kind)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.handlers.ListCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]CatalogEntry, len(list))
	for i, e := range list {
		response[i] = CatalogEntry{ID: e.ID, Nombre: e.Name, Descripcion: e.Description, Costo: e.Cost}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCatalogEntry handles POST /api/catalogo/:kind. Only repuestos take a cost.
func (s *Server) CreateCatalogEntry(ctx echo.Context) error {
	kind, err := catalogKind(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body CatalogEntryRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var cost *kernel.Money
	if body.Costo != nil {
		m, err := kernel.MoneyFromFloat(*body.Costo)
		if err != nil {
			return s.fail(ctx, err)
		}
		cost = &m
	}

	cmd, err := commands.NewCreateCatalogEntryCommand(kind, body.Nombre, body.Descripcion, cost)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateCatalogEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{OK: true, ID: id})
}

// ResolveCatalogEntry handles POST /api/catalogo/:kind/resolver.
func (s *Server) ResolveCatalogEntry(ctx echo.Context) error {
	kind, err := catalogKind(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ResolveCatalogEntryRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveCatalogEntryCommand(kind, body.Texto)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.ResolveCatalogEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Created{OK: true, ID: id})
}

// GetStatuses handles GET /api/estados.
func (s *Server) GetStatuses(ctx echo.Context) error {
	list, err := s.handlers.ListStatuses.Handle(ctx.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Status, len(list))
	for i, st := range list {
		response[i] = Status{Estado: st.Label, Tipo: st.Kind}
	}
	return ctx.JSON(http.StatusOK, response)
}
