package http

import (
	"net/http"
	"time"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/equipment"

	"github.com/labstack/echo/v4"
)

type EquipmentRequest struct {
	Tipo        string `json:"tipo"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Serie       string `json:"serie"`
	Descripcion string `json:"descripcion"`
	ClienteID   *int64 `json:"cliente_id"`
	Rol         string `json:"rol"`
}

func (r EquipmentRequest) details() equipment.Details {
	return equipment.Details{
		Type:        r.Tipo,
		Brand:       r.Marca,
		Model:       r.Modelo,
		Serial:      r.Serie,
		Description: r.Descripcion,
	}
}

type OwnerRequest struct {
	ClienteID int64  `json:"cliente_id"`
	Rol       string `json:"rol"`
}

type ResolveEquipmentRequest struct {
	Descripcion string `json:"descripcion"`
	Serie       string `json:"serie"`
}

type Equipment struct {
	ID          int64     `json:"id"`
	Tipo        string    `json:"tipo"`
	Marca       string    `json:"marca"`
	Modelo      string    `json:"modelo"`
	Serie       string    `json:"serie"`
	Descripcion string    `json:"descripcion"`
	ClienteID   *int64    `json:"cliente_id"`
	Cliente     string    `json:"cliente"`
	Rol         string    `json:"rol"`
	CreadoEn    time.Time `json:"creado_en"`
}

// GetEquipment handles GET /api/equipos - lists equipment with its current owner.
func (s *Server) GetEquipment(ctx echo.Context) error {
	list, err := s.handlers.ListEquipment.Handle(ctx.Request().Context(), queries.NewListEquipmentQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Equipment, len(list))
	for i, e := range list {
		response[i] = Equipment{
			ID:          e.ID,
			Tipo:        e.Type,
			Marca:       e.Brand,
			Modelo:      e.Model,
			Serie:       e.Serial,
			Descripcion: e.Description,
			Cliente:     e.OwnerName,
			Rol:         e.OwnerRole,
			CreadoEn:    e.CreatedAt,
		}
		if e.OwnerID != 0 {
			owner := e.OwnerID
			response[i].ClienteID = &owner
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateEquipment handles POST /api/equipos. The client becomes its owner.
func (s *Server) CreateEquipment(ctx echo.Context) error {
	var body EquipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var clientID int64
	if body.ClienteID != nil {
		clientID = *body.ClienteID
	}
	cmd, err := commands.NewCreateEquipmentCommand(body.details(), clientID, body.Rol)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateEquipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{OK: true, ID: id})
}

// UpdateEquipment handles PUT /api/equipos/:id. A cliente_id hands the
// equipment over to that client.
func (s *Server) UpdateEquipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body EquipmentRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateEquipmentCommand(id, body.details(), body.ClienteID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateEquipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Done{OK: true})
}

// LinkOwner handles PUT /api/equipos/:id/propietario.
func (s *Server) LinkOwner(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body OwnerRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLinkOwnershipCommand(id, body.ClienteID, body.Rol)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.LinkOwnership.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Done{OK: true})
}

// ResolveEquipment handles POST /api/equipos/resolver.
func (s *Server) ResolveEquipment(ctx echo.Context) error {
	var body ResolveEquipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveEquipmentCommand(body.Descripcion, body.Serie)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.ResolveEquipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Created{OK: true, ID: id})
}
