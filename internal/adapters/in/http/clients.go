package http

import (
	"net/http"
	"time"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/client"

	"github.com/labstack/echo/v4"
)

// Created is the body of a successful create.
type Created struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// Done is the body of a successful edit.
type Done struct {
	OK bool `json:"ok"`
}

type ClientRequest struct {
	Nombre             string `json:"nombre"`
	Telefono           string `json:"telefono"`
	Direccion          string `json:"direccion"`
	Localidad          string `json:"localidad"`
	Provincia          string `json:"provincia"`
	CP                 string `json:"cp"`
	Email              string `json:"email"`
	CUIT               string `json:"cuit"`
	Contacto           string `json:"contacto"`
	Observaciones      string `json:"observaciones"`
	GiroEmpresa        string `json:"giro_empresa"`
	ClienteGarantia    bool   `json:"cliente_garantia"`
	ClienteConContrato bool   `json:"cliente_con_contrato"`
}

func (r ClientRequest) details() client.Details {
	return client.Details{
		Name:          r.Nombre,
		Phone:         r.Telefono,
		Address:       r.Direccion,
		Locality:      r.Localidad,
		Province:      r.Provincia,
		PostalCode:    r.CP,
		Email:         r.Email,
		TaxID:         r.CUIT,
		Contact:       r.Contacto,
		Notes:         r.Observaciones,
		BusinessLine:  r.GiroEmpresa,
		UnderWarranty: r.ClienteGarantia,
		UnderContract: r.ClienteConContrato,
	}
}

type Client struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Telefono           string    `json:"telefono"`
	Direccion          string    `json:"direccion"`
	Localidad          string    `json:"localidad"`
	Provincia          string    `json:"provincia"`
	CP                 string    `json:"cp"`
	Email              string    `json:"email"`
	CUIT               string    `json:"cuit"`
	Contacto           string    `json:"contacto"`
	Observaciones      string    `json:"observaciones"`
	GiroEmpresa        string    `json:"giro_empresa"`
	ClienteGarantia    bool      `json:"cliente_garantia"`
	ClienteConContrato bool      `json:"cliente_con_contrato"`
	CreadoEn           time.Time `json:"creado_en"`
}

type ResolveClientRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// GetClients handles GET /api/clientes?q= - lists clients, optionally
// filtered by name or phone.
func (s *Server) GetClients(ctx echo.Context) error {
	list, err := s.handlers.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery(ctx.QueryParam("q")))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Client, len(list))
	for i, c := range list {
		response[i] = Client{
			ID:                 c.ID,
			Nombre:             c.Name,
			Telefono:           c.Phone,
			Direccion:          c.Address,
			Localidad:          c.Locality,
			Provincia:          c.Province,
			CP:                 c.PostalCode,
			Email:              c.Email,
			CUIT:               c.TaxID,
			Contacto:           c.Contact,
			Observaciones:      c.Notes,
			GiroEmpresa:        c.BusinessLine,
			ClienteGarantia:    c.UnderWarranty,
			ClienteConContrato: c.UnderContract,
			CreadoEn:           c.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/clientes.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body ClientRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(body.details())
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{OK: true, ID: id})
}

// UpdateClient handles PUT /api/clientes/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ClientRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(id, body.details())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Done{OK: true})
}

// ResolveClient handles POST /api/clientes/resolver - returns the id of the
// client with that name and phone, creating it on first sight. An id of zero
// means the name was blank.
func (s *Server) ResolveClient(ctx echo.Context) error {
	var body ResolveClientRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveClientCommand(body.Nombre, body.Telefono)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.ResolveClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Created{OK: true, ID: id})
}
