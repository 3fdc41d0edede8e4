package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderRequest is the body of POST /api/ordenes. The client and equipment may
// be given by id or by the typed fields, which are then resolved.
type OrderRequest struct {
	ClienteID int64  `json:"cliente_id"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	EquipoID  int64  `json:"equipo_id"`
	Equipo    string `json:"equipo"`
	Serie     string `json:"serie"`

	Falla         string  `json:"falla"`
	Observaciones string  `json:"observaciones"`
	Accesorios    string  `json:"accesorios"`
	Reparacion    string  `json:"reparacion"`
	Repuestos     string  `json:"repuestos"`
	Importe       float64 `json:"importe"`
	Estado        string  `json:"estado"`

	Fecha        string `json:"fecha"`
	HoraIngreso  string `json:"hora_ingreso"`
	FechaSalida  string `json:"fecha_salida"`
	HoraSalida   string `json:"hora_salida"`
	FechaRegreso string `json:"fecha_regreso"`
	HoraRegreso  string `json:"hora_regreso"`
	FechaRetiro  string `json:"fecha_retiro"`
	HoraRetiro   string `json:"hora_retiro"`
}

func (r OrderRequest) input() (commands.CreateOrderInput, error) {
	amount, err := kernel.MoneyFromFloat(r.Importe)
	if err != nil {
		return commands.CreateOrderInput{}, err
	}

	stamps, err := parseStamps(r.Fecha, r.HoraIngreso, r.FechaSalida, r.HoraSalida,
		r.FechaRegreso, r.HoraRegreso, r.FechaRetiro, r.HoraRetiro)
	if err != nil {
		return commands.CreateOrderInput{}, err
	}

	return commands.CreateOrderInput{
		ClientID:             r.ClienteID,
		ClientName:           r.Nombre,
		ClientPhone:          r.Telefono,
		EquipmentID:          r.EquipoID,
		EquipmentDescription: r.Equipo,
		EquipmentSerial:      r.Serie,
		Fault:                r.Falla,
		Notes:                r.Observaciones,
		Accessories:          r.Accesorios,
		Repair:               r.Reparacion,
		SpareParts:           r.Repuestos,
		Amount:               amount,
		Status:               r.Estado,
		Intake:               stamps[0],
		Exit:                 stamps[1],
		Return:               stamps[2],
		Pickup:               stamps[3],
	}, nil
}

// OrderPatchRequest is the body of PUT /api/ordenes/:id. Absent fields are
// left as stored.
type OrderPatchRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	EquipoID *int64  `json:"equipo_id"`
	Equipo   *string `json:"equipo"`
	Serie    *string `json:"serie"`

	Falla         *string  `json:"falla"`
	Observaciones *string  `json:"observaciones"`
	Accesorios    *string  `json:"accesorios"`
	Reparacion    *string  `json:"reparacion"`
	Repuestos     *string  `json:"repuestos"`
	Importe       *float64 `json:"importe"`
	Estado        *string  `json:"estado"`

	Fecha        string `json:"fecha"`
	HoraIngreso  string `json:"hora_ingreso"`
	FechaSalida  string `json:"fecha_salida"`
	HoraSalida   string `json:"hora_salida"`
	FechaRegreso string `json:"fecha_regreso"`
	HoraRegreso  string `json:"hora_regreso"`
	FechaRetiro  string `json:"fecha_retiro"`
	HoraRetiro   string `json:"hora_retiro"`
}

func (r OrderPatchRequest) input() (commands.UpdateOrderInput, error) {
	var amount *kernel.Money
	if r.Importe != nil {
		m, err := kernel.MoneyFromFloat(*r.Importe)
		if err != nil {
			return commands.UpdateOrderInput{}, err
		}
		amount = &m
	}

	stamps, err := parseStamps(r.Fecha, r.HoraIngreso, r.FechaSalida, r.HoraSalida,
		r.FechaRegreso, r.HoraRegreso, r.FechaRetiro, r.HoraRetiro)
	if err != nil {
		return commands.UpdateOrderInput{}, err
	}

	return commands.UpdateOrderInput{
		ClientName:           r.Nombre,
		ClientPhone:          r.Telefono,
		EquipmentID:          r.EquipoID,
		EquipmentDescription: r.Equipo,
		EquipmentSerial:      r.Serie,
		Fault:                r.Falla,
		Notes:                r.Observaciones,
		Accessories:          r.Accesorios,
		Repair:               r.Reparacion,
		SpareParts:           r.Repuestos,
		Amount:               amount,
		Status:               r.Estado,
		Intake:               stamps[0],
		Exit:                 stamps[1],
		Return:               stamps[2],
		Pickup:               stamps[3],
	}, nil
}

// parseStamps reads (date, time) pairs in order: intake, exit, return, pickup.
func parseStamps(halves ...string) ([4]kernel.Stamp, error) {
	var stamps [4]kernel.Stamp
	var errList []error
	for i := range stamps {
		s, err := kernel.ParseStamp(halves[2*i], halves[2*i+1])
		if err != nil {
			errList = append(errList, err)
			continue
		}
		stamps[i] = s
	}
	return stamps, errors.Join(errList...)
}

// TransitionRequest carries the reopen note or the suspend motive.
type TransitionRequest struct {
	Nota   string `json:"nota"`
	Motivo string `json:"motivo"`
}

type Order struct {
	ID        int64  `json:"id"`
	ClienteID int64  `json:"cliente_id"`
	EquipoID  int64  `json:"equipo_id"`
	Cliente   string `json:"cliente"`

	Nombre        string  `json:"nombre"`
	Telefono      string  `json:"telefono"`
	Equipo        string  `json:"equipo"`
	Serie         string  `json:"serie"`
	Falla         string  `json:"falla"`
	Observaciones string  `json:"observaciones"`
	Accesorios    string  `json:"accesorios"`
	Reparacion    string  `json:"reparacion"`
	Repuestos     string  `json:"repuestos"`
	Importe       float64 `json:"importe"`
	Estado        string  `json:"estado"`
	Motivo        string  `json:"motivo_suspension"`

	Fecha        string `json:"fecha"`
	HoraIngreso  string `json:"hora_ingreso"`
	FechaSalida  string `json:"fecha_salida"`
	HoraSalida   string `json:"hora_salida"`
	FechaRegreso string `json:"fecha_regreso"`
	HoraRegreso  string `json:"hora_regreso"`
	FechaRetiro  string `json:"fecha_retiro"`
	HoraRetiro   string `json:"hora_retiro"`

	Actualizada time.Time `json:"actualizada"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:            o.ID,
		ClienteID:     o.ClientID,
		EquipoID:      o.EquipmentID,
		Cliente:       o.ClientName,
		Nombre:        o.ContactName,
		Telefono:      o.ContactPhone,
		Equipo:        o.EquipmentText,
		Serie:         o.SerialText,
		Falla:         o.Fault,
		Observaciones: o.Notes,
		Accesorios:    o.Accessories,
		Reparacion:    o.Repair,
		Repuestos:     o.SpareParts,
		Importe:       o.Amount,
		Estado:        o.Status,
		Motivo:        o.SuspendReason,
		Fecha:         o.IntakeDate,
		HoraIngreso:   o.IntakeTime,
		FechaSalida:   o.ExitDate,
		HoraSalida:    o.ExitTime,
		FechaRegreso:  o.ReturnDate,
		HoraRegreso:   o.ReturnTime,
		FechaRetiro:   o.PickupDate,
		HoraRetiro:    o.PickupTime,
		Actualizada:   o.UpdatedAt,
	}
}

type HistoryEntry struct {
	ID     uuid.UUID `json:"id"`
	Actor  string    `json:"usuario"`
	Accion string    `json:"accion"`
	Nota   string    `json:"nota"`
	Fecha  time.Time `json:"fecha"`
}

type Document struct {
	OK      bool   `json:"ok"`
	Archivo string `json:"archivo"`
}

// GetOrders handles GET /api/ordenes?estado=&limite= - newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("limite", err))
		}
		limit = n
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("estado"), limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(list))
	for i, o := range list {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/ordenes/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateOrder handles POST /api/ordenes.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body OrderRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	input, err := body.input()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor(ctx), input)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{OK: true, ID: id})
}

// UpdateOrder handles PUT /api/ordenes/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body OrderPatchRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	input, err := body.input()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(actor(ctx), id, input)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Done{OK: true})
}

// transition returns the handler of POST /api/ordenes/:id/<action>. The
// response id is the order acted on, or the copy for duplicar.
func (s *Server) transition(action commands.Action) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return s.fail(ctx, err)
		}

		var body TransitionRequest
		if err = ctx.Bind(&body); err != nil {
			return s.badRequest(ctx, "Invalid request body")
		}

		note := body.Nota
		if action == commands.ActionSuspend && body.Motivo != "" {
			note = body.Motivo
		}

		cmd, err := commands.NewTransitionOrderCommand(actor(ctx), id, action, note)
		if err != nil {
			return s.fail(ctx, err)
		}

		result, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}

		status := http.StatusOK
		if action == commands.ActionDuplicate {
			status = http.StatusCreated
		}
		return ctx.JSON(status, Created{OK: true, ID: result})
	}
}

// GetOrderHistory handles GET /api/ordenes/:id/historial.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = HistoryEntry{ID: e.ID, Actor: e.Actor, Accion: e.Action, Nota: e.Note, Fecha: e.CreatedAt}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RenderOrderDocument handles POST /api/ordenes/:id/documento - renders the
// printable order now and returns the file it was written to.
func (s *Server) RenderOrderDocument(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	path, err := s.handlers.Documents.Render(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Document{OK: true, Archivo: path})
}
