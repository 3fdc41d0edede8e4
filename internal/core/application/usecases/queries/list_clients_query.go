package queries

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/pkg/guard"
	"repairshop/internal/pkg/textnorm"

	"gorm.io/gorm"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery lists clients by name. A non-empty search matches names
// and phones containing it.
type ListClientsQuery struct {
	search string

	guard guard.ConstructorGuard
}

func NewListClientsQuery(search string) ListClientsQuery {
	return ListClientsQuery{search: textnorm.Collapse(search), guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

type ClientResponse struct {
	ID            int64
	Name          string
	Phone         string
	Address       string
	Locality      string
	Province      string
	PostalCode    string
	Email         string
	TaxID         string
	Contact       string
	Notes         string
	BusinessLine  string
	UnderWarranty bool
	UnderContract bool
	CreatedAt     time.Time
}

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT id, name, COALESCE(phone, '') AS phone, address, locality,
			province, postal_code, email, COALESCE(tax_id, '') AS tax_id, contact,
			notes, business_line, under_warranty, under_contract, created_at
		FROM clients`
	var args []any
	if query.search != "" {
		like := "%" + query.search + "%"
		sql += ` WHERE name ILIKE ? OR phone LIKE ?`
		args = append(args, like, like)
	}
	sql += ` ORDER BY name, id`

	clients := []ClientResponse{}
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
