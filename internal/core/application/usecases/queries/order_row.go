// Package queries contains read operations. Handlers read straight from the
// database with SQL and return plain response structs, bypassing the
// aggregates.
package queries

import (
	"context"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// orderColumns selects an order with its client and active equipment data.
const orderColumns = `
	o.id, o.client_id, o.equipment_id,
	COALESCE(c.name, '') AS client_name,
	COALESCE(c.phone, '') AS client_phone,
	o.contact_name, o.contact_phone, o.equipment_text, o.serial_text,
	o.fault, o.notes, o.accessories, o.repair, o.spare_parts,
	o.amount, o.status, o.suspend_reason,
	o.intake_date, o.intake_time, o.exit_date, o.exit_time,
	o.return_date, o.return_time, o.pickup_date, o.pickup_time,
	o.created_at, o.updated_at`

const orderFrom = `
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id`

type orderRow struct {
	ID            int64
	ClientID      int64
	EquipmentID   int64
	ClientName    string
	ClientPhone   string
	ContactName   string
	ContactPhone  string
	EquipmentText string
	SerialText    string
	Fault         string
	Notes         string
	Accessories   string
	Repair        string
	SpareParts    string
	Amount        float64
	Status        string
	SuspendReason string
	IntakeDate    *time.Time
	IntakeTime    *string
	ExitDate      *time.Time
	ExitTime      *string
	ReturnDate    *time.Time
	ReturnTime    *string
	PickupDate    *time.Time
	PickupTime    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderResponse is an order as shown in the order form and list. Dates are
// "YYYY-MM-DD" and times "HH:MM"; unset halves are empty.
type OrderResponse struct {
	ID          int64
	ClientID    int64
	EquipmentID int64
	ClientName  string
	ClientPhone string

	ContactName   string
	ContactPhone  string
	EquipmentText string
	SerialText    string
	Fault         string
	Notes         string
	Accessories   string
	Repair        string
	SpareParts    string
	Amount        float64

	Status        string
	SuspendReason string

	IntakeDate string
	IntakeTime string
	ExitDate   string
	ExitTime   string
	ReturnDate string
	ReturnTime string
	PickupDate string
	PickupTime string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r orderRow) response() OrderResponse {
	return OrderResponse{
		ID:            r.ID,
		ClientID:      r.ClientID,
		EquipmentID:   r.EquipmentID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ContactName:   r.ContactName,
		ContactPhone:  r.ContactPhone,
		EquipmentText: r.EquipmentText,
		SerialText:    r.SerialText,
		Fault:         r.Fault,
		Notes:         r.Notes,
		Accessories:   r.Accessories,
		Repair:        r.Repair,
		SpareParts:    r.SpareParts,
		Amount:        r.Amount,
		Status:        r.Status,
		SuspendReason: r.SuspendReason,
		IntakeDate:    formatDate(r.IntakeDate),
		IntakeTime:    deref(r.IntakeTime),
		ExitDate:      formatDate(r.ExitDate),
		ExitTime:      deref(r.ExitTime),
		ReturnDate:    formatDate(r.ReturnDate),
		ReturnTime:    deref(r.ReturnTime),
		PickupDate:    formatDate(r.PickupDate),
		PickupTime:    deref(r.PickupTime),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAmount(amount float64) string {
	m, err := kernel.MoneyFromFloat(amount)
	if err != nil {
		return ""
	}
	return m.String()
}

func orderExists(ctx context.Context, db *gorm.DB, id int64) error {
	var count int64
	if err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, id).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}
