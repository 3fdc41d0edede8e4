package queries

import (
	"context"

	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderDocumentSource = (*OrderDocumentSource)(nil)

// OrderDocumentSource loads the joined view an order document is printed
// from. The equipment owner is the client stored on the order.
type OrderDocumentSource struct {
	db *gorm.DB
}

func NewOrderDocumentSource(db *gorm.DB) *OrderDocumentSource {
	return &OrderDocumentSource{db: db}
}

type orderDocumentRow struct {
	orderRow

	ClientAddress        string
	ClientLocality       string
	ClientEmail          string
	ClientTaxID          string
	EquipmentType        string
	EquipmentBrand       string
	EquipmentModel       string
	EquipmentSerial      string
	EquipmentDescription string
}

func (s *OrderDocumentSource) LoadOrderDocument(ctx context.Context, orderID int64) (ports.OrderDocument, error) {
	var rows []orderDocumentRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+`,
			COALESCE(c.address, '') AS client_address,
			COALESCE(c.locality, '') AS client_locality,
			COALESCE(c.email, '') AS client_email,
			COALESCE(c.tax_id, '') AS client_tax_id,
			COALESCE(e.type, '') AS equipment_type,
			COALESCE(e.brand, '') AS equipment_brand,
			COALESCE(e.model, '') AS equipment_model,
			COALESCE(e.serial, '') AS equipment_serial,
			COALESCE(e.description, '') AS equipment_description`+
			orderFrom+`
			LEFT JOIN equipment e ON e.id = o.equipment_id
			WHERE o.id = ?`, orderID).
		Scan(&rows).Error
	if err != nil {
		return ports.OrderDocument{}, err
	}
	if len(rows) == 0 {
		return ports.OrderDocument{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	r := rows[0]
	o := r.response()
	return ports.OrderDocument{
		Number:               o.ID,
		Status:               o.Status,
		IntakeDate:           o.IntakeDate,
		IntakeTime:           o.IntakeTime,
		ExitDate:             o.ExitDate,
		ExitTime:             o.ExitTime,
		ReturnDate:           o.ReturnDate,
		ReturnTime:           o.ReturnTime,
		PickupDate:           o.PickupDate,
		PickupTime:           o.PickupTime,
		ClientName:           o.ClientName,
		ClientPhone:          o.ClientPhone,
		ClientAddress:        r.ClientAddress,
		ClientLocality:       r.ClientLocality,
		ClientEmail:          r.ClientEmail,
		ClientTaxID:          r.ClientTaxID,
		EquipmentType:        r.EquipmentType,
		EquipmentBrand:       r.EquipmentBrand,
		EquipmentModel:       r.EquipmentModel,
		EquipmentSerial:      r.EquipmentSerial,
		EquipmentDescription: r.EquipmentDescription,
		EquipmentText:        o.EquipmentText,
		SerialText:           o.SerialText,
		ContactName:          o.ContactName,
		ContactPhone:         o.ContactPhone,
		Fault:                o.Fault,
		Notes:                o.Notes,
		Accessories:          o.Accessories,
		Repair:               o.Repair,
		SpareParts:           o.SpareParts,
		Amount:               formatAmount(o.Amount),
		SuspendReason:        o.SuspendReason,
	}, nil
}
