package ports

import (
	"context"
	"time"
)

// OrderDocument is the fully joined view of an order used for the printable
// document: the order itself with client and equipment fields denormalized in.
type OrderDocument struct {
	Number int64
	Status string

	IntakeDate  string
	IntakeTime  string
	ExitDate    string
	ExitTime    string
	ReturnDate  string
	ReturnTime  string
	PickupDate  string
	PickupTime  string
	GeneratedAt time.Time

	ClientName     string
	ClientPhone    string
	ClientAddress  string
	ClientLocality string
	ClientEmail    string
	ClientTaxID    string

	EquipmentType        string
	EquipmentBrand       string
	EquipmentModel       string
	EquipmentSerial      string
	EquipmentDescription string
	EquipmentText        string
	SerialText           string

	ContactName   string
	ContactPhone  string
	Fault         string
	Notes         string
	Accessories   string
	Repair        string
	SpareParts    string
	Amount        string
	SuspendReason string
}

// OrderDocumentSource loads the joined view of an order.
type OrderDocumentSource interface {
	LoadOrderDocument(ctx context.Context, orderID int64) (OrderDocument, error)
}

// DocumentRenderer produces the printable document and returns where it went.
type DocumentRenderer interface {
	Render(ctx context.Context, doc OrderDocument) (string, error)
}
