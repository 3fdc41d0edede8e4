// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Each stamp is stored as a nullable date column plus a nullable "HH:MM" column.
package orderrepo

import (
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/textnorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ClientID    int64 `gorm:"not null;index"`
	EquipmentID int64 `gorm:"not null;index"`

	ContactName   string  `gorm:"type:varchar(200);not null;default:''"`
	ContactPhone  string  `gorm:"type:varchar(40);not null;default:''"`
	EquipmentText string  `gorm:"type:varchar(300);not null;default:''"`
	SerialText    string  `gorm:"type:varchar(100);not null;default:''"`
	Fault         string  `gorm:"type:text;not null;default:''"`
	Notes         string  `gorm:"type:text;not null;default:''"`
	Accessories   string  `gorm:"type:text;not null;default:''"`
	Repair        string  `gorm:"type:text;not null;default:''"`
	SpareParts    string  `gorm:"type:text;not null;default:''"`
	Amount        float64 `gorm:"type:numeric(12,2);not null;default:0"`

	Status        string `gorm:"type:varchar(60);not null;index"`
	SuspendReason string `gorm:"type:text;not null;default:''"`

	Intake StampDTO `gorm:"embedded;embeddedPrefix:intake_"`
	Exit   StampDTO `gorm:"embedded;embeddedPrefix:exit_"`
	Return StampDTO `gorm:"embedded;embeddedPrefix:return_"`
	Pickup StampDTO `gorm:"embedded;embeddedPrefix:pickup_"`

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StampDTO is one embedded (date, time) pair.
type StampDTO struct {
	Date *time.Time `gorm:"type:date"`
	Time *string    `gorm:"type:varchar(5)"`
}

func stampFromDomain(s kernel.Stamp) StampDTO {
	return StampDTO{Date: s.Date(), Time: textnorm.Optional(s.Clock())}
}

func stampToDomain(dto StampDTO) (kernel.Stamp, error) {
	clock := ""
	if dto.Time != nil {
		clock = *dto.Time
	}
	return kernel.NewStamp(dto.Date, clock)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	return OrderDTO{
		ID:            s.ID,
		ClientID:      s.ClientID,
		EquipmentID:   s.EquipmentID,
		ContactName:   s.ContactName,
		ContactPhone:  s.ContactPhone,
		EquipmentText: s.EquipmentText,
		SerialText:    s.SerialText,
		Fault:         s.Fault,
		Notes:         s.Notes,
		Accessories:   s.Accessories,
		Repair:        s.Repair,
		SpareParts:    s.SpareParts,
		Amount:        s.Amount.Float(),
		Status:        s.Status.Label(),
		SuspendReason: s.SuspendReason,
		Intake:        stampFromDomain(s.Intake),
		Exit:          stampFromDomain(s.Exit),
		Return:        stampFromDomain(s.Return),
		Pickup:        stampFromDomain(s.Pickup),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.MoneyFromFloat(dto.Amount)
	if err != nil {
		return nil, err
	}

	s := order.Snapshot{
		ID:            dto.ID,
		ClientID:      dto.ClientID,
		EquipmentID:   dto.EquipmentID,
		ContactName:   dto.ContactName,
		ContactPhone:  dto.ContactPhone,
		EquipmentText: dto.EquipmentText,
		SerialText:    dto.SerialText,
		Fault:         dto.Fault,
		Notes:         dto.Notes,
		Accessories:   dto.Accessories,
		Repair:        dto.Repair,
		SpareParts:    dto.SpareParts,
		Amount:        amount,
		Status:        status,
		SuspendReason: dto.SuspendReason,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
	if s.Intake, err = stampToDomain(dto.Intake); err != nil {
		return nil, err
	}
	if s.Exit, err = stampToDomain(dto.Exit); err != nil {
		return nil, err
	}
	if s.Return, err = stampToDomain(dto.Return); err != nil {
		return nil, err
	}
	if s.Pickup, err = stampToDomain(dto.Pickup); err != nil {
		return nil, err
	}

	return order.RestoreOrder(s)
}
