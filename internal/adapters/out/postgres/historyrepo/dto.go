// Package historyrepo appends order audit entries to order_history.
package historyrepo

import (
	"time"

	"repairshop/internal/core/domain/model/history"

	"github.com/google/uuid"
)

type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"not null;index"`
	Actor     string    `gorm:"type:varchar(100);not null"`
	Action    string    `gorm:"type:varchar(30);not null"`
	Note      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (EntryDTO) TableName() string {
	return "order_history"
}

func fromDomain(e *history.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID().Value(),
		OrderID:   e.OrderID(),
		Actor:     e.Actor(),
		Action:    string(e.Action()),
		Note:      e.Note(),
		CreatedAt: e.CreatedAt(),
	}
}
