// Package catalogrepo maps catalog entries of every kind onto one table keyed
// by (kind, key).
package catalogrepo

import (
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
)

type EntryDTO struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	Kind        string   `gorm:"type:varchar(20);not null;uniqueIndex:idx_catalog_entries_kind_key,priority:1"`
	Key         string   `gorm:"type:varchar(300);not null;uniqueIndex:idx_catalog_entries_kind_key,priority:2"`
	Name        string   `gorm:"type:varchar(300);not null"`
	Description string   `gorm:"type:text;not null;default:''"`
	Cost        *float64 `gorm:"type:numeric(12,2)"`
}

func (EntryDTO) TableName() string {
	return "catalog_entries"
}

func fromDomain(e *catalog.Entry) EntryDTO {
	var cost *float64
	if c := e.Cost(); c != nil {
		f := c.Float()
		cost = &f
	}
	return EntryDTO{
		ID:          e.ID(),
		Kind:        e.Kind().String(),
		Key:         e.Key(),
		Name:        e.Name(),
		Description: e.Description(),
		Cost:        cost,
	}
}

func toDomain(dto EntryDTO) (*catalog.Entry, error) {
	var cost *kernel.Money
	if dto.Cost != nil {
		m, err := kernel.MoneyFromFloat(*dto.Cost)
		if err != nil {
			return nil, err
		}
		cost = &m
	}
	kind := catalog.Kind(dto.Kind)
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return catalog.RestoreEntry(dto.ID, kind, dto.Name, dto.Key, dto.Description, cost), nil
}
