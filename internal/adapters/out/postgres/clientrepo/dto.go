// Package clientrepo maps client aggregates onto the clients table.
package clientrepo

import (
	"time"

	"repairshop/internal/core/domain/model/client"
	"repairshop/internal/pkg/textnorm"
)

// ClientDTO is the row shape of a client. Identity uniqueness over
// (name, phone), with a null phone counted as empty, is an expression index
// created by the migration.
type ClientDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(200);not null"`
	Phone         *string `gorm:"type:varchar(40)"`
	Address       string  `gorm:"type:varchar(200);not null;default:''"`
	Locality      string  `gorm:"type:varchar(100);not null;default:''"`
	Province      string  `gorm:"type:varchar(100);not null;default:''"`
	PostalCode    string  `gorm:"type:varchar(20);not null;default:''"`
	Email         string  `gorm:"type:varchar(200);not null;default:''"`
	TaxID         *string `gorm:"type:varchar(20);index"`
	Contact       string  `gorm:"type:varchar(200);not null;default:''"`
	Notes         string  `gorm:"type:text;not null;default:''"`
	BusinessLine  string  `gorm:"type:varchar(200);not null;default:''"`
	UnderWarranty bool    `gorm:"not null;default:false"`
	UnderContract bool    `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	d := c.Details()
	return ClientDTO{
		ID:            c.ID(),
		Name:          d.Name,
		Phone:         textnorm.Optional(d.Phone),
		Address:       d.Address,
		Locality:      d.Locality,
		Province:      d.Province,
		PostalCode:    d.PostalCode,
		Email:         d.Email,
		TaxID:         textnorm.Optional(d.TaxID),
		Contact:       d.Contact,
		Notes:         d.Notes,
		BusinessLine:  d.BusinessLine,
		UnderWarranty: d.UnderWarranty,
		UnderContract: d.UnderContract,
		CreatedAt:     c.CreatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(dto.ID, client.Details{
		Name:          dto.Name,
		Phone:         deref(dto.Phone),
		Address:       dto.Address,
		Locality:      dto.Locality,
		Province:      dto.Province,
		PostalCode:    dto.PostalCode,
		Email:         dto.Email,
		TaxID:         deref(dto.TaxID),
		Contact:       dto.Contact,
		Notes:         dto.Notes,
		BusinessLine:  dto.BusinessLine,
		UnderWarranty: dto.UnderWarranty,
		UnderContract: dto.UnderContract,
	}, dto.CreatedAt)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
