package postgres

import (
	"context"
	"fmt"

	"repairshop/internal/adapters/out/postgres/catalogrepo"
	"repairshop/internal/adapters/out/postgres/clientrepo"
	"repairshop/internal/adapters/out/postgres/equipmentrepo"
	"repairshop/internal/adapters/out/postgres/historyrepo"
	"repairshop/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&clientrepo.ClientDTO{},
		&equipmentrepo.EquipmentDTO{},
		&equipmentrepo.OwnershipDTO{},
		&catalogrepo.EntryDTO{},
		&orderrepo.OrderDTO{},
		&historyrepo.EntryDTO{},
	}
}

// Identity and ownership rules GORM tags cannot express.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_clients_identity
		ON clients (name, COALESCE(phone, ''))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_equipment_serial
		ON equipment (serial) WHERE serial IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_equipment_description
		ON equipment (description) WHERE serial IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_equipment_clients_active
		ON equipment_clients (equipment_id) WHERE active`,
}

// Migrate creates or updates the schema. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)
	if err := conn.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range indexes {
		if err := conn.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Truncate empties every table and restarts the id sequences.
func Truncate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(
		"TRUNCATE TABLE order_history, orders, catalog_entries, equipment_clients, equipment, clients RESTART IDENTITY",
	).Error
}
