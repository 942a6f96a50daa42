package database

import (
	"fmt"

	"gorm.io/gorm"
)

type foreignKey struct {
	name, table, column, ref string
	onDelete                 string
}

// foreign keys are added here because AutoMigrate runs with them disabled
var foreignKeys = []foreignKey{
	{"fk_order_items_order", "order_items", "order_id", "orders(id)", "CASCADE"},
	{"fk_tickets_order", "tickets", "order_id", "orders(id)", "CASCADE"},
	{"fk_tickets_order_item", "tickets", "order_item_id", "order_items(id)", "CASCADE"},
	{"fk_vip_tables_zone", "vip_tables", "zone_id", "vip_zones(id)", "RESTRICT"},
	{"fk_vip_overrides_table", "vip_table_day_overrides", "table_id", "vip_tables(id)", "CASCADE"},
	{"fk_vip_overrides_day", "vip_table_day_overrides", "event_day_id", "event_days(id)", "CASCADE"},
	{"fk_vip_reservations_table", "vip_reservations", "table_id", "vip_tables(id)", "RESTRICT"},
	{"fk_vip_reservation_days_reservation", "vip_reservation_days", "reservation_id", "vip_reservations(id)", "CASCADE"},
	{"fk_vip_reservation_days_day", "vip_reservation_days", "event_day_id", "event_days(id)", "RESTRICT"},
	{"fk_ticket_scans_ticket", "ticket_scans", "ticket_id", "tickets(id)", "CASCADE"},
}

var indexes = []string{
	// unpaid cleanup scans PENDING orders by age
	`CREATE INDEX IF NOT EXISTS idx_orders_pending_created
		ON orders (created_at) WHERE status = 'PENDING'`,
	// holding reservations per table, used under the table lock
	`CREATE INDEX IF NOT EXISTS idx_vip_reservations_table_holding
		ON vip_reservations (table_id) WHERE status IN ('PENDING', 'CONFIRMED')`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_days ON tickets USING GIN (days)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_vip_overrides_table_day
		ON vip_table_day_overrides (table_id, event_day_id)`,
}

// MigrateConstraints adds foreign keys and partial indexes gorm tags cannot express.
func MigrateConstraints(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s ADD CONSTRAINT %s
					FOREIGN KEY (%s) REFERENCES %s ON DELETE %s;
				END IF;
			END $$;
		`, fk.name, fk.table, fk.name, fk.column, fk.ref, fk.onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.name, err)
		}
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
