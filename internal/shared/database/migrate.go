package database

import (
	"festtix/internal/checkin"
	"festtix/internal/eventdays"
	"festtix/internal/orders"
	"festtix/internal/users"
	"festtix/internal/vip"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&users.User{},
		&eventdays.EventDay{},
		&vip.Zone{},
		&vip.Table{},
		&vip.TableDayOverride{},
		&orders.Order{},
		&orders.OrderItem{},
		&orders.Ticket{},
		&vip.Reservation{},
		&vip.ReservationDay{},
		&checkin.TicketScan{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
