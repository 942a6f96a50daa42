package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"festtix/internal/eventdays"
	"festtix/internal/shared/config"
	"festtix/internal/shared/database"
	"festtix/internal/tickets"
	"festtix/internal/users"
	"festtix/internal/vip"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	db *database.DB
}

var dayLabels = map[tickets.DayCode]string{
	tickets.Friday:   "Friday",
	tickets.Saturday: "Saturday",
	tickets.Sunday:   "Sunday",
	tickets.Monday:   "Monday",
}

func main() {
	_ = godotenv.Load()

	fmt.Println("🌱 Starting festival seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	if os.Getenv("SEED_CLEAN") == "true" {
		fmt.Println("\n🧹 Cleaning database...")
		if err := seeder.CleanDatabase(); err != nil {
			log.Fatalf("Failed to clean database: %v", err)
		}
		fmt.Println("✅ Database cleaned successfully")
	}

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("\n🎉 Seeding completed!")
}

// CleanDatabase truncates every festival table, children first.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"ticket_scans",
		"tickets",
		"order_items",
		"vip_reservation_days",
		"vip_reservations",
		"orders",
		"vip_table_day_overrides",
		"vip_tables",
		"vip_zones",
		"event_days",
		"staff_users",
	}

	tx := s.db.GetPostgreSQL().Begin()
	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return tx.Commit().Error
}

func (s *Seeder) SeedAll(ctx context.Context) error {
	days, err := s.SeedEventDays(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed event days: %w", err)
	}

	if err := s.SeedVIP(ctx, days); err != nil {
		return fmt.Errorf("failed to seed vip tables: %w", err)
	}

	if err := s.SeedStaff(ctx); err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}

	if rdb := s.db.GetRedisClient(); rdb != nil {
		if err := rdb.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}
	return nil
}

// SeedEventDays upserts FRI..MON starting at SEED_FESTIVAL_START.
func (s *Seeder) SeedEventDays(ctx context.Context) (map[tickets.DayCode]eventdays.EventDay, error) {
	fmt.Println("  📅 Seeding event days...")

	start, err := time.Parse("2006-01-02", getEnv("SEED_FESTIVAL_START", "2026-07-17"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_FESTIVAL_START: %w", err)
	}

	repo := eventdays.NewRepository(s.db.GetPostgreSQL())
	out := make(map[tickets.DayCode]eventdays.EventDay, 4)
	for i, code := range tickets.AllDays() {
		day := eventdays.EventDay{
			Code:     code.String(),
			Date:     start.AddDate(0, 0, i),
			Label:    dayLabels[code],
			IsActive: true,
		}
		if err := repo.Upsert(ctx, &day); err != nil {
			return nil, fmt.Errorf("failed to upsert day %s: %w", code, err)
		}
		out[code] = day
		fmt.Printf("    ✅ %s %s\n", day.Code, day.Date.Format("2006-01-02"))
	}
	return out, nil
}

// SeedVIP creates two zones of tables. Monday runs with the terrace closed
// and the lounge tables trimmed.
func (s *Seeder) SeedVIP(ctx context.Context, days map[tickets.DayCode]eventdays.EventDay) error {
	fmt.Println("  🥂 Seeding VIP zones...")

	db := s.db.GetPostgreSQL().WithContext(ctx)

	zonesData := []struct {
		code     string
		name     string
		tables   int
		capacity int
	}{
		{"LOUNGE", "Main Stage Lounge", 10, 8},
		{"TERRACE", "Sunset Terrace", 6, 6},
	}

	for i, z := range zonesData {
		zone := vip.Zone{Code: z.code, Name: z.name, SortOrder: i, IsActive: true}
		if err := db.Where(vip.Zone{Code: z.code}).
			Assign(map[string]interface{}{"name": z.name, "sort_order": i, "is_active": true}).
			FirstOrCreate(&zone).Error; err != nil {
			return fmt.Errorf("failed to upsert zone %s: %w", z.code, err)
		}

		for n := 1; n <= z.tables; n++ {
			table := vip.Table{ZoneID: zone.ID, TableNumber: n, Capacity: z.capacity, SortOrder: n, IsActive: true}
			if err := db.Where(vip.Table{ZoneID: zone.ID, TableNumber: n}).FirstOrCreate(&table).Error; err != nil {
				return fmt.Errorf("failed to create table %s/%d: %w", z.code, n, err)
			}

			monday, ok := days[tickets.Monday]
			if !ok {
				continue
			}
			override := vip.TableDayOverride{TableID: table.ID, EventDayID: monday.ID}
			if z.code == "TERRACE" {
				disabled := false
				override.IsEnabled = &disabled
			} else {
				reduced := z.capacity / 2
				override.CapacityOverride = &reduced
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&override).Error; err != nil {
				return fmt.Errorf("failed to create monday override for %s/%d: %w", z.code, n, err)
			}
		}
		fmt.Printf("    ✅ Zone %s with %d tables\n", zone.Code, z.tables)
	}
	return nil
}

// SeedStaff creates the admin and a door scanner.
func (s *Seeder) SeedStaff(ctx context.Context) error {
	fmt.Println("  👤 Seeding staff...")

	password := getEnv("SEED_STAFF_PASSWORD", "festival-admin")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	staff := []struct {
		name  string
		email string
		role  users.Role
	}{
		{"Festival Admin", getEnv("SEED_ADMIN_EMAIL", "admin@festtix.local"), users.RoleAdmin},
		{"Gate Scanner", getEnv("SEED_SCANNER_EMAIL", "gate@festtix.local"), users.RoleScanner},
	}

	db := s.db.GetPostgreSQL().WithContext(ctx)
	for _, st := range staff {
		user := users.User{
			FullName: st.name,
			Email:    st.email,
			Password: string(hashed),
			Role:     st.role,
			IsActive: true,
		}
		if err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create staff user %s: %w", st.email, err)
		}
		fmt.Printf("    ✅ %s (%s)\n", st.email, st.role)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
