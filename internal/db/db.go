package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonbook/salon-api/internal/config"
	"github.com/salonbook/salon-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.AvailabilityRule{},
		&models.Booking{},
		&models.BookingService{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installOverlapGuard(db)

	return db
}

// installOverlapGuard adds a postgres exclusion constraint so two
// overlapping non-cancelled bookings for the same barber and date can
// never both commit, even if the application-level re-check races.
// Start and end are stored as "HH:MM" strings; the constraint compares
// them as half-open minute ranges.
func installOverlapGuard(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        DO $$
        BEGIN
            ALTER TABLE bookings
            ADD CONSTRAINT bookings_no_overlap
            EXCLUDE USING gist (
                barber_id WITH =,
                booking_date WITH =,
                int4range(
                    split_part(start_time, ':', 1)::int * 60 + split_part(start_time, ':', 2)::int,
                    split_part(end_time, ':', 1)::int * 60 + split_part(end_time, ':', 2)::int
                ) WITH &&
            )
            WHERE (status <> 'cancelled');
        EXCEPTION
            WHEN duplicate_object THEN NULL;
        END
        $$;
    `)
}
