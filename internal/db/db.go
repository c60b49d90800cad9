package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Fecha a corrida entre validar e gravar: dois agendamentos ativos do mesmo
// profissional não podem se sobrepor, nem sob escrita concorrente.
const bookingExclusionDDL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
	) THEN
		ALTER TABLE bookings
			ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				staff_id WITH =,
				tstzrange(appointment_start, appointment_end, '[)') WITH &&
			)
			WHERE (status IN ('pending', 'confirmed'));
	END IF;
END
$$;
`

func NewDB(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return nil, fmt.Errorf("enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.SalonHours{},
		&models.StaffHours{},
		&models.TimeOff{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(bookingExclusionDDL).Error; err != nil {
		return nil, fmt.Errorf("booking exclusion constraint: %w", err)
	}

	if res := db.Exec(`
        UPDATE salons
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone); res.Error != nil {
		logger.Warn().Err(res.Error).Msg("failed to backfill salon timezone")
	}

	return db, nil
}
