package database

import (
	"fmt"
	"time"

	"lead-crm-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection. Zero values take the defaults below.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.Team{},
		&models.TeamCompany{},
		&models.Agent{},
		&models.Lead{},
		&models.LeadSubmission{},
		&models.TeamAssignmentCursor{},
		&models.AgentAssignmentCursor{},
		&models.AgentCursorPosition{},
		&models.Bank{},
		&models.BankProduct{},
		&models.Client{},
		&models.Sale{},
		&models.Calculation{},
	}
}

// rotationIndexes back the ordered candidate queries of the distribution engine
var rotationIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_teams_rotation ON teams (type, created_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_agents_rotation ON agents (team_id, created_at, id)`,
}

// Initialize opens a Postgres connection and, unless opts.SkipMigrate is set,
// migrates the schema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() backs the BaseModel id default. It is built in from
	// Postgres 13, so a role without CREATE EXTENSION rights is not fatal.
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, stmt := range rotationIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create rotation index: %w", err)
		}
	}
	return nil
}
