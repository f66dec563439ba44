package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/forecastlabs/agent-portal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the pooled connection to the relational store and exposes the
// three primitives the recorder and catalog are built on: Execute, FetchAll
// and FetchOne. On construction it provisions its own table
// (agent_deployed_games); the deployed_contracts parent table belongs to the
// external deployment pipeline and is never created or altered here.
type Database struct {
	DB *gorm.DB
}

// NewSqliteDatabase opens a file-backed (or in-memory) SQLite store. This is
// the default mode for local development and tests.
func NewSqliteDatabase(dbPath string) (*Database, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// NewPostgresDatabase connects to the shared Postgres instance. A bad DSN or
// unreachable host fails here, at startup, rather than on first query.
func NewPostgresDatabase(dsn string) (*Database, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

func gormConfig() *gorm.Config {
	// Only log errors and slow queries
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      false,
			Colorful:                  false,
		},
	)

	return &gorm.Config{
		Logger: gormLogger,
		// Surface unique/foreign-key violations as gorm.ErrDuplicatedKey
		// and gorm.ErrForeignKeyViolated across both drivers.
		TranslateError: true,
	}
}

// migrate provisions agent_deployed_games if it does not exist yet. The call
// is idempotent, and the externally-owned deployed_contracts table is left
// untouched.
func (d *Database) migrate() error {
	return d.DB.AutoMigrate(&models.AgentDeployedGame{})
}

// Execute runs a mutating statement and reports how many rows it affected,
// so callers can tell "insert no-oped" apart from a storage error.
func (d *Database) Execute(sql string, args ...interface{}) (int64, error) {
	tx := d.DB.Exec(sql, args...)
	return tx.RowsAffected, tx.Error
}

// FetchAll runs a read-many query, scanning every row into dest.
func (d *Database) FetchAll(dest interface{}, sql string, args ...interface{}) error {
	return d.DB.Raw(sql, args...).Scan(dest).Error
}

// FetchOne runs a read-one query. A missing row is reported through the
// boolean, not as an error.
func (d *Database) FetchOne(dest interface{}, sql string, args ...interface{}) (bool, error) {
	tx := d.DB.Raw(sql, args...).Scan(dest)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
