package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"autoledger/internal/logger"
	"autoledger/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connector hands out the shared store connection. Implementations must be
// safe for concurrent use and return the same underlying pool on every call.
type Connector interface {
	Connect(ctx context.Context) (*gorm.DB, error)
}

// Manager is the process-wide Connector. The connection is opened on the first
// Connect call and reused afterwards; a failed attempt is not cached, so the
// next request tries again.
type Manager struct {
	config *Config

	mu sync.Mutex
	db *gorm.DB
}

// NewManager creates a new database manager without connecting
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Connect returns the shared connection bound to ctx, opening it if needed.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		db, err := m.open()
		if err != nil {
			return nil, err
		}
		m.db = db
		logger.Get().Infow("database connection established", "driver", m.config.Driver)
	}
	return m.db.WithContext(ctx), nil
}

func (m *Manager) open() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		dialector = postgres.New(postgres.Config{
			DSN:                  m.config.DSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate brings the schema up to date: SQL migrations for postgres,
// gorm auto-migration for sqlite.
func (m *Manager) Migrate(ctx context.Context) error {
	if m.config.Driver == DriverSQLite {
		db, err := m.Connect(ctx)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}
	return m.RunMigrations()
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.config.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Close releases the pool if it was opened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	m.db = nil
	return sqlDB.Close()
}

// Static wraps an already-open connection as a Connector.
func Static(db *gorm.DB) Connector {
	return staticConnector{db: db}
}

type staticConnector struct {
	db *gorm.DB
}

func (s staticConnector) Connect(ctx context.Context) (*gorm.DB, error) {
	return s.db.WithContext(ctx), nil
}
