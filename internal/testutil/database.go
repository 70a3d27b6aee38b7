// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autoledger/internal/database"
	"autoledger/internal/models"
)

// SetupTestDB creates an in-memory SQLite database with all models migrated.
// Every call gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// ErrConnect is returned by a CountingConnector configured to fail.
var ErrConnect = errors.New("connection refused")

// CountingConnector is a database.Connector that records how often it was
// asked for a connection.
type CountingConnector struct {
	DB   *gorm.DB
	Fail bool

	calls atomic.Int64
}

var _ database.Connector = (*CountingConnector)(nil)

// Connect returns DB, or ErrConnect when Fail is set.
func (c *CountingConnector) Connect(ctx context.Context) (*gorm.DB, error) {
	c.calls.Add(1)
	if c.Fail {
		return nil, ErrConnect
	}
	return c.DB.WithContext(ctx), nil
}

// Calls returns the number of Connect calls so far.
func (c *CountingConnector) Calls() int64 {
	return c.calls.Load()
}
