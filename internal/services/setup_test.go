package services

import (
	"testing"

	"gorm.io/gorm"

	"autoledger/internal/database"
	"autoledger/internal/logger"
	"autoledger/internal/testutil"
)

func init() {
	logger.Init("test")
}

func setup(t *testing.T) (*gorm.DB, database.Connector) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return db, database.Static(db)
}
