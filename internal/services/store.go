package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/metrics"
)

// connect obtains the shared connection. A failed connect carries its cause
// as Detail so the 500 response can include it.
func connect(ctx context.Context, conn database.Connector) (*gorm.DB, error) {
	db, err := conn.Connect(ctx)
	if err != nil {
		return nil, apperrors.WithDetail(apperrors.ErrInternalServer, err)
	}
	return db, nil
}

func observeDB(ctx context.Context, operation string) func() {
	start := time.Now()
	return func() {
		metrics.ObserveDBLatency(ctx, operation, start)
	}
}
