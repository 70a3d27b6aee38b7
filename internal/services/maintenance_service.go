package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/ids"
	"autoledger/internal/logger"
	"autoledger/internal/metrics"
	"autoledger/internal/models"
)

// maintenanceService inspects and repairs stored identifiers.
type maintenanceService struct {
	conn database.Connector
	now  func() time.Time
}

// NewMaintenanceService creates a new MaintenanceServicer.
func NewMaintenanceService(conn database.Connector) MaintenanceServicer {
	return &maintenanceService{conn: conn, now: time.Now}
}

// Diagnose returns the user's vehicles as stored and as normalized for clients.
func (s *maintenanceService) Diagnose(ctx context.Context, userID string) (*Diagnosis, error) {
	defer observeDB(ctx, "maintenance.diagnose")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if err := db.Table(models.Vehicle{}.TableName()).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, apperrors.WithDetail(apperrors.ErrInternalServer, err)
	}

	raw := make([]ids.Document, 0, len(rows))
	missing := 0
	for _, row := range rows {
		doc := rowToDocument(row)
		if id, _ := doc[ids.CanonicalKey].(string); id == "" {
			missing++
		}
		raw = append(raw, doc)
	}

	normalized := ids.NormalizeIDs(raw)
	vehicleIDs := make([]string, 0, len(normalized))
	for _, doc := range normalized {
		vehicleIDs = append(vehicleIDs, ids.GetObjectID(doc))
	}

	return &Diagnosis{
		UserID:             userID,
		VehicleCount:       len(raw),
		MissingIDCount:     missing,
		VehicleIDs:         vehicleIDs,
		RawVehicles:        raw,
		NormalizedVehicles: normalized,
		Timestamp:          s.now().UTC(),
	}, nil
}

// rowToDocument renames the primary key column to the native "_id" key.
func rowToDocument(row map[string]interface{}) ids.Document {
	doc := make(ids.Document, len(row))
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		if k == "object_id" {
			k = ids.NativeKey
		}
		doc[k] = v
	}
	return doc
}

// Repair backfills the canonical id of the user's vehicles, fuel entries and
// expense entries. Rows are saved one at a time; the first failure aborts the
// run and rows fixed before it stay fixed.
func (s *maintenanceService) Repair(ctx context.Context, userID string) (*RepairReport, error) {
	defer observeDB(ctx, "maintenance.repair")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	report := &RepairReport{}
	if report.Vehicles, err = repairCollection[models.Vehicle](db, userID, "vehicles"); err != nil {
		return nil, err
	}
	if report.FuelEntries, err = repairCollection[models.FuelEntry](db, userID, "fuelEntries"); err != nil {
		return nil, err
	}
	if report.ExpenseEntries, err = repairCollection[models.ExpenseEntry](db, userID, "expenseEntries"); err != nil {
		return nil, err
	}

	logger.Get().Infow("identifier repair completed",
		"user_id", userID,
		"vehicles_fixed", report.Vehicles.Fixed,
		"fuel_entries_fixed", report.FuelEntries.Fixed,
		"expense_entries_fixed", report.ExpenseEntries.Fixed,
	)
	return report, nil
}

func repairCollection[T any, P record[T]](db *gorm.DB, userID, collection string) (CollectionReport, error) {
	var report CollectionReport

	var records []T
	if err := db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return report, apperrors.WithDetail(apperrors.ErrInternalServer, err)
	}
	report.Before = int64(len(records))

	for i := range records {
		rec := P(&records[i])
		if !ids.Ensure(rec) {
			continue
		}
		res := db.Model(new(T)).
			Where("object_id = ? AND user_id = ?", rec.NativeID(), userID).
			Update("id", rec.CanonicalID())
		if res.Error != nil {
			return report, apperrors.WithDetail(apperrors.ErrInternalServer,
				fmt.Errorf("%s %s: %w", collection, rec.NativeID(), res.Error))
		}
		report.Fixed++
	}
	metrics.AddRepaired(collection, report.Fixed)

	if err := db.Model(new(T)).Where("user_id = ?", userID).Count(&report.After).Error; err != nil {
		return report, apperrors.WithDetail(apperrors.ErrInternalServer, err)
	}
	return report, nil
}
