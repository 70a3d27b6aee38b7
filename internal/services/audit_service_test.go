package services

import (
	"context"
	"testing"

	"autoledger/internal/models"
	"autoledger/internal/testutil"
)

func TestAuditService_Record(t *testing.T) {
	db, conn := setup(t)
	svc := NewAuditService(conn)

	svc.Record(context.Background(), AuditEvent{
		UserID:       "user-1",
		Action:       "UPDATE_VEHICLE",
		ResourceType: "vehicle",
		ResourceID:   "veh-1",
		IPAddress:    "10.0.0.1",
		Changes:      map[string]interface{}{"name": "Daily"},
	})
	svc.Record(context.Background(), AuditEvent{UserID: "user-1", Action: "CLEANUP", ResourceType: "maintenance"})

	var logs []models.AuditLog
	testutil.AssertNoError(t, db.Order("created_at, object_id").Find(&logs).Error)
	if len(logs) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(logs))
	}

	var update, cleanup models.AuditLog
	for _, l := range logs {
		switch l.Action {
		case "UPDATE_VEHICLE":
			update = l
		case "CLEANUP":
			cleanup = l
		}
	}
	if update.ResourceID != "veh-1" || update.IPAddress != "10.0.0.1" {
		t.Errorf("unexpected update row %+v", update)
	}
	if update.Changes["name"] != "Daily" {
		t.Errorf("changes = %v", update.Changes)
	}
	if cleanup.ID == "" || len(cleanup.Changes) != 0 {
		t.Errorf("unexpected cleanup row %+v", cleanup)
	}
}

func TestAuditService_StoreFailureIsSwallowed(t *testing.T) {
	conn := &testutil.CountingConnector{Fail: true}
	svc := NewAuditService(conn)

	svc.Record(context.Background(), AuditEvent{UserID: "user-1", Action: "DELETE_VEHICLE", ResourceType: "vehicle"})

	if conn.Calls() != 1 {
		t.Errorf("Calls() = %d, want 1", conn.Calls())
	}
}
