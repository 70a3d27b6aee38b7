package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"autoledger/internal/catalog"
	"autoledger/internal/models"
	"autoledger/internal/testutil"
)

func TestCatalogService_ListMergesPredefined(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewCatalogService(conn)
	user := testutil.CreateTestUser(t, db)

	list, err := svc.List(ctx, user.ID, models.CatalogKindFuelCompany)
	testutil.AssertNoError(t, err)

	predefined := catalog.For(models.CatalogKindFuelCompany).Predefined
	if len(list) != len(predefined) {
		t.Fatalf("expected %d entries, got %d", len(predefined), len(list))
	}
	for _, e := range list {
		if !e.IsPredefined || !strings.HasPrefix(e.ObjectID, "predefined-") {
			t.Errorf("expected synthesized entry, got %+v", e)
		}
	}

	var stored int64
	db.Model(&models.CatalogEntry{}).Where("user_id = ?", user.ID).Count(&stored)
	if stored != 0 {
		t.Errorf("listing must not write, found %d rows", stored)
	}

	testutil.CreateTestCatalogEntry(t, db, user.ID, models.CatalogKindFuelCompany, "Local Gas")
	testutil.CreateTestCatalogEntry(t, db, user.ID, models.CatalogKindFuelType, "Hydrogen")

	list, err = svc.List(ctx, user.ID, models.CatalogKindFuelCompany)
	testutil.AssertNoError(t, err)
	if len(list) != len(predefined)+1 {
		t.Errorf("expected custom entry merged in, got %d entries", len(list))
	}
}

func TestCatalogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("custom_name_is_stored", func(t *testing.T) {
		db, conn := setup(t)
		svc := NewCatalogService(conn)
		user := testutil.CreateTestUser(t, db)

		entry, created, err := svc.Create(ctx, user.ID, models.CatalogKindFuelType, "  Hydrogen ")
		testutil.AssertNoError(t, err)
		if !created || entry.Name != "Hydrogen" || entry.UserID != user.ID {
			t.Errorf("unexpected result %+v created=%v", entry, created)
		}
	})

	t.Run("predefined_name_is_not_stored", func(t *testing.T) {
		db, _ := setup(t)
		conn := &testutil.CountingConnector{DB: db}
		svc := NewCatalogService(conn)

		entry, created, err := svc.Create(ctx, "user123", models.CatalogKindFuelCompany, "Shell")
		testutil.AssertNoError(t, err)
		if created || entry.ObjectID != "predefined-shell" || !entry.IsPredefined {
			t.Errorf("expected pseudo entry, got %+v created=%v", entry, created)
		}
		if conn.Calls() != 0 {
			t.Errorf("predefined short-circuit should not reach the store, got %d connects", conn.Calls())
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		_, conn := setup(t)
		_, _, err := NewCatalogService(conn).Create(ctx, "user123", models.CatalogKindFuelType, "   ")
		testutil.AssertAppError(t, err, "NAME_REQUIRED")
	})

	t.Run("duplicate_status_per_kind", func(t *testing.T) {
		db, conn := setup(t)
		svc := NewCatalogService(conn)
		user := testutil.CreateTestUser(t, db)

		tests := []struct {
			kind       models.CatalogKind
			first      string
			second     string
			wantStatus int
			wantMsg    string
		}{
			{models.CatalogKindFuelCompany, "Local Gas", "Local Gas", http.StatusConflict, "Fuel company already exists"},
			{models.CatalogKindFuelType, "Hydrogen", "Hydrogen", http.StatusConflict, "Fuel type already exists"},
			{models.CatalogKindExpenseCategory, "Detailing", "DETAILING", http.StatusBadRequest, "Expense category already exists"},
			{models.CatalogKindIncomeCategory, "Tips", "tips", http.StatusBadRequest, "Income category already exists"},
		}

		for _, tt := range tests {
			_, _, err := svc.Create(ctx, user.ID, tt.kind, tt.first)
			testutil.AssertNoError(t, err)

			_, _, err = svc.Create(ctx, user.ID, tt.kind, tt.second)
			testutil.AssertAppError(t, err, "DUPLICATE_ENTRY")
			if status := testutil.AppStatus(err); status != tt.wantStatus {
				t.Errorf("%s: status = %d, want %d", tt.kind, status, tt.wantStatus)
			}
			if msg := testutil.AppMessage(t, err); msg != tt.wantMsg {
				t.Errorf("%s: message = %q, want %q", tt.kind, msg, tt.wantMsg)
			}
		}
	})

	t.Run("fuel_names_are_case_sensitive", func(t *testing.T) {
		db, conn := setup(t)
		svc := NewCatalogService(conn)
		user := testutil.CreateTestUser(t, db)

		_, created, err := svc.Create(ctx, user.ID, models.CatalogKindFuelCompany, "shell")
		testutil.AssertNoError(t, err)
		if !created {
			t.Error("lower-case variant of a fuel company is a distinct custom entry")
		}
	})

	t.Run("seeded_category_returns_stored_row", func(t *testing.T) {
		db, conn := setup(t)
		svc := NewCatalogService(conn)
		user := testutil.CreateTestUser(t, db)
		testutil.AssertNoError(t, SeedCatalogs(db, user.ID))

		entry, created, err := svc.Create(ctx, user.ID, models.CatalogKindExpenseCategory, "insurance")
		testutil.AssertNoError(t, err)
		if created || !entry.IsPredefined || strings.HasPrefix(entry.ObjectID, "predefined-") {
			t.Errorf("expected the seeded row, got %+v created=%v", entry, created)
		}
	})
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewCatalogService(conn)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	entry := testutil.CreateTestCatalogEntry(t, db, user.ID, models.CatalogKindFuelType, "Hydrogen")
	testutil.CreateTestCatalogEntry(t, db, user.ID, models.CatalogKindFuelType, "Biodiesel")

	name := "Green Hydrogen"
	inactive := false
	updated, err := svc.Update(ctx, user.ID, models.CatalogKindFuelType, entry.ID, CatalogPatch{Name: &name, Active: &inactive})
	testutil.AssertNoError(t, err)
	if updated.Name != name || updated.Active {
		t.Errorf("unexpected update result %+v", updated)
	}

	taken := "Biodiesel"
	_, err = svc.Update(ctx, user.ID, models.CatalogKindFuelType, entry.ID, CatalogPatch{Name: &taken})
	testutil.AssertAppError(t, err, "DUPLICATE_ENTRY")

	builtin := "Diesel"
	_, err = svc.Update(ctx, user.ID, models.CatalogKindFuelType, entry.ID, CatalogPatch{Name: &builtin})
	testutil.AssertAppError(t, err, "DUPLICATE_ENTRY")
	if status := testutil.AppStatus(err); status != 409 {
		t.Errorf("rename onto built-in: status = %d, want 409", status)
	}

	_, err = svc.Update(ctx, other.ID, models.CatalogKindFuelType, entry.ID, CatalogPatch{Name: &name})
	testutil.AssertAppError(t, err, "CATALOG_ENTRY_NOT_FOUND")

	_, err = svc.Update(ctx, user.ID, models.CatalogKindFuelCompany, entry.ID, CatalogPatch{Name: &name})
	testutil.AssertAppError(t, err, "CATALOG_ENTRY_NOT_FOUND")

	err = svc.Delete(ctx, other.ID, models.CatalogKindFuelType, entry.ID)
	testutil.AssertAppError(t, err, "CATALOG_ENTRY_NOT_FOUND")

	testutil.AssertNoError(t, svc.Delete(ctx, user.ID, models.CatalogKindFuelType, entry.ID))
	err = svc.Delete(ctx, user.ID, models.CatalogKindFuelType, entry.ID)
	testutil.AssertAppError(t, err, "CATALOG_ENTRY_NOT_FOUND")
}

func TestCatalogService_PredefinedImmutable(t *testing.T) {
	ctx := context.Background()
	db, _ := setup(t)
	conn := &testutil.CountingConnector{DB: db}
	svc := NewCatalogService(conn)
	name := "Renamed"

	for _, kind := range []models.CatalogKind{
		models.CatalogKindFuelCompany, models.CatalogKindFuelType,
		models.CatalogKindExpenseCategory, models.CatalogKindIncomeCategory,
	} {
		_, err := svc.Update(ctx, "user123", kind, "predefined-anything", CatalogPatch{Name: &name})
		testutil.AssertAppError(t, err, "PREDEFINED_ENTRY")
		if msg := testutil.AppMessage(t, err); msg != "Cannot modify predefined "+catalog.For(kind).Plural {
			t.Errorf("%s update message = %q", kind, msg)
		}

		err = svc.Delete(ctx, "user123", kind, "predefined-anything")
		testutil.AssertAppError(t, err, "PREDEFINED_ENTRY")
		if msg := testutil.AppMessage(t, err); msg != "Cannot delete predefined "+catalog.For(kind).Plural {
			t.Errorf("%s delete message = %q", kind, msg)
		}
	}
	if conn.Calls() != 0 {
		t.Errorf("pseudo ids must be rejected before the store, got %d connects", conn.Calls())
	}

	// Seeded rows are stored but still read-only.
	user := testutil.CreateTestUser(t, db)
	testutil.AssertNoError(t, SeedCatalogs(db, user.ID))
	var seeded models.CatalogEntry
	db.Where("user_id = ? AND name = ?", user.ID, "Tolls").First(&seeded)

	err := svc.Delete(ctx, user.ID, models.CatalogKindExpenseCategory, seeded.ID)
	testutil.AssertAppError(t, err, "PREDEFINED_ENTRY")
}

func TestSeedCatalogs_Idempotent(t *testing.T) {
	db, _ := setup(t)
	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestCatalogEntry(t, db, user.ID, models.CatalogKindExpenseCategory, "insurance")

	testutil.AssertNoError(t, SeedCatalogs(db, user.ID))
	testutil.AssertNoError(t, SeedCatalogs(db, user.ID))

	var count int64
	db.Model(&models.CatalogEntry{}).
		Where("user_id = ? AND kind = ?", user.ID, models.CatalogKindExpenseCategory).
		Count(&count)

	want := int64(len(catalog.For(models.CatalogKindExpenseCategory).Predefined))
	if count != want {
		t.Errorf("expected %d expense categories (existing custom name reused), got %d", want, count)
	}
}
