package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/pagination"
	"autoledger/internal/testutil"
)

func TestVehicleService_CRUD(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewVehicleService(conn)
	user := testutil.CreateTestUser(t, db)

	created, err := svc.Create(ctx, user.ID, &models.Vehicle{
		UserID:      "someone-else",
		Name:        "Daily",
		VehicleType: models.VehicleTypeCar,
		Brand:       "Honda",
		Model:       "Civic",
		Year:        2019,
	})
	testutil.AssertNoError(t, err)

	if created.UserID != user.ID {
		t.Errorf("owner should come from the caller, got %q", created.UserID)
	}
	if created.ID == "" || created.ID != created.ObjectID {
		t.Errorf("expected canonical id equal to native id, got %q / %q", created.ID, created.ObjectID)
	}

	list, total, err := svc.List(ctx, user.ID, EntryFilter{}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if total != 1 || len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list %v (total %d)", list, total)
	}

	// Partial update keeps untouched fields.
	updated, err := svc.Update(ctx, user.ID, created.ID, &models.Vehicle{Year: 2021}, []string{"year"})
	testutil.AssertNoError(t, err)
	if updated.Year != 2021 || updated.Brand != "Honda" || updated.Name != "Daily" {
		t.Errorf("unexpected vehicle after partial update: %+v", updated)
	}

	got, err := svc.Get(ctx, user.ID, created.ID)
	testutil.AssertNoError(t, err)
	if got.Year != 2021 {
		t.Errorf("expected persisted year 2021, got %d", got.Year)
	}

	testutil.AssertNoError(t, svc.Delete(ctx, user.ID, created.ID))
	_, err = svc.Get(ctx, user.ID, created.ID)
	testutil.AssertAppError(t, err, "VEHICLE_NOT_FOUND")
}

func TestVehicleService_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewVehicleService(conn)
	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	vehicle := testutil.CreateTestVehicle(t, db, owner.ID)

	list, _, err := svc.List(ctx, intruder.ID, EntryFilter{}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(list) != 0 {
		t.Errorf("intruder should see no vehicles, got %d", len(list))
	}

	_, err = svc.Get(ctx, intruder.ID, vehicle.ID)
	if msg := testutil.AppMessage(t, err); msg != "Vehicle not found" {
		t.Errorf("get message = %q", msg)
	}

	_, err = svc.Update(ctx, intruder.ID, vehicle.ID, &models.Vehicle{Name: "Mine now"}, []string{"name"})
	if msg := testutil.AppMessage(t, err); msg != "Vehicle not found or not authorized to update" {
		t.Errorf("update message = %q", msg)
	}

	err = svc.Delete(ctx, intruder.ID, vehicle.ID)
	if msg := testutil.AppMessage(t, err); msg != "Vehicle not found or not authorized to delete" {
		t.Errorf("delete message = %q", msg)
	}

	var stored models.Vehicle
	db.Where("object_id = ?", vehicle.ObjectID).First(&stored)
	if stored.Name != vehicle.Name {
		t.Errorf("vehicle was modified by another user: %q", stored.Name)
	}
}

func TestVehicleService_MatchesEitherIdentifier(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewVehicleService(conn)
	user := testutil.CreateTestUser(t, db)

	legacy := testutil.CreateTestVehicle(t, db, user.ID)
	testutil.ClearCanonicalID(t, db, &models.Vehicle{}, legacy.ObjectID)

	got, err := svc.Get(ctx, user.ID, legacy.ObjectID)
	testutil.AssertNoError(t, err)
	if got.ID != legacy.ObjectID {
		t.Errorf("expected canonical id backfilled in the response, got %q", got.ID)
	}

	imported := testutil.CreateTestVehicle(t, db, user.ID)
	db.Model(&models.Vehicle{}).Where("object_id = ?", imported.ObjectID).Update("id", "imported-7")

	got, err = svc.Get(ctx, user.ID, "imported-7")
	testutil.AssertNoError(t, err)
	if got.ObjectID != imported.ObjectID {
		t.Errorf("lookup by canonical id returned %q", got.ObjectID)
	}

	list, _, err := svc.List(ctx, user.ID, EntryFilter{}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	for _, v := range list {
		if v.ID == "" {
			t.Errorf("list returned a vehicle without canonical id: %+v", v)
		}
	}
}

func TestFuelEntryService_FiltersAndPages(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewFuelEntryService(conn)
	user := testutil.CreateTestUser(t, db)
	carA := testutil.CreateTestVehicle(t, db, user.ID)
	carB := testutil.CreateTestVehicle(t, db, user.ID)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := testutil.CreateTestFuelEntry(t, db, user.ID, carA.ID)
		db.Model(e).Updates(map[string]interface{}{"date": base.AddDate(0, 0, i), "cost": float64(10 * (i + 1))})
	}
	other := testutil.CreateTestFuelEntry(t, db, user.ID, carB.ID)
	db.Model(other).Update("fuel_company", "BP")

	list, total, err := svc.List(ctx, user.ID, EntryFilter{CarID: carA.ID}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if total != 5 || len(list) != 5 {
		t.Fatalf("expected 5 entries for car A, got %d", len(list))
	}
	if !list[0].Date.After(list[4].Date) {
		t.Error("expected newest entry first by default")
	}

	page := pagination.PageRequest{Page: 2, PageSize: 2, SortBy: "cost", SortOrder: "asc"}
	list, total, err = svc.List(ctx, user.ID, EntryFilter{CarID: carA.ID}, page)
	testutil.AssertNoError(t, err)
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(list) != 2 || list[0].Cost != 30 || list[1].Cost != 40 {
		t.Errorf("unexpected second page: %+v", list)
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 3)
	list, _, err = svc.List(ctx, user.ID, EntryFilter{CarID: carA.ID, From: &from, To: &to}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(list) != 3 {
		t.Errorf("date range should match 3 entries, got %d", len(list))
	}

	list, _, err = svc.List(ctx, user.ID, EntryFilter{FuelCompany: "BP"}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(list) != 1 || list[0].ObjectID != other.ObjectID {
		t.Errorf("fuel company filter returned %+v", list)
	}
}

func TestEntryServices_NotFound(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	user := testutil.CreateTestUser(t, db)
	missing := "65a1b2c3d4e5f60718293a4b"

	err := NewFuelEntryService(conn).Delete(ctx, user.ID, missing)
	if msg := testutil.AppMessage(t, err); msg != "Fuel entry not found" {
		t.Errorf("fuel message = %q", msg)
	}

	_, err = NewExpenseEntryService(conn).Update(ctx, user.ID, missing, &models.ExpenseEntry{Amount: 5}, []string{"amount"})
	if msg := testutil.AppMessage(t, err); msg != "Expense entry not found" {
		t.Errorf("expense message = %q", msg)
	}

	_, err = NewIncomeEntryService(conn).Get(ctx, user.ID, missing)
	if msg := testutil.AppMessage(t, err); msg != "Income entry not found" {
		t.Errorf("income message = %q", msg)
	}
}

func TestIncomeEntryService_CategoryFilter(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewIncomeEntryService(conn)
	user := testutil.CreateTestUser(t, db)
	car := testutil.CreateTestVehicle(t, db, user.ID)

	testutil.CreateTestIncomeEntry(t, db, user.ID, car.ID, 50)
	rental := testutil.CreateTestIncomeEntry(t, db, user.ID, car.ID, 70)
	db.Model(rental).Update("category", "Rental")

	list, _, err := svc.List(ctx, user.ID, EntryFilter{Category: "Rental"}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(list) != 1 || list[0].Amount != 70 {
		t.Errorf("category filter returned %+v", list)
	}
}

func TestResourceService_ConnectFailureCarriesDetail(t *testing.T) {
	db, _ := setup(t)
	conn := &testutil.CountingConnector{DB: db, Fail: true}

	_, _, err := NewExpenseEntryService(conn).List(context.Background(), "u1", EntryFilter{}, pagination.PageRequest{})

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.StatusCode != 500 || appErr.Detail != testutil.ErrConnect.Error() {
		t.Errorf("unexpected error %+v", appErr)
	}
}
