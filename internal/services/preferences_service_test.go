package services

import (
	"context"
	"testing"

	"autoledger/internal/models"
	"autoledger/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestPreferencesService_GetCreatesDefaults(t *testing.T) {
	ctx := context.Background()
	db, conn := setup(t)
	svc := NewPreferencesService(conn)

	prefs, err := svc.Get(ctx, "user123")
	testutil.AssertNoError(t, err)
	if prefs.Currency != "USD" || prefs.DistanceUnit != "km" || !prefs.NotificationsEnabled {
		t.Errorf("expected defaults, got %+v", prefs)
	}

	again, err := svc.Get(ctx, "user123")
	testutil.AssertNoError(t, err)
	if again.ObjectID != prefs.ObjectID {
		t.Errorf("second read created a new row: %s vs %s", again.ObjectID, prefs.ObjectID)
	}

	var count int64
	db.Model(&models.UserPreferences{}).Where("user_id = ?", "user123").Count(&count)
	if count != 1 {
		t.Errorf("expected one preferences row, got %d", count)
	}
}

func TestPreferencesService_Update(t *testing.T) {
	ctx := context.Background()
	_, conn := setup(t)
	svc := NewPreferencesService(conn)

	off := false
	companies := []string{"Local Gas"}
	prefs, err := svc.Update(ctx, "user123", PreferencesPatch{
		Currency:             strPtr("EUR"),
		Theme:                strPtr("dark"),
		NotificationsEnabled: &off,
		CustomFuelCompanies:  &companies,
		Extra:                map[string]any{"dashboardLayout": "compact", "beta": true},
	})
	testutil.AssertNoError(t, err)

	if prefs.Currency != "EUR" || prefs.Theme != "dark" || prefs.NotificationsEnabled {
		t.Errorf("patch not applied: %+v", prefs)
	}
	if prefs.Locale != "en" || prefs.VolumeUnit != "L" {
		t.Errorf("untouched fields changed: %+v", prefs)
	}
	if len(prefs.CustomFuelCompanies) != 1 || prefs.CustomFuelCompanies[0] != "Local Gas" {
		t.Errorf("unexpected custom fuel companies %v", prefs.CustomFuelCompanies)
	}

	// Extra is merged; a nil value removes the key.
	prefs, err = svc.Update(ctx, "user123", PreferencesPatch{
		Extra: map[string]any{"beta": nil, "homeCar": "abc"},
	})
	testutil.AssertNoError(t, err)

	stored, err := svc.Get(ctx, "user123")
	testutil.AssertNoError(t, err)
	if stored.Currency != "EUR" {
		t.Errorf("earlier patch lost, currency = %q", stored.Currency)
	}
	if _, ok := stored.Extra["beta"]; ok {
		t.Error("expected beta to be removed from extra")
	}
	if stored.Extra["dashboardLayout"] != "compact" || stored.Extra["homeCar"] != "abc" {
		t.Errorf("unexpected extra %v", stored.Extra)
	}
	if prefs.ObjectID != stored.ObjectID {
		t.Error("update should not create a second row")
	}
}

func TestPreferencesService_ConnectFailure(t *testing.T) {
	conn := &testutil.CountingConnector{Fail: true}
	_, err := NewPreferencesService(conn).Get(context.Background(), "user123")
	testutil.AssertAppError(t, err, "INTERNAL_ERROR")
}
