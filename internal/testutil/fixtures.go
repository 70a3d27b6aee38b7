package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autoledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	hashed := string(hash)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: &hashed,
		Provider:     "credentials",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestVehicle creates a car owned by userID.
func CreateTestVehicle(t *testing.T, db *gorm.DB, userID string) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Car %d", nextID()),
		VehicleType: models.VehicleTypeCar,
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        2020,
		UnitPreferences: models.UnitPreferences{
			DistanceUnit: "km",
			VolumeUnit:   "L",
		},
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("failed to create test vehicle: %v", err)
	}
	return vehicle
}

// CreateTestFuelEntry creates a fuel entry for the given vehicle.
func CreateTestFuelEntry(t *testing.T, db *gorm.DB, userID, carID string) *models.FuelEntry {
	t.Helper()

	entry := &models.FuelEntry{
		UserID:       userID,
		CarID:        carID,
		FuelCompany:  "Shell",
		FuelType:     "Regular Unleaded",
		Mileage:      float64(10000 + nextID()),
		DistanceUnit: "km",
		Volume:       40,
		VolumeUnit:   "L",
		Cost:         60,
		Currency:     "USD",
		Date:         time.Now().UTC().Truncate(time.Second),
		PaymentType:  "Card",
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test fuel entry: %v", err)
	}
	return entry
}

// CreateTestExpenseEntry creates an expense entry of the given amount.
func CreateTestExpenseEntry(t *testing.T, db *gorm.DB, userID, carID string, amount float64) *models.ExpenseEntry {
	t.Helper()

	entry := &models.ExpenseEntry{
		UserID:   userID,
		CarID:    carID,
		Category: "Maintenance",
		Amount:   amount,
		Currency: "USD",
		Date:     time.Now().UTC().Truncate(time.Second),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test expense entry: %v", err)
	}
	return entry
}

// CreateTestIncomeEntry creates an income entry of the given amount.
func CreateTestIncomeEntry(t *testing.T, db *gorm.DB, userID, carID string, amount float64) *models.IncomeEntry {
	t.Helper()

	entry := &models.IncomeEntry{
		UserID:   userID,
		CarID:    carID,
		Category: "Ride Sharing",
		Amount:   amount,
		Currency: "USD",
		Date:     time.Now().UTC().Truncate(time.Second),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test income entry: %v", err)
	}
	return entry
}

// CreateTestCatalogEntry creates a custom catalog entry.
func CreateTestCatalogEntry(t *testing.T, db *gorm.DB, userID string, kind models.CatalogKind, name string) *models.CatalogEntry {
	t.Helper()

	entry := &models.CatalogEntry{
		UserID: userID,
		Kind:   kind,
		Name:   name,
		Active: true,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test catalog entry: %v", err)
	}
	return entry
}

// ClearCanonicalID blanks the canonical id of a stored row, reproducing the
// legacy shape where only the native id was set.
func ClearCanonicalID(t *testing.T, db *gorm.DB, model interface{}, objectID string) {
	t.Helper()

	if err := db.Model(model).Where("object_id = ?", objectID).Update("id", "").Error; err != nil {
		t.Fatalf("failed to clear canonical id: %v", err)
	}
}
