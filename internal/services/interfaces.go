package services

import (
	"context"
	"time"

	"autoledger/internal/auth"
	"autoledger/internal/models"
	"autoledger/internal/pagination"
)

// UserServicer defines the contract for account-related business logic.
type UserServicer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	FindOrCreateExternal(ctx context.Context, provider string, profile auth.ExternalProfile) (*models.User, error)
}

// EntryFilter holds optional filter parameters for history-table listings.
// Fields that do not apply to a resource are ignored.
type EntryFilter struct {
	CarID       string
	From        *time.Time
	To          *time.Time
	Category    string
	FuelCompany string
	FuelType    string
}

// ResourceServicer is the user-scoped CRUD contract shared by vehicles and
// the three entry resources. Every operation filters by userID.
type ResourceServicer[T any] interface {
	List(ctx context.Context, userID string, filter EntryFilter, page pagination.PageRequest) ([]T, int64, error)
	Get(ctx context.Context, userID, id string) (*T, error)
	Create(ctx context.Context, userID string, record *T) (*T, error)
	// Update writes the named columns of record onto the owned row matching id.
	Update(ctx context.Context, userID, id string, record *T, columns []string) (*T, error)
	Delete(ctx context.Context, userID, id string) error
}

// VehicleServicer manages vehicles.
type VehicleServicer = ResourceServicer[models.Vehicle]

// FuelEntryServicer manages fuel entries.
type FuelEntryServicer = ResourceServicer[models.FuelEntry]

// ExpenseEntryServicer manages expense entries.
type ExpenseEntryServicer = ResourceServicer[models.ExpenseEntry]

// IncomeEntryServicer manages income entries.
type IncomeEntryServicer = ResourceServicer[models.IncomeEntry]

// CatalogPatch holds the mutable fields of a custom catalog entry.
type CatalogPatch struct {
	Name   *string
	Active *bool
}

// CatalogServicer manages a user's custom catalog entries for every kind.
type CatalogServicer interface {
	// List returns the user's entries merged with the built-in names.
	List(ctx context.Context, userID string, kind models.CatalogKind) ([]models.CatalogEntry, error)
	// Create reports created=false when name is a built-in and nothing was stored.
	Create(ctx context.Context, userID string, kind models.CatalogKind, name string) (entry *models.CatalogEntry, created bool, err error)
	Update(ctx context.Context, userID string, kind models.CatalogKind, id string, patch CatalogPatch) (*models.CatalogEntry, error)
	Delete(ctx context.Context, userID string, kind models.CatalogKind, id string) error
}

// PreferencesPatch holds the preference fields a client may change. Nil
// fields are left untouched; Extra is merged key by key.
type PreferencesPatch struct {
	Currency                *string        `json:"currency" binding:"omitempty,iso4217"`
	Locale                  *string        `json:"locale" binding:"omitempty,max=16"`
	Theme                   *string        `json:"theme" binding:"omitempty,oneof=light dark system"`
	DistanceUnit            *string        `json:"distanceUnit" binding:"omitempty,distance_unit"`
	VolumeUnit              *string        `json:"volumeUnit" binding:"omitempty,volume_unit"`
	DateFormat              *string        `json:"dateFormat" binding:"omitempty,max=32"`
	NotificationsEnabled    *bool          `json:"notificationsEnabled"`
	EmailNotifications      *bool          `json:"emailNotifications"`
	CustomFuelCompanies     *[]string      `json:"customFuelCompanies"`
	CustomFuelTypes         *[]string      `json:"customFuelTypes"`
	CustomExpenseCategories *[]string      `json:"customExpenseCategories"`
	CustomIncomeCategories  *[]string      `json:"customIncomeCategories"`
	Extra                   map[string]any `json:"-"`
}

// PreferencesServicer manages the per-user settings row.
type PreferencesServicer interface {
	// Get returns the user's preferences, creating the defaults on first use.
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
	Update(ctx context.Context, userID string, patch PreferencesPatch) (*models.UserPreferences, error)
}

// CollectionReport counts one collection before and after a repair run.
type CollectionReport struct {
	Before int64 `json:"before"`
	After  int64 `json:"after"`
	Fixed  int   `json:"fixed"`
}

// RepairReport is the result of one repair run.
type RepairReport struct {
	Vehicles       CollectionReport `json:"vehicles"`
	FuelEntries    CollectionReport `json:"fuelEntries"`
	ExpenseEntries CollectionReport `json:"expenseEntries"`
}

// Diagnosis describes how a user's vehicles are stored.
type Diagnosis struct {
	UserID             string           `json:"userId"`
	VehicleCount       int              `json:"vehicleCount"`
	MissingIDCount     int              `json:"missingIdCount"`
	VehicleIDs         []string         `json:"vehicleIds"`
	RawVehicles        []map[string]any `json:"rawVehicles"`
	NormalizedVehicles []map[string]any `json:"normalizedVehicles"`
	Timestamp          time.Time        `json:"timestamp"`
}

// MaintenanceServicer runs the identifier diagnostic and repair job.
type MaintenanceServicer interface {
	Diagnose(ctx context.Context, userID string) (*Diagnosis, error)
	Repair(ctx context.Context, userID string) (*RepairReport, error)
}

// AuditEvent describes one mutating operation.
type AuditEvent struct {
	UserID       string
	Action       string
	ResourceType string
	ResourceID   string
	IPAddress    string
	Changes      map[string]interface{}
}

// AuditServicer records audit events on a best-effort basis.
type AuditServicer interface {
	Record(ctx context.Context, ev AuditEvent)
}
