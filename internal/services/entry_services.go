package services

import (
	"gorm.io/gorm"

	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/pagination"
)

// NewVehicleService creates a VehicleServicer.
func NewVehicleService(conn database.Connector) VehicleServicer {
	return &resourceService[models.Vehicle, *models.Vehicle]{
		conn: conn,
		cfg: resourceConfig{
			name:       "vehicles",
			matchAnyID: true,
			notFound: NotFoundErrors{
				Get:    apperrors.ErrVehicleNotFound,
				Update: apperrors.WithMessage(apperrors.ErrVehicleNotFound, "Vehicle not found or not authorized to update"),
				Delete: apperrors.WithMessage(apperrors.ErrVehicleNotFound, "Vehicle not found or not authorized to delete"),
			},
			sortColumns: pagination.SortColumns{
				"name":      "name",
				"brand":     "brand",
				"year":      "year",
				"createdAt": "created_at",
			},
			defaultSort: "created_at",
		},
	}
}

// NewFuelEntryService creates a FuelEntryServicer.
func NewFuelEntryService(conn database.Connector) FuelEntryServicer {
	return &resourceService[models.FuelEntry, *models.FuelEntry]{
		conn: conn,
		cfg: resourceConfig{
			name:     "fuel_entries",
			notFound: entryNotFound(apperrors.ErrFuelEntryNotFound),
			sortColumns: pagination.SortColumns{
				"date":        "date",
				"mileage":     "mileage",
				"volume":      "volume",
				"cost":        "cost",
				"fuelCompany": "fuel_company",
				"fuelType":    "fuel_type",
			},
			defaultSort: "date",
			filter: func(db *gorm.DB, f EntryFilter) *gorm.DB {
				db = commonEntryFilter(db, f)
				if f.FuelCompany != "" {
					db = db.Where("fuel_company = ?", f.FuelCompany)
				}
				if f.FuelType != "" {
					db = db.Where("fuel_type = ?", f.FuelType)
				}
				return db
			},
		},
	}
}

// NewExpenseEntryService creates an ExpenseEntryServicer.
func NewExpenseEntryService(conn database.Connector) ExpenseEntryServicer {
	return &resourceService[models.ExpenseEntry, *models.ExpenseEntry]{
		conn: conn,
		cfg: resourceConfig{
			name:        "expense_entries",
			notFound:    entryNotFound(apperrors.ErrExpenseEntryNotFound),
			sortColumns: amountSortColumns,
			defaultSort: "date",
			filter:      categorizedEntryFilter,
		},
	}
}

// NewIncomeEntryService creates an IncomeEntryServicer.
func NewIncomeEntryService(conn database.Connector) IncomeEntryServicer {
	return &resourceService[models.IncomeEntry, *models.IncomeEntry]{
		conn: conn,
		cfg: resourceConfig{
			name:        "income_entries",
			notFound:    entryNotFound(apperrors.ErrIncomeEntryNotFound),
			sortColumns: amountSortColumns,
			defaultSort: "date",
			filter:      categorizedEntryFilter,
		},
	}
}

var amountSortColumns = pagination.SortColumns{
	"date":     "date",
	"amount":   "amount",
	"category": "category",
}

func entryNotFound(err *apperrors.AppError) NotFoundErrors {
	return NotFoundErrors{Get: err, Update: err, Delete: err}
}

func commonEntryFilter(db *gorm.DB, f EntryFilter) *gorm.DB {
	if f.CarID != "" {
		db = db.Where("car_id = ?", f.CarID)
	}
	if f.From != nil {
		db = db.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("date <= ?", *f.To)
	}
	return db
}

func categorizedEntryFilter(db *gorm.DB, f EntryFilter) *gorm.DB {
	db = commonEntryFilter(db, f)
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	return db
}
