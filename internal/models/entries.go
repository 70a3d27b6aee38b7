package models

import (
	"time"

	"gorm.io/datatypes"
)

// FuelEntry records a single fuel purchase
type FuelEntry struct {
	Base
	UserID           string                      `gorm:"size:64;not null;index" json:"userId"`
	CarID            string                      `gorm:"size:64;not null;index" json:"carId"`
	CarName          string                      `json:"carName,omitempty"`
	FuelCompany      string                      `gorm:"not null" json:"fuelCompany"`
	FuelType         string                      `gorm:"not null" json:"fuelType"`
	Mileage          float64                     `gorm:"not null" json:"mileage"`
	DistanceUnit     string                      `gorm:"size:8" json:"distanceUnit"`
	Volume           float64                     `gorm:"not null" json:"volume"`
	VolumeUnit       string                      `gorm:"size:8" json:"volumeUnit"`
	Cost             float64                     `gorm:"not null" json:"cost"`
	Currency         string                      `gorm:"size:3;not null" json:"currency"`
	Date             time.Time                   `gorm:"not null;index" json:"date"`
	Time             string                      `gorm:"size:5" json:"time"`
	Location         string                      `json:"location"`
	PartialFuelUp    bool                        `json:"partialFuelUp"`
	PaymentType      string                      `gorm:"not null" json:"paymentType"`
	TyrePressure     *float64                    `json:"tyrePressure,omitempty"`
	TyrePressureUnit string                      `gorm:"size:8" json:"tyrePressureUnit,omitempty"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`
	Notes            string                      `json:"notes"`
	Images           datatypes.JSONSlice[string] `json:"images"`
}

// TableName overrides the default table name.
func (FuelEntry) TableName() string { return "fuel_entries" }

// ExpenseEntry records a vehicle-related expense
type ExpenseEntry struct {
	Base
	UserID   string                      `gorm:"size:64;not null;index" json:"userId"`
	CarID    string                      `gorm:"size:64;not null;index" json:"carId"`
	CarName  string                      `json:"carName,omitempty"`
	Category string                      `gorm:"not null" json:"category"`
	Amount   float64                     `gorm:"not null" json:"amount"`
	Currency string                      `gorm:"size:3;not null" json:"currency"`
	Date     time.Time                   `gorm:"not null;index" json:"date"`
	Notes    string                      `json:"notes"`
	Images   datatypes.JSONSlice[string] `json:"images"`
}

// TableName overrides the default table name.
func (ExpenseEntry) TableName() string { return "expense_entries" }

// IncomeEntry records income earned with a vehicle
type IncomeEntry struct {
	Base
	UserID   string    `gorm:"size:64;not null;index" json:"userId"`
	CarID    string    `gorm:"size:64;not null;index" json:"carId"`
	CarName  string    `json:"carName,omitempty"`
	Category string    `gorm:"not null" json:"category"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Currency string    `gorm:"size:3;not null" json:"currency"`
	Date     time.Time `gorm:"not null;index" json:"date"`
	Notes    string    `json:"notes"`
}

// TableName overrides the default table name.
func (IncomeEntry) TableName() string { return "income_entries" }
