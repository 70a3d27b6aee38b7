package models

import "time"

// VehicleType represents the kind of vehicle
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeSUV        VehicleType = "suv"
	VehicleTypeBus        VehicleType = "bus"
	VehicleTypeOther      VehicleType = "other"
)

// UnitPreferences holds the display units chosen for a vehicle.
type UnitPreferences struct {
	DistanceUnit        string `json:"distanceUnit"`
	VolumeUnit          string `json:"volumeUnit"`
	FuelConsumptionUnit string `json:"fuelConsumptionUnit"`
}

// Vehicle represents a vehicle owned by a user
type Vehicle struct {
	Base
	UserID      string      `gorm:"size:64;not null;index" json:"userId"`
	Name        string      `gorm:"not null" json:"name"`
	VehicleType VehicleType `gorm:"size:32;not null" json:"vehicleType"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Year        int         `json:"year"`
	Photo       string      `json:"photo,omitempty"`
	Description string      `json:"description,omitempty"`

	// Registration
	LicensePlate       string     `json:"licensePlate,omitempty"`
	VIN                string     `gorm:"column:vin" json:"vin,omitempty"`
	RegistrationExpiry *time.Time `json:"registrationExpiry,omitempty"`

	UnitPreferences UnitPreferences `gorm:"embedded;embeddedPrefix:unit_" json:"unitPreferences"`
}

// TableName overrides the default table name.
func (Vehicle) TableName() string { return "vehicles" }
