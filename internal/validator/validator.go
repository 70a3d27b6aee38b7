// Package validator provides custom validation functions for Gin's binding
// engine and the per-resource rule tables applied to raw request bodies.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"autoledger/internal/models"
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AFN": true, "ALL": true, "AMD": true, "ANG": true,
	"AOA": true, "ARS": true, "AUD": true, "AWG": true, "AZN": true,
	"BAM": true, "BBD": true, "BDT": true, "BGN": true, "BHD": true,
	"BIF": true, "BMD": true, "BND": true, "BOB": true, "BRL": true,
	"BSD": true, "BTN": true, "BWP": true, "BYN": true, "BZD": true,
	"CAD": true, "CDF": true, "CHF": true, "CLP": true, "CNY": true,
	"COP": true, "CRC": true, "CUP": true, "CVE": true, "CZK": true,
	"DJF": true, "DKK": true, "DOP": true, "DZD": true, "EGP": true,
	"ERN": true, "ETB": true, "EUR": true, "FJD": true, "FKP": true,
	"GBP": true, "GEL": true, "GHS": true, "GIP": true, "GMD": true,
	"GNF": true, "GTQ": true, "GYD": true, "HKD": true, "HNL": true,
	"HRK": true, "HTG": true, "HUF": true, "IDR": true, "ILS": true,
	"INR": true, "IQD": true, "IRR": true, "ISK": true, "JMD": true,
	"JOD": true, "JPY": true, "KES": true, "KGS": true, "KHR": true,
	"KMF": true, "KPW": true, "KRW": true, "KWD": true, "KYD": true,
	"KZT": true, "LAK": true, "LBP": true, "LKR": true, "LRD": true,
	"LSL": true, "LYD": true, "MAD": true, "MDL": true, "MGA": true,
	"MKD": true, "MMK": true, "MNT": true, "MOP": true, "MRU": true,
	"MUR": true, "MVR": true, "MWK": true, "MXN": true, "MYR": true,
	"MZN": true, "NAD": true, "NGN": true, "NIO": true, "NOK": true,
	"NPR": true, "NZD": true, "OMR": true, "PAB": true, "PEN": true,
	"PGK": true, "PHP": true, "PKR": true, "PLN": true, "PYG": true,
	"QAR": true, "RON": true, "RSD": true, "RUB": true, "RWF": true,
	"SAR": true, "SBD": true, "SCR": true, "SDG": true, "SEK": true,
	"SGD": true, "SHP": true, "SLE": true, "SOS": true, "SRD": true,
	"SSP": true, "STN": true, "SVC": true, "SYP": true, "SZL": true,
	"THB": true, "TJS": true, "TMT": true, "TND": true, "TOP": true,
	"TRY": true, "TTD": true, "TWD": true, "TZS": true, "UAH": true,
	"UGX": true, "USD": true, "UYU": true, "UZS": true, "VES": true,
	"VND": true, "VUV": true, "WST": true, "XAF": true, "XCD": true,
	"XOF": true, "XPF": true, "YER": true, "ZAR": true, "ZMW": true,
	"ZWL": true,
}

// Register registers all custom validators with the Gin binding engine.
// Field names in validation errors are reported by their JSON name.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("vehicle_type", validateVehicleType)
		_ = v.RegisterValidation("distance_unit", validateDistanceUnit)
		_ = v.RegisterValidation("volume_unit", validateVolumeUnit)
		_ = v.RegisterValidation("pressure_unit", validatePressureUnit)
	}
}

// IsFieldError reports whether err is a struct validation failure.
func IsFieldError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// FieldMessage turns a struct validation failure into "Invalid <field>".
func FieldMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Invalid " + verrs[0].Field()
	}
	return "Invalid input"
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateVehicleType(fl validator.FieldLevel) bool {
	switch models.VehicleType(fl.Field().String()) {
	case models.VehicleTypeCar, models.VehicleTypeMotorcycle, models.VehicleTypeTruck,
		models.VehicleTypeVan, models.VehicleTypeSUV, models.VehicleTypeBus, models.VehicleTypeOther:
		return true
	}
	return false
}

func validateDistanceUnit(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "km", "mi":
		return true
	}
	return false
}

func validateVolumeUnit(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "L", "gal", "kWh":
		return true
	}
	return false
}

func validatePressureUnit(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "psi", "bar", "kPa":
		return true
	}
	return false
}
