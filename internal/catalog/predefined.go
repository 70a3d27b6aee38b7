package catalog

import (
	"net/http"

	"autoledger/internal/models"
)

// Spec describes one catalog kind: its built-in names and how names are compared.
type Spec struct {
	Kind       models.CatalogKind
	Label      string // singular, capitalized: "Fuel company"
	Plural     string // lower case: "fuel companies"
	Predefined []string
	// FoldCase makes name matching case-insensitive.
	FoldCase bool
	// Seeded kinds are written to the store at account creation.
	Seeded bool
	// ConflictStatus is the HTTP status for a duplicate name.
	ConflictStatus int
}

var fuelCompanies = []string{
	"BP",
	"Chevron",
	"Esso",
	"ExxonMobil",
	"Gulf",
	"Petronas",
	"Repsol",
	"Shell",
	"Texaco",
	"TotalEnergies",
}

var fuelTypes = []string{
	"CNG",
	"Diesel",
	"E85",
	"Electric",
	"LPG",
	"Premium Diesel",
	"Premium Unleaded",
	"Regular Unleaded",
}

var expenseCategories = []string{
	"Accessories",
	"Car Wash",
	"Fines",
	"Insurance",
	"Maintenance",
	"Other",
	"Parking",
	"Registration",
	"Repair",
	"Tax",
	"Tolls",
}

var incomeCategories = []string{
	"Delivery",
	"Other",
	"Reimbursement",
	"Rental",
	"Ride Sharing",
}

var specs = map[models.CatalogKind]Spec{
	models.CatalogKindFuelCompany: {
		Kind:           models.CatalogKindFuelCompany,
		Label:          "Fuel company",
		Plural:         "fuel companies",
		Predefined:     fuelCompanies,
		ConflictStatus: http.StatusConflict,
	},
	models.CatalogKindFuelType: {
		Kind:           models.CatalogKindFuelType,
		Label:          "Fuel type",
		Plural:         "fuel types",
		Predefined:     fuelTypes,
		ConflictStatus: http.StatusConflict,
	},
	models.CatalogKindExpenseCategory: {
		Kind:           models.CatalogKindExpenseCategory,
		Label:          "Expense category",
		Plural:         "expense categories",
		Predefined:     expenseCategories,
		FoldCase:       true,
		Seeded:         true,
		ConflictStatus: http.StatusBadRequest,
	},
	models.CatalogKindIncomeCategory: {
		Kind:           models.CatalogKindIncomeCategory,
		Label:          "Income category",
		Plural:         "income categories",
		Predefined:     incomeCategories,
		FoldCase:       true,
		ConflictStatus: http.StatusBadRequest,
	},
}

// For returns the Spec describing kind. It panics on an unknown kind.
func For(kind models.CatalogKind) Spec {
	s, ok := specs[kind]
	if !ok {
		panic("catalog: unknown kind " + string(kind))
	}
	return s
}

// Seeded returns the Spec of every kind written to the store at account creation.
func Seeded() []Spec {
	var out []Spec
	for _, kind := range []models.CatalogKind{
		models.CatalogKindFuelCompany,
		models.CatalogKindFuelType,
		models.CatalogKindExpenseCategory,
		models.CatalogKindIncomeCategory,
	} {
		if s := specs[kind]; s.Seeded {
			out = append(out, s)
		}
	}
	return out
}
