package models

// CatalogKind identifies which reference list a catalog entry belongs to
type CatalogKind string

const (
	CatalogKindFuelCompany     CatalogKind = "fuel_company"
	CatalogKindFuelType        CatalogKind = "fuel_type"
	CatalogKindExpenseCategory CatalogKind = "expense_category"
	CatalogKindIncomeCategory  CatalogKind = "income_category"
)

// CatalogEntry is a user-owned fuel company, fuel type, expense category or
// income category. Built-in names that were never persisted are synthesized
// at read time and never stored in this table.
type CatalogEntry struct {
	Base
	UserID       string      `gorm:"size:64;not null;uniqueIndex:idx_catalog_owner_kind_name" json:"userId"`
	Kind         CatalogKind `gorm:"size:32;not null;uniqueIndex:idx_catalog_owner_kind_name" json:"-"`
	Name         string      `gorm:"not null;uniqueIndex:idx_catalog_owner_kind_name" json:"name"`
	IsPredefined bool        `gorm:"not null" json:"isPredefined"`
	Active       bool        `gorm:"not null" json:"active"`
}

// TableName overrides the default table name.
func (CatalogEntry) TableName() string { return "catalog_entries" }
