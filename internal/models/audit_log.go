package models

import "gorm.io/datatypes"

// AuditLog records mutating user operations.
type AuditLog struct {
	Base
	UserID       string            `gorm:"size:64;not null;index" json:"userId"`
	Action       string            `gorm:"not null" json:"action"`
	ResourceType string            `gorm:"not null" json:"resourceType"`
	ResourceID   string            `gorm:"size:64" json:"resourceId"`
	IPAddress    string            `json:"ipAddress"`
	Changes      datatypes.JSONMap `json:"changes,omitempty"`
}

// TableName overrides the default table name.
func (AuditLog) TableName() string { return "audit_logs" }

// All lists every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Vehicle{},
		&FuelEntry{},
		&ExpenseEntry{},
		&IncomeEntry{},
		&CatalogEntry{},
		&UserPreferences{},
		&AuditLog{},
	}
}
