package models

import (
	"time"

	"autoledger/internal/ids"

	"gorm.io/gorm"
)

// Base contains the identifier and timestamp columns shared by every record.
//
// ObjectID is the store-assigned primary key (exposed as "_id"). ID is the
// canonical identifier returned to clients; it is assigned from ObjectID at
// creation time and may only be empty for rows imported from the legacy shape.
type Base struct {
	ObjectID  string    `gorm:"column:object_id;primaryKey;size:24" json:"_id"`
	ID        string    `gorm:"column:id;size:64;index" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook assigns a new object id and the canonical id.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ObjectID == "" {
		b.ObjectID = ids.NewObjectID()
	}
	if b.ID == "" {
		b.ID = b.ObjectID
	}
	return nil
}

// NativeID returns the primary key.
func (b *Base) NativeID() string { return b.ObjectID }

// CanonicalID returns the client-facing id.
func (b *Base) CanonicalID() string { return b.ID }

// SetCanonicalID sets the client-facing id.
func (b *Base) SetCanonicalID(id string) { b.ID = id }
