package models

import "gorm.io/datatypes"

// UserPreferences holds per-user settings. One row per user, created with
// defaults on first read.
type UserPreferences struct {
	Base
	UserID                  string                      `gorm:"size:64;not null;uniqueIndex" json:"userId"`
	Currency                string                      `gorm:"size:3" json:"currency"`
	Locale                  string                      `json:"locale"`
	Theme                   string                      `json:"theme"`
	DistanceUnit            string                      `json:"distanceUnit"`
	VolumeUnit              string                      `json:"volumeUnit"`
	DateFormat              string                      `json:"dateFormat"`
	NotificationsEnabled    bool                        `json:"notificationsEnabled"`
	EmailNotifications      bool                        `json:"emailNotifications"`
	CustomFuelCompanies     datatypes.JSONSlice[string] `json:"customFuelCompanies"`
	CustomFuelTypes         datatypes.JSONSlice[string] `json:"customFuelTypes"`
	CustomExpenseCategories datatypes.JSONSlice[string] `json:"customExpenseCategories"`
	CustomIncomeCategories  datatypes.JSONSlice[string] `json:"customIncomeCategories"`
	Extra                   datatypes.JSONMap           `json:"extra"`
}

// TableName overrides the default table name.
func (UserPreferences) TableName() string { return "user_preferences" }

// DefaultPreferences returns the settings a new user starts with.
func DefaultPreferences(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:                  userID,
		Currency:                "USD",
		Locale:                  "en",
		Theme:                   "system",
		DistanceUnit:            "km",
		VolumeUnit:              "L",
		DateFormat:              "YYYY-MM-DD",
		NotificationsEnabled:    true,
		EmailNotifications:      false,
		CustomFuelCompanies:     datatypes.JSONSlice[string]{},
		CustomFuelTypes:         datatypes.JSONSlice[string]{},
		CustomExpenseCategories: datatypes.JSONSlice[string]{},
		CustomIncomeCategories:  datatypes.JSONSlice[string]{},
		Extra:                   datatypes.JSONMap{},
	}
}
