package services

import (
	"context"

	"gorm.io/datatypes"

	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
)

// preferencesService handles the per-user settings row.
type preferencesService struct {
	conn database.Connector
}

// NewPreferencesService creates a new PreferencesServicer.
func NewPreferencesService(conn database.Connector) PreferencesServicer {
	return &preferencesService{conn: conn}
}

// Get returns the user's preferences, inserting the defaults when none exist.
func (s *preferencesService) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	defer observeDB(ctx, "preferences.get")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var prefs models.UserPreferences
	err = db.Where(models.UserPreferences{UserID: userID}).
		Attrs(*models.DefaultPreferences(userID)).
		FirstOrCreate(&prefs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &prefs, nil
}

// Update applies patch to the user's preferences.
func (s *preferencesService) Update(ctx context.Context, userID string, patch PreferencesPatch) (*models.UserPreferences, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	defer observeDB(ctx, "preferences.update")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	applyPreferences(prefs, patch)
	if err := db.Save(prefs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prefs, nil
}

func applyPreferences(prefs *models.UserPreferences, patch PreferencesPatch) {
	setString(&prefs.Currency, patch.Currency)
	setString(&prefs.Locale, patch.Locale)
	setString(&prefs.Theme, patch.Theme)
	setString(&prefs.DistanceUnit, patch.DistanceUnit)
	setString(&prefs.VolumeUnit, patch.VolumeUnit)
	setString(&prefs.DateFormat, patch.DateFormat)
	if patch.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.EmailNotifications != nil {
		prefs.EmailNotifications = *patch.EmailNotifications
	}
	setList(&prefs.CustomFuelCompanies, patch.CustomFuelCompanies)
	setList(&prefs.CustomFuelTypes, patch.CustomFuelTypes)
	setList(&prefs.CustomExpenseCategories, patch.CustomExpenseCategories)
	setList(&prefs.CustomIncomeCategories, patch.CustomIncomeCategories)

	if len(patch.Extra) > 0 {
		if prefs.Extra == nil {
			prefs.Extra = datatypes.JSONMap{}
		}
		for k, v := range patch.Extra {
			if v == nil {
				delete(prefs.Extra, k)
				continue
			}
			prefs.Extra[k] = v
		}
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *datatypes.JSONSlice[string], v *[]string) {
	if v == nil {
		return
	}
	list := datatypes.JSONSlice[string]{}
	list = append(list, *v...)
	*dst = list
}
