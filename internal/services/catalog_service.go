package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"autoledger/internal/catalog"
	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/ids"
	"autoledger/internal/models"
)

// catalogService handles custom fuel companies, fuel types and categories.
type catalogService struct {
	conn database.Connector
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(conn database.Connector) CatalogServicer {
	return &catalogService{conn: conn}
}

// List returns the user's stored entries merged with the built-in names.
func (s *catalogService) List(ctx context.Context, userID string, kind models.CatalogKind) ([]models.CatalogEntry, error) {
	defer observeDB(ctx, "catalog.list")()
	spec := catalog.For(kind)

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var stored []models.CatalogEntry
	if err := db.Where("user_id = ? AND kind = ?", userID, kind).Find(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ids.NormalizeRecords(stored)

	return catalog.Merge(kind, stored, spec.Predefined, userID, spec.FoldCase), nil
}

// Create stores a custom entry. A built-in name is answered with its
// synthesized (or seeded) entry and nothing is written.
func (s *catalogService) Create(ctx context.Context, userID string, kind models.CatalogKind, name string) (*models.CatalogEntry, bool, error) {
	defer observeDB(ctx, "catalog.create")()
	spec := catalog.For(kind)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, apperrors.ErrNameRequired
	}

	builtin, isBuiltin := catalog.MatchPredefined(name, spec.Predefined, spec.FoldCase)
	if isBuiltin && !spec.Seeded {
		pseudo := catalog.Pseudo(kind, builtin, userID)
		return &pseudo, false, nil
	}

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.findByName(db, userID, spec, name, "")
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if isBuiltin && existing.IsPredefined {
			return existing, false, nil
		}
		return nil, false, duplicateError(spec)
	}
	if isBuiltin {
		// Seeded kind whose built-in row is missing for this account.
		pseudo := catalog.Pseudo(kind, builtin, userID)
		return &pseudo, false, nil
	}

	entry := &models.CatalogEntry{
		UserID: userID,
		Kind:   kind,
		Name:   name,
		Active: true,
	}
	if err := db.Create(entry).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, true, nil
}

// Update renames or (de)activates a custom entry.
func (s *catalogService) Update(ctx context.Context, userID string, kind models.CatalogKind, id string, patch CatalogPatch) (*models.CatalogEntry, error) {
	defer observeDB(ctx, "catalog.update")()
	spec := catalog.For(kind)

	if catalog.IsPseudoID(id) {
		return nil, predefinedError(spec, "modify")
	}

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	entry, err := s.findOwned(db, userID, spec, id)
	if err != nil {
		return nil, err
	}
	if entry.IsPredefined {
		return nil, predefinedError(spec, "modify")
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.ErrNameRequired
		}
		if _, isBuiltin := catalog.MatchPredefined(name, spec.Predefined, spec.FoldCase); isBuiltin {
			return nil, duplicateError(spec)
		}
		other, err := s.findByName(db, userID, spec, name, entry.ObjectID)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, duplicateError(spec)
		}
		updates["name"] = name
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}

	if len(updates) > 0 {
		if err := db.Model(entry).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return entry, nil
}

// Delete removes a custom entry.
func (s *catalogService) Delete(ctx context.Context, userID string, kind models.CatalogKind, id string) error {
	defer observeDB(ctx, "catalog.delete")()
	spec := catalog.For(kind)

	if catalog.IsPseudoID(id) {
		return predefinedError(spec, "delete")
	}

	db, err := connect(ctx, s.conn)
	if err != nil {
		return err
	}

	entry, err := s.findOwned(db, userID, spec, id)
	if err != nil {
		return err
	}
	if entry.IsPredefined {
		return predefinedError(spec, "delete")
	}

	res := db.Where("object_id = ? AND user_id = ?", entry.ObjectID, userID).Delete(&models.CatalogEntry{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundError(spec)
	}
	return nil
}

func (s *catalogService) findOwned(db *gorm.DB, userID string, spec catalog.Spec, id string) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	err := db.Where("(object_id = ? OR id = ?) AND user_id = ? AND kind = ?", id, id, userID, spec.Kind).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(spec)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ids.Ensure(&entry)
	return &entry, nil
}

// findByName returns the user's entry named name, skipping excludeID, or nil.
func (s *catalogService) findByName(db *gorm.DB, userID string, spec catalog.Spec, name, excludeID string) (*models.CatalogEntry, error) {
	q := db.Where("user_id = ? AND kind = ?", userID, spec.Kind)
	if spec.FoldCase {
		q = q.Where("LOWER(name) = LOWER(?)", name)
	} else {
		q = q.Where("name = ?", name)
	}
	if excludeID != "" {
		q = q.Where("object_id <> ?", excludeID)
	}

	var entry models.CatalogEntry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// SeedCatalogs stores the built-in entries of every seeded kind that the user
// does not have yet. It is idempotent and meant to run inside the
// account-creation transaction.
func SeedCatalogs(tx *gorm.DB, userID string) error {
	for _, spec := range catalog.Seeded() {
		var existing []models.CatalogEntry
		if err := tx.Where("user_id = ? AND kind = ?", userID, spec.Kind).Find(&existing).Error; err != nil {
			return err
		}

		var missing []models.CatalogEntry
		for _, name := range spec.Predefined {
			if containsName(existing, name, spec.FoldCase) || containsName(missing, name, spec.FoldCase) {
				continue
			}
			missing = append(missing, models.CatalogEntry{
				UserID:       userID,
				Kind:         spec.Kind,
				Name:         name,
				IsPredefined: true,
				Active:       true,
			})
		}
		if len(missing) == 0 {
			continue
		}
		if err := tx.Create(&missing).Error; err != nil {
			return err
		}
	}
	return nil
}

func containsName(entries []models.CatalogEntry, name string, fold bool) bool {
	_, ok := catalog.MatchPredefined(name, entryNames(entries), fold)
	return ok
}

func entryNames(entries []models.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func duplicateError(spec catalog.Spec) *apperrors.AppError {
	return &apperrors.AppError{
		Code:       apperrors.ErrDuplicateCatalog.Code,
		Message:    spec.Label + " already exists",
		StatusCode: spec.ConflictStatus,
	}
}

func predefinedError(spec catalog.Spec, verb string) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrPredefinedEntry, "Cannot "+verb+" predefined "+spec.Plural)
}

func notFoundError(spec catalog.Spec) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrCatalogNotFound, spec.Label+" not found")
}
