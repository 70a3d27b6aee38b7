package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/ids"
	"autoledger/internal/models"
	"autoledger/internal/pagination"
)

type record[T any] interface {
	*T
	ids.Identifiable
	models.Owned
}

// NotFoundErrors selects the 404 returned by each operation.
type NotFoundErrors struct {
	Get    *apperrors.AppError
	Update *apperrors.AppError
	Delete *apperrors.AppError
}

type resourceConfig struct {
	name string
	// matchAnyID also matches the canonical id column; older vehicle rows
	// may only be addressable through either one.
	matchAnyID  bool
	notFound    NotFoundErrors
	sortColumns pagination.SortColumns
	defaultSort string
	filter      func(db *gorm.DB, f EntryFilter) *gorm.DB
}

// resourceService is the gorm-backed ResourceServicer.
type resourceService[T any, P record[T]] struct {
	conn database.Connector
	cfg  resourceConfig
}

func (s *resourceService[T, P]) owned(db *gorm.DB, userID, id string) *gorm.DB {
	if s.cfg.matchAnyID {
		return db.Where("(object_id = ? OR id = ?) AND user_id = ?", id, id, userID)
	}
	return db.Where("object_id = ? AND user_id = ?", id, userID)
}

// List returns the user's records. total is the full match count, which
// differs from len(records) only when a page was requested.
func (s *resourceService[T, P]) List(ctx context.Context, userID string, filter EntryFilter, page pagination.PageRequest) ([]T, int64, error) {
	defer observeDB(ctx, s.cfg.name+".list")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, 0, err
	}

	query := func() *gorm.DB {
		q := db.Model(new(T)).Where("user_id = ?", userID)
		if s.cfg.filter != nil {
			q = s.cfg.filter(q, filter)
		}
		return q
	}

	var total int64
	if page.Enabled() {
		if err := query().Count(&total).Error; err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var records []T
	if err := query().
		Scopes(pagination.Sort(page, s.cfg.sortColumns, s.cfg.defaultSort), pagination.Paginate(page)).
		Find(&records).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !page.Enabled() {
		total = int64(len(records))
	}

	return ids.NormalizeRecords[T, P](records), total, nil
}

// Get returns one owned record.
func (s *resourceService[T, P]) Get(ctx context.Context, userID, id string) (*T, error) {
	defer observeDB(ctx, s.cfg.name+".get")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	return s.find(db, userID, id, s.cfg.notFound.Get)
}

func (s *resourceService[T, P]) find(db *gorm.DB, userID, id string, notFound *apperrors.AppError) (*T, error) {
	var rec T
	if err := s.owned(db, userID, id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ids.Ensure(P(&rec))
	return &rec, nil
}

// Create stores record owned by userID, whatever owner it carried before.
func (s *resourceService[T, P]) Create(ctx context.Context, userID string, rec *T) (*T, error) {
	defer observeDB(ctx, s.cfg.name+".create")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	P(rec).SetOwner(userID)
	if err := db.Create(rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rec, nil
}

// Update writes columns from record onto the owned row and returns the row
// as stored afterwards. The owner filter is part of the UPDATE itself.
func (s *resourceService[T, P]) Update(ctx context.Context, userID, id string, rec *T, columns []string) (*T, error) {
	defer observeDB(ctx, s.cfg.name+".update")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		P(rec).SetOwner(userID)
		res := s.owned(db.Model(new(T)), userID, id).Select(columns).Updates(rec)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, s.cfg.notFound.Update
		}
	}

	return s.find(db, userID, id, s.cfg.notFound.Update)
}

// Delete removes the owned row matching id.
func (s *resourceService[T, P]) Delete(ctx context.Context, userID, id string) error {
	defer observeDB(ctx, s.cfg.name+".delete")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return err
	}

	res := s.owned(db, userID, id).Delete(new(T))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.cfg.notFound.Delete
	}
	return nil
}
