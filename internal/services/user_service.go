package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autoledger/internal/auth"
	"autoledger/internal/database"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	conn database.Connector
	now  func() time.Time
}

// NewUserService creates a new UserServicer.
func NewUserService(conn database.Connector) UserServicer {
	return &userService{conn: conn, now: time.Now}
}

// Register creates a password account and seeds its catalogs in one transaction.
func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	defer observeDB(ctx, "users.register")()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	hash := string(hashedPassword)

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: &hash,
		Provider:     "credentials",
	}
	if err := s.createWithCatalogs(db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks an email/password pair.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	defer observeDB(ctx, "users.authenticate")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !user.HasPassword() {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.touchLogin(db, &user)
	return &user, nil
}

// GetUserByID retrieves a user by canonical or native id.
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	defer observeDB(ctx, "users.get")()

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("object_id = ? OR id = ?", id, id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// FindOrCreateExternal returns the account for an external sign-in. Accounts
// are matched by external id first, then linked by email when the provider
// has verified it, and created with seeded catalogs otherwise.
func (s *userService) FindOrCreateExternal(ctx context.Context, provider string, profile auth.ExternalProfile) (*models.User, error) {
	defer observeDB(ctx, "users.external")()

	if profile.Subject == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "external profile has no subject")
	}

	db, err := connect(ctx, s.conn)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = db.Where("external_id = ?", profile.Subject).First(&user).Error
	if err == nil {
		s.touchLogin(db, &user)
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "external profile has no email")
	}

	subject := profile.Subject
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if !profile.EmailVerified {
			return nil, apperrors.ErrUnverifiedLink
		}
		updates := map[string]interface{}{"external_id": &subject, "provider": provider}
		if user.Image == "" && profile.Picture != "" {
			updates["image"] = profile.Picture
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.ExternalID = &subject
		user.Provider = provider
		s.touchLogin(db, &user)
		return &user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	now := s.now()
	user = models.User{
		Name:        name,
		Email:       email,
		Provider:    provider,
		ExternalID:  &subject,
		Image:       profile.Picture,
		LastLoginAt: &now,
	}
	if err := s.createWithCatalogs(db, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) createWithCatalogs(db *gorm.DB, user *models.User) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return SeedCatalogs(tx, user.ID)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// touchLogin records the sign-in time. Failures do not fail the sign-in.
func (s *userService) touchLogin(db *gorm.DB, user *models.User) {
	now := s.now()
	if err := db.Model(user).Update("last_login_at", now).Error; err == nil {
		user.LastLoginAt = &now
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
