// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"chusu_backend/internal/feature/auth/domain/entity"
	"chusu_backend/internal/feature/auth/usecase"
)

// userPostgres is the GORM implementation of usecase.UserRepository.
type userPostgres struct {
	db *gorm.DB
}

// コンパイル時のインターフェース実装チェック
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository creates a userPostgres bound to the given connection.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user. A unique-index collision is mapped to the
// field-specific usecase error so races with the up-front duplicate
// check still surface as duplicates, not 500s.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicateErrFor(err)
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsername retrieves a user by username.
func (r *userPostgres) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update persists all fields of an existing user.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicateErrFor(err)
		}
		return err
	}
	return nil
}

// duplicateErrFor picks the field-specific error from the driver's
// duplicate-key message; the email variant is the fallback.
func duplicateErrFor(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "username") {
		return usecase.ErrUsernameTaken
	}
	return usecase.ErrEmailTaken
}
