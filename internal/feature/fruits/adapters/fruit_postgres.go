// Package adapters はfruitsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chusu_backend/internal/feature/fruits/domain/entity"
	"chusu_backend/internal/feature/fruits/usecase"
)

// fruitPostgres is the GORM implementation of usecase.FruitRepository.
// Every query carries the owning user's id, so a record of another
// user is indistinguishable from a missing one.
type fruitPostgres struct {
	db *gorm.DB
}

var _ usecase.FruitRepository = (*fruitPostgres)(nil)

// NewFruitRepository creates a fruitPostgres bound to the given connection.
func NewFruitRepository(db *gorm.DB) *fruitPostgres {
	return &fruitPostgres{db: db}
}

// List returns the user's fruits newest first.
func (r *fruitPostgres) List(ctx context.Context, userID uint) ([]entity.Fruit, error) {
	var fruits []entity.Fruit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&fruits).Error; err != nil {
		return nil, err
	}
	return fruits, nil
}

// FindByID returns one fruit scoped to the owner.
func (r *fruitPostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Fruit, error) {
	var f entity.Fruit
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Create inserts a new fruit.
func (r *fruitPostgres) Create(ctx context.Context, fruit *entity.Fruit) error {
	return r.db.WithContext(ctx).Create(fruit).Error
}

// Update persists all fields; GORM refreshes UpdatedAt.
func (r *fruitPostgres) Update(ctx context.Context, fruit *entity.Fruit) error {
	return r.db.WithContext(ctx).Save(fruit).Error
}

// Delete removes one fruit scoped to the owner.
func (r *fruitPostgres) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Fruit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// CountByUser returns the user's total fruit count.
func (r *fruitPostgres) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Fruit{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountPositive returns how many of the user's fruits ended positive.
func (r *fruitPostgres) CountPositive(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Fruit{}).
		Where("user_id = ? AND outcome = ?", userID, entity.OutcomePositive).
		Count(&n).Error
	return n, err
}
