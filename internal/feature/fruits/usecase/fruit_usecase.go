// Package usecase implements the business logic for fruit records.
package usecase

import (
	"context"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

// FruitRepository abstracts the persistence layer for fruit records.
// Every operation is scoped by the owning user's id.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type FruitRepository interface {
	// List returns the user's fruits ordered by creation time descending.
	List(ctx context.Context, userID uint) ([]entity.Fruit, error)

	// FindByID returns the fruit with the given id owned by userID, or
	// ErrNotFound.
	FindByID(ctx context.Context, userID, id uint) (*entity.Fruit, error)

	// Create persists a new fruit.
	Create(ctx context.Context, fruit *entity.Fruit) error

	// Update persists all fields of an existing fruit.
	Update(ctx context.Context, fruit *entity.Fruit) error

	// Delete removes the fruit owned by userID, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id uint) error

	// CountByUser returns how many fruits the user owns.
	CountByUser(ctx context.Context, userID uint) (int64, error)

	// CountPositive returns how many fruits have a positive outcome.
	CountPositive(ctx context.Context, userID uint) (int64, error)
}

// FruitUsecase provides owner-scoped CRUD over fruit records.
type FruitUsecase struct {
	repo FruitRepository
}

// NewFruitUsecase creates a new FruitUsecase with the given repository.
func NewFruitUsecase(r FruitRepository) *FruitUsecase {
	return &FruitUsecase{repo: r}
}

// List returns all fruits of the user, newest first.
func (u *FruitUsecase) List(ctx context.Context, userID uint) ([]entity.Fruit, error) {
	return u.repo.List(ctx, userID)
}

// Get returns one fruit of the user.
func (u *FruitUsecase) Get(ctx context.Context, userID, id uint) (*entity.Fruit, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Create stores a new fruit for the user. The owner id is assigned
// here and never changes afterwards.
func (u *FruitUsecase) Create(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error) {
	fruit.ID = 0
	fruit.UserID = userID
	if err := u.repo.Create(ctx, fruit); err != nil {
		return nil, err
	}
	return fruit, nil
}

// Update replaces all mutable fields of an existing fruit. Identity
// fields (id, owner, creation time) are preserved.
func (u *FruitUsecase) Update(ctx context.Context, userID, id uint, fields *entity.Fruit) (*entity.Fruit, error) {
	current, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	current.Name = fields.Name
	current.Memo = fields.Memo
	current.Prayer = fields.Prayer
	current.ContactDate = fields.ContactDate
	current.Category = fields.Category
	current.FollowUpDate = fields.FollowUpDate
	current.ReminderDate = fields.ReminderDate
	current.Outcome = fields.Outcome
	current.Reason = fields.Reason

	if err := u.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes one fruit of the user.
func (u *FruitUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
