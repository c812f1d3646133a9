// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"chusu_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. A unique-key collision surfaces as
	// ErrEmailTaken or ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by normalized email.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by id.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// FruitCounter provides the fruit-record statistics shown on the
// profile endpoint. Implemented by the fruits feature's repository.
type FruitCounter interface {
	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountPositive(ctx context.Context, userID uint) (int64, error)
}

// ReminderCounter provides the open-reminder count shown on the
// profile endpoint. Implemented by the reminders feature's repository.
type ReminderCounter interface {
	CountIncomplete(ctx context.Context, userID uint) (int64, error)
}

// JWTGenerator defines the interface for signed token generation.
type JWTGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// Profile is the /auth/me view: the user snapshot plus record counts.
type Profile struct {
	User           *entity.User
	FruitsCount    int64
	PositiveCount  int64
	RemindersCount int64
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	fruits       FruitCounter
	reminders    ReminderCounter
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, fruits FruitCounter, reminders ReminderCounter, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		fruits:       fruits,
		reminders:    reminders,
		jwtGenerator: jwtGenerator,
	}
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash keeps the bcrypt comparison on the login path even when the
// email is unknown, so response timing does not reveal account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a new user with a hashed password and returns a
// signed token for the fresh account.
func (u *authUsecase) Register(ctx context.Context, username, email, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	// Duplicate checks up front so the caller gets a field-specific
	// message. The unique indexes remain the backstop for races.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return "", nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// Login authenticates a user and returns a fresh signed token.
// The bcrypt comparison always runs, even for unknown emails.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, user, nil
}

// Me returns the user snapshot plus the dashboard counts.
func (u *authUsecase) Me(ctx context.Context, userID uint) (*Profile, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fruitsCount, err := u.fruits.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	positiveCount, err := u.fruits.CountPositive(ctx, userID)
	if err != nil {
		return nil, err
	}
	remindersCount, err := u.reminders.CountIncomplete(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		FruitsCount:    fruitsCount,
		PositiveCount:  positiveCount,
		RemindersCount: remindersCount,
	}, nil
}

// UpdateProfile changes username and email, rejecting values already
// taken by a different user.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, username, email string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if other, err := u.users.FindByEmail(ctx, email); err == nil && other.ID != userID {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if other, err := u.users.FindByUsername(ctx, username); err == nil && other.ID != userID {
		return nil, ErrUsernameTaken
	} else if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user.Username = username
	user.Email = email
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	return u.users.Update(ctx, user)
}
