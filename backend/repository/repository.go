// Package repository is the data-access layer. Controllers receive the
// interfaces below instead of a shared connection.
package repository

import (
	"context"
	"errors"

	"fluidos/backend/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	// FindByEmail returns ErrNotFound when no account uses email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Create returns ErrDuplicateEmail when email is already taken.
	Create(ctx context.Context, user *models.User) error
}

type ResultRepository interface {
	// HasCorrect reports whether user already has a correct result for exercise.
	HasCorrect(ctx context.Context, user string, exercise int) (bool, error)
	Create(ctx context.Context, result *models.Result) error
	// TotalScore sums the score of every stored result of user.
	TotalScore(ctx context.Context, user string) (float64, error)
	// ListNewestFirst returns all results ordered by submission time, newest first.
	ListNewestFirst(ctx context.Context) ([]models.Result, error)
}
