package repository

import (
	"context"
	"errors"
	"fmt"

	"fluidos/backend/models"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("correo = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

type gormResultRepository struct {
	db *gorm.DB
}

func NewGormResultRepository(db *gorm.DB) ResultRepository {
	return &gormResultRepository{db: db}
}

func (r *gormResultRepository) HasCorrect(ctx context.Context, user string, exercise int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Result{}).
		Where("usuario = ? AND ejercicio = ? AND estado = ?", user, exercise, string(models.StatusCorrect)).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check correct result: %w", err)
	}
	return count > 0, nil
}

func (r *gormResultRepository) Create(ctx context.Context, result *models.Result) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("create result: %w", err)
	}
	return nil
}

func (r *gormResultRepository) TotalScore(ctx context.Context, user string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Result{}).
		Where("usuario = ?", user).
		Select("COALESCE(SUM(puntaje), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum scores: %w", err)
	}
	return total, nil
}

func (r *gormResultRepository) ListNewestFirst(ctx context.Context) ([]models.Result, error) {
	results := []models.Result{}
	err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Order("id DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}
