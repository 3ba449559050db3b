package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) ListByUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByPracticeTest(userID uint, practiceTestID string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("user_id = ? AND practice_test_id = ?", userID, practiceTestID).
		Order("created_at asc").Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByTestID(practiceTestID string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("practice_test_id = ?", practiceTestID).Order("created_at asc").Find(&results).Error
	return results, err
}

// LatestPerSection returns, for one user, only the most recent result
// row per section. Retake history stays in the table; progress charts
// count the latest attempt only.
func (r *ResultRepository) LatestPerSection(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("user_id = ?", userID).
		Where("id IN (SELECT MAX(id) FROM results WHERE user_id = ? AND deleted_at IS NULL GROUP BY section_id)", userID).
		Order("created_at asc").
		Find(&results).Error
	return results, err
}
