package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeTestRepository struct {
	DB *gorm.DB
}

func NewPracticeTestRepository(db *gorm.DB) *PracticeTestRepository {
	return &PracticeTestRepository{DB: db}
}

func (r *PracticeTestRepository) Create(test *model.PracticeTest) error {
	return r.DB.Create(test).Error
}

func (r *PracticeTestRepository) FindByID(id string) (*model.PracticeTest, error) {
	var test model.PracticeTest
	err := r.DB.First(&test, "id = ?", id).Error
	return &test, err
}

func (r *PracticeTestRepository) ListByUser(userID uint) ([]model.PracticeTest, error) {
	var tests []model.PracticeTest
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&tests).Error
	return tests, err
}

func (r *PracticeTestRepository) Update(test *model.PracticeTest) error {
	return r.DB.Save(test).Error
}

// CompleteWithResults writes every per-section result row and the final
// status flip in one transaction. Either the whole completion lands or
// none of it does.
func (r *PracticeTestRepository) CompleteWithResults(test *model.PracticeTest, results []model.Result) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range results {
			if err := tx.Create(&results[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(test).Error
	})
}
