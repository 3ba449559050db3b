package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type FollowUpRepository struct {
	DB *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

func (r *FollowUpRepository) Create(f *model.FollowUpQuestion) error {
	return r.DB.Create(f).Error
}

func (r *FollowUpRepository) FindByID(id string) (*model.FollowUpQuestion, error) {
	var f model.FollowUpQuestion
	err := r.DB.First(&f, "id = ?", id).Error
	return &f, err
}

func (r *FollowUpRepository) ListByQuestion(questionID string) ([]model.FollowUpQuestion, error) {
	var fs []model.FollowUpQuestion
	err := r.DB.Where("question_id = ?", questionID).Order("created_at asc").Find(&fs).Error
	return fs, err
}

func (r *FollowUpRepository) Update(f *model.FollowUpQuestion) error {
	return r.DB.Save(f).Error
}

func (r *FollowUpRepository) Delete(id string) error {
	return r.DB.Delete(&model.FollowUpQuestion{}, "id = ?", id).Error
}
