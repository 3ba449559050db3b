package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) FindByKey(userID uint, sectionID, questionID string) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Where("user_id = ? AND section_id = ? AND question_id = ?", userID, sectionID, questionID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepository) Create(a *model.Answer) error {
	return r.DB.Create(a).Error
}

func (r *AnswerRepository) Update(a *model.Answer) error {
	return r.DB.Save(a).Error
}

// ListBySection returns the user's answers for one section keyed by
// question id.
func (r *AnswerRepository) ListBySection(userID uint, sectionID string) (map[string]string, error) {
	var answers []model.Answer
	err := r.DB.Where("user_id = ? AND section_id = ?", userID, sectionID).Find(&answers).Error
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a.Answer
	}
	return byQuestion, nil
}
