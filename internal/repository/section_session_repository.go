package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SectionSessionRepository struct {
	DB *gorm.DB
}

func NewSectionSessionRepository(db *gorm.DB) *SectionSessionRepository {
	return &SectionSessionRepository{DB: db}
}

func (r *SectionSessionRepository) Create(s *model.SectionSession) error {
	return r.DB.Create(s).Error
}

func (r *SectionSessionRepository) ListByUser(userID uint) ([]model.SectionSession, error) {
	var sessions []model.SectionSession
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&sessions).Error
	return sessions, err
}
