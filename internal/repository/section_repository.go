package repository

import (
	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

// CreateWithQuestions persists the section and all of its questions as a
// single transaction, so a provider or storage failure never leaves an
// orphan section behind.
func (r *SectionRepository) CreateWithQuestions(section *model.Section, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(section).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].SectionID = section.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SectionRepository) FindByID(id string) (*model.Section, error) {
	var section model.Section
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` asc")
	}).First(&section, "id = ?", id).Error
	return &section, err
}

// FindAllByName returns every section with the given name, oldest first.
// Duplicate names are a tolerated data-quality anomaly; the caller
// decides what to do with more than one match.
func (r *SectionRepository) FindAllByName(name string) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("name = ?", name).Order("created_at asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) List() ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Order("created_at desc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) ListQuestions(sectionID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("section_id = ?", sectionID).Order("`order` asc").Find(&questions).Error
	return questions, err
}

func (r *SectionRepository) FindQuestionByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	return &q, err
}
