package service

import (
	"errors"

	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

// AnswerStore is the persistence surface the answer tracker needs.
// *repository.AnswerRepository satisfies it; tests use an in-memory fake.
type AnswerStore interface {
	FindByKey(userID uint, sectionID, questionID string) (*model.Answer, error)
	Create(a *model.Answer) error
	Update(a *model.Answer) error
	ListBySection(userID uint, sectionID string) (map[string]string, error)
}

type AnswerService struct {
	Store AnswerStore
}

func NewAnswerService(store AnswerStore) *AnswerService {
	return &AnswerService{Store: store}
}

type SubmitAnswerRequest struct {
	SectionID  string `json:"sectionId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitAnswer upserts the user's chosen answer for one question.
// At most one row exists per (user, section, question): a resubmission
// updates the existing row in place, last write wins. The chosen answer
// is not checked against the question's choices here; that is the UI
// layer's concern.
func (s *AnswerService) SubmitAnswer(userID uint, req SubmitAnswerRequest) (*model.Answer, error) {
	existing, err := s.Store.FindByKey(userID, req.SectionID, req.QuestionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		a := &model.Answer{
			UserID:     userID,
			SectionID:  req.SectionID,
			QuestionID: req.QuestionID,
			Answer:     req.Answer,
		}
		if err := s.Store.Create(a); err != nil {
			return nil, err
		}
		return a, nil
	}

	existing.Answer = req.Answer
	if err := s.Store.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SectionAnswers returns the user's recorded answers for a section,
// keyed by question id.
func (s *AnswerService) SectionAnswers(userID uint, sectionID string) (map[string]string, error) {
	return s.Store.ListBySection(userID, sectionID)
}
