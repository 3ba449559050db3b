package service

import (
	"context"
	"errors"

	"sat_prep_backend/internal/generator"
	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/util"

	"gorm.io/gorm"
)

// FollowUpStore abstracts the follow-up question repository.
type FollowUpStore interface {
	Create(f *model.FollowUpQuestion) error
	FindByID(id string) (*model.FollowUpQuestion, error)
	ListByQuestion(questionID string) ([]model.FollowUpQuestion, error)
	Update(f *model.FollowUpQuestion) error
	Delete(id string) error
}

// QuestionLoader resolves primary questions for follow-up attachment.
type QuestionLoader interface {
	FindQuestionByID(id string) (*model.Question, error)
}

type FollowUpService struct {
	FollowUps FollowUpStore
	Questions QuestionLoader
	Gen       *generator.Generator
}

func NewFollowUpService(followUps FollowUpStore, questions QuestionLoader, gen *generator.Generator) *FollowUpService {
	return &FollowUpService{FollowUps: followUps, Questions: questions, Gen: gen}
}

type FollowUpRequest struct {
	FollowUpContent string   `json:"followUpContent" binding:"required"`
	AnswerChoices   []string `json:"answerChoices" binding:"required,min=2"`
	CorrectAnswer   string   `json:"correctAnswer" binding:"required"`
	Explanation     string   `json:"explanation"`
}

// CreateFollowUp attaches a manually authored follow-up to a question.
// The correct answer must be one of the answer choices.
func (s *FollowUpService) CreateFollowUp(questionID string, req FollowUpRequest) (*model.FollowUpQuestion, error) {
	if _, err := s.Questions.FindQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	choices := model.StringList(req.AnswerChoices)
	if !choices.Contains(req.CorrectAnswer) {
		return nil, util.ErrAnswerNotInChoices
	}

	f := &model.FollowUpQuestion{
		QuestionID:      questionID,
		FollowUpContent: req.FollowUpContent,
		AnswerChoices:   choices,
		CorrectAnswer:   req.CorrectAnswer,
		Explanation:     req.Explanation,
	}
	if err := s.FollowUps.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// GenerateFollowUp asks the model for a follow-up question grounded on
// the primary question, then persists it.
func (s *FollowUpService) GenerateFollowUp(ctx context.Context, questionID string) (*model.FollowUpQuestion, error) {
	q, err := s.Questions.FindQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	gen, err := s.Gen.FollowUp(ctx, q.QuestionText, q.Answer)
	if err != nil {
		return nil, err
	}

	f := &model.FollowUpQuestion{
		QuestionID:      questionID,
		FollowUpContent: gen.FollowUpContent,
		AnswerChoices:   model.StringList(gen.AnswerChoices),
		CorrectAnswer:   gen.CorrectAnswer,
		Explanation:     gen.Explanation,
	}
	if err := s.FollowUps.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FollowUpService) ListFollowUps(questionID string) ([]model.FollowUpQuestion, error) {
	return s.FollowUps.ListByQuestion(questionID)
}

func (s *FollowUpService) UpdateFollowUp(id string, req FollowUpRequest) (*model.FollowUpQuestion, error) {
	f, err := s.FollowUps.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	choices := model.StringList(req.AnswerChoices)
	if !choices.Contains(req.CorrectAnswer) {
		return nil, util.ErrAnswerNotInChoices
	}

	f.FollowUpContent = req.FollowUpContent
	f.AnswerChoices = choices
	f.CorrectAnswer = req.CorrectAnswer
	f.Explanation = req.Explanation
	if err := s.FollowUps.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FollowUpService) DeleteFollowUp(id string) error {
	if _, err := s.FollowUps.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.FollowUps.Delete(id)
}
