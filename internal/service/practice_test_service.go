package service

import (
	"fmt"
	"time"

	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/util"
	"sat_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// PracticeTestStore is the persistence surface of the aggregator.
// *repository.PracticeTestRepository satisfies it.
type PracticeTestStore interface {
	Create(test *model.PracticeTest) error
	FindByID(id string) (*model.PracticeTest, error)
	ListByUser(userID uint) ([]model.PracticeTest, error)
	Update(test *model.PracticeTest) error
	CompleteWithResults(test *model.PracticeTest, results []model.Result) error
}

// SectionQuestionLoader loads a section's questions in persisted order.
type SectionQuestionLoader interface {
	ListQuestions(sectionID string) ([]model.Question, error)
}

// TestResultLoader reads back the results tagged with a test id.
type TestResultLoader interface {
	ListByTestID(practiceTestID string) ([]model.Result, error)
}

// PracticeTestService owns the practice test lifecycle: creation, the
// status machine, completion scoring, and score aggregation.
type PracticeTestService struct {
	Tests    PracticeTestStore
	Sections SectionQuestionLoader
	Answers  AnswerStore
	Results  TestResultLoader
}

func NewPracticeTestService(tests PracticeTestStore, sections SectionQuestionLoader, answers AnswerStore, results TestResultLoader) *PracticeTestService {
	return &PracticeTestService{
		Tests:    tests,
		Sections: sections,
		Answers:  answers,
		Results:  results,
	}
}

type CreateTestRequest struct {
	Name     string   `json:"name" binding:"required"`
	Sections []string `json:"sections" binding:"required,min=1"`
}

func (s *PracticeTestService) CreateTest(userID uint, req CreateTestRequest) (*model.PracticeTest, error) {
	test := &model.PracticeTest{
		UserID:   userID,
		Name:     req.Name,
		Sections: model.StringList(req.Sections),
		Status:   model.TestNotStarted,
	}
	if err := s.Tests.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *PracticeTestService) GetTest(userID uint, testID string) (*model.PracticeTest, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		return nil, err
	}
	if test.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return test, nil
}

func (s *PracticeTestService) ListTests(userID uint) ([]model.PracticeTest, error) {
	return s.Tests.ListByUser(userID)
}

type UpdateTestStatusRequest struct {
	ID      string           `json:"id" binding:"required"`
	Status  model.TestStatus `json:"status" binding:"required"`
	EndTime *time.Time       `json:"endTime"`
}

// UpdateStatus applies one transition of the test status machine.
// Illegal transitions are rejected, never silently applied. Moving to
// in_progress for the first time stamps StartTime; moving to completed
// runs the completion scoring pass and stamps EndTime (now, unless the
// caller supplied one).
func (s *PracticeTestService) UpdateStatus(userID uint, req UpdateTestStatusRequest) (*model.PracticeTest, error) {
	if !model.ValidTestStatus(req.Status) {
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}

	test, err := s.GetTest(userID, req.ID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(test.Status, req.Status) {
		logger.Log.Info("rejected practice test transition",
			zap.String("testId", test.ID),
			zap.String("from", string(test.Status)),
			zap.String("to", string(req.Status)))
		return nil, util.ErrInvalidTransition
	}

	if req.Status == model.TestCompleted {
		return s.completeTest(test, req.EndTime)
	}

	if req.Status == model.TestInProgress && test.StartTime == nil {
		now := time.Now()
		test.StartTime = &now
	}

	test.Status = req.Status
	if err := s.Tests.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}

// completeTest scores every section in the test against the user's
// recorded answers and lands all result rows plus the status flip in a
// single transaction, so a crash mid-completion never leaves a test
// half-scored.
func (s *PracticeTestService) completeTest(test *model.PracticeTest, endTime *time.Time) (*model.PracticeTest, error) {
	results := make([]model.Result, 0, len(test.Sections))
	for _, sectionID := range test.Sections {
		questions, err := s.Sections.ListQuestions(sectionID)
		if err != nil {
			return nil, fmt.Errorf("load questions for section %s: %w", sectionID, err)
		}
		answers, err := s.Answers.ListBySection(test.UserID, sectionID)
		if err != nil {
			return nil, fmt.Errorf("load answers for section %s: %w", sectionID, err)
		}

		testID := test.ID
		results = append(results, model.Result{
			UserID:         test.UserID,
			SectionID:      sectionID,
			Score:          Score(questions, answers),
			PracticeTestID: &testID,
		})
	}

	test.Status = model.TestCompleted
	if endTime != nil {
		test.EndTime = endTime
	} else {
		now := time.Now()
		test.EndTime = &now
	}

	if err := s.Tests.CompleteWithResults(test, results); err != nil {
		return nil, err
	}

	logger.Log.Info("practice test completed",
		zap.String("testId", test.ID),
		zap.Int("sections", len(results)))

	return test, nil
}

// AverageScore returns the arithmetic mean of the test's section
// results, or 0 when none exist yet.
func (s *PracticeTestService) AverageScore(testID string) (float64, error) {
	results, err := s.Results.ListByTestID(testID)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	return sum / float64(len(results)), nil
}
