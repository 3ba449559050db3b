package service

import (
	"fmt"

	"sat_prep_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory stand-ins for the repository layer.

type fakeAnswerStore struct {
	answers map[string]*model.Answer // key: userID:sectionID:questionID
	nextID  uint
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{answers: map[string]*model.Answer{}}
}

func answerStoreKey(userID uint, sectionID, questionID string) string {
	return fmt.Sprintf("%d:%s:%s", userID, sectionID, questionID)
}

func (f *fakeAnswerStore) FindByKey(userID uint, sectionID, questionID string) (*model.Answer, error) {
	a, ok := f.answers[answerStoreKey(userID, sectionID, questionID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeAnswerStore) Create(a *model.Answer) error {
	f.nextID++
	a.ID = f.nextID
	f.answers[answerStoreKey(a.UserID, a.SectionID, a.QuestionID)] = a
	return nil
}

func (f *fakeAnswerStore) Update(a *model.Answer) error {
	f.answers[answerStoreKey(a.UserID, a.SectionID, a.QuestionID)] = a
	return nil
}

func (f *fakeAnswerStore) ListBySection(userID uint, sectionID string) (map[string]string, error) {
	out := map[string]string{}
	for _, a := range f.answers {
		if a.UserID == userID && a.SectionID == sectionID {
			out[a.QuestionID] = a.Answer
		}
	}
	return out, nil
}

type fakeTestStore struct {
	tests map[string]*model.PracticeTest
	// results written via CompleteWithResults, keyed by test id
	completed map[string][]model.Result
	nextID    int
}

func newFakeTestStore() *fakeTestStore {
	return &fakeTestStore{
		tests:     map[string]*model.PracticeTest{},
		completed: map[string][]model.Result{},
	}
}

func (f *fakeTestStore) Create(test *model.PracticeTest) error {
	f.nextID++
	test.ID = fmt.Sprintf("test-%d", f.nextID)
	copied := *test
	f.tests[test.ID] = &copied
	return nil
}

func (f *fakeTestStore) FindByID(id string) (*model.PracticeTest, error) {
	t, ok := f.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTestStore) ListByUser(userID uint) ([]model.PracticeTest, error) {
	var out []model.PracticeTest
	for _, t := range f.tests {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTestStore) Update(test *model.PracticeTest) error {
	copied := *test
	f.tests[test.ID] = &copied
	return nil
}

func (f *fakeTestStore) CompleteWithResults(test *model.PracticeTest, results []model.Result) error {
	copied := *test
	f.tests[test.ID] = &copied
	f.completed[test.ID] = append([]model.Result{}, results...)
	return nil
}

func (f *fakeTestStore) ListByTestID(practiceTestID string) ([]model.Result, error) {
	return f.completed[practiceTestID], nil
}

type fakeSectionQuestions struct {
	questions map[string][]model.Question // keyed by section id
}

func (f *fakeSectionQuestions) ListQuestions(sectionID string) ([]model.Question, error) {
	return f.questions[sectionID], nil
}

type fakeSessionRecorder struct {
	sessions []*model.SectionSession
}

func (f *fakeSessionRecorder) Create(s *model.SectionSession) error {
	f.sessions = append(f.sessions, s)
	return nil
}

type fakeUserLoader struct {
	users map[uint]*model.User
	calls int
}

func (f *fakeUserLoader) FindByID(id uint) (*model.User, error) {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}
