package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"sat_prep_backend/internal/config"
	"sat_prep_backend/internal/generator"
	"sat_prep_backend/internal/llm"
	"sat_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSectionCreator struct {
	section   *model.Section
	questions []model.Question
}

func (f *fakeSectionCreator) CreateWithQuestions(section *model.Section, questions []model.Question) error {
	section.ID = "sec-1"
	f.section = section
	f.questions = questions
	return nil
}

func generatedSectionJSON(t *testing.T, count int) json.RawMessage {
	t.Helper()
	sec := generator.GeneratedSection{Title: "Algebra Warmup"}
	for i := 0; i < count; i++ {
		sec.Questions = append(sec.Questions, generator.GeneratedQuestion{
			QuestionText:  fmt.Sprintf("Question %d", i),
			AnswerChoices: []string{fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i), fmt.Sprintf("c%d", i), fmt.Sprintf("d%d", i)},
			Answer:        fmt.Sprintf("a%d", i),
			Explanation:   "because",
		})
	}
	raw, err := json.Marshal(sec)
	require.NoError(t, err)
	return raw
}

func newGenerationService(t *testing.T, responses ...llm.MockResponse) (*GenerationService, *fakeSectionCreator) {
	t.Helper()
	gen := generator.New(llm.NewMockProvider(responses...), generator.DefaultConfig())
	creator := &fakeSectionCreator{}
	svc := NewGenerationService(gen, creator, nil, config.GenerationConfig{QuestionCount: 10, ChoiceCount: 4})
	return svc, creator
}

func TestGenerateSection_PersistsQuestionsInOrder(t *testing.T) {
	svc, creator := newGenerationService(t, llm.MockResponse{Content: generatedSectionJSON(t, 10)})

	section, err := svc.GenerateSection(context.Background(), 7, GenerateSectionRequest{
		Name: "My Section", Type: model.Math, Category: "algebra",
	})
	require.NoError(t, err)

	assert.Equal(t, "My Section", section.Name)
	assert.Equal(t, model.Math, section.SectionType)
	assert.Equal(t, uint(7), section.CreatedBy)
	require.NotNil(t, section.Category)
	assert.Equal(t, "algebra", *section.Category)

	require.Len(t, creator.questions, 10)
	for i, q := range creator.questions {
		assert.Equal(t, i, q.Order)
	}
	assert.Len(t, section.Questions, 10)
}

func TestGenerateSection_FallsBackToGeneratedTitle(t *testing.T) {
	svc, _ := newGenerationService(t, llm.MockResponse{Content: generatedSectionJSON(t, 10)})

	section, err := svc.GenerateSection(context.Background(), 1, GenerateSectionRequest{
		Name: "", Type: model.Reading,
	})
	require.NoError(t, err)
	assert.Equal(t, "Algebra Warmup", section.Name)
	assert.Nil(t, section.Category)
}

func TestGenerateSection_UnknownTypeRejected(t *testing.T) {
	svc, creator := newGenerationService(t)

	_, err := svc.GenerateSection(context.Background(), 1, GenerateSectionRequest{
		Name: "x", Type: "science",
	})
	assert.Error(t, err)
	assert.Nil(t, creator.section)
}

func TestGenerateSection_InvalidOutputNeverPersisted(t *testing.T) {
	// Nine questions instead of ten: validation must reject and nothing
	// may reach the store.
	svc, creator := newGenerationService(t, llm.MockResponse{Content: generatedSectionJSON(t, 9)})

	_, err := svc.GenerateSection(context.Background(), 1, GenerateSectionRequest{
		Name: "x", Type: model.Math,
	})
	assert.Error(t, err)
	assert.Nil(t, creator.section)
}

func TestGenerateSection_RunsAfterCreateHook(t *testing.T) {
	svc, _ := newGenerationService(t, llm.MockResponse{Content: generatedSectionJSON(t, 10)})

	hookRan := false
	svc.OnSectionCreated(func(ctx context.Context) { hookRan = true })

	_, err := svc.GenerateSection(context.Background(), 1, GenerateSectionRequest{
		Name: "x", Type: model.Writing,
	})
	require.NoError(t, err)
	assert.True(t, hookRan)
}
