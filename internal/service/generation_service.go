package service

import (
	"context"
	"fmt"
	"time"

	"sat_prep_backend/internal/config"
	"sat_prep_backend/internal/generator"
	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/util"
	"sat_prep_backend/pkg/logger"
	"sat_prep_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SectionCreator is the write surface the generator needs.
// *repository.SectionRepository satisfies it.
type SectionCreator interface {
	CreateWithQuestions(section *model.Section, questions []model.Question) error
}

// GenerationService turns a generation request into a persisted section:
// prompt the model, validate the structured output, write section and
// questions atomically.
type GenerationService struct {
	Gen      *generator.Generator
	Sections SectionCreator
	Redis    *redis.Client
	Cfg      config.GenerationConfig

	afterCreate func(ctx context.Context)
}

func NewGenerationService(gen *generator.Generator, sections SectionCreator, rdb *redis.Client, cfg config.GenerationConfig) *GenerationService {
	return &GenerationService{
		Gen:      gen,
		Sections: sections,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

// OnSectionCreated registers a hook run after a section lands (cache
// invalidation).
func (s *GenerationService) OnSectionCreated(fn func(ctx context.Context)) {
	s.afterCreate = fn
}

type GenerateSectionRequest struct {
	Name     string            `json:"name" binding:"required"`
	Type     model.SectionType `json:"type" binding:"required"`
	Category string            `json:"category"`
}

// GenerateSection runs one generation request end to end. A per-user
// debounce guard rejects a second request inside the configured window,
// since generation is slow enough for an impatient double-click to
// produce duplicate sections.
func (s *GenerationService) GenerateSection(ctx context.Context, userID uint, req GenerateSectionRequest) (*model.Section, error) {
	if !model.ValidSectionType(req.Type) {
		return nil, fmt.Errorf("unknown section type %q", req.Type)
	}

	if err := s.acquireDebounce(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	gen, err := s.Gen.Section(ctx, string(req.Type), req.Category)
	monitoring.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues(string(req.Type), "error").Inc()
		logger.Log.Error("section generation failed",
			zap.String("type", string(req.Type)),
			zap.String("category", req.Category),
			zap.Error(err))
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = gen.Title
	}

	section := &model.Section{
		Name:        name,
		SectionType: req.Type,
		CreatedBy:   userID,
	}
	if req.Category != "" {
		section.Category = &req.Category
	}

	questions := make([]model.Question, len(gen.Questions))
	for i, q := range gen.Questions {
		questions[i] = model.Question{
			QuestionText:  q.QuestionText,
			AnswerChoices: model.StringList(q.AnswerChoices),
			Answer:        q.Answer,
			Explanation:   q.Explanation,
			Order:         i,
		}
	}

	if err := s.Sections.CreateWithQuestions(section, questions); err != nil {
		monitoring.GenerationCounter.WithLabelValues(string(req.Type), "storage_error").Inc()
		return nil, err
	}

	monitoring.GenerationCounter.WithLabelValues(string(req.Type), "ok").Inc()
	logger.Log.Info("section generated",
		zap.String("sectionId", section.ID),
		zap.String("type", string(req.Type)),
		zap.Int("questions", len(questions)))

	if s.afterCreate != nil {
		s.afterCreate(ctx)
	}

	section.Questions = questions
	return section, nil
}

// acquireDebounce takes the per-user generation slot in redis. The key
// expires on its own, so a crashed request cannot wedge the user.
func (s *GenerationService) acquireDebounce(ctx context.Context, userID uint) error {
	if s.Redis == nil || s.Cfg.DebounceSeconds <= 0 {
		return nil
	}

	key := fmt.Sprintf("generation:debounce:%d", userID)
	ok, err := s.Redis.SetNX(ctx, key, 1, time.Duration(s.Cfg.DebounceSeconds)*time.Second).Result()
	if err != nil {
		// Redis being down should not block generation.
		logger.Log.Warn("debounce check failed, proceeding", zap.Error(err))
		return nil
	}
	if !ok {
		return util.ErrGenerationPending
	}
	return nil
}
