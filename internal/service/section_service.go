package service

import (
	"context"
	"encoding/json"
	"time"

	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/repository"
	"sat_prep_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sectionListCacheKey = "sections:list"
	sectionListCacheTTL = 60 * time.Second
)

// SectionService is the read surface over sections and questions. It is
// a passthrough to the store with a short-lived list cache, not a
// write-through cache.
type SectionService struct {
	Repo  *repository.SectionRepository
	Redis *redis.Client
}

func NewSectionService(repo *repository.SectionRepository, rdb *redis.Client) *SectionService {
	return &SectionService{Repo: repo, Redis: rdb}
}

func (s *SectionService) ListSections(ctx context.Context) ([]model.Section, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, sectionListCacheKey).Result(); err == nil {
			var sections []model.Section
			if err := json.Unmarshal([]byte(cached), &sections); err == nil {
				return sections, nil
			}
		}
	}

	sections, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(sections); err == nil {
			s.Redis.Set(ctx, sectionListCacheKey, data, sectionListCacheTTL)
		}
	}

	return sections, nil
}

// InvalidateListCache drops the cached section list. Called after a new
// section is generated.
func (s *SectionService) InvalidateListCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, sectionListCacheKey)
	}
}

// GetSection returns the section with its questions in persisted order.
func (s *SectionService) GetSection(id string) (*model.Section, error) {
	return s.Repo.FindByID(id)
}

// GetSectionByName looks a section up by its display name. Zero matches
// is a not-found; more than one match is a tolerated data-quality
// anomaly: the oldest row wins and a warning is logged.
func (s *SectionService) GetSectionByName(name string) (*model.Section, error) {
	sections, err := s.Repo.FindAllByName(name)
	if err != nil {
		return nil, err
	}

	switch len(sections) {
	case 0:
		logger.Log.Info("no section found by name", zap.String("name", name))
		return nil, gorm.ErrRecordNotFound
	case 1:
	default:
		logger.Log.Warn("multiple sections share a name, returning the oldest",
			zap.String("name", name),
			zap.Int("matches", len(sections)))
	}

	return s.Repo.FindByID(sections[0].ID)
}

func (s *SectionService) GetQuestion(id string) (*model.Question, error) {
	return s.Repo.FindQuestionByID(id)
}
