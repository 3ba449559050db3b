package service

import (
	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/repository"
)

// ResultService records scored attempts and feeds the progress charts.
type ResultService struct {
	Results  *repository.ResultRepository
	Sections *repository.SectionRepository
}

func NewResultService(results *repository.ResultRepository, sections *repository.SectionRepository) *ResultService {
	return &ResultService{Results: results, Sections: sections}
}

type CreateResultRequest struct {
	SectionID      string   `json:"sectionId" binding:"required"`
	Score          *float64 `json:"score" binding:"required"`
	PracticeTestID *string  `json:"practiceTestId"`
}

// CreateResult appends one scored attempt. Results are never updated in
// place; retakes produce new rows so history is preserved.
func (s *ResultService) CreateResult(userID uint, req CreateResultRequest) (*model.Result, error) {
	result := &model.Result{
		UserID:         userID,
		SectionID:      req.SectionID,
		Score:          *req.Score,
		PracticeTestID: req.PracticeTestID,
	}
	if err := s.Results.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListResults returns the user's results in chronological order,
// optionally narrowed to one practice test.
func (s *ResultService) ListResults(userID uint, practiceTestID string) ([]model.Result, error) {
	if practiceTestID != "" {
		return s.Results.ListByPracticeTest(userID, practiceTestID)
	}
	return s.Results.ListByUser(userID)
}

// TypeProgress is one section type's aggregate for the progress chart.
type TypeProgress struct {
	SectionType model.SectionType `json:"sectionType"`
	Attempts    int               `json:"attempts"`
	Average     float64           `json:"average"`
}

// ProgressPoint is one attempt on the time axis of the progress chart.
type ProgressPoint struct {
	SectionID string  `json:"sectionId"`
	Score     float64 `json:"score"`
	Date      string  `json:"date"`
}

// ProgressSummary is the payload behind the progress page.
type ProgressSummary struct {
	Overall  float64         `json:"overall"`
	ByType   []TypeProgress  `json:"byType"`
	Timeline []ProgressPoint `json:"timeline"`
}

// Progress aggregates the user's scores for the charts. Only the latest
// result per section counts toward the averages; the timeline carries
// the same latest-per-section rows in chronological order. Full retake
// history stays available through ListResults.
func (s *ResultService) Progress(userID uint) (*ProgressSummary, error) {
	latest, err := s.Results.LatestPerSection(userID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{
		ByType:   []TypeProgress{},
		Timeline: []ProgressPoint{},
	}
	if len(latest) == 0 {
		return summary, nil
	}

	type acc struct {
		sum   float64
		count int
	}
	byType := map[model.SectionType]*acc{}

	var total float64
	for _, r := range latest {
		total += r.Score

		section, err := s.Sections.FindByID(r.SectionID)
		if err != nil {
			// A deleted section should not sink the whole chart.
			continue
		}

		a := byType[section.SectionType]
		if a == nil {
			a = &acc{}
			byType[section.SectionType] = a
		}
		a.sum += r.Score
		a.count++

		summary.Timeline = append(summary.Timeline, ProgressPoint{
			SectionID: r.SectionID,
			Score:     r.Score,
			Date:      r.CreatedAt.Format("2006-01-02"),
		})
	}

	summary.Overall = total / float64(len(latest))

	for _, t := range []model.SectionType{model.Math, model.Reading, model.Writing} {
		if a, ok := byType[t]; ok {
			summary.ByType = append(summary.ByType, TypeProgress{
				SectionType: t,
				Attempts:    a.count,
				Average:     a.sum / float64(a.count),
			})
		}
	}

	return summary, nil
}
