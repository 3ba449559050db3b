package model

// Result is one scored attempt at a section. Append-only: every attempt
// produces a new row, so score history is preserved.
// swagger:model Result
type Result struct {
	BaseModel
	UserID         uint    `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SectionID      string  `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Score          float64 `gorm:"not null" json:"score"`
	PracticeTestID *string `gorm:"index;type:varchar(36)" json:"practiceTestId,omitempty"`
}

func (Result) TableName() string {
	return "results"
}
