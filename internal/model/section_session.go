package model

import "time"

// SectionSession is an append-only telemetry record of one timed attempt
// at a section. Never used for scoring.
// swagger:model SectionSession
type SectionSession struct {
	BaseModel
	UserID    uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SectionID string    `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `gorm:"default:0" json:"duration"` // Seconds
}

func (SectionSession) TableName() string {
	return "section_sessions"
}
