package model

import "time"

type TestStatus string

const (
	TestNotStarted TestStatus = "not_started"
	TestInProgress TestStatus = "in_progress"
	TestPaused     TestStatus = "paused"
	TestCompleted  TestStatus = "completed"
)

// allowedTransitions is the practice test status machine:
// not_started -> in_progress <-> paused, and completed is reachable
// from in_progress or paused. completed is terminal.
var allowedTransitions = map[TestStatus][]TestStatus{
	TestNotStarted: {TestInProgress},
	TestInProgress: {TestPaused, TestCompleted},
	TestPaused:     {TestInProgress, TestCompleted},
	TestCompleted:  {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to TestStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidTestStatus reports whether s is a known status value.
func ValidTestStatus(s TestStatus) bool {
	switch s {
	case TestNotStarted, TestInProgress, TestPaused, TestCompleted:
		return true
	}
	return false
}

// PracticeTest groups an ordered list of sections taken under one timer
// with a single overall status.
// swagger:model PracticeTest
type PracticeTest struct {
	UUIDBase
	UserID    uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Sections  StringList `gorm:"type:json" json:"sections"`
	Status    TestStatus `gorm:"type:enum('not_started','in_progress','paused','completed');default:'not_started'" json:"status"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

func (PracticeTest) TableName() string {
	return "practice_tests"
}
