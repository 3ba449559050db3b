package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type SectionType string

const (
	Math    SectionType = "math"
	Reading SectionType = "reading"
	Writing SectionType = "writing"
)

// ValidSectionType reports whether t is one of the known section types.
func ValidSectionType(t SectionType) bool {
	switch t {
	case Math, Reading, Writing:
		return true
	}
	return false
}

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Contains reports whether s is a member of the list (exact match).
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Section is a generated batch of SAT-style questions of one type and
// optional topic category. Immutable once generated.
// swagger:model Section
type Section struct {
	UUIDBase
	Name        string      `gorm:"size:255;not null;index" json:"name"`
	SectionType SectionType `gorm:"type:enum('math','reading','writing');not null" json:"sectionType"`
	Category    *string     `gorm:"size:100" json:"category,omitempty"`
	CreatedBy   uint        `gorm:"index;type:bigint unsigned" json:"createdBy"`
	Questions   []Question  `gorm:"foreignKey:SectionID" json:"questions,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}

// Question belongs to exactly one section and is never mutated after
// creation. Invariant: Answer is a member of AnswerChoices.
// swagger:model Question
type Question struct {
	UUIDBase
	SectionID     string     `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	QuestionText  string     `gorm:"type:text;not null" json:"questionText"`
	AnswerChoices StringList `gorm:"type:json" json:"answerChoices"`
	Answer        string     `gorm:"type:text;not null" json:"answer"`
	Explanation   string     `gorm:"type:text" json:"explanation"`
	Order         int        `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}

// FollowUpQuestion is a supplementary question attached to a primary
// question for deeper review. Managed by the admin workflow.
// swagger:model FollowUpQuestion
type FollowUpQuestion struct {
	UUIDBase
	QuestionID      string     `gorm:"index;type:varchar(36);not null" json:"questionId"`
	FollowUpContent string     `gorm:"type:text;not null" json:"followUpContent"`
	AnswerChoices   StringList `gorm:"type:json" json:"answerChoices"`
	CorrectAnswer   string     `gorm:"type:text;not null" json:"correctAnswer"`
	Explanation     string     `gorm:"type:text" json:"explanation"`
}

func (FollowUpQuestion) TableName() string {
	return "follow_up_questions"
}
