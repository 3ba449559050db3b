package model

// Answer records a user's chosen answer for one question in one section.
// At most one row exists per (user, section, question); resubmission
// updates in place, last write wins. UpdatedAt doubles as the version
// timestamp under the at-most-one-writer assumption.
// swagger:model Answer
type Answer struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex:idx_answer_key;type:bigint unsigned;not null" json:"userId"`
	SectionID  string `gorm:"uniqueIndex:idx_answer_key;type:varchar(36);not null" json:"sectionId"`
	QuestionID string `gorm:"uniqueIndex:idx_answer_key;type:varchar(36);not null" json:"questionId"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
}

func (Answer) TableName() string {
	return "answers"
}
