package model

import "time"

// TestAnswer is one user's single attempt record for one test. An attempt is
// active while AnsweringTime is nil and finalized once it is set.
//
// Active mirrors "AnsweringTime == nil" as an indexable column: the composite
// unique index (user_id, test_id, active) holds &true for the one in-progress
// row and NULL after finalization, so MySQL rejects a second concurrent
// in-progress row while allowing any number of finalized ones.
// swagger:model TestAnswer
type TestAnswer struct {
	BaseModel

	TestID        uint       `gorm:"not null;index;uniqueIndex:uq_active_attempt,priority:2" json:"testId"`
	UserID        string     `gorm:"type:varchar(36);not null;index;uniqueIndex:uq_active_attempt,priority:1" json:"userId"`
	Active        *bool      `gorm:"uniqueIndex:uq_active_attempt,priority:3" json:"-"`
	AnsweringTime *time.Time `gorm:"index" json:"answeringTime,omitempty"`

	// Puzzle-variant payload, written only by the puzzle game service.
	MoveCount           *int    `json:"moveCount,omitempty"`
	GameDurationSeconds *int    `json:"gameDurationSeconds,omitempty"`
	CompletionState     *string `gorm:"type:varchar(64)" json:"completionState,omitempty"`

	Test *Test `gorm:"foreignKey:TestID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TestAnswer) TableName() string {
	return "test_answers"
}

// IsActive reports whether the attempt is still in progress.
func (a *TestAnswer) IsActive() bool {
	return a.Active != nil && *a.Active
}
