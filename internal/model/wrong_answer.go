package model

import "time"

// TestWrongAnswer logs one incorrect submission. Rows are append-only and a
// user may accumulate any number of them per test.
// swagger:model TestWrongAnswer
type TestWrongAnswer struct {
	BaseModel

	TestID uint      `gorm:"not null;index" json:"testId"`
	UserID string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Time   time.Time `gorm:"not null;index" json:"time"`
	Answer string    `gorm:"type:varchar(255)" json:"answer"`

	Test *Test `gorm:"foreignKey:TestID" json:"-"`
}

func (TestWrongAnswer) TableName() string {
	return "test_wrong_answers"
}
