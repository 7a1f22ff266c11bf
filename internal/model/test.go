package model

import "time"

type TestStatus int

const (
	TestStatusNotStarted TestStatus = iota
	TestStatusStarted
	TestStatusFinished
)

// TestKind discriminates the answer payload a test accepts. Puzzle metrics
// (move count, duration) are only reachable through the puzzle service, so a
// quiz test can never grow game fields.
type TestKind string

const (
	TestKindQuiz   TestKind = "quiz"
	TestKindPuzzle TestKind = "puzzle"
)

// Test is one dated puzzle/question slot in the competition calendar.
// Number determines the calendar day; at most one test is Started at a time,
// globally, which the repository enforces by routing every status transition
// through a single transaction.
// swagger:model Test
type Test struct {
	BaseModel

	Number    int        `gorm:"uniqueIndex;not null" json:"number"`
	Kind      TestKind   `gorm:"type:varchar(16);not null;default:'quiz'" json:"kind"`
	Status    TestStatus `gorm:"not null;default:0" json:"status"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Answers      []TestAnswer      `gorm:"foreignKey:TestID" json:"-"`
	WrongAnswers []TestWrongAnswer `gorm:"foreignKey:TestID" json:"-"`
}

func (Test) TableName() string {
	return "tests"
}
