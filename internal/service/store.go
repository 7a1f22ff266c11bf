package service

import (
	"time"

	"advent_quiz_backend/internal/model"
)

// The services read and write through these narrow store interfaces; the gorm
// repositories in internal/repository are the production implementations.
// Finders return (nil, nil) for "no such row"; only infrastructure failures
// come back as errors.

type TestStore interface {
	FindCurrent() (*model.Test, error)
	FindByNumber(number int) (*model.Test, error)
	FindByID(id uint) (*model.Test, error)
	All() ([]model.Test, error)
}

type AnswerStore interface {
	FindActive(userID string, testID uint) (*model.TestAnswer, error)
	CreateActive(a *model.TestAnswer) error
	Finalize(id uint, at time.Time) (bool, error)
	FinalizePuzzle(id uint, at time.Time, moveCount, durationSeconds int, completionState string) (bool, error)
	ResetMetrics(id uint, moveCount int) (bool, error)
	CorrectAnswerCount(userID string) (int, error)
	CorrectAnswersPerUser(from, to time.Time) (map[string]int, error)
}

type WrongAnswerStore interface {
	Create(w *model.TestWrongAnswer) error
	ListByTest(testID uint) ([]model.TestWrongAnswer, error)
	WrongAnswersPerUser(from, to time.Time) (map[string]int, error)
}

type ResultStore interface {
	FindByUserID(userID string) (*model.Result, error)
	ResultsForWeek(week int) ([]model.Result, error)
}
