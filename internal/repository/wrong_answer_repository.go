package repository

import (
	"time"

	"advent_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type WrongAnswerRepository struct {
	DB *gorm.DB
}

func NewWrongAnswerRepository(db *gorm.DB) *WrongAnswerRepository {
	return &WrongAnswerRepository{DB: db}
}

// Create appends one wrong-guess record. Rows never mutate afterwards.
func (r *WrongAnswerRepository) Create(w *model.TestWrongAnswer) error {
	return r.DB.Create(w).Error
}

func (r *WrongAnswerRepository) ListByTest(testID uint) ([]model.TestWrongAnswer, error) {
	var rows []model.TestWrongAnswer
	err := r.DB.Where("test_id = ?", testID).Order("time").Find(&rows).Error
	return rows, err
}

// WrongAnswersPerUser tallies wrong guesses per user over the half-open
// window [from, to).
func (r *WrongAnswerRepository) WrongAnswersPerUser(from, to time.Time) (map[string]int, error) {
	var rows []userCount
	err := r.DB.Model(&model.TestWrongAnswer{}).
		Select("user_id, COUNT(*) AS count").
		Where("time >= ? AND time < ?", from, to).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
