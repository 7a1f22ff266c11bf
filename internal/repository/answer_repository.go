package repository

import (
	"errors"
	"time"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// FindActive returns the in-progress answer for (user, test), or nil when the
// user holds none. The uq_active_attempt index guarantees there is at most one.
func (r *AnswerRepository) FindActive(userID string, testID uint) (*model.TestAnswer, error) {
	var a model.TestAnswer
	err := r.DB.Where("user_id = ? AND test_id = ? AND active = ?", userID, testID, true).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateActive inserts a new in-progress answer. A concurrent insert for the
// same (user, test) trips the unique index; that case surfaces as
// util.ErrAttemptExists so the caller can fall back to the surviving row.
func (r *AnswerRepository) CreateActive(a *model.TestAnswer) error {
	active := true
	a.Active = &active
	a.AnsweringTime = nil

	err := r.DB.Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrAttemptExists
	}
	return err
}

// Finalize stamps the answering time and retires the active flag. The update
// is conditioned on the row still being active; the false return means a
// racing commit got there first (or the attempt was never active).
func (r *AnswerRepository) Finalize(id uint, at time.Time) (bool, error) {
	res := r.DB.Model(&model.TestAnswer{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":         nil,
			"answering_time": at,
		})
	return res.RowsAffected > 0, res.Error
}

// FinalizePuzzle finalizes a puzzle attempt together with its game metrics,
// under the same active-row condition as Finalize.
func (r *AnswerRepository) FinalizePuzzle(id uint, at time.Time, moveCount, durationSeconds int, completionState string) (bool, error) {
	res := r.DB.Model(&model.TestAnswer{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":                nil,
			"answering_time":        at,
			"move_count":            moveCount,
			"game_duration_seconds": durationSeconds,
			"completion_state":      completionState,
		})
	return res.RowsAffected > 0, res.Error
}

// ResetMetrics reinitializes the in-progress game counters without touching
// the attempt's lifecycle. Finalized rows are left alone, reported as false.
func (r *AnswerRepository) ResetMetrics(id uint, moveCount int) (bool, error) {
	res := r.DB.Model(&model.TestAnswer{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"move_count":            moveCount,
			"game_duration_seconds": nil,
			"completion_state":      nil,
		})
	return res.RowsAffected > 0, res.Error
}

// CorrectAnswerCount counts distinct tests the user has a finalized answer
// for. Grouping by test first keeps a user with duplicate records for one
// test from counting twice.
func (r *AnswerRepository) CorrectAnswerCount(userID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.TestAnswer{}).
		Where("user_id = ? AND answering_time IS NOT NULL", userID).
		Distinct("test_id").
		Count(&count).Error
	return int(count), err
}

type userCount struct {
	UserID string
	Count  int
}

// CorrectAnswersPerUser counts finalized answers per user over the half-open
// window [from, to). Users with no matching answer are absent from the map.
func (r *AnswerRepository) CorrectAnswersPerUser(from, to time.Time) (map[string]int, error) {
	var rows []userCount
	err := r.DB.Model(&model.TestAnswer{}).
		Select("user_id, COUNT(*) AS count").
		Where("answering_time >= ? AND answering_time < ?", from, to).
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
