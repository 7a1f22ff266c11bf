package repository

import (
	"errors"

	"advent_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// FindCurrent returns the one test with Started status, or nil when no test
// is running.
func (r *TestRepository) FindCurrent() (*model.Test, error) {
	var t model.Test
	err := r.DB.Where("status = ?", model.TestStatusStarted).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestRepository) FindByNumber(number int) (*model.Test, error) {
	var t model.Test
	err := r.DB.Where("number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var t model.Test
	err := r.DB.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestRepository) All() ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Order("number").Find(&tests).Error
	return tests, err
}

// SetStatus transitions a test's status. Every transition runs in one
// transaction, and promoting a test to Started first demotes whichever test
// currently holds that status, so at most one Started test can exist.
func (r *TestRepository) SetStatus(testID uint, status model.TestStatus) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if status == model.TestStatusStarted {
			if err := tx.Model(&model.Test{}).
				Where("status = ? AND id <> ?", model.TestStatusStarted, testID).
				Update("status", model.TestStatusFinished).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&model.Test{}).Where("id = ?", testID).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
