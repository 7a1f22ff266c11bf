package repository

import (
	"errors"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) FindByUserID(userID string) (*model.Result, error) {
	var res model.Result
	err := r.DB.Where("user_id = ?", userID).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ResultsForWeek returns every scored row for the period (weeks 1-3, 4 is the
// final standing), rank 1 first. Equal places fall back to user_id so the
// output order is stable; scored-but-unranked rows (place still NULL) sort
// last.
func (r *ResultRepository) ResultsForWeek(week int) ([]model.Result, error) {
	var points, place string
	switch week {
	case 1:
		points, place = "week1_points", "week1_place"
	case 2:
		points, place = "week2_points", "week2_place"
	case 3:
		points, place = "week3_points", "week3_place"
	case 4:
		points, place = "final_points", "final_place"
	default:
		return nil, util.ErrInvalidWeekNumber
	}

	var results []model.Result
	err := r.DB.Preload("User").
		Where(points+" IS NOT NULL").
		Order(place + " IS NULL").
		Order(place).
		Order("user_id").
		Find(&results).Error
	return results, err
}
