package controller

import (
	"errors"
	"strconv"

	"advent_quiz_backend/internal/service"
	"advent_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// @Summary Get the leaderboard for one week (4 = final standing)
// @Tags Results
// @Security BearerAuth
// @Produce json
// @Param week path int true "Week number (1-4)"
// @Success 200 {object} util.Response
// @Router /api/results/week/{week} [get]
func (c *RankingController) GetWeekResults(ctx *gin.Context) {
	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil {
		util.BadRequest(ctx, "invalid week number")
		return
	}

	results, err := c.RankingService.ResultsForWeek(ctx.Request.Context(), week)
	if err != nil {
		if errors.Is(err, util.ErrInvalidWeekNumber) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Get the caller's assigned placements
// @Tags Results
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/results/position [get]
func (c *RankingController) GetMyPosition(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	position, err := c.RankingService.PositionFor(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, position)
}
