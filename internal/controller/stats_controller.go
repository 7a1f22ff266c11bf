package controller

import (
	"time"

	"advent_quiz_backend/internal/service"
	"advent_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.AnswerStatsService
}

func NewStatsController(statsService *service.AnswerStatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// @Summary Count of distinct tests the caller has solved
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/correct-count [get]
func (c *StatsController) GetCorrectAnswerCount(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.StatsService.CorrectAnswerCount(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// @Summary Correct answers per user inside [from, to)
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Param from query string true "Window start (RFC3339, inclusive)"
// @Param to query string true "Window end (RFC3339, exclusive)"
// @Success 200 {object} util.Response
// @Router /api/stats/correct [get]
func (c *StatsController) GetCorrectAnswersPerUser(ctx *gin.Context) {
	from, to, ok := c.windowFromQuery(ctx)
	if !ok {
		return
	}

	counts, err := c.StatsService.CorrectAnswersPerUser(from, to)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// @Summary Wrong answers per user inside [from, to)
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Param from query string true "Window start (RFC3339, inclusive)"
// @Param to query string true "Window end (RFC3339, exclusive)"
// @Success 200 {object} util.Response
// @Router /api/stats/wrong [get]
func (c *StatsController) GetWrongAnswersPerUser(ctx *gin.Context) {
	from, to, ok := c.windowFromQuery(ctx)
	if !ok {
		return
	}

	counts, err := c.StatsService.WrongAnswersPerUser(from, to)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

func (c *StatsController) windowFromQuery(ctx *gin.Context) (from, to time.Time, ok bool) {
	from, err := time.Parse(time.RFC3339, ctx.Query("from"))
	if err != nil {
		util.BadRequest(ctx, "invalid 'from' timestamp, expected RFC3339")
		return from, to, false
	}
	to, err = time.Parse(time.RFC3339, ctx.Query("to"))
	if err != nil {
		util.BadRequest(ctx, "invalid 'to' timestamp, expected RFC3339")
		return from, to, false
	}
	if to.Before(from) {
		util.BadRequest(ctx, "'to' must not precede 'from'")
		return from, to, false
	}
	return from, to, true
}
