package controller

import (
	"errors"

	"advent_quiz_backend/internal/service"
	"advent_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GameController is the HTTP face of the sliding-puzzle minigame.
type GameController struct {
	GameService *service.PuzzleGameService
}

func NewGameController(gameService *service.PuzzleGameService) *GameController {
	return &GameController{GameService: gameService}
}

// @Summary Check whether the caller has a game in progress
// @Tags Game
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/game/started [get]
func (c *GameController) CheckGameStarted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	started, err := c.GameService.CheckGameStarted(user.UserID)
	if err != nil {
		c.renderGameError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"started": started})
}

// @Summary Start (or resume) the puzzle game
// @Tags Game
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/game/start [post]
func (c *GameController) StartGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.GameService.StartGame(user.UserID)
	if err != nil {
		c.renderGameError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

type gameResultRequest struct {
	MoveCount       int    `json:"moveCount" binding:"required"`
	GameDuration    int    `json:"gameDurationSeconds" binding:"required"`
	CompletionState string `json:"completionState" binding:"required"`
}

// @Summary Commit the finished game's metrics
// @Tags Game
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body gameResultRequest true "Reported game metrics"
// @Success 200 {object} util.Response
// @Router /api/game/result [post]
func (c *GameController) UpdateGameResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req gameResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.GameService.CommitResult(user.UserID, req.MoveCount, req.GameDuration, req.CompletionState)
	if err != nil {
		c.renderGameError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

type gameResetRequest struct {
	MoveCount int `json:"moveCount"`
}

// @Summary Reset the in-progress game without losing the attempt
// @Tags Game
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body gameResetRequest true "Move counter to reset to"
// @Success 200 {object} util.Response
// @Router /api/game/reset [post]
func (c *GameController) ResetGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req gameResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GameService.ResetGame(user.UserID, req.MoveCount); err != nil {
		c.renderGameError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *GameController) renderGameError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound), errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidGameMetrics):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAttemptFinalized):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
