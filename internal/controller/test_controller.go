package controller

import (
	"errors"
	"strconv"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/service"
	"advent_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// @Summary Get the currently running test
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tests/current [get]
func (c *TestController) GetCurrentTest(ctx *gin.Context) {
	test, err := c.TestService.CurrentTest()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if test == nil {
		util.NotFound(ctx, "no test is currently running")
		return
	}
	util.Success(ctx, test)
}

// @Summary List all tests in calendar order
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tests [get]
func (c *TestController) GetTests(ctx *gin.Context) {
	tests, err := c.TestService.AllTests()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tests)
}

// @Summary Get one test by its calendar number
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param number path int true "Test number"
// @Success 200 {object} util.Response
// @Router /api/tests/{number} [get]
func (c *TestController) GetTestByNumber(ctx *gin.Context) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		util.BadRequest(ctx, "invalid test number")
		return
	}

	test, err := c.TestService.TestByNumber(number)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if test == nil {
		util.NotFound(ctx, "test not found")
		return
	}
	util.Success(ctx, test)
}

// @Summary Start (or resume) an attempt at a test
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param number path int true "Test number"
// @Success 200 {object} util.Response
// @Router /api/tests/{number}/attempts [post]
func (c *TestController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, ok := c.testFromPath(ctx)
	if !ok {
		return
	}

	attempt, err := c.TestService.StartAttempt(test.ID, user.UserID)
	if err != nil {
		c.renderAttemptError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary Get the caller's active attempt at a test, if any
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param number path int true "Test number"
// @Success 200 {object} util.Response
// @Router /api/tests/{number}/attempts [get]
func (c *TestController) GetActiveAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, ok := c.testFromPath(ctx)
	if !ok {
		return
	}

	attempt, err := c.TestService.ActiveAttempt(user.UserID, test.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if attempt == nil {
		util.NotFound(ctx, "no active attempt")
		return
	}
	util.Success(ctx, attempt)
}

// @Summary Finalize the caller's active attempt
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param number path int true "Test number"
// @Success 200 {object} util.Response
// @Router /api/tests/{number}/attempts/finish [post]
func (c *TestController) FinishAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, ok := c.testFromPath(ctx)
	if !ok {
		return
	}

	attempt, err := c.TestService.FinishAttempt(user.UserID, test.ID)
	if err != nil {
		c.renderAttemptError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

type wrongAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// @Summary Log an incorrect submission
// @Tags Tests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param number path int true "Test number"
// @Param body body wrongAnswerRequest true "Guessed answer"
// @Success 201 {object} util.Response
// @Router /api/tests/{number}/wrong-answers [post]
func (c *TestController) LogWrongAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, ok := c.testFromPath(ctx)
	if !ok {
		return
	}

	var req wrongAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TestService.LogWrongAnswer(user.UserID, test.ID, req.Answer); err != nil {
		c.renderAttemptError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// @Summary List wrong submissions logged for a test
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param number path int true "Test number"
// @Success 200 {object} util.Response
// @Router /api/tests/{number}/wrong-answers [get]
func (c *TestController) GetWrongAnswers(ctx *gin.Context) {
	test, ok := c.testFromPath(ctx)
	if !ok {
		return
	}

	rows, err := c.TestService.WrongAnswersForTest(test.ID)
	if err != nil {
		c.renderAttemptError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

func (c *TestController) testFromPath(ctx *gin.Context) (*model.Test, bool) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		util.BadRequest(ctx, "invalid test number")
		return nil, false
	}

	t, err := c.TestService.TestByNumber(number)
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, false
	}
	if t == nil {
		util.NotFound(ctx, "test not found")
		return nil, false
	}
	return t, true
}

func (c *TestController) renderAttemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrAttemptFinalized), errors.Is(err, util.ErrAttemptExists):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
