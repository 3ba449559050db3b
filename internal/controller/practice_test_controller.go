package controller

import (
	"errors"
	"net/http"

	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PracticeTestController struct {
	TestService *service.PracticeTestService
}

func NewPracticeTestController(testService *service.PracticeTestService) *PracticeTestController {
	return &PracticeTestController{TestService: testService}
}

// CreateTest godoc
// @Summary Create a practice test
// @Description Create a practice test over an ordered list of sections. It starts in not_started.
// @Tags practice-tests
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateTestRequest true "Test payload"
// @Success 201 {object} util.Response{data=model.PracticeTest} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/practice-tests [post]
func (c *PracticeTestController) CreateTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.CreateTest(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, test)
}

// GetTest godoc
// @Summary Get a practice test
// @Tags practice-tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Practice test ID"
// @Success 200 {object} util.Response{data=model.PracticeTest}
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/practice-tests/{id} [get]
func (c *PracticeTestController) GetTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	test, err := c.TestService.GetTest(claims.UserID, ctx.Param("id"))
	if err != nil {
		c.writeTestError(ctx, err)
		return
	}

	util.Success(ctx, test)
}

// ListTests godoc
// @Summary List practice tests
// @Description The user's practice tests, newest first
// @Tags practice-tests
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PracticeTest}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/practice-tests [get]
func (c *PracticeTestController) ListTests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tests, err := c.TestService.ListTests(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tests)
}

// UpdateStatus godoc
// @Summary Update test status
// @Description Apply one status transition. Completing a test scores every section and stores the results atomically.
// @Tags practice-tests
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.UpdateTestStatusRequest true "Transition payload"
// @Success 200 {object} util.Response{data=model.PracticeTest}
// @Failure 400 {object} util.Response "Invalid status or transition"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/practice-tests/status [patch]
func (c *PracticeTestController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateTestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.UpdateStatus(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidTransition) || errors.Is(err, util.ErrTestCompleted) {
			util.BadRequest(ctx, err.Error())
			return
		}
		c.writeTestError(ctx, err)
		return
	}

	util.Success(ctx, test)
}

// AverageScore godoc
// @Summary Average score of a completed test
// @Tags practice-tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Practice test ID"
// @Success 200 {object} util.Response{data=object} "Average score, 0 when no results"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/practice-tests/{id}/average [get]
func (c *PracticeTestController) AverageScore(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	// Ownership gate before the aggregate query.
	if _, err := c.TestService.GetTest(claims.UserID, ctx.Param("id")); err != nil {
		c.writeTestError(ctx, err)
		return
	}

	avg, err := c.TestService.AverageScore(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"average": avg})
}

func (c *PracticeTestController) writeTestError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Error(ctx, http.StatusForbidden, "you do not own this practice test")
	default:
		util.LogInternalError(ctx, err)
	}
}
