package controller

import (
	"errors"

	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// CreateResult godoc
// @Summary Record a result
// @Description Append one scored attempt. Retakes create new rows; history is never rewritten.
// @Tags results
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateResultRequest true "Result payload"
// @Success 201 {object} util.Response{data=model.Result} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Section not found"
// @Router /api/results [post]
func (c *ResultController) CreateResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ResultService.CreateResult(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrSectionNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// ListResults godoc
// @Summary List results
// @Description The user's results, newest first, optionally filtered by practice test
// @Tags results
// @Produce  json
// @Security BearerAuth
// @Param   practiceTestId query string false "Practice test ID filter"
// @Success 200 {object} util.Response{data=[]model.Result}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/results [get]
func (c *ResultController) ListResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ResultService.ListResults(claims.UserID, ctx.Query("practiceTestId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// Progress godoc
// @Summary Progress summary
// @Description Per-type and overall progress based on the latest result for each section
// @Tags results
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressSummary}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/progress [get]
func (c *ResultController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.ResultService.Progress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
