package controller

import (
	"errors"

	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// StartAttemptRequest tunes a timed attempt.
// swagger:model StartAttemptRequest
type StartAttemptRequest struct {
	// Duration is an optional ceiling in seconds. Zero means untimed.
	Duration int `json:"duration" binding:"gte=0"`
}

// StartAttempt godoc
// @Summary Start a timed attempt
// @Description Start (or restart) the timer for one section. A repeated start within the debounce window returns the running attempt unchanged.
// @Tags attempts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Param   body body StartAttemptRequest false "Timer options"
// @Success 200 {object} util.Response{data=service.AttemptState}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/sections/{id}/timer/start [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartAttemptRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	state, err := c.AttemptService.Start(claims.UserID, ctx.Param("id"), req.Duration)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, state)
}

// PauseAttempt godoc
// @Summary Pause a timed attempt
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Success 200 {object} util.Response{data=service.AttemptState}
// @Failure 404 {object} util.Response "No active attempt"
// @Router /api/sections/{id}/timer/pause [post]
func (c *AttemptController) PauseAttempt(ctx *gin.Context) {
	c.transition(ctx, c.AttemptService.Pause)
}

// ResumeAttempt godoc
// @Summary Resume a paused attempt
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Success 200 {object} util.Response{data=service.AttemptState}
// @Failure 404 {object} util.Response "No active attempt"
// @Router /api/sections/{id}/timer/resume [post]
func (c *AttemptController) ResumeAttempt(ctx *gin.Context) {
	c.transition(ctx, c.AttemptService.Resume)
}

// FinishAttempt godoc
// @Summary Finish a timed attempt
// @Description Stop the timer and persist the session's elapsed time.
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Success 200 {object} util.Response{data=service.AttemptState}
// @Failure 404 {object} util.Response "No active attempt"
// @Router /api/sections/{id}/timer/finish [post]
func (c *AttemptController) FinishAttempt(ctx *gin.Context) {
	c.transition(ctx, c.AttemptService.Finish)
}

func (c *AttemptController) transition(ctx *gin.Context, fn func(userID uint, sectionID string) (*service.AttemptState, error)) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	state, err := fn(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrNoActiveAttempt) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, state)
}
