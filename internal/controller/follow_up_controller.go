package controller

import (
	"errors"
	"net/http"

	"sat_prep_backend/internal/llm"
	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FollowUpController struct {
	FollowUpService *service.FollowUpService
}

func NewFollowUpController(followUpService *service.FollowUpService) *FollowUpController {
	return &FollowUpController{FollowUpService: followUpService}
}

// CreateFollowUp godoc
// @Summary Create a follow-up question
// @Description Attach a manually authored follow-up to a question. Admin only.
// @Tags follow-ups
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Question ID"
// @Param   body body service.FollowUpRequest true "Follow-up payload"
// @Success 201 {object} util.Response{data=model.FollowUpQuestion} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Question not found"
// @Router /api/admin/questions/{id}/follow-ups [post]
func (c *FollowUpController) CreateFollowUp(ctx *gin.Context) {
	var req service.FollowUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.FollowUpService.CreateFollowUp(ctx.Param("id"), req)
	if err != nil {
		c.writeFollowUpError(ctx, err)
		return
	}

	util.Created(ctx, f)
}

// GenerateFollowUp godoc
// @Summary Generate a follow-up question
// @Description Ask the AI model for a follow-up grounded on the primary question. Admin only.
// @Tags follow-ups
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Question ID"
// @Success 201 {object} util.Response{data=model.FollowUpQuestion} "Created"
// @Failure 404 {object} util.Response "Question not found"
// @Failure 429 {object} util.Response "Provider throttled"
// @Failure 502 {object} util.Response "Provider unavailable or invalid output"
// @Router /api/admin/questions/{id}/follow-ups/generate [post]
func (c *FollowUpController) GenerateFollowUp(ctx *gin.Context) {
	f, err := c.FollowUpService.GenerateFollowUp(ctx, ctx.Param("id"))
	if err != nil {
		switch {
		case llm.IsRateLimit(err):
			util.TooManyRequests(ctx, "the AI provider is throttling requests, try again shortly")
		case llm.IsInvalidResponse(err), llm.IsProviderUnavailable(err):
			util.Error(ctx, http.StatusBadGateway, "the AI provider could not produce a valid follow-up")
		default:
			c.writeFollowUpError(ctx, err)
		}
		return
	}

	util.Created(ctx, f)
}

// ListFollowUps godoc
// @Summary List follow-ups of a question
// @Tags follow-ups
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Question ID"
// @Success 200 {object} util.Response{data=[]model.FollowUpQuestion}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/questions/{id}/follow-ups [get]
func (c *FollowUpController) ListFollowUps(ctx *gin.Context) {
	fs, err := c.FollowUpService.ListFollowUps(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, fs)
}

// UpdateFollowUp godoc
// @Summary Update a follow-up question
// @Description Replace the content of a follow-up. Admin only.
// @Tags follow-ups
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Follow-up ID"
// @Param   body body service.FollowUpRequest true "Follow-up payload"
// @Success 200 {object} util.Response{data=model.FollowUpQuestion}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/follow-ups/{id} [put]
func (c *FollowUpController) UpdateFollowUp(ctx *gin.Context) {
	var req service.FollowUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.FollowUpService.UpdateFollowUp(ctx.Param("id"), req)
	if err != nil {
		c.writeFollowUpError(ctx, err)
		return
	}

	util.Success(ctx, f)
}

// DeleteFollowUp godoc
// @Summary Delete a follow-up question
// @Tags follow-ups
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Follow-up ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/follow-ups/{id} [delete]
func (c *FollowUpController) DeleteFollowUp(ctx *gin.Context) {
	if err := c.FollowUpService.DeleteFollowUp(ctx.Param("id")); err != nil {
		c.writeFollowUpError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *FollowUpController) writeFollowUpError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAnswerNotInChoices):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
