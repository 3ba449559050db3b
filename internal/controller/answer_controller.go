package controller

import (
	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Record the user's chosen answer for one question. Resubmitting replaces the previous choice.
// @Tags answers
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} util.Response{data=model.Answer}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AnswerService.SubmitAnswer(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}

// SectionAnswers godoc
// @Summary Answers for a section
// @Description The user's current answers for one section, keyed by question id
// @Tags answers
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/sections/{id}/answers [get]
func (c *AnswerController) SectionAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	answers, err := c.AnswerService.SectionAnswers(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, answers)
}
