package controller

import (
	"errors"
	"net/http"

	"sat_prep_backend/internal/llm"
	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SectionController struct {
	SectionService    *service.SectionService
	GenerationService *service.GenerationService
}

func NewSectionController(sectionService *service.SectionService, generationService *service.GenerationService) *SectionController {
	return &SectionController{
		SectionService:    sectionService,
		GenerationService: generationService,
	}
}

// ListSections godoc
// @Summary List sections
// @Description All generated sections, newest first, without question bodies
// @Tags sections
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Section}
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
	sections, err := c.SectionService.ListSections(ctx)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sections)
}

// GetSection godoc
// @Summary Get a section
// @Description One section with its questions in order
// @Tags sections
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Section ID"
// @Success 200 {object} util.Response{data=model.Section}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/sections/{id} [get]
func (c *SectionController) GetSection(ctx *gin.Context) {
	section, err := c.SectionService.GetSection(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, section)
}

// GetSectionByName godoc
// @Summary Get a section by name
// @Description Look a section up by its display name. When several
// sections share the name, the oldest one wins.
// @Tags sections
// @Produce  json
// @Security BearerAuth
// @Param   name query string true "Section name"
// @Success 200 {object} util.Response{data=model.Section}
// @Failure 400 {object} util.Response "Name is required"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/sections/by-name [get]
func (c *SectionController) GetSectionByName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		util.BadRequest(ctx, "name parameter is required")
		return
	}

	section, err := c.SectionService.GetSectionByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, section)
}

// GenerateSection godoc
// @Summary Generate a section
// @Description Generate a new practice section of the requested type via the AI model
// @Tags sections
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GenerateSectionRequest true "Generation request"
// @Success 201 {object} util.Response{data=model.Section} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 429 {object} util.Response "Generation already in flight or provider throttled"
// @Failure 502 {object} util.Response "Provider unavailable or invalid output"
// @Router /api/sections/generate [post]
func (c *SectionController) GenerateSection(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GenerateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.GenerationService.GenerateSection(ctx, claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGenerationPending):
			util.TooManyRequests(ctx, err.Error())
		case llm.IsRateLimit(err):
			util.TooManyRequests(ctx, "the AI provider is throttling requests, try again shortly")
		case llm.IsInvalidResponse(err), llm.IsProviderUnavailable(err):
			util.Error(ctx, http.StatusBadGateway, "the AI provider could not produce a valid section")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, section)
}
