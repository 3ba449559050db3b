package controller

import (
	"fmt"
	"path/filepath"

	"sat_prep_backend/internal/repository"
	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	UserRepo *repository.UserRepository
	Storage  *service.StorageService
}

func NewUserController(userRepo *repository.UserRepository, storage *service.StorageService) *UserController {
	return &UserController{UserRepo: userRepo, Storage: storage}
}

// UploadAvatar godoc
// @Summary Upload avatar
// @Description Store an avatar image and attach it to the current user
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Avatar image"
// @Success 200 {object} util.Response{data=object} "Avatar URL"
// @Failure 400 {object} util.Response "File is required"
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("avatars/%d/%s%s", claims.UserID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := c.Storage.Provider.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserRepo.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}
