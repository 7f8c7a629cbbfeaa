package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExtendedProfileController struct {
	ProfileService *service.ExtendedProfileService
}

func NewExtendedProfileController(profileService *service.ExtendedProfileService) *ExtendedProfileController {
	return &ExtendedProfileController{ProfileService: profileService}
}

// Create godoc
// @Summary Record a yearly institutional snapshot
// @Tags extended-profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateProfileInput true "snapshot for one year"
// @Success 201 {object} util.Response{data=model.ExtendedProfile}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "year already recorded"
// @Router /api/extended-profile [post]
func (c *ExtendedProfileController) Create(ctx *gin.Context) {
	var req service.CreateProfileInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Create(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// List godoc
// @Summary Snapshots of the latest IIQA form
// @Tags extended-profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ExtendedProfile}
// @Router /api/extended-profile [get]
func (c *ExtendedProfileController) List(ctx *gin.Context) {
	profiles, err := c.ProfileService.List()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profiles)
}
