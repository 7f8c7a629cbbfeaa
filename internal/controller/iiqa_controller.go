package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type IIQAController struct {
	IIQAService *service.IIQAService
}

func NewIIQAController(iiqaService *service.IIQAService) *IIQAController {
	return &IIQAController{IIQAService: iiqaService}
}

// Create godoc
// @Summary Submit a new IIQA form
// @Description Stores the form with its departments, staff, student and
// @Description programme annexures. The newest form anchors all windows.
// @Tags iiqa
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateIIQAInput true "form data"
// @Success 201 {object} util.Response{data=model.IIQAForm}
// @Failure 400 {object} util.Response
// @Router /api/iiqa [post]
func (c *IIQAController) Create(ctx *gin.Context) {
	var req service.CreateIIQAInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	form, err := c.IIQAService.Create(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, form)
}

// Latest godoc
// @Summary Latest IIQA form with annexures
// @Tags iiqa
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.IIQAForm}
// @Failure 404 {object} util.Response
// @Router /api/iiqa/latest [get]
func (c *IIQAController) Latest(ctx *gin.Context) {
	form, err := c.IIQAService.Latest()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, form)
}
