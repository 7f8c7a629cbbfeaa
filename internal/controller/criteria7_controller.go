package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Criteria7Controller handles data entry for criterion 7, Institutional
// Values and Best Practices.
type Criteria7Controller struct {
	Submissions *service.SubmissionService
}

func NewCriteria7Controller(submissions *service.SubmissionService) *Criteria7Controller {
	return &Criteria7Controller{Submissions: submissions}
}

// Submit712 godoc
// @Summary Record the alternate energy option (7.1.2)
// @Tags criteria-7
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit712Input true "option for the session"
// @Success 200 {object} util.Response{data=model.Response712}
// @Router /api/criteria7/7.1.2 [post]
func (c *Criteria7Controller) Submit712(ctx *gin.Context) {
	var req service.Submit712Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit712(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit7110 godoc
// @Summary Record the code of conduct option with evidence (7.1.10)
// @Tags criteria-7
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit7110Input true "option and evidence flags"
// @Success 200 {object} util.Response{data=model.Response7110}
// @Router /api/criteria7/7.1.10 [post]
func (c *Criteria7Controller) Submit7110(ctx *gin.Context) {
	var req service.Submit7110Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit7110(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}
