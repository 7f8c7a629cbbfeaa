package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Criteria6Controller handles data entry for criterion 6, Governance,
// Leadership and Management.
type Criteria6Controller struct {
	Submissions *service.SubmissionService
}

func NewCriteria6Controller(submissions *service.SubmissionService) *Criteria6Controller {
	return &Criteria6Controller{Submissions: submissions}
}

// Submit623 godoc
// @Summary Record the e-governance option (6.2.3)
// @Tags criteria-6
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit623Input true "option for the session"
// @Success 200 {object} util.Response{data=model.Response623}
// @Router /api/criteria6/6.2.3 [post]
func (c *Criteria6Controller) Submit623(ctx *gin.Context) {
	var req service.Submit623Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit623(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit632 godoc
// @Summary Record conference support for a teacher (6.3.2)
// @Tags criteria-6
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit632Input true "support record"
// @Success 201 {object} util.Response{data=model.Response632}
// @Router /api/criteria6/6.3.2 [post]
func (c *Criteria6Controller) Submit632(ctx *gin.Context) {
	var req service.Submit632Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit632(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit633 godoc
// @Summary Record an organised training programme (6.3.3)
// @Tags criteria-6
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit633Input true "programme details"
// @Success 201 {object} util.Response{data=model.Response633}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria6/6.3.3 [post]
func (c *Criteria6Controller) Submit633(ctx *gin.Context) {
	var req service.Submit633Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit633(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// Submit634 godoc
// @Summary Record a teacher's programme attendance (6.3.4)
// @Tags criteria-6
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit634Input true "attendance record"
// @Success 201 {object} util.Response{data=model.Response634}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria6/6.3.4 [post]
func (c *Criteria6Controller) Submit634(ctx *gin.Context) {
	var req service.Submit634Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit634(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// Submit642 godoc
// @Summary Record a philanthropic grant (6.4.2)
// @Tags criteria-6
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit642Input true "grant details"
// @Success 201 {object} util.Response{data=model.Response642}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria6/6.4.2 [post]
func (c *Criteria6Controller) Submit642(ctx *gin.Context) {
	var req service.Submit642Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit642(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}
