package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Criteria1Controller handles data entry for criterion 1, Curricular
// Aspects.
type Criteria1Controller struct {
	Submissions *service.SubmissionService
}

func NewCriteria1Controller(submissions *service.SubmissionService) *Criteria1Controller {
	return &Criteria1Controller{Submissions: submissions}
}

// mergedResponse answers 201 when a merge created a row and 200 when it
// updated one in place.
func mergedResponse(ctx *gin.Context, data interface{}, created bool) {
	if created {
		util.Created(ctx, data)
		return
	}
	util.Success(ctx, data)
}

// Submit113 godoc
// @Summary Record teacher participation in a body (1.1.3)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit113Input true "participation record"
// @Success 200 {object} util.Response{data=model.Response113} "updated"
// @Success 201 {object} util.Response{data=model.Response113} "created"
// @Failure 400 {object} util.Response
// @Router /api/criteria1/1.1.3 [post]
func (c *Criteria1Controller) Submit113(ctx *gin.Context) {
	var req service.Submit113Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit113(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit121 godoc
// @Summary Record a programme's CBCS status (1.2.1)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit121Input true "programme record"
// @Success 201 {object} util.Response{data=model.Response121}
// @Failure 400 {object} util.Response
// @Router /api/criteria1/1.2.1 [post]
func (c *Criteria1Controller) Submit121(ctx *gin.Context) {
	var req service.Submit121Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit121(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit122 godoc
// @Summary Record a certificate course offering (1.2.2)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit122Input true "course offering"
// @Success 201 {object} util.Response{data=model.Response122}
// @Failure 400 {object} util.Response
// @Router /api/criteria1/1.2.2 [post]
func (c *Criteria1Controller) Submit122(ctx *gin.Context) {
	var req service.Submit122Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit122(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit132 godoc
// @Summary Record a student's course enrollment (1.3.2)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit132Input true "enrollment record"
// @Success 201 {object} util.Response{data=model.Response132}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria1/1.3.2 [post]
func (c *Criteria1Controller) Submit132(ctx *gin.Context) {
	var req service.Submit132Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit132(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// Submit133 godoc
// @Summary Record a student project or internship (1.3.3)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit133Input true "project record"
// @Success 201 {object} util.Response{data=model.Response133}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria1/1.3.3 [post]
func (c *Criteria1Controller) Submit133(ctx *gin.Context) {
	var req service.Submit133Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit133(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// Submit141 godoc
// @Summary Record the feedback collection option (1.4.1)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitOptionInput true "option for the session"
// @Success 200 {object} util.Response{data=model.Response141}
// @Router /api/criteria1/1.4.1 [post]
func (c *Criteria1Controller) Submit141(ctx *gin.Context) {
	var req service.SubmitOptionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit141(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit142 godoc
// @Summary Record the feedback action option (1.4.2)
// @Tags criteria-1
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitOptionInput true "option for the session"
// @Success 200 {object} util.Response{data=model.Response142}
// @Router /api/criteria1/1.4.2 [post]
func (c *Criteria1Controller) Submit142(ctx *gin.Context) {
	var req service.SubmitOptionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit142(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}
