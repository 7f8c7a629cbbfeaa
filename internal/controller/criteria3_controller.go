package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Criteria3Controller handles data entry for criterion 3, Research,
// Innovations and Extension.
type Criteria3Controller struct {
	Submissions *service.SubmissionService
}

func NewCriteria3Controller(submissions *service.SubmissionService) *Criteria3Controller {
	return &Criteria3Controller{Submissions: submissions}
}

// Submit311 godoc
// @Summary Record a sanctioned research grant (3.1.1)
// @Tags criteria-3
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit311Input true "grant details"
// @Success 201 {object} util.Response{data=model.Response311}
// @Failure 409 {object} util.Response "duplicate entry"
// @Router /api/criteria3/3.1.1 [post]
func (c *Criteria3Controller) Submit311(ctx *gin.Context) {
	var req service.Submit311Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Submissions.Submit311(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}
