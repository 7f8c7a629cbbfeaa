package controller

import (
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Criteria2Controller handles data entry for criterion 2, Teaching,
// Learning and Evaluation.
type Criteria2Controller struct {
	Submissions *service.SubmissionService
}

func NewCriteria2Controller(submissions *service.SubmissionService) *Criteria2Controller {
	return &Criteria2Controller{Submissions: submissions}
}

// Submit211 godoc
// @Summary Record yearly programme enrollment (2.1.1)
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit211Input true "enrollment figures"
// @Success 201 {object} util.Response{data=model.Response211}
// @Failure 400 {object} util.Response
// @Router /api/criteria2/2.1.1 [post]
func (c *Criteria2Controller) Submit211(ctx *gin.Context) {
	var req service.Submit211Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit211(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit212 godoc
// @Summary Record reserved category admissions (2.1.2)
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit212Input true "reserved admissions"
// @Success 201 {object} util.Response{data=model.Response212}
// @Router /api/criteria2/2.1.2 [post]
func (c *Criteria2Controller) Submit212(ctx *gin.Context) {
	var req service.Submit212Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit212(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// SubmitFacultyAppointment godoc
// @Summary Record a faculty appointment (2.2.2, 2.4.1, 2.4.3)
// @Description Writes the appointment into all three response tables in one
// @Description transaction. A failure in any table rolls back the rest.
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FacultyAppointmentInput true "appointment"
// @Success 201 {object} util.Response{data=service.FacultyAppointmentResult}
// @Failure 409 {object} util.Response "duplicate appointment"
// @Router /api/criteria2/faculty-appointment [post]
func (c *Criteria2Controller) SubmitFacultyAppointment(ctx *gin.Context) {
	var req service.FacultyAppointmentInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.Submissions.SubmitFacultyAppointment(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// Submit233 godoc
// @Summary Record mentor and mentee headcounts (2.3.3)
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit233Input true "headcounts"
// @Success 201 {object} util.Response{data=model.Response233}
// @Router /api/criteria2/2.3.3 [post]
func (c *Criteria2Controller) Submit233(ctx *gin.Context) {
	var req service.Submit233Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit233(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit242 godoc
// @Summary Record a teacher qualification cohort (2.4.2)
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit242Input true "qualification cohort"
// @Success 201 {object} util.Response{data=model.Response242}
// @Router /api/criteria2/2.4.2 [post]
func (c *Criteria2Controller) Submit242(ctx *gin.Context) {
	var req service.Submit242Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit242(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}

// Submit263 godoc
// @Summary Record final year examination results (2.6.3)
// @Tags criteria-2
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.Submit263Input true "examination outcome"
// @Success 201 {object} util.Response{data=model.Response263}
// @Router /api/criteria2/2.6.3 [post]
func (c *Criteria2Controller) Submit263(ctx *gin.Context) {
	var req service.Submit263Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, created, err := c.Submissions.Submit263(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mergedResponse(ctx, entry, created)
}
