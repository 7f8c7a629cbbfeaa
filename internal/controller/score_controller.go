package controller

import (
	"sort"
	"strconv"
	"time"

	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ScoreController exposes the scoring engine. Compute endpoints are
// idempotent: every call recomputes from the stored responses and upserts
// the ledger row.
type ScoreController struct {
	ScoreService *service.ScoreService
	Submissions  *service.SubmissionService
}

func NewScoreController(scoreService *service.ScoreService, submissions *service.SubmissionService) *ScoreController {
	return &ScoreController{ScoreService: scoreService, Submissions: submissions}
}

// sessionFromQuery defaults to the current calendar year when the caller
// omits the session. Only the HTTP boundary applies this default; services
// always receive an explicit session.
func sessionFromQuery(ctx *gin.Context) (int, error) {
	raw := ctx.Query("session")
	if raw == "" {
		return time.Now().Year(), nil
	}
	session, err := strconv.Atoi(raw)
	if err != nil {
		return 0, util.Validationf("session must be a year")
	}
	return session, nil
}

// Compute godoc
// @Summary Compute and record a sub-criterion score
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "dotted sub-criterion code, e.g. 1.1.3"
// @Param session query int false "assessment session year, defaults to the current year"
// @Success 200 {object} util.Response{data=service.ScoreResult}
// @Failure 400 {object} util.Response "session outside window"
// @Failure 404 {object} util.Response "unknown code or no data"
// @Router /api/scores/{code} [post]
func (c *ScoreController) Compute(ctx *gin.Context) {
	session, err := sessionFromQuery(ctx)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	result, err := c.ScoreService.ComputeScore(ctx.Param("code"), session)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Get godoc
// @Summary Read a previously recorded score
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "dotted sub-criterion code"
// @Param session query int false "assessment session year"
// @Success 200 {object} util.Response{data=model.Score}
// @Failure 404 {object} util.Response
// @Router /api/scores/{code} [get]
func (c *ScoreController) Get(ctx *gin.Context) {
	session, err := sessionFromQuery(ctx)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	entry, err := c.ScoreService.GetScore(ctx.Param("code"), session)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// List godoc
// @Summary List every recorded score of a session
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Param session query int false "assessment session year"
// @Success 200 {object} util.Response{data=[]model.Score}
// @Router /api/scores [get]
func (c *ScoreController) List(ctx *gin.Context) {
	session, err := sessionFromQuery(ctx)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	scores, err := c.ScoreService.ListScores(session)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, scores)
}

// Codes godoc
// @Summary List the sub-criterion codes the engine can score
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/scores/codes [get]
func (c *ScoreController) Codes(ctx *gin.Context) {
	codes := c.ScoreService.ScorableCodes()
	sort.Strings(codes)
	util.Success(ctx, codes)
}

// ListResponses godoc
// @Summary List the stored response rows of a sub-criterion
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "dotted sub-criterion code"
// @Param session query int false "filter by session, omit for all"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/responses/{code} [get]
func (c *ScoreController) ListResponses(ctx *gin.Context) {
	session := 0
	if raw := ctx.Query("session"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "session must be a year")
			return
		}
		session = parsed
	}

	rows, err := c.Submissions.ListResponses(ctx.Param("code"), session)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
