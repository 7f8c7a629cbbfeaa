package service

import (
	"naac_backend/internal/model"
	"naac_backend/internal/repository"
	"naac_backend/internal/util"
	"naac_backend/pkg/logger"
	"naac_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ScoreService is the scoring engine. Per sub-criterion it resolves the
// session window from the latest anchor, reduces the response rows through
// the registered formula, maps the result to a grade and upserts the score
// ledger.
type ScoreService struct {
	criteria  *repository.CriteriaRepository
	scores    *repository.ScoreRepository
	profiles  *repository.ExtendedProfileRepository
	iiqa      *repository.IIQARepository
	responses *repository.Responses
	windows   *WindowResolver
	formulas  map[string]Formula
}

func NewScoreService(
	criteria *repository.CriteriaRepository,
	scores *repository.ScoreRepository,
	profiles *repository.ExtendedProfileRepository,
	iiqa *repository.IIQARepository,
	responses *repository.Responses,
	windows *WindowResolver,
) *ScoreService {
	s := &ScoreService{
		criteria:  criteria,
		scores:    scores,
		profiles:  profiles,
		iiqa:      iiqa,
		responses: responses,
		windows:   windows,
	}
	s.formulas = s.buildFormulas()
	return s
}

// ScoreResult is what a compute request returns: the raw numeric result,
// the mapped grade and the persisted ledger entry.
type ScoreResult struct {
	CriteriaCode string             `json:"criteria_code"`
	Session      int                `json:"session"`
	Score        float64            `json:"score"`
	Grade        int                `json:"grade"`
	Breakdown    map[string]float64 `json:"breakdown,omitempty"`
	Entry        *model.Score       `json:"entry"`
}

// ComputeScore recomputes the score for a dotted sub-criterion code in the
// given session and records it. Safe to call repeatedly; recomputation is
// the normal path.
func (s *ScoreService) ComputeScore(code string, session int) (*ScoreResult, error) {
	formula, ok := s.formulas[code]
	if !ok {
		monitoring.ScoreComputations.WithLabelValues(code, "unknown").Inc()
		return nil, util.NotFoundf("criteria %s is not scorable", code)
	}

	padded, err := util.ToPaddedCode(code)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteria.FindBySubSubID(padded)
	if err != nil {
		return nil, err
	}

	window, err := s.windows.Resolve(formula.WindowYears)
	if err != nil {
		return nil, err
	}
	if !window.Contains(session) {
		return nil, util.Validationf("Session must be between %d and %d", window.StartYear, window.EndYear)
	}

	agg, err := formula.Aggregate(ScoreContext{
		Criteria: criteria,
		Window:   window,
		Session:  session,
	})
	if err != nil {
		monitoring.ScoreComputations.WithLabelValues(code, "error").Inc()
		return nil, err
	}

	grade := formula.Thresholds.Grade(agg.Value)

	entry, err := s.scores.Upsert(criteria, session, agg.Value, grade)
	if err != nil {
		monitoring.ScoreComputations.WithLabelValues(code, "error").Inc()
		return nil, err
	}

	monitoring.ScoreComputations.WithLabelValues(code, "ok").Inc()
	logger.Log.Info("score computed",
		zap.String("criteria", code),
		zap.Int("session", session),
		zap.Float64("score", agg.Value),
		zap.Int("grade", grade),
	)

	return &ScoreResult{
		CriteriaCode: criteria.CriteriaCode,
		Session:      session,
		Score:        agg.Value,
		Grade:        grade,
		Breakdown:    agg.Breakdown,
		Entry:        entry,
	}, nil
}

// GetScore reads a previously recorded ledger entry without recomputing.
func (s *ScoreService) GetScore(code string, session int) (*model.Score, error) {
	padded, err := util.ToPaddedCode(code)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteria.FindBySubSubID(padded)
	if err != nil {
		return nil, err
	}
	return s.scores.FindByCodeAndSession(criteria.CriteriaCode, session)
}

// ListScores returns every ledger entry of a session.
func (s *ScoreService) ListScores(session int) ([]model.Score, error) {
	return s.scores.ListBySession(session)
}

// ScorableCodes lists the codes the engine has formulas for.
func (s *ScoreService) ScorableCodes() []string {
	codes := make([]string, 0, len(s.formulas))
	for code := range s.formulas {
		codes = append(codes, code)
	}
	return codes
}
