package service

import (
	"strings"
	"time"

	"naac_backend/internal/model"
	"naac_backend/internal/repository"
	"naac_backend/internal/util"
)

// SubmissionService ingests data-entry payloads into the per-sub-criterion
// response tables. Each code declares one of two policies: merge-on-conflict
// for mutable facts, append with duplicate rejection for discrete life
// events.
type SubmissionService struct {
	criteria  *repository.CriteriaRepository
	responses *repository.Responses
	windows   *WindowResolver

	earliestYear int
	// nowYear is overridable so tests run against a fixed calendar year.
	nowYear func() int
}

func NewSubmissionService(
	criteria *repository.CriteriaRepository,
	responses *repository.Responses,
	windows *WindowResolver,
	earliestYear int,
) *SubmissionService {
	if earliestYear == 0 {
		earliestYear = 1990
	}
	return &SubmissionService{
		criteria:     criteria,
		responses:    responses,
		windows:      windows,
		earliestYear: earliestYear,
		nowYear:      func() int { return time.Now().Year() },
	}
}

// lookupCriteria resolves the taxonomy entry for a dotted code and
// validates the session against the anchor window in one step.
func (s *SubmissionService) lookupCriteria(code string, session int) (*model.CriteriaMaster, error) {
	if err := s.checkYear("Session", session); err != nil {
		return nil, err
	}
	padded, err := util.ToPaddedCode(code)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteria.FindBySubSubID(padded)
	if err != nil {
		return nil, err
	}
	if _, err := s.windows.ValidateSession(session, 5); err != nil {
		return nil, err
	}
	return criteria, nil
}

func (s *SubmissionService) checkYear(field string, year int) error {
	if year < s.earliestYear || year > s.nowYear() {
		return util.Validationf("%s must be between %d and current year", field, s.earliestYear)
	}
	return nil
}

func checkOption(option int) error {
	if option < 0 || option > 4 {
		return util.Validationf("Option selected must be between 0 and 4")
	}
	return nil
}

// checkFlag normalizes a YES/NO field to uppercase and rejects anything
// else.
func checkFlag(field, value string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v != "YES" && v != "NO" {
		return "", util.Validationf("%s must be YES or NO", field)
	}
	return v, nil
}

func requireFields(pairs map[string]string) error {
	for field, value := range pairs {
		if strings.TrimSpace(value) == "" {
			return util.Validationf("missing required field %s", field)
		}
	}
	return nil
}

// ListResponses returns the raw stored rows for a code, optionally filtered
// by session (session 0 means all).
func (s *SubmissionService) ListResponses(code string, session int) (interface{}, error) {
	padded, err := util.ToPaddedCode(code)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteria.FindBySubSubID(padded)
	if err != nil {
		return nil, err
	}

	conds := map[string]interface{}{"criteria_code": criteria.CriteriaCode}
	if session != 0 {
		conds["session"] = session
	}

	switch code {
	case "1.1.3":
		return s.responses.R113.List(conds)
	case "1.2.1":
		return s.responses.R121.List(conds)
	case "1.2.2":
		return s.responses.R122.List(conds)
	case "1.3.2":
		return s.responses.R132.List(conds)
	case "1.3.3":
		return s.responses.R133.List(conds)
	case "1.4.1":
		return s.responses.R141.List(conds)
	case "1.4.2":
		return s.responses.R142.List(conds)
	case "2.1.1":
		return s.responses.R211.List(conds)
	case "2.1.2":
		return s.responses.R212.List(conds)
	case "2.2.2":
		return s.responses.R222.List(conds)
	case "2.3.3":
		return s.responses.R233.List(conds)
	case "2.4.1":
		return s.responses.R241.List(conds)
	case "2.4.2":
		return s.responses.R242.List(conds)
	case "2.4.3":
		return s.responses.R243.List(conds)
	case "2.6.3":
		return s.responses.R263.List(conds)
	case "3.1.1":
		return s.responses.R311.List(conds)
	case "6.2.3":
		return s.responses.R623.List(conds)
	case "6.3.2":
		return s.responses.R632.List(conds)
	case "6.3.3":
		return s.responses.R633.List(conds)
	case "6.3.4":
		return s.responses.R634.List(conds)
	case "6.4.2":
		return s.responses.R642.List(conds)
	case "7.1.2":
		return s.responses.R712.List(conds)
	case "7.1.10":
		return s.responses.R7110.List(conds)
	default:
		return nil, util.NotFoundf("criteria %s has no response table", code)
	}
}
