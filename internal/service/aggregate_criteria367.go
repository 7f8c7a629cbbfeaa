package service

import (
	"errors"
	"strconv"

	"naac_backend/internal/util"

	"gorm.io/gorm"
)

// aggregate311 is the average sponsored research grant per year, in lakhs,
// over a strict five-point window.
func (s *ScoreService) aggregate311(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R311.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 3.1.1 in the session range")
	}

	var total float64
	for _, row := range rows {
		total += row.AmountSanctioned
	}
	years := float64(sc.Window.EndYear - sc.Window.StartYear + 1)
	return AggregateResult{Value: total / years}, nil
}

func (s *ScoreService) aggregate623(sc ScoreContext) (AggregateResult, error) {
	row, err := s.responses.R623.Latest(sc.Criteria.CriteriaCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, util.NotFoundf("no response found for criteria 6.2.3")
	}
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateResult{Value: float64(row.Implementation)}, nil
}

// aggregate632 averages the yearly percentage of teachers receiving
// financial support against the full-time teacher count of the latest
// profile snapshot.
func (s *ScoreService) aggregate632(sc ScoreContext) (AggregateResult, error) {
	profile, err := s.profiles.Latest()
	if err != nil {
		return AggregateResult{}, err
	}
	if profile.FullTimeTeachers <= 0 {
		return AggregateResult{}, util.Validationf("valid total number of teachers not found or is zero")
	}

	rows, err := s.responses.R632.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 6.3.2 in the session range")
	}

	bySession := make(map[int]map[string]struct{})
	for _, row := range rows {
		if bySession[row.Session] == nil {
			bySession[row.Session] = make(map[string]struct{})
		}
		bySession[row.Session][normalizeName(row.TeacherName)] = struct{}{}
	}

	breakdown := make(map[string]float64)
	var sum float64
	for session, teachers := range bySession {
		pct := float64(len(teachers)) / float64(profile.FullTimeTeachers) * 100
		breakdown[strconv.Itoa(session)] = pct
		sum += pct
	}
	return AggregateResult{Value: sum / float64(len(bySession)), Breakdown: breakdown}, nil
}

// aggregate633 counts professional development and administrative training
// programmes across a strict five-point window, averaged per year.
func (s *ScoreService) aggregate633(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R633.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 6.3.3 in the session range")
	}

	valid := 0
	for _, row := range rows {
		if row.TitleOfProfDev != "" || row.TitleOfAddTraining != "" {
			valid++
		}
	}
	years := float64(sc.Window.EndYear - sc.Window.StartYear + 1)
	return AggregateResult{Value: float64(valid) / years}, nil
}

// aggregate634 averages the yearly percentage of teachers attending faculty
// development programmes over the full window span.
func (s *ScoreService) aggregate634(sc ScoreContext) (AggregateResult, error) {
	profile, err := s.profiles.Latest()
	if err != nil {
		return AggregateResult{}, err
	}
	if profile.FullTimeTeachers <= 0 {
		return AggregateResult{}, util.Validationf("valid total number of teachers not found or is zero")
	}

	rows, err := s.responses.R634.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 6.3.4 in the session range")
	}

	bySession := make(map[int]map[string]struct{})
	for _, row := range rows {
		if bySession[row.Session] == nil {
			bySession[row.Session] = make(map[string]struct{})
		}
		bySession[row.Session][normalizeName(row.TeacherName)] = struct{}{}
	}

	breakdown := make(map[string]float64)
	var sum float64
	for session, teachers := range bySession {
		pct := float64(len(teachers)) / float64(profile.FullTimeTeachers) * 100
		breakdown[strconv.Itoa(session)] = pct
		sum += pct
	}
	// averaged over the five-year span, not just the years with data
	return AggregateResult{Value: sum / 5, Breakdown: breakdown}, nil
}

// aggregate642 is the average philanthropic grant per year, in lakhs, over
// a strict five-point window.
func (s *ScoreService) aggregate642(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R642.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 6.4.2 in the session range")
	}

	var total float64
	for _, row := range rows {
		total += row.GrantAmountLakhs
	}
	years := float64(sc.Window.EndYear - sc.Window.StartYear + 1)
	return AggregateResult{Value: total / years}, nil
}

func (s *ScoreService) aggregate712(sc ScoreContext) (AggregateResult, error) {
	row, err := s.responses.R712.Latest(sc.Criteria.CriteriaCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, util.NotFoundf("no response found for criteria 7.1.2")
	}
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateResult{Value: float64(row.Options)}, nil
}

func (s *ScoreService) aggregate7110(sc ScoreContext) (AggregateResult, error) {
	row, err := s.responses.R7110.Latest(sc.Criteria.CriteriaCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, util.NotFoundf("no response found for criteria 7.1.10")
	}
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateResult{Value: float64(row.Options)}, nil
}
