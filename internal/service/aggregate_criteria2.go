package service

import (
	"math"
	"strconv"

	"naac_backend/internal/util"
)

// aggregate211 averages yearly enrollment percentages against sanctioned
// seats. Years with zero seats contribute no entry to the series.
func (s *ScoreService) aggregate211(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R211.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 2.1.1 in the session range")
	}

	type totals struct{ seats, students int }
	byYear := make(map[int]*totals)
	for _, row := range rows {
		t := byYear[row.Year]
		if t == nil {
			t = &totals{}
			byYear[row.Year] = t
		}
		t.seats += row.NoOfSeats
		t.students += row.NoOfStudents
	}

	breakdown := make(map[string]float64)
	var sum float64
	var included int
	for year, t := range byYear {
		if t.seats <= 0 {
			continue
		}
		pct := float64(t.students) / float64(t.seats) * 100
		breakdown[strconv.Itoa(year)] = pct
		sum += pct
		included++
	}
	if included == 0 {
		return AggregateResult{}, util.Validationf("no valid data to compute score")
	}
	return AggregateResult{Value: sum / float64(included), Breakdown: breakdown}, nil
}

// aggregate212 averages yearly reserved-category admission percentages
// against the seats earmarked for that year.
func (s *ScoreService) aggregate212(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R212.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 2.1.2 in the session range")
	}

	type totals struct{ seats, admitted int }
	byYear := make(map[int]*totals)
	for _, row := range rows {
		t := byYear[row.Year]
		if t == nil {
			t = &totals{}
			byYear[row.Year] = t
		}
		t.seats += row.SeatsEarmarkedForGOI
		t.admitted += row.StudentsAdmittedFromReserved
	}

	breakdown := make(map[string]float64)
	var sum float64
	var included int
	for year, t := range byYear {
		if t.seats <= 0 {
			continue
		}
		pct := float64(t.admitted) / float64(t.seats) * 100
		breakdown[strconv.Itoa(year)] = pct
		sum += pct
		included++
	}
	if included == 0 {
		return AggregateResult{}, util.Validationf("insufficient data to compute score")
	}
	return AggregateResult{Value: sum / float64(included), Breakdown: breakdown}, nil
}

// aggregate222 is the student/teacher ratio taken from the latest anchor
// form's staffing and enrollment annexures. Lower is better.
func (s *ScoreService) aggregate222(sc ScoreContext) (AggregateResult, error) {
	teachers, err := s.iiqa.LatestStaffTotal()
	if err != nil {
		return AggregateResult{}, err
	}
	students, err := s.iiqa.LatestStudentTotal()
	if err != nil {
		return AggregateResult{}, err
	}

	ratio := 0.0
	if teachers > 0 {
		ratio = math.Round(float64(students) / float64(teachers))
	}
	return AggregateResult{Value: ratio}, nil
}

// aggregate233 is the mentee/mentor ratio of the session's latest entry.
// Lower is better.
func (s *ScoreService) aggregate233(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R233.List(map[string]interface{}{
		"criteria_code": sc.Criteria.CriteriaCode,
		"session":       sc.Session,
	})
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for this session")
	}

	latest := rows[0]
	for _, row := range rows[1:] {
		if row.SlNo > latest.SlNo {
			latest = row
		}
	}

	ratio := 0.0
	if latest.NoOfMentors > 0 {
		ratio = math.Round(float64(latest.NoOfMentees) / float64(latest.NoOfMentors))
	}
	return AggregateResult{Value: ratio}, nil
}

// aggregate241 averages the yearly percentage of filled teaching posts from
// the extended profile snapshots. Years with zero sanctioned posts are
// excluded.
func (s *ScoreService) aggregate241(sc ScoreContext) (AggregateResult, error) {
	profiles, err := s.profiles.ListBetween(sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(profiles) == 0 {
		return AggregateResult{}, util.NotFoundf("no extended profiles found between %d and %d", sc.Window.StartYear, sc.Window.EndYear)
	}

	breakdown := make(map[string]float64)
	var sum float64
	var included int
	for _, p := range profiles {
		if p.SanctionedPosts <= 0 {
			continue
		}
		pct := float64(p.FullTimeTeachers) / float64(p.SanctionedPosts) * 100
		breakdown[strconv.Itoa(p.Year)] = pct
		sum += pct
		included++
	}
	if included == 0 {
		return AggregateResult{}, util.Validationf("no valid data to compute score")
	}
	return AggregateResult{Value: sum / float64(included), Breakdown: breakdown}, nil
}

// aggregate242 averages the per-session totals of doctorate-holding
// full-time teachers.
func (s *ScoreService) aggregate242(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R242.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 2.4.2 in the session range")
	}

	bySession := make(map[int]int)
	for _, row := range rows {
		bySession[row.Session] += row.NumberOfFullTimeTeachers
	}

	var sum float64
	for _, total := range bySession {
		sum += float64(total)
	}
	return AggregateResult{Value: sum / float64(len(bySession))}, nil
}

// aggregate243 is total teaching experience divided by the full-time
// teacher count of the newest profile snapshot inside the window.
func (s *ScoreService) aggregate243(sc ScoreContext) (AggregateResult, error) {
	anchor, err := s.iiqa.Latest()
	if err != nil {
		return AggregateResult{}, err
	}
	profile, err := s.profiles.LatestBetween(anchor.ID, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if profile.FullTimeTeachers <= 0 {
		return AggregateResult{}, util.Validationf("full-time teachers data is missing in the extended profile")
	}

	rows, err := s.responses.R243.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no experience records found for the given period")
	}

	var totalExperience int
	for _, row := range rows {
		totalExperience += row.YearsOfExperience
	}
	return AggregateResult{Value: float64(totalExperience) / float64(profile.FullTimeTeachers)}, nil
}

// aggregate263 is the overall pass percentage in final-year examinations, a
// ratio of sums. Zero appearances yields zero, not an error.
func (s *ScoreService) aggregate263(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R263.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for the given period")
	}

	var appeared, passed int
	for _, row := range rows {
		appeared += row.StudentsAppeared
		passed += row.StudentsPassed
	}

	value := 0.0
	if appeared > 0 {
		value = float64(passed) / float64(appeared) * 100
	}
	return AggregateResult{Value: value}, nil
}
