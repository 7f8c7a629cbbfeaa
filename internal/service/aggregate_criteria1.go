package service

import (
	"errors"
	"strconv"
	"strings"

	"naac_backend/internal/util"

	"gorm.io/gorm"
)

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// aggregate113 counts distinct teachers participating in curriculum bodies
// across the window.
func (s *ScoreService) aggregate113(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R113.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 1.1.3 in the session range")
	}

	teachers := make(map[string]struct{})
	for _, row := range rows {
		teachers[normalizeName(row.TeacherName)] = struct{}{}
	}
	return AggregateResult{Value: float64(len(teachers))}, nil
}

// aggregate121 is the percentage of programmes with CBCS implemented.
func (s *ScoreService) aggregate121(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R121.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no program data found in the session range")
	}

	implemented := 0
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.StatusOfCBCS), "YES") {
			implemented++
		}
	}
	return AggregateResult{Value: float64(implemented) / float64(len(rows)) * 100}, nil
}

// aggregate122 averages, year by year, certificate-course enrollment against
// the programme-count total of the latest anchor form.
func (s *ScoreService) aggregate122(sc ScoreContext) (AggregateResult, error) {
	totalStudents, err := s.iiqa.LatestProgrammeStudentTotal()
	if err != nil {
		return AggregateResult{}, err
	}

	rows, err := s.responses.R122.ListYearBetween(sc.Criteria.CriteriaCode, "year_of_offering", sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 1.2.2 in the session range")
	}

	enrolledByYear := make(map[int]int)
	for _, row := range rows {
		enrolledByYear[row.YearOfOffering] += row.NoOfStudentsEnrolled
	}

	breakdown := make(map[string]float64)
	var sum float64
	years := sc.Window.EndYear - sc.Window.StartYear + 1
	for year := sc.Window.StartYear; year <= sc.Window.EndYear; year++ {
		pct := 0.0
		if totalStudents > 0 {
			pct = float64(enrolledByYear[year]) / float64(totalStudents) * 100
		}
		breakdown[strconv.Itoa(year)] = pct
		sum += pct
	}
	return AggregateResult{Value: sum / float64(years), Breakdown: breakdown}, nil
}

// aggregate132 averages, year by year, distinct experiential-learning
// courses against the courses offered that year in the extended profile.
// Years without a profile snapshot contribute no entry to the series.
func (s *ScoreService) aggregate132(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R132.ListYearBetween(sc.Criteria.CriteriaCode, "year_of_offering", sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 1.3.2 in the session range")
	}

	coursesByYear := make(map[int]map[string]struct{})
	for _, row := range rows {
		if coursesByYear[row.YearOfOffering] == nil {
			coursesByYear[row.YearOfOffering] = make(map[string]struct{})
		}
		coursesByYear[row.YearOfOffering][row.CourseCode] = struct{}{}
	}

	profiles, err := s.profiles.ListBetween(sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	offeredByYear := make(map[int]int)
	for _, p := range profiles {
		offeredByYear[p.Year] = p.NumberOfCoursesOffered
	}

	breakdown := make(map[string]float64)
	var sum float64
	var included int
	for year := sc.Window.StartYear; year <= sc.Window.EndYear; year++ {
		offered, ok := offeredByYear[year]
		if !ok || offered <= 0 {
			continue
		}
		pct := float64(len(coursesByYear[year])) / float64(offered) * 100
		breakdown[strconv.Itoa(year)] = pct
		sum += pct
		included++
	}
	if included == 0 {
		return AggregateResult{}, util.NotFoundf("no extended profiles found between %d and %d", sc.Window.StartYear, sc.Window.EndYear)
	}
	return AggregateResult{Value: sum / float64(included), Breakdown: breakdown}, nil
}

// aggregate133 is the ratio of students proceeding to projects or
// internships against total enrollment across the window.
func (s *ScoreService) aggregate133(sc ScoreContext) (AggregateResult, error) {
	rows, err := s.responses.R133.ListSessionBetween(sc.Criteria.CriteriaCode, sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	if len(rows) == 0 {
		return AggregateResult{}, util.NotFoundf("no responses found for criteria 1.3.3 in the session range")
	}

	studentsBySession := make(map[int]map[string]struct{})
	for _, row := range rows {
		if studentsBySession[row.Session] == nil {
			studentsBySession[row.Session] = make(map[string]struct{})
		}
		studentsBySession[row.Session][normalizeName(row.StudentName)] = struct{}{}
	}

	profiles, err := s.profiles.ListBetween(sc.Window.StartYear, sc.Window.EndYear)
	if err != nil {
		return AggregateResult{}, err
	}
	totalBySession := make(map[int]int)
	for _, p := range profiles {
		totalBySession[p.Year] = p.TotalStudents
	}

	var participating, total int
	for year := sc.Window.StartYear; year <= sc.Window.EndYear; year++ {
		participating += len(studentsBySession[year])
		total += totalBySession[year]
	}

	value := 0.0
	if total > 0 {
		value = float64(participating) / float64(total) * 100
	}
	return AggregateResult{Value: value}, nil
}

func (s *ScoreService) aggregate141(sc ScoreContext) (AggregateResult, error) {
	row, err := s.responses.R141.Latest(sc.Criteria.CriteriaCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, util.NotFoundf("no response found for criteria 1.4.1")
	}
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateResult{Value: float64(row.OptionSelected)}, nil
}

func (s *ScoreService) aggregate142(sc ScoreContext) (AggregateResult, error) {
	row, err := s.responses.R142.Latest(sc.Criteria.CriteriaCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, util.NotFoundf("no response found for criteria 1.4.2")
	}
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateResult{Value: float64(row.OptionSelected)}, nil
}
