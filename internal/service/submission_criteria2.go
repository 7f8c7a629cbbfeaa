package service

import (
	"strings"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

type Submit211Input struct {
	Session       int    `json:"session" binding:"required"`
	Year          int    `json:"year" binding:"required"`
	ProgrammeName string `json:"programme_name" binding:"required"`
	ProgrammeCode string `json:"programme_code" binding:"required"`
	NoOfSeats     int    `json:"no_of_seats"`
	NoOfStudents  int    `json:"no_of_students"`
}

// Submit211 merges one programme's yearly enrollment figures.
func (s *SubmissionService) Submit211(in Submit211Input) (*model.Response211, bool, error) {
	if err := requireFields(map[string]string{
		"programme_name": in.ProgrammeName,
		"programme_code": in.ProgrammeCode,
	}); err != nil {
		return nil, false, err
	}
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, false, err
	}
	if in.NoOfSeats < 0 || in.NoOfStudents < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}

	criteria, err := s.lookupCriteria("2.1.1", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code":  criteria.CriteriaCode,
		"session":        in.Session,
		"year":           in.Year,
		"programme_code": in.ProgrammeCode,
	}
	row := &model.Response211{
		ResponseBase:  model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:          in.Year,
		ProgrammeName: in.ProgrammeName,
		ProgrammeCode: in.ProgrammeCode,
		NoOfSeats:     in.NoOfSeats,
		NoOfStudents:  in.NoOfStudents,
	}
	return s.responses.R211.Merge(key, row, map[string]interface{}{
		"programme_name": in.ProgrammeName,
		"no_of_seats":    in.NoOfSeats,
		"no_of_students": in.NoOfStudents,
	})
}

type Submit212Input struct {
	Session                      int `json:"session" binding:"required"`
	Year                         int `json:"year" binding:"required"`
	SeatsEarmarkedForGOI         int `json:"number_of_seats_earmarked_for_reserved_category_as_per_goi"`
	StudentsAdmittedFromReserved int `json:"number_of_students_admitted_from_the_reserved_category"`
}

// Submit212 merges one year's reserved-category admission figures.
func (s *SubmissionService) Submit212(in Submit212Input) (*model.Response212, bool, error) {
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, false, err
	}
	if in.SeatsEarmarkedForGOI < 0 || in.StudentsAdmittedFromReserved < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}

	criteria, err := s.lookupCriteria("2.1.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"year":          in.Year,
	}
	row := &model.Response212{
		ResponseBase:                 model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:                         in.Year,
		SeatsEarmarkedForGOI:         in.SeatsEarmarkedForGOI,
		StudentsAdmittedFromReserved: in.StudentsAdmittedFromReserved,
	}
	return s.responses.R212.Merge(key, row, map[string]interface{}{
		"number_of_seats_earmarked_for_reserved_category_as_per_goi": in.SeatsEarmarkedForGOI,
		"number_of_students_admitted_from_the_reserved_category":     in.StudentsAdmittedFromReserved,
	})
}

type FacultyAppointmentInput struct {
	Session             int    `json:"session" binding:"required"`
	TeacherName         string `json:"name_of_the_full_time_teacher" binding:"required"`
	Designation         string `json:"designation" binding:"required"`
	YearOfAppointment   int    `json:"year_of_appointment" binding:"required"`
	NatureOfAppointment string `json:"nature_of_appointment" binding:"required"`
	DepartmentName      string `json:"name_of_department" binding:"required"`
	YearsOfExperience   int    `json:"total_number_of_years_of_experience_in_the_same_institution"`
	StillServing        string `json:"is_the_teacher_still_serving_the_institution" binding:"required"`
}

// FacultyAppointmentResult reports the rows written per target code.
type FacultyAppointmentResult struct {
	Code222 *model.Response222 `json:"response_2_2_2"`
	Code241 *model.Response241 `json:"response_2_4_1"`
	Code243 *model.Response243 `json:"response_2_4_3"`
}

// SubmitFacultyAppointment writes one appointment into the 2.2.2, 2.4.1 and
// 2.4.3 tables inside a single transaction; any failure rolls back all
// three. Duplicate appointments are rejected.
func (s *SubmissionService) SubmitFacultyAppointment(in FacultyAppointmentInput) (*FacultyAppointmentResult, error) {
	if err := requireFields(map[string]string{
		"name_of_the_full_time_teacher": in.TeacherName,
		"designation":                   in.Designation,
		"nature_of_appointment":         in.NatureOfAppointment,
		"name_of_department":            in.DepartmentName,
	}); err != nil {
		return nil, err
	}
	if err := s.checkYear("Year", in.YearOfAppointment); err != nil {
		return nil, err
	}
	if in.YearsOfExperience < 0 {
		return nil, util.Validationf("years of experience must be non-negative")
	}
	stillServing, err := checkFlag("is_the_teacher_still_serving_the_institution", in.StillServing)
	if err != nil {
		return nil, err
	}
	if err := s.checkYear("Session", in.Session); err != nil {
		return nil, err
	}
	if _, err := s.windows.ValidateSession(in.Session, 5); err != nil {
		return nil, err
	}

	criteriaList, err := s.criteria.FindBySubSubIDs([]string{"020202", "020401", "020403"})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.CriteriaMaster, len(criteriaList))
	for _, c := range criteriaList {
		byID[c.SubSubCriterionID] = c
	}

	teacherName := strings.ToLower(strings.TrimSpace(in.TeacherName))
	facts := model.FacultyFacts{
		TeacherName:         teacherName,
		Designation:         in.Designation,
		YearOfAppointment:   in.YearOfAppointment,
		NatureOfAppointment: in.NatureOfAppointment,
		DepartmentName:      in.DepartmentName,
		YearsOfExperience:   in.YearsOfExperience,
		StillServing:        stillServing,
	}
	keyFor := func(criteriaCode string) map[string]interface{} {
		return map[string]interface{}{
			"criteria_code":                 criteriaCode,
			"session":                       in.Session,
			"year_of_appointment":           in.YearOfAppointment,
			"name_of_the_full_time_teacher": teacherName,
			"designation":                   in.Designation,
			"name_of_department":            in.DepartmentName,
		}
	}

	var result FacultyAppointmentResult
	err = s.responses.DB.Transaction(func(tx *gorm.DB) error {
		c222 := byID["020202"]
		row222 := &model.Response222{
			ResponseBase: model.ResponseBase{CriteriaID: c222.ID, CriteriaCode: c222.CriteriaCode, Session: in.Session},
			FacultyFacts: facts,
		}
		entry222, err := s.responses.R222.WithTx(tx).Append(keyFor(c222.CriteriaCode), row222)
		if err != nil {
			return err
		}
		result.Code222 = entry222

		c241 := byID["020401"]
		row241 := &model.Response241{
			ResponseBase: model.ResponseBase{CriteriaID: c241.ID, CriteriaCode: c241.CriteriaCode, Session: in.Session},
			FacultyFacts: facts,
		}
		entry241, err := s.responses.R241.WithTx(tx).Append(keyFor(c241.CriteriaCode), row241)
		if err != nil {
			return err
		}
		result.Code241 = entry241

		c243 := byID["020403"]
		row243 := &model.Response243{
			ResponseBase: model.ResponseBase{CriteriaID: c243.ID, CriteriaCode: c243.CriteriaCode, Session: in.Session},
			FacultyFacts: facts,
		}
		entry243, err := s.responses.R243.WithTx(tx).Append(keyFor(c243.CriteriaCode), row243)
		if err != nil {
			return err
		}
		result.Code243 = entry243

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type Submit233Input struct {
	Session     int `json:"session" binding:"required"`
	Year        int `json:"year" binding:"required"`
	NoOfMentors int `json:"no_of_mentors" binding:"required"`
	NoOfMentees int `json:"no_of_mentee" binding:"required"`
}

// Submit233 merges one year's mentor/mentee headcounts.
func (s *SubmissionService) Submit233(in Submit233Input) (*model.Response233, bool, error) {
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, false, err
	}
	if in.NoOfMentors < 0 || in.NoOfMentees < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}

	criteria, err := s.lookupCriteria("2.3.3", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"year":          in.Year,
	}
	row := &model.Response233{
		ResponseBase: model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:         in.Year,
		NoOfMentors:  in.NoOfMentors,
		NoOfMentees:  in.NoOfMentees,
	}
	return s.responses.R233.Merge(key, row, map[string]interface{}{
		"no_of_mentors": in.NoOfMentors,
		"no_of_mentee":  in.NoOfMentees,
	})
}

type Submit242Input struct {
	Session                      int    `json:"session" binding:"required"`
	NumberOfFullTimeTeachers     int    `json:"number_of_full_time_teachers" binding:"required"`
	Qualification                string `json:"qualification" binding:"required"`
	YearOfObtainingQualification int    `json:"year_of_obtaining_the_qualification" binding:"required"`
	RecognisedAsResearchGuide    string `json:"whether_recognised_as_research_guide"`
	YearOfRecognitionAsGuide     string `json:"year_of_recognition_as_research_guide"`
}

// Submit242 merges one qualification cohort, keyed by session,
// qualification and the year it was obtained.
func (s *SubmissionService) Submit242(in Submit242Input) (*model.Response242, bool, error) {
	if err := requireFields(map[string]string{
		"qualification": in.Qualification,
	}); err != nil {
		return nil, false, err
	}
	if err := s.checkYear("Year of obtaining the qualification", in.YearOfObtainingQualification); err != nil {
		return nil, false, err
	}
	if in.NumberOfFullTimeTeachers < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}

	criteria, err := s.lookupCriteria("2.4.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code":                       criteria.CriteriaCode,
		"session":                             in.Session,
		"qualification":                       in.Qualification,
		"year_of_obtaining_the_qualification": in.YearOfObtainingQualification,
	}
	row := &model.Response242{
		ResponseBase:                 model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		NumberOfFullTimeTeachers:     in.NumberOfFullTimeTeachers,
		Qualification:                in.Qualification,
		YearOfObtainingQualification: in.YearOfObtainingQualification,
		RecognisedAsResearchGuide:    in.RecognisedAsResearchGuide,
		YearOfRecognitionAsGuide:     in.YearOfRecognitionAsGuide,
	}
	return s.responses.R242.Merge(key, row, map[string]interface{}{
		"number_of_full_time_teachers":          in.NumberOfFullTimeTeachers,
		"whether_recognised_as_research_guide":  in.RecognisedAsResearchGuide,
		"year_of_recognition_as_research_guide": in.YearOfRecognitionAsGuide,
	})
}

type Submit263Input struct {
	Session          int    `json:"session" binding:"required"`
	Year             int    `json:"year" binding:"required"`
	ProgramCode      string `json:"program_code" binding:"required"`
	ProgramName      string `json:"program_name" binding:"required"`
	StudentsAppeared int    `json:"number_of_students_appeared_in_the_final_year_examination"`
	StudentsPassed   int    `json:"number_of_students_passed_in_the_final_year_examination"`
}

// Submit263 merges one programme's yearly examination outcome.
func (s *SubmissionService) Submit263(in Submit263Input) (*model.Response263, bool, error) {
	if err := requireFields(map[string]string{
		"program_code": in.ProgramCode,
		"program_name": in.ProgramName,
	}); err != nil {
		return nil, false, err
	}
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, false, err
	}
	if in.StudentsAppeared < 0 || in.StudentsPassed < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}
	if in.StudentsPassed > in.StudentsAppeared {
		return nil, false, util.Validationf("students passed cannot exceed students appeared")
	}

	criteria, err := s.lookupCriteria("2.6.3", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"year":          in.Year,
		"program_code":  in.ProgramCode,
	}
	row := &model.Response263{
		ResponseBase:     model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:             in.Year,
		ProgramCode:      in.ProgramCode,
		ProgramName:      in.ProgramName,
		StudentsAppeared: in.StudentsAppeared,
		StudentsPassed:   in.StudentsPassed,
	}
	return s.responses.R263.Merge(key, row, map[string]interface{}{
		"program_name": in.ProgramName,
		"number_of_students_appeared_in_the_final_year_examination": in.StudentsAppeared,
		"number_of_students_passed_in_the_final_year_examination":   in.StudentsPassed,
	})
}
