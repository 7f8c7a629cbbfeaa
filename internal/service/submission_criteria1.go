package service

import (
	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

type Submit113Input struct {
	Session        int    `json:"session" binding:"required"`
	Year           int    `json:"year" binding:"required"`
	TeacherName    string `json:"teacher_name" binding:"required"`
	BodyName       string `json:"body_name" binding:"required"`
	OptionSelected int    `json:"option_selected"`
}

// Submit113 merges one teacher/body participation fact. The natural key is
// session, year, teacher and body; only the selected option is mutable.
func (s *SubmissionService) Submit113(in Submit113Input) (*model.Response113, bool, error) {
	if err := requireFields(map[string]string{
		"teacher_name": in.TeacherName,
		"body_name":    in.BodyName,
	}); err != nil {
		return nil, false, err
	}
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, false, err
	}
	if err := checkOption(in.OptionSelected); err != nil {
		return nil, false, err
	}

	criteria, err := s.lookupCriteria("1.1.3", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"year":          in.Year,
		"teacher_name":  in.TeacherName,
		"body_name":     in.BodyName,
	}
	row := &model.Response113{
		ResponseBase:   model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:           in.Year,
		TeacherName:    in.TeacherName,
		BodyName:       in.BodyName,
		OptionSelected: in.OptionSelected,
	}
	return s.responses.R113.Merge(key, row, map[string]interface{}{
		"option_selected": in.OptionSelected,
	})
}

type Submit121Input struct {
	Session               int    `json:"session" binding:"required"`
	ProgrammeCode         string `json:"programme_code" binding:"required"`
	ProgrammeName         string `json:"programme_name" binding:"required"`
	YearOfIntroduction    int    `json:"year_of_introduction" binding:"required"`
	StatusOfCBCS          string `json:"status_of_implementation_of_cbcs" binding:"required"`
	YearOfCBCS            int    `json:"year_of_implementation_of_cbcs" binding:"required"`
	YearOfRevision        int    `json:"year_of_revision" binding:"required"`
	PercentOfContentAdded string `json:"prc_content_added"`
}

// Submit121 merges one programme's curriculum record, keyed by session and
// programme code.
func (s *SubmissionService) Submit121(in Submit121Input) (*model.Response121, bool, error) {
	if err := requireFields(map[string]string{
		"programme_code": in.ProgrammeCode,
		"programme_name": in.ProgrammeName,
	}); err != nil {
		return nil, false, err
	}
	for field, year := range map[string]int{
		"Year of introduction":           in.YearOfIntroduction,
		"Year of implementation of CBCS": in.YearOfCBCS,
		"Year of revision":               in.YearOfRevision,
	} {
		if err := s.checkYear(field, year); err != nil {
			return nil, false, err
		}
	}
	status, err := checkFlag("status_of_implementation_of_cbcs", in.StatusOfCBCS)
	if err != nil {
		return nil, false, err
	}

	criteria, err := s.lookupCriteria("1.2.1", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code":  criteria.CriteriaCode,
		"session":        in.Session,
		"programme_code": in.ProgrammeCode,
	}
	row := &model.Response121{
		ResponseBase:          model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		ProgrammeCode:         in.ProgrammeCode,
		ProgrammeName:         in.ProgrammeName,
		YearOfIntroduction:    in.YearOfIntroduction,
		StatusOfCBCS:          status,
		YearOfCBCS:            in.YearOfCBCS,
		YearOfRevision:        in.YearOfRevision,
		PercentOfContentAdded: in.PercentOfContentAdded,
	}
	return s.responses.R121.Merge(key, row, map[string]interface{}{
		"programme_name":                    in.ProgrammeName,
		"year_of_introduction":              in.YearOfIntroduction,
		"status_of_implementation_of_cbcs":  status,
		"year_of_implementation_of_cbcs":    in.YearOfCBCS,
		"year_of_revision":                  in.YearOfRevision,
		"prc_content_added":                 in.PercentOfContentAdded,
	})
}

type Submit122Input struct {
	Session               int    `json:"session" binding:"required"`
	ProgramName           string `json:"program_name" binding:"required"`
	CourseCode            string `json:"course_code" binding:"required"`
	YearOfOffering        int    `json:"year_of_offering" binding:"required"`
	NoOfTimesOffered      int    `json:"no_of_times_offered"`
	Duration              string `json:"duration"`
	NoOfStudentsEnrolled  int    `json:"no_of_students_enrolled"`
	NoOfStudentsCompleted int    `json:"no_of_students_completed"`
}

// Submit122 merges one certificate-course offering, keyed by session,
// course code and year of offering.
func (s *SubmissionService) Submit122(in Submit122Input) (*model.Response122, bool, error) {
	if err := requireFields(map[string]string{
		"program_name": in.ProgramName,
		"course_code":  in.CourseCode,
	}); err != nil {
		return nil, false, err
	}
	if err := s.checkYear("Year of offering", in.YearOfOffering); err != nil {
		return nil, false, err
	}
	if in.NoOfStudentsEnrolled < 0 || in.NoOfStudentsCompleted < 0 || in.NoOfTimesOffered < 0 {
		return nil, false, util.Validationf("counts must be non-negative")
	}

	criteria, err := s.lookupCriteria("1.2.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code":    criteria.CriteriaCode,
		"session":          in.Session,
		"course_code":      in.CourseCode,
		"year_of_offering": in.YearOfOffering,
	}
	row := &model.Response122{
		ResponseBase:          model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		ProgramName:           in.ProgramName,
		CourseCode:            in.CourseCode,
		YearOfOffering:        in.YearOfOffering,
		NoOfTimesOffered:      in.NoOfTimesOffered,
		Duration:              in.Duration,
		NoOfStudentsEnrolled:  in.NoOfStudentsEnrolled,
		NoOfStudentsCompleted: in.NoOfStudentsCompleted,
	}
	return s.responses.R122.Merge(key, row, map[string]interface{}{
		"program_name":             in.ProgramName,
		"no_of_times_offered":      in.NoOfTimesOffered,
		"duration":                 in.Duration,
		"no_of_students_enrolled":  in.NoOfStudentsEnrolled,
		"no_of_students_completed": in.NoOfStudentsCompleted,
	})
}

type Submit132Input struct {
	Session        int    `json:"session" binding:"required"`
	ProgramName    string `json:"program_name" binding:"required"`
	ProgramCode    string `json:"program_code" binding:"required"`
	CourseName     string `json:"course_name" binding:"required"`
	CourseCode     string `json:"course_code" binding:"required"`
	YearOfOffering int    `json:"year_of_offering" binding:"required"`
	StudentName    string `json:"student_name" binding:"required"`
}

// Submit132 appends one student's course enrollment; resubmitting the same
// student for the same course is a duplicate.
func (s *SubmissionService) Submit132(in Submit132Input) (*model.Response132, error) {
	if err := requireFields(map[string]string{
		"program_name": in.ProgramName,
		"program_code": in.ProgramCode,
		"course_name":  in.CourseName,
		"course_code":  in.CourseCode,
		"student_name": in.StudentName,
	}); err != nil {
		return nil, err
	}
	if err := s.checkYear("Year of offering", in.YearOfOffering); err != nil {
		return nil, err
	}

	criteria, err := s.lookupCriteria("1.3.2", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code":    criteria.CriteriaCode,
		"session":          in.Session,
		"program_code":     in.ProgramCode,
		"course_code":      in.CourseCode,
		"year_of_offering": in.YearOfOffering,
		"student_name":     in.StudentName,
	}
	row := &model.Response132{
		ResponseBase:   model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		ProgramName:    in.ProgramName,
		ProgramCode:    in.ProgramCode,
		CourseName:     in.CourseName,
		CourseCode:     in.CourseCode,
		YearOfOffering: in.YearOfOffering,
		StudentName:    in.StudentName,
	}
	return s.responses.R132.Append(key, row)
}

type Submit133Input struct {
	Session     int    `json:"session" binding:"required"`
	ProgramName string `json:"program_name" binding:"required"`
	ProgramCode string `json:"program_code" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
}

// Submit133 appends one student's project/internship record; duplicates
// are rejected.
func (s *SubmissionService) Submit133(in Submit133Input) (*model.Response133, error) {
	if err := requireFields(map[string]string{
		"program_name": in.ProgramName,
		"program_code": in.ProgramCode,
		"student_name": in.StudentName,
	}); err != nil {
		return nil, err
	}

	criteria, err := s.lookupCriteria("1.3.3", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"program_code":  in.ProgramCode,
		"student_name":  in.StudentName,
	}
	row := &model.Response133{
		ResponseBase: model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		ProgramName:  in.ProgramName,
		ProgramCode:  in.ProgramCode,
		StudentName:  in.StudentName,
	}
	return s.responses.R133.Append(key, row)
}

type SubmitOptionInput struct {
	Session        int `json:"session" binding:"required"`
	OptionSelected int `json:"option_selected"`
}

// Submit141 merges the feedback-collection option, one row per session.
func (s *SubmissionService) Submit141(in SubmitOptionInput) (*model.Response141, bool, error) {
	if err := checkOption(in.OptionSelected); err != nil {
		return nil, false, err
	}
	criteria, err := s.lookupCriteria("1.4.1", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
	}
	row := &model.Response141{
		ResponseBase:   model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		OptionSelected: in.OptionSelected,
	}
	return s.responses.R141.Merge(key, row, map[string]interface{}{
		"option_selected": in.OptionSelected,
	})
}

// Submit142 merges the feedback-action option, one row per session.
func (s *SubmissionService) Submit142(in SubmitOptionInput) (*model.Response142, bool, error) {
	if err := checkOption(in.OptionSelected); err != nil {
		return nil, false, err
	}
	criteria, err := s.lookupCriteria("1.4.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
	}
	row := &model.Response142{
		ResponseBase:   model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		OptionSelected: in.OptionSelected,
	}
	return s.responses.R142.Merge(key, row, map[string]interface{}{
		"option_selected": in.OptionSelected,
	})
}
