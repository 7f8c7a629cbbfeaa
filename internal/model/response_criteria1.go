package model

// Response113 records one teacher's participation in a curriculum-development
// body for a given year. Natural key: session, year, teacher, body.
type Response113 struct {
	ResponseBase
	Year           int    `gorm:"column:year;not null" json:"year"`
	TeacherName    string `gorm:"column:teacher_name;size:100;not null" json:"teacher_name"`
	BodyName       string `gorm:"column:body_name;size:150;not null" json:"body_name"`
	OptionSelected int    `gorm:"column:option_selected;default:0" json:"option_selected"`
}

func (Response113) TableName() string { return "response_1_1_3" }

// Response121 records one programme's curriculum revision and CBCS status.
// Natural key: session, programme code.
type Response121 struct {
	ResponseBase
	ProgrammeCode         string `gorm:"column:programme_code;size:50" json:"programme_code"`
	ProgrammeName         string `gorm:"column:programme_name;size:100;not null" json:"programme_name"`
	YearOfIntroduction    int    `gorm:"column:year_of_introduction;not null" json:"year_of_introduction"`
	StatusOfCBCS          string `gorm:"column:status_of_implementation_of_cbcs;size:10" json:"status_of_implementation_of_cbcs"`
	YearOfCBCS            int    `gorm:"column:year_of_implementation_of_cbcs" json:"year_of_implementation_of_cbcs"`
	YearOfRevision        int    `gorm:"column:year_of_revision" json:"year_of_revision"`
	PercentOfContentAdded string `gorm:"column:prc_content_added;size:255" json:"prc_content_added,omitempty"`
}

func (Response121) TableName() string { return "response_1_2_1" }

// Response122 records one certificate/value-added course offering.
// Natural key: session, course code, year of offering.
type Response122 struct {
	ResponseBase
	ProgramName           string `gorm:"column:program_name;size:150;not null" json:"program_name"`
	CourseCode            string `gorm:"column:course_code;size:50" json:"course_code"`
	YearOfOffering        int    `gorm:"column:year_of_offering;not null" json:"year_of_offering"`
	NoOfTimesOffered      int    `gorm:"column:no_of_times_offered;default:0" json:"no_of_times_offered"`
	Duration              string `gorm:"column:duration;size:50" json:"duration"`
	NoOfStudentsEnrolled  int    `gorm:"column:no_of_students_enrolled;default:0" json:"no_of_students_enrolled"`
	NoOfStudentsCompleted int    `gorm:"column:no_of_students_completed;default:0" json:"no_of_students_completed"`
}

func (Response122) TableName() string { return "response_1_2_2" }

// Response132 records one student's enrollment in an experiential-learning
// course. Append-only: a student taking a course is a discrete life event.
// Natural key: session, program code, course code, year, student.
type Response132 struct {
	ResponseBase
	ProgramName    string `gorm:"column:program_name;size:150;not null" json:"program_name"`
	ProgramCode    string `gorm:"column:program_code;size:50" json:"program_code"`
	CourseName     string `gorm:"column:course_name;size:150;not null" json:"course_name"`
	CourseCode     string `gorm:"column:course_code;size:50" json:"course_code"`
	YearOfOffering int    `gorm:"column:year_of_offering;not null" json:"year_of_offering"`
	StudentName    string `gorm:"column:student_name;size:100;not null" json:"student_name"`
}

func (Response132) TableName() string { return "response_1_3_2" }

// Response133 records one student undertaking a project or internship.
// Append-only. Natural key: session, program code, student.
type Response133 struct {
	ResponseBase
	ProgramName string `gorm:"column:program_name;size:150;not null" json:"program_name"`
	ProgramCode string `gorm:"column:program_code;size:50" json:"program_code"`
	StudentName string `gorm:"column:student_name;size:100;not null" json:"student_name"`
}

func (Response133) TableName() string { return "response_1_3_3" }

// Response141 holds the feedback-collection option for a session. One row
// per session, merged in place on resubmission.
type Response141 struct {
	ResponseBase
	OptionSelected int `gorm:"column:option_selected;not null;default:0" json:"option_selected"`
}

func (Response141) TableName() string { return "response_1_4_1" }

// Response142 holds the feedback-action option for a session.
type Response142 struct {
	ResponseBase
	OptionSelected int `gorm:"column:option_selected;not null;default:0" json:"option_selected"`
}

func (Response142) TableName() string { return "response_1_4_2" }
