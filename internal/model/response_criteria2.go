package model

// Response211 records per-year enrollment against sanctioned seats for one
// programme. Natural key: session, year, programme code.
type Response211 struct {
	ResponseBase
	Year          int    `gorm:"column:year;not null" json:"year"`
	ProgrammeName string `gorm:"column:programme_name;size:150;not null" json:"programme_name"`
	ProgrammeCode string `gorm:"column:programme_code;size:50" json:"programme_code"`
	NoOfSeats     int    `gorm:"column:no_of_seats;default:0" json:"no_of_seats"`
	NoOfStudents  int    `gorm:"column:no_of_students;default:0" json:"no_of_students"`
}

func (Response211) TableName() string { return "response_2_1_1" }

// Response212 records per-year reserved category admissions against the
// earmarked seats. Natural key: session, year.
type Response212 struct {
	ResponseBase
	Year                  int `gorm:"column:year;not null" json:"year"`
	SeatsEarmarkedForGOI  int `gorm:"column:number_of_seats_earmarked_for_reserved_category_as_per_goi;default:0" json:"number_of_seats_earmarked_for_reserved_category_as_per_goi"`
	StudentsAdmittedFromReserved int `gorm:"column:number_of_students_admitted_from_the_reserved_category;default:0" json:"number_of_students_admitted_from_the_reserved_category"`
}

func (Response212) TableName() string { return "response_2_1_2" }

// FacultyFacts is the shared payload of the faculty appointment form. One
// submission writes the same facts into the 2.2.2, 2.4.1 and 2.4.3 tables in
// a single transaction. Natural key: session, appointment year, teacher,
// designation, department.
type FacultyFacts struct {
	TeacherName         string `gorm:"column:name_of_the_full_time_teacher;size:100;not null" json:"name_of_the_full_time_teacher"`
	Designation         string `gorm:"column:designation;size:100;not null" json:"designation"`
	YearOfAppointment   int    `gorm:"column:year_of_appointment;not null" json:"year_of_appointment"`
	NatureOfAppointment string `gorm:"column:nature_of_appointment;size:100" json:"nature_of_appointment"`
	DepartmentName      string `gorm:"column:name_of_department;size:100;not null" json:"name_of_department"`
	YearsOfExperience   int    `gorm:"column:total_number_of_years_of_experience_in_the_same_institution;default:0" json:"total_number_of_years_of_experience_in_the_same_institution"`
	StillServing        string `gorm:"column:is_the_teacher_still_serving_the_institution;size:10" json:"is_the_teacher_still_serving_the_institution"`
}

type Response222 struct {
	ResponseBase
	FacultyFacts
}

func (Response222) TableName() string { return "response_2_2_2" }

type Response241 struct {
	ResponseBase
	FacultyFacts
}

func (Response241) TableName() string { return "response_2_4_1" }

type Response243 struct {
	ResponseBase
	FacultyFacts
}

func (Response243) TableName() string { return "response_2_4_3" }

// Response233 records per-year mentor and mentee headcounts. Natural key:
// session, year.
type Response233 struct {
	ResponseBase
	Year        int `gorm:"column:year" json:"year"`
	NoOfMentors int `gorm:"column:no_of_mentors;not null" json:"no_of_mentors"`
	NoOfMentees int `gorm:"column:no_of_mentee;not null" json:"no_of_mentee"`
}

func (Response233) TableName() string { return "response_2_3_3" }

// Response242 records full-time teachers holding a doctoral qualification.
// Natural key: session, qualification, year of obtaining.
type Response242 struct {
	ResponseBase
	NumberOfFullTimeTeachers       int    `gorm:"column:number_of_full_time_teachers;default:0" json:"number_of_full_time_teachers"`
	Qualification                  string `gorm:"column:qualification;size:255" json:"qualification"`
	YearOfObtainingQualification   int    `gorm:"column:year_of_obtaining_the_qualification" json:"year_of_obtaining_the_qualification"`
	RecognisedAsResearchGuide      string `gorm:"column:whether_recognised_as_research_guide;size:255" json:"whether_recognised_as_research_guide"`
	YearOfRecognitionAsGuide       string `gorm:"column:year_of_recognition_as_research_guide;size:255" json:"year_of_recognition_as_research_guide"`
}

func (Response242) TableName() string { return "response_2_4_2" }

// Response263 records final-year examination outcomes per programme per
// year. Natural key: session, year, program code.
type Response263 struct {
	ResponseBase
	Year            int    `gorm:"column:year;not null" json:"year"`
	ProgramCode     string `gorm:"column:program_code;size:50" json:"program_code"`
	ProgramName     string `gorm:"column:program_name;size:150;not null" json:"program_name"`
	StudentsAppeared int   `gorm:"column:number_of_students_appeared_in_the_final_year_examination;default:0" json:"number_of_students_appeared_in_the_final_year_examination"`
	StudentsPassed   int   `gorm:"column:number_of_students_passed_in_the_final_year_examination;default:0" json:"number_of_students_passed_in_the_final_year_examination"`
}

func (Response263) TableName() string { return "response_2_6_3" }
