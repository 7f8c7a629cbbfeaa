package model

// IIQAForm is the self-assessment anchor. The most recently created form
// defines the session window every submission and score computation is
// validated against.
type IIQAForm struct {
	BaseModel
	InstitutionID    uint   `gorm:"column:institution_id;not null;index" json:"institution_id"`
	SessionStartYear int    `gorm:"column:session_start_year;not null" json:"session_start_year"`
	SessionEndYear   int    `gorm:"column:session_end_year;not null" json:"session_end_year"`
	YearFilled       int    `gorm:"column:year_filled" json:"year_filled"`
	NAACCycle        int    `gorm:"column:naac_cycle;default:1" json:"naac_cycle"`
	DesiredGrade     string `gorm:"column:desired_grade;size:4" json:"desired_grade"`
	HasMOU           bool   `gorm:"column:has_mou;default:false" json:"has_mou"`
	MOUFileURL       string `gorm:"column:mou_file_url;size:500" json:"mou_file_url,omitempty"`
	Status           string `gorm:"column:status;size:20;default:Pending" json:"status"`

	Departments     []IIQADepartment     `gorm:"foreignKey:IIQAFormID" json:"departments,omitempty"`
	StaffDetails    []IIQAStaffDetails   `gorm:"foreignKey:IIQAFormID" json:"staff_details,omitempty"`
	StudentDetails  []IIQAStudentDetails `gorm:"foreignKey:IIQAFormID" json:"student_details,omitempty"`
	ProgrammeCounts []IIQAProgrammeCount `gorm:"foreignKey:IIQAFormID" json:"programme_counts,omitempty"`
}

func (IIQAForm) TableName() string {
	return "iiqa_forms"
}

type IIQADepartment struct {
	BaseModel
	IIQAFormID     uint   `gorm:"column:iiqa_form_id;not null;index" json:"iiqa_form_id"`
	DepartmentName string `gorm:"column:department_name;size:255;not null" json:"department_name"`
	Faculty        string `gorm:"column:faculty;size:255" json:"faculty"`
}

func (IIQADepartment) TableName() string {
	return "iiqa_departments"
}

// IIQAStaffDetails holds one row per staff category (permanent or other)
// with gendered headcounts, mirroring the IIQA staffing annexure.
type IIQAStaffDetails struct {
	BaseModel
	IIQAFormID       uint   `gorm:"column:iiqa_form_id;not null;index" json:"iiqa_form_id"`
	StaffCategory    string `gorm:"column:staff_category;size:30;not null" json:"staff_category"`
	MaleCount        int    `gorm:"column:male_count;default:0" json:"male_count"`
	FemaleCount      int    `gorm:"column:female_count;default:0" json:"female_count"`
	TransgenderCount int    `gorm:"column:transgender_count;default:0" json:"transgender_count"`
}

func (IIQAStaffDetails) TableName() string {
	return "iiqa_staff_details"
}

func (s IIQAStaffDetails) Total() int {
	return s.MaleCount + s.FemaleCount + s.TransgenderCount
}

type IIQAStudentDetails struct {
	BaseModel
	IIQAFormID       uint   `gorm:"column:iiqa_form_id;not null;index" json:"iiqa_form_id"`
	StudentCategory  string `gorm:"column:student_category;size:30;default:regular" json:"student_category"`
	MaleCount        int    `gorm:"column:male_count;default:0" json:"male_count"`
	FemaleCount      int    `gorm:"column:female_count;default:0" json:"female_count"`
	TransgenderCount int    `gorm:"column:transgender_count;default:0" json:"transgender_count"`
}

func (IIQAStudentDetails) TableName() string {
	return "iiqa_student_details"
}

func (s IIQAStudentDetails) Total() int {
	return s.MaleCount + s.FemaleCount + s.TransgenderCount
}

type IIQAProgrammeCount struct {
	BaseModel
	IIQAFormID    uint   `gorm:"column:iiqa_form_id;not null;index" json:"iiqa_form_id"`
	ProgrammeType string `gorm:"column:programme_type;size:30;not null" json:"programme_type"`
	Count         int    `gorm:"column:count;default:0" json:"count"`
}

func (IIQAProgrammeCount) TableName() string {
	return "iiqa_programme_counts"
}
