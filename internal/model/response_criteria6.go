package model

// Response623 holds the e-governance implementation option for a session.
// One row per session, merged in place.
type Response623 struct {
	ResponseBase
	Implementation int `gorm:"column:implementation;not null;default:0" json:"implementation"`
}

func (Response623) TableName() string { return "response_6_2_3" }

// Response632 records one teacher receiving financial support to attend a
// conference or workshop. Natural key: session, teacher, conference.
type Response632 struct {
	ResponseBase
	TeacherName          string  `gorm:"column:teacher_name;size:100;not null" json:"teacher_name"`
	ConferenceName       string  `gorm:"column:conference_name;size:255;not null" json:"conference_name"`
	AmountOfSupportLakhs float64 `gorm:"column:amount_of_support_lakhs;default:0" json:"amount_of_support_lakhs"`
}

func (Response632) TableName() string { return "response_6_3_2" }

// Response633 records one professional development or administrative
// training programme organised by the institution. Natural key: session,
// programme title, dates.
type Response633 struct {
	ResponseBase
	FromToDate         string `gorm:"column:from_to_date;size:100;not null" json:"from_to_date"`
	TitleOfProfDev     string `gorm:"column:title_of_prof_dev;size:255" json:"title_of_prof_dev"`
	TitleOfAddTraining string `gorm:"column:title_of_add_training;size:255" json:"title_of_add_training"`
}

func (Response633) TableName() string { return "response_6_3_3" }

// Response634 records one teacher attending a faculty development
// programme. Natural key: session, teacher, programme title.
type Response634 struct {
	ResponseBase
	TeacherName  string `gorm:"column:teacher_name;size:100;not null" json:"teacher_name"`
	ProgramTitle string `gorm:"column:program_title;size:255;not null" json:"program_title"`
	FromToDate   string `gorm:"column:from_to_date;size:100" json:"from_to_date"`
}

func (Response634) TableName() string { return "response_6_3_4" }

// Response642 records one philanthropic grant. Natural key: session, year,
// donor.
type Response642 struct {
	ResponseBase
	Year             int     `gorm:"column:year;not null" json:"year"`
	DonorName        string  `gorm:"column:donor_name;size:255;not null" json:"donor_name"`
	GrantAmountLakhs float64 `gorm:"column:grant_amount_lakhs;default:0" json:"grant_amount_lakhs"`
}

func (Response642) TableName() string { return "response_6_4_2" }
