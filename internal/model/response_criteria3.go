package model

// Response311 records one sponsored research grant. Natural key: session,
// year of award, principal investigator, project name.
type Response311 struct {
	ResponseBase
	Year                 int     `gorm:"column:year;not null" json:"year"`
	PrincipalInvestigator string `gorm:"column:name_of_principal_investigator;size:100;not null" json:"name_of_principal_investigator"`
	PIDepartment         string  `gorm:"column:department_of_principal_investigator;size:100" json:"department_of_principal_investigator"`
	DurationOfProject    string  `gorm:"column:duration_of_project;size:50" json:"duration_of_project"`
	ProjectType          string  `gorm:"column:type;size:50" json:"type"`
	ProjectName          string  `gorm:"column:name_of_project;size:255;not null" json:"name_of_project"`
	YearOfAward          int     `gorm:"column:year_of_award;not null" json:"year_of_award"`
	AmountSanctioned     float64 `gorm:"column:amount_sanctioned;default:0" json:"amount_sanctioned"`
	FundingAgency        string  `gorm:"column:name_of_funding_agency;size:255" json:"name_of_funding_agency"`
}

func (Response311) TableName() string { return "response_3_1_1" }
