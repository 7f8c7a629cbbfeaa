package model

// Response712 holds the alternate-energy initiatives option for a session.
// One row per session, merged in place.
type Response712 struct {
	ResponseBase
	Options int `gorm:"column:options;not null;default:0" json:"options"`
}

func (Response712) TableName() string { return "response_7_1_2" }

// Response7110 holds the code-of-conduct option for a session together with
// its supporting evidence fields.
type Response7110 struct {
	ResponseBase
	Options             int    `gorm:"column:options;not null;default:0" json:"options"`
	Year                int    `gorm:"column:year" json:"year"`
	CodePublished       string `gorm:"column:code_published;size:10" json:"code_published"`
	MonitoringCommittee string `gorm:"column:monitoring_committee;size:10" json:"monitoring_committee"`
	EthicsPrograms      string `gorm:"column:ethics_programs;size:10" json:"ethics_programs"`
	AwarenessPrograms   string `gorm:"column:awareness_programs;size:10" json:"awareness_programs"`
	ReportLinks         string `gorm:"column:report_links;size:500" json:"report_links,omitempty"`
	AdditionalInfo      string `gorm:"column:additional_info;type:text" json:"additional_info,omitempty"`
}

func (Response7110) TableName() string { return "response_7_1_10" }
