package model

// CriteriaMaster is the immutable accreditation taxonomy. One row per
// sub-sub-criterion; identifiers are zero-padded two digit segments, e.g.
// criterion "01", sub-criterion "0101", sub-sub-criterion "010103".
type CriteriaMaster struct {
	ID                  uint   `gorm:"primarykey" json:"id"`
	CriteriaCode        string `gorm:"column:criteria_code;size:20;uniqueIndex" json:"criteria_code"`
	CriterionID         string `gorm:"column:criterion_id;size:2;not null" json:"criterion_id"`
	SubCriterionID      string `gorm:"column:sub_criterion_id;size:4;not null" json:"sub_criterion_id"`
	SubSubCriterionID   string `gorm:"column:sub_sub_criterion_id;size:6;not null;index" json:"sub_sub_criterion_id"`
	CriterionName       string `gorm:"column:criterion_name;size:255" json:"criterion_name"`
	SubCriterionName    string `gorm:"column:sub_criterion_name;size:255" json:"sub_criterion_name"`
	SubSubCriterionName string `gorm:"column:sub_sub_criterion_name;size:500" json:"sub_sub_criterion_name"`
	CriteriaType        string `gorm:"column:criteria_type;size:2;default:Qn" json:"criteria_type"`
	Requirements        string `gorm:"column:requirements;type:text" json:"requirements,omitempty"`
}

func (CriteriaMaster) TableName() string {
	return "criteria_master"
}
