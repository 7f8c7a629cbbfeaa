package model

import "time"

// Score is the ledger of computed results, at most one row per
// (criteria_code, session). Only the sub-sub level is written by the scoring
// engine; the coarser rollup columns stay zero until an aggregation cycle
// outside this service fills them.
type Score struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	CriteriaCode        string    `gorm:"column:criteria_code;size:20;not null;uniqueIndex:idx_score_code_session" json:"criteria_code"`
	CriteriaID          string    `gorm:"column:criteria_id;size:2" json:"criteria_id"`
	SubCriteriaID       string    `gorm:"column:sub_criteria_id;size:4" json:"sub_criteria_id"`
	SubSubCriteriaID    string    `gorm:"column:sub_sub_criteria_id;size:6" json:"sub_sub_criteria_id"`
	ScoreCriteria       float64   `gorm:"column:score_criteria;type:decimal(5,2);default:0" json:"score_criteria"`
	ScoreSubCriteria    float64   `gorm:"column:score_sub_criteria;type:decimal(5,2);default:0" json:"score_sub_criteria"`
	ScoreSubSubCriteria float64   `gorm:"column:score_sub_sub_criteria;type:decimal(5,2);default:0" json:"score_sub_sub_criteria"`
	SubSubCrGrade       int       `gorm:"column:sub_sub_cr_grade;default:0" json:"sub_sub_cr_grade"`
	Session             int       `gorm:"column:session;not null;uniqueIndex:idx_score_code_session" json:"session"`
	CycleYear           int       `gorm:"column:cycle_year" json:"cycle_year"`
	ComputedAt          time.Time `gorm:"column:computed_at;autoUpdateTime" json:"computed_at"`
}

func (Score) TableName() string {
	return "scores"
}
