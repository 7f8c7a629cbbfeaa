package model

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ResponseBase is embedded by every per-sub-criterion response table. SlNo is
// the surrogate key; uniqueness of a fact is carried by each table's natural
// key index.
type ResponseBase struct {
	SlNo         uint      `gorm:"column:sl_no;primaryKey;autoIncrement" json:"sl_no"`
	CriteriaID   uint      `gorm:"column:criteria_id;not null" json:"criteria_id"`
	CriteriaCode string    `gorm:"column:criteria_code;size:20;index" json:"criteria_code"`
	Session      int       `gorm:"column:session;not null;index" json:"session"`
	SubmittedAt  time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
}
