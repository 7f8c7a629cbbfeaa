package model

const (
	RoleAdmin  = "admin"
	RoleIQAC   = "iqac"
	RoleViewer = "viewer"
)

// User is an IQAC supervisor account.
type User struct {
	BaseModel
	Name               string `gorm:"column:name;size:100;not null" json:"name"`
	Email              string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role               string `gorm:"column:role;size:20;default:iqac" json:"role"`
	InstitutionName    string `gorm:"column:institution_name;size:255" json:"institution_name"`
	InstitutionType    string `gorm:"column:institution_type;size:50" json:"institution_type"`
	AISHEID            string `gorm:"column:aishe_id;size:50" json:"aishe_id"`
	InstitutionalEmail string `gorm:"column:institutional_email;size:255" json:"institutional_email"`
	PhoneNumber        string `gorm:"column:phone_number;size:20" json:"phone_number"`
}

func (User) TableName() string {
	return "users"
}
