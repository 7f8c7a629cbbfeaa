package model

// ExtendedProfile is the per-year institutional snapshot attached to an IIQA
// form. Cross-entity formulas read enrollment and staffing denominators from
// here rather than from response tables.
type ExtendedProfile struct {
	BaseModel
	IIQAFormID                uint    `gorm:"column:iiqa_form_id;not null;uniqueIndex:idx_profile_form_year" json:"iiqa_form_id"`
	Year                      int     `gorm:"column:year;not null;uniqueIndex:idx_profile_form_year" json:"year"`
	NumberOfCoursesOffered    int     `gorm:"column:number_of_courses_offered;default:0" json:"number_of_courses_offered"`
	TotalStudents             int     `gorm:"column:total_students;default:0" json:"total_students"`
	ReservedCategorySeats     int     `gorm:"column:reserved_category_seats;default:0" json:"reserved_category_seats"`
	OutgoingFinalYearStudents int     `gorm:"column:outgoing_final_year_students;default:0" json:"outgoing_final_year_students"`
	FullTimeTeachers          int     `gorm:"column:full_time_teachers;default:0" json:"full_time_teachers"`
	SanctionedPosts           int     `gorm:"column:sanctioned_posts;default:0" json:"sanctioned_posts"`
	TotalClassrooms           int     `gorm:"column:total_classrooms;default:0" json:"total_classrooms"`
	TotalSeminarHalls         int     `gorm:"column:total_seminar_halls;default:0" json:"total_seminar_halls"`
	TotalComputers            int     `gorm:"column:total_computers;default:0" json:"total_computers"`
	ExpenditureInLakhs        float64 `gorm:"column:expenditure_in_lakhs;default:0" json:"expenditure_in_lakhs"`
}

func (ExtendedProfile) TableName() string {
	return "extended_profiles"
}
