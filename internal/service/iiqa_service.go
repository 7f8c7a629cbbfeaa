package service

import (
	"time"

	"naac_backend/internal/model"
	"naac_backend/internal/repository"
	"naac_backend/internal/util"
)

// IIQAService manages the self-assessment anchor forms. The scoring engine
// never writes these; it only reads the latest one through AnchorSource.
type IIQAService struct {
	iiqa *repository.IIQARepository

	nowYear func() int
}

func NewIIQAService(iiqa *repository.IIQARepository) *IIQAService {
	return &IIQAService{
		iiqa:    iiqa,
		nowYear: func() int { return time.Now().Year() },
	}
}

type IIQADepartmentInput struct {
	DepartmentName string `json:"department_name" binding:"required"`
	Faculty        string `json:"faculty"`
}

type IIQAStaffInput struct {
	StaffCategory    string `json:"staff_category" binding:"required"`
	MaleCount        int    `json:"male_count"`
	FemaleCount      int    `json:"female_count"`
	TransgenderCount int    `json:"transgender_count"`
}

type IIQAStudentInput struct {
	StudentCategory  string `json:"student_category"`
	MaleCount        int    `json:"male_count"`
	FemaleCount      int    `json:"female_count"`
	TransgenderCount int    `json:"transgender_count"`
}

type IIQAProgrammeCountInput struct {
	ProgrammeType string `json:"programme_type" binding:"required"`
	Count         int    `json:"count"`
}

type CreateIIQAInput struct {
	InstitutionID    uint                      `json:"institution_id" binding:"required"`
	SessionStartYear int                       `json:"session_start_year" binding:"required"`
	SessionEndYear   int                       `json:"session_end_year" binding:"required"`
	NAACCycle        int                       `json:"naac_cycle"`
	DesiredGrade     string                    `json:"desired_grade"`
	HasMOU           bool                      `json:"has_mou"`
	MOUFileURL       string                    `json:"mou_file_url"`
	Departments      []IIQADepartmentInput     `json:"departments"`
	StaffDetails     []IIQAStaffInput          `json:"staff_details"`
	StudentDetails   []IIQAStudentInput        `json:"student_details"`
	ProgrammeCounts  []IIQAProgrammeCountInput `json:"programme_counts"`
}

// Create validates and stores a new anchor form with its annexures in one
// transaction. Once stored it becomes the authoritative anchor for every
// window resolution.
func (s *IIQAService) Create(in CreateIIQAInput) (*model.IIQAForm, error) {
	currentYear := s.nowYear()
	if in.SessionStartYear < 1990 || in.SessionStartYear > currentYear {
		return nil, util.Validationf("Session start year must be between 1990 and current year")
	}
	if in.SessionEndYear < in.SessionStartYear {
		return nil, util.Validationf("Session end year must not precede the start year")
	}
	if in.SessionEndYear > currentYear+1 {
		return nil, util.Validationf("Session end year must not be in the future")
	}
	if in.NAACCycle <= 0 {
		in.NAACCycle = 1
	}
	for _, staff := range in.StaffDetails {
		if staff.MaleCount < 0 || staff.FemaleCount < 0 || staff.TransgenderCount < 0 {
			return nil, util.Validationf("staff counts must be non-negative")
		}
	}
	for _, students := range in.StudentDetails {
		if students.MaleCount < 0 || students.FemaleCount < 0 || students.TransgenderCount < 0 {
			return nil, util.Validationf("student counts must be non-negative")
		}
	}

	form := &model.IIQAForm{
		InstitutionID:    in.InstitutionID,
		SessionStartYear: in.SessionStartYear,
		SessionEndYear:   in.SessionEndYear,
		YearFilled:       currentYear,
		NAACCycle:        in.NAACCycle,
		DesiredGrade:     in.DesiredGrade,
		HasMOU:           in.HasMOU,
		MOUFileURL:       in.MOUFileURL,
		Status:           "Submitted",
	}
	for _, d := range in.Departments {
		form.Departments = append(form.Departments, model.IIQADepartment{
			DepartmentName: d.DepartmentName,
			Faculty:        d.Faculty,
		})
	}
	for _, st := range in.StaffDetails {
		form.StaffDetails = append(form.StaffDetails, model.IIQAStaffDetails{
			StaffCategory:    st.StaffCategory,
			MaleCount:        st.MaleCount,
			FemaleCount:      st.FemaleCount,
			TransgenderCount: st.TransgenderCount,
		})
	}
	for _, st := range in.StudentDetails {
		category := st.StudentCategory
		if category == "" {
			category = "regular"
		}
		form.StudentDetails = append(form.StudentDetails, model.IIQAStudentDetails{
			StudentCategory:  category,
			MaleCount:        st.MaleCount,
			FemaleCount:      st.FemaleCount,
			TransgenderCount: st.TransgenderCount,
		})
	}
	for _, pc := range in.ProgrammeCounts {
		if pc.Count < 0 {
			return nil, util.Validationf("programme counts must be non-negative")
		}
		form.ProgrammeCounts = append(form.ProgrammeCounts, model.IIQAProgrammeCount{
			ProgrammeType: pc.ProgrammeType,
			Count:         pc.Count,
		})
	}

	if err := s.iiqa.Create(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *IIQAService) Latest() (*model.IIQAForm, error) {
	return s.iiqa.LatestWithDetails()
}
