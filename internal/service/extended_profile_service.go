package service

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/repository"
	"naac_backend/internal/util"
)

// ExtendedProfileService manages the per-year institutional snapshots the
// cross-entity formulas read their denominators from.
type ExtendedProfileService struct {
	profiles *repository.ExtendedProfileRepository
	iiqa     *repository.IIQARepository
	windows  *WindowResolver
}

func NewExtendedProfileService(
	profiles *repository.ExtendedProfileRepository,
	iiqa *repository.IIQARepository,
	windows *WindowResolver,
) *ExtendedProfileService {
	return &ExtendedProfileService{profiles: profiles, iiqa: iiqa, windows: windows}
}

type CreateProfileInput struct {
	Year                      int     `json:"year" binding:"required"`
	NumberOfCoursesOffered    int     `json:"number_of_courses_offered"`
	TotalStudents             int     `json:"total_students"`
	ReservedCategorySeats     int     `json:"reserved_category_seats"`
	OutgoingFinalYearStudents int     `json:"outgoing_final_year_students"`
	FullTimeTeachers          int     `json:"full_time_teachers"`
	SanctionedPosts           int     `json:"sanctioned_posts"`
	TotalClassrooms           int     `json:"total_classrooms"`
	TotalSeminarHalls         int     `json:"total_seminar_halls"`
	TotalComputers            int     `json:"total_computers"`
	ExpenditureInLakhs        float64 `json:"expenditure_in_lakhs"`
}

// Create attaches a yearly snapshot to the latest anchor form. The year
// must lie inside the anchor's window; one snapshot per year.
func (s *ExtendedProfileService) Create(in CreateProfileInput) (*model.ExtendedProfile, error) {
	counts := []int{
		in.NumberOfCoursesOffered, in.TotalStudents, in.ReservedCategorySeats,
		in.OutgoingFinalYearStudents, in.FullTimeTeachers, in.SanctionedPosts,
		in.TotalClassrooms, in.TotalSeminarHalls, in.TotalComputers,
	}
	for _, c := range counts {
		if c < 0 {
			return nil, util.Validationf("counts must be non-negative")
		}
	}
	if in.ExpenditureInLakhs < 0 {
		return nil, util.Validationf("expenditure must be non-negative")
	}

	anchor, err := s.iiqa.Latest()
	if err != nil {
		return nil, err
	}
	window, err := s.windows.Resolve(5)
	if err != nil {
		return nil, err
	}
	if !window.Contains(in.Year) {
		return nil, util.Validationf("Session must be between %d and %d", window.StartYear, window.EndYear)
	}

	_, err = s.profiles.FindByFormAndYear(anchor.ID, in.Year)
	if err == nil {
		return nil, util.Duplicatef("an extended profile for year %d already exists", in.Year)
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	profile := &model.ExtendedProfile{
		IIQAFormID:                anchor.ID,
		Year:                      in.Year,
		NumberOfCoursesOffered:    in.NumberOfCoursesOffered,
		TotalStudents:             in.TotalStudents,
		ReservedCategorySeats:     in.ReservedCategorySeats,
		OutgoingFinalYearStudents: in.OutgoingFinalYearStudents,
		FullTimeTeachers:          in.FullTimeTeachers,
		SanctionedPosts:           in.SanctionedPosts,
		TotalClassrooms:           in.TotalClassrooms,
		TotalSeminarHalls:         in.TotalSeminarHalls,
		TotalComputers:            in.TotalComputers,
		ExpenditureInLakhs:        in.ExpenditureInLakhs,
	}
	if err := s.profiles.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List returns the snapshots of the latest anchor form.
func (s *ExtendedProfileService) List() ([]model.ExtendedProfile, error) {
	anchor, err := s.iiqa.Latest()
	if err != nil {
		return nil, err
	}
	return s.profiles.ListByForm(anchor.ID)
}
