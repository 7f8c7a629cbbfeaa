package service

import (
	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

type Submit311Input struct {
	Session               int     `json:"session" binding:"required"`
	Year                  int     `json:"year" binding:"required"`
	PrincipalInvestigator string  `json:"name_of_principal_investigator" binding:"required"`
	PIDepartment          string  `json:"department_of_principal_investigator"`
	DurationOfProject     string  `json:"duration_of_project"`
	ProjectType           string  `json:"type"`
	ProjectName           string  `json:"name_of_project" binding:"required"`
	YearOfAward           int     `json:"year_of_award" binding:"required"`
	AmountSanctioned      float64 `json:"amount_sanctioned"`
	FundingAgency         string  `json:"name_of_funding_agency"`
}

// Submit311 appends one research grant; a grant is a discrete award and
// duplicates are rejected.
func (s *SubmissionService) Submit311(in Submit311Input) (*model.Response311, error) {
	if err := requireFields(map[string]string{
		"name_of_principal_investigator": in.PrincipalInvestigator,
		"name_of_project":                in.ProjectName,
	}); err != nil {
		return nil, err
	}
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, err
	}
	if err := s.checkYear("Year of award", in.YearOfAward); err != nil {
		return nil, err
	}
	if in.AmountSanctioned < 0 {
		return nil, util.Validationf("amount sanctioned must be non-negative")
	}

	criteria, err := s.lookupCriteria("3.1.1", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code":                  criteria.CriteriaCode,
		"session":                        in.Session,
		"year_of_award":                  in.YearOfAward,
		"name_of_principal_investigator": in.PrincipalInvestigator,
		"name_of_project":                in.ProjectName,
	}
	row := &model.Response311{
		ResponseBase:          model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:                  in.Year,
		PrincipalInvestigator: in.PrincipalInvestigator,
		PIDepartment:          in.PIDepartment,
		DurationOfProject:     in.DurationOfProject,
		ProjectType:           in.ProjectType,
		ProjectName:           in.ProjectName,
		YearOfAward:           in.YearOfAward,
		AmountSanctioned:      in.AmountSanctioned,
		FundingAgency:         in.FundingAgency,
	}
	return s.responses.R311.Append(key, row)
}

type Submit623Input struct {
	Session        int `json:"session" binding:"required"`
	Implementation int `json:"implementation"`
}

// Submit623 merges the e-governance option, one row per session.
func (s *SubmissionService) Submit623(in Submit623Input) (*model.Response623, bool, error) {
	if err := checkOption(in.Implementation); err != nil {
		return nil, false, err
	}
	criteria, err := s.lookupCriteria("6.2.3", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
	}
	row := &model.Response623{
		ResponseBase:   model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Implementation: in.Implementation,
	}
	return s.responses.R623.Merge(key, row, map[string]interface{}{
		"implementation": in.Implementation,
	})
}

type Submit632Input struct {
	Session              int     `json:"session" binding:"required"`
	TeacherName          string  `json:"teacher_name" binding:"required"`
	ConferenceName       string  `json:"conference_name" binding:"required"`
	AmountOfSupportLakhs float64 `json:"amount_of_support_lakhs"`
}

// Submit632 merges one teacher's conference support record, keyed by
// session, teacher and conference.
func (s *SubmissionService) Submit632(in Submit632Input) (*model.Response632, bool, error) {
	if err := requireFields(map[string]string{
		"teacher_name":    in.TeacherName,
		"conference_name": in.ConferenceName,
	}); err != nil {
		return nil, false, err
	}
	if in.AmountOfSupportLakhs < 0 {
		return nil, false, util.Validationf("amount of support must be non-negative")
	}

	criteria, err := s.lookupCriteria("6.3.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code":   criteria.CriteriaCode,
		"session":         in.Session,
		"teacher_name":    in.TeacherName,
		"conference_name": in.ConferenceName,
	}
	row := &model.Response632{
		ResponseBase:         model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		TeacherName:          in.TeacherName,
		ConferenceName:       in.ConferenceName,
		AmountOfSupportLakhs: in.AmountOfSupportLakhs,
	}
	return s.responses.R632.Merge(key, row, map[string]interface{}{
		"amount_of_support_lakhs": in.AmountOfSupportLakhs,
	})
}

type Submit633Input struct {
	Session            int    `json:"session" binding:"required"`
	FromToDate         string `json:"from_to_date" binding:"required"`
	TitleOfProfDev     string `json:"title_of_prof_dev"`
	TitleOfAddTraining string `json:"title_of_add_training"`
}

// Submit633 appends one organised training programme; at least one of the
// two titles must be given.
func (s *SubmissionService) Submit633(in Submit633Input) (*model.Response633, error) {
	if err := requireFields(map[string]string{
		"from_to_date": in.FromToDate,
	}); err != nil {
		return nil, err
	}
	if in.TitleOfProfDev == "" && in.TitleOfAddTraining == "" {
		return nil, util.Validationf("either title_of_prof_dev or title_of_add_training is required")
	}

	criteria, err := s.lookupCriteria("6.3.3", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code":         criteria.CriteriaCode,
		"session":               in.Session,
		"from_to_date":          in.FromToDate,
		"title_of_prof_dev":     in.TitleOfProfDev,
		"title_of_add_training": in.TitleOfAddTraining,
	}
	row := &model.Response633{
		ResponseBase:       model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		FromToDate:         in.FromToDate,
		TitleOfProfDev:     in.TitleOfProfDev,
		TitleOfAddTraining: in.TitleOfAddTraining,
	}
	return s.responses.R633.Append(key, row)
}

type Submit634Input struct {
	Session      int    `json:"session" binding:"required"`
	TeacherName  string `json:"teacher_name" binding:"required"`
	ProgramTitle string `json:"program_title" binding:"required"`
	FromToDate   string `json:"from_to_date" binding:"required"`
}

// Submit634 appends one teacher's programme attendance; duplicates are
// rejected.
func (s *SubmissionService) Submit634(in Submit634Input) (*model.Response634, error) {
	if err := requireFields(map[string]string{
		"teacher_name":  in.TeacherName,
		"program_title": in.ProgramTitle,
		"from_to_date":  in.FromToDate,
	}); err != nil {
		return nil, err
	}

	criteria, err := s.lookupCriteria("6.3.4", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"teacher_name":  in.TeacherName,
		"program_title": in.ProgramTitle,
	}
	row := &model.Response634{
		ResponseBase: model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		TeacherName:  in.TeacherName,
		ProgramTitle: in.ProgramTitle,
		FromToDate:   in.FromToDate,
	}
	return s.responses.R634.Append(key, row)
}

type Submit642Input struct {
	Session          int     `json:"session" binding:"required"`
	Year             int     `json:"year" binding:"required"`
	DonorName        string  `json:"donor_name" binding:"required"`
	GrantAmountLakhs float64 `json:"grant_amount_lakhs"`
}

// Submit642 appends one philanthropic grant; duplicates per donor and year
// are rejected.
func (s *SubmissionService) Submit642(in Submit642Input) (*model.Response642, error) {
	if err := requireFields(map[string]string{
		"donor_name": in.DonorName,
	}); err != nil {
		return nil, err
	}
	if err := s.checkYear("Year", in.Year); err != nil {
		return nil, err
	}
	if in.GrantAmountLakhs < 0 {
		return nil, util.Validationf("grant amount must be non-negative")
	}

	criteria, err := s.lookupCriteria("6.4.2", in.Session)
	if err != nil {
		return nil, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
		"year":          in.Year,
		"donor_name":    in.DonorName,
	}
	row := &model.Response642{
		ResponseBase:     model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Year:             in.Year,
		DonorName:        in.DonorName,
		GrantAmountLakhs: in.GrantAmountLakhs,
	}
	return s.responses.R642.Append(key, row)
}

type Submit712Input struct {
	Session int `json:"session" binding:"required"`
	Options int `json:"options"`
}

// Submit712 merges the alternate-energy option, one row per session.
func (s *SubmissionService) Submit712(in Submit712Input) (*model.Response712, bool, error) {
	if err := checkOption(in.Options); err != nil {
		return nil, false, err
	}
	criteria, err := s.lookupCriteria("7.1.2", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
	}
	row := &model.Response712{
		ResponseBase: model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Options:      in.Options,
	}
	return s.responses.R712.Merge(key, row, map[string]interface{}{
		"options": in.Options,
	})
}

type Submit7110Input struct {
	Session             int    `json:"session" binding:"required"`
	Options             int    `json:"options"`
	Year                int    `json:"year"`
	CodePublished       string `json:"code_published"`
	MonitoringCommittee string `json:"monitoring_committee"`
	EthicsPrograms      string `json:"ethics_programs"`
	AwarenessPrograms   string `json:"awareness_programs"`
	ReportLinks         string `json:"report_links"`
	AdditionalInfo      string `json:"additional_info"`
}

// Submit7110 merges the code-of-conduct option with its evidence flags, one
// row per session.
func (s *SubmissionService) Submit7110(in Submit7110Input) (*model.Response7110, bool, error) {
	if err := checkOption(in.Options); err != nil {
		return nil, false, err
	}
	flags := map[string]*string{
		"code_published":       &in.CodePublished,
		"monitoring_committee": &in.MonitoringCommittee,
		"ethics_programs":      &in.EthicsPrograms,
		"awareness_programs":   &in.AwarenessPrograms,
	}
	for field, value := range flags {
		if *value == "" {
			continue
		}
		normalized, err := checkFlag(field, *value)
		if err != nil {
			return nil, false, err
		}
		*value = normalized
	}
	if in.Year != 0 {
		if err := s.checkYear("Year", in.Year); err != nil {
			return nil, false, err
		}
	}

	criteria, err := s.lookupCriteria("7.1.10", in.Session)
	if err != nil {
		return nil, false, err
	}

	key := map[string]interface{}{
		"criteria_code": criteria.CriteriaCode,
		"session":       in.Session,
	}
	row := &model.Response7110{
		ResponseBase:        model.ResponseBase{CriteriaID: criteria.ID, CriteriaCode: criteria.CriteriaCode, Session: in.Session},
		Options:             in.Options,
		Year:                in.Year,
		CodePublished:       in.CodePublished,
		MonitoringCommittee: in.MonitoringCommittee,
		EthicsPrograms:      in.EthicsPrograms,
		AwarenessPrograms:   in.AwarenessPrograms,
		ReportLinks:         in.ReportLinks,
		AdditionalInfo:      in.AdditionalInfo,
	}
	return s.responses.R7110.Merge(key, row, map[string]interface{}{
		"options":              in.Options,
		"year":                 in.Year,
		"code_published":       in.CodePublished,
		"monitoring_committee": in.MonitoringCommittee,
		"ethics_programs":      in.EthicsPrograms,
		"awareness_programs":   in.AwarenessPrograms,
		"report_links":         in.ReportLinks,
		"additional_info":      in.AdditionalInfo,
	})
}
