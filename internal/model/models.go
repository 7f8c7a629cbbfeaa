package model

// AllModels lists every table for AutoMigrate, reference tables first so
// foreign keys resolve.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&CriteriaMaster{},
		&IIQAForm{},
		&IIQADepartment{},
		&IIQAStaffDetails{},
		&IIQAStudentDetails{},
		&IIQAProgrammeCount{},
		&ExtendedProfile{},
		&Score{},
		&Response113{},
		&Response121{},
		&Response122{},
		&Response132{},
		&Response133{},
		&Response141{},
		&Response142{},
		&Response211{},
		&Response212{},
		&Response222{},
		&Response233{},
		&Response241{},
		&Response242{},
		&Response243{},
		&Response263{},
		&Response311{},
		&Response623{},
		&Response632{},
		&Response633{},
		&Response634{},
		&Response642{},
		&Response712{},
		&Response7110{},
	}
}
