package service

import (
	"errors"
	"strings"
	"testing"

	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

func TestSubmitMergeUpdatesInPlace(t *testing.T) {
	env := newTestEnv(t)

	in := Submit113Input{
		Session:        2024,
		Year:           2023,
		TeacherName:    "Asha Rao",
		BodyName:       "Board of Studies",
		OptionSelected: 2,
	}
	_, created, err := env.submissions.Submit113(in)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if !created {
		t.Error("first submit should create a row")
	}

	in.OptionSelected = 3
	entry, created, err := env.submissions.Submit113(in)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if created {
		t.Error("second submit should update, not create")
	}
	if entry.OptionSelected != 3 {
		t.Errorf("option = %d, want the second payload's 3", entry.OptionSelected)
	}

	count := env.countRows(t, &model.Response113{}, map[string]interface{}{
		"criteria_code": "1.1.3",
		"session":       2024,
	})
	if count != 1 {
		t.Errorf("rows = %d, want exactly 1 after merge", count)
	}
}

func TestSubmitAppendRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)

	in := Submit133Input{
		Session:     2024,
		ProgramName: "B.Sc. Physics",
		ProgramCode: "BSC01",
		StudentName: "Ravi Kumar",
	}
	if _, err := env.submissions.Submit133(in); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	_, err := env.submissions.Submit133(in)
	if !errors.Is(err, util.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	count := env.countRows(t, &model.Response133{}, map[string]interface{}{
		"criteria_code": "1.3.3",
		"session":       2024,
	})
	if count != 1 {
		t.Errorf("rows = %d, want 1 after rejected duplicate", count)
	}
}

func TestSubmitSessionOutsideWindow(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.submissions.Submit113(Submit113Input{
		Session:     2018,
		Year:        2018,
		TeacherName: "Asha Rao",
		BodyName:    "Board of Studies",
	})
	if !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Session must be between 2019 and 2024") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.submissions.Submit113(Submit113Input{
		Session:  2024,
		Year:     2023,
		BodyName: "Board of Studies",
	})
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("expected validation error for missing teacher name, got %v", err)
	}
}

func facultyInput() FacultyAppointmentInput {
	return FacultyAppointmentInput{
		Session:             2024,
		TeacherName:         "Meena Iyer",
		Designation:         "Assistant Professor",
		YearOfAppointment:   2021,
		NatureOfAppointment: "Permanent",
		DepartmentName:      "Physics",
		YearsOfExperience:   3,
		StillServing:        "yes",
	}
}

func TestFacultyAppointmentWritesAllTables(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.submissions.SubmitFacultyAppointment(facultyInput())
	if err != nil {
		t.Fatalf("SubmitFacultyAppointment failed: %v", err)
	}
	if result.Code222 == nil || result.Code241 == nil || result.Code243 == nil {
		t.Fatal("expected a row per target table")
	}
	if result.Code222.StillServing != "YES" {
		t.Errorf("flag not normalized: %q", result.Code222.StillServing)
	}
	if result.Code222.TeacherName != "meena iyer" {
		t.Errorf("teacher name not normalized: %q", result.Code222.TeacherName)
	}

	for _, tc := range []struct {
		value interface{}
		code  string
	}{
		{&model.Response222{}, "2.2.2"},
		{&model.Response241{}, "2.4.1"},
		{&model.Response243{}, "2.4.3"},
	} {
		count := env.countRows(t, tc.value, map[string]interface{}{"criteria_code": tc.code})
		if count != 1 {
			t.Errorf("%s rows = %d, want 1", tc.code, count)
		}
	}
}

// A collision in any target table must leave all three untouched.
func TestFacultyAppointmentRollsBack(t *testing.T) {
	env := newTestEnv(t)

	in := facultyInput()
	c243, err := env.criteria.FindBySubSubID("020403")
	if err != nil {
		t.Fatalf("criteria lookup failed: %v", err)
	}
	existing := model.Response243{
		ResponseBase: model.ResponseBase{CriteriaID: c243.ID, CriteriaCode: c243.CriteriaCode, Session: in.Session},
		FacultyFacts: model.FacultyFacts{
			TeacherName:         "meena iyer",
			Designation:         in.Designation,
			YearOfAppointment:   in.YearOfAppointment,
			NatureOfAppointment: in.NatureOfAppointment,
			DepartmentName:      in.DepartmentName,
			YearsOfExperience:   in.YearsOfExperience,
			StillServing:        "YES",
		},
	}
	if err := env.db.Create(&existing).Error; err != nil {
		t.Fatalf("failed to seed colliding row: %v", err)
	}

	_, err = env.submissions.SubmitFacultyAppointment(in)
	if !errors.Is(err, util.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if count := env.countRows(t, &model.Response222{}, map[string]interface{}{"criteria_code": "2.2.2"}); count != 0 {
		t.Errorf("2.2.2 rows = %d, want 0 after rollback", count)
	}
	if count := env.countRows(t, &model.Response241{}, map[string]interface{}{"criteria_code": "2.4.1"}); count != 0 {
		t.Errorf("2.4.1 rows = %d, want 0 after rollback", count)
	}
	if count := env.countRows(t, &model.Response243{}, map[string]interface{}{"criteria_code": "2.4.3"}); count != 1 {
		t.Errorf("2.4.3 rows = %d, want only the pre-existing row", count)
	}
}

func TestSubmitOptionRange(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.submissions.Submit141(SubmitOptionInput{Session: 2024, OptionSelected: 5})
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("expected validation error for option 5, got %v", err)
	}

	entry, created, err := env.submissions.Submit141(SubmitOptionInput{Session: 2024, OptionSelected: 4})
	if err != nil {
		t.Fatalf("Submit141 failed: %v", err)
	}
	if !created || entry.OptionSelected != 4 {
		t.Errorf("unexpected result: created=%v option=%d", created, entry.OptionSelected)
	}

	// One row per session regardless of how often the option changes.
	if _, _, err := env.submissions.Submit141(SubmitOptionInput{Session: 2024, OptionSelected: 1}); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	count := env.countRows(t, &model.Response141{}, map[string]interface{}{
		"criteria_code": "1.4.1",
		"session":       2024,
	})
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}
