package service

import "testing"

func TestThresholdsGrade(t *testing.T) {
	table := Thresholds(30, 20, 10, 5)

	cases := []struct {
		value float64
		want  int
	}{
		{32, 4},
		{30, 4},
		{29.9, 3},
		{20, 3},
		{10, 2},
		{5, 1},
		{4.9, 0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := table.Grade(tc.value); got != tc.want {
			t.Errorf("Grade(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestLowerThresholdsGrade(t *testing.T) {
	table := LowerThresholds(20, 30, 40, 50)

	cases := []struct {
		value float64
		want  int
	}{
		{15, 4},
		{20, 4},
		{21, 3},
		{30, 3},
		{40, 2},
		{50, 1},
		{51, 0},
	}
	for _, tc := range cases {
		if got := table.Grade(tc.value); got != tc.want {
			t.Errorf("Grade(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestDirectTableGrade(t *testing.T) {
	table := DirectTable()
	for option := 0; option <= 4; option++ {
		if got := table.Grade(float64(option)); got != option {
			t.Errorf("Grade(%d) = %d, want the option itself", option, got)
		}
	}
}

// Higher results must never map to a lower grade.
func TestGradeMonotonicity(t *testing.T) {
	table := Thresholds(90, 80, 70, 60)

	prev := -1
	for value := 0.0; value <= 100; value += 0.5 {
		grade := table.Grade(value)
		if grade < prev {
			t.Fatalf("grade dropped from %d to %d at value %v", prev, grade, value)
		}
		prev = grade
	}
}

func TestLowerGradeMonotonicity(t *testing.T) {
	table := LowerThresholds(20, 30, 40, 50)

	prev := 5
	for value := 0.0; value <= 60; value += 0.5 {
		grade := table.Grade(value)
		if grade > prev {
			t.Fatalf("grade rose from %d to %d at value %v", prev, grade, value)
		}
		prev = grade
	}
}
