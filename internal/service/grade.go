package service

// Band is one breakpoint of a grade ladder.
type Band struct {
	Limit float64
	Grade int
}

// GradeTable maps a numeric result to a grade 0-4. Bands are evaluated in
// order and the first match wins; anything below every band is grade 0.
// Regular tables compare >= against descending limits. LowerIsBetter tables
// (staff/student style ratios) compare <= against ascending limits.
type GradeTable struct {
	Bands         []Band
	LowerIsBetter bool
}

func (t GradeTable) Grade(value float64) int {
	for _, b := range t.Bands {
		if t.LowerIsBetter {
			if value <= b.Limit {
				return b.Grade
			}
		} else if value >= b.Limit {
			return b.Grade
		}
	}
	return 0
}

// Thresholds builds a descending >= ladder for grades 4 down to 1.
func Thresholds(g4, g3, g2, g1 float64) GradeTable {
	return GradeTable{Bands: []Band{
		{Limit: g4, Grade: 4},
		{Limit: g3, Grade: 3},
		{Limit: g2, Grade: 2},
		{Limit: g1, Grade: 1},
	}}
}

// LowerThresholds builds an ascending <= ladder for grades 4 down to 1.
func LowerThresholds(g4, g3, g2, g1 float64) GradeTable {
	return GradeTable{
		LowerIsBetter: true,
		Bands: []Band{
			{Limit: g4, Grade: 4},
			{Limit: g3, Grade: 3},
			{Limit: g2, Grade: 2},
			{Limit: g1, Grade: 1},
		},
	}
}

// DirectTable grades option-style results where the selected option 0-4 is
// the grade itself.
func DirectTable() GradeTable {
	return Thresholds(4, 3, 2, 1)
}
