package service

import "naac_backend/internal/model"

// Formula describes how one sub-criterion is scored: the span of the
// session window, the threshold ladder, and the reduction over response
// rows. Registered per dotted code so the engine stays data driven instead
// of one bespoke handler per code.
type Formula struct {
	WindowYears int
	Thresholds  GradeTable
	Aggregate   func(sc ScoreContext) (AggregateResult, error)
}

// ScoreContext is the resolved input every aggregation receives.
type ScoreContext struct {
	Criteria *model.CriteriaMaster
	Window   Window
	Session  int
}

// AggregateResult carries the numeric outcome plus the per-year breakdown
// where the formula produces one.
type AggregateResult struct {
	Value     float64            `json:"value"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

func (s *ScoreService) buildFormulas() map[string]Formula {
	return map[string]Formula{
		"1.1.3": {
			WindowYears: 5,
			Thresholds:  Thresholds(30, 20, 10, 5),
			Aggregate:   s.aggregate113,
		},
		"1.2.1": {
			WindowYears: 5,
			Thresholds:  Thresholds(25, 15, 5, 1),
			Aggregate:   s.aggregate121,
		},
		"1.2.2": {
			WindowYears: 4,
			Thresholds:  Thresholds(50, 35, 20, 10),
			Aggregate:   s.aggregate122,
		},
		"1.3.2": {
			WindowYears: 5,
			Thresholds:  Thresholds(35, 20, 10, 5),
			Aggregate:   s.aggregate132,
		},
		"1.3.3": {
			WindowYears: 5,
			Thresholds:  Thresholds(80, 60, 40, 20),
			Aggregate:   s.aggregate133,
		},
		"1.4.1": {
			WindowYears: 5,
			Thresholds:  DirectTable(),
			Aggregate:   s.aggregate141,
		},
		"1.4.2": {
			WindowYears: 5,
			Thresholds:  DirectTable(),
			Aggregate:   s.aggregate142,
		},
		"2.1.1": {
			WindowYears: 5,
			Thresholds:  Thresholds(80, 60, 40, 30),
			Aggregate:   s.aggregate211,
		},
		"2.1.2": {
			WindowYears: 5,
			Thresholds:  Thresholds(80, 60, 40, 30),
			Aggregate:   s.aggregate212,
		},
		"2.2.2": {
			WindowYears: 5,
			Thresholds:  LowerThresholds(20, 30, 40, 50),
			Aggregate:   s.aggregate222,
		},
		"2.3.3": {
			WindowYears: 5,
			Thresholds:  LowerThresholds(20, 30, 40, 50),
			Aggregate:   s.aggregate233,
		},
		"2.4.1": {
			WindowYears: 5,
			Thresholds:  Thresholds(75, 65, 50, 40),
			Aggregate:   s.aggregate241,
		},
		"2.4.2": {
			WindowYears: 5,
			Thresholds:  Thresholds(75, 60, 50, 30),
			Aggregate:   s.aggregate242,
		},
		"2.4.3": {
			WindowYears: 5,
			Thresholds:  Thresholds(15, 12, 9, 6),
			Aggregate:   s.aggregate243,
		},
		"2.6.3": {
			WindowYears: 5,
			Thresholds:  Thresholds(90, 80, 70, 60),
			Aggregate:   s.aggregate263,
		},
		"3.1.1": {
			WindowYears: 4,
			Thresholds:  Thresholds(100, 80, 60, 30),
			Aggregate:   s.aggregate311,
		},
		"6.2.3": {
			WindowYears: 5,
			Thresholds:  DirectTable(),
			Aggregate:   s.aggregate623,
		},
		"6.3.2": {
			WindowYears: 5,
			Thresholds:  Thresholds(50, 40, 20, 5),
			Aggregate:   s.aggregate632,
		},
		"6.3.3": {
			WindowYears: 4,
			Thresholds:  Thresholds(50, 40, 20, 5),
			Aggregate:   s.aggregate633,
		},
		"6.3.4": {
			WindowYears: 5,
			Thresholds:  Thresholds(50, 40, 20, 5),
			Aggregate:   s.aggregate634,
		},
		"6.4.2": {
			WindowYears: 4,
			Thresholds:  Thresholds(100, 80, 60, 30),
			Aggregate:   s.aggregate642,
		},
		"7.1.2": {
			WindowYears: 5,
			Thresholds:  DirectTable(),
			Aggregate:   s.aggregate712,
		},
		"7.1.10": {
			WindowYears: 5,
			Thresholds:  DirectTable(),
			Aggregate:   s.aggregate7110,
		},
	}
}
