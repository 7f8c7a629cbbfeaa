package database

import (
	"naac_backend/internal/model"
	"naac_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type criteriaSeed struct {
	code    string
	subSub  string
	name    string
	subName string
	crName  string
	ctype   string
}

var criteriaCatalog = []criteriaSeed{
	{"1.1.3", "010103", "Teachers participate in curriculum development bodies of the University", "Curricular Planning and Implementation", "Curricular Aspects", "Qn"},
	{"1.2.1", "010201", "Percentage of programmes with CBCS or elective course system", "Academic Flexibility", "Curricular Aspects", "Qn"},
	{"1.2.2", "010202", "Number of Add on or Certificate programs offered", "Academic Flexibility", "Curricular Aspects", "Qn"},
	{"1.3.2", "010302", "Percentage of courses with experiential learning through project work, field work or internship", "Curriculum Enrichment", "Curricular Aspects", "Qn"},
	{"1.3.3", "010303", "Percentage of students undertaking project work, field work or internships", "Curriculum Enrichment", "Curricular Aspects", "Qn"},
	{"1.4.1", "010401", "Feedback on the academic performance and ambience obtained from stakeholders", "Feedback System", "Curricular Aspects", "Ql"},
	{"1.4.2", "010402", "Feedback processes of the institution", "Feedback System", "Curricular Aspects", "Ql"},
	{"2.1.1", "020101", "Average Enrolment percentage", "Student Enrolment and Profile", "Teaching-Learning and Evaluation", "Qn"},
	{"2.1.2", "020102", "Percentage of seats filled against reserved categories as per GoI or State rules", "Student Enrolment and Profile", "Teaching-Learning and Evaluation", "Qn"},
	{"2.2.2", "020202", "Student - Full time teacher ratio", "Catering to Student Diversity", "Teaching-Learning and Evaluation", "Qn"},
	{"2.3.3", "020303", "Ratio of mentor to students for academic and other related issues", "Teaching-Learning Process", "Teaching-Learning and Evaluation", "Qn"},
	{"2.4.1", "020401", "Percentage of full time teachers against sanctioned posts", "Teacher Profile and Quality", "Teaching-Learning and Evaluation", "Qn"},
	{"2.4.2", "020402", "Percentage of full time teachers with Ph.D. or equivalent", "Teacher Profile and Quality", "Teaching-Learning and Evaluation", "Qn"},
	{"2.4.3", "020403", "Average teaching experience of full time teachers", "Teacher Profile and Quality", "Teaching-Learning and Evaluation", "Qn"},
	{"2.6.3", "020603", "Average pass percentage of students in final year examinations", "Student Performance and Learning Outcomes", "Teaching-Learning and Evaluation", "Qn"},
	{"3.1.1", "030101", "Grants received from Government and non-governmental agencies for research projects", "Resource Mobilization for Research", "Research, Innovations and Extension", "Qn"},
	{"6.2.3", "060203", "Implementation of e-governance in areas of operation", "Strategy Development and Deployment", "Governance, Leadership and Management", "Qn"},
	{"6.3.2", "060302", "Percentage of teachers provided with financial support to attend conferences and workshops", "Faculty Empowerment Strategies", "Governance, Leadership and Management", "Qn"},
	{"6.3.3", "060303", "Number of professional development and administrative training programs organized", "Faculty Empowerment Strategies", "Governance, Leadership and Management", "Qn"},
	{"6.3.4", "060304", "Percentage of teachers undergoing Faculty Development Programmes", "Faculty Empowerment Strategies", "Governance, Leadership and Management", "Qn"},
	{"6.4.2", "060402", "Funds and grants received from non-government bodies, individuals and philanthropists", "Financial Management and Resource Mobilization", "Governance, Leadership and Management", "Qn"},
	{"7.1.2", "070102", "Facilities for alternate sources of energy and energy conservation measures", "Institutional Values and Social Responsibilities", "Institutional Values and Best Practices", "Qn"},
	{"7.1.10", "070110", "Code of conduct for students, teachers and institutional functionaries", "Institutional Values and Social Responsibilities", "Institutional Values and Best Practices", "Qn"},
}

// SeedCriteriaMaster inserts the accreditation taxonomy. Rerunning is safe;
// existing codes are left untouched.
func SeedCriteriaMaster(db *gorm.DB) error {
	entries := make([]model.CriteriaMaster, 0, len(criteriaCatalog))
	for _, seed := range criteriaCatalog {
		entries = append(entries, model.CriteriaMaster{
			CriteriaCode:        seed.code,
			CriterionID:         seed.subSub[:2],
			SubCriterionID:      seed.subSub[:4],
			SubSubCriterionID:   seed.subSub,
			CriterionName:       seed.crName,
			SubCriterionName:    seed.subName,
			SubSubCriterionName: seed.name,
			CriteriaType:        seed.ctype,
		})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "criteria_code"}},
		DoNothing: true,
	}).Create(&entries).Error
	if err != nil {
		return err
	}

	logger.Log.Info("criteria taxonomy seeded", zap.Int("entries", len(entries)))
	return nil
}
