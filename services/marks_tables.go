package services

import "project-review-api/models"

// Physical marks tables are partitioned by semester band, review type,
// review mode and evaluator role. Table names come out of this fixed
// registry only; identifiers are never built from request input.

type SemesterBand string

const (
	BandS5S6 SemesterBand = "s5_s6"
	// Semester 8 shares the semester 7 tables. Kept as the legacy
	// schema has it; flagged as a product question in DESIGN.md.
	BandS7 SemesterBand = "s7"
)

type EvalRole string

const (
	RoleGuide     EvalRole = "guide"
	RoleSubExpert EvalRole = "subexpert"
	RolePMC1      EvalRole = "pmc1"
	RolePMC2      EvalRole = "pmc2"
)

// ReviewModeRegular complements the request modes defined in models.
const ReviewModeRegular = "regular"

type marksTableKey struct {
	band       SemesterBand
	reviewType string // models.ReviewTypeFirst / models.ReviewTypeSecond
	mode       string // regular / optional / challenge
	role       EvalRole
}

var marksTables = map[marksTableKey]string{
	// regular, guide + sub-expert
	{BandS5S6, models.ReviewTypeFirst, ReviewModeRegular, RoleGuide}:      "s5_s6_first_marks_byguide",
	{BandS5S6, models.ReviewTypeFirst, ReviewModeRegular, RoleSubExpert}:  "s5_s6_first_marks_bysubexpert",
	{BandS5S6, models.ReviewTypeSecond, ReviewModeRegular, RoleGuide}:     "s5_s6_second_marks_byguide",
	{BandS5S6, models.ReviewTypeSecond, ReviewModeRegular, RoleSubExpert}: "s5_s6_second_marks_bysubexpert",
	{BandS7, models.ReviewTypeFirst, ReviewModeRegular, RoleGuide}:        "s7_first_marks_byguide",
	{BandS7, models.ReviewTypeFirst, ReviewModeRegular, RoleSubExpert}:    "s7_first_marks_bysubexpert",
	{BandS7, models.ReviewTypeSecond, ReviewModeRegular, RoleGuide}:       "s7_second_marks_byguide",
	{BandS7, models.ReviewTypeSecond, ReviewModeRegular, RoleSubExpert}:   "s7_second_marks_bysubexpert",

	// optional, guide + sub-expert
	{BandS5S6, models.ReviewTypeFirst, models.ModeOptional, RoleGuide}:      "s5_s6_first_optional_marks_byguide",
	{BandS5S6, models.ReviewTypeFirst, models.ModeOptional, RoleSubExpert}:  "s5_s6_first_optional_marks_bysubexpert",
	{BandS5S6, models.ReviewTypeSecond, models.ModeOptional, RoleGuide}:     "s5_s6_second_optional_marks_byguide",
	{BandS5S6, models.ReviewTypeSecond, models.ModeOptional, RoleSubExpert}: "s5_s6_second_optional_marks_bysubexpert",
	{BandS7, models.ReviewTypeFirst, models.ModeOptional, RoleGuide}:        "s7_first_optional_marks_byguide",
	{BandS7, models.ReviewTypeFirst, models.ModeOptional, RoleSubExpert}:    "s7_first_optional_marks_bysubexpert",
	{BandS7, models.ReviewTypeSecond, models.ModeOptional, RoleGuide}:       "s7_second_optional_marks_byguide",
	{BandS7, models.ReviewTypeSecond, models.ModeOptional, RoleSubExpert}:   "s7_second_optional_marks_bysubexpert",

	// challenge, PMC pair
	{BandS5S6, models.ReviewTypeFirst, models.ModeChallenge, RolePMC1}:  "s5_s6_first_challenge_marks_bypmc1",
	{BandS5S6, models.ReviewTypeFirst, models.ModeChallenge, RolePMC2}:  "s5_s6_first_challenge_marks_bypmc2",
	{BandS5S6, models.ReviewTypeSecond, models.ModeChallenge, RolePMC1}: "s5_s6_second_challenge_marks_bypmc1",
	{BandS5S6, models.ReviewTypeSecond, models.ModeChallenge, RolePMC2}: "s5_s6_second_challenge_marks_bypmc2",
	{BandS7, models.ReviewTypeFirst, models.ModeChallenge, RolePMC1}:    "s7_first_challenge_marks_bypmc1",
	{BandS7, models.ReviewTypeFirst, models.ModeChallenge, RolePMC2}:    "s7_first_challenge_marks_bypmc2",
	{BandS7, models.ReviewTypeSecond, models.ModeChallenge, RolePMC1}:   "s7_second_challenge_marks_bypmc1",
	{BandS7, models.ReviewTypeSecond, models.ModeChallenge, RolePMC2}:   "s7_second_challenge_marks_bypmc2",
}

// BandForSemester maps a semester (5-8) to its table band.
func BandForSemester(semester int) (SemesterBand, bool) {
	switch semester {
	case 5, 6:
		return BandS5S6, true
	case 7, 8:
		return BandS7, true
	}
	return "", false
}

// MarksTable resolves the physical table for one evaluator's marks.
func MarksTable(semester int, reviewType, mode string, role EvalRole) (string, bool) {
	band, ok := BandForSemester(semester)
	if !ok {
		return "", false
	}
	name, ok := marksTables[marksTableKey{band, reviewType, mode, role}]
	return name, ok
}
