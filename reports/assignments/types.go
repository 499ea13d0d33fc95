// Package assignments cross-references the TA roster against the teaching
// slot spreadsheet: it tallies assigned hours against each TA's quota and
// renders the assignment reports by course and by TA.
package assignments

// TA is one row of the TA roster.
type TA struct {
	Last    string
	First   string
	Year    string
	NetID   string
	Advisor string
	Area    string
	Status  string // TA/RA funding status, informational only
	Quota   int    // assignable hours
	Notes   string

	// Key is the canonical "last:first" identifier, used to disambiguate
	// TAs sharing a last name.
	Key string
}

// FullName returns the report form "Last, First (Year)".
func (ta *TA) FullName() string {
	return ta.Last + ", " + ta.First + " (" + ta.Year + ")"
}

// Slot is one teaching-assignment row of the slot spreadsheet.
type Slot struct {
	// Registrar fields.
	CourseSection    string
	Title            string
	Credits          string
	EnrollmentStatus string
	EnrollmentMax    string
	EnrollmentOpen   string
	CrossListed      string
	CRN              string
	Instructor       string
	When             string
	StartDate        string
	EndDate          string
	Where            string

	// Add-on fields maintained in the assignment spreadsheet.
	SectionRelevant bool // both section number and meeting times matter
	Exams           string
	Role            string
	Hours           int
	TA              string
	Conflicts       string
	Notes           string
	History         string

	// Derived fields.
	Course        string
	Section       string
	CourseOrNone  string // course number, or placeholder for pseudo-courses
	SectionOrNone string // section, suppressed when not relevant
	WhenOrExams   string // compressed timeslot, or exam dates
}

// Values of the ta field that mark a slot as unfilled:
//
//	"?" slot to be filled (flagged as "????????" in the by-course report)
//	"X" intentionally empty slot, listed explicitly (e.g. no support)
//	"." hidden reserved slot, suppressed from output entirely
const (
	taToBeFilled = "?"
	taEmptySlot  = "X"
	taReserved   = "."
)

// Unfilled reports whether a slot's ta field denotes no assigned TA.
func Unfilled(ta string) bool {
	switch ta {
	case "", taToBeFilled, taEmptySlot, taReserved:
		return true
	}
	return false
}

// Suppressed reports whether a slot is hidden from the reports.
func Suppressed(ta string) bool {
	return ta == taReserved
}

// Course numbers alphabetically above the threshold are used for sorting but
// printed as a placeholder.
const (
	courseNoneThreshold = "PHYS99900"
	courseNoneText      = "PHYSXXXXX"
)

// courseOrNone maps a course number to its printed form.
func courseOrNone(course string) string {
	if course <= courseNoneThreshold {
		return course
	}
	return courseNoneText
}

// Report column widths. Titles and instructor names are truncated on report
// lines (not header lines).
const (
	titleWidth      = 25
	instructorWidth = 15
	fullnameWidth   = 28 // "Last, First (Year)"
	roleWidth       = 24 // e.g. "Exam Grading"
	roleWidthByTA   = 21 // trimmed so the by-TA listing doesn't run over
)
