// slots.go reads the teaching-slot spreadsheet and derives the report fields
// for each slot.

package assignments

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mark-caprio/dgstools/tabular"
)

// slotFields are the declared columns of the slot spreadsheet: the registrar
// class-list fields followed by the add-on assignment fields. The spreadsheet
// has a header row.
var slotFields = []string{
	"course_section", "title", "credits",
	"enrollment_status", "enrollment_max", "enrollment_open",
	"crosslisted", "crn", "instructor", "when",
	"start_date", "end_date", "where",
	"section_and_when_relevant", "exams", "role", "hours", "ta",
	"conflicts", "notes", "history",
}

// ReadSlots reads the slot spreadsheet. Rows with an empty course-section
// field are dropped. Nonconforming timeslots are reported as warnings and
// passed through uncompressed.
func ReadSlots(path string, log *zap.Logger) ([]*Slot, error) {
	records, err := tabular.ReadRecords(path, slotFields, tabular.ReadOptions{
		SkipHeader: true,
	})
	if err != nil {
		return nil, err
	}

	var slots []*Slot
	for _, rec := range records {
		if rec["course_section"] == "" {
			continue
		}
		slot, err := newSlot(rec, log)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// newSlot builds a slot from its spreadsheet record, deriving the course,
// section, and meeting-time report fields.
func newSlot(rec tabular.Record, log *zap.Logger) (*Slot, error) {
	course, section := splitCourseSection(rec["course_section"])

	// Registrar marks provisional sections with a trailing asterisk.
	section = strings.TrimSuffix(section, "*")

	relevant := rec["section_and_when_relevant"] == "X"

	sectionOrNone := ""
	if relevant {
		sectionOrNone = section
	}

	// Co-taught courses list instructors slash-separated.
	instructor := strings.ReplaceAll(rec["instructor"], "/", "&")

	whenOrExams := ""
	switch {
	case relevant:
		short, bad := CompressTimeslot(rec["when"])
		for _, b := range bad {
			log.Warn("nonstandard registrar timeslot",
				zap.String("course", course),
				zap.String("timeslot", b),
			)
		}
		whenOrExams = short
	case rec["exams"] != "":
		whenOrExams = rec["exams"]
	}

	hours := 0
	if rec["hours"] != "" {
		var err error
		hours, err = strconv.Atoi(rec["hours"])
		if err != nil {
			return nil, fmt.Errorf("slot for %q: bad hours %q", rec["course_section"], rec["hours"])
		}
	}

	return &Slot{
		CourseSection:    rec["course_section"],
		Title:            rec["title"],
		Credits:          rec["credits"],
		EnrollmentStatus: rec["enrollment_status"],
		EnrollmentMax:    rec["enrollment_max"],
		EnrollmentOpen:   rec["enrollment_open"],
		CrossListed:      rec["crosslisted"],
		CRN:              rec["crn"],
		Instructor:       instructor,
		When:             rec["when"],
		StartDate:        rec["start_date"],
		EndDate:          rec["end_date"],
		Where:            rec["where"],
		SectionRelevant:  relevant,
		Exams:            rec["exams"],
		Role:             rec["role"],
		Hours:            hours,
		TA:               rec["ta"],
		Conflicts:        rec["conflicts"],
		Notes:            rec["notes"],
		History:          rec["history"],
		Course:           course,
		Section:          section,
		CourseOrNone:     courseOrNone(course),
		SectionOrNone:    sectionOrNone,
		WhenOrExams:      whenOrExams,
	}, nil
}

// splitCourseSection splits "PHYS 10240-01" into course and section parts. A
// missing separator yields an empty section.
func splitCourseSection(courseSection string) (course, section string) {
	course, section, _ = strings.Cut(courseSection, "-")
	return course, section
}
