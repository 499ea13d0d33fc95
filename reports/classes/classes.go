// Package classes extracts the departmental class listing from the
// registrar's class schedule spreadsheet, in both the CourseLeaf format (from
// Summer 2022) and the legacy Class Search format.
package classes

import (
	"fmt"
	"strings"

	"github.com/mark-caprio/dgstools/tabular"
)

// Class is one section of the class schedule.
type Class struct {
	Course          string
	Section         string
	CRN             string
	Enrollment      string
	MaxEnrollment   string
	CrossList       string
	Title           string
	Instructor      string // "Last, First [& ...]"
	ShortInstructor string // "Last [& ...]"
	When            string
	Where           string
}

// ReadCourseLeaf reads a CourseLeaf class schedule export. Format summary:
//
//   - the first two lines are annotation
//   - the next line gives the field tags, first cell blank
//   - the remaining lines are grouped by class, with the class title in the
//     first cell of the heading line and section info on the following lines
//     (first cell blank)
//
// Blacklisted course numbers are omitted.
func ReadCourseLeaf(path string, blacklist []string) ([]*Class, error) {
	table, err := tabular.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if len(table) < 4 {
		return nil, fmt.Errorf("%s: too short for a CourseLeaf export", path)
	}

	fields := table[2][1:]
	blacklisted := make(map[string]bool, len(blacklist))
	for _, course := range blacklist {
		blacklisted[course] = true
	}

	var classes []*Class
	for _, row := range table[3:] {
		if len(row) == 0 || row[0] != "" {
			continue
		}
		entry := make(tabular.Record, len(fields))
		for i, field := range fields {
			if i+1 < len(row) {
				entry[field] = row[i+1]
			}
		}

		instructor, short := ParseInstructors(entry["Instructor"])
		class := &Class{
			Course:          entry["Course"],
			Section:         entry["Section #"],
			CRN:             entry["CRN"],
			Enrollment:      entry["Enrollment"],
			MaxEnrollment:   entry["Maximum Enrollment"],
			CrossList:       entry["Cross-listings"],
			Title:           entry["Course Title"],
			Instructor:      instructor,
			ShortInstructor: short,
			When:            entry["Meeting Pattern"],
			Where:           entry["Room"],
		}
		if blacklisted[class.Course] {
			continue
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// ParseInstructors rewrites a CourseLeaf instructor entry, e.g.
//
//	"Howk, Chris (JHOWK) [Primary, 50%]; Rudenga, Kristi (KRUDENGA) [50%]"
//
// as "Howk, Chris & Rudenga, Kristi" plus the short form "Howk & Rudenga".
func ParseInstructors(raw string) (instructor, short string) {
	var names, shortNames []string
	for _, part := range strings.Split(raw, ";") {
		if strings.Contains(part, "To Be Determined") {
			names = append(names, "TBD")
			shortNames = append(shortNames, "TBD")
			continue
		}
		last, rest, _ := strings.Cut(strings.TrimSpace(part), ", ")
		first, _, _ := strings.Cut(rest, " ")
		names = append(names, last+", "+first)
		shortNames = append(shortNames, last)
	}
	return strings.Join(names, " & "), strings.Join(shortNames, " & ")
}

// legacyFields are the columns of the legacy Class Search export.
var legacyFields = []string{
	"course-section",
	"title", "credits", "status", "max", "open", "crosslist", "crn",
	"instructor", "when", "begin", "end", "where",
}

// ReadLegacy reads a legacy Class Search export (before Summer 2022).
// Multiple instructors are not represented in this format.
func ReadLegacy(path string) ([]*Class, error) {
	records, err := tabular.ReadRecords(path, legacyFields, tabular.ReadOptions{
		SkipHeader: true,
	})
	if err != nil {
		return nil, err
	}

	var classes []*Class
	for _, rec := range records {
		course, section, _ := strings.Cut(rec["course-section"], "-")
		section = strings.TrimSuffix(section, "*")
		short, _, _ := strings.Cut(rec["instructor"], ",")
		// The legacy format reports open seats rather than enrollment, so
		// the enrollment column stays empty.
		classes = append(classes, &Class{
			Course:          course,
			Section:         section,
			CRN:             rec["crn"],
			MaxEnrollment:   rec["max"],
			CrossList:       rec["crosslist"],
			Title:           rec["title"],
			Instructor:      rec["instructor"],
			ShortInstructor: short,
			When:            rec["when"],
			Where:           rec["where"],
		})
	}
	return classes, nil
}
