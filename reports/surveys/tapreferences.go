// tapreferences.go extracts the start-of-term TA preference surveys: the
// students' assignment-type preferences and the instructors' per-course
// requests.

package surveys

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

var studentPreferenceFields = []string{
	"timestamp", "username",
	"last", "first",
	"preferred",
	"class-conflict",
	"sem-conflict",
	"other",
	"exclude",
}

// Checkbox multi-select fields, broken out one choice per line.
var studentPreferenceCheckboxFields = []string{
	"preferred", "class-conflict", "sem-conflict",
}

// WriteStudentPreferences writes the student TA preference responses as
// per-student text blocks.
func WriteStudentPreferences(w io.Writer, records []tabular.Record) {
	for _, rec := range records {
		tabular.SplitCheckboxResponses(rec, studentPreferenceCheckboxFields, ";", "   ", "\n")
		fmt.Fprintf(w,
			"%s, %s\n"+
				"Preferred types:\n"+
				"%s"+
				"Conflicts:\n"+
				"%s%s"+
				"Other: %s\n"+
				"Exclude: %s\n\n",
			rec["last"], rec["first"],
			rec["preferred"],
			rec["class-conflict"], rec["sem-conflict"],
			rec["other"], rec["exclude"],
		)
	}
}

type studentPreferencesReport struct{}

func init() {
	reports.Register(studentPreferencesReport{})
	reports.Register(facultyPreferencesReport{})
}

func (studentPreferencesReport) Name() string { return "ta-student-preferences" }

func (studentPreferencesReport) Synopsis() string {
	return "student TA assignment preference survey responses"
}

func (studentPreferencesReport) ConfigFile() string { return "extract-ta.yml" }

func (studentPreferencesReport) Run(ctx *reports.Context) error {
	cfg, err := loadTAConfig(ctx)
	if err != nil {
		return err
	}
	records, err := tabular.ReadRecords(cfg.StudentPreferencesFilename, studentPreferenceFields,
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return err
	}
	records = dropTestRows(records, "last")
	sortResponses(records)

	return ctx.Write("ta-student-preferences-"+cfg.Term+".txt", func(w io.Writer) error {
		WriteStudentPreferences(w, records)
		return nil
	})
}

var facultyPreferenceFields = []string{
	"timestamp", "username",
	"last", "first",
	"number", "name",
	"enrollment",
	"GH", "GW", "GE", "H", "O", "common",
	"GH-NS", "GE-NS", "A", "X", "uncommon",
	"other",
}

// Radio-button grid fields, summarized as flags on a single line.
var facultyPreferenceFlagFields = []string{
	"GH", "GW", "GE", "H", "O", "GH-NS", "GE-NS", "A", "X",
}

// WriteFacultyPreferences writes the instructor TA request responses as
// per-course text blocks, headed by a summary of who has submitted (used for
// reminder e-mail).
func WriteFacultyPreferences(w io.Writer, records []tabular.Record) {
	submitters := make(map[string]bool)
	for _, rec := range records {
		submitters[titleCase(rec["last"])] = true
	}
	names := make([]string, 0, len(submitters))
	for name := range submitters {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "Submitted: %s\n\n", strings.Join(names, ", "))

	for _, rec := range records {
		tabular.ConvertFieldsToFlags(rec, facultyPreferenceFlagFields, " ")
		fmt.Fprintf(w,
			"%s, %s\n"+
				"Course: %s / %s (%s)\n"+
				"Common: %s%s%s%s%s\n"+
				"Notes: %s\n"+
				"Uncommon: %s%s%s%s\n"+
				"Notes: %s\n"+
				"Other: %s\n\n",
			rec["last"], rec["first"],
			rec["number"], rec["name"], rec["enrollment"],
			rec["GH"], rec["GW"], rec["GE"], rec["H"], rec["O"],
			rec["common"],
			rec["GH-NS"], rec["GE-NS"], rec["A"], rec["X"],
			rec["uncommon"],
			rec["other"],
		)
	}
}

type facultyPreferencesReport struct{}

func (facultyPreferencesReport) Name() string { return "ta-faculty-preferences" }

func (facultyPreferencesReport) Synopsis() string {
	return "instructor TA request survey responses"
}

func (facultyPreferencesReport) ConfigFile() string { return "extract-ta.yml" }

func (facultyPreferencesReport) Run(ctx *reports.Context) error {
	cfg, err := loadTAConfig(ctx)
	if err != nil {
		return err
	}
	records, err := tabular.ReadRecords(cfg.FacultyPreferencesFilename, facultyPreferenceFields,
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return err
	}
	records = dropTestRows(records, "last", "name")
	sortResponses(records)

	return ctx.Write("ta-faculty-preferences-"+cfg.Term+".txt", func(w io.Writer) error {
		WriteFacultyPreferences(w, records)
		return nil
	})
}
