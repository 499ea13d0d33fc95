// tafeedback.go extracts the end-of-semester TA feedback surveys: the TAs'
// reports on their actual responsibilities and the instructors' evaluations.

package surveys

import (
	"fmt"
	"io"
	"strings"

	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

var studentFeedbackFields = []string{
	"timestamp", "username",
	"last", "first",
	"name", "number",
	"Lab-prep", "Lab-contact", "Lab-grading",
	"Tut-prep", "Tut-contact", "Tut-grading",
	"HW-grading", "Written-grading", "Exam-grading", "Proctoring", "Office-help",
	"HW-grading-NS", "Exam-grading-NS", "Proctoring-NS", "Attending", "Other",
	"comments",
}

// Per-duty open response fields, tagged and pruned for the report.
var studentFeedbackDutyFields = studentFeedbackFields[6:22]

// WriteStudentFeedback writes the TA end-of-semester feedback responses as
// per-TA text blocks, listing only the duties commented on.
func WriteStudentFeedback(w io.Writer, records []tabular.Record) {
	for _, rec := range records {
		tabular.ConvertFieldsToTaggedLines(rec, studentFeedbackDutyFields, "", "\n", true)
		var duties strings.Builder
		for _, field := range studentFeedbackDutyFields {
			duties.WriteString(rec[field])
		}
		fmt.Fprintf(w,
			"%s, %s\n"+
				"Course: %s\n"+
				"%s"+
				"Comments: %s\n\n",
			rec["last"], rec["first"],
			rec["number"],
			duties.String(),
			rec["comments"],
		)
	}
}

type studentFeedbackReport struct{}

func init() {
	reports.Register(studentFeedbackReport{})
	reports.Register(facultyFeedbackReport{})
}

func (studentFeedbackReport) Name() string { return "ta-student-feedback" }

func (studentFeedbackReport) Synopsis() string {
	return "TA end-of-semester feedback survey responses"
}

func (studentFeedbackReport) ConfigFile() string { return "extract-ta.yml" }

func (studentFeedbackReport) Run(ctx *reports.Context) error {
	cfg, err := loadTAConfig(ctx)
	if err != nil {
		return err
	}
	records, err := tabular.ReadRecords(cfg.StudentFeedbackFilename, studentFeedbackFields,
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return err
	}
	records = dropTestRows(records, "last")
	sortResponses(records, "timestamp")

	return ctx.Write("ta-student-feedback-"+cfg.Term+".txt", func(w io.Writer) error {
		WriteStudentFeedback(w, records)
		return nil
	})
}

var facultyFeedbackFields = []string{
	"timestamp", "username",
	"number", "name",
	"last", "first",
	"role", "special",
	"comments",
}

// WriteFacultyFeedback writes the instructor TA evaluations as per-TA text
// blocks, ordered by TA name then course.
func WriteFacultyFeedback(w io.Writer, records []tabular.Record) {
	for _, rec := range records {
		shortSpecial, _, _ := strings.Cut(rec["special"], ",")
		fmt.Fprintf(w,
			"%s, %s\n"+
				"Course: PHYS %s / %s / %s\n"+
				"Role: %s\n"+
				"Special: %s\n"+
				"Comments: %s\n\n",
			rec["last"], rec["first"],
			rec["number"], rec["name"], rec["username"],
			rec["role"],
			shortSpecial,
			rec["comments"],
		)
	}
}

type facultyFeedbackReport struct{}

func (facultyFeedbackReport) Name() string { return "ta-faculty-feedback" }

func (facultyFeedbackReport) Synopsis() string {
	return "instructor end-of-semester TA evaluations"
}

func (facultyFeedbackReport) ConfigFile() string { return "extract-ta.yml" }

func (facultyFeedbackReport) Run(ctx *reports.Context) error {
	cfg, err := loadTAConfig(ctx)
	if err != nil {
		return err
	}
	records, err := tabular.ReadRecords(cfg.FacultyFeedbackFilename, facultyFeedbackFields,
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return err
	}
	records = dropTestRows(records, "last")
	sortResponses(records, "number", "timestamp")

	return ctx.Write("ta-faculty-feedback-"+cfg.Term+".txt", func(w io.Writer) error {
		WriteFacultyFeedback(w, records)
		return nil
	})
}
