// courserequests.go extracts the faculty course request questionnaire, for
// the Instructional & Course Offering Committee.

package surveys

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

// CourseRequestConfig is the course request pipeline configuration
// (extract-course-request.yml).
type CourseRequestConfig struct {
	// TermName is the term as displayed in report headers, e.g. "Spring 2022".
	TermName string `yaml:"term_name"`

	// TermTag is the term code used in output filenames, e.g. "22a".
	TermTag string `yaml:"term_tag"`

	// ResponseFilename is the form response spreadsheet (CSV or XLSX).
	ResponseFilename string `yaml:"response_filename"`

	// Courses lists the per-course preference columns, in spreadsheet order.
	// The form is rebuilt each term, so the course list lives in the
	// configuration rather than the code.
	Courses []string `yaml:"courses"`
}

func courseRequestFields(cfg CourseRequestConfig) []string {
	fields := []string{"timestamp", "first", "last", "continue", "agreement", "requests"}
	fields = append(fields, cfg.Courses...)
	return append(fields, "other")
}

// readCourseRequests reads the response spreadsheet and postprocesses the
// per-course preference fields into tagged lines.
func readCourseRequests(cfg CourseRequestConfig) ([]tabular.Record, error) {
	records, err := tabular.ReadRecords(cfg.ResponseFilename, courseRequestFields(cfg),
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		rec["name"] = rec["last"] + ", " + rec["first"]
		tabular.ConvertFieldsToTaggedLines(rec, cfg.Courses, "    ", "\n", true)
	}
	return records, nil
}

// WriteRequestsByFaculty writes one block per respondent, alphabetized by
// name.  A repeat submission under the same name replaces the earlier one.
func WriteRequestsByFaculty(w io.Writer, cfg CourseRequestConfig, records []tabular.Record) {
	fmt.Fprintf(w, "Teaching requests by faculty member\n%s\n\n", cfg.TermName)

	blocks := make(map[string]string)
	for _, rec := range records {
		var preferences strings.Builder
		for _, course := range cfg.Courses {
			preferences.WriteString(rec[course])
		}
		blocks[strings.ToUpper(rec["name"])] = fmt.Sprintf(
			"Name: %s\n"+
				"Didn't ask to change? %s\n"+
				"Agreement? %s\n"+
				"Requests? %s\n"+
				"Preferences:\n"+
				"%s"+
				"Other: %s\n\n",
			rec["name"],
			rec["continue"], rec["agreement"], rec["requests"],
			preferences.String(),
			rec["other"],
		)
	}

	keys := make([]string, 0, len(blocks))
	for key := range blocks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		io.WriteString(w, blocks[key])
	}
}

// WriteRequestsByCourse writes one block per course, listing each
// respondent's ranking.  Courses with no takers still appear, as an empty
// block.
func WriteRequestsByCourse(w io.Writer, cfg CourseRequestConfig, records []tabular.Record) {
	fmt.Fprintf(w, "Teaching requests by course\n%s\n\n", cfg.TermName)

	courses := append([]string(nil), cfg.Courses...)
	sort.Strings(courses)

	for _, course := range courses {
		type preference struct {
			ranking string
			name    string
		}
		var prefs []preference
		for _, rec := range records {
			if rec[course] == "" {
				continue
			}
			// The ranking is the last word of the tagged preference line.
			tokens := strings.Fields(rec[course])
			prefs = append(prefs, preference{tokens[len(tokens)-1], rec["name"]})
		}
		sort.Slice(prefs, func(i, j int) bool {
			if prefs[i].ranking != prefs[j].ranking {
				return prefs[i].ranking < prefs[j].ranking
			}
			return strings.ToUpper(prefs[i].name) < strings.ToUpper(prefs[j].name)
		})

		fmt.Fprintf(w, "%s\n", course)
		for _, pref := range prefs {
			fmt.Fprintf(w, "    %s: %s\n", pref.name, pref.ranking)
		}
		fmt.Fprint(w, "\n")
	}
}

type courseRequestReport struct{}

func init() {
	reports.Register(courseRequestReport{})
}

func (courseRequestReport) Name() string { return "course-requests" }

func (courseRequestReport) Synopsis() string {
	return "faculty course request survey responses, by faculty and by course"
}

func (courseRequestReport) ConfigFile() string { return "extract-course-request.yml" }

func (courseRequestReport) Run(ctx *reports.Context) error {
	var cfg CourseRequestConfig
	if err := config.Load(ctx.ConfigPath, &cfg); err != nil {
		return err
	}
	records, err := readCourseRequests(cfg)
	if err != nil {
		return err
	}

	if err := ctx.Write("requests-by-faculty-"+cfg.TermTag+".txt", func(w io.Writer) error {
		WriteRequestsByFaculty(w, cfg, records)
		return nil
	}); err != nil {
		return err
	}
	return ctx.Write("requests-by-course-"+cfg.TermTag+".txt", func(w io.Writer) error {
		WriteRequestsByCourse(w, cfg, records)
		return nil
	})
}
