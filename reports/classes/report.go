// report.go renders the class listing outputs and registers the CourseLeaf
// and legacy pipelines.

package classes

import (
	"fmt"
	"io"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

// WriteList writes the one-line-per-class listing.
func WriteList(w io.Writer, classes []*Class) {
	for _, c := range classes {
		fmt.Fprintf(w, "%s / %s / %s / %s\n", c.Course, c.Title, c.ShortInstructor, c.When)
	}
}

// spreadsheetHeader gives the columns of the summary spreadsheet, the
// starting point for the TA assignment slot spreadsheet.
var spreadsheetHeader = []string{
	"course", "section", "crn", "enrollment", "max_enrollment", "xlist",
	"title", "instructor", "when", "where",
}

// WriteSpreadsheet writes the summary CSV spreadsheet.
func WriteSpreadsheet(w io.Writer, classes []*Class) error {
	rows := [][]string{spreadsheetHeader}
	for _, c := range classes {
		rows = append(rows, []string{
			c.Course, c.Section, c.CRN, c.Enrollment, c.MaxEnrollment,
			c.CrossList, c.Title, c.Instructor, c.When, c.Where,
		})
	}
	return tabular.WriteRows(w, rows)
}

// Config is the class-list pipeline configuration.
type Config struct {
	// Date is the report date, mm/dd/yyyy (default today).
	Date string `yaml:"date"`

	// Term is the term code, e.g. "22b".
	Term string `yaml:"term"`

	// DatabaseFilename is the registrar class schedule export (CSV or XLSX).
	DatabaseFilename string `yaml:"database_filename"`

	// CourseBlacklist lists course numbers to omit from the report.
	CourseBlacklist []string `yaml:"course_blacklist"`
}

type courseLeafReport struct{}

func init() {
	reports.Register(courseLeafReport{})
	reports.Register(legacyReport{})
}

func (courseLeafReport) Name() string { return "class-list" }

func (courseLeafReport) Synopsis() string {
	return "class listing and summary spreadsheet from a CourseLeaf schedule export"
}

func (courseLeafReport) ConfigFile() string { return "extract-class-list.yml" }

func (courseLeafReport) Run(ctx *reports.Context) error {
	cfg, date, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	classes, err := ReadCourseLeaf(cfg.DatabaseFilename, cfg.CourseBlacklist)
	if err != nil {
		return err
	}

	base := fmt.Sprintf("classes-%s-%s", cfg.Term, date.Code())
	if err := ctx.Write(base+".txt", func(w io.Writer) error {
		WriteList(w, classes)
		return nil
	}); err != nil {
		return err
	}
	return ctx.Write(base+".csv", func(w io.Writer) error {
		return WriteSpreadsheet(w, classes)
	})
}

type legacyReport struct{}

func (legacyReport) Name() string { return "class-list-legacy" }

func (legacyReport) Synopsis() string {
	return "class listing from a legacy Class Search export (before Summer 2022)"
}

func (legacyReport) ConfigFile() string { return "extract-class-list-legacy.yml" }

func (legacyReport) Run(ctx *reports.Context) error {
	cfg, date, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	classes, err := ReadLegacy(cfg.DatabaseFilename)
	if err != nil {
		return err
	}
	return ctx.Write(fmt.Sprintf("classes-%s-%s.txt", cfg.Term, date.Code()), func(w io.Writer) error {
		WriteList(w, classes)
		return nil
	})
}

func loadConfig(ctx *reports.Context) (Config, config.Date, error) {
	var cfg Config
	if err := config.Load(ctx.ConfigPath, &cfg); err != nil {
		return cfg, config.Date{}, err
	}
	date, err := config.ParseDate(cfg.Date)
	return cfg, date, err
}
