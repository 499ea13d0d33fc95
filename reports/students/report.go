// report.go registers the student database pipeline.

package students

import (
	"io"
	"os"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
)

// Config is the student pipeline configuration.
type Config struct {
	// Date is the report date, usually the database snapshot date,
	// mm/dd/yyyy (default today).
	Date string `yaml:"date"`

	// DatabaseFilename is the student database snapshot (CSV or XLSX).
	DatabaseFilename string `yaml:"database_filename"`

	// FacultyFilename lists the current T&TT faculty, one name per line.
	FacultyFilename string `yaml:"faculty_filename"`

	// ResearchCommittee enables the working reports supporting research
	// committee assignments (default true).
	ResearchCommittee *bool `yaml:"research_committee"`

	// ResearchCommitteeFilename is the committee-supplement spreadsheet
	// giving new committee members; merged into the database if present.
	ResearchCommitteeFilename string `yaml:"research_committee_filename"`

	// TA enables the working reports supporting TA assignments (default
	// true).
	TA *bool `yaml:"ta"`

	// TATerm is the funding term determining TA status, "a" for spring or
	// "b" for fall.
	TATerm string `yaml:"ta_term"`
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

type report struct{}

func init() {
	reports.Register(report{})
}

func (report) Name() string { return "students" }

func (report) Synopsis() string {
	return "student status, advising, and TA roster reports from the student database"
}

func (report) ConfigFile() string { return "process-students.yml" }

func (report) Run(ctx *reports.Context) error {
	var cfg Config
	if err := config.Load(ctx.ConfigPath, &cfg); err != nil {
		return err
	}
	date, err := config.ParseDate(cfg.Date)
	if err != nil {
		return err
	}
	dateString := date.String()
	code := date.Code()

	database, err := ReadDatabase(cfg.DatabaseFilename, ctx.Logger())
	if err != nil {
		return err
	}
	faculty, err := ReadFaculty(cfg.FacultyFilename)
	if err != nil {
		return err
	}
	if cfg.ResearchCommitteeFilename != "" {
		// preliminary committee assignments, if prepared
		if _, err := os.Stat(cfg.ResearchCommitteeFilename); err == nil {
			if err := AugmentCommittees(database, cfg.ResearchCommitteeFilename); err != nil {
				return err
			}
		}
	}

	// student status reports
	statusReports := []struct {
		name string
		opts StatusOptions
	}{
		{"student-status-contact-" + code + ".txt",
			StatusOptions{ShowArea: true, ShowEmail: true}},
		// for funding survey and admissions planning
		{"student-status-group-advisor-funding-" + code + ".txt",
			StatusOptions{GroupByAdvisor: true, StartYear: 0.5, ShowArea: true, ShowFunding: true}},
		// for distribution as research-group contact list
		{"student-status-group-advisor-contact-" + code + ".txt",
			StatusOptions{GroupByAdvisor: true, StartYear: 0.5, ShowArea: true, ShowEmail: true}},
		{"student-status-meeting-" + code + ".txt",
			StatusOptions{ShowArea: true, ShowMeetings: true}},
	}
	for _, r := range statusReports {
		opts := r.opts
		if err := ctx.Write(r.name, func(w io.Writer) error {
			WriteStatus(w, database, dateString, opts)
			return nil
		}); err != nil {
			return err
		}
	}

	// advising reports
	if err := ctx.Write("advising-by-faculty-"+code+".txt", func(w io.Writer) error {
		WriteAdvisingByFaculty(w, database, faculty, dateString, FacultyReportOptions{
			IncludeDefended: true,
			IncludeAdvising: true,
		})
		return nil
	}); err != nil {
		return err
	}
	if err := ctx.Write("advising-by-student-"+code+".txt", func(w io.Writer) error {
		WriteAdvisingByStudent(w, database, dateString)
		return nil
	}); err != nil {
		return err
	}

	// working reports for the committee assignment process
	if enabled(cfg.ResearchCommittee) {
		if err := ctx.Write("advising-load-"+code+".txt", func(w io.Writer) error {
			WriteAdvisingLoad(w, database, faculty, dateString)
			return nil
		}); err != nil {
			return err
		}
		if err := ctx.Write("research-committees-by-faculty-"+code+".txt", func(w io.Writer) error {
			WriteAdvisingByFaculty(w, database, faculty, dateString, FacultyReportOptions{
				FlagTenured: true,
			})
			return nil
		}); err != nil {
			return err
		}
	}

	// working reports for the TA assignment process
	if enabled(cfg.TA) {
		if err := ctx.Write("ta-list-"+code+".txt", func(w io.Writer) error {
			return WriteTAList(w, database, dateString, cfg.TATerm)
		}); err != nil {
			return err
		}
		if err := ctx.Write("ta-roster-notes-"+code+".txt", func(w io.Writer) error {
			return WriteTANotes(w, database, cfg.TATerm)
		}); err != nil {
			return err
		}
		if err := ctx.Write("ta-roster-TEMPLATE-"+code+".csv", func(w io.Writer) error {
			return WriteTATemplate(w, database, cfg.TATerm)
		}); err != nil {
			return err
		}
	}
	return nil
}
