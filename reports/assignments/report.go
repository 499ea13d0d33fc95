// report.go registers the TA assignment pipeline.

package assignments

import (
	"fmt"
	"io"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
)

// Config is the assignment pipeline configuration.
type Config struct {
	// Date is the report date, mm/dd/yyyy (default today).
	Date string `yaml:"date"`

	// TermName is the human-readable term, e.g. "Spring 2022".
	TermName string `yaml:"term_name"`

	// TermCode is the compact term code, e.g. "22a".
	TermCode string `yaml:"term_code"`

	// RosterFilename is the TA roster spreadsheet (CSV or XLSX).
	RosterFilename string `yaml:"roster_filename"`

	// SlotsFilename is the teaching-slot spreadsheet (CSV or XLSX).
	SlotsFilename string `yaml:"slots_filename"`
}

type report struct{}

func init() {
	reports.Register(report{})
}

func (report) Name() string { return "ta-assignments" }

func (report) Synopsis() string {
	return "cross-reference TA roster against teaching slots (hours, by-course, and by-TA reports)"
}

func (report) ConfigFile() string { return "ta-assignments.yml" }

func (report) Run(ctx *reports.Context) error {
	var cfg Config
	if err := config.Load(ctx.ConfigPath, &cfg); err != nil {
		return err
	}
	date, err := config.ParseDate(cfg.Date)
	if err != nil {
		return err
	}

	// Versioned runs carry a "-<term>-v<version>" file-name flag; unversioned
	// runs write to the bare file names.
	version := ctx.Version
	flag := ""
	if version != "" {
		flag = fmt.Sprintf("-%s-v%s", cfg.TermCode, version)
	} else {
		version = "0"
	}
	hdr := Header{TermName: cfg.TermName, Version: version, Date: date.String()}

	roster, err := ReadRoster(cfg.RosterFilename)
	if err != nil {
		return err
	}
	slots, err := ReadSlots(cfg.SlotsFilename, ctx.Logger())
	if err != nil {
		return err
	}

	// Input-data dumps, for checking ingestion.
	if err := ctx.Write("assignments"+flag+"-roster-dump.txt", func(w io.Writer) error {
		DumpRoster(w, roster)
		return nil
	}); err != nil {
		return err
	}
	if err := ctx.Write("assignments"+flag+"-slots-dump.txt", func(w io.Writer) error {
		DumpSlots(w, slots)
		return nil
	}); err != nil {
		return err
	}

	idx := NewIndex(roster)
	courses := UniqueCourses(slots)
	hours, err := TallyHours(slots, idx)
	if err != nil {
		return err
	}
	byTA, err := CollectByTA(slots, idx)
	if err != nil {
		return err
	}
	byCourse := CollectByCourse(slots, courses)

	outputs := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{"assignments" + flag + "-course.txt", func(w io.Writer) error {
			WriteByCourse(w, idx, courses, byCourse, hdr, false)
			return nil
		}},
		{"assignments" + flag + "-ta.txt", func(w io.Writer) error {
			WriteByTA(w, idx, byTA, hdr)
			return nil
		}},
		{"assignments" + flag + "-ta-netid.txt", func(w io.Writer) error {
			WriteByCourse(w, idx, courses, byCourse, hdr, true)
			return nil
		}},
		{"assignments" + flag + "-hours.txt", func(w io.Writer) error {
			WriteHours(w, idx, hours, byTA, hdr)
			return nil
		}},
	}
	for _, out := range outputs {
		if err := ctx.Write(out.name, out.fn); err != nil {
			return err
		}
	}
	return nil
}
