// scheduling.go extracts committee availability polls into a fixed-width grid
// (one row per respondent, one column per meeting date).

package surveys

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

// SchedulingConfig is the scheduling poll configuration
// (extract-scheduling.yml).
type SchedulingConfig struct {
	// ResponseFilename is the form response spreadsheet (CSV or XLSX).
	ResponseFilename string `yaml:"response_filename"`

	// ReportFilename is the output grid report.
	ReportFilename string `yaml:"report_filename"`

	// Dates are the poll dates, in spreadsheet column order.
	Dates []string `yaml:"dates"`

	// ResponseCodes translates the form's response text to a
	// single-character visual code for the grid.
	ResponseCodes map[string]string `yaml:"response_codes"`

	// NameWidth is the name column width (default 20).
	NameWidth int `yaml:"name_width"`

	// DateWidth is the per-date column width (default 6).
	DateWidth int `yaml:"date_width"`
}

// WriteSchedulingGrid writes the availability grid.  Responses with no
// configured code are shown as "?".
func WriteSchedulingGrid(w io.Writer, cfg SchedulingConfig, records []tabular.Record, log *zap.Logger) {
	fmt.Fprintf(w, "%-*s ", cfg.NameWidth, "")
	for _, date := range cfg.Dates {
		fmt.Fprintf(w, "%-*s", cfg.DateWidth, date)
	}
	fmt.Fprint(w, "\n")

	for _, rec := range records {
		fmt.Fprintf(w, "%-*s ", cfg.NameWidth, rec["last"]+", "+rec["first"])
		for _, date := range cfg.Dates {
			code, ok := cfg.ResponseCodes[rec[date]]
			if !ok {
				code = "?"
				log.Warn("unrecognized scheduling response",
					zap.String("response", rec[date]),
					zap.String("respondent", rec["last"]),
					zap.String("date", date),
				)
			}
			fmt.Fprintf(w, "%-*s", cfg.DateWidth, code)
		}
		fmt.Fprintf(w, "%s\n", rec["comments"])
	}
}

type schedulingReport struct{}

func init() {
	reports.Register(schedulingReport{})
}

func (schedulingReport) Name() string { return "scheduling" }

func (schedulingReport) Synopsis() string {
	return "committee scheduling poll responses as an availability grid"
}

func (schedulingReport) ConfigFile() string { return "extract-scheduling.yml" }

func (schedulingReport) Run(ctx *reports.Context) error {
	var cfg SchedulingConfig
	if err := config.Load(ctx.ConfigPath, &cfg); err != nil {
		return err
	}
	if cfg.NameWidth == 0 {
		cfg.NameWidth = 20
	}
	if cfg.DateWidth == 0 {
		cfg.DateWidth = 6
	}

	fields := []string{"timestamp", "username", "last", "first"}
	fields = append(fields, cfg.Dates...)
	fields = append(fields, "comments")
	records, err := tabular.ReadRecords(cfg.ResponseFilename, fields,
		tabular.ReadOptions{SkipHeader: true})
	if err != nil {
		return err
	}
	records = dropTestRows(records, "last")
	sortResponses(records)

	return ctx.Write(cfg.ReportFilename, func(w io.Writer) error {
		WriteSchedulingGrid(w, cfg, records, ctx.Logger())
		return nil
	})
}
