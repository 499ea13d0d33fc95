// Package config loads the per-report YAML configuration files and handles
// the report-date conventions shared by the pipelines (display form
// "mm/dd/yyyy", file-name code "yymmdd").
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file into cfg.
func Load(path string, cfg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Date is a report date (usually the database snapshot date).
type Date struct {
	time.Time
}

// ParseDate parses a report date in "mm/dd/yyyy" form. An empty string
// yields today's date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{time.Now()}, nil
	}
	t, err := time.Parse("01/02/2006", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q (want mm/dd/yyyy): %w", s, err)
	}
	return Date{t}, nil
}

// String returns the display form, "mm/dd/yyyy".
func (d Date) String() string {
	return d.Format("01/02/2006")
}

// Code returns the compact file-name form, "yymmdd".
func (d Date) Code() string {
	return d.Format("060102")
}
