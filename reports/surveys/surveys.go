// Package surveys extracts Google Forms questionnaire responses into plain
// text reports: TA preference and feedback surveys, faculty course requests,
// and committee scheduling polls.
package surveys

import (
	"sort"
	"strings"
	"unicode"

	"github.com/mark-caprio/dgstools/config"
	"github.com/mark-caprio/dgstools/reports"
	"github.com/mark-caprio/dgstools/tabular"
)

// TAConfig is the shared configuration for the four TA survey reports
// (extract-ta.yml).
type TAConfig struct {
	// Term is the term code, e.g. "22b".
	Term string `yaml:"term"`

	FacultyPreferencesFilename string `yaml:"response_filename_faculty_preferences"`
	FacultyFeedbackFilename    string `yaml:"response_filename_faculty_feedback"`
	StudentPreferencesFilename string `yaml:"response_filename_student_preferences"`
	StudentFeedbackFilename    string `yaml:"response_filename_student_feedback"`
}

func loadTAConfig(ctx *reports.Context) (TAConfig, error) {
	var cfg TAConfig
	err := config.Load(ctx.ConfigPath, &cfg)
	return cfg, err
}

// dropTestRows removes form-testing submissions, marked by the value "TEST"
// in any of the named fields.
func dropTestRows(records []tabular.Record, fields ...string) []tabular.Record {
	var kept []tabular.Record
outer:
	for _, rec := range records {
		for _, field := range fields {
			if rec[field] == "TEST" {
				continue outer
			}
		}
		kept = append(kept, rec)
	}
	return kept
}

// sortResponses orders responses case-insensitively by last and first name,
// with optional raw-valued tie-breaker fields (e.g. timestamp, for repeat
// submissions).
func sortResponses(records []tabular.Record, tiebreakers ...string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if al, bl := strings.ToUpper(a["last"]), strings.ToUpper(b["last"]); al != bl {
			return al < bl
		}
		if af, bf := strings.ToUpper(a["first"]), strings.ToUpper(b["first"]); af != bf {
			return af < bf
		}
		for _, field := range tiebreakers {
			if a[field] != b[field] {
				return a[field] < b[field]
			}
		}
		return false
	})
}

// titleCase uppercases the first letter of each word, lowercasing the rest,
// so "van der BERG" becomes "Van Der Berg".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
