// taroster.go renders the TA-oriented student listings feeding the TA
// assignment process: the distribution list, the preference-notes working
// form, and the roster spreadsheet template.

package students

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mark-caprio/dgstools/tabular"
)

const taListHeader = "TA list\n%s\n\n  * = TA support\n  ? = possible TA support (TBD)\n\n"

const (
	taNotesRuling = "                                             |NS|He|Tu|Ex|Ma|La|De|Ob|Gr|Notes"
	taNotesRule   = "                                             +--+--+--+--+--+--+--+--+--+-------"
	taNotesBoxes  = "|__|__|__|__|__|__|__|__|__|_______"
)

// checkTerm validates a TA term code, "a" for spring or "b" for fall.
func checkTerm(term string) error {
	if term != "a" && term != "b" {
		return fmt.Errorf("invalid TA term %q (want \"a\" or \"b\")", term)
	}
	return nil
}

// taCandidates returns the students eligible for TA listings (year-0 special
// students excluded), sorted by name.
func taCandidates(database []*Student) []*Student {
	var entries []*Student
	for _, s := range database {
		if s.Year == 0 {
			continue
		}
		entries = append(entries, s)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !strings.EqualFold(a.Last, b.Last) {
			return strings.ToUpper(a.Last) < strings.ToUpper(b.Last)
		}
		if !strings.EqualFold(a.First, b.First) {
			return strings.ToUpper(a.First) < strings.ToUpper(b.First)
		}
		return a.Year < b.Year
	})
	return entries
}

// WriteTAList writes the TA list for distribution with the preference
// survey. The term code selects which term's funding determines TA status.
func WriteTAList(w io.Writer, database []*Student, date, term string) error {
	if err := checkTerm(term); err != nil {
		return err
	}
	fmt.Fprintf(w, taListHeader, date)
	for _, s := range taCandidates(database) {
		funding, _ := s.FundingForTerm(term)
		fmt.Fprintf(w, "%-1s %s, %s\n", TAStatusFlag(funding), s.Last, s.First)
	}
	return nil
}

// WriteTANotes writes the working form for noting TA preferences during the
// assignment process, one ruled row per prospective TA.
func WriteTANotes(w io.Writer, database []*Student, term string) error {
	if err := checkTerm(term); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n%s\n", taNotesRuling, taNotesRule)
	for _, s := range taCandidates(database) {
		funding, _ := s.FundingForTerm(term)
		hours := TAHours(funding, s.Year)
		if hours == "0" {
			continue
		}
		fmt.Fprintf(w, "%-28s %-3s %-3s %-1s %-1s %3s %s\n",
			s.StudentYearString,
			tabular.Truncate(s.ShortAdvisorComposite, 3),
			s.Area, theoryExptCode(s), TAStatusFlag(funding), hours,
			taNotesBoxes)
	}
	return nil
}

// WriteTATemplate writes the roster spreadsheet template seeding the TA
// assignment machinery, one CSV row per prospective TA.
func WriteTATemplate(w io.Writer, database []*Student, term string) error {
	if err := checkTerm(term); err != nil {
		return err
	}
	for _, s := range taCandidates(database) {
		funding, _ := s.FundingForTerm(term)
		fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			s.Last, s.First, s.YearRaw, s.NetID, s.ShortAdvisorComposite,
			s.Area, funding, TAHours(funding, s.Year), TAStatusFlag(funding))
	}
	return nil
}
