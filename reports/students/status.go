// status.go renders the student status listings, sorted by year or grouped
// by research area and advisor.

package students

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// StatusOptions selects the sorting and optional columns of a student status
// listing.
type StatusOptions struct {
	// GroupByAdvisor lists students grouped by (area, theory/experiment)
	// with a control break per research group, then by advisor with a blank
	// line between advisors. The default is by decreasing seniority.
	GroupByAdvisor bool

	// StartYear excludes students below the given year (e.g. 0.5 excludes
	// the year-0 special students).
	StartYear float64

	ShowArea     bool
	ShowFunding  bool
	ShowMeetings bool
	ShowEmail    bool
}

const groupRule = "----------------------------------------------------------------"

// WriteStatus writes the student status report.
func WriteStatus(w io.Writer, database []*Student, date string, opts StatusOptions) {
	fmt.Fprintf(w, "Notre Dame physics graduate students\n%s\n\n%s\n\n", date, statusLegend)

	var entries []*Student
	for _, s := range database {
		if s.Year < opts.StartYear {
			continue
		}
		entries = append(entries, s)
	}
	if opts.GroupByAdvisor {
		sortByGroupAdvisor(entries)
	} else {
		sortByYear(entries)
	}

	var started bool
	var lastArea, lastTheoryExpt, lastAdvisor string
	for _, s := range entries {
		if opts.GroupByAdvisor {
			switch {
			case !started || s.Area != lastArea || s.TheoryExpt != lastTheoryExpt:
				fmt.Fprintf(w, "\n%s\n%s\n%s\n\n",
					groupRule, areaDescription(s.Area, s.TheoryExpt), groupRule)
			case s.Advisor != lastAdvisor:
				fmt.Fprintln(w)
			}
		}
		started = true
		lastArea, lastTheoryExpt, lastAdvisor = s.Area, s.TheoryExpt, s.Advisor

		fmt.Fprintln(w, statusLine(s, opts))
	}
}

// statusLine formats one student status line per the selected options.
func statusLine(s *Student, opts StatusOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %s %-20s ", s.StudentYearString, s.CandidacyStatus, s.ShortAdvisorComposite)
	if opts.ShowArea {
		fmt.Fprintf(&b, "%-3s %-1s ", s.Area, theoryExptCode(s))
	}
	if opts.ShowFunding {
		fmt.Fprintf(&b, "  %-1s %-20s %-1s %-20s",
			TAStatusFlag(s.FundingFall), s.FundingFall,
			TAStatusFlag(s.FundingSpring), s.FundingSpring)
	}
	if opts.ShowMeetings {
		fmt.Fprintf(&b, "%-10s %-10s %-10s ", s.MeetingPrior2, s.MeetingPrior, s.Meeting)
	}
	if opts.ShowEmail {
		b.WriteString(s.EmailString)
	}
	return b.String()
}

func theoryExptCode(s *Student) string {
	if s.TheoryExpt == "" {
		return ""
	}
	return s.TheoryExpt[:1]
}

// sortByYear orders by decreasing seniority, then alphabetically.
func sortByYear(entries []*Student) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return lessNameUpper(a, b)
	})
}

// sortByGroupAdvisor orders by research group, then advisor, then
// decreasing seniority, then alphabetically. Unaffiliated students sort to
// the end.
func sortByGroupAdvisor(entries []*Student) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if aa, ba := areaForSorting(a), areaForSorting(b); aa != ba {
			return aa < ba
		}
		if a.TheoryExpt != b.TheoryExpt {
			return a.TheoryExpt < b.TheoryExpt
		}
		if aa, ba := strings.ToUpper(a.Advisor), strings.ToUpper(b.Advisor); aa != ba {
			return aa < ba
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return lessNameUpper(a, b)
	})
}

func areaForSorting(s *Student) string {
	if s.Area == "" {
		return "ZZZ"
	}
	return s.Area
}

func lessNameUpper(a, b *Student) bool {
	al, bl := strings.ToUpper(a.Last), strings.ToUpper(b.Last)
	if al != bl {
		return al < bl
	}
	return strings.ToUpper(a.First) < strings.ToUpper(b.First)
}
