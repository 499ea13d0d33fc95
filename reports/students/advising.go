// advising.go renders the advising and research committee reports: loads and
// rosters by faculty member, and committee listings by student.

package students

import (
	"fmt"
	"io"
	"sort"
)

// tallyAdvising counts advisor, coadvisor, and committee roles per faculty
// member. Every base-set member appears, zero-filled if unassigned; names
// appearing only in the database are added as encountered. Defended students
// are excluded from the current load.
func tallyAdvising(database []*Student, baseSet []string) (advisor, coadvisor, committee map[string]int) {
	advisor = make(map[string]int)
	coadvisor = make(map[string]int)
	committee = make(map[string]int)
	for _, name := range baseSet {
		advisor[name] = 0
		coadvisor[name] = 0
		committee[name] = 0
	}

	for _, s := range database {
		if s.CandidacyStatus == candidacyDefended {
			continue
		}
		advisor[s.Advisor]++
		if s.Coadvisor != "" {
			coadvisor[s.Coadvisor]++
		}
		for member := range s.Committee {
			committee[member]++
		}
	}
	return advisor, coadvisor, committee
}

// collectAdvising groups students under each faculty member serving on their
// full committee (advisor, coadvisor, or committee member). Every base-set
// member appears, with an empty list if unassigned.
func collectAdvising(database []*Student, baseSet []string) map[string][]*Student {
	assignments := make(map[string][]*Student)
	for _, name := range baseSet {
		assignments[name] = nil
	}

	for _, s := range database {
		full := make(map[string]bool, len(s.Committee)+2)
		for member := range s.Committee {
			full[member] = true
		}
		if s.Advisor != "" {
			full[s.Advisor] = true
		}
		if s.Coadvisor != "" {
			full[s.Coadvisor] = true
		}
		for member := range full {
			assignments[member] = append(assignments[member], s)
		}
	}
	return assignments
}

// WriteAdvisingLoad writes the per-faculty tally of advising and committee
// loads.
func WriteAdvisingLoad(w io.Writer, database []*Student, faculty []string, date string) {
	fmt.Fprintf(w,
		"Advising and research committee loads\n\n  %s\n\n  advisor + coadvisor / committee\n  %s\n",
		date, facultyLegendTenure)

	advisorTally, coadvisorTally, committeeTally := tallyAdvising(database, faculty)

	names := make(map[string]bool)
	for name := range advisorTally {
		names[name] = true
	}
	for name := range coadvisorTally {
		names[name] = true
	}
	for name := range committeeTally {
		names[name] = true
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return facultySortKey(sorted[i]) < facultySortKey(sorted[j])
	})

	facultySet := facultyNameSet(faculty)
	for _, name := range sorted {
		coadvisorString := ""
		if _, ok := coadvisorTally[name]; ok {
			coadvisorString = fmt.Sprintf("+%1d", coadvisorTally[name])
		}
		fmt.Fprintf(w, "%-34s %2d %-2s / %-2d %-1s\n",
			name, advisorTally[name], coadvisorString, committeeTally[name],
			tenureFlag(name, facultySet))
	}
}

// FacultyReportOptions selects the flavor of the by-faculty advising report.
type FacultyReportOptions struct {
	// IncludeDefended lists defended students as well.
	IncludeDefended bool

	// IncludeAdvising lists advising and coadvising roles, not just
	// committee membership. Disabled for the committee-assignment working
	// report, where the recipient assesses committee load alone.
	IncludeAdvising bool

	// FlagTenured marks tenured and tenure-track faculty names.
	FlagTenured bool
}

// WriteAdvisingByFaculty writes the advising and committee roster organized
// by faculty member.
func WriteAdvisingByFaculty(w io.Writer, database []*Student, faculty []string, date string, opts FacultyReportOptions) {
	title := "Advising and research committees\n  by faculty member\n"
	if !opts.IncludeAdvising {
		title = "Research committees by faculty member\n  excludes defended students\n\n"
	}
	legend := facultyLegendBase
	if opts.FlagTenured {
		legend = facultyLegendTenure
	}
	fmt.Fprintf(w, "%s%s\n\n%s\n%s\n\n", title, date, statusLegend, legend)

	assignments := collectAdvising(database, faculty)
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return facultySortKey(names[i]) < facultySortKey(names[j])
	})

	facultySet := facultyNameSet(faculty)
	for _, name := range names {
		type taggedEntry struct {
			role string // sort rank: advisor < coadvisor < committee
			s    *Student
		}
		var entries []taggedEntry
		for _, s := range assignments[name] {
			role := "committee"
			switch name {
			case s.Advisor:
				role = "advisor"
			case s.Coadvisor:
				role = "coadvisor"
			}
			if !opts.IncludeDefended && s.CandidacyStatus == candidacyDefended {
				continue
			}
			if !opts.IncludeAdvising && role != "committee" {
				continue
			}
			entries = append(entries, taggedEntry{role, s})
		}
		// e.g. with advising roles excluded, a faculty member may advise but
		// sit on no committees
		if len(entries) == 0 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.role != b.role {
				return a.role < b.role
			}
			if a.s.Year != b.s.Year {
				return a.s.Year > b.s.Year
			}
			if a.s.Last != b.s.Last {
				return a.s.Last < b.s.Last
			}
			return a.s.First < b.s.First
		})

		headFlag := ""
		if opts.FlagTenured {
			headFlag = tenureFlag(name, facultySet)
		}
		fmt.Fprintf(w, "%s %s\n", name, headFlag)
		for _, e := range entries {
			fmt.Fprintf(w, "%-1s %-28s [%s] %s %-9s\n",
				e.s.supplementFlag(name), e.s.StudentYearString,
				e.s.CandidacyStatus, e.s.ShortAdvisorComposite, e.s.RoleFor(name))
		}
		fmt.Fprintln(w)
	}
}

// WriteAdvisingByStudent writes each student's full committee as a multiline
// block, alphabetically by student.
func WriteAdvisingByStudent(w io.Writer, database []*Student, date string) {
	fmt.Fprintf(w, "Advising and research committees\n  by student\n\n  %s\n\n%s\n",
		date, facultyLegendBase)

	entries := make([]*Student, len(database))
	copy(entries, database)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Last != b.Last {
			return a.Last < b.Last
		}
		if a.First != b.First {
			return a.First < b.First
		}
		return a.Year < b.Year
	})

	for _, s := range entries {
		fmt.Fprintf(w, "%-28s\n", s.StudentYearString)
		var members []string
		if s.Advisor != "" {
			members = append(members, s.Advisor)
		}
		if s.Coadvisor != "" {
			members = append(members, s.Coadvisor)
		}
		members = append(members, s.SortedCommittee()...)
		for _, name := range members {
			fmt.Fprintf(w, "%-1s %s %s\n", s.supplementFlag(name), name, s.RoleFor(name))
		}
		fmt.Fprintln(w)
	}
}

func facultyNameSet(faculty []string) map[string]bool {
	set := make(map[string]bool, len(faculty))
	for _, name := range faculty {
		set[name] = true
	}
	return set
}
