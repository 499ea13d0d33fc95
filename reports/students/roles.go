// roles.go derives per-faculty role tags and flags for the advising reports.

package students

// RoleFor describes a faculty member's role on a student's committee.
func (s *Student) RoleFor(name string) string {
	switch {
	case name == s.Advisor:
		return "-- Advisor"
	case name == s.Coadvisor:
		return "-- Coadvisor"
	case s.Chair != "" && name == RegularizeName(s.Chair):
		return "*"
	}
	return ""
}

// supplementFlag marks a newly assigned committee member.
func (s *Student) supplementFlag(name string) string {
	if s.SupplementCommittee[name] {
		return "#"
	}
	return ""
}

// tenureFlag marks tenured and tenure-track physics faculty.
func tenureFlag(name string, faculty map[string]bool) string {
	if faculty[name] {
		return "@"
	}
	return ""
}

// Report legends.
const (
	statusLegend = "Student progress status codes:\n" +
		"  [ ] = precandidacy\n" +
		"  [I] = invited to take candidacy exam\n" +
		"  [W] = written candidacy exam complete\n" +
		"  [C] = candidacy complete (or oral scheduled)\n" +
		"  [D] = defended (or defense scheduled)\n"

	facultyLegendBase = "  * = out-of-area member / committee chair\n"

	facultyLegendTenure = facultyLegendBase +
		"  @ = tenured & tenure track (in physics)\n"
)
