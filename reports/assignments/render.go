// render.go formats the assignment reports and input-data dumps.

package assignments

import (
	"fmt"
	"io"

	"github.com/mark-caprio/dgstools/tabular"
)

// Header identifies the assignment round on each report.
type Header struct {
	TermName string // e.g. "Spring 2022"
	Version  string // report version label
	Date     string // mm/dd/yyyy
}

func writeHeader(w io.Writer, hdr Header, organization string) {
	fmt.Fprintf(w, "TA assignments %s (%s)\nVersion %s, %s\n\n",
		hdr.TermName, organization, hdr.Version, hdr.Date)
}

// WriteByCourse writes the assignment report organized by course. With
// showNetID set, each entry also carries the section CRN and TA netid, for
// handoff to the registrar.
func WriteByCourse(w io.Writer, idx *Index, courses []string, byCourse map[string][]*Slot, hdr Header, showNetID bool) {
	writeHeader(w, hdr, "by course")

	for _, course := range courses {
		// First slot carries the general course info.
		first := byCourse[course][0]
		fmt.Fprintf(w, "%s / %s / %s\n", first.CourseOrNone, first.Title, first.Instructor)

		for _, slot := range byCourse[course] {
			if Suppressed(slot.TA) {
				continue
			}

			fullname := ""
			netid := ""
			if !Unfilled(slot.TA) {
				key, _ := idx.Resolve(slot.TA)
				ta := idx.TA(key)
				fullname = ta.FullName()
				netid = ta.NetID
			} else if slot.TA == taToBeFilled {
				fullname = "????????"
			}

			netidField := ""
			if showNetID {
				netidField = fmt.Sprintf("  [%-5s / %-8s]", slot.CRN, netid)
			}
			fmt.Fprintf(w, "   %-9s %-2s %-*s %2d   %-*s%s   %s\n",
				slot.CourseOrNone, slot.SectionOrNone,
				roleWidth, tabular.Truncate(slot.Role, roleWidth),
				slot.Hours,
				fullnameWidth, fullname,
				netidField, slot.WhenOrExams,
			)
		}
		fmt.Fprintln(w)
	}
}

// WriteByTA writes the assignment report organized by TA, listing each TA's
// assigned slots. Unassigned TAs are skipped. Whether a TA counts as
// assigned goes by presence of slots, not total hours, since a TA can hold a
// zero-hour assignment.
func WriteByTA(w io.Writer, idx *Index, byTA map[string][]*Slot, hdr Header) {
	writeHeader(w, hdr, "by TA")

	for _, key := range idx.Keys {
		slots := byTA[key]
		if len(slots) == 0 {
			continue
		}
		fmt.Fprintf(w, "%-*s\n", fullnameWidth, idx.TA(key).FullName())
		for _, slot := range slots {
			fmt.Fprintf(w, "   %-9s %-2s %-*s   %-*s   %-*s %2d   %s\n",
				slot.CourseOrNone, slot.SectionOrNone,
				titleWidth, tabular.Truncate(slot.Title, titleWidth),
				instructorWidth, tabular.Truncate(slot.Instructor, instructorWidth),
				roleWidthByTA, tabular.Truncate(slot.Role, roleWidthByTA),
				slot.Hours, slot.WhenOrExams,
			)
		}
		fmt.Fprintln(w)
	}
}

// WriteHours writes the hours-versus-quota report, for assistance while
// assembling the assignments. Each TA is marked "=" at quota, "." one hour
// under, and "***" over. Zero-quota TAs are skipped unless assigned.
func WriteHours(w io.Writer, idx *Index, hours map[string]int, byTA map[string][]*Slot, hdr Header) {
	writeHeader(w, hdr, "by TA")

	totHours := 0
	totQuota := 0
	for _, key := range idx.Keys {
		ta := idx.TA(key)
		assigned := hours[key]
		totHours += assigned
		totQuota += ta.Quota

		marker := ""
		switch {
		case assigned > ta.Quota:
			marker = "***"
		case assigned == ta.Quota:
			marker = "="
		case assigned == ta.Quota-1:
			marker = "."
		}

		if ta.Quota == 0 && len(byTA[key]) == 0 {
			continue
		}
		fmt.Fprintf(w, "%-*s %2d / %2d %-3s\n",
			fullnameWidth, ta.FullName(), assigned, ta.Quota, marker)
	}

	fmt.Fprintf(w, "\n    %d assigned / %d available\n", totHours, totQuota)
}

// DumpSlots writes a fixed-width dump of the slot table, for checking the
// ingested input data.
func DumpSlots(w io.Writer, slots []*Slot) {
	for _, slot := range slots {
		fmt.Fprintf(w, "%-9s %-2s %-*s %-*s %-20s %-*s %2d %s %s %s\n",
			slot.CourseOrNone, slot.Section,
			titleWidth, tabular.Truncate(slot.Title, titleWidth),
			instructorWidth, tabular.Truncate(slot.Instructor, instructorWidth),
			tabular.Truncate(slot.When, 20),
			roleWidth, tabular.Truncate(slot.Role, roleWidth),
			slot.Hours, slot.TA, slot.Notes, slot.History,
		)
	}
}

// DumpRoster writes a fixed-width dump of the roster table, showing the
// canonical keys.
func DumpRoster(w io.Writer, roster []*TA) {
	for _, ta := range roster {
		fmt.Fprintf(w, "%-20s %-20s %2d %-20s\n",
			tabular.Truncate(ta.Last, 20), tabular.Truncate(ta.First, 20),
			ta.Quota, ta.Key,
		)
	}
}
