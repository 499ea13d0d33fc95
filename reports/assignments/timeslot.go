// timeslot.go compresses registrar meeting-time strings for report columns.

package assignments

import (
	"regexp"
	"strings"
)

// timeslotPattern matches the registrar's verbose meeting-time form, e.g.
// "M W F  - 11:30A - 12:20P".
var timeslotPattern = regexp.MustCompile(`^([MTWRF\s]+) - (\S+ - \S+)`)

// CompressTimeslot rewrites a registrar meeting-time string in compact form,
// "MWF 11:30A-12:20P". A slash-separated list of timeslots is compressed
// piecewise. Nonconforming parts are passed through after cleanup and
// returned in bad for diagnostic purposes.
func CompressTimeslot(timeslot string) (short string, bad []string) {
	parts := strings.Split(timeslot, "/")
	compressed := make([]string, 0, len(parts))
	for _, part := range parts {
		s, ok := compressSingle(part)
		if !ok {
			bad = append(bad, strings.TrimSpace(part))
		}
		compressed = append(compressed, s)
	}
	return strings.Join(compressed, " / "), bad
}

// compressSingle compresses one timeslot. "TBD" is accepted as-is.
func compressSingle(timeslot string) (string, bool) {
	cleaned := strings.TrimSpace(timeslot)
	if cleaned == "TBD" {
		return cleaned, true
	}
	m := timeslotPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return cleaned, false
	}
	days := strings.ReplaceAll(m[1], " ", "")
	times := strings.ReplaceAll(m[2], " ", "")
	return days + " " + times, true
}
