// funding.go interprets the funding codes recorded in the student database
// and derives TA status and hour estimates from them.

package students

import "strings"

// teachingStatusByFundingCode maps each base funding code to whether it
// carries a departmental TA assignment.
var teachingStatusByFundingCode = map[string]bool{
	// standard
	"TA":          true,  // TA funding from GA funds
	"TA-univ":     false, // teaching role supervised and paid by university source
	"RA":          false, // RA from advisor's research funds
	"RA-ext":      false, // RA paid directly by external source
	"RA-intern":   false, // internship paid directly by external source
	"RA-univ":     false, // RA paid by another part of university
	"Fellow-dept": false, // departmental endowed fellowship
	"Fellow-univ": false, // university fellowship (covering base stipend)
	"Fellow-ext":  false, // external fellowship
	"NS":          false, // no support
	"G":           false, // graduated (no support)
	// legacy codes
	"Fellow":        false,
	"TA-NA":         false, // TA with no assignment (special GA support)
	"Fellow-remote": false, // GA funded 20b special arrangement
	// hybrid support
	"TA/RA":         true,
	"RA/Fellow-ext": false,
}

// splitFundingStatus separates a funding entry into its base code and any
// parenthesized annotation, e.g. "TA (Schmitt)".
func splitFundingStatus(fundingStatus string) (base, annotation string) {
	tokens := strings.Fields(fundingStatus)
	if len(tokens) >= 1 {
		base = tokens[0]
	}
	if len(tokens) >= 2 {
		annotation = tokens[1]
	}
	return base, annotation
}

// TAStatusFlag derives the teaching flag for a funding entry: "*" for a TA,
// "" for a non-teaching role, "?" for an unrecognized code. The flag is from
// a teaching-preference-request perspective, not a funding perspective.
func TAStatusFlag(fundingStatus string) string {
	base, _ := splitFundingStatus(fundingStatus)
	teaching, known := teachingStatusByFundingCode[base]
	switch {
	case !known:
		return "?"
	case teaching:
		return "*"
	default:
		return ""
	}
}

// Fellowship annotations indicating a TA with reduced hours in the early
// years.
var reducedHoursAnnotations = map[string]bool{
	"(Schmitt)":   true,
	"(Notebaert)": true,
}

// TAHours estimates the TA hours for a funding entry by heuristic. Hybrid
// and unrecognized codes yield "???", to be resolved manually.
func TAHours(fundingStatus string, year float64) string {
	base, annotation := splitFundingStatus(fundingStatus)
	teaching, known := teachingStatusByFundingCode[base]
	switch {
	case known && !teaching:
		return "0"
	case base == "TA":
		if reducedHoursAnnotations[annotation] && year <= 2 {
			return "9"
		}
		return "15"
	default:
		return "???"
	}
}
