// names.go regularizes faculty names into last-name-first form.

package students

import "strings"

// salutations stripped from faculty names.
var salutations = map[string]bool{"Prof.": true}

// RegularizeName rewrites a faculty name in "Last, First [Middle]" form.
// Accepted inputs:
//
//	"Special" (e.g. "DGS") -- one-word names are left untouched
//	"Last, First [Middle]"
//	"First [Middle] Last"
//	"Prof. First [Middle] Last"
func RegularizeName(name string) string {
	tokens := strings.Fields(name)
	switch {
	case len(tokens) <= 1:
		return name
	case strings.HasSuffix(tokens[0], ","):
		return strings.Join(tokens, " ")
	case salutations[tokens[0]]:
		return tokens[len(tokens)-1] + ", " + strings.Join(tokens[1:len(tokens)-1], " ")
	default:
		return tokens[len(tokens)-1] + ", " + strings.Join(tokens[:len(tokens)-1], " ")
	}
}

// facultySortKey orders faculty names alphabetically, pushing special
// one-word names ("DGS", "TBD", "") to the end of the list.
func facultySortKey(name string) string {
	if !strings.Contains(name, " ") {
		return "ZZZZZ" + name
	}
	return name
}
