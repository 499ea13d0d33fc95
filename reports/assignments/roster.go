// roster.go reads the TA roster spreadsheet.

package assignments

import (
	"fmt"
	"strconv"

	"github.com/mark-caprio/dgstools/tabular"
)

// rosterFields are the declared columns of the TA roster spreadsheet. The
// roster has no header row.
var rosterFields = []string{
	"last", "first", "year", "netid", "advisor", "area",
	"ta_ra_status", "quota", "notes",
}

// ReadRoster reads the TA roster. Rows with an empty last name (dividers,
// trailing blanks) are dropped.
func ReadRoster(path string) ([]*TA, error) {
	records, err := tabular.ReadRecords(path, rosterFields, tabular.ReadOptions{})
	if err != nil {
		return nil, err
	}

	var roster []*TA
	for _, rec := range records {
		if rec["last"] == "" {
			continue
		}
		quota, err := strconv.Atoi(rec["quota"])
		if err != nil {
			return nil, fmt.Errorf("roster entry for %q: bad quota %q", rec["last"], rec["quota"])
		}
		roster = append(roster, &TA{
			Last:    rec["last"],
			First:   rec["first"],
			Year:    rec["year"],
			NetID:   rec["netid"],
			Advisor: rec["advisor"],
			Area:    rec["area"],
			Status:  rec["ta_ra_status"],
			Quota:   quota,
			Notes:   rec["notes"],
			Key:     rec["last"] + ":" + rec["first"],
		})
	}
	return roster, nil
}
