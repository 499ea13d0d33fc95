// faculty.go reads the T&TT faculty list and the committee-supplement
// spreadsheet used during the committee assignment process.

package students

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mark-caprio/dgstools/tabular"
)

// ReadFaculty reads the list of current tenured and tenure-track faculty,
// one name per line, regularized to last-name-first form.
func ReadFaculty(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading faculty list %s: %w", path, err)
	}
	defer f.Close()

	var faculty []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		faculty = append(faculty, RegularizeName(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading faculty list %s: %w", path, err)
	}
	return faculty, nil
}

// supplementFields are the columns of the committee-supplement spreadsheet,
// giving newly assigned committee members ahead of the database update.
var supplementFields = []string{
	"last", "first", "committee1", "committee2", "committee3", "chair",
}

// AugmentCommittees merges the committee-supplement spreadsheet into the
// database. Supplemented members are tracked separately so the reports can
// flag them as new assignments. A supplement row naming an unknown student,
// or a chair for a student who already has one, is an error.
func AugmentCommittees(database []*Student, path string) error {
	byKey := make(map[string]*Student, len(database))
	for _, s := range database {
		byKey[s.Key] = s
	}

	records, err := tabular.ReadRecords(path, supplementFields, tabular.ReadOptions{
		SkipHeader: true,
	})
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec["last"] == "" {
			continue
		}
		key := rec["last"] + ":" + rec["first"]
		s, ok := byKey[key]
		if !ok {
			return fmt.Errorf("unrecognized student key %q in committee supplement %s", key, path)
		}

		supplement := make(map[string]bool)
		if rec["chair"] != "" {
			if s.Chair != "" {
				return fmt.Errorf("committee supplement names chair for %q, who already has one", key)
			}
			s.Chair = rec["chair"]
			supplement[RegularizeName(rec["chair"])] = true
		}
		for _, member := range []string{rec["committee1"], rec["committee2"], rec["committee3"]} {
			if member != "" {
				supplement[RegularizeName(member)] = true
			}
		}

		s.SupplementCommittee = supplement
		for member := range supplement {
			s.Committee[member] = true
		}
	}
	return nil
}
