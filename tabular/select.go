// select.go provides record selection, column extraction, and tallying.

package tabular

// FilterByField selects the records whose value for key is in the given set.
// With negate, the match is inverted.
func FilterByField(records []Record, key string, values []string, negate bool) []Record {
	valueSet := make(map[string]bool, len(values))
	for _, v := range values {
		valueSet[v] = true
	}
	var selected []Record
	for _, rec := range records {
		if valueSet[rec[key]] != negate {
			selected = append(selected, rec)
		}
	}
	return selected
}

// FieldValues extracts the values of a single field, in record order.
func FieldValues(records []Record, key string) []string {
	values := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec[key]
	}
	return values
}

// TallyByFieldValue counts how many records carry each distinct value of a
// field.
func TallyByFieldValue(records []Record, key string) map[string]int {
	tally := make(map[string]int)
	for _, rec := range records {
		tally[rec[key]]++
	}
	return tally
}
