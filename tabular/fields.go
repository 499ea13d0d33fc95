// fields.go provides in-place post-processing of survey response fields:
// radio-button grids become flag strings, open responses become tagged
// lines, and checkbox answers are broken out one choice per line.

package tabular

import "strings"

// ConvertFieldsToFlags replaces the contents of each nonempty field with the
// field name itself plus padding, so a row of radio buttons can be summarized
// on a single line ("GH GE H ").
func ConvertFieldsToFlags(rec Record, keys []string, padding string) {
	for _, key := range keys {
		if rec[key] != "" {
			rec[key] = key + padding
		}
	}
}

// ConvertFieldsToTaggedLines tags each field value with its field name,
// producing "prefix key: value padding". When prune is set, empty fields are
// cleared instead, so the tagged lines can be concatenated with no delimiter.
func ConvertFieldsToTaggedLines(rec Record, keys []string, prefix, padding string, prune bool) {
	for _, key := range keys {
		if prune && rec[key] == "" {
			rec[key] = ""
			continue
		}
		rec[key] = prefix + key + ": " + rec[key] + padding
	}
}

// SplitCheckboxResponses breaks a delimited multi-select answer into one
// prefixed, padded line per choice. An empty answer yields an empty string
// rather than a single empty choice.
func SplitCheckboxResponses(rec Record, keys []string, delimiter, prefix, padding string) {
	for _, key := range keys {
		if strings.TrimSpace(rec[key]) == "" {
			rec[key] = ""
			continue
		}
		var b strings.Builder
		for _, value := range strings.Split(rec[key], delimiter) {
			b.WriteString(prefix)
			b.WriteString(value)
			b.WriteString(padding)
		}
		rec[key] = b.String()
	}
}
