// Package reports defines the Report interface and a registry for the
// pluggable report pipelines. To add a new report, create a package that
// implements Report and calls Register from its init function; the CLI
// binary blank-imports the pipeline packages and builds one subcommand per
// registered report.
package reports

import "sort"

// Report is a single extract-transform-report pipeline.
type Report interface {
	// Name returns the subcommand name, e.g. "ta-assignments".
	Name() string

	// Synopsis returns a one-line description for command help.
	Synopsis() string

	// ConfigFile returns the default YAML configuration filename.
	ConfigFile() string

	// Run reads the configured inputs and writes the report files.
	Run(ctx *Context) error
}

var registry = make(map[string]Report)

// Register adds a report to the global registry. Call this from an init
// function in your pipeline package.
func Register(r Report) {
	if _, dup := registry[r.Name()]; dup {
		panic("reports: duplicate report name " + r.Name())
	}
	registry[r.Name()] = r
}

// Lookup returns the report registered under name, or nil.
func Lookup(name string) Report {
	return registry[name]
}

// All returns every registered report, sorted by name.
func All() []Report {
	all := make([]Report, 0, len(registry))
	for _, r := range registry {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}
