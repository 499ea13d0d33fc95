package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		input        string
		keepNewlines bool
		want         string
	}{
		{"  plain  ", false, "plain"},
		{"trailing newline\n", false, "trailing newline"},
		{"line one\nline two", false, "line one | line two"},
		{"line one\nline two", true, "line one\nline two"},
		{"", false, ""},
	}
	for _, tt := range tests {
		got := CleanCell(tt.input, tt.keepNewlines)
		if got != tt.want {
			t.Errorf("CleanCell(%q, %v) = %q, want %q", tt.input, tt.keepNewlines, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"Electromagnetic Waves", 10, "Electromag"},
		{"short", 10, "short"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := Truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeTemp(t, "roster.csv",
		"Last,First,Quota\n"+
			"Muñoz,Inés,15\n"+
			"Smith,\"Jo\nAnn\",9\n"+
			"Jones,Sam\n")
	records, err := ReadRecords(path, []string{"last", "first", "quota"}, ReadOptions{
		SkipHeader: true,
		RestVal:    "-",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Unicode names are transliterated to ASCII.
	if records[0]["last"] != "Munoz" || records[0]["first"] != "Ines" {
		t.Errorf("transliteration: got %q %q", records[0]["last"], records[0]["first"])
	}
	// Embedded newlines become " | ".
	if records[1]["first"] != "Jo | Ann" {
		t.Errorf("newline replacement: got %q", records[1]["first"])
	}
	// Missing trailing cells take RestVal.
	if records[2]["quota"] != "-" {
		t.Errorf("restval: got %q", records[2]["quota"])
	}
}

func TestReadRecordsStripsNUL(t *testing.T) {
	path := writeTemp(t, "survey.csv", "a\x00b,c\n")
	records, err := ReadRecords(path, []string{"x", "y"}, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if records[0]["x"] != "ab" {
		t.Errorf("NUL stripping: got %q", records[0]["x"])
	}
}

func TestReadTable(t *testing.T) {
	path := writeTemp(t, "table.csv", ",CLSS ID,CRN\nPHYS 10310,,\n,12345,98765\n")
	table, err := ReadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 3 {
		t.Fatalf("got %d rows, want 3", len(table))
	}
	if table[2][1] != "12345" {
		t.Errorf("cell: got %q", table[2][1])
	}
}

func TestWriteTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{
		{"course", "section"},
		{"PHYS 70006", "01"},
	}
	if err := WriteTable(path, rows); err != nil {
		t.Fatal(err)
	}
	got, err := ReadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1][0] != "PHYS 70006" {
		t.Errorf("round trip: got %v", got)
	}
}
