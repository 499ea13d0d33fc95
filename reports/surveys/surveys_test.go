package surveys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mark-caprio/dgstools/tabular"
)

func TestDropTestRows(t *testing.T) {
	records := []tabular.Record{
		{"last": "Garg", "name": "Physics"},
		{"last": "TEST", "name": "Physics"},
		{"last": "Caprio", "name": "TEST"},
	}
	kept := dropTestRows(records, "last", "name")
	if len(kept) != 1 || kept[0]["last"] != "Garg" {
		t.Errorf("dropTestRows kept %v", kept)
	}
}

func TestSortResponses(t *testing.T) {
	records := []tabular.Record{
		{"last": "garg", "first": "Umesh", "timestamp": "2"},
		{"last": "Caprio", "first": "Mark", "timestamp": "9"},
		{"last": "Garg", "first": "Umesh", "timestamp": "1"},
	}
	sortResponses(records, "timestamp")
	got := []string{
		records[0]["last"] + "/" + records[0]["timestamp"],
		records[1]["last"] + "/" + records[1]["timestamp"],
		records[2]["last"] + "/" + records[2]["timestamp"],
	}
	want := []string{"Caprio/9", "Garg/1", "garg/2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"garg", "Garg"},
		{"GARG", "Garg"},
		{"van der BERG", "Van Der Berg"},
		{"o'neill", "O'Neill"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteStudentPreferences(t *testing.T) {
	records := []tabular.Record{{
		"last": "Adams", "first": "Alice",
		"preferred":      "Grader;Lab TA",
		"class-conflict": "PHYS 70007",
		"sem-conflict":   "",
		"other":          "none",
		"exclude":        "",
	}}
	var buf strings.Builder
	WriteStudentPreferences(&buf, records)
	want := "Adams, Alice\n" +
		"Preferred types:\n" +
		"   Grader\n" +
		"   Lab TA\n" +
		"Conflicts:\n" +
		"   PHYS 70007\n" +
		"Other: none\n" +
		"Exclude: \n\n"
	if buf.String() != want {
		t.Errorf("student preference block:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteFacultyPreferences(t *testing.T) {
	records := []tabular.Record{
		{
			"last": "garg", "first": "Umesh",
			"number": "10310", "name": "Engineering Physics I", "enrollment": "48",
			"GH": "Yes", "GE": "Yes",
			"common": "prefer experienced graders",
		},
		{
			"last": "Caprio", "first": "Mark",
			"number": "20420", "name": "Computational Methods", "enrollment": "20",
			"A": "Yes",
		},
	}
	var buf strings.Builder
	WriteFacultyPreferences(&buf, records)
	out := buf.String()

	if !strings.HasPrefix(out, "Submitted: Caprio, Garg\n\n") {
		t.Errorf("submitted summary:\n%s", out)
	}
	if !strings.Contains(out, "garg, Umesh\nCourse: 10310 / Engineering Physics I (48)\nCommon: GH GE \n") {
		t.Errorf("flag line:\n%s", out)
	}
	if !strings.Contains(out, "Uncommon: A \nNotes: \n") {
		t.Errorf("uncommon flag line:\n%s", out)
	}
}

func TestWriteStudentFeedback(t *testing.T) {
	rec := tabular.Record{
		"last": "Baker", "first": "Ben",
		"number":   "10310",
		"comments": "fine",
	}
	for _, field := range studentFeedbackDutyFields {
		rec[field] = ""
	}
	rec["Lab-prep"] = "2 hours"
	rec["Proctoring"] = "one exam"

	var buf strings.Builder
	WriteStudentFeedback(&buf, []tabular.Record{rec})
	want := "Baker, Ben\n" +
		"Course: 10310\n" +
		"Lab-prep: 2 hours\n" +
		"Proctoring: one exam\n" +
		"Comments: fine\n\n"
	if buf.String() != want {
		t.Errorf("student feedback block:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteFacultyFeedback(t *testing.T) {
	records := []tabular.Record{{
		"last": "Chen", "first": "Carla",
		"username": "jdoe",
		"number":   "20210", "name": "Physics for Life Sciences I",
		"role":     "Grader",
		"special":  "Excellent, really went above and beyond",
		"comments": "good",
	}}
	var buf strings.Builder
	WriteFacultyFeedback(&buf, records)
	want := "Chen, Carla\n" +
		"Course: PHYS 20210 / Physics for Life Sciences I / jdoe\n" +
		"Role: Grader\n" +
		"Special: Excellent\n" +
		"Comments: good\n\n"
	if buf.String() != want {
		t.Errorf("faculty feedback block:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

const courseRequestCSV = `Timestamp,Your First Name,Your Last Name,...
1/1,Umesh,Garg,Yes,,,1,,none
1/2,Mark,Caprio,No,agreed,req,2,1,
`

func courseRequestTestConfig() CourseRequestConfig {
	return CourseRequestConfig{
		TermName: "Spring 2022",
		TermTag:  "22a",
		Courses: []string{
			"PHYS 10310: Engineering Physics I",
			"PHYS 20420: Computational Methods",
		},
	}
}

func readTestRequests(t *testing.T) (CourseRequestConfig, []tabular.Record) {
	t.Helper()
	cfg := courseRequestTestConfig()
	cfg.ResponseFilename = filepath.Join(t.TempDir(), "requests.csv")
	if err := os.WriteFile(cfg.ResponseFilename, []byte(courseRequestCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := readCourseRequests(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, records
}

func TestWriteRequestsByFaculty(t *testing.T) {
	cfg, records := readTestRequests(t)
	var buf strings.Builder
	WriteRequestsByFaculty(&buf, cfg, records)
	want := "Teaching requests by faculty member\n" +
		"Spring 2022\n\n" +
		"Name: Caprio, Mark\n" +
		"Didn't ask to change? No\n" +
		"Agreement? agreed\n" +
		"Requests? req\n" +
		"Preferences:\n" +
		"    PHYS 10310: Engineering Physics I: 2\n" +
		"    PHYS 20420: Computational Methods: 1\n" +
		"Other: \n\n" +
		"Name: Garg, Umesh\n" +
		"Didn't ask to change? Yes\n" +
		"Agreement? \n" +
		"Requests? \n" +
		"Preferences:\n" +
		"    PHYS 10310: Engineering Physics I: 1\n" +
		"Other: none\n\n"
	if buf.String() != want {
		t.Errorf("by-faculty report:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteRequestsByCourse(t *testing.T) {
	cfg, records := readTestRequests(t)
	var buf strings.Builder
	WriteRequestsByCourse(&buf, cfg, records)
	want := "Teaching requests by course\n" +
		"Spring 2022\n\n" +
		"PHYS 10310: Engineering Physics I\n" +
		"    Garg, Umesh: 1\n" +
		"    Caprio, Mark: 2\n\n" +
		"PHYS 20420: Computational Methods\n" +
		"    Caprio, Mark: 1\n\n"
	if buf.String() != want {
		t.Errorf("by-course report:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteSchedulingGrid(t *testing.T) {
	cfg := SchedulingConfig{
		Dates:         []string{"Aug 23", "Aug 30"},
		ResponseCodes: map[string]string{"Yes": "Y", "No": "."},
		NameWidth:     20,
		DateWidth:     6,
	}
	records := []tabular.Record{
		{"last": "Caprio", "first": "Mark", "Aug 23": "Yes", "Aug 30": "No", "comments": "ok"},
		{"last": "Garg", "first": "Umesh", "Aug 23": "Maybe", "Aug 30": "Yes", "comments": ""},
	}
	var buf strings.Builder
	WriteSchedulingGrid(&buf, cfg, records, zap.NewNop())
	out := buf.String()

	if !strings.HasPrefix(out, strings.Repeat(" ", 21)+"Aug 23Aug 30\n") {
		t.Errorf("header line:\n%q", out)
	}
	if !strings.Contains(out, "Caprio, Mark         Y     .     ok\n") {
		t.Errorf("response row:\n%q", out)
	}
	if !strings.Contains(out, "Garg, Umesh          ?     Y     \n") {
		t.Errorf("unknown response should render as ?:\n%q", out)
	}
}
