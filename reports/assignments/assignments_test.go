package assignments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

const rosterCSV = `Abbott,Anna,2,aabbott,Smith,CM,TA,15,
Baker,Ben,1,bbaker,Jones,HE,TA,15,
Baker,Beth,3,bbaker2,Lee,NS,TA/RA,9,
Cole,Carl,4,ccole,Park,AP,RA,0,
,,,,,,,0,
`

const slotsCSV = `Course - Sec,Title,Cr,St,Max,Opn,Xlst,CRN,Instructor,When,Begin,End,Where,Relevant,Exams,Role,Hours,TA,Conflicts,Notes,History
PHYS 10111-01,Principles of Physics,4,O,48,10,,12345,Smith,M W F  - 11:30A - 12:20P,1/10,4/27,NSH 118,X,,Lab/Tutorial,6,Abbott,,,
PHYS 10111-02*,Principles of Physics,4,O,48,3,,12346,Smith,T R - 2:00P - 3:15P,1/10,4/27,NSH 118,X,,Lab/Tutorial,6,Baker:Ben,,,
PHYS 20330-01,E&M I,3,O,35,5,,12400,Jones/Lee,M W F  - 9:25A - 10:15A,1/10,4/27,NSH 123,,May 3,Grading,3,Baker:Beth,,,
PHYS 20330-01,E&M I,3,O,35,5,,12400,Jones/Lee,M W F  - 9:25A - 10:15A,1/10,4/27,NSH 123,,May 3,Exam Grading,2,?,,,
PHYSZZ No TA-00,Placeholder,0,,,,,,,,,,,,,None,0,X,,,
PHYS 70007-01,Research Seminar,1,O,20,20,,12500,Park,,1/10,4/27,NSH 184,,,Reserved,9,.,,,
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTestTables(t *testing.T) ([]*TA, []*Slot) {
	t.Helper()
	roster, err := ReadRoster(writeTempFile(t, "ta-roster.csv", rosterCSV))
	if err != nil {
		t.Fatalf("ReadRoster: %v", err)
	}
	slots, err := ReadSlots(writeTempFile(t, "ta-assignments.csv", slotsCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("ReadSlots: %v", err)
	}
	return roster, slots
}

func TestReadRoster(t *testing.T) {
	roster, _ := readTestTables(t)
	if len(roster) != 4 {
		t.Fatalf("got %d roster entries, want 4 (blank row dropped)", len(roster))
	}
	got := roster[0]
	if got.Key != "Abbott:Anna" || got.Quota != 15 || got.NetID != "aabbott" {
		t.Errorf("unexpected first roster entry: %+v", got)
	}
	if got.FullName() != "Abbott, Anna (2)" {
		t.Errorf("FullName() = %q", got.FullName())
	}
}

func TestReadSlots(t *testing.T) {
	_, slots := readTestTables(t)
	if len(slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(slots))
	}

	lab := slots[0]
	if lab.Course != "PHYS 10111" || lab.Section != "01" {
		t.Errorf("course-section split: got %q / %q", lab.Course, lab.Section)
	}
	if !lab.SectionRelevant || lab.SectionOrNone != "01" {
		t.Errorf("relevant slot should expose section, got %+v", lab)
	}
	if lab.WhenOrExams != "MWF 11:30A-12:20P" {
		t.Errorf("WhenOrExams = %q", lab.WhenOrExams)
	}

	// Trailing asterisk on section is registrar noise.
	if slots[1].Section != "02" {
		t.Errorf("section asterisk not stripped: %q", slots[1].Section)
	}

	grading := slots[2]
	if grading.Instructor != "Jones&Lee" {
		t.Errorf("co-instructor rewrite: %q", grading.Instructor)
	}
	if grading.SectionOrNone != "" {
		t.Errorf("irrelevant section should be suppressed, got %q", grading.SectionOrNone)
	}
	if grading.WhenOrExams != "May 3" {
		t.Errorf("exam fallback: WhenOrExams = %q", grading.WhenOrExams)
	}

	if slots[4].CourseOrNone != "PHYSXXXXX" {
		t.Errorf("pseudo-course placeholder: %q", slots[4].CourseOrNone)
	}
	if slots[4].Hours != 0 {
		t.Errorf("hours for placeholder slot = %d", slots[4].Hours)
	}
}

func TestIndexResolve(t *testing.T) {
	roster, _ := readTestTables(t)
	idx := NewIndex(roster)

	if key, ok := idx.Resolve("Abbott"); !ok || key != "Abbott:Anna" {
		t.Errorf("Resolve(Abbott) = %q, %v", key, ok)
	}
	if key, ok := idx.Resolve("Baker:Beth"); !ok || key != "Baker:Beth" {
		t.Errorf("Resolve(Baker:Beth) = %q, %v", key, ok)
	}
	if _, ok := idx.Resolve("Nobody"); ok {
		t.Error("Resolve(Nobody) should fail")
	}
}

func TestTallyHours(t *testing.T) {
	roster, slots := readTestTables(t)
	idx := NewIndex(roster)

	hours, err := TallyHours(slots, idx)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"Abbott:Anna": 6,
		"Baker:Ben":   6,
		"Baker:Beth":  3,
		"Cole:Carl":   0,
	}
	if diff := cmp.Diff(want, hours); diff != "" {
		t.Errorf("hours mismatch (-want +got):\n%s", diff)
	}
}

func TestTallyHoursUnknownTA(t *testing.T) {
	roster, slots := readTestTables(t)
	idx := NewIndex(roster)

	slots[0].TA = "Davis"
	_, err := TallyHours(slots, idx)
	if err == nil || !strings.Contains(err.Error(), "Davis") {
		t.Errorf("want error naming unknown identifier, got %v", err)
	}
}

func TestCollectByCourse(t *testing.T) {
	roster, slots := readTestTables(t)
	_ = roster

	courses := UniqueCourses(slots)
	want := []string{"PHYS 10111", "PHYS 20330", "PHYS 70007", "PHYSZZ No TA"}
	if diff := cmp.Diff(want, courses); diff != "" {
		t.Errorf("courses mismatch (-want +got):\n%s", diff)
	}

	byCourse := CollectByCourse(slots, courses)
	sections := []string{}
	for _, slot := range byCourse["PHYS 10111"] {
		sections = append(sections, slot.Section)
	}
	if diff := cmp.Diff([]string{"01", "02"}, sections); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectByTA(t *testing.T) {
	roster, slots := readTestTables(t)
	idx := NewIndex(roster)

	byTA, err := CollectByTA(slots, idx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byTA["Abbott:Anna"]) != 1 {
		t.Errorf("Abbott slots = %d, want 1", len(byTA["Abbott:Anna"]))
	}
	// Unfilled markers contribute no slots.
	if len(byTA["Cole:Carl"]) != 0 {
		t.Errorf("Cole slots = %d, want 0", len(byTA["Cole:Carl"]))
	}
}
