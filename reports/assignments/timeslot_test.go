package assignments

import "testing"

func TestCompressTimeslot(t *testing.T) {
	tests := []struct {
		name     string
		timeslot string
		want     string
		wantBad  int
	}{
		{"single", "M W F  - 11:30A - 12:20P", "MWF 11:30A-12:20P", 0},
		{"slash list", "W - 3:00P - 3:50P / F - 2:00P - 3:50P", "W 3:00P-3:50P / F 2:00P-3:50P", 0},
		{"tbd passthrough", "TBD", "TBD", 0},
		{"nonconforming", "see instructor", "see instructor", 1},
		{"mixed list", "M - 9:25A - 10:15A / arranged", "M 9:25A-10:15A / arranged", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bad := CompressTimeslot(tt.timeslot)
			if got != tt.want {
				t.Errorf("CompressTimeslot(%q) = %q, want %q", tt.timeslot, got, tt.want)
			}
			if len(bad) != tt.wantBad {
				t.Errorf("CompressTimeslot(%q) flagged %d parts, want %d", tt.timeslot, len(bad), tt.wantBad)
			}
		})
	}
}

func TestCourseOrNone(t *testing.T) {
	tests := []struct {
		course string
		want   string
	}{
		{"PHYS 10240", "PHYS 10240"},
		{"PHYS99900", "PHYS99900"},
		{"PHYSZZ No Support", "PHYSXXXXX"},
	}
	for _, tt := range tests {
		if got := courseOrNone(tt.course); got != tt.want {
			t.Errorf("courseOrNone(%q) = %q, want %q", tt.course, got, tt.want)
		}
	}
}
