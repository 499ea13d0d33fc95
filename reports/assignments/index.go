// index.go builds the TA lookup index and cross-references slots against it.

package assignments

import (
	"fmt"
	"sort"
)

// Index provides TA lookup by identifier. A TA may be identified in the slot
// spreadsheet by bare last name, when unambiguous, or always by the canonical
// "last:first" key.
type Index struct {
	// Keys lists the canonical TA keys in roster order.
	Keys []string

	aliases map[string]string // identifier -> canonical key
	byKey   map[string]*TA
}

// NewIndex builds the lookup index for a roster.
func NewIndex(roster []*TA) *Index {
	idx := &Index{
		aliases: make(map[string]string),
		byKey:   make(map[string]*TA),
	}
	for _, ta := range roster {
		idx.Keys = append(idx.Keys, ta.Key)
		idx.aliases[ta.Last] = ta.Key
		idx.aliases[ta.Key] = ta.Key
		idx.byKey[ta.Key] = ta
	}
	return idx
}

// Resolve maps a TA identifier to its canonical key.
func (idx *Index) Resolve(id string) (string, bool) {
	key, ok := idx.aliases[id]
	return key, ok
}

// TA returns the roster entry for a canonical key, or nil.
func (idx *Index) TA(key string) *TA {
	return idx.byKey[key]
}

// UniqueCourses returns the sorted list of distinct course numbers appearing
// in the slot table.
func UniqueCourses(slots []*Slot) []string {
	seen := make(map[string]bool)
	var courses []string
	for _, slot := range slots {
		if !seen[slot.Course] {
			seen[slot.Course] = true
			courses = append(courses, slot.Course)
		}
	}
	sort.Strings(courses)
	return courses
}

// TallyHours accumulates assigned hours per TA. Every roster TA appears in
// the result, zero-filled if unassigned. An unresolvable TA identifier is an
// error, since it usually means a typo in the slot spreadsheet.
func TallyHours(slots []*Slot, idx *Index) (map[string]int, error) {
	hours := make(map[string]int, len(idx.Keys))
	for _, key := range idx.Keys {
		hours[key] = 0
	}
	for _, slot := range slots {
		if Unfilled(slot.TA) {
			continue
		}
		key, ok := idx.Resolve(slot.TA)
		if !ok {
			return nil, fmt.Errorf("unrecognized TA identifier %q in entry for course %q", slot.TA, slot.Course)
		}
		hours[key] += slot.Hours
	}
	return hours, nil
}

// CollectByCourse groups slots by course number, each group sorted by
// (course, section).
func CollectByCourse(slots []*Slot, courses []string) map[string][]*Slot {
	byCourse := make(map[string][]*Slot, len(courses))
	for _, course := range courses {
		byCourse[course] = nil
	}
	for _, slot := range slots {
		byCourse[slot.Course] = append(byCourse[slot.Course], slot)
	}
	for _, course := range courses {
		sortSlots(byCourse[course])
	}
	return byCourse
}

// CollectByTA groups filled slots by canonical TA key, each group sorted by
// (course, section). Every roster TA appears in the result.
func CollectByTA(slots []*Slot, idx *Index) (map[string][]*Slot, error) {
	byTA := make(map[string][]*Slot, len(idx.Keys))
	for _, key := range idx.Keys {
		byTA[key] = nil
	}
	for _, slot := range slots {
		if Unfilled(slot.TA) {
			continue
		}
		key, ok := idx.Resolve(slot.TA)
		if !ok {
			return nil, fmt.Errorf("unrecognized TA identifier %q in entry for course %q", slot.TA, slot.Course)
		}
		byTA[key] = append(byTA[key], slot)
	}
	for _, key := range idx.Keys {
		sortSlots(byTA[key])
	}
	return byTA, nil
}

func sortSlots(slots []*Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Course != slots[j].Course {
			return slots[i].Course < slots[j].Course
		}
		return slots[i].Section < slots[j].Section
	})
}
