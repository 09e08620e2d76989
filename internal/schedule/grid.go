// Package schedule implements the weekly schedule grid: time discretization,
// overlap clustering, column packing, layout projection, and the stateful
// edit session that feeds the schedule view.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid constants. The working day runs 08:00-23:00 in 30-minute slots; every
// rendering computation shares the same pixels-per-minute scale so a
// 60-minute session is always exactly twice as tall as a 30-minute one.
const (
	GridStartHour   = 8
	GridEndHour     = 23
	IntervalMinutes = 30
	RowHeightPx     = 40
)

// PixelsPerMinute converts a minute count to vertical pixels.
const PixelsPerMinute = float64(RowHeightPx) / float64(IntervalMinutes)

// TimeToMinutes parses an "HH:MM" clock string and returns its offset in
// minutes from the grid origin (08:00 = 0). Malformed or empty input
// degrades to 0; callers draw slots from SlotTimes, so this is a defensive
// default rather than a validated contract.
func TimeToMinutes(t string) int {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0
	}
	return (hour-GridStartHour)*60 + minute
}

// MinutesToTime is the inverse of TimeToMinutes for non-negative offsets.
// Negative offsets clamp to the grid origin.
func MinutesToTime(offset int) string {
	if offset < 0 {
		offset = 0
	}
	total := GridStartHour*60 + offset
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// SlotTimes returns the ordered slot-start labels of the working day,
// "08:00" through "22:30".
func SlotTimes() []string {
	n := (GridEndHour - GridStartHour) * 60 / IntervalMinutes
	slots := make([]string, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, MinutesToTime(i*IntervalMinutes))
	}
	return slots
}

// IsSlotTime reports whether t is one of the grid's slot-start labels.
func IsSlotTime(t string) bool {
	offset := TimeToMinutes(t)
	if MinutesToTime(offset) != t {
		return false
	}
	return offset >= 0 && offset < (GridEndHour-GridStartHour)*60 && offset%IntervalMinutes == 0
}
