// Package demo seeds a small task dataset for screen recordings. Every date
// is derived from the supplied "now", so recordings always look current.
package demo

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format used by both backends.
const DateLayout = "2006-01-02"

// Offsets are the day offsets from today used by the dataset.
var Offsets = []int{-3, -1, 0, 1, 3, 5}

// Dates are the calendar days the dataset refers to.
type Dates struct {
	ThreeDaysAgo string
	Yesterday    string
	Today        string
	Tomorrow     string
	InThreeDays  string
	InFiveDays   string
}

// DatesFrom computes the offsets on now's calendar date. The wall-clock
// date in now's location is taken as-is and shifted in whole days, so DST
// changes cannot move a date.
func DatesFrom(now time.Time) Dates {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(offset int) string {
		return day.AddDate(0, 0, offset).Format(DateLayout)
	}
	return Dates{
		ThreeDaysAgo: at(-3),
		Yesterday:    at(-1),
		Today:        at(0),
		Tomorrow:     at(1),
		InThreeDays:  at(3),
		InFiveDays:   at(5),
	}
}

// Dataset is the content written for both backends.
type Dataset struct {
	// LocalTasks are the lines of todo.txt, in order.
	LocalTasks []string
	// VaultNotes maps a path relative to the vault root to markdown content.
	VaultNotes map[string]string
}

// Build assembles the dataset relative to now.
func Build(now time.Time) Dataset {
	d := DatesFrom(now)
	return Dataset{
		LocalTasks: localTasks(d),
		VaultNotes: map[string]string{
			"Projects.md": projectsNote(d),
			InboxFile:     inboxNote(d),
		},
	}
}

// LocalFile renders LocalTasks as file content.
func (ds Dataset) LocalFile() string {
	return strings.Join(ds.LocalTasks, "\n") + "\n"
}

func localTasks(d Dates) []string {
	return []string{
		fmt.Sprintf("(p1) Review pull requests due:%s #work", d.ThreeDaysAgo),
		fmt.Sprintf("(p2) Pay electricity bill due:%s #home", d.Yesterday),
		fmt.Sprintf("(p1) Prepare standup notes due:%s #work", d.Today),
		fmt.Sprintf("(p2) Book dentist appointment due:%s #health", d.Tomorrow),
		fmt.Sprintf("(p3) Plan weekend hike due:%s #personal", d.InThreeDays),
		fmt.Sprintf("(p3) Renew passport due:%s #admin", d.InFiveDays),
		"Water the plants",
		fmt.Sprintf("x %s Submit expense report #work", d.Yesterday),
	}
}

func projectsNote(d Dates) string {
	return fmt.Sprintf(`# Projects

## Website relaunch
- [ ] Review analytics setup 📅 %s #work
- [ ] Draft landing page copy 📅 %s #work
- [x] Set up staging server ✅ %s
- [ ] Collect feedback from beta users 📅 %s

## Home
- [ ] Fix the garden gate 📅 %s #home
`, d.Yesterday, d.Today, d.ThreeDaysAgo, d.InFiveDays, d.InThreeDays)
}

func inboxNote(d Dates) string {
	return fmt.Sprintf(`# Inbox

- [ ] Call mom 📅 %s #personal
- [ ] Read chapter 4 of Deep Work
- [ ] Order new keyboard 📅 %s #shopping
`, d.Tomorrow, d.InThreeDays)
}
