package demo

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestDatesFrom(t *testing.T) {
	tests := []struct {
		now  time.Time
		want Dates
	}{
		{
			// Monday
			now:  time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
			want: Dates{"2024-06-07", "2024-06-09", "2024-06-10", "2024-06-11", "2024-06-13", "2024-06-15"},
		},
		{
			// Saturday, late evening in a non-UTC zone
			now:  time.Date(2024, 6, 15, 23, 59, 0, 0, time.FixedZone("UTC+9", 9*3600)),
			want: Dates{"2024-06-12", "2024-06-14", "2024-06-15", "2024-06-16", "2024-06-18", "2024-06-20"},
		},
		{
			// leap-year month boundary
			now:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: Dates{"2024-02-27", "2024-02-29", "2024-03-01", "2024-03-02", "2024-03-04", "2024-03-06"},
		},
		{
			// year boundary
			now:  time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC),
			want: Dates{"2024-12-27", "2024-12-29", "2024-12-30", "2024-12-31", "2025-01-02", "2025-01-04"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.now.Format(time.RFC3339), func(t *testing.T) {
			if got := DatesFrom(tt.now); got != tt.want {
				t.Errorf("DatesFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

var isoDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

func TestBuild_OnlyRelativeDates(t *testing.T) {
	for _, now := range []time.Time{
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC),
	} {
		allowed := map[string]bool{}
		for _, off := range Offsets {
			allowed[now.AddDate(0, 0, off).Format(DateLayout)] = true
		}

		ds := Build(now)
		var all []string
		all = append(all, ds.LocalTasks...)
		for _, note := range ds.VaultNotes {
			all = append(all, note)
		}
		for _, date := range isoDate.FindAllString(strings.Join(all, "\n"), -1) {
			if !allowed[date] {
				t.Errorf("now=%s: date %s is not one of the relative offsets", now.Format(DateLayout), date)
			}
		}
	}
}

func TestBuild_LocalTasks(t *testing.T) {
	ds := Build(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	var bare, completed, prioritized int
	for _, line := range ds.LocalTasks {
		switch {
		case strings.HasPrefix(line, "x 2024-06-09 "):
			completed++
		case strings.HasPrefix(line, "(p"):
			prioritized++
			if !strings.Contains(line, "due:") || !strings.Contains(line, "#") {
				t.Errorf("prioritized task missing due date or tag: %q", line)
			}
		case !strings.ContainsAny(line, "#:("):
			bare++
		}
	}
	if bare < 1 {
		t.Error("expected at least one task without metadata")
	}
	if completed != 1 {
		t.Errorf("completed tasks = %d, want 1", completed)
	}
	if prioritized != len(Offsets) {
		t.Errorf("prioritized tasks = %d, want one per offset", prioritized)
	}
	if !strings.HasSuffix(ds.LocalFile(), "\n") {
		t.Error("local file should end with a newline")
	}
}

func TestBuild_VaultNotes(t *testing.T) {
	ds := Build(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	if len(ds.VaultNotes) != 2 {
		t.Fatalf("vault notes = %d, want 2", len(ds.VaultNotes))
	}

	var undated, done int
	for name, note := range ds.VaultNotes {
		for _, line := range strings.Split(note, "\n") {
			switch {
			case strings.HasPrefix(line, "- [x] "):
				done++
				if !strings.Contains(line, "✅ 2024-06-07") {
					t.Errorf("%s: completed item without completion date: %q", name, line)
				}
			case strings.HasPrefix(line, "- [ ] "):
				if !strings.Contains(line, "📅 ") {
					undated++
				}
			}
		}
	}
	if undated < 1 {
		t.Error("expected at least one open item without a date")
	}
	if done != 1 {
		t.Errorf("completed vault items = %d, want 1", done)
	}
}
