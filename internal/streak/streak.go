package streak

import (
	"sort"
	"time"
)

// Day is a calendar date in some location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar date of t in loc. A nil loc means UTC.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the day. Only used for calendar arithmetic,
// so daylight-saving shifts in the learner's zone never skew day counts.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	y, m, dd := d.Time().AddDate(0, 0, n).Date()
	return Day{Year: y, Month: m, Day: dd}
}

// Before reports whether d is earlier than o.
func (d Day) Before(o Day) bool {
	return d.Time().Before(o.Time())
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.Time().Format(time.DateOnly)
}

// Summary describes a learner's activity streaks.
type Summary struct {
	Current     int  `json:"current"`
	Longest     int  `json:"longest"`
	ActiveToday bool `json:"activeToday"`
	TotalDays   int  `json:"totalDays"`

	// NextMilestone is the next streak length worth celebrating.
	NextMilestone int `json:"nextMilestone"`
}

var milestones = []int{3, 7, 14, 30, 60, 100}

// NextMilestone returns the first milestone above current. Past the table,
// milestones continue every 100 days.
func NextMilestone(current int) int {
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	return (current/100 + 1) * 100
}

// Days returns the distinct active days in ascending order.
func Days(times []time.Time, loc *time.Location) []Day {
	seen := make(map[Day]bool, len(times))
	days := make([]Day, 0, len(times))
	for _, t := range times {
		d := DayOf(t, loc)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Current counts consecutive active days ending today. A learner who has not
// studied yet today keeps yesterday's streak until the day is over.
func Current(times []time.Time, now time.Time, loc *time.Location) int {
	active := make(map[Day]bool, len(times))
	for _, t := range times {
		active[DayOf(t, loc)] = true
	}

	day := DayOf(now, loc)
	if !active[day] {
		day = day.AddDays(-1)
	}
	n := 0
	for active[day] {
		n++
		day = day.AddDays(-1)
	}
	return n
}

// Longest returns the longest run of consecutive active days.
func Longest(times []time.Time, loc *time.Location) int {
	days := Days(times, loc)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDays(1) == days[i] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Summarize computes all streak figures at once.
func Summarize(times []time.Time, now time.Time, loc *time.Location) Summary {
	days := Days(times, loc)
	today := DayOf(now, loc)
	activeToday := false
	for _, d := range days {
		if d == today {
			activeToday = true
			break
		}
	}
	current := Current(times, now, loc)
	return Summary{
		Current:       current,
		Longest:       Longest(times, loc),
		ActiveToday:   activeToday,
		TotalDays:     len(days),
		NextMilestone: NextMilestone(current),
	}
}
