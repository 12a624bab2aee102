package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h int, loc *time.Location) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, loc)
}

func TestCurrent(t *testing.T) {
	now := at(2026, 3, 10, 18, time.UTC)

	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{"no activity", nil, 0},
		{"today only", []time.Time{at(2026, 3, 10, 9, time.UTC)}, 1},
		{"yesterday keeps streak alive", []time.Time{
			at(2026, 3, 8, 9, time.UTC),
			at(2026, 3, 9, 9, time.UTC),
		}, 2},
		{"gap breaks streak", []time.Time{
			at(2026, 3, 7, 9, time.UTC),
			at(2026, 3, 10, 9, time.UTC),
		}, 1},
		{"two days ago is broken", []time.Time{at(2026, 3, 8, 9, time.UTC)}, 0},
		{"several words per day count once", []time.Time{
			at(2026, 3, 9, 8, time.UTC),
			at(2026, 3, 9, 20, time.UTC),
			at(2026, 3, 10, 1, time.UTC),
			at(2026, 3, 10, 2, time.UTC),
		}, 2},
		{"across month boundary", []time.Time{
			at(2026, 2, 27, 9, time.UTC),
			at(2026, 2, 28, 9, time.UTC),
			at(2026, 3, 1, 9, time.UTC),
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Current(tt.times, now, time.UTC))
		})
	}
}

func TestCurrent_MonthBoundary(t *testing.T) {
	now := at(2026, 3, 1, 12, time.UTC)
	times := []time.Time{
		at(2026, 2, 27, 9, time.UTC),
		at(2026, 2, 28, 9, time.UTC),
		at(2026, 3, 1, 9, time.UTC),
	}
	assert.Equal(t, 3, Current(times, now, time.UTC))
}

func TestCurrent_UsesLearnerZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on the 9th is already the 10th in Tokyo.
	times := []time.Time{
		at(2026, 3, 9, 1, time.UTC),
		at(2026, 3, 9, 20, time.UTC),
	}
	now := at(2026, 3, 10, 3, time.UTC)

	assert.Equal(t, 1, Current(times, now, time.UTC))
	assert.Equal(t, 2, Current(times, now, tokyo))
}

func TestCurrent_DaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks spring forward on 2026-03-08 in New York.
	times := []time.Time{
		at(2026, 3, 7, 23, ny),
		at(2026, 3, 8, 23, ny),
		at(2026, 3, 9, 0, ny),
	}
	now := at(2026, 3, 9, 12, ny)
	assert.Equal(t, 3, Current(times, now, ny))
	assert.Equal(t, 3, Longest(times, ny))
}

func TestLongest(t *testing.T) {
	times := []time.Time{
		at(2026, 1, 1, 9, time.UTC),
		at(2026, 1, 2, 9, time.UTC),
		at(2026, 1, 5, 9, time.UTC),
		at(2026, 1, 6, 9, time.UTC),
		at(2026, 1, 7, 9, time.UTC),
		at(2026, 1, 7, 22, time.UTC),
		at(2026, 1, 9, 9, time.UTC),
	}
	assert.Equal(t, 3, Longest(times, time.UTC))
	assert.Equal(t, 0, Longest(nil, time.UTC))
}

func TestSummarize(t *testing.T) {
	now := at(2026, 1, 7, 23, time.UTC)
	times := []time.Time{
		at(2026, 1, 7, 9, time.UTC),
		at(2026, 1, 1, 9, time.UTC),
		at(2026, 1, 6, 9, time.UTC),
		at(2026, 1, 2, 9, time.UTC),
		at(2026, 1, 3, 9, time.UTC),
	}
	got := Summarize(times, now, time.UTC)
	assert.Equal(t, Summary{Current: 2, Longest: 3, ActiveToday: true, TotalDays: 5, NextMilestone: 3}, got)
}

func TestDays(t *testing.T) {
	days := Days([]time.Time{
		at(2026, 5, 2, 9, time.UTC),
		at(2026, 5, 1, 9, time.UTC),
		at(2026, 5, 2, 10, time.UTC),
	}, nil)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-05-01", days[0].String())
	assert.Equal(t, "2026-05-02", days[1].String())
}

func TestDayAddDays(t *testing.T) {
	d := Day{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, Day{Year: 2024, Month: time.February, Day: 29}, d.AddDays(1))
	assert.Equal(t, Day{Year: 2024, Month: time.March, Day: 1}, d.AddDays(2))
	assert.Equal(t, Day{Year: 2023, Month: time.December, Day: 31}, Day{Year: 2024, Month: 1, Day: 1}.AddDays(-1))
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 7},
		{13, 14},
		{59, 60},
		{99, 100},
		{100, 200},
		{250, 300},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextMilestone(tt.current), "current %d", tt.current)
	}
}
