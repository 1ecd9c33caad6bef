package services

import (
	"math"
	"sort"
	"time"
)

// HabitMonthStats is the analytics summary for one habit in one calendar
// month, as served by the stats endpoint.
type HabitMonthStats struct {
	CompletedDays int `json:"completed_days"`
	ElapsedDays   int `json:"elapsed_days"`
	Percentage    int `json:"percentage"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

func completionSet(completions []string) map[string]bool {
	set := make(map[string]bool, len(completions))
	for _, key := range completions {
		set[key] = true
	}
	return set
}

func roundPercent(part int, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// WeeklyCompletionPercent scores a habit over its fixed 7-day window starting
// at the creation day (inclusive), independent of the current month.
func WeeklyCompletionPercent(completions []string, createdOn time.Time) int {
	set := completionSet(completions)
	matched := 0
	for offset := 0; offset < 7; offset++ {
		if set[DateKey(AddDays(createdOn, offset))] {
			matched++
		}
	}
	return roundPercent(matched, 7)
}

// CompletionsInMonth counts distinct completion days falling inside the
// calendar month identified by monthKey (YYYY-MM).
func CompletionsInMonth(completions []string, monthKey string) int {
	count := 0
	for key := range completionSet(completions) {
		if len(key) >= len(monthKey) && key[:len(monthKey)] == monthKey {
			count++
		}
	}
	return count
}

// ElapsedDaysInMonth counts the days of the given month that are on or before
// today. Months entirely in the future contribute zero elapsed days.
func ElapsedDaysInMonth(month time.Time, today time.Time) int {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	todayKey := DateKey(today)
	if DateKey(monthStart) > todayKey {
		return 0
	}
	total := DaysInMonth(monthStart)
	if MonthKey(monthStart) == MonthKey(today) {
		return today.Day()
	}
	return total
}

// CurrentStreak counts consecutive completed days walking backward from
// today. The streak is live only when today or yesterday is completed. A
// today that has simply not been marked yet does not break a streak running
// through yesterday; any other gap stops the walk.
func CurrentStreak(completions []string, today time.Time) int {
	set := completionSet(completions)
	todayKey := DateKey(today)
	yesterdayKey := DateKey(AddDays(today, -1))
	if !set[todayKey] && !set[yesterdayKey] {
		return 0
	}

	streak := 0
	for offset := 0; offset <= len(set)+1; offset++ {
		key := DateKey(AddDays(today, -offset))
		if set[key] {
			streak++
			continue
		}
		if offset == 0 && set[yesterdayKey] {
			continue
		}
		break
	}
	return streak
}

// LongestStreak finds the longest run of calendar-consecutive days anywhere
// in the completion set. Duplicate keys are ignored.
func LongestStreak(completions []string) int {
	set := completionSet(completions)
	if len(set) == 0 {
		return 0
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	longest := 1
	run := 1
	previous, err := ParseDateKey(keys[0])
	if err != nil {
		return 0
	}
	for _, key := range keys[1:] {
		current, err := ParseDateKey(key)
		if err != nil {
			continue
		}
		if SameDay(AddDays(previous, 1), current) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		previous = current
	}
	return longest
}

// BuildHabitMonthStats assembles the analytics view for one habit and month.
// monthKey selects the navigated month; today bounds the elapsed-day
// denominator and anchors the current streak.
func BuildHabitMonthStats(completions []string, monthKey string, today time.Time) (HabitMonthStats, error) {
	month, err := ParseMonthKey(monthKey)
	if err != nil {
		return HabitMonthStats{}, err
	}

	completed := CompletionsInMonth(completions, monthKey)
	elapsed := ElapsedDaysInMonth(month, today)
	return HabitMonthStats{
		CompletedDays: completed,
		ElapsedDays:   elapsed,
		Percentage:    roundPercent(completed, elapsed),
		CurrentStreak: CurrentStreak(completions, today),
		LongestStreak: LongestStreak(completions),
	}, nil
}
