package core

import "time"

// TimelineWeeks is the fixed lookback window of the impact timeline.
const TimelineWeeks = 26

// BuildTimeline buckets commit events into calendar weeks (Monday start, UTC)
// over the lookback window ending with the last complete week. Weeks without
// commits appear with count 0 so the sequence stays contiguous. An input with
// no events yields nil: there is no timeline to draw.
func BuildTimeline(events []CommitEvent, now time.Time) []ImpactWeek {
	if len(events) == 0 {
		return nil
	}

	end := weekStart(now) // current, incomplete week is excluded
	start := end.AddDate(0, 0, -7*TimelineWeeks)

	buckets := make(map[time.Time]int)
	for _, ev := range events {
		ws := weekStart(ev.Timestamp)
		if ws.Before(start) || !ws.Before(end) {
			continue
		}
		count := ev.Count
		if count == 0 {
			count = 1
		}
		buckets[ws] += count
	}
	if len(buckets) == 0 {
		return nil
	}

	weeks := make([]ImpactWeek, 0, TimelineWeeks)
	for ws := start; ws.Before(end); ws = ws.AddDate(0, 0, 7) {
		weeks = append(weeks, ImpactWeek{WeekStart: ws, Commits: buckets[ws]})
	}
	return weeks
}

// weekStart normalizes t to the Monday 00:00 UTC of its week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
