package attendance

import "sort"

// AbsenceCounts returns, per day, how many students are Absent. Justified absences
// are not counted, and days without any Absent student are left out.
func AbsenceCounts(sheet Sheet) map[DateKey]int {
	counts := make(map[DateKey]int)
	for k, st := range sheet.cells {
		if st == Absent {
			counts[k.date]++
		}
	}
	return counts
}

// AbsenceCountsIn is AbsenceCounts restricted to the days of `rng`.
func AbsenceCountsIn(sheet Sheet, rng DateRange) map[DateKey]int {
	counts := AbsenceCounts(sheet)
	for d := range counts {
		if !rng.Contains(d) {
			delete(counts, d)
		}
	}
	return counts
}

// AbsenceDays lists the days to flag on the calendar, in ascending order.
func AbsenceDays(counts map[DateKey]int) []DateKey {
	days := make([]DateKey, 0, len(counts))
	for d, n := range counts {
		if n > 0 {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
