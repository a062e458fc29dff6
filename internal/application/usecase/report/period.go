// Package report contains the financial reporting use cases.
package report

import "time"

// monthBounds returns the half-open window [first of month, first of next
// month) containing the given instant, in that instant's location.
func monthBounds(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// monthBoundsBefore returns the month window monthsAgo calendar months before
// the month containing ref. Anchoring at the first of the month makes the
// subtraction borrow years correctly across January.
func monthBoundsBefore(ref time.Time, monthsAgo int) (start, end time.Time) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start = first.AddDate(0, -monthsAgo, 0)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// monthLabel formats a month window start as "Jan 2006" for chart axes.
func monthLabel(start time.Time) string {
	return start.Format("Jan 2006")
}
