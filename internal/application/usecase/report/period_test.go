// Package report contains the financial reporting use cases.
package report

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			ref:       time.Date(2025, time.March, 15, 13, 45, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			ref:       time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantStart: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "first instant of month",
			ref:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := monthBounds(tt.ref)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestMonthBoundsBefore(t *testing.T) {
	// Reference in March: five months back must land in October of the
	// previous year.
	ref := time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)

	start, end := monthBoundsBefore(ref, 5)
	if want := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}

	// Zero months back is the reference month itself.
	start, end = monthBoundsBefore(ref, 0)
	wantStart, wantEnd := monthBounds(ref)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("monthBoundsBefore(ref, 0) = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestMonthBoundsBeforeAnchorsAtFirstOfMonth(t *testing.T) {
	// Jan 31 minus one month must not normalize into January again
	// (AddDate from Jan 31 would give Dec 31 only when anchored at day 1).
	ref := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)

	start, _ := monthBoundsBefore(ref, 1)
	if want := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}
