package leave

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// MonthBounds returns the closed range covering a calendar month, from the
// first day at 00:00:00 to the last day at 23:59:59.999999999. The month is
// zero-based (0 = January).
func MonthBounds(month, year int) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonthIndex(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11",
		})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// ApprovedDaysInMonth counts working days of approved leave falling inside
// the given zero-based month. Each request's interval is clipped to the
// month bounds and walked day by day, skipping Saturdays and Sundays.
// Requests that do not overlap the month contribute nothing.
func ApprovedDaysInMonth(requests []leave.LeaveRequest, month, year int) (int, []leave.IntervalDays, error) {
	start, end, err := MonthBounds(month, year)
	if err != nil {
		return 0, nil, err
	}

	total := 0
	breakdown := make([]leave.IntervalDays, 0, len(requests))
	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}

		from := req.FromDate
		if from.Before(start) {
			from = start
		}
		to := req.ToDate
		if to.After(end) {
			to = end
		}
		if to.Before(from) {
			continue
		}

		days := countWorkingDays(from, to)
		total += days
		breakdown = append(breakdown, leave.IntervalDays{
			RequestID: req.ID,
			Type:      req.Type,
			Status:    req.Status,
			From:      from,
			To:        to,
			Days:      days,
		})
	}

	return total, breakdown, nil
}

// countWorkingDays counts non-weekend calendar days in the inclusive range
// [from, to].
func countWorkingDays(from, to time.Time) int {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	days := 0
	for !day.After(last) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}
