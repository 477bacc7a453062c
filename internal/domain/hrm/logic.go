package hrm

import (
	"errors"
	"math"
	"time"
)

const (
	workdayStartHour   = 9
	workdayStartMinute = 0
	fullDayHours       = 8.0
	halfDayHours       = 4.0
)

var ErrInvalidDateRange = errors.New("end date before start date")

// LeaveDuration returns the inclusive day count between start and end.
func LeaveDuration(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1, nil
}

// WorkHours returns the hours between check-in and check-out, rounded to
// two decimals. A check-out before check-in counts as zero.
func WorkHours(checkIn, checkOut time.Time) float64 {
	if checkOut.Before(checkIn) {
		return 0
	}
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// DeriveAttendanceStatus classifies a day's record. Arrival after the
// 09:00 cutoff is Late no matter how long the employee then worked.
func DeriveAttendanceStatus(checkIn, checkOut *time.Time) string {
	if checkIn == nil {
		return AttendanceAbsent
	}
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		workdayStartHour, workdayStartMinute, 0, 0, checkIn.Location())
	if checkIn.After(cutoff) {
		return AttendanceLate
	}
	if checkOut != nil {
		worked := WorkHours(*checkIn, *checkOut)
		if worked < halfDayHours {
			return AttendanceHalfDay
		}
		if worked < fullDayHours {
			return AttendanceEarlyLeave
		}
	}
	return AttendancePresent
}

// ComputeNet returns gross, total deductions, and net salary for a
// payroll record.
func ComputeNet(basic float64, allowances Allowances, deductions Deductions) (gross, deducted, net float64) {
	gross = basic + allowances.Total()
	deducted = deductions.Total()
	net = gross - deducted
	return gross, deducted, net
}

// FilterByDateRange keeps the attendance records whose date falls inside
// [from, to], both endpoints included.
func FilterByDateRange(records []Attendance, from, to time.Time) []Attendance {
	var out []Attendance
	for _, record := range records {
		if record.Date.Before(from) || record.Date.After(to) {
			continue
		}
		out = append(out, record)
	}
	return out
}
