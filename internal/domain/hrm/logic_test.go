package hrm

import (
	"testing"
	"time"
)

func TestLeaveDurationInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2026, 1, 10), date(2026, 1, 10), 1},
		{"two days", date(2026, 1, 10), date(2026, 1, 11), 2},
		{"across month", date(2026, 1, 30), date(2026, 2, 2), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LeaveDuration(tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d days, got %d", tc.want, got)
			}
		})
	}
}

func TestLeaveDurationInvalidRange(t *testing.T) {
	_, err := LeaveDuration(date(2026, 2, 10), date(2026, 2, 9))
	if err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestLateArrivalOverridesWorkedHours(t *testing.T) {
	// 09:05 to 17:05 is a full eight hours, but the arrival is past the
	// 09:00 cutoff.
	in := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 17, 5, 0, 0, time.UTC)

	status := DeriveAttendanceStatus(&in, &out)
	if status != AttendanceLate {
		t.Fatalf("expected %s, got %s", AttendanceLate, status)
	}
}

func TestAttendanceStatusDerivation(t *testing.T) {
	at := func(h, m int) *time.Time {
		ts := time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
		return &ts
	}

	cases := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     string
	}{
		{"no check-in", nil, nil, AttendanceAbsent},
		{"on time full day", at(8, 55), at(17, 0), AttendancePresent},
		{"on time still working", at(8, 55), nil, AttendancePresent},
		{"short day", at(8, 0), at(11, 0), AttendanceHalfDay},
		{"left early", at(8, 0), at(14, 30), AttendanceEarlyLeave},
		{"exactly on the cutoff", at(9, 0), at(17, 0), AttendancePresent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveAttendanceStatus(tc.checkIn, tc.checkOut)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWorkHours(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)

	if got := WorkHours(in, out); got != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", got)
	}
	if got := WorkHours(out, in); got != 0 {
		t.Fatalf("expected 0 for inverted range, got %v", got)
	}
}

func TestComputeNet(t *testing.T) {
	allowances := Allowances{HouseRent: 500, Medical: 200, Transport: 100, Bonus: 0}
	deductions := Deductions{Tax: 300, ProvidentFund: 150, Insurance: 50}

	gross, deducted, net := ComputeNet(3000, allowances, deductions)
	if gross != 3800 {
		t.Fatalf("expected gross 3800, got %v", gross)
	}
	if deducted != 500 {
		t.Fatalf("expected deductions 500, got %v", deducted)
	}
	if net != 3300 {
		t.Fatalf("expected net 3300, got %v", net)
	}
}

func TestFilterByDateRange(t *testing.T) {
	records := []Attendance{
		{ID: "1", Date: date(2026, 1, 5)},
		{ID: "2", Date: date(2026, 1, 10)},
		{ID: "3", Date: date(2026, 1, 15)},
	}

	got := FilterByDateRange(records, date(2026, 1, 6), date(2026, 1, 15))
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
