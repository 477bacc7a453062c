package format

import "testing"

func TestCurrency(t *testing.T) {
	if got := Currency(1000); got != "$1000.00" {
		t.Fatalf("unexpected currency: %q", got)
	}
	if got := Currency(333.333); got != "$333.33" {
		t.Fatalf("unexpected currency: %q", got)
	}
}

func TestStatusColors(t *testing.T) {
	if got := LeaveStatusColor("Approved"); got != "green" {
		t.Fatalf("unexpected color: %q", got)
	}
	if got := TaskStatusColor("in-progress"); got != "blue" {
		t.Fatalf("unexpected color: %q", got)
	}
	if got := AttendanceStatusColor("Late"); got != "orange" {
		t.Fatalf("unexpected color: %q", got)
	}
	if got := EmployeeStatusColor("unknown-status"); got != "gray" {
		t.Fatalf("expected fallback color, got %q", got)
	}
}
