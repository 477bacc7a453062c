// Package format holds the derived display helpers: currency strings and
// the status-to-color tables used by tables and the Kanban board.
package format

import (
	"fmt"
	"time"
)

// Currency renders an amount the way the finance tables show it.
func Currency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Date renders a calendar date the way the tables show it.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateTime renders a timestamp with minute precision.
func DateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

var employeeStatusColors = map[string]string{
	"active":    "green",
	"inactive":  "gray",
	"on_leave":  "amber",
	"suspended": "red",
}

var leaveStatusColors = map[string]string{
	"Pending":  "amber",
	"Approved": "green",
	"Rejected": "red",
}

var attendanceStatusColors = map[string]string{
	"Present":     "green",
	"Absent":      "red",
	"Half-Day":    "amber",
	"Late":        "orange",
	"Early-Leave": "amber",
	"On-Leave":    "blue",
	"Holiday":     "purple",
	"Day-Off":     "gray",
}

var taskStatusColors = map[string]string{
	"todo":        "gray",
	"in-progress": "blue",
	"on-hold":     "amber",
	"done":        "green",
}

var requestStatusColors = map[string]string{
	"pending":   "amber",
	"processed": "blue",
	"approved":  "green",
	"rejected":  "red",
	"paid":      "green",
}

func colorOr(table map[string]string, status string) string {
	if color, ok := table[status]; ok {
		return color
	}
	return "gray"
}

func EmployeeStatusColor(status string) string   { return colorOr(employeeStatusColors, status) }
func LeaveStatusColor(status string) string      { return colorOr(leaveStatusColors, status) }
func AttendanceStatusColor(status string) string { return colorOr(attendanceStatusColors, status) }
func TaskStatusColor(status string) string       { return colorOr(taskStatusColors, status) }
func RequestStatusColor(status string) string    { return colorOr(requestStatusColors, status) }
