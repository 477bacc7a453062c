package hrm

import "time"

// Employment statuses.
const (
	EmployeeActive    = "active"
	EmployeeInactive  = "inactive"
	EmployeeOnLeave   = "on_leave"
	EmployeeSuspended = "suspended"
)

// Attendance statuses.
const (
	AttendancePresent    = "Present"
	AttendanceAbsent     = "Absent"
	AttendanceHalfDay    = "Half-Day"
	AttendanceLate       = "Late"
	AttendanceEarlyLeave = "Early-Leave"
	AttendanceOnLeave    = "On-Leave"
	AttendanceHoliday    = "Holiday"
	AttendanceDayOff     = "Day-Off"
)

// Leave statuses.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// Payroll statuses.
const (
	PayrollPending   = "pending"
	PayrollProcessed = "processed"
	PayrollPaid      = "paid"
)

type Employee struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	DepartmentID   string    `json:"departmentId"`
	PositionID     string    `json:"positionId"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	Salary         float64   `json:"salary"`
	JoiningDate    time.Time `json:"joiningDate"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }

type Department struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	ManagerID string  `json:"managerId,omitempty"`
	Budget    float64 `json:"budget"`
	Active    bool    `json:"active"`
}

func (d Department) EntityID() string { return d.ID }

type Position struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Code           string `json:"code"`
	DepartmentID   string `json:"departmentId"`
	EmploymentType string `json:"employmentType"`
	Level          int    `json:"level"`
	MaxHolders     int    `json:"maxHolders"`
	Active         bool   `json:"active"`
}

func (p Position) EntityID() string { return p.ID }

type Attendance struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       time.Time  `json:"date"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Status     string     `json:"status"`
	Shift      string     `json:"shift"`
	WorkHours  float64    `json:"workHours"`
}

func (a Attendance) EntityID() string { return a.ID }

type Leave struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	Type          string    `json:"type"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Duration      int       `json:"duration"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	ReviewerNotes string    `json:"reviewerNotes,omitempty"`
}

func (l Leave) EntityID() string { return l.ID }

type Allowances struct {
	HouseRent float64 `json:"houseRent"`
	Medical   float64 `json:"medical"`
	Transport float64 `json:"transport"`
	Bonus     float64 `json:"bonus"`
}

func (a Allowances) Total() float64 {
	return a.HouseRent + a.Medical + a.Transport + a.Bonus
}

type Deductions struct {
	Tax           float64 `json:"tax"`
	ProvidentFund float64 `json:"providentFund"`
	Insurance     float64 `json:"insurance"`
	Other         float64 `json:"other"`
}

func (d Deductions) Total() float64 {
	return d.Tax + d.ProvidentFund + d.Insurance + d.Other
}

type Payroll struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Period      string     `json:"period"`
	BasicSalary float64    `json:"basicSalary"`
	Allowances  Allowances `json:"allowances"`
	Deductions  Deductions `json:"deductions"`
	NetSalary   float64    `json:"netSalary"`
	Status      string     `json:"status"`
}

func (p Payroll) EntityID() string { return p.ID }

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (e Event) EntityID() string { return e.ID }
