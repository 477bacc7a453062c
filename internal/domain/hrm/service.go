package hrm

import (
	"context"
	"fmt"
	"time"

	"erpdesk/internal/transport/rest"
)

// Service wraps the HR endpoints, one function per backend operation.
// Every function issues exactly one HTTP call and returns the unwrapped
// payload.
type Service struct {
	client *rest.Client
}

func NewService(client *rest.Client) *Service {
	return &Service{client: client}
}

// nextValue carries a server-generated sequential code. The value is
// displayed read-only and never computed or mutated locally.
type nextValue struct {
	Code string `json:"code"`
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := s.client.Get(ctx, "/hrm/employees", &out)
	return out, err
}

func (s *Service) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var out Employee
	err := s.client.Get(ctx, "/hrm/employees/"+id, &out)
	return out, err
}

func (s *Service) NextEmployeeNumber(ctx context.Context) (string, error) {
	var out nextValue
	err := s.client.Get(ctx, "/hrm/employees/next-number", &out)
	return out.Code, err
}

func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	var out Employee
	err := s.client.Post(ctx, "/hrm/employees", emp, &out)
	return out, err
}

func (s *Service) UpdateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	var out Employee
	err := s.client.Put(ctx, "/hrm/employees/"+emp.ID, emp, &out)
	return out, err
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/hrm/employees/"+id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	err := s.client.Get(ctx, "/hrm/departments", &out)
	return out, err
}

func (s *Service) NextDepartmentCode(ctx context.Context) (string, error) {
	var out nextValue
	err := s.client.Get(ctx, "/hrm/departments/next-code", &out)
	return out.Code, err
}

func (s *Service) CreateDepartment(ctx context.Context, dep Department) (Department, error) {
	var out Department
	err := s.client.Post(ctx, "/hrm/departments", dep, &out)
	return out, err
}

func (s *Service) UpdateDepartment(ctx context.Context, dep Department) (Department, error) {
	var out Department
	err := s.client.Put(ctx, "/hrm/departments/"+dep.ID, dep, &out)
	return out, err
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/hrm/departments/"+id)
}

func (s *Service) ListPositions(ctx context.Context) ([]Position, error) {
	var out []Position
	err := s.client.Get(ctx, "/hrm/positions", &out)
	return out, err
}

func (s *Service) NextPositionCode(ctx context.Context) (string, error) {
	var out nextValue
	err := s.client.Get(ctx, "/hrm/positions/next-code", &out)
	return out.Code, err
}

func (s *Service) CreatePosition(ctx context.Context, pos Position) (Position, error) {
	var out Position
	err := s.client.Post(ctx, "/hrm/positions", pos, &out)
	return out, err
}

func (s *Service) UpdatePosition(ctx context.Context, pos Position) (Position, error) {
	var out Position
	err := s.client.Put(ctx, "/hrm/positions/"+pos.ID, pos, &out)
	return out, err
}

func (s *Service) DeletePosition(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/hrm/positions/"+id)
}

func (s *Service) ListAttendance(ctx context.Context, from, to time.Time) ([]Attendance, error) {
	var out []Attendance
	path := fmt.Sprintf("/hrm/attendance?from=%s&to=%s",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	err := s.client.Get(ctx, path, &out)
	return out, err
}

func (s *Service) CheckIn(ctx context.Context, employeeID string) (Attendance, error) {
	var out Attendance
	body := map[string]string{"employeeId": employeeID}
	err := s.client.Post(ctx, "/hrm/attendance/check-in", body, &out)
	return out, err
}

func (s *Service) CheckOut(ctx context.Context, recordID string) (Attendance, error) {
	var out Attendance
	err := s.client.Post(ctx, "/hrm/attendance/"+recordID+"/check-out", nil, &out)
	return out, err
}

func (s *Service) UpdateAttendance(ctx context.Context, record Attendance) (Attendance, error) {
	var out Attendance
	err := s.client.Put(ctx, "/hrm/attendance/"+record.ID, record, &out)
	return out, err
}

func (s *Service) ListLeaves(ctx context.Context) ([]Leave, error) {
	var out []Leave
	err := s.client.Get(ctx, "/hrm/leaves", &out)
	return out, err
}

func (s *Service) CreateLeave(ctx context.Context, leave Leave) (Leave, error) {
	var out Leave
	err := s.client.Post(ctx, "/hrm/leaves", leave, &out)
	return out, err
}

func (s *Service) UpdateLeave(ctx context.Context, leave Leave) (Leave, error) {
	var out Leave
	err := s.client.Put(ctx, "/hrm/leaves/"+leave.ID, leave, &out)
	return out, err
}

func (s *Service) DeleteLeave(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/hrm/leaves/"+id)
}

type reviewRequest struct {
	ReviewerNotes string `json:"reviewerNotes"`
}

func (s *Service) ApproveLeave(ctx context.Context, id, notes string) (Leave, error) {
	var out Leave
	err := s.client.Post(ctx, "/hrm/leaves/"+id+"/approve", reviewRequest{ReviewerNotes: notes}, &out)
	return out, err
}

func (s *Service) RejectLeave(ctx context.Context, id, notes string) (Leave, error) {
	var out Leave
	err := s.client.Post(ctx, "/hrm/leaves/"+id+"/reject", reviewRequest{ReviewerNotes: notes}, &out)
	return out, err
}

func (s *Service) ListPayroll(ctx context.Context) ([]Payroll, error) {
	var out []Payroll
	err := s.client.Get(ctx, "/hrm/payroll", &out)
	return out, err
}

func (s *Service) GetPayroll(ctx context.Context, id string) (Payroll, error) {
	var out Payroll
	err := s.client.Get(ctx, "/hrm/payroll/"+id, &out)
	return out, err
}

// GeneratePayroll asks the backend to build the period's records; the
// computation is server-owned, the result is merged like any fetch.
func (s *Service) GeneratePayroll(ctx context.Context, period string) ([]Payroll, error) {
	var out []Payroll
	body := map[string]string{"period": period}
	err := s.client.Post(ctx, "/hrm/payroll/generate", body, &out)
	return out, err
}

func (s *Service) MarkPayrollPaid(ctx context.Context, id string) (Payroll, error) {
	var out Payroll
	err := s.client.Post(ctx, "/hrm/payroll/"+id+"/pay", nil, &out)
	return out, err
}

// DownloadPayslip saves the payslip PDF blob to dest.
func (s *Service) DownloadPayslip(ctx context.Context, id, dest string) error {
	return s.client.Download(ctx, "/hrm/payroll/"+id+"/payslip", dest)
}

func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	err := s.client.Get(ctx, "/hrm/events", &out)
	return out, err
}

func (s *Service) CreateEvent(ctx context.Context, event Event) (Event, error) {
	var out Event
	err := s.client.Post(ctx, "/hrm/events", event, &out)
	return out, err
}

func (s *Service) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	var out Event
	err := s.client.Put(ctx, "/hrm/events/"+event.ID, event, &out)
	return out, err
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/hrm/events/"+id)
}
