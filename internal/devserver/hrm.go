package devserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erpdesk/internal/domain/hrm"
	"erpdesk/internal/platform/payslip"
)

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Employee(nil), s.state.employees...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	emp, idx := findByID(s.state.employees, chi.URLParam(r, "id"))
	s.state.mu.Unlock()
	if idx < 0 {
		fail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	success(w, r, emp)
}

// nextEmployeeNumber peeks at the upcoming code without consuming it;
// the create handler consumes the sequence.
func (s *Server) nextEmployeeNumber(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	code := s.state.peekEmployeeNumber()
	s.state.mu.Unlock()
	success(w, r, map[string]string{"code": code})
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var emp hrm.Employee
	if err := decode(r, &emp); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid employee payload")
		return
	}
	if emp.Email == "" || emp.FirstName == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "first name and email are required")
		return
	}
	s.state.mu.Lock()
	emp.ID = uuid.NewString()
	emp.EmployeeNumber = s.state.takeEmployeeNumber()
	if emp.Status == "" {
		emp.Status = hrm.EmployeeActive
	}
	s.state.employees = append(s.state.employees, emp)
	s.state.mu.Unlock()
	created(w, r, emp)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var emp hrm.Employee
	if err := decode(r, &emp); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid employee payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	existing, idx := findByID(s.state.employees, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	emp.ID = id
	emp.EmployeeNumber = existing.EmployeeNumber
	s.state.employees[idx] = emp
	s.state.mu.Unlock()
	success(w, r, emp)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.employees, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	s.state.employees = removeAt(s.state.employees, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) listDepartments(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Department(nil), s.state.departments...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) nextDepartmentCode(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	code := s.state.peekDepartmentCode()
	s.state.mu.Unlock()
	success(w, r, map[string]string{"code": code})
}

func (s *Server) createDepartment(w http.ResponseWriter, r *http.Request) {
	var dep hrm.Department
	if err := decode(r, &dep); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid department payload")
		return
	}
	if dep.Name == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "name is required")
		return
	}
	if dep.Budget < 0 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "budget must not be negative")
		return
	}
	s.state.mu.Lock()
	dep.ID = uuid.NewString()
	dep.Code = s.state.takeDepartmentCode()
	dep.Active = true
	s.state.departments = append(s.state.departments, dep)
	s.state.mu.Unlock()
	created(w, r, dep)
}

func (s *Server) updateDepartment(w http.ResponseWriter, r *http.Request) {
	var dep hrm.Department
	if err := decode(r, &dep); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid department payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	existing, idx := findByID(s.state.departments, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "department not found")
		return
	}
	dep.ID = id
	dep.Code = existing.Code
	s.state.departments[idx] = dep
	s.state.mu.Unlock()
	success(w, r, dep)
}

func (s *Server) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.departments, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "department not found")
		return
	}
	s.state.departments = removeAt(s.state.departments, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) listPositions(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Position(nil), s.state.positions...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) nextPositionCode(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	code := s.state.peekPositionCode()
	s.state.mu.Unlock()
	success(w, r, map[string]string{"code": code})
}

func (s *Server) createPosition(w http.ResponseWriter, r *http.Request) {
	var pos hrm.Position
	if err := decode(r, &pos); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid position payload")
		return
	}
	if pos.Level < 1 || pos.MaxHolders < 1 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "level and max holders must be at least 1")
		return
	}
	s.state.mu.Lock()
	pos.ID = uuid.NewString()
	pos.Code = s.state.takePositionCode()
	pos.Active = true
	s.state.positions = append(s.state.positions, pos)
	s.state.mu.Unlock()
	created(w, r, pos)
}

func (s *Server) updatePosition(w http.ResponseWriter, r *http.Request) {
	var pos hrm.Position
	if err := decode(r, &pos); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid position payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	existing, idx := findByID(s.state.positions, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "position not found")
		return
	}
	pos.ID = id
	pos.Code = existing.Code
	s.state.positions[idx] = pos
	s.state.mu.Unlock()
	success(w, r, pos)
}

func (s *Server) deletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.positions, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "position not found")
		return
	}
	s.state.positions = removeAt(s.state.positions, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) listAttendance(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Attendance(nil), s.state.attendance...)
	s.state.mu.Unlock()

	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam != "" && toParam != "" {
		from, errFrom := time.Parse("2006-01-02", fromParam)
		to, errTo := time.Parse("2006-01-02", toParam)
		if errFrom != nil || errTo != nil {
			fail(w, r, http.StatusBadRequest, "bad_request", "invalid date range")
			return
		}
		out = hrm.FilterByDateRange(out, from, to.Add(24*time.Hour-time.Nanosecond))
	}
	success(w, r, out)
}

func (s *Server) checkIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := decode(r, &req); err != nil || req.EmployeeID == "" {
		fail(w, r, http.StatusBadRequest, "bad_request", "employeeId is required")
		return
	}

	now := time.Now().UTC()
	record := hrm.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    &now,
		Shift:      "day",
	}
	record.Status = hrm.DeriveAttendanceStatus(record.CheckIn, nil)

	s.state.mu.Lock()
	s.state.attendance = append(s.state.attendance, record)
	s.state.mu.Unlock()
	created(w, r, record)
}

func (s *Server) checkOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := time.Now().UTC()

	s.state.mu.Lock()
	record, idx := findByID(s.state.attendance, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "attendance record not found")
		return
	}
	record.CheckOut = &now
	if record.CheckIn != nil {
		record.WorkHours = hrm.WorkHours(*record.CheckIn, now)
	}
	record.Status = hrm.DeriveAttendanceStatus(record.CheckIn, record.CheckOut)
	s.state.attendance[idx] = record
	s.state.mu.Unlock()
	success(w, r, record)
}

// updateAttendance recomputes hours and status from the submitted
// timestamps, so an edited record always carries derived values that
// match its check-in and check-out.
func (s *Server) updateAttendance(w http.ResponseWriter, r *http.Request) {
	var record hrm.Attendance
	if err := decode(r, &record); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid attendance payload")
		return
	}
	id := chi.URLParam(r, "id")

	s.state.mu.Lock()
	_, idx := findByID(s.state.attendance, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "attendance record not found")
		return
	}
	record.ID = id
	if record.CheckIn != nil && record.CheckOut != nil {
		record.WorkHours = hrm.WorkHours(*record.CheckIn, *record.CheckOut)
	}
	record.Status = hrm.DeriveAttendanceStatus(record.CheckIn, record.CheckOut)
	s.state.attendance[idx] = record
	s.state.mu.Unlock()
	success(w, r, record)
}

func (s *Server) listLeaves(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Leave(nil), s.state.leaves...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createLeave(w http.ResponseWriter, r *http.Request) {
	var leave hrm.Leave
	if err := decode(r, &leave); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid leave payload")
		return
	}
	duration, err := hrm.LeaveDuration(leave.StartDate, leave.EndDate)
	if err != nil {
		fail(w, r, http.StatusBadRequest, "validation_failed", "end date must not be before start date")
		return
	}
	s.state.mu.Lock()
	leave.ID = uuid.NewString()
	leave.Duration = duration
	leave.Status = hrm.LeavePending
	leave.ReviewerNotes = ""
	s.state.leaves = append(s.state.leaves, leave)
	s.state.mu.Unlock()
	created(w, r, leave)
}

func (s *Server) updateLeave(w http.ResponseWriter, r *http.Request) {
	var leave hrm.Leave
	if err := decode(r, &leave); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid leave payload")
		return
	}
	duration, err := hrm.LeaveDuration(leave.StartDate, leave.EndDate)
	if err != nil {
		fail(w, r, http.StatusBadRequest, "validation_failed", "end date must not be before start date")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.leaves, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
		return
	}
	leave.ID = id
	leave.Duration = duration
	s.state.leaves[idx] = leave
	s.state.mu.Unlock()
	success(w, r, leave)
}

func (s *Server) deleteLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.leaves, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
		return
	}
	s.state.leaves = removeAt(s.state.leaves, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) approveLeave(w http.ResponseWriter, r *http.Request) {
	s.reviewLeave(w, r, hrm.LeaveApproved)
}

func (s *Server) rejectLeave(w http.ResponseWriter, r *http.Request) {
	s.reviewLeave(w, r, hrm.LeaveRejected)
}

func (s *Server) reviewLeave(w http.ResponseWriter, r *http.Request, status string) {
	var req struct {
		ReviewerNotes string `json:"reviewerNotes"`
	}
	if err := decode(r, &req); err != nil || req.ReviewerNotes == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "reviewer notes are required")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	leave, idx := findByID(s.state.leaves, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
		return
	}
	leave.Status = status
	leave.ReviewerNotes = req.ReviewerNotes
	s.state.leaves[idx] = leave
	s.state.mu.Unlock()
	success(w, r, leave)
}

func (s *Server) listPayroll(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Payroll(nil), s.state.payroll...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) getPayroll(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	record, idx := findByID(s.state.payroll, chi.URLParam(r, "id"))
	s.state.mu.Unlock()
	if idx < 0 {
		fail(w, r, http.StatusNotFound, "not_found", "payroll record not found")
		return
	}
	success(w, r, record)
}

func (s *Server) generatePayroll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Period string `json:"period"`
	}
	if err := decode(r, &req); err != nil || req.Period == "" {
		fail(w, r, http.StatusBadRequest, "bad_request", "period is required")
		return
	}

	s.state.mu.Lock()
	existing := make(map[string]bool)
	for _, record := range s.state.payroll {
		if record.Period == req.Period {
			existing[record.EmployeeID] = true
		}
	}
	for _, emp := range s.state.employees {
		if existing[emp.ID] {
			continue
		}
		record := hrm.Payroll{
			ID:          uuid.NewString(),
			EmployeeID:  emp.ID,
			Period:      req.Period,
			BasicSalary: emp.Salary,
			Allowances: hrm.Allowances{
				HouseRent: emp.Salary * 0.25,
				Medical:   500,
				Transport: 300,
			},
			Deductions: hrm.Deductions{
				Tax:           emp.Salary * 0.10,
				ProvidentFund: emp.Salary * 0.05,
				Insurance:     200,
			},
			Status: hrm.PayrollPending,
		}
		_, _, record.NetSalary = hrm.ComputeNet(record.BasicSalary, record.Allowances, record.Deductions)
		s.state.payroll = append(s.state.payroll, record)
	}
	out := append([]hrm.Payroll(nil), s.state.payroll...)
	s.state.mu.Unlock()

	success(w, r, out)
}

func (s *Server) markPayrollPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	record, idx := findByID(s.state.payroll, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "payroll record not found")
		return
	}
	record.Status = hrm.PayrollPaid
	s.state.payroll[idx] = record
	s.state.mu.Unlock()
	success(w, r, record)
}

func (s *Server) downloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	record, idx := findByID(s.state.payroll, id)
	var emp hrm.Employee
	empIdx := -1
	if idx >= 0 {
		emp, empIdx = findByID(s.state.employees, record.EmployeeID)
	}
	s.state.mu.Unlock()

	if idx < 0 {
		fail(w, r, http.StatusNotFound, "not_found", "payroll record not found")
		return
	}

	data := payslip.Data{
		EmployeeName: "Unknown",
		Period:       record.Period,
		Basic:        record.BasicSalary,
		Allowances:   record.Allowances.Total(),
		Deductions:   record.Deductions.Total(),
		Net:          record.NetSalary,
		Currency:     s.cfg.Currency,
	}
	if empIdx >= 0 {
		data.EmployeeName = emp.FullName()
		data.Email = emp.Email
	}

	blob, err := payslip.Bytes(data)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "internal", "payslip rendering failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+record.Period+`.pdf"`)
	_, _ = w.Write(blob)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]hrm.Event(nil), s.state.events...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var event hrm.Event
	if err := decode(r, &event); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid event payload")
		return
	}
	if event.Title == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "title is required")
		return
	}
	s.state.mu.Lock()
	event.ID = uuid.NewString()
	s.state.events = append(s.state.events, event)
	s.state.mu.Unlock()
	created(w, r, event)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	var event hrm.Event
	if err := decode(r, &event); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid event payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.events, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "event not found")
		return
	}
	event.ID = id
	s.state.events[idx] = event
	s.state.mu.Unlock()
	success(w, r, event)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.events, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "event not found")
		return
	}
	s.state.events = removeAt(s.state.events, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}
