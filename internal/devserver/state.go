package devserver

import (
	"fmt"
	"sync"

	"erpdesk/internal/domain/clients"
	"erpdesk/internal/domain/frm"
	"erpdesk/internal/domain/hrm"
	"erpdesk/internal/domain/projects"
)

type account struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Role         string
	PasswordHash string
}

// state is the in-memory backing data. Collections are slices to keep
// list responses in insertion order.
type state struct {
	mu sync.Mutex

	accounts []account

	employees   []hrm.Employee
	departments []hrm.Department
	positions   []hrm.Position
	attendance  []hrm.Attendance
	leaves      []hrm.Leave
	payroll     []hrm.Payroll
	events      []hrm.Event

	projectList []projects.Project
	tasks       []projects.Task
	clientList  []clients.Client

	expenses      []frm.Expense
	personalLoans []frm.PersonalLoan
	officeLoans   []frm.OfficeLoan
	profits       []frm.Profit

	empSeq int
	depSeq int
	posSeq int

	idempotent map[string]cachedResponse
}

func newState() *state {
	return &state{idempotent: make(map[string]cachedResponse)}
}

// Sequential codes are owned here; clients only ever display them. The
// peek variants report the upcoming code without consuming it, the take
// variants consume the sequence on create.
func (s *state) peekEmployeeNumber() string { return fmt.Sprintf("EMP-%04d", s.empSeq+1) }
func (s *state) peekDepartmentCode() string { return fmt.Sprintf("DEP-%03d", s.depSeq+1) }
func (s *state) peekPositionCode() string   { return fmt.Sprintf("POS-%03d", s.posSeq+1) }

func (s *state) takeEmployeeNumber() string {
	s.empSeq++
	return fmt.Sprintf("EMP-%04d", s.empSeq)
}

func (s *state) takeDepartmentCode() string {
	s.depSeq++
	return fmt.Sprintf("DEP-%03d", s.depSeq)
}

func (s *state) takePositionCode() string {
	s.posSeq++
	return fmt.Sprintf("POS-%03d", s.posSeq)
}

type identifiable interface {
	EntityID() string
}

func findByID[T identifiable](items []T, id string) (T, int) {
	for i, item := range items {
		if item.EntityID() == id {
			return item, i
		}
	}
	var zero T
	return zero, -1
}

func removeAt[T any](items []T, index int) []T {
	return append(items[:index], items[index+1:]...)
}
