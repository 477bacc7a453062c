package hrm

import (
	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/store"
)

// Stores bundles the HR domain stores, each persisted under its own key.
type Stores struct {
	Employees   *store.Store[Employee]
	Departments *store.Store[Department]
	Positions   *store.Store[Position]
	Attendance  *store.Store[Attendance]
	Leaves      *store.Store[Leave]
	Payroll     *store.Store[Payroll]
	Events      *store.Store[Event]
}

func NewStores(local *localstore.Store) *Stores {
	return &Stores{
		Employees:   store.New[Employee]("hrm.employees", local),
		Departments: store.New[Department]("hrm.departments", local),
		Positions:   store.New[Position]("hrm.positions", local),
		Attendance:  store.New[Attendance]("hrm.attendance", local),
		Leaves:      store.New[Leave]("hrm.leaves", local),
		Payroll:     store.New[Payroll]("hrm.payroll", local),
		Events:      store.New[Event]("hrm.events", local),
	}
}

// Load rehydrates every store from its persisted snapshot.
func (s *Stores) Load() error {
	for _, load := range []func() error{
		s.Employees.Load,
		s.Departments.Load,
		s.Positions.Load,
		s.Attendance.Load,
		s.Leaves.Load,
		s.Payroll.Load,
		s.Events.Load,
	} {
		if err := load(); err != nil {
			return err
		}
	}
	return nil
}
