// Package dashboard loads the landing-view counters. The fetches run
// concurrently and the join is all-or-nothing: one failure aborts the
// whole load with no partial result.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"erpdesk/internal/domain/hrm"
	"erpdesk/internal/domain/projects"
)

type Summary struct {
	Employees     []hrm.Employee
	Departments   []hrm.Department
	Positions     []hrm.Position
	Tasks         []projects.Task
	PendingLeaves int
}

type Service struct {
	hr *hrm.Service
	pm *projects.Service
}

func NewService(hr *hrm.Service, pm *projects.Service) *Service {
	return &Service{hr: hr, pm: pm}
}

func (s *Service) Load(ctx context.Context) (Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.hr.ListEmployees(ctx)
		summary.Employees = employees
		return err
	})
	g.Go(func() error {
		departments, err := s.hr.ListDepartments(ctx)
		summary.Departments = departments
		return err
	})
	g.Go(func() error {
		positions, err := s.hr.ListPositions(ctx)
		summary.Positions = positions
		return err
	})
	g.Go(func() error {
		tasks, err := s.pm.ListTasks(ctx)
		summary.Tasks = tasks
		return err
	})
	g.Go(func() error {
		leaves, err := s.hr.ListLeaves(ctx)
		if err != nil {
			return err
		}
		for _, leave := range leaves {
			if leave.Status == hrm.LeavePending {
				summary.PendingLeaves++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
