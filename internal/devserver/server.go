// Package devserver is an in-memory stand-in for the ERP backend. It
// implements the same REST contract the SDK talks to so the stores and
// services can be exercised without a real deployment.
package devserver

import (
	"github.com/go-chi/chi/v5"

	"erpdesk/internal/platform/config"
)

type Server struct {
	cfg    config.Config
	state  *state
	Router chi.Router
}

func New(cfg config.Config) (*Server, error) {
	s := &Server{cfg: cfg, state: newState()}
	if err := s.seedAdmin(cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(withRequestID)
	router.Use(logRequests)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Use(s.idempotency)

			r.Post("/auth/logout", s.handleLogout)

			r.Route("/hrm", func(r chi.Router) {
				r.Get("/employees", s.listEmployees)
				r.Get("/employees/next-number", s.nextEmployeeNumber)
				r.Get("/employees/{id}", s.getEmployee)
				r.Post("/employees", s.createEmployee)
				r.Put("/employees/{id}", s.updateEmployee)
				r.Delete("/employees/{id}", s.deleteEmployee)

				r.Get("/departments", s.listDepartments)
				r.Get("/departments/next-code", s.nextDepartmentCode)
				r.Post("/departments", s.createDepartment)
				r.Put("/departments/{id}", s.updateDepartment)
				r.Delete("/departments/{id}", s.deleteDepartment)

				r.Get("/positions", s.listPositions)
				r.Get("/positions/next-code", s.nextPositionCode)
				r.Post("/positions", s.createPosition)
				r.Put("/positions/{id}", s.updatePosition)
				r.Delete("/positions/{id}", s.deletePosition)

				r.Get("/attendance", s.listAttendance)
				r.Post("/attendance/check-in", s.checkIn)
				r.Post("/attendance/{id}/check-out", s.checkOut)
				r.Put("/attendance/{id}", s.updateAttendance)

				r.Get("/leaves", s.listLeaves)
				r.Post("/leaves", s.createLeave)
				r.Put("/leaves/{id}", s.updateLeave)
				r.Delete("/leaves/{id}", s.deleteLeave)
				r.Post("/leaves/{id}/approve", s.approveLeave)
				r.Post("/leaves/{id}/reject", s.rejectLeave)

				r.Get("/payroll", s.listPayroll)
				r.Get("/payroll/{id}", s.getPayroll)
				r.Post("/payroll/generate", s.generatePayroll)
				r.Post("/payroll/{id}/pay", s.markPayrollPaid)
				r.Get("/payroll/{id}/payslip", s.downloadPayslip)

				r.Get("/events", s.listEvents)
				r.Post("/events", s.createEvent)
				r.Put("/events/{id}", s.updateEvent)
				r.Delete("/events/{id}", s.deleteEvent)
			})

			r.Get("/projects", s.listProjects)
			r.Get("/projects/{id}", s.getProject)
			r.Post("/projects", s.createProject)
			r.Put("/projects/{id}", s.updateProject)
			r.Delete("/projects/{id}", s.deleteProject)

			r.Get("/tasks", s.listTasks)
			r.Post("/tasks", s.createTask)
			r.Put("/tasks/{id}", s.updateTask)
			r.Delete("/tasks/{id}", s.deleteTask)
			r.Patch("/tasks/{id}/status", s.updateTaskStatus)
			r.Post("/tasks/{id}/comments", s.addTaskComment)
			r.Post("/tasks/{id}/attachments", s.addTaskAttachment)

			r.Get("/clients", s.listClients)
			r.Get("/clients/{id}", s.getClient)
			r.Post("/clients", s.createClient)
			r.Put("/clients/{id}", s.updateClient)
			r.Delete("/clients/{id}", s.deleteClient)

			r.Route("/frm", func(r chi.Router) {
				r.Get("/expenses", s.listExpenses)
				r.Post("/expenses", s.createExpense)
				r.Put("/expenses/{id}", s.updateExpense)
				r.Delete("/expenses/{id}", s.deleteExpense)
				r.Post("/expenses/{id}/process", s.processExpense)

				r.Get("/personal-loans", s.listPersonalLoans)
				r.Post("/personal-loans", s.createPersonalLoan)
				r.Post("/personal-loans/{id}/approve", s.approvePersonalLoan)
				r.Post("/personal-loans/{id}/reject", s.rejectPersonalLoan)

				r.Get("/office-loans", s.listOfficeLoans)
				r.Post("/office-loans", s.createOfficeLoan)
				r.Post("/office-loans/{id}/approve", s.approveOfficeLoan)
				r.Post("/office-loans/{id}/reject", s.rejectOfficeLoan)

				r.Get("/profits", s.listProfits)
				r.Post("/profits", s.createProfit)
				r.Delete("/profits/{id}", s.deleteProfit)
			})
		})
	})

	s.Router = router
	return s, nil
}
