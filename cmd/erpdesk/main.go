// erpdesk is the terminal workstation: it talks to the ERP backend
// through the shared services, keeps the last-known collections in the
// device-local store, and renders the same derived values the web views
// show.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"erpdesk/internal/domain/auth"
	"erpdesk/internal/domain/clients"
	"erpdesk/internal/domain/dashboard"
	"erpdesk/internal/domain/frm"
	"erpdesk/internal/domain/hrm"
	"erpdesk/internal/domain/projects"
	"erpdesk/internal/forms"
	"erpdesk/internal/platform/config"
	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/platform/payslip"
	"erpdesk/internal/store"
	"erpdesk/internal/transport/rest"
	"erpdesk/internal/ui/format"
)

type app struct {
	cfg     config.Config
	local   *localstore.Store
	session *auth.Session

	auth *auth.Service
	hr   *hrm.Service
	pm   *projects.Service
	crm  *clients.Service
	fin  *frm.Service
	dash *dashboard.Service

	hrStores  *hrm.Stores
	pmStores  *projects.Stores
	clStore   *store.Store[clients.Client]
	finStores *frm.Stores
	board     *projects.Board
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	local, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		logrus.WithError(err).Fatal("open local store")
	}
	defer local.Close()

	session := auth.NewSession(local)
	client := rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, session)
	client.OnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, "session expired, run `erpdesk login` again")
	})

	hr := hrm.NewService(client)
	pm := projects.NewService(client)
	pmStores := projects.NewStores(local)

	a := &app{
		cfg:       cfg,
		local:     local,
		session:   session,
		auth:      auth.NewService(client, session),
		hr:        hr,
		pm:        pm,
		crm:       clients.NewService(client),
		fin:       frm.NewService(client),
		dash:      dashboard.NewService(hr, pm),
		hrStores:  hrm.NewStores(local),
		pmStores:  pmStores,
		clStore:   clients.NewStore(local),
		finStores: frm.NewStores(local),
		board:     projects.NewBoard(pm, pmStores.Tasks),
	}
	a.rehydrate()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout*3)
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// rehydrate loads the persisted snapshots so read commands can show the
// last-known data even before the next fetch.
func (a *app) rehydrate() {
	for _, load := range []func() error{
		a.hrStores.Load,
		a.pmStores.Load,
		a.clStore.Load,
		a.finStores.Load,
	} {
		if err := load(); err != nil {
			logrus.WithError(err).Warn("snapshot load failed")
		}
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.auth.Logout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "employees":
		return a.cmdEmployees(ctx, args)
	case "departments":
		return a.cmdDepartments(ctx)
	case "positions":
		return a.cmdPositions(ctx)
	case "attendance":
		return a.cmdAttendance(ctx)
	case "events":
		return a.cmdEvents(ctx)
	case "leaves":
		return a.cmdLeaves(ctx, args)
	case "payroll":
		return a.cmdPayroll(ctx, args)
	case "board":
		return a.cmdBoard(ctx, args)
	case "clients":
		return a.cmdClients(ctx)
	case "expenses":
		return a.cmdExpenses(ctx, args)
	case "loans":
		return a.cmdLoans(ctx)
	case "personal-loans":
		return a.cmdPersonalLoans(ctx)
	case "profits":
		return a.cmdProfits(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: erpdesk <command> [args]

  login <email> <password>
  logout
  whoami
  dashboard
  employees list | employees add <first> <last> <email> <salary>
  departments
  positions
  attendance
  events
  leaves list | leaves approve <id> <notes>
  payroll generate <period> | payroll payslip <id> <dest.pdf> | payroll export <id> [dest.pdf]
  board | board move <task-id> <column>
  clients
  expenses list | expenses add <title> <category> <amount> [document...] | expenses process <id>
  loans
  personal-loans
  profits`)
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: erpdesk login <email> <password>")
	}
	user, err := a.auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s %s (%s)\n", user.FirstName, user.LastName, user.Role)
	return nil
}

func (a *app) cmdWhoami() error {
	user, ok := a.session.CurrentUser()
	if !ok {
		return fmt.Errorf("not logged in")
	}
	fmt.Printf("%s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.Role)
	return nil
}

func (a *app) cmdDashboard(ctx context.Context) error {
	// Previous counts come from the snapshots loaded at startup, so the
	// trend shows movement since the last time this command ran.
	prevEmployees := len(a.hrStores.Employees.Items())
	prevTasks := len(a.pmStores.Tasks.Items())

	summary, err := a.dash.Load(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "employees\t%d\t%s\n", len(summary.Employees),
		dashboard.Change(len(summary.Employees), prevEmployees))
	fmt.Fprintf(w, "departments\t%d\t\n", len(summary.Departments))
	fmt.Fprintf(w, "positions\t%d\t\n", len(summary.Positions))
	fmt.Fprintf(w, "tasks\t%d\t%s\n", len(summary.Tasks),
		dashboard.Change(len(summary.Tasks), prevTasks))
	fmt.Fprintf(w, "pending leaves\t%d\t\n", summary.PendingLeaves)
	return w.Flush()
}

func (a *app) cmdEmployees(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "add" {
		if len(args) != 5 {
			return fmt.Errorf("usage: erpdesk employees add <first> <last> <email> <salary>")
		}
		salary, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("invalid salary %q", args[4])
		}
		schema := forms.Schema{
			forms.Required("firstName"),
			forms.Required("lastName"),
			forms.Required("email"),
			forms.Min("salary", 0),
		}
		if problems := schema.Validate(forms.Values{
			"firstName": args[0],
			"lastName":  args[1],
			"email":     args[2],
			"salary":    salary,
		}); len(problems) > 0 {
			return fmt.Errorf("invalid input: %v", problems)
		}
		next, err := a.hr.NextEmployeeNumber(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("assigning %s\n", next)
		emp, err := a.hrStores.Employees.Add(ctx, func(ctx context.Context) (hrm.Employee, error) {
			return a.hr.CreateEmployee(ctx, hrm.Employee{
				FirstName:   args[0],
				LastName:    args[1],
				Email:       args[2],
				Salary:      salary,
				Status:      hrm.EmployeeActive,
				JoiningDate: time.Now().UTC(),
			})
		})
		if err != nil {
			return err
		}
		fmt.Printf("created %s %s\n", emp.EmployeeNumber, emp.FullName())
		return nil
	}

	if err := a.hrStores.Employees.Fetch(ctx, a.hr.ListEmployees); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tNAME\tEMAIL\tSTATUS\tSALARY")
	for _, emp := range a.hrStores.Employees.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\t%s\n",
			emp.EmployeeNumber, emp.FullName(), emp.Email,
			emp.Status, format.EmployeeStatusColor(emp.Status),
			format.Currency(emp.Salary))
	}
	return w.Flush()
}

func (a *app) cmdDepartments(ctx context.Context) error {
	if err := a.hrStores.Departments.Fetch(ctx, a.hr.ListDepartments); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tBUDGET")
	for _, dep := range a.hrStores.Departments.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", dep.Code, dep.Name, format.Currency(dep.Budget))
	}
	return w.Flush()
}

func (a *app) cmdPositions(ctx context.Context) error {
	if err := a.hrStores.Positions.Fetch(ctx, a.hr.ListPositions); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTITLE\tLEVEL\tTYPE")
	for _, pos := range a.hrStores.Positions.Items() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", pos.Code, pos.Title, pos.Level, pos.EmploymentType)
	}
	return w.Flush()
}

func (a *app) cmdAttendance(ctx context.Context) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -7)
	if err := a.hrStores.Attendance.Fetch(ctx, func(ctx context.Context) ([]hrm.Attendance, error) {
		return a.hr.ListAttendance(ctx, from, to)
	}); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tEMPLOYEE\tSTATUS\tHOURS")
	for _, record := range a.hrStores.Attendance.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%.2f\n",
			format.Date(record.Date), record.EmployeeID,
			record.Status, format.AttendanceStatusColor(record.Status),
			record.WorkHours)
	}
	return w.Flush()
}

func (a *app) cmdEvents(ctx context.Context) error {
	if err := a.hrStores.Events.Fetch(ctx, a.hr.ListEvents); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tTYPE\tSTART\tEND")
	for _, event := range a.hrStores.Events.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			event.Title, event.Type, format.Date(event.StartDate), format.Date(event.EndDate))
	}
	return w.Flush()
}

func (a *app) cmdLeaves(ctx context.Context, args []string) error {
	if len(args) > 1 && args[0] == "approve" {
		if len(args) < 3 {
			return fmt.Errorf("usage: erpdesk leaves approve <id> <notes>")
		}
		id, notes := args[1], args[2]
		leave, err := a.hrStores.Leaves.Apply(ctx, func(ctx context.Context) (hrm.Leave, error) {
			return a.hr.ApproveLeave(ctx, id, notes)
		})
		if err != nil {
			return err
		}
		fmt.Printf("leave %s is now %s\n", leave.ID, leave.Status)
		return nil
	}

	if err := a.hrStores.Leaves.Fetch(ctx, a.hr.ListLeaves); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tDAYS\tSTATUS")
	for _, leave := range a.hrStores.Leaves.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s (%s)\n",
			leave.ID, leave.EmployeeID, leave.Type, leave.Duration,
			leave.Status, format.LeaveStatusColor(leave.Status))
	}
	return w.Flush()
}

func (a *app) cmdPayroll(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: erpdesk payroll generate <period> | payroll payslip <id> <dest.pdf> | payroll export <id> [dest.pdf]")
	}
	switch args[0] {
	case "generate":
		if len(args) != 2 {
			return fmt.Errorf("usage: erpdesk payroll generate <period>")
		}
		period := args[1]
		if err := a.hrStores.Payroll.Fetch(ctx, func(ctx context.Context) ([]hrm.Payroll, error) {
			return a.hr.GeneratePayroll(ctx, period)
		}); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMPLOYEE\tPERIOD\tNET\tSTATUS")
		for _, record := range a.hrStores.Payroll.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				record.ID, record.EmployeeID, record.Period,
				format.Currency(record.NetSalary), record.Status)
		}
		return w.Flush()
	case "payslip":
		if len(args) != 3 {
			return fmt.Errorf("usage: erpdesk payroll payslip <id> <dest.pdf>")
		}
		if err := a.hr.DownloadPayslip(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", args[2])
		return nil
	case "export":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: erpdesk payroll export <id> [dest.pdf]")
		}
		return a.exportPayslip(ctx, args)
	default:
		return fmt.Errorf("unknown payroll subcommand %q", args[0])
	}
}

// exportPayslip renders the payslip locally from the cached record, so
// it works without the download endpoint. A record missing from the
// cache is fetched once.
func (a *app) exportPayslip(ctx context.Context, args []string) error {
	id := args[1]
	record, ok := a.hrStores.Payroll.Get(id)
	if !ok {
		var err error
		record, err = a.hrStores.Payroll.Apply(ctx, func(ctx context.Context) (hrm.Payroll, error) {
			return a.hr.GetPayroll(ctx, id)
		})
		if err != nil {
			return err
		}
	}

	data := payslip.Data{
		EmployeeName: record.EmployeeID,
		Period:       record.Period,
		Basic:        record.BasicSalary,
		Allowances:   record.Allowances.Total(),
		Deductions:   record.Deductions.Total(),
		Net:          record.NetSalary,
		Currency:     a.cfg.Currency,
	}
	if emp, ok := a.hrStores.Employees.Get(record.EmployeeID); ok {
		data.EmployeeName = emp.FullName()
		data.Email = emp.Email
	}

	dest := filepath.Join(a.cfg.PayslipDir, fmt.Sprintf("payslip-%s-%s.pdf", record.EmployeeID, record.Period))
	if len(args) == 3 {
		dest = args[2]
	}
	if err := payslip.Render(data, dest); err != nil {
		return err
	}
	fmt.Printf("exported %s\n", dest)
	return nil
}

func (a *app) cmdBoard(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "move" {
		if len(args) != 3 {
			return fmt.Errorf("usage: erpdesk board move <task-id> <column>")
		}
		if err := a.pmStores.Tasks.Fetch(ctx, a.pm.ListTasks); err != nil {
			return err
		}
		if err := a.board.Move(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("moved %s to %s\n", args[1], args[2])
		return nil
	}

	if err := a.pmStores.Tasks.Fetch(ctx, a.pm.ListTasks); err != nil {
		return err
	}
	columns := a.board.Columns()
	for _, column := range projects.Columns {
		fmt.Printf("%s (%s)\n", column, format.TaskStatusColor(column))
		for _, task := range columns[column] {
			marker := " "
			if a.board.Pending(task.ID) {
				marker = "~"
			}
			fmt.Printf("  %s %s  %s\n", marker, task.ID, task.Title)
		}
	}
	return nil
}

func (a *app) cmdClients(ctx context.Context) error {
	if err := a.clStore.Fetch(ctx, a.crm.List); err != nil {
		return err
	}
	if err := a.pmStores.Projects.Fetch(ctx, a.pm.ListProjects); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMPANY\tPROJECTS")
	for _, entry := range clients.Join(a.clStore.Items(), a.pmStores.Projects.Items()) {
		fmt.Fprintf(w, "%s\t%s\t%d\n", entry.Name, entry.Company, len(entry.Projects))
	}
	return w.Flush()
}

func (a *app) cmdExpenses(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "add":
			if len(args) < 4 {
				return fmt.Errorf("usage: erpdesk expenses add <title> <category> <amount> [document...]")
			}
			amount, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[3])
			}
			schema := forms.Schema{
				forms.Required("title"),
				forms.Required("category"),
				forms.Min("amount", 0.01),
			}
			if problems := schema.Validate(forms.Values{
				"title":    args[1],
				"category": args[2],
				"amount":   amount,
			}); len(problems) > 0 {
				return fmt.Errorf("invalid input: %v", problems)
			}
			var docs []rest.Attachment
			for _, path := range args[4:] {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				docs = append(docs, rest.Attachment{Name: path, Content: content})
			}
			expense, err := a.finStores.Expenses.Add(ctx, func(ctx context.Context) (frm.Expense, error) {
				return a.fin.CreateExpense(ctx, frm.Expense{
					Title:     args[1],
					Category:  args[2],
					Amount:    amount,
					Date:      time.Now().UTC(),
					Documents: docs,
				})
			})
			if err != nil {
				return err
			}
			fmt.Printf("created expense %s (%s)\n", expense.ID, expense.Status)
			return nil
		case "process":
			if len(args) != 2 {
				return fmt.Errorf("usage: erpdesk expenses process <id>")
			}
			id := args[1]
			expense, err := a.finStores.Expenses.Apply(ctx, func(ctx context.Context) (frm.Expense, error) {
				return a.fin.ProcessExpense(ctx, id)
			})
			if err != nil {
				return err
			}
			fmt.Printf("expense %s is now %s\n", expense.ID, expense.Status)
			return nil
		case "list":
		default:
			return fmt.Errorf("unknown expenses subcommand %q", args[0])
		}
	}

	if err := a.finStores.Expenses.Fetch(ctx, a.fin.ListExpenses); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tSTATUS")
	for _, expense := range a.finStores.Expenses.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\n",
			expense.ID, expense.Title, format.Currency(expense.Amount),
			expense.Status, format.RequestStatusColor(expense.Status))
	}
	return w.Flush()
}

func (a *app) cmdLoans(ctx context.Context) error {
	if err := a.finStores.OfficeLoans.Fetch(ctx, a.fin.ListOfficeLoans); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPURPOSE\tAMOUNT\tINSTALLMENT\tSTATUS")
	for _, loan := range a.finStores.OfficeLoans.Items() {
		installment, err := frm.FormatInstallment(loan.Amount, loan.Plan)
		if err != nil {
			installment = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s (%s)\n",
			loan.ID, loan.Purpose, format.Currency(loan.Amount), installment,
			loan.Status, format.RequestStatusColor(loan.Status))
	}
	return w.Flush()
}

func (a *app) cmdPersonalLoans(ctx context.Context) error {
	if err := a.finStores.PersonalLoans.Fetch(ctx, a.fin.ListPersonalLoans); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tAMOUNT\tSTATUS")
	for _, loan := range a.finStores.PersonalLoans.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\n",
			loan.ID, loan.EmployeeID, format.Currency(loan.Amount),
			loan.Status, format.RequestStatusColor(loan.Status))
	}
	return w.Flush()
}

func (a *app) cmdProfits(ctx context.Context) error {
	if err := a.finStores.Profits.Fetch(ctx, a.fin.ListProfits); err != nil {
		return err
	}
	var total float64
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tAMOUNT\tDATE")
	for _, profit := range a.finStores.Profits.Items() {
		total += profit.Amount
		fmt.Fprintf(w, "%s\t%s\t%s\n", profit.Source,
			format.Currency(profit.Amount), format.Date(profit.Date))
	}
	fmt.Fprintf(w, "total\t%s\t\n", format.Currency(total))
	return w.Flush()
}
