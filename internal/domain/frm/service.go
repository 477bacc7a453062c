package frm

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"erpdesk/internal/transport/rest"
)

// Service wraps the financial-request endpoints. Creation is the one
// place the service layer branches: multipart form data when supporting
// documents are attached, JSON otherwise.
type Service struct {
	client *rest.Client
}

func NewService(client *rest.Client) *Service {
	return &Service{client: client}
}

func (s *Service) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	err := s.client.Get(ctx, "/frm/expenses", &out)
	return out, err
}

func (s *Service) CreateExpense(ctx context.Context, expense Expense) (Expense, error) {
	var out Expense
	if len(expense.Documents) > 0 {
		fields := map[string]string{
			"title":       expense.Title,
			"category":    expense.Category,
			"amount":      formatAmount(expense.Amount),
			"date":        expense.Date.Format(time.RFC3339),
			"description": expense.Description,
		}
		err := s.client.PostMultipart(ctx, "/frm/expenses", fields, expense.Documents, &out)
		return out, err
	}
	err := s.client.Post(ctx, "/frm/expenses", expense, &out)
	return out, err
}

func (s *Service) UpdateExpense(ctx context.Context, expense Expense) (Expense, error) {
	var out Expense
	err := s.client.Put(ctx, "/frm/expenses/"+expense.ID, expense, &out)
	return out, err
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/frm/expenses/"+id)
}

// ProcessExpense moves an expense through the approval workflow.
func (s *Service) ProcessExpense(ctx context.Context, id string) (Expense, error) {
	var out Expense
	err := s.client.Post(ctx, "/frm/expenses/"+id+"/process", nil, &out)
	return out, err
}

func (s *Service) ListPersonalLoans(ctx context.Context) ([]PersonalLoan, error) {
	var out []PersonalLoan
	err := s.client.Get(ctx, "/frm/personal-loans", &out)
	return out, err
}

func (s *Service) CreatePersonalLoan(ctx context.Context, loan PersonalLoan) (PersonalLoan, error) {
	var out PersonalLoan
	if len(loan.Documents) > 0 {
		fields := map[string]string{
			"employeeId": loan.EmployeeID,
			"amount":     formatAmount(loan.Amount),
			"reason":     loan.Reason,
		}
		err := s.client.PostMultipart(ctx, "/frm/personal-loans", fields, loan.Documents, &out)
		return out, err
	}
	err := s.client.Post(ctx, "/frm/personal-loans", loan, &out)
	return out, err
}

func (s *Service) ApprovePersonalLoan(ctx context.Context, id string) (PersonalLoan, error) {
	var out PersonalLoan
	err := s.client.Post(ctx, "/frm/personal-loans/"+id+"/approve", nil, &out)
	return out, err
}

func (s *Service) RejectPersonalLoan(ctx context.Context, id string) (PersonalLoan, error) {
	var out PersonalLoan
	err := s.client.Post(ctx, "/frm/personal-loans/"+id+"/reject", nil, &out)
	return out, err
}

func (s *Service) ListOfficeLoans(ctx context.Context) ([]OfficeLoan, error) {
	var out []OfficeLoan
	err := s.client.Get(ctx, "/frm/office-loans", &out)
	return out, err
}

func (s *Service) CreateOfficeLoan(ctx context.Context, loan OfficeLoan) (OfficeLoan, error) {
	var out OfficeLoan
	if len(loan.Documents) > 0 {
		fields := map[string]string{
			"purpose":      loan.Purpose,
			"amount":       formatAmount(loan.Amount),
			"installments": strconv.Itoa(loan.Plan.Installments),
			"frequency":    loan.Plan.Frequency,
			"startDate":    loan.Plan.StartDate.Format(time.RFC3339),
		}
		err := s.client.PostMultipart(ctx, "/frm/office-loans", fields, loan.Documents, &out)
		return out, err
	}
	err := s.client.Post(ctx, "/frm/office-loans", loan, &out)
	return out, err
}

func (s *Service) ApproveOfficeLoan(ctx context.Context, id string) (OfficeLoan, error) {
	var out OfficeLoan
	err := s.client.Post(ctx, "/frm/office-loans/"+id+"/approve", nil, &out)
	return out, err
}

func (s *Service) RejectOfficeLoan(ctx context.Context, id string) (OfficeLoan, error) {
	var out OfficeLoan
	err := s.client.Post(ctx, "/frm/office-loans/"+id+"/reject", nil, &out)
	return out, err
}

func (s *Service) ListProfits(ctx context.Context) ([]Profit, error) {
	var out []Profit
	err := s.client.Get(ctx, "/frm/profits", &out)
	return out, err
}

func (s *Service) CreateProfit(ctx context.Context, profit Profit) (Profit, error) {
	var out Profit
	err := s.client.Post(ctx, "/frm/profits", profit, &out)
	return out, err
}

func (s *Service) DeleteProfit(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/frm/profits/"+id)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
