package frm

import (
	"time"

	"erpdesk/internal/transport/rest"
)

// Workflow statuses shared by the financial request types.
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestProcessed = "processed"
)

// Repayment frequencies.
const (
	FrequencyWeekly    = "week"
	FrequencyMonthly   = "month"
	FrequencyQuarterly = "quarter"
)

type Expense struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Amount      float64           `json:"amount"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Documents   []rest.Attachment `json:"documents,omitempty"`
}

func (e Expense) EntityID() string { return e.ID }

type PersonalLoan struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employeeId"`
	Amount     float64           `json:"amount"`
	Reason     string            `json:"reason"`
	Status     string            `json:"status"`
	Documents  []rest.Attachment `json:"documents,omitempty"`
}

func (l PersonalLoan) EntityID() string { return l.ID }

// RepaymentPlan is the office loan's schedule sub-object.
type RepaymentPlan struct {
	Installments int       `json:"installments"`
	Frequency    string    `json:"frequency"`
	StartDate    time.Time `json:"startDate"`
}

type OfficeLoan struct {
	ID        string            `json:"id"`
	Purpose   string            `json:"purpose"`
	Amount    float64           `json:"amount"`
	Plan      RepaymentPlan     `json:"repaymentPlan"`
	Status    string            `json:"status"`
	Documents []rest.Attachment `json:"documents,omitempty"`
}

func (l OfficeLoan) EntityID() string { return l.ID }

type Profit struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (p Profit) EntityID() string { return p.ID }
