package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erpdesk/internal/domain/frm"
	"erpdesk/internal/transport/rest"
)

// isMultipart reports whether the request carries form data instead of
// JSON. Creation endpoints accept both: documents arrive as multipart.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseDocuments(r *http.Request) ([]rest.Attachment, error) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		return nil, err
	}
	var docs []rest.Attachment
	for _, header := range r.MultipartForm.File["documents"] {
		docs = append(docs, rest.Attachment{Name: header.Filename})
	}
	return docs, nil
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]frm.Expense(nil), s.state.expenses...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var expense frm.Expense
	if isMultipart(r) {
		docs, err := parseDocuments(r)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "bad_request", "invalid multipart payload")
			return
		}
		expense.Title = r.FormValue("title")
		expense.Category = r.FormValue("category")
		expense.Amount, _ = strconv.ParseFloat(r.FormValue("amount"), 64)
		expense.Date, _ = time.Parse(time.RFC3339, r.FormValue("date"))
		expense.Description = r.FormValue("description")
		expense.Documents = docs
	} else if err := decode(r, &expense); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid expense payload")
		return
	}
	if expense.Title == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "title is required")
		return
	}
	if expense.Amount <= 0 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "amount must be positive")
		return
	}

	s.state.mu.Lock()
	expense.ID = uuid.NewString()
	expense.Status = frm.RequestPending
	s.state.expenses = append(s.state.expenses, expense)
	s.state.mu.Unlock()
	created(w, r, expense)
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	var expense frm.Expense
	if err := decode(r, &expense); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid expense payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	existing, idx := findByID(s.state.expenses, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "expense not found")
		return
	}
	expense.ID = id
	expense.Status = existing.Status
	s.state.expenses[idx] = expense
	s.state.mu.Unlock()
	success(w, r, expense)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.expenses, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "expense not found")
		return
	}
	s.state.expenses = removeAt(s.state.expenses, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

// processExpense advances pending -> approved -> processed. Processing a
// request twice from the terminal state is rejected.
func (s *Server) processExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	expense, idx := findByID(s.state.expenses, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "expense not found")
		return
	}
	switch expense.Status {
	case frm.RequestPending:
		expense.Status = frm.RequestApproved
	case frm.RequestApproved:
		expense.Status = frm.RequestProcessed
	default:
		s.state.mu.Unlock()
		fail(w, r, http.StatusConflict, "conflict", "expense already processed")
		return
	}
	s.state.expenses[idx] = expense
	s.state.mu.Unlock()
	success(w, r, expense)
}

func (s *Server) listPersonalLoans(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]frm.PersonalLoan(nil), s.state.personalLoans...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createPersonalLoan(w http.ResponseWriter, r *http.Request) {
	var loan frm.PersonalLoan
	if isMultipart(r) {
		docs, err := parseDocuments(r)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "bad_request", "invalid multipart payload")
			return
		}
		loan.EmployeeID = r.FormValue("employeeId")
		loan.Amount, _ = strconv.ParseFloat(r.FormValue("amount"), 64)
		loan.Reason = r.FormValue("reason")
		loan.Documents = docs
	} else if err := decode(r, &loan); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid loan payload")
		return
	}
	if loan.EmployeeID == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "employeeId is required")
		return
	}
	if loan.Amount <= 0 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "amount must be positive")
		return
	}

	s.state.mu.Lock()
	loan.ID = uuid.NewString()
	loan.Status = frm.RequestPending
	s.state.personalLoans = append(s.state.personalLoans, loan)
	s.state.mu.Unlock()
	created(w, r, loan)
}

func (s *Server) approvePersonalLoan(w http.ResponseWriter, r *http.Request) {
	s.reviewPersonalLoan(w, r, frm.RequestApproved)
}

func (s *Server) rejectPersonalLoan(w http.ResponseWriter, r *http.Request) {
	s.reviewPersonalLoan(w, r, frm.RequestRejected)
}

func (s *Server) reviewPersonalLoan(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	loan, idx := findByID(s.state.personalLoans, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "loan not found")
		return
	}
	if loan.Status != frm.RequestPending {
		s.state.mu.Unlock()
		fail(w, r, http.StatusConflict, "conflict", "loan already reviewed")
		return
	}
	loan.Status = status
	s.state.personalLoans[idx] = loan
	s.state.mu.Unlock()
	success(w, r, loan)
}

func (s *Server) listOfficeLoans(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]frm.OfficeLoan(nil), s.state.officeLoans...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createOfficeLoan(w http.ResponseWriter, r *http.Request) {
	var loan frm.OfficeLoan
	if isMultipart(r) {
		docs, err := parseDocuments(r)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "bad_request", "invalid multipart payload")
			return
		}
		loan.Purpose = r.FormValue("purpose")
		loan.Amount, _ = strconv.ParseFloat(r.FormValue("amount"), 64)
		loan.Plan.Installments, _ = strconv.Atoi(r.FormValue("installments"))
		loan.Plan.Frequency = r.FormValue("frequency")
		loan.Plan.StartDate, _ = time.Parse(time.RFC3339, r.FormValue("startDate"))
		loan.Documents = docs
	} else if err := decode(r, &loan); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid loan payload")
		return
	}
	if loan.Purpose == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "purpose is required")
		return
	}
	if loan.Amount <= 0 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "amount must be positive")
		return
	}
	if loan.Plan.Installments < 1 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "installments must be at least 1")
		return
	}

	s.state.mu.Lock()
	loan.ID = uuid.NewString()
	loan.Status = frm.RequestPending
	s.state.officeLoans = append(s.state.officeLoans, loan)
	s.state.mu.Unlock()
	created(w, r, loan)
}

func (s *Server) approveOfficeLoan(w http.ResponseWriter, r *http.Request) {
	s.reviewOfficeLoan(w, r, frm.RequestApproved)
}

func (s *Server) rejectOfficeLoan(w http.ResponseWriter, r *http.Request) {
	s.reviewOfficeLoan(w, r, frm.RequestRejected)
}

func (s *Server) reviewOfficeLoan(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	loan, idx := findByID(s.state.officeLoans, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "loan not found")
		return
	}
	if loan.Status != frm.RequestPending {
		s.state.mu.Unlock()
		fail(w, r, http.StatusConflict, "conflict", "loan already reviewed")
		return
	}
	loan.Status = status
	s.state.officeLoans[idx] = loan
	s.state.mu.Unlock()
	success(w, r, loan)
}

func (s *Server) listProfits(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]frm.Profit(nil), s.state.profits...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createProfit(w http.ResponseWriter, r *http.Request) {
	var profit frm.Profit
	if err := decode(r, &profit); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid profit payload")
		return
	}
	if profit.Source == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "source is required")
		return
	}
	s.state.mu.Lock()
	profit.ID = uuid.NewString()
	s.state.profits = append(s.state.profits, profit)
	s.state.mu.Unlock()
	created(w, r, profit)
}

func (s *Server) deleteProfit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.profits, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "profit not found")
		return
	}
	s.state.profits = removeAt(s.state.profits, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}
