package frm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"erpdesk/internal/transport/rest"
)

func TestCreateExpenseEncodingBranch(t *testing.T) {
	var contentTypes []string
	router := chi.NewRouter()
	router.Post("/api/v1/frm/expenses", func(w http.ResponseWriter, r *http.Request) {
		contentTypes = append(contentTypes, r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"x1","status":"pending"}}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	svc := NewService(rest.NewClient(ts.URL, 10*time.Second, nil))
	ctx := context.Background()

	plain := Expense{Title: "Stationery", Amount: 42}
	if _, err := svc.CreateExpense(ctx, plain); err != nil {
		t.Fatalf("create plain expense: %v", err)
	}

	withDocs := Expense{
		Title:     "Team lunch",
		Amount:    120,
		Documents: []rest.Attachment{{Name: "receipt.pdf", Content: []byte("%PDF")}},
	}
	if _, err := svc.CreateExpense(ctx, withDocs); err != nil {
		t.Fatalf("create expense with documents: %v", err)
	}

	if len(contentTypes) != 2 {
		t.Fatalf("expected two requests, got %d", len(contentTypes))
	}
	if contentTypes[0] != "application/json" {
		t.Fatalf("expected JSON without documents, got %q", contentTypes[0])
	}
	if !strings.HasPrefix(contentTypes[1], "multipart/form-data") {
		t.Fatalf("expected multipart with documents, got %q", contentTypes[1])
	}
}

func TestProcessExpenseHitsActionEndpoint(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/v1/frm/expenses/{id}/process", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"` + chi.URLParam(r, "id") + `","status":"processed"}}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	svc := NewService(rest.NewClient(ts.URL, 10*time.Second, nil))

	processed, err := svc.ProcessExpense(context.Background(), "x9")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if processed.ID != "x9" || processed.Status != RequestProcessed {
		t.Fatalf("unexpected result: %+v", processed)
	}
}
