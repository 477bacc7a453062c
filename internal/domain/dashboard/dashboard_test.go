package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"erpdesk/internal/domain/hrm"
	"erpdesk/internal/domain/projects"
	"erpdesk/internal/transport/rest"
)

func jsonList(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":` + body + `}`))
	}
}

func TestLoadJoinsAllFetches(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/hrm/employees", jsonList(`[{"id":"e1"},{"id":"e2"}]`))
	router.Get("/api/v1/hrm/departments", jsonList(`[{"id":"d1"}]`))
	router.Get("/api/v1/hrm/positions", jsonList(`[{"id":"p1"}]`))
	router.Get("/api/v1/hrm/leaves", jsonList(`[{"id":"l1","status":"Pending"},{"id":"l2","status":"Approved"}]`))
	router.Get("/api/v1/tasks", jsonList(`[{"id":"t1","status":"todo"}]`))
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := rest.NewClient(ts.URL, 10*time.Second, nil)
	svc := NewService(hrm.NewService(client), projects.NewService(client))

	summary, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(summary.Employees) != 2 || len(summary.Departments) != 1 || len(summary.Positions) != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.PendingLeaves != 1 {
		t.Fatalf("expected one pending leave, got %d", summary.PendingLeaves)
	}
	if len(summary.Tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(summary.Tasks))
	}
}

func TestLoadAbortsOnSingleFailure(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/hrm/employees", jsonList(`[{"id":"e1"}]`))
	router.Get("/api/v1/hrm/departments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"internal","message":"boom"}}`))
	})
	router.Get("/api/v1/hrm/positions", jsonList(`[]`))
	router.Get("/api/v1/hrm/leaves", jsonList(`[]`))
	router.Get("/api/v1/tasks", jsonList(`[]`))
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := rest.NewClient(ts.URL, 10*time.Second, nil)
	svc := NewService(hrm.NewService(client), projects.NewService(client))

	summary, err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("expected the whole join to fail")
	}
	if summary.Employees != nil || summary.Tasks != nil {
		t.Fatalf("expected no partial result, got %+v", summary)
	}
}
