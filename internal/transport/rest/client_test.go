package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

type fakeSession struct {
	token   string
	cleared bool
}

func (s *fakeSession) Token() (string, bool) { return s.token, s.token != "" }

func (s *fakeSession) Clear() error {
	s.cleared = true
	s.token = ""
	return nil
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestGetAttachesBearerAndDecodesEnvelope(t *testing.T) {
	session := &fakeSession{token: signedToken(t, time.Hour)}

	router := chi.NewRouter()
	router.Get("/api/v1/hrm/employees", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+session.token {
			t.Errorf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"e1","firstName":"Ada"}]}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, session)

	var employees []struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
	}
	if err := client.Get(context.Background(), "/hrm/employees", &employees); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(employees) != 1 || employees[0].ID != "e1" {
		t.Fatalf("unexpected payload: %+v", employees)
	}
}

func TestUnauthorizedPurgesSessionAndFiresHook(t *testing.T) {
	session := &fakeSession{token: signedToken(t, time.Hour)}

	router := chi.NewRouter()
	router.Get("/api/v1/hrm/employees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, session)
	redirected := false
	client.OnUnauthorized(func() { redirected = true })

	err := client.Get(context.Background(), "/hrm/employees", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !session.cleared {
		t.Fatal("expected session to be purged")
	}
	if !redirected {
		t.Fatal("expected unauthorized hook to fire")
	}
}

func TestExpiredTokenFailsWithoutRoundTrip(t *testing.T) {
	session := &fakeSession{token: signedToken(t, -time.Minute)}

	called := false
	router := chi.NewRouter()
	router.Get("/api/v1/hrm/employees", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, session)

	err := client.Get(context.Background(), "/hrm/employees", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if called {
		t.Fatal("expected no request for an expired token")
	}
	if !session.cleared {
		t.Fatal("expected session to be purged")
	}
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/v1/hrm/employees", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"validation_failed","message":"email is required"}}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, &fakeSession{})

	err := client.Post(context.Background(), "/hrm/employees", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "validation_failed" || apiErr.Message != "email is required" {
		t.Fatalf("error payload not passed through: %+v", apiErr)
	}
}

func TestMutatingCallsCarryIdempotencyKey(t *testing.T) {
	var postKey, getKey string
	router := chi.NewRouter()
	router.Post("/api/v1/hrm/departments", func(w http.ResponseWriter, r *http.Request) {
		postKey = r.Header.Get("Idempotency-Key")
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	router.Get("/api/v1/hrm/departments", func(w http.ResponseWriter, r *http.Request) {
		getKey = r.Header.Get("Idempotency-Key")
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, &fakeSession{})
	_ = client.Post(context.Background(), "/hrm/departments", map[string]string{"name": "Ops"}, nil)
	_ = client.Get(context.Background(), "/hrm/departments", nil)

	if postKey == "" {
		t.Fatal("expected idempotency key on POST")
	}
	if getKey != "" {
		t.Fatal("expected no idempotency key on GET")
	}
}

func TestPostMultipartCarriesDocuments(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/v1/frm/expenses", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if r.FormValue("title") != "Team lunch" {
			t.Errorf("missing form field, got %q", r.FormValue("title"))
		}
		files := r.MultipartForm.File["documents"]
		if len(files) != 1 || files[0].Filename != "receipt.pdf" {
			t.Errorf("unexpected documents: %+v", files)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"x1"}}`))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, &fakeSession{})

	var created struct {
		ID string `json:"id"`
	}
	err := client.PostMultipart(context.Background(), "/frm/expenses",
		map[string]string{"title": "Team lunch"},
		[]Attachment{{Name: "receipt.pdf", Content: []byte("%PDF-1.4")}},
		&created)
	if err != nil {
		t.Fatalf("post multipart: %v", err)
	}
	if created.ID != "x1" {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestDownloadWritesBlob(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/hrm/payroll/p1/payslip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 payslip"))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	client := NewClient(ts.URL, 10*time.Second, &fakeSession{})
	dest := filepath.Join(t.TempDir(), "payslip.pdf")

	if err := client.Download(context.Background(), "/hrm/payroll/p1/payslip", dest); err != nil {
		t.Fatalf("download: %v", err)
	}
	blob, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(blob) != "%PDF-1.4 payslip" {
		t.Fatalf("unexpected blob: %q", blob)
	}
}
