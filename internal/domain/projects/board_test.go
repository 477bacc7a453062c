package projects

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"erpdesk/internal/store"
	"erpdesk/internal/transport/rest"
)

func boardFixture(t *testing.T, patchHandler http.HandlerFunc, refetches *atomic.Int32) (*Board, *store.Store[Task]) {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		if refetches != nil {
			refetches.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"t1","title":"Ship invoices","status":"todo"},
			{"id":"t2","title":"Fix login","status":"in-progress"}
		]}`))
	})
	router.Patch("/api/v1/tasks/{id}/status", patchHandler)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	client := rest.NewClient(ts.URL, 10*time.Second, nil)
	svc := NewService(client)
	tasks := store.New[Task]("projects.tasks", nil)
	if err := tasks.Fetch(context.Background(), svc.ListTasks); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	return NewBoard(svc, tasks), tasks
}

func TestMoveCommitsServerResponse(t *testing.T) {
	board, tasks := boardFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"t1","title":"Ship invoices","status":"done"}}`))
	}, nil)

	if err := board.Move(context.Background(), "t1", TaskDone); err != nil {
		t.Fatalf("move: %v", err)
	}

	moved, ok := tasks.Get("t1")
	if !ok || moved.Status != TaskDone {
		t.Fatalf("expected committed move, got %+v", moved)
	}
	if board.Pending("t1") {
		t.Fatal("pending tag must clear after commit")
	}

	columns := board.Columns()
	if len(columns[TaskDone]) != 1 || len(columns[TaskTodo]) != 0 {
		t.Fatalf("unexpected columns: %+v", columns)
	}
}

func TestMoveFailureRollsBackAndRefetches(t *testing.T) {
	var refetches atomic.Int32
	board, tasks := boardFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"internal","message":"status update failed"}}`))
	}, &refetches)

	// Initial seed counts as one fetch.
	before := refetches.Load()

	if err := board.Move(context.Background(), "t1", TaskDone); err == nil {
		t.Fatal("expected move to fail")
	}

	if refetches.Load() != before+1 {
		t.Fatalf("expected a reconciliation refetch, got %d extra", refetches.Load()-before)
	}

	task, ok := tasks.Get("t1")
	if !ok || task.Status != TaskTodo {
		t.Fatalf("expected rollback to server truth, got %+v", task)
	}
	if board.Pending("t1") {
		t.Fatal("pending tag must clear after rollback")
	}
}

func TestMoveRejectsUnknownColumnAndTask(t *testing.T) {
	board, _ := boardFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, nil)

	if err := board.Move(context.Background(), "t1", "archived"); err == nil {
		t.Fatal("expected error for unknown column")
	}
	if err := board.Move(context.Background(), "ghost", TaskDone); err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestColumnsGroupByStatus(t *testing.T) {
	board, _ := boardFixture(t, func(w http.ResponseWriter, r *http.Request) {}, nil)

	columns := board.Columns()
	if len(columns) != len(Columns) {
		t.Fatalf("expected %d columns, got %d", len(Columns), len(columns))
	}
	if len(columns[TaskTodo]) != 1 || columns[TaskTodo][0].ID != "t1" {
		t.Fatalf("unexpected todo column: %+v", columns[TaskTodo])
	}
	if len(columns[TaskInProgress]) != 1 || columns[TaskInProgress][0].ID != "t2" {
		t.Fatalf("unexpected in-progress column: %+v", columns[TaskInProgress])
	}
}
