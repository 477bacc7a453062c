package projects

import (
	"context"
	"fmt"
	"sync"

	"erpdesk/internal/store"
)

// Board is the Kanban view over the task store. A move is applied
// optimistically through a pending overlay: the overlay shows the task in
// its target column while the status PATCH is in flight, commits by
// merging the server's response, and on failure is simply dropped, which
// restores the pre-move snapshot before the board refetches server truth.
type Board struct {
	svc   *Service
	tasks *store.Store[Task]

	mu      sync.Mutex
	overlay map[string]string
}

func NewBoard(svc *Service, tasks *store.Store[Task]) *Board {
	return &Board{svc: svc, tasks: tasks, overlay: make(map[string]string)}
}

// Columns groups the cached tasks into the four fixed columns, with
// pending moves already reflected.
func (b *Board) Columns() map[string][]Task {
	b.mu.Lock()
	overlay := make(map[string]string, len(b.overlay))
	for id, status := range b.overlay {
		overlay[id] = status
	}
	b.mu.Unlock()

	columns := make(map[string][]Task, len(Columns))
	for _, column := range Columns {
		columns[column] = nil
	}
	for _, task := range b.tasks.Items() {
		if status, ok := overlay[task.ID]; ok {
			task.Status = status
		}
		if !ValidStatus(task.Status) {
			continue
		}
		columns[task.Status] = append(columns[task.Status], task)
	}
	return columns
}

// Pending reports whether the task has a move in flight.
func (b *Board) Pending(taskID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.overlay[taskID]
	return ok
}

// Move drags a task into another column. On failure the optimistic view
// is discarded and the task list is refetched to resynchronize.
func (b *Board) Move(ctx context.Context, taskID, toStatus string) error {
	if !ValidStatus(toStatus) {
		return fmt.Errorf("unknown column %q", toStatus)
	}
	if _, ok := b.tasks.Get(taskID); !ok {
		return fmt.Errorf("unknown task %q", taskID)
	}

	b.mu.Lock()
	b.overlay[taskID] = toStatus
	b.mu.Unlock()

	_, err := b.tasks.Apply(ctx, func(ctx context.Context) (Task, error) {
		return b.svc.UpdateTaskStatus(ctx, taskID, toStatus)
	})

	b.mu.Lock()
	delete(b.overlay, taskID)
	b.mu.Unlock()

	if err != nil {
		_ = b.tasks.Refetch(ctx, b.svc.ListTasks)
		return err
	}
	return nil
}
