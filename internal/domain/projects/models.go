package projects

import "time"

// Project statuses.
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectOnHold    = "on-hold"
	ProjectCompleted = "completed"
	ProjectCancelled = "cancelled"
)

// Task statuses, the four Kanban columns.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskOnHold     = "on-hold"
	TaskDone       = "done"
)

// Columns lists the Kanban columns in board order.
var Columns = []string{TaskTodo, TaskInProgress, TaskOnHold, TaskDone}

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ClientID    string     `json:"clientId"`
	Team        []string   `json:"team"`
	Status      string     `json:"status"`
	Budget      float64    `json:"budget"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

func (p Project) EntityID() string { return p.ID }

type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeId"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
	Attachments []FileRef  `json:"attachments,omitempty"`
}

func (t Task) EntityID() string { return t.ID }

func ValidStatus(status string) bool {
	for _, column := range Columns {
		if column == status {
			return true
		}
	}
	return false
}
