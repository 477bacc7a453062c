package projects

import (
	"context"

	"erpdesk/internal/transport/rest"
)

type Service struct {
	client *rest.Client
}

func NewService(client *rest.Client) *Service {
	return &Service{client: client}
}

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := s.client.Get(ctx, "/projects", &out)
	return out, err
}

func (s *Service) GetProject(ctx context.Context, id string) (Project, error) {
	var out Project
	err := s.client.Get(ctx, "/projects/"+id, &out)
	return out, err
}

func (s *Service) CreateProject(ctx context.Context, project Project) (Project, error) {
	var out Project
	err := s.client.Post(ctx, "/projects", project, &out)
	return out, err
}

func (s *Service) UpdateProject(ctx context.Context, project Project) (Project, error) {
	var out Project
	err := s.client.Put(ctx, "/projects/"+project.ID, project, &out)
	return out, err
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/projects/"+id)
}

func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := s.client.Get(ctx, "/tasks", &out)
	return out, err
}

func (s *Service) CreateTask(ctx context.Context, task Task) (Task, error) {
	var out Task
	err := s.client.Post(ctx, "/tasks", task, &out)
	return out, err
}

func (s *Service) UpdateTask(ctx context.Context, task Task) (Task, error) {
	var out Task
	err := s.client.Put(ctx, "/tasks/"+task.ID, task, &out)
	return out, err
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/tasks/"+id)
}

type statusUpdate struct {
	Status string `json:"status"`
}

// UpdateTaskStatus is the single call behind a Kanban drag-and-drop.
func (s *Service) UpdateTaskStatus(ctx context.Context, id, status string) (Task, error) {
	var out Task
	err := s.client.Patch(ctx, "/tasks/"+id+"/status", statusUpdate{Status: status}, &out)
	return out, err
}

type commentRequest struct {
	Body string `json:"body"`
}

func (s *Service) AddComment(ctx context.Context, taskID, body string) (Task, error) {
	var out Task
	err := s.client.Post(ctx, "/tasks/"+taskID+"/comments", commentRequest{Body: body}, &out)
	return out, err
}

func (s *Service) AddAttachment(ctx context.Context, taskID string, doc rest.Attachment) (Task, error) {
	var out Task
	err := s.client.PostMultipart(ctx, "/tasks/"+taskID+"/attachments", nil, []rest.Attachment{doc}, &out)
	return out, err
}
