package devserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erpdesk/internal/domain/clients"
	"erpdesk/internal/domain/projects"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]projects.Project(nil), s.state.projectList...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	project, idx := findByID(s.state.projectList, chi.URLParam(r, "id"))
	s.state.mu.Unlock()
	if idx < 0 {
		fail(w, r, http.StatusNotFound, "not_found", "project not found")
		return
	}
	success(w, r, project)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var project projects.Project
	if err := decode(r, &project); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid project payload")
		return
	}
	if project.Name == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "name is required")
		return
	}
	s.state.mu.Lock()
	project.ID = uuid.NewString()
	if project.Status == "" {
		project.Status = projects.ProjectPlanning
	}
	s.state.projectList = append(s.state.projectList, project)
	s.state.mu.Unlock()
	created(w, r, project)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var project projects.Project
	if err := decode(r, &project); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid project payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.projectList, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "project not found")
		return
	}
	project.ID = id
	s.state.projectList[idx] = project
	s.state.mu.Unlock()
	success(w, r, project)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.projectList, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "project not found")
		return
	}
	s.state.projectList = removeAt(s.state.projectList, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]projects.Task(nil), s.state.tasks...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var task projects.Task
	if err := decode(r, &task); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid task payload")
		return
	}
	if task.Title == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "title is required")
		return
	}
	s.state.mu.Lock()
	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = projects.TaskTodo
	}
	if !projects.ValidStatus(task.Status) {
		s.state.mu.Unlock()
		fail(w, r, http.StatusBadRequest, "validation_failed", "unknown task status")
		return
	}
	s.state.tasks = append(s.state.tasks, task)
	s.state.mu.Unlock()
	created(w, r, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var task projects.Task
	if err := decode(r, &task); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid task payload")
		return
	}
	if !projects.ValidStatus(task.Status) {
		fail(w, r, http.StatusBadRequest, "validation_failed", "unknown task status")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	existing, idx := findByID(s.state.tasks, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "task not found")
		return
	}
	task.ID = id
	task.Comments = existing.Comments
	task.Attachments = existing.Attachments
	s.state.tasks[idx] = task
	s.state.mu.Unlock()
	success(w, r, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.tasks, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "task not found")
		return
	}
	s.state.tasks = removeAt(s.state.tasks, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}

func (s *Server) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid status payload")
		return
	}
	if !projects.ValidStatus(req.Status) {
		fail(w, r, http.StatusBadRequest, "validation_failed", "unknown task status")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	task, idx := findByID(s.state.tasks, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "task not found")
		return
	}
	task.Status = req.Status
	s.state.tasks[idx] = task
	s.state.mu.Unlock()
	success(w, r, task)
}

func (s *Server) addTaskComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body string `json:"body"`
	}
	if err := decode(r, &req); err != nil || req.Body == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "comment body is required")
		return
	}
	userID, _ := r.Context().Value(ctxKeyUserID).(string)
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	task, idx := findByID(s.state.tasks, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "task not found")
		return
	}
	task.Comments = append(task.Comments, projects.Comment{
		ID:        uuid.NewString(),
		AuthorID:  userID,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	})
	s.state.tasks[idx] = task
	s.state.mu.Unlock()
	success(w, r, task)
}

func (s *Server) addTaskAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	files := r.MultipartForm.File["documents"]
	if len(files) == 0 {
		fail(w, r, http.StatusBadRequest, "validation_failed", "a document is required")
		return
	}

	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	task, idx := findByID(s.state.tasks, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "task not found")
		return
	}
	for _, header := range files {
		fileID := uuid.NewString()
		task.Attachments = append(task.Attachments, projects.FileRef{
			ID:   fileID,
			Name: header.Filename,
			URL:  "/files/" + fileID,
		})
	}
	s.state.tasks[idx] = task
	s.state.mu.Unlock()
	success(w, r, task)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	out := append([]clients.Client(nil), s.state.clientList...)
	s.state.mu.Unlock()
	success(w, r, out)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	client, idx := findByID(s.state.clientList, chi.URLParam(r, "id"))
	s.state.mu.Unlock()
	if idx < 0 {
		fail(w, r, http.StatusNotFound, "not_found", "client not found")
		return
	}
	success(w, r, client)
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var client clients.Client
	if err := decode(r, &client); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid client payload")
		return
	}
	if client.Name == "" {
		fail(w, r, http.StatusBadRequest, "validation_failed", "name is required")
		return
	}
	s.state.mu.Lock()
	client.ID = uuid.NewString()
	if client.Status == "" {
		client.Status = "active"
	}
	s.state.clientList = append(s.state.clientList, client)
	s.state.mu.Unlock()
	created(w, r, client)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	var client clients.Client
	if err := decode(r, &client); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid client payload")
		return
	}
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.clientList, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "client not found")
		return
	}
	client.ID = id
	s.state.clientList[idx] = client
	s.state.mu.Unlock()
	success(w, r, client)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.state.mu.Lock()
	_, idx := findByID(s.state.clientList, id)
	if idx < 0 {
		s.state.mu.Unlock()
		fail(w, r, http.StatusNotFound, "not_found", "client not found")
		return
	}
	s.state.clientList = removeAt(s.state.clientList, idx)
	s.state.mu.Unlock()
	success(w, r, map[string]string{"id": id})
}
