package projects

import (
	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/store"
)

type Stores struct {
	Projects *store.Store[Project]
	Tasks    *store.Store[Task]
}

func NewStores(local *localstore.Store) *Stores {
	return &Stores{
		Projects: store.New[Project]("projects.projects", local),
		Tasks:    store.New[Task]("projects.tasks", local),
	}
}

func (s *Stores) Load() error {
	if err := s.Projects.Load(); err != nil {
		return err
	}
	return s.Tasks.Load()
}
