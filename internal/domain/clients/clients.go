// Package clients covers client management: a plain CRUD entity plus a
// client-side join against the projects store.
package clients

import (
	"context"

	"erpdesk/internal/domain/projects"
	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/store"
	"erpdesk/internal/transport/rest"
)

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (c Client) EntityID() string { return c.ID }

// WithProjects is the derived display shape: a client plus the projects
// referencing it.
type WithProjects struct {
	Client
	Projects []projects.Project `json:"projects"`
}

// Join attaches each client's projects by clientId. Purely local; no
// extra request is made.
func Join(list []Client, all []projects.Project) []WithProjects {
	byClient := make(map[string][]projects.Project)
	for _, project := range all {
		byClient[project.ClientID] = append(byClient[project.ClientID], project)
	}
	out := make([]WithProjects, 0, len(list))
	for _, client := range list {
		out = append(out, WithProjects{Client: client, Projects: byClient[client.ID]})
	}
	return out
}

type Service struct {
	client *rest.Client
}

func NewService(client *rest.Client) *Service {
	return &Service{client: client}
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	var out []Client
	err := s.client.Get(ctx, "/clients", &out)
	return out, err
}

func (s *Service) Get(ctx context.Context, id string) (Client, error) {
	var out Client
	err := s.client.Get(ctx, "/clients/"+id, &out)
	return out, err
}

func (s *Service) Create(ctx context.Context, c Client) (Client, error) {
	var out Client
	err := s.client.Post(ctx, "/clients", c, &out)
	return out, err
}

func (s *Service) Update(ctx context.Context, c Client) (Client, error) {
	var out Client
	err := s.client.Put(ctx, "/clients/"+c.ID, c, &out)
	return out, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/clients/"+id)
}

func NewStore(local *localstore.Store) *store.Store[Client] {
	return store.New[Client]("clients.clients", local)
}
