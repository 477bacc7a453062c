// Package auth holds the single session store and the login/logout
// service. The backend's login contract is documented here once: the
// envelope's data field carries {token, user} at its root.
package auth

import (
	"context"

	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/transport/rest"
)

const (
	tokenKey = "auth.token"
	userKey  = "auth.user"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Session is the persisted auth state. It satisfies rest.Session so the
// HTTP client can read the token and purge everything on a 401.
type Session struct {
	local *localstore.Store
}

func NewSession(local *localstore.Store) *Session {
	return &Session{local: local}
}

func (s *Session) Token() (string, bool) {
	var token string
	found, err := s.local.Get(tokenKey, &token)
	if err != nil || !found || token == "" {
		return "", false
	}
	return token, true
}

func (s *Session) CurrentUser() (User, bool) {
	var user User
	found, err := s.local.Get(userKey, &user)
	if err != nil || !found {
		return User{}, false
	}
	return user, true
}

func (s *Session) save(token string, user User) error {
	if err := s.local.Put(tokenKey, token); err != nil {
		return err
	}
	return s.local.Put(userKey, user)
}

// Clear purges the whole local store, domain snapshots included. Session
// state and cached collections live or die together.
func (s *Session) Clear() error {
	return s.local.Clear()
}

type Service struct {
	client  *rest.Client
	session *Session
}

func NewService(client *rest.Client, session *Session) *Service {
	return &Service{client: client, session: session}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	var resp loginResponse
	err := s.client.Post(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return User{}, err
	}
	if err := s.session.save(resp.Token, resp.User); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Logout tells the backend, then purges local state regardless of the
// call's outcome.
func (s *Service) Logout(ctx context.Context) error {
	_ = s.client.Post(ctx, "/auth/logout", nil, nil)
	return s.session.Clear()
}

func (s *Service) Authenticated() bool {
	_, ok := s.session.Token()
	return ok
}
