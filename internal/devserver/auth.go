package devserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"erpdesk/internal/domain/auth"
)

type claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func generateToken(secret string, c claims, ttl time.Duration) (string, error) {
	c.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, tokenString string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return parsed, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid login payload")
		return
	}

	s.state.mu.Lock()
	var found *account
	for i := range s.state.accounts {
		if s.state.accounts[i].Email == req.Email {
			found = &s.state.accounts[i]
			break
		}
	}
	s.state.mu.Unlock()

	if found == nil || checkPassword(found.PasswordHash, req.Password) != nil {
		fail(w, r, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}

	token, err := generateToken(s.cfg.JWTSecret, claims{
		UserID: found.ID,
		Email:  found.Email,
		Role:   found.Role,
	}, s.cfg.TokenTTL)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "internal", "token generation failed")
		return
	}

	success(w, r, map[string]any{
		"token": token,
		"user": auth.User{
			ID:        found.ID,
			FirstName: found.FirstName,
			LastName:  found.LastName,
			Email:     found.Email,
			Role:      found.Role,
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout is an acknowledgement.
	success(w, r, map[string]string{"status": "logged_out"})
}

func (s *Server) seedAdmin(email, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	s.state.accounts = append(s.state.accounts, account{
		ID:           uuid.NewString(),
		FirstName:    "System",
		LastName:     "Admin",
		Email:        email,
		Role:         "admin",
		PasswordHash: hash,
	})
	return nil
}
