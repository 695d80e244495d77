package services

import (
	"errors"
	"strings"

	"neotech/internal/domain"
	"neotech/internal/repos"
	"neotech/internal/sessions"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already in use")
)

type AuthService struct {
	Users    *repos.UserRepo
	Sessions *sessions.Store
}

func NewAuthService(users *repos.UserRepo, store *sessions.Store) *AuthService {
	return &AuthService{Users: users, Sessions: store}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Sessions.BindUser(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates a customer account. A duplicate email surfaces as
// ErrEmailTaken; the unique index is the source of truth.
func (s *AuthService) Register(email, password string) (int64, error) {
	id, err := s.Users.Create(email, mustHash(password))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "unique") {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func mustHash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(h)
}

func (s *AuthService) Logout(sid string) error {
	return s.Sessions.UnbindUser(sid)
}

// CurrentUser resolves the logged-in user for a session, if any.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return nil, err
	}
	if sess.UserID == nil {
		return nil, nil
	}
	return s.Users.ByID(*sess.UserID)
}
