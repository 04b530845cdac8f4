package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tipsybean/tipsybean-backend-go/metrics"
	"github.com/tipsybean/tipsybean-backend-go/models"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// AuthService owns registration, login and the session record.
type AuthService struct {
	users    store.UserStore
	sessions store.SessionStore
	carts    store.CartStore
}

func NewAuthService(users store.UserStore, sessions store.SessionStore, carts store.CartStore) *AuthService {
	return &AuthService{users: users, sessions: sessions, carts: carts}
}

// Signup registers a new user. Email uniqueness is case-insensitive: the
// address is lowercased before the write and the store enforces the rest.
func (s *AuthService) Signup(ctx context.Context, firstName, lastName, email, password string) (models.User, error) {
	if err := ValidateFirstName(firstName, true); err != nil {
		return models.User{}, err
	}
	if err := ValidateLastName(lastName, true); err != nil {
		return models.User{}, err
	}
	if err := ValidateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.User{}, &ConflictError{Message: "An account with this email already exists"}
		}
		return models.User{}, err
	}

	metrics.Signups.Inc()
	user.Password = ""
	return user, nil
}

// Login distinguishes an unknown email from a bad password so the HTTP
// layer can answer 404 and 401 respectively.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, &NotFoundError{Resource: "user", ID: email}
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if _, err := s.CreateSession(ctx, user.Email, user.FirstName, user.LastName); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// CreateSession writes the authenticated-identity record to session
// scope, overwriting any existing session for the same user.
func (s *AuthService) CreateSession(ctx context.Context, email, firstName, lastName string) (models.Session, error) {
	session := models.Session{
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		LoginTime:       time.Now(),
		IsAuthenticated: true,
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (s *AuthService) Session(ctx context.Context, email string) (*models.Session, error) {
	return s.sessions.GetSession(ctx, email)
}

func (s *AuthService) IsLoggedIn(ctx context.Context, email string) (bool, error) {
	session, err := s.sessions.GetSession(ctx, email)
	if err != nil {
		return false, err
	}
	return session != nil && session.IsAuthenticated, nil
}

// Logout empties the cart and removes the session record. Idempotent.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	if err := s.carts.ClearCart(ctx, email); err != nil {
		return err
	}
	return s.sessions.DeleteSession(ctx, email)
}
