package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ahoy-games/broadside/internal/dependencies/clock"
	"github.com/ahoy-games/broadside/internal/dependencies/random"
	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session represents an authenticated session. The embedded Actor is what
// the mutation gateway hands to the engine.
type Session struct {
	Token     string
	ActorID   model.ActorID
	Actor     model.Actor
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service resolves identities and manages sessions. It is the sole producer
// of the Actor values the engine consumes.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CreateGuestActor creates an anonymous actor and session
func (s *Service) CreateGuestActor(ctx context.Context, displayName string) (*Session, error) {
	actor := &model.Actor{
		ID:          model.ActorID("a_" + s.random.ID()),
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveActor(ctx, actor); err != nil {
		return nil, err
	}

	return s.createSession(actor), nil
}

// RegisterActor creates a registered account and session
func (s *Service) RegisterActor(ctx context.Context, username, password, displayName string) (*Session, error) {
	// Check if username exists
	_, err := s.storage.GetRegisteredActorByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrActorNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	actor := &model.Actor{
		ID:          model.ActorID("a_" + s.random.ID()),
		DisplayName: displayName,
		IsGuest:     false,
		CreatedAt:   now,
	}

	registered := &model.RegisteredActor{
		ActorID:      actor.ID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveActor(ctx, actor); err != nil {
		return nil, err
	}
	if err := s.storage.SaveRegisteredActor(ctx, registered); err != nil {
		return nil, err
	}

	return s.createSession(actor), nil
}

// Login authenticates a registered actor and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	ra, err := s.storage.GetRegisteredActorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrActorNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ra.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	actor, err := s.storage.GetActor(ctx, ra.ActorID)
	if err != nil {
		return nil, err
	}

	return s.createSession(actor), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// createSession creates a new session for an actor
func (s *Service) createSession(actor *model.Actor) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     "sess_" + s.random.ID(),
		ActorID:   actor.ID,
		Actor:     *actor,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
