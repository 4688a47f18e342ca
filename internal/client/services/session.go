// Package services contains the application services for the hackline
// client. This file defines the session service: login, signup, restore from
// the persisted token, logout, and favorite toggling.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/hackline/internal/client/api"
	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/client/repositories/session"
	"github.com/dmitrijs2005/hackline/internal/client/token"
	"github.com/dmitrijs2005/hackline/internal/logging"
)

// ErrToggleInFlight is returned when a favorite toggle for a story is
// requested while an earlier toggle for the same story is still waiting for
// the server. Rejecting the second toggle keeps the cached favorites list in
// step with the authoritative one.
var ErrToggleInFlight = errors.New("favorite toggle already in progress")

// SessionService manages the authenticated identity.
//
// Contract:
//   - Login/Signup: authenticate or create an account and persist the
//     session record. Signup is a single create call; a taken username is
//     reported as api.ErrAlreadyExists.
//   - Restore: rebuild the user from the persisted token. Returns (nil, nil)
//     when no usable session exists; an error only for transient failures.
//   - Logout: clear the persisted session.
//   - AddFavorite/RemoveFavorite: toggle a favorite. The in-memory list is
//     patched only after the remote call succeeds.
//
// All methods honor context cancellation.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	AddFavorite(ctx context.Context, user *models.User, story models.Story) error
	RemoveFavorite(ctx context.Context, user *models.User, storyID string) error
}

type sessionService struct {
	client api.Client
	store  session.Repository
	log    logging.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewSessionService constructs a SessionService bound to the given API
// client and session store.
func NewSessionService(client api.Client, store session.Repository, log logging.Logger) SessionService {
	return &sessionService{
		client:   client,
		store:    store,
		log:      log.With("component", "session"),
		inflight: make(map[string]struct{}),
	}
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, u)
	return u, nil
}

func (s *sessionService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	u, err := s.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, u)
	return u, nil
}

// persist writes the session record. A failing store is not fatal: the user
// stays logged in for this run and simply will not be restored next time.
func (s *sessionService) persist(ctx context.Context, u *models.User) {
	err := s.store.Save(ctx, session.Record{Token: u.Token, Username: u.Username})
	if err != nil {
		s.log.Warn(ctx, "session not persisted", "error", err)
	}
}

// Restore rebuilds the user from the persisted session record.
//
// A missing record, a token whose exp claim has already passed, and a server
// that rejects the token (unauthorized or unknown user) all resolve to
// (nil, nil): the logged-out state, not an error. Stale records are cleared.
// Transient failures (server unreachable) are returned so the caller can
// tell the user, without discarding the stored session.
func (s *sessionService) Restore(ctx context.Context) (*models.User, error) {
	rec, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session store unavailable", "error", err)
		return nil, nil
	}
	if rec == nil {
		return nil, nil
	}

	if token.Expired(rec.Token, time.Now()) {
		s.discard(ctx)
		return nil, nil
	}

	u, err := s.client.User(ctx, rec.Token, rec.Username)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNotFound) {
			s.discard(ctx)
			return nil, nil
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return u, nil
}

func (s *sessionService) discard(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "stale session not cleared", "error", err)
	}
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *sessionService) AddFavorite(ctx context.Context, user *models.User, story models.Story) error {
	if user.IsFavorite(story.StoryID) {
		return nil
	}
	if !s.begin(story.StoryID) {
		return ErrToggleInFlight
	}
	defer s.end(story.StoryID)

	if err := s.client.AddFavorite(ctx, user.Token, user.Username, story.StoryID); err != nil {
		return err
	}
	user.AddFavorite(story)
	return nil
}

func (s *sessionService) RemoveFavorite(ctx context.Context, user *models.User, storyID string) error {
	if !user.IsFavorite(storyID) {
		return nil
	}
	if !s.begin(storyID) {
		return ErrToggleInFlight
	}
	defer s.end(storyID)

	err := s.client.RemoveFavorite(ctx, user.Token, user.Username, storyID)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}
	user.RemoveFavorite(storyID)
	return nil
}

func (s *sessionService) begin(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[storyID]; busy {
		return false
	}
	s.inflight[storyID] = struct{}{}
	return true
}

func (s *sessionService) end(storyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, storyID)
}
