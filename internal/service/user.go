package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"itexe-marketplace-api/internal/model"
	"itexe-marketplace-api/internal/repository"
)

// SessionReader exposes the current authenticated identity to collaborators
// that only need to know who, if anyone, is signed in.
type SessionReader interface {
	// Current returns a copy of the authenticated identity, or nil for an
	// anonymous session.
	Current() *model.Identity
}

// UserService owns the identity roster and the authenticated session.
// The roster and the session are persisted on every mutation; startup falls
// back to the seed roster and an anonymous session when the persisted state
// is absent or unreadable.
type UserService struct {
	mu       sync.RWMutex
	repo     repository.StateRepository
	notifier Notifier
	users    []model.Identity
	current  *model.Identity
}

// NewUserService creates the user service and restores persisted state.
// Never fails: corruption and absence both degrade to seed data.
func NewUserService(ctx context.Context, repo repository.StateRepository, notifier Notifier) *UserService {
	s := &UserService{repo: repo, notifier: notifier}
	s.users = s.loadRoster(ctx)
	s.current = s.loadSession(ctx)
	return s
}

// loadRoster reads the persisted roster, falling back to the seed roster.
func (s *UserService) loadRoster(ctx context.Context) []model.Identity {
	data, err := s.repo.Get(ctx, repository.KeyUsers)
	if err != nil {
		log.Printf("[UserService] failed to read users: %v", err)
		return model.SeedIdentities()
	}
	if data == nil {
		return model.SeedIdentities()
	}

	var users []model.Identity
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("[UserService] corrupt users state, using seed data: %v", err)
		return model.SeedIdentities()
	}
	return users
}

// loadSession resolves the persisted session id against the roster.
// An id that resolves to no current identity means an anonymous session.
func (s *UserService) loadSession(ctx context.Context) *model.Identity {
	data, err := s.repo.Get(ctx, repository.KeyCurrentUser)
	if err != nil {
		log.Printf("[UserService] failed to read session: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		log.Printf("[UserService] corrupt session state, starting anonymous: %v", err)
		return nil
	}

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user
		}
	}
	return nil
}

// Login authenticates the session. Demo semantics: the credential is not
// verified; the first roster entry is adopted as the current identity.
// Fails only when the roster is empty.
func (s *UserService) Login(ctx context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) == 0 {
		s.notifier.Notify("Invalid credentials. Please try again.", model.NotifyError)
		return ErrInvalidCredentials
	}

	user := s.users[0]
	s.current = &user
	s.persistLocked(ctx)

	s.notifier.Notify(fmt.Sprintf("Welcome back, %s!", user.Name), model.NotifySuccess)
	return nil
}

// Logout clears the session. Always succeeds.
func (s *UserService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.persistLocked(ctx)

	s.notifier.Notify("You have been logged out.", model.NotifyInfo)
}

// Register creates a new unverified identity and signs it in. Fails when
// name case-insensitively collides with an existing identity; the roster is
// left untouched in that case.
func (s *UserService) Register(ctx context.Context, name, credential string) (model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			s.notifier.Notify("A user with this name already exists.", model.NotifyError)
			return model.Identity{}, ErrDuplicateName
		}
	}

	user := model.Identity{
		ID:   model.NextIdentityID(s.users),
		Name: name,
		// New users are not verified by default
		IsVerified: false,
	}
	s.users = append(s.users, user)
	s.current = &user
	s.persistLocked(ctx)

	s.notifier.Notify(fmt.Sprintf("Welcome to IT.exe, %s! Your account is created.", name), model.NotifySuccess)
	return user, nil
}

// Current returns a copy of the authenticated identity, or nil.
func (s *UserService) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Users returns a copy of the identity roster.
func (s *UserService) Users() []model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Identity, len(s.users))
	copy(result, s.users)
	return result
}

// persistLocked writes the roster and the session back to storage.
// Write failures are logged and swallowed; persistence is best-effort.
func (s *UserService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.users)
	if err != nil {
		log.Printf("[UserService] failed to encode users: %v", err)
	} else if err := s.repo.Set(ctx, repository.KeyUsers, data); err != nil {
		log.Printf("[UserService] failed to persist users: %v", err)
	}

	if s.current == nil {
		if err := s.repo.Delete(ctx, repository.KeyCurrentUser); err != nil {
			log.Printf("[UserService] failed to clear session: %v", err)
		}
		return
	}

	id, _ := json.Marshal(s.current.ID)
	if err := s.repo.Set(ctx, repository.KeyCurrentUser, id); err != nil {
		log.Printf("[UserService] failed to persist session: %v", err)
	}
}

// Ensure UserService implements SessionReader
var _ SessionReader = (*UserService)(nil)
