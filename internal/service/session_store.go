package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

// Session storage keys, one set per session id.
const (
	KeyAuthToken = "auth_token"
	KeyUser      = "user"
	KeyDevUser   = "dev_user"
	KeyLastError = "last_error"
)

// ErrCorruptSession marks stored session data that cannot be decoded.
var ErrCorruptSession = errors.New("session: stored user is malformed")

// keyValueStore is satisfied by repository.SessionRepository and
// repository.MemoryStore.
type keyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SessionStore persists the signed-in state of one browser session.
type SessionStore interface {
	Get(ctx context.Context, sid string) (*models.Session, error)
	Set(ctx context.Context, sid, token string, user models.SessionUser) error
	SetDevUser(ctx context.Context, sid string, user models.SessionUser) error
	SetLastError(ctx context.Context, sid, message string) error
	Clear(ctx context.Context, sid string) error
}

// KVSessionStore implements SessionStore on a key-value store.
type KVSessionStore struct {
	kv     keyValueStore
	prefix string
	ttl    time.Duration
}

// NewKVSessionStore builds a session store writing keys as
// "<prefix>:<sid>:<name>".
func NewKVSessionStore(kv keyValueStore, prefix string, ttl time.Duration) *KVSessionStore {
	if prefix == "" {
		prefix = "session"
	}
	return &KVSessionStore{kv: kv, prefix: strings.TrimSuffix(prefix, ":"), ttl: ttl}
}

func (s *KVSessionStore) key(sid, name string) string {
	return s.prefix + ":" + sid + ":" + name
}

// Get returns ErrSessionNotFound when no token is stored and wraps
// ErrCorruptSession when the stored user cannot be decoded.
func (s *KVSessionStore) Get(ctx context.Context, sid string) (*models.Session, error) {
	token, err := s.kv.Get(ctx, s.key(sid, KeyAuthToken))
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return nil, appErrors.ErrSessionNotFound
		}
		return nil, err
	}
	session := &models.Session{ID: sid, Token: token}

	rawUser, err := s.kv.Get(ctx, s.key(sid, KeyUser))
	switch {
	case errors.Is(err, appErrors.ErrCacheMiss):
		return nil, appErrors.ErrSessionNotFound
	case err != nil:
		return nil, err
	}
	var user models.SessionUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	session.User = &user

	rawDev, err := s.kv.Get(ctx, s.key(sid, KeyDevUser))
	if err == nil {
		var dev models.SessionUser
		if err := json.Unmarshal([]byte(rawDev), &dev); err != nil {
			return nil, fmt.Errorf("%w: dev user: %v", ErrCorruptSession, err)
		}
		session.DevUser = &dev
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		return nil, err
	}

	lastErr, err := s.kv.Get(ctx, s.key(sid, KeyLastError))
	switch {
	case err == nil:
		session.LastError = lastErr
	case !errors.Is(err, appErrors.ErrCacheMiss):
		return nil, err
	}
	return session, nil
}

// Set stores token and user.
func (s *KVSessionStore) Set(ctx context.Context, sid, token string, user models.SessionUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.kv.Set(ctx, s.key(sid, KeyAuthToken), token, s.ttl); err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(sid, KeyUser), string(payload), s.ttl)
}

// SetDevUser stores the development login snapshot.
func (s *KVSessionStore) SetDevUser(ctx context.Context, sid string, user models.SessionUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode dev user: %w", err)
	}
	return s.kv.Set(ctx, s.key(sid, KeyDevUser), string(payload), s.ttl)
}

// SetLastError records the most recent failed update. An empty message
// removes it. The entry expires with the session.
func (s *KVSessionStore) SetLastError(ctx context.Context, sid, message string) error {
	if message == "" {
		return s.kv.Delete(ctx, s.key(sid, KeyLastError))
	}
	return s.kv.Set(ctx, s.key(sid, KeyLastError), message, s.ttl)
}

// Clear removes every key of the session.
func (s *KVSessionStore) Clear(ctx context.Context, sid string) error {
	return s.kv.Delete(ctx,
		s.key(sid, KeyAuthToken),
		s.key(sid, KeyUser),
		s.key(sid, KeyDevUser),
		s.key(sid, KeyLastError),
	)
}
