// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/models"
)

type subscription struct {
	id uint64
	fn func(models.AuthState)
}

// sessionStore is the concrete [SessionStore]. The persisted value under
// [store.SessionKey] is the JSON encoding of the signed-in [models.User];
// passwords are never written.
type sessionStore struct {
	verifier adapter.CredentialVerifier
	vault    store.SecureStore
	logger   *logger.Logger

	busy atomic.Bool

	mu          sync.Mutex
	state       models.AuthState
	subscribers []subscription
	nextSubID   uint64
}

// NewSessionStore returns a store in the initial loading state. Call
// LoadSession once at startup to resolve it.
func NewSessionStore(verifier adapter.CredentialVerifier, vault store.SecureStore, log *logger.Logger) SessionStore {
	return &sessionStore{
		verifier: verifier,
		vault:    vault,
		logger:   log.WithComponent("session_store"),
		state:    models.InitialAuthState(),
	}
}

func (s *sessionStore) SignIn(ctx context.Context, username, password string) (bool, error) {
	credentials := models.Credentials{Username: username, Password: password}
	if credentials.Empty() {
		return false, ErrInvalidDataProvided
	}

	if !s.acquire() {
		return false, ErrOperationInProgress
	}
	defer s.release()

	s.setLoading()

	user, err := s.verifier.Verify(ctx, credentials)
	if errors.Is(err, adapter.ErrInvalidCredentials) {
		s.logger.Info().Str("username", credentials.NormalizedUsername()).Msg("sign in rejected")
		s.setState(models.AuthState{})
		return false, nil
	}
	if err == nil {
		err = user.Validate()
	}
	if err != nil {
		s.logger.Err(err).Msg("credential verification failed")
		s.setState(models.AuthState{})
		return false, fmt.Errorf("%w: %w", ErrVerifyCredentials, err)
	}

	payload, err := json.Marshal(user)
	if err != nil {
		s.setState(models.AuthState{})
		return false, fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	if err = s.vault.Set(ctx, store.SessionKey, string(payload)); err != nil {
		s.logger.Err(err).Msg("failed to persist session")
		s.setState(models.AuthState{})
		return false, fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("signed in")
	s.setState(models.AuthState{User: &user, Authenticated: true})
	return true, nil
}

func (s *sessionStore) SignOut(ctx context.Context) error {
	if !s.acquire() {
		return ErrOperationInProgress
	}
	defer s.release()

	err := s.vault.Delete(ctx, store.SessionKey)
	s.setState(models.AuthState{})

	if err != nil {
		s.logger.Err(err).Msg("failed to delete persisted session")
		return fmt.Errorf("%w: %w", ErrDeleteSession, err)
	}

	s.logger.Info().Msg("signed out")
	return nil
}

func (s *sessionStore) LoadSession(ctx context.Context) error {
	if !s.acquire() {
		return ErrOperationInProgress
	}
	defer s.release()

	s.setLoading()

	raw, err := s.vault.Get(ctx, store.SessionKey)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		s.logger.Debug().Msg("no persisted session")
		s.setState(models.AuthState{})
		return nil
	case errors.Is(err, store.ErrCorruptedValue):
		s.logger.Warn().Err(err).Msg("persisted session is unreadable, ignoring it")
		s.setState(models.AuthState{})
		return nil
	case err != nil:
		s.logger.Err(err).Msg("failed to read persisted session")
		s.setState(models.AuthState{})
		return fmt.Errorf("%w: %w", ErrReadSession, err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err == nil {
		err = user.Validate()
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("persisted session is malformed, ignoring it")
		s.setState(models.AuthState{})
		return nil
	}

	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
	s.setState(models.AuthState{User: &user, Authenticated: true})
	return nil
}

func (s *sessionStore) State() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

func (s *sessionStore) Subscribe(fn func(models.AuthState)) func() {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *sessionStore) acquire() bool {
	return s.busy.CompareAndSwap(false, true)
}

func (s *sessionStore) release() {
	s.busy.Store(false)
}

// setLoading marks an operation as started, keeping the current identity.
func (s *sessionStore) setLoading() {
	s.mu.Lock()
	next := s.state
	s.mu.Unlock()

	next.Loading = true
	s.setState(next)
}

// setState replaces the state and notifies subscribers outside the lock, in
// subscription order.
func (s *sessionStore) setState(next models.AuthState) {
	s.mu.Lock()
	s.state = cloneState(next)
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(cloneState(next))
	}
}

func cloneState(state models.AuthState) models.AuthState {
	if state.User != nil {
		u := *state.User
		state.User = &u
	}
	return state
}
