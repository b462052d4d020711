// Package session holds the client's authentication state: the persisted
// session store and the manager exposing login, register, and logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/repositories/metadata"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

// userKey is the fixed storage key holding the serialized session record.
const userKey = "eyeGlazeUser"

// Store persists the session User record in the local key-value store.
// The persisted copy is the sole source of truth across process restarts.
type Store struct {
	meta metadata.Repository
	log  logging.Logger
}

func NewStore(meta metadata.Repository, log logging.Logger) *Store {
	return &Store{meta: meta, log: log}
}

// Save serializes the user and writes it under the fixed key, overwriting
// any prior value. Serialization and write failures propagate.
func (s *Store) Save(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if err := s.meta.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Load reads the persisted session. An absent key, an unreadable store, or
// malformed stored data all mean "no session"; Load never fails outward.
func (s *Store) Load(ctx context.Context) *models.User {
	data, err := s.meta.Get(ctx, userKey)
	if err != nil {
		s.log.Warn(ctx, "session store unreadable, starting without a session", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "stored session is malformed, starting without a session", "error", err)
		return nil
	}
	return &u
}

// Clear removes the persisted session. Clearing an absent session is not
// an error.
func (s *Store) Clear(ctx context.Context) error {
	return s.meta.Delete(ctx, userKey)
}
