// Package profile persists the user profile record: username, avatar, and
// theme preference. It lives under its own storage key and is deliberately
// independent of the run repository.
package profile

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/runtrackapp/runtrack/internal/store"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// NormalizeTheme coerces unknown values to the system default.
func NormalizeTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s)
	default:
		return ThemeSystem
	}
}

// Profile is the persisted user profile record.
type Profile struct {
	Username      string `json:"username"`
	AvatarDataURL string `json:"avatarDataUrl"`
	Theme         Theme  `json:"theme"`
}

// Patch holds optional field updates; nil fields are left unchanged.
type Patch struct {
	Username      *string `json:"username"`
	AvatarDataURL *string `json:"avatarDataUrl"`
	Theme         *string `json:"theme"`
}

func defaultProfile() Profile {
	return Profile{Theme: ThemeSystem}
}

// Store persists the profile record on the KV boundary.
type Store struct {
	mu sync.Mutex
	kv store.KV
}

// NewStore creates a profile Store over the given KV store.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) load(ctx context.Context) (Profile, error) {
	raw, ok, err := s.kv.Get(ctx, store.ProfileKey)
	if err != nil {
		return defaultProfile(), err
	}
	if !ok {
		return defaultProfile(), nil
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("WARN: malformed profile payload, falling back to defaults: %v", err)
		return defaultProfile(), nil
	}
	p.Theme = NormalizeTheme(string(p.Theme))
	return p, nil
}

// Get returns the stored profile, or the default record when absent or
// malformed.
func (s *Store) Get(ctx context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update applies the patch over the current record and persists the result.
func (s *Store) Update(ctx context.Context, patch Patch) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx)
	if err != nil {
		return p, err
	}

	if patch.Username != nil {
		p.Username = *patch.Username
	}
	if patch.AvatarDataURL != nil {
		p.AvatarDataURL = *patch.AvatarDataURL
	}
	if patch.Theme != nil {
		p.Theme = NormalizeTheme(*patch.Theme)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return p, err
	}
	if err := s.kv.Set(ctx, store.ProfileKey, string(data)); err != nil {
		return p, err
	}
	return p, nil
}

// Clear removes the stored profile so the defaults apply again.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(ctx, store.ProfileKey)
}
