package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Logical keys addressing the persisted payloads. Each key holds one JSON
// document; the suffix versions the payload shape.
const (
	RunsKey     = "runtrack:runs:v1"
	SettingsKey = "runtrack:settings:v1"
	ProfileKey  = "runtrack.userProfile.v1"
)

// KV is the opaque key-value persistence boundary. Implementations store
// whole text documents per key; reading a missing key reports ok=false
// rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewRunID generates a new ULID-based run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
