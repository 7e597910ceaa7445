package profile

import (
	"context"
	"testing"

	"github.com/runtrackapp/runtrack/internal/store"
)

func strptr(s string) *string { return &s }

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	p, err := NewStore(store.NewMemoryStore()).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Username != "" || p.AvatarDataURL != "" || p.Theme != ThemeSystem {
		t.Fatalf("unexpected default profile %+v", p)
	}
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore(store.NewMemoryStore())

	p, err := s.Update(ctx, Patch{Username: strptr("ada"), Theme: strptr("dark")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Username != "ada" || p.Theme != ThemeDark {
		t.Fatalf("unexpected profile after update: %+v", p)
	}

	p, err = s.Update(ctx, Patch{AvatarDataURL: strptr("data:image/png;base64,xyz")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Username != "ada" || p.Theme != ThemeDark || p.AvatarDataURL == "" {
		t.Fatalf("patch clobbered unrelated fields: %+v", p)
	}
}

func TestUpdateCoercesUnknownTheme(t *testing.T) {
	t.Parallel()

	p, err := NewStore(store.NewMemoryStore()).Update(context.Background(), Patch{Theme: strptr("neon")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Theme != ThemeSystem {
		t.Fatalf("theme = %q, want system fallback", p.Theme)
	}
}

func TestClearRestoresDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore(store.NewMemoryStore())

	if _, err := s.Update(ctx, Patch{Username: strptr("ada")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	p, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Username != "" || p.Theme != ThemeSystem {
		t.Fatalf("profile not reset: %+v", p)
	}
}

func TestGetRecoversFromMalformedPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemoryStore()
	if err := kv.Set(ctx, store.ProfileKey, "%%%"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	p, err := NewStore(kv).Get(ctx)
	if err != nil {
		t.Fatalf("Get should recover silently, got %v", err)
	}
	if p.Theme != ThemeSystem {
		t.Fatalf("expected default profile, got %+v", p)
	}
}
