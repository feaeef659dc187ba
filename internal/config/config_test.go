package config

import (
	"os"
	"strings"
	"testing"
)

func TestSetAndGetRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	Load()

	if err := Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := Get(KeyPackageManager); got != "pnpm" {
		t.Errorf("Get(%s) = %q, want pnpm", KeyPackageManager, got)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("config file should exist after Set: %v", err)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	Load()

	err := Set("favorite_color", "blue")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKnownCoversEveryKey(t *testing.T) {
	for _, k := range Keys() {
		if !Known(k) {
			t.Errorf("Known(%q) = false", k)
		}
	}
	if Known("bogus") {
		t.Error("Known(bogus) should be false")
	}
}
