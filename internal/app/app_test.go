package app

import (
	"bytes"
	"testing"
	"time"
)

func TestInit_ReturnsConfigWithDefaults(t *testing.T) {
	var buf bytes.Buffer

	cfg := Init(&buf)

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.ServerPort == "" {
		t.Error("ServerPort should have a default")
	}
	if cfg.SessionTTL != 120*time.Minute {
		t.Errorf("SessionTTL = %v, want 120m", cfg.SessionTTL)
	}
	if cfg.SessionCookieName == "" {
		t.Error("SessionCookieName should have a default")
	}
}

func TestSeedMovies_HasInitialCatalog(t *testing.T) {
	movies := seedMovies()

	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}
	if movies[0].Title != "Inception" || movies[1].Title != "Interstellar" {
		t.Errorf("unexpected seed titles: %q, %q", movies[0].Title, movies[1].Title)
	}
	for _, m := range movies {
		if m.Rating < 0 || m.Rating > 5 {
			t.Errorf("seed movie %q has out-of-range rating %v", m.Title, m.Rating)
		}
	}
}

// 全シード俳優が既存の映画に紐付いていること。
func TestSeedActors_ReferenceSeedMovies(t *testing.T) {
	movieIDs := make(map[int]bool)
	for _, m := range seedMovies() {
		movieIDs[m.ID] = true
	}

	actors := seedActors()
	if len(actors) == 0 {
		t.Fatal("expected seed actors")
	}
	for _, a := range actors {
		if !movieIDs[a.MovieID] {
			t.Errorf("actor %q references unknown movie %d", a.Name, a.MovieID)
		}
	}
}

func TestSeedUsers_SingleActiveAccount(t *testing.T) {
	users := seedUsers("demo@example.com", "$2a$10$hash")

	if len(users) != 1 {
		t.Fatalf("len = %d, want 1", len(users))
	}
	user := users[0]
	if user.Email != "demo@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "demo@example.com")
	}
	if user.PasswordHash != "$2a$10$hash" {
		t.Errorf("PasswordHash = %q, want the provided hash", user.PasswordHash)
	}
	if !user.IsActive {
		t.Error("seed user should be active")
	}
}
