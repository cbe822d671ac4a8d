package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// 環境変数が未設定の場合のデフォルト値を検証する
	for _, key := range []string{
		"SERVER_PORT", "BASE_URL", "SESSION_COOKIE_NAME", "SESSION_TTL",
		"COOKIE_DOMAIN", "CORS_ALLOWED_ORIGIN", "DEMO_USER_EMAIL", "DEMO_USER_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:8080")
	}
	if cfg.SessionCookieName != "session_id" {
		t.Errorf("SessionCookieName = %q, want %q", cfg.SessionCookieName, "session_id")
	}
	if cfg.SessionTTL != 120*time.Minute {
		t.Errorf("SessionTTL = %v, want 120m", cfg.SessionTTL)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should be false for an http BASE_URL")
	}
	if cfg.CORSAllowedOrigin != "http://localhost:3000" {
		t.Errorf("CORSAllowedOrigin = %q, want %q", cfg.CORSAllowedOrigin, "http://localhost:3000")
	}
	if cfg.DemoUserEmail != "demo@example.com" {
		t.Errorf("DemoUserEmail = %q, want %q", cfg.DemoUserEmail, "demo@example.com")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_COOKIE_NAME", "catalog_session")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DEMO_USER_EMAIL", "admin@example.com")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "9090")
	}
	if cfg.SessionCookieName != "catalog_session" {
		t.Errorf("SessionCookieName = %q, want %q", cfg.SessionCookieName, "catalog_session")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.DemoUserEmail != "admin@example.com" {
		t.Errorf("DemoUserEmail = %q, want %q", cfg.DemoUserEmail, "admin@example.com")
	}
}

// httpsのBASE_URLでSecure Cookieが有効になること。
func TestLoad_CookieSecureFollowsBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "https://catalog.example.com")

	cfg := Load()

	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true for an https BASE_URL")
	}
}

// 不正なTTL指定はデフォルトにフォールバックすること。
func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()

	if cfg.SessionTTL != 120*time.Minute {
		t.Errorf("SessionTTL = %v, want default 120m", cfg.SessionTTL)
	}
}
