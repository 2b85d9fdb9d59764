package config

import "testing"

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(cfg, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want 9090", got)
	}
	if got := GetString(cfg, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want fallback", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString(nil map) = %q, want default", got)
	}
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "abc"}

	if got := GetInt(cfg, "TIMEOUT", 10); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(cfg, "BAD", 10); got != 10 {
		t.Errorf("GetInt(BAD) = %d, want default 10", got)
	}
	if got := GetInt(cfg, "MISSING", 10); got != 10 {
		t.Errorf("GetInt(MISSING) = %d, want default 10", got)
	}
}

func TestMustGetString(t *testing.T) {
	cfg := map[string]string{"DATABASE_URL": "postgres://localhost/app"}

	val, err := MustGetString(cfg, "DATABASE_URL")
	if err != nil {
		t.Fatalf("MustGetString() error = %v", err)
	}
	if val != "postgres://localhost/app" {
		t.Errorf("MustGetString() = %q", val)
	}

	if _, err := MustGetString(cfg, "MISSING"); err == nil {
		t.Error("MustGetString(MISSING) = nil error, want error")
	}
	if _, err := MustGetString(map[string]string{"K": ""}, "K"); err == nil {
		t.Error("MustGetString(empty value) = nil error, want error")
	}
}
