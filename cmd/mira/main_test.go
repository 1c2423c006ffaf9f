package main

import (
	"strings"
	"testing"
)

func TestResolveSecretKeyRejectsMissingValue(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error for missing SECRET_KEY")
	}
}

func TestResolveSecretKeyRejectsPlaceholder(t *testing.T) {
	t.Setenv("SECRET_KEY", "change_me_in_production")

	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error for placeholder SECRET_KEY")
	}
}

func TestResolveSecretKeyRejectsShortValue(t *testing.T) {
	t.Setenv("SECRET_KEY", strings.Repeat("a", 31))

	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error for short SECRET_KEY")
	}
}

func TestResolveSecretKeyAcceptsStrongValue(t *testing.T) {
	value := strings.Repeat("a", 32)
	t.Setenv("SECRET_KEY", value)

	secret, err := resolveSecretKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != value {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("MIRA_TEST_ENV", "")
	if got := getEnv("MIRA_TEST_ENV", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("MIRA_TEST_ENV", "set")
	if got := getEnv("MIRA_TEST_ENV", "fallback"); got != "set" {
		t.Fatalf("expected set, got %q", got)
	}
}

func TestMustLoadLocationFallsBackToUTC(t *testing.T) {
	if location := mustLoadLocation("Not/AZone"); location.String() != "UTC" {
		t.Fatalf("expected UTC fallback, got %s", location)
	}
	if location := mustLoadLocation("Europe/Berlin"); location.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", location)
	}
}
