package support

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("FINCH_TEST_ENV", "value")
	if got := GetEnv("FINCH_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("GetEnv returned %s, want value", got)
	}

	if got := GetEnv("FINCH_TEST_ENV_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv returned %s, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FINCH_TEST_ENV_INT", "42")
	if got := GetEnvInt("FINCH_TEST_ENV_INT", 7); got != 42 {
		t.Fatalf("GetEnvInt returned %d, want 42", got)
	}

	t.Setenv("FINCH_TEST_ENV_INT_BAD", "not-a-number")
	if got := GetEnvInt("FINCH_TEST_ENV_INT_BAD", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want fallback 7", got)
	}
}
