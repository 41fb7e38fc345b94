package config

import (
	"testing"
)

func FuzzGetEnvInt(f *testing.F) {
	// Seed with some interesting values
	f.Add("42")
	f.Add("-1")
	f.Add("0")
	f.Add("")
	f.Add("not-a-number")
	f.Add("9999999999999999999999")
	f.Add("1.5")

	f.Fuzz(func(t *testing.T, input string) {
		key := "FUZZ_TEST_INT"
		t.Setenv(key, input)

		// Should never panic, always return fallback or parsed value
		_ = getEnvInt(key, 42)
	})
}

func FuzzGetEnvFloat(f *testing.F) {
	f.Add("0.05")
	f.Add("-0")
	f.Add("")
	f.Add("NaN")
	f.Add("1e309")
	f.Add("padding")

	f.Fuzz(func(t *testing.T, input string) {
		key := "FUZZ_TEST_FLOAT"
		t.Setenv(key, input)

		// Should never panic
		_ = getEnvFloat(key, 0.05)
	})
}
