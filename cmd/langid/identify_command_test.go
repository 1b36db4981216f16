package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"langid/internal/api"
)

func TestIdentifyViaDaemon(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t,
		[]string{"identify", "the quick brown fox jumps over the lazy dog"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	requireContains(t, out, "Prediction: en")
}

func TestIdentifyJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t,
		[]string{"identify", "--json", "the quick brown fox jumps over the lazy dog"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify --json: %v", err)
	}
	var resp api.IdentifyResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if resp.Prediction != "en" {
		t.Fatalf("expected prediction en, got %q", resp.Prediction)
	}
	if len(resp.Distribution) == 0 {
		t.Fatal("expected a score distribution")
	}
}

func TestIdentifyLocalFallback(t *testing.T) {
	env := setupCLITestEnv(t)

	// A socket path that does not exist forces the local path.
	missingSocket := filepath.Join(t.TempDir(), "missing.sock")
	out, _, err := runCLI(t,
		[]string{"identify", "der schnelle braune fuchs springt ueber den faulen hund"},
		missingSocket, env.configPath)
	if err != nil {
		t.Fatalf("identify local fallback: %v", err)
	}
	requireContains(t, out, "Prediction: de")
}

func TestIdentifyLocalFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t,
		[]string{"identify", "--local",
			"le rapide renard brun saute par dessus le chien paresseux"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify --local: %v", err)
	}
	requireContains(t, out, "Prediction: fr")

	// Without a tokenizer vocabulary the local advanced model is unavailable.
	out, _, err = runCLI(t,
		[]string{"identify", "--local", "--model", "advanced",
			"le rapide renard brun saute par dessus le chien paresseux"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify --local advanced: %v", err)
	}
	requireContains(t, out, "No prediction:")
}

func TestIdentifySoftErrorPrintsMessage(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t,
		[]string{"identify", "12345 !@#"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify soft error: %v", err)
	}
	requireContains(t, out, "No prediction:")
}

func TestIdentifyInvalidModelFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t,
		[]string{"identify", "--model", "fancy", "some text"},
		env.socketPath, env.configPath)
	if err == nil {
		t.Fatal("expected invalid model to fail")
	}
}
