package main

import (
	"testing"
)

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Running:")
	requireContains(t, out, "yes")
	requireContains(t, out, "Languages:")
	requireContains(t, out, "Hybrid ready:")
}

func TestStopCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stop"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	requireContains(t, out, "Daemon stopped")

	out, _, err = runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status after stop: %v", err)
	}
	requireContains(t, out, "no")
}

func TestLanguagesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"languages"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	requireContains(t, out, "en")
	requireContains(t, out, "English")
	requireContains(t, out, "German")
	requireContains(t, out, "French")
}

func TestHistoryCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t,
		[]string{"identify", "the quick brown fox jumps over the lazy dog"},
		env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "en")
	requireContains(t, out, "quick brown fox")

	out, _, err = runCLI(t, []string{"history", "clear"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "History cleared")

	out, _, err = runCLI(t, []string{"history", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history list after clear: %v", err)
	}
	requireContains(t, out, "History is empty")
}
