package profiles_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"langid/internal/profiles"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	chars := []string{"the", "he ", "e a"}
	subs := []int{101, 7, 42}
	if _, err := profiles.SaveChars(dir, "en", chars); err != nil {
		t.Fatalf("SaveChars failed: %v", err)
	}
	if _, err := profiles.SaveSubwords(dir, "en", subs); err != nil {
		t.Fatalf("SaveSubwords failed: %v", err)
	}

	set, err := profiles.Load(dir, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(set.Chars()["en"], chars) {
		t.Fatalf("chars = %v, want %v", set.Chars()["en"], chars)
	}
	if !reflect.DeepEqual(set.Subwords()["en"], subs) {
		t.Fatalf("subwords = %v, want %v", set.Subwords()["en"], subs)
	}
	if !set.HybridReady() {
		t.Fatal("set with both halves should be hybrid-ready")
	}
	if got := set.Languages(); len(got) != 1 || got[0] != "en" {
		t.Fatalf("Languages = %v, want [en]", got)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	if _, err := profiles.Load(t.TempDir(), nil); !errors.Is(err, profiles.ErrNoProfiles) {
		t.Fatalf("expected ErrNoProfiles, got %v", err)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := profiles.Load(filepath.Join(t.TempDir(), "absent"), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoadSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := profiles.SaveChars(dir, "en", []string{"the"}); err != nil {
		t.Fatalf("SaveChars failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "de_chars.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	set, err := profiles.Load(dir, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := set.Chars()["de"]; ok {
		t.Fatal("corrupt profile must be skipped")
	}
	if _, ok := set.Chars()["en"]; !ok {
		t.Fatal("valid profile must survive a corrupt sibling")
	}
}

func TestLoadMismatchedHalves(t *testing.T) {
	dir := t.TempDir()
	if _, err := profiles.SaveChars(dir, "en", []string{"the"}); err != nil {
		t.Fatalf("SaveChars failed: %v", err)
	}
	if _, err := profiles.SaveChars(dir, "de", []string{"der"}); err != nil {
		t.Fatalf("SaveChars failed: %v", err)
	}
	if _, err := profiles.SaveSubwords(dir, "en", []int{1, 2}); err != nil {
		t.Fatalf("SaveSubwords failed: %v", err)
	}

	set, err := profiles.Load(dir, nil)
	if err != nil {
		t.Fatalf("mismatch must not fail the load: %v", err)
	}
	if !set.HybridReady() {
		t.Fatal("en carries both halves, set should be hybrid-ready")
	}
	if _, ok := set.Subwords()["de"]; ok {
		t.Fatal("de has no subword profile")
	}
}
