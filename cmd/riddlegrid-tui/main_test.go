package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDeckDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	flagDeckPath = ""
	d, err := loadDeck()
	if err != nil {
		t.Fatalf("loadDeck: %v", err)
	}
	if len(d.Riddles) != 9 {
		t.Errorf("riddles = %d", len(d.Riddles))
	}
}

func TestLoadDeckBadPath(t *testing.T) {
	flagDeckPath = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { flagDeckPath = "" })
	_, err := loadDeck()
	if err == nil || !strings.Contains(err.Error(), "load deck") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadDeckRejectsShortDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte("riddles:\n  - {prompt: a, answer: b}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagDeckPath = path
	t.Cleanup(func() { flagDeckPath = "" })
	if _, err := loadDeck(); err == nil {
		t.Fatal("expected error for short deck")
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["play"] || !names["serve"] {
		t.Errorf("commands = %v", names)
	}
	if rootCmd.PersistentFlags().Lookup("deck") == nil {
		t.Error("missing --deck flag")
	}
	if serveCmd.Flags().Lookup("ssh").DefValue != ":23235" {
		t.Errorf("ssh default = %q", serveCmd.Flags().Lookup("ssh").DefValue)
	}
}
