package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/picovaders/internal/storage"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tc := range tests {
		if got := port(tc.addr); got != tc.want {
			t.Errorf("port(%q) = %q, expected %q", tc.addr, got, tc.want)
		}
	}
}

func TestSessionTable(t *testing.T) {
	out := sessionTable([]storage.SessionEntry{
		{ID: 7, Frontend: "ssh", User: "alice", Frames: 1200, TopScore: 90, LastScreen: "title", StartedAt: time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)},
		{ID: 6, Frontend: "tui", User: "bob", Frames: 10, StartedAt: time.Date(2024, 3, 8, 9, 5, 0, 0, time.UTC)},
	})

	for _, want := range []string{"Frontend", "alice", "1200", "000090", "Mar 09 18:30", "bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("sessionTable() missing %q:\n%s", want, out)
		}
	}
}
