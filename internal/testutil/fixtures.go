// Package testutil provides test helper utilities for salesflow tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/salesflow-dev/salesflow/internal/session"
)

// TempDataDir creates a temporary directory with the given files and returns
// its path. Files is a map of relative path -> content. Directories are
// created as needed. The directory is automatically cleaned up when the test
// finishes.
func TempDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// SessionDocument serializes sessions into the versioned storage format.
func SessionDocument(t *testing.T, sessions ...session.Session) string {
	t.Helper()
	doc := struct {
		Version  int               `json:"version"`
		Sessions []session.Session `json:"sessions"`
	}{
		Version:  session.StorageVersion,
		Sessions: sessions,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshaling session document: %v", err)
	}
	return string(data)
}

// InProgressSession returns a minimal open session for the given company.
func InProgressSession(id, company string) session.Session {
	now := time.Now()
	return session.Session{
		ID:               id,
		CompanyName:      company,
		CreatedAt:        now,
		UpdatedAt:        now,
		Status:           session.StatusInProgress,
		CheckpointStates: map[string][]bool{},
	}
}

// WonSession returns a completed session with a won outcome.
func WonSession(id, company string, revenue float64) session.Session {
	s := InProgressSession(id, company)
	s.Status = session.StatusCompleted
	s.Result = &session.Result{
		Outcome:     session.OutcomeWon,
		Revenue:     revenue,
		CompletedAt: time.Now(),
	}
	return s
}
