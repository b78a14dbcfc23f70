// This file is part of this software.

package instance

import (
	"path/filepath"
	"testing"
)

func TestNewAttachesLabelAndPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.txt")
	ins, err := New("test-instance", path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if ins.Label != "test-instance" {
		t.Errorf("Label = %q, want %q", ins.Label, "test-instance")
	}
	if ins.Prefs == nil {
		t.Fatal("Prefs is nil")
	}
}

func TestNewRejectsEmptyPrefsPath(t *testing.T) {
	if _, err := New("test-instance", ""); err == nil {
		t.Error("New with an empty prefs path did not return an error")
	}
}
