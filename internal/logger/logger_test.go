// This file is part of this software.

package logger

import (
	"strings"
	"testing"
)

func TestLogAppendsAndWriteIsOldestFirst(t *testing.T) {
	l := NewLogger(10)
	l.Log(Allow, "cpu", "first")
	l.Log(Allow, "cpu", "second")

	var sb strings.Builder
	l.Write(&sb)

	got := sb.String()
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("Write output = %q, want both entries present", got)
	}
	if strings.Index(got, "first") > strings.Index(got, "second") {
		t.Error("entries are not in oldest-first order")
	}
}

func TestLogSkipsWhenNotAllowed(t *testing.T) {
	l := NewLogger(10)
	l.Log(false, "cpu", "should not appear")

	var sb strings.Builder
	l.Write(&sb)
	if sb.Len() != 0 {
		t.Errorf("Write output = %q, want empty", sb.String())
	}
}

func TestRingOverwritesOldestEntryAtCapacity(t *testing.T) {
	l := NewLogger(2)
	l.Logf("tag", "one")
	l.Logf("tag", "two")
	l.Logf("tag", "three") // overwrites "one"

	var sb strings.Builder
	l.Write(&sb)
	got := sb.String()

	if strings.Contains(got, "one") {
		t.Error("oldest entry was not overwritten at capacity")
	}
	if !strings.Contains(got, "two") || !strings.Contains(got, "three") {
		t.Errorf("Write output = %q, want \"two\" and \"three\"", got)
	}
}

func TestTailReturnsOnlyMostRecentEntries(t *testing.T) {
	l := NewLogger(10)
	l.Logf("tag", "a")
	l.Logf("tag", "b")
	l.Logf("tag", "c")

	var sb strings.Builder
	l.Tail(&sb, 2)
	got := sb.String()

	if strings.Contains(got, "tag: a\n") {
		t.Error("Tail(2) included an entry older than the last two")
	}
	if !strings.Contains(got, "tag: b\n") || !strings.Contains(got, "tag: c\n") {
		t.Errorf("Tail(2) = %q, want \"b\" and \"c\"", got)
	}
}

func TestCentralLogIsPackageLevel(t *testing.T) {
	Logf("test-tag", "package level message %d", 1)

	var sb strings.Builder
	Tail(&sb, 1)
	if !strings.Contains(sb.String(), "package level message 1") {
		t.Errorf("central log Tail = %q, want the just-logged message", sb.String())
	}
}
