package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	moterrors "github.com/bitesizing/motlab/errors"
	"github.com/bitesizing/motlab/settings"
	"github.com/bitesizing/motlab/testutil"
)

func testEffective(t *testing.T, dir string) *settings.Effective {
	t.Helper()
	base := settings.Defaults()
	base.Experiment.SaveFolder = dir
	return settings.Resolve("LAB-PC-1", base, nil)
}

func TestNew_AllocatesFirstParticipant(t *testing.T) {
	dir := t.TempDir()

	s, err := New(testEffective(t, dir), Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := s.Participant; got != 1 {
		t.Errorf("Participant = %d, want 1", got)
	}
	if got := s.Seed; got != 1 {
		t.Errorf("Seed = %d, want 1 (participant number)", got)
	}
	if s.RunID == "" {
		t.Errorf("RunID is empty")
	}
	if got := s.MachineID; got != "LAB-PC-1" {
		t.Errorf("MachineID = %q, want %q", got, "LAB-PC-1")
	}
	if s.Resumed {
		t.Errorf("Resumed = true, want false for a fresh session")
	}
}

func TestNew_SkipsClaimedParticipants(t *testing.T) {
	dir := t.TempDir()
	testutil.SeedParticipants(t, dir, "MOT1", 2)

	s, err := New(testEffective(t, dir), Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Participant; got != 3 {
		t.Errorf("Participant = %d, want 3", got)
	}
}

func TestNew_GapInParticipantsFillsLowest(t *testing.T) {
	dir := t.TempDir()

	// pp1 exists, pp2 free, pp3 exists: allocation stops at the first gap,
	// same as the original scan.
	for _, name := range []string{"MOT1_pp1.yaml", "MOT1_pp3.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	s, err := New(testEffective(t, dir), Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Participant; got != 2 {
		t.Errorf("Participant = %d, want 2", got)
	}
}

func TestNew_RestartFromLast(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "MOT1_pp1.yaml"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	eff := testEffective(t, dir)
	eff.Testing.RestartFromLast = true

	s, err := New(eff, Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Participant; got != 1 {
		t.Errorf("Participant = %d, want 1 (most recent existing)", got)
	}
	if !s.Resumed {
		t.Errorf("Resumed = false, want true")
	}
}

func TestNew_RestartWithNoPreviousSession(t *testing.T) {
	eff := testEffective(t, t.TempDir())
	eff.Testing.RestartFromLast = true

	_, err := New(eff, Config{})
	if !errors.Is(err, moterrors.ErrNoPreviousSession) {
		t.Errorf("New() error = %v, want ErrNoPreviousSession", err)
	}
}

func TestNew_DirOverride(t *testing.T) {
	override := t.TempDir()
	eff := testEffective(t, filepath.Join(t.TempDir(), "unused"))

	s, err := New(eff, Config{Dir: override})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Dir; got != override {
		t.Errorf("Dir = %q, want %q", got, override)
	}
}

func TestSession_Paths(t *testing.T) {
	dir := t.TempDir()
	s, err := New(testEffective(t, dir), Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantBase := filepath.Join(dir, "MOT1_pp1")
	if got := s.BasePath(); got != wantBase {
		t.Errorf("BasePath() = %q, want %q", got, wantBase)
	}
	if got := s.SnapshotPath(); got != wantBase+".yaml" {
		t.Errorf("SnapshotPath() = %q, want %q", got, wantBase+".yaml")
	}
	if got := s.EyeDataPath(); got != wantBase+"_eye_data.csv" {
		t.Errorf("EyeDataPath() = %q, want %q", got, wantBase+"_eye_data.csv")
	}
	if got := s.LogPath(); got != wantBase+".log" {
		t.Errorf("LogPath() = %q, want %q", got, wantBase+".log")
	}
}

func TestSession_End(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	s, err := New(testEffective(t, t.TempDir()), Config{Now: clock})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !s.EndedAt.IsZero() {
		t.Fatalf("EndedAt set before End()")
	}

	s.End()
	first := s.EndedAt
	if first != now {
		t.Errorf("EndedAt = %v, want %v", first, now)
	}

	now = now.Add(time.Hour)
	s.End()
	if s.EndedAt != first {
		t.Errorf("End() not idempotent: EndedAt = %v, want %v", s.EndedAt, first)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	eff := testEffective(t, dir)

	s, err := New(eff, Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := WriteSnapshot(s, eff); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	snap, err := ReadSnapshot(s.SnapshotPath())
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}

	if got := snap.Participant; got != s.Participant {
		t.Errorf("Participant = %d, want %d", got, s.Participant)
	}
	if got := snap.RunID; got != s.RunID {
		t.Errorf("RunID = %q, want %q", got, s.RunID)
	}
	if got := snap.MachineID; got != "LAB-PC-1" {
		t.Errorf("MachineID = %q, want %q", got, "LAB-PC-1")
	}
	if got := snap.Settings.Window.Framerate; got != eff.Window.Framerate {
		t.Errorf("Settings.Window.Framerate = %d, want %d", got, eff.Window.Framerate)
	}
}

func TestSnapshot_ClaimsParticipantNumber(t *testing.T) {
	dir := t.TempDir()
	eff := testEffective(t, dir)

	first, err := New(eff, Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := WriteSnapshot(first, eff); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	second, err := New(eff, Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if second.Participant == first.Participant {
		t.Errorf("second session reused participant %d", first.Participant)
	}
}

func TestReadSnapshot_Missing(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "MOT1_pp9.yaml"))
	if !errors.Is(err, moterrors.ErrSnapshotNotFound) {
		t.Errorf("ReadSnapshot() error = %v, want ErrSnapshotNotFound", err)
	}
}
