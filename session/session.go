package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bitesizing/motlab/errors"
	"github.com/bitesizing/motlab/settings"
)

// Session holds the bookkeeping for a single experiment run.
type Session struct {
	// Experiment is the experiment name the session belongs to.
	Experiment string

	// Participant is the participant number, which also seeds the trial
	// randomization so a session can be reproduced.
	Participant int

	// RunID uniquely identifies this process run, even across restarts of
	// the same participant.
	RunID string

	// Seed is the randomization seed for the run.
	Seed int64

	// MachineID is the identity of the machine the session runs on.
	MachineID string

	// Resumed reports whether the session was restarted from a previous
	// run's snapshot rather than freshly allocated.
	Resumed bool

	StartedAt time.Time
	EndedAt   time.Time

	// Dir is the data directory the session's files live under.
	Dir string

	now func() time.Time
}

// Config adjusts session creation.
type Config struct {
	// Dir overrides the data directory derived from the settings
	// (RootDir joined with SaveFolder).
	Dir string

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// New allocates a session for the given effective settings. It creates the
// data directory if needed and claims the lowest free participant number at
// or above the configured starting participant. When restart-from-last is
// set, the most recent existing participant is reused instead; if none
// exists, New returns errors.ErrNoPreviousSession.
func New(eff *settings.Effective, cfg Config) (*Session, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(eff.Experiment.RootDir, eff.Experiment.SaveFolder)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Session{
		Experiment: eff.Experiment.Name,
		MachineID:  eff.MachineID,
		StartedAt:  now(),
		Dir:        dir,
		now:        now,
	}

	id, err := nanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	s.RunID = id

	// Lowest participant number with no existing snapshot.
	pp := eff.Experiment.StartingParticipant
	for fileExists(snapshotPath(dir, s.Experiment, pp)) {
		pp++
	}

	if eff.Testing.RestartFromLast {
		pp--
		if pp < eff.Experiment.StartingParticipant {
			return nil, errors.ErrNoPreviousSession
		}
		s.Resumed = true
	}

	s.Participant = pp
	s.Seed = int64(pp)
	return s, nil
}

// End marks the session finished. Idempotent: the first call wins.
func (s *Session) End() {
	if s.EndedAt.IsZero() {
		s.EndedAt = s.clock()()
	}
}

func (s *Session) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

// BasePath returns the stem shared by the session's data files,
// e.g. data/final/MOT1_pp3.
func (s *Session) BasePath() string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s_pp%d", s.Experiment, s.Participant))
}

// SnapshotPath returns the path of the session's settings snapshot.
func (s *Session) SnapshotPath() string {
	return s.BasePath() + ".yaml"
}

// EyeDataPath returns the path eye-tracker samples are written to when
// save_eye_data is enabled.
func (s *Session) EyeDataPath() string {
	return s.BasePath() + "_eye_data.csv"
}

// LogPath returns the path of the session log file.
func (s *Session) LogPath() string {
	return s.BasePath() + ".log"
}

func snapshotPath(dir, experiment string, participant int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_pp%d.yaml", experiment, participant))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
