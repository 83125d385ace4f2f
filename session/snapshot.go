package session

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bitesizing/motlab/errors"
	"github.com/bitesizing/motlab/settings"
)

// Snapshot is the persisted record of a session: its identity plus the
// effective settings it was started with. It is what restart-from-last
// resumes against, and it documents after the fact exactly which parameters
// a participant ran under.
type Snapshot struct {
	Experiment  string    `yaml:"experiment"`
	Participant int       `yaml:"participant"`
	RunID       string    `yaml:"run_id"`
	Seed        int64     `yaml:"seed"`
	MachineID   string    `yaml:"machine_id"`
	StartedAt   time.Time `yaml:"started_at"`
	EndedAt     time.Time `yaml:"ended_at,omitempty"`

	Settings settings.Settings `yaml:"settings"`
}

// WriteSnapshot writes the session's snapshot to its snapshot path,
// replacing any previous one.
func WriteSnapshot(s *Session, eff *settings.Effective) error {
	snap := Snapshot{
		Experiment:  s.Experiment,
		Participant: s.Participant,
		RunID:       s.RunID,
		Seed:        s.Seed,
		MachineID:   s.MachineID,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		Settings:    eff.Settings,
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.SnapshotPath(), data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot file. A missing file yields
// errors.ErrSnapshotNotFound.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, errors.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}
