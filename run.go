package motlab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bitesizing/motlab/notify"
	"github.com/bitesizing/motlab/release"
	"github.com/bitesizing/motlab/session"
	"github.com/bitesizing/motlab/settings"
)

// =============================================================================
// Run Configuration
// =============================================================================

// RunConfig configures Start.
type RunConfig struct {
	// ParametersPath is the authored parameters file. Empty or missing
	// means built-in defaults.
	ParametersPath string

	// PresetsPath is the authored device-presets file, merged over the
	// built-in presets. Empty or missing means built-ins only.
	PresetsPath string

	// MachineID overrides machine-identity detection. Empty means
	// settings.DetectMachineID.
	MachineID string

	// DataDir overrides the data directory derived from the settings.
	DataDir string

	// Notifier receives session events. Nil falls back to the notifier in
	// the context, then to logging.
	Notifier notify.Notifier

	// Releases overrides the release client used by CheckForUpdate.
	// Nil means the canonical experiment repository.
	Releases *release.Client

	// Logger is the run logger. Nil means slog.Default.
	Logger *slog.Logger

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// =============================================================================
// Run
// =============================================================================

// Run ties together the resolved settings and session bookkeeping for one
// execution of the experiment. The external presentation framework runs its
// trial loop between Start and Complete.
type Run struct {
	// Settings is the effective parameter set for this run, resolved once
	// at startup and read-only thereafter.
	Settings *settings.Effective

	// Session is the per-run bookkeeping: participant number, run ID,
	// data file paths.
	Session *session.Session

	notifier notify.Notifier
	releases *release.Client
	log      *slog.Logger
}

// Start resolves the effective settings for this machine, allocates a
// session, writes the settings snapshot, and announces the session. The
// returned Run is ready to hand to the presentation framework.
func Start(ctx context.Context, cfg RunConfig) (*Run, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	base, err := settings.Load(cfg.ParametersPath)
	if err != nil {
		return nil, fmt.Errorf("load parameters: %w", err)
	}

	fileReg, err := settings.LoadRegistry(cfg.PresetsPath)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}

	machineID := cfg.MachineID
	if machineID == "" {
		machineID = settings.DetectMachineID()
	}

	eff := settings.Resolve(machineID, base, settings.Builtin().Merge(fileReg))
	log.Info("settings resolved",
		"machine_id", machineID,
		"framerate", eff.Window.Framerate,
		"framerate_source", eff.Source("framerate"),
		"screen_size", eff.Window.ScreenSize,
		"input_source", eff.Testing.InputSource(),
	)

	sess, err := session.New(eff, session.Config{Dir: cfg.DataDir, Now: cfg.Now})
	if err != nil {
		return nil, fmt.Errorf("allocate session: %w", err)
	}

	if eff.Testing.SaveSnapshot {
		if err := session.WriteSnapshot(sess, eff); err != nil {
			return nil, err
		}
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NotifierFromContext(ctx)
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}

	releases := cfg.Releases
	if releases == nil {
		releases = release.NewDefaultClient()
	}

	r := &Run{
		Settings: eff,
		Session:  sess,
		notifier: notifier,
		releases: releases,
		log:      log,
	}

	msg := fmt.Sprintf("session started: %s pp%d", sess.Experiment, sess.Participant)
	if sess.Resumed {
		msg = fmt.Sprintf("session resumed: %s pp%d", sess.Experiment, sess.Participant)
	}
	r.emit(ctx, notify.Event{
		Type:     notify.EventSessionStarted,
		Message:  msg,
		Severity: notify.SeverityInfo,
	})

	return r, nil
}

// Complete marks the run finished, rewrites the snapshot with the end time,
// and announces completion.
func (r *Run) Complete(ctx context.Context) error {
	r.Session.End()

	if r.Settings.Testing.SaveSnapshot {
		if err := session.WriteSnapshot(r.Session, r.Settings); err != nil {
			return err
		}
	}

	r.emit(ctx, notify.Event{
		Type:     notify.EventSessionCompleted,
		Message:  fmt.Sprintf("session completed: %s pp%d", r.Session.Experiment, r.Session.Participant),
		Severity: notify.SeverityInfo,
	})
	return nil
}

// Abort marks the run finished after a failure and announces the abort with
// its cause. The snapshot is still rewritten so the session can be resumed
// with restart-from-last.
func (r *Run) Abort(ctx context.Context, cause error) error {
	r.Session.End()

	if r.Settings.Testing.SaveSnapshot {
		if err := session.WriteSnapshot(r.Session, r.Settings); err != nil {
			return err
		}
	}

	event := notify.Event{
		Type:     notify.EventSessionAborted,
		Message:  fmt.Sprintf("session aborted: %s pp%d", r.Session.Experiment, r.Session.Participant),
		Severity: notify.SeverityError,
	}
	if cause != nil {
		event.Metadata = map[string]any{"cause": cause.Error()}
	}
	r.emit(ctx, event)
	return nil
}

// CheckForUpdate looks up the latest published release of the task and
// announces it when it is newer than current.
func (r *Run) CheckForUpdate(ctx context.Context, current string) (*release.Release, bool, error) {
	latest, newer, err := r.releases.CheckForUpdate(ctx, current)
	if err != nil {
		return nil, false, err
	}

	if newer {
		r.emit(ctx, notify.Event{
			Type:     notify.EventUpdateAvailable,
			Message:  fmt.Sprintf("task release %s is available (running %s)", latest.Tag, current),
			Severity: notify.SeverityWarning,
			Metadata: map[string]any{"url": latest.URL},
		})
	}
	return latest, newer, nil
}

// emit sends a session event. Notification failures are logged, never fatal.
func (r *Run) emit(ctx context.Context, event notify.Event) {
	event.SessionID = r.Session.RunID
	event.Experiment = r.Session.Experiment
	event.Participant = r.Session.Participant
	event.MachineID = r.Session.MachineID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := r.notifier.Notify(ctx, event); err != nil {
		r.log.Warn("notify failed", "error", err, "event_type", event.Type)
	}
}
