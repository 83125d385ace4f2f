// Package motlab provides the run configuration and session plumbing for a
// multiple-object-tracking experiment.
//
// The stimulus presentation itself (rendering, animation timing, trial and
// block sequencing, input polling) belongs to the external presentation
// framework. This module owns everything around it: resolving the effective
// parameter set for the machine the task runs on, allocating a participant
// and its data files, snapshotting the settings a run used, and reporting
// run activity.
//
// The package is organized into subpackages by domain:
//
//   - settings: parameter records, device presets, the configuration resolver
//   - session: participant allocation, run identity, settings snapshots
//   - release: GitHub release lookup and update check
//   - notify: session event notification (log, webhook, Slack)
//   - errors: shared sentinel errors and predicates
//   - testutil: test utilities and fixtures
//
// # Quick Start
//
//	import (
//	    "github.com/bitesizing/motlab"
//	    "github.com/bitesizing/motlab/settings"
//	)
//
//	run, err := motlab.Start(ctx, motlab.RunConfig{
//	    ParametersPath: "parameters.yaml",
//	    PresetsPath:    "presets.yaml",
//	})
//	if err != nil {
//	    // ...
//	}
//	defer run.Complete(ctx)
//
//	// Hand run.Settings to the presentation framework. When
//	// run.Settings.Testing.UseEyetracker is false, it reads mouse
//	// coordinates instead of gaze position.
//
// See individual package documentation for detailed usage.
package motlab
