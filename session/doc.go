// Package session allocates per-run bookkeeping for an experiment: the
// participant number, the run identity, the data file paths, and a YAML
// snapshot of the effective settings the run was started with.
//
// Participant numbers are allocated by scanning the data folder for the
// lowest number with no existing snapshot, starting from the configured
// starting participant. With restart-from-last enabled the most recent
// existing participant is reused instead, so an interrupted run can be
// resumed against its saved snapshot.
package session
