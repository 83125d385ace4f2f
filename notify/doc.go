// Package notify reports experiment session events to the people running
// the lab.
//
// A Notifier receives an Event when a session starts, completes, aborts, or
// when a newer release of the task is available. Implementations cover
// structured logging (LogNotifier), a generic HTTP endpoint
// (WebhookNotifier), Slack incoming webhooks (SlackNotifier), fan-out
// (MultiNotifier) and discard (NopNotifier).
//
// Notifiers are advisory: a failed notification never fails the run.
package notify
