// Package session orchestrates configuration sessions: one in-memory
// state per vehicle id, mutated through reducer actions under a per-key
// lock and mirrored to a ConfigStore on every change. The mirror is
// best-effort; storage failures are logged and never surface to the
// dispatching caller.
package session
