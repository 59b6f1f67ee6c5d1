package domain

import "context"

// ChangeHooks carries the callbacks a host registers to observe state
// changes. Hooks run synchronously after a mutation has been applied and
// persisted (best-effort); they must not block for long.
type ChangeHooks struct {
	// OnStateChange receives the externally visible state after every
	// effective mutation.
	OnStateChange func(ctx context.Context, vehicleID string, state ConfigurationState)
}
