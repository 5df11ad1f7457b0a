// Package diffdebug wraps the structured logger used for the engine's
// debug flag (spec.md §6, §9 "Debug flag"). Tracing never changes
// control flow; it only records what the engine decided and why, so a
// caller debugging a diff can see which strategy ran, which gaps fell
// through to the corridor heuristic, and which snakes were rejected.
//
// go.uber.org/zap is the structured-logging library most represented
// among the service-shaped repos in the retrieved corpus (see
// other_examples/manifests/fulmenhq-gofulmen/go.mod); the teacher itself
// has no logging story (it debugs via its cmd/compare harness's
// fmt.Printf calls), so this package adopts zap directly rather than
// generalizing an absent teacher pattern.
package diffdebug

import "go.uber.org/zap"

// Tracer records diagnostic events. The zero value is usable and
// discards everything, matching the "debug=false" production path.
type Tracer struct {
	log *zap.Logger
}

// New returns a Tracer. When enabled is false, it returns a no-op
// tracer (zap.NewNop()) so call sites never need to branch on whether
// debug is on.
func New(enabled bool) *Tracer {
	if !enabled {
		return &Tracer{log: zap.NewNop()}
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		// Development config construction only fails on bad encoder
		// config, which is compiled-in and constant; fall back to Nop
		// rather than let a logging failure abort a diff.
		return &Tracer{log: zap.NewNop()}
	}
	return &Tracer{log: log}
}

// Trace logs a structured diagnostic event tagged with the emitting
// component (e.g. "anchor", "corridor", "strategy:commonSES").
func (t *Tracer) Trace(component, msg string, fields ...zap.Field) {
	if t == nil || t.log == nil {
		return
	}
	t.log.Debug(msg, append([]zap.Field{zap.String("component", component)}, fields...)...)
}

// Sync flushes any buffered log entries. Callers should defer Sync
// after obtaining a Tracer from New, mirroring the standard zap usage
// pattern.
func (t *Tracer) Sync() {
	if t == nil || t.log == nil {
		return
	}
	_ = t.log.Sync()
}
