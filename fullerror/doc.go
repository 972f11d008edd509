// Package fullerror renders an error together with its whole cause chain.
//
// It exposes a single generic type Error[E] that owns one inner error value and
// implements contract.FullError. Printing it yields the inner message followed by
// one line per cause:
//
//	ErrA error
//	from => error variant a: 5
//
// Key characteristics:
//   - Separator header read from FULLERROR_SOURCE_HEADER on every render, "from =>" by default
//   - Causes discovered through Unwrap() error or the pkg/errors Cause() error convention
//   - Transparent access to the inner value via Inner and InnerMut
//   - Debug formatting (%#v, %+v) delegated to the inner value
//   - errors.Is / errors.As matched against the inner chain without exposing an extra cause level
//
// Wrap and Try adapt arbitrary errors at propagation sites; Render prints any error
// with per-call options.
package fullerror
