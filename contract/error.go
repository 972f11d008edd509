// Package contract exposes the minimal interfaces used by other packages.
//
// Implementations of FullError must render the complete cause chain from Error()
// and must not expose an Unwrap() method of their own.
package contract

import "io"

// Causer is the github.com/pkg/errors convention for reporting an underlying cause.
// It is consulted when an error has no Unwrap() error method.
type Causer interface {
	error
	Cause() error
}

// HeaderSource resolves the separator header printed before each cause.
//
// LookupHeader reports ok=false when no header is configured. A source may return
// ok=true with an invalid value; callers fall back to the default in both cases.
type HeaderSource interface {
	LookupHeader() (header string, ok bool)
}

// FullError is the stable surface of a cause-rendering wrapper over an inner E.
//
// The interface intentionally contains no Unwrap: a FullError sits at the outermost
// layer and renders its inner chain inline.
type FullError[E error] interface {
	error
	io.WriterTo
	Inner() E
	InnerMut() *E
}
