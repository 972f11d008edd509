// Package fullerror renders an error together with its whole cause chain.
//
// It defines a single generic type Error[E] that owns exactly one inner error and
// prints every cause reachable from it on its own line.
package fullerror

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/next-trace/scg-fullerror/contract"
)

// Error wraps an inner error of type E and renders its cause chain when printed.
//
// The zero value wraps the zero E. Error has no Unwrap method: it is meant to be the
// outermost layer, and the inner chain is rendered inline instead.
type Error[E error] struct {
	inner E
}

// compile-time guarantees
var (
	_ contract.FullError[error] = (*Error[error])(nil)
	_ xerrors.Formatter         = (*Error[error])(nil)
	_ fmt.Formatter             = (*Error[error])(nil)
	_ fmt.GoStringer            = (*Error[error])(nil)
)

// New wraps inner. It never fails.
func New[E error](inner E) *Error[E] {
	return &Error[E]{inner: inner}
}

// ------ transparent access

// Inner returns the wrapped value.
func (e *Error[E]) Inner() E { return e.inner }

// InnerMut returns a pointer to the wrapped value for in-place mutation.
// The pointer stays valid for the lifetime of e.
func (e *Error[E]) InnerMut() *E { return &e.inner }

// ------ standard error interface

// Error renders the inner message followed by one line per cause, each prefixed by
// the header resolved from FULLERROR_SOURCE_HEADER. Every line ends with "\n".
func (e *Error[E]) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = e.renderWith(&b, Header())

	return b.String()
}

// WriteTo renders e into w. A failing w is the only error source.
func (e *Error[E]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := e.renderWith(cw, Header())

	return cw.n, err
}

// Is matches target against the inner chain without exposing it as a cause.
func (e *Error[E]) Is(target error) bool { return errors.Is(e.inner, target) }

// As finds the first error in the inner chain that matches target.
func (e *Error[E]) As(target any) bool { return errors.As(e.inner, target) }

func (e *Error[E]) renderWith(w io.Writer, header string) error {
	if e == nil {
		return render(w, nil, header)
	}

	return render(w, e.inner, header)
}

// ------ debug rendering

// GoString returns the inner value's own %#v representation.
func (e *Error[E]) GoString() string {
	return fmt.Sprintf("%#v", e.inner)
}

// Format implements fmt.Formatter.
//
//	%s, %v  full cause chain (same as Error)
//	%q      quoted full cause chain
//	%#v     inner value's %#v
//	%+v     inner value's %+v (keeps pkg/errors stack traces)
func (e *Error[E]) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}

	switch verb {
	case 'v':
		switch {
		case s.Flag('#'):
			fmt.Fprintf(s, "%#v", e.inner)
		case s.Flag('+'):
			fmt.Fprintf(s, "%+v", e.inner)
		default:
			_, _ = io.WriteString(s, e.Error())
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprintf(s, "%%!%c(%T)", verb, e)
	}
}

// FormatError implements xerrors.Formatter. The chain is printed inline, so no
// further error is returned.
func (e *Error[E]) FormatError(p xerrors.Printer) error {
	p.Print(strings.TrimSuffix(e.Error(), "\n"))

	if p.Detail() {
		p.Printf("%+v", e.inner)
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
