package fullerror

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/next-trace/scg-fullerror/contract"
)

// inlineRenderer is implemented by every Error[E], whatever E is.
type inlineRenderer interface {
	renderWith(w io.Writer, header string) error
}

// Source returns the immediate cause of err, or nil.
//
// Unwrap() error is consulted first, then the pkg/errors Cause() error convention.
// Errors that only expose Unwrap() []error report no cause.
func Source(err error) error {
	if err == nil {
		return nil
	}

	if next := xerrors.Unwrap(err); next != nil {
		return next
	}

	if c, ok := err.(contract.Causer); ok {
		return c.Cause()
	}

	return nil
}

// Chain returns err followed by each of its causes, nearest first.
// A cyclic chain never terminates.
func Chain(err error) []error {
	var out []error
	for cur := err; cur != nil; cur = Source(cur) {
		out = append(out, cur)
	}

	return out
}

// Render writes err and its cause chain to w. A nil err writes nothing.
//
// By default the header comes from FULLERROR_SOURCE_HEADER; see WithHeader and
// WithHeaderSource.
func Render(w io.Writer, err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	r := newRenderer(opts...)
	header := resolveHeader(r.source)

	if ir, ok := err.(inlineRenderer); ok {
		return ir.renderWith(w, header)
	}

	return render(w, err, header)
}

func render(w io.Writer, err error, header string) error {
	if _, werr := fmt.Fprintln(w, message(err)); werr != nil {
		return errors.Wrap(werr, "fullerror: write message")
	}

	for cause := Source(err); cause != nil; cause = Source(cause) {
		if _, werr := fmt.Fprintf(w, "%s %s\n", header, cause.Error()); werr != nil {
			return errors.Wrap(werr, "fullerror: write cause")
		}
	}

	return nil
}

func message(err error) string {
	if err == nil {
		return "<nil>"
	}

	return err.Error()
}
