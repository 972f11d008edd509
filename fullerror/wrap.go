package fullerror

import (
	"github.com/pkg/errors"
)

// Wrap adapts err at a propagation site.
//
// Behavior:
//   - nil input => nil output
//   - if err is already an Error[E] => returned as-is
//   - otherwise wrap it into an *Error[error]
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(inlineRenderer); ok {
		return err
	}

	return New(err)
}

// Try passes v through and wraps err with Wrap.
//
//	n, err := fullerror.Try(strconv.Atoi(s))
func Try[T any](v T, err error) (T, error) {
	return v, Wrap(err)
}

// WrapAs wraps the first E found in err's chain. It reports false when err holds no E.
func WrapAs[E error](err error) (*Error[E], bool) {
	var target E
	if err == nil || !errors.As(err, &target) {
		return nil, false
	}

	return New(target), true
}
