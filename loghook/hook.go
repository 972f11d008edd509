// Package loghook expands error fields of logrus entries into the full cause chain.
package loghook

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/next-trace/scg-fullerror/fullerror"
)

// Hook replaces an error value stored under Key with its rendered cause chain.
type Hook struct {
	key    string
	levels []logrus.Level
	render []fullerror.Option
}

var _ logrus.Hook = (*Hook)(nil)

// Option configures a Hook during New().
type Option func(*Hook)

// WithKey sets the entry field holding the error. Defaults to logrus.ErrorKey.
func WithKey(key string) Option { return func(h *Hook) { h.key = key } }

// WithLevels limits the hook to the given levels. Defaults to logrus.AllLevels.
func WithLevels(levels ...logrus.Level) Option {
	return func(h *Hook) { h.levels = levels }
}

// WithRenderOptions passes opts to every fullerror.Render call.
func WithRenderOptions(opts ...fullerror.Option) Option {
	return func(h *Hook) { h.render = append(h.render, opts...) }
}

// New builds a Hook. Without options it fires on every level and reads logrus.ErrorKey.
func New(opts ...Option) *Hook {
	h := &Hook{
		key:    logrus.ErrorKey,
		levels: logrus.AllLevels,
	}
	for _, o := range opts {
		o(h)
	}

	return h
}

func (h *Hook) Levels() []logrus.Level { return h.levels }

// Fire renders the error field in place. Entries without an error field are left untouched.
func (h *Hook) Fire(entry *logrus.Entry) error {
	v, ok := entry.Data[h.key]
	if !ok {
		return nil
	}

	err, ok := v.(error)
	if !ok || err == nil {
		return nil
	}

	var b strings.Builder
	if rerr := fullerror.Render(&b, err, h.render...); rerr != nil {
		return rerr
	}

	entry.Data[h.key] = strings.TrimSuffix(b.String(), "\n")

	return nil
}
