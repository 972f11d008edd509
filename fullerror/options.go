package fullerror

import "github.com/next-trace/scg-fullerror/contract"

// Option configures a single Render call.
type Option func(*renderer)

type renderer struct {
	source contract.HeaderSource
}

func newRenderer(opts ...Option) *renderer {
	r := &renderer{source: EnvSource()}
	for _, o := range opts {
		o(r)
	}

	return r
}

type staticSource string

func (s staticSource) LookupHeader() (string, bool) { return string(s), true }

// WithHeader renders with a fixed header instead of HeaderEnv.
// Invalid UTF-8 still falls back to DefaultHeader.
func WithHeader(header string) Option {
	return func(r *renderer) { r.source = staticSource(header) }
}

// WithHeaderSource renders with headers resolved from src. A nil src means DefaultHeader.
func WithHeaderSource(src contract.HeaderSource) Option {
	return func(r *renderer) { r.source = src }
}
