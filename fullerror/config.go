package fullerror

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/next-trace/scg-fullerror/contract"
)

const (
	// HeaderEnv is the environment variable holding the separator header.
	HeaderEnv = "FULLERROR_SOURCE_HEADER"
	// DefaultHeader is used when HeaderEnv is unset or not valid UTF-8.
	DefaultHeader = "from =>"
)

type envSource struct{}

func (envSource) LookupHeader() (string, bool) { return os.LookupEnv(HeaderEnv) }

// EnvSource returns the process-wide HeaderSource backed by HeaderEnv.
func EnvSource() contract.HeaderSource { return envSource{} }

// SetHeader sets the process-wide separator header. Meant for program start.
func SetHeader(tab string) error {
	return errors.Wrapf(os.Setenv(HeaderEnv, tab), "fullerror: set %s", HeaderEnv)
}

// Header returns the separator header currently in effect. It is never cached.
func Header() string { return resolveHeader(EnvSource()) }

func resolveHeader(src contract.HeaderSource) string {
	if src == nil {
		return DefaultHeader
	}

	h, ok := src.LookupHeader()
	if !ok || !utf8.ValidString(h) {
		return DefaultHeader
	}

	return h
}
