package loghook_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-fullerror/fullerror"
	"github.com/next-trace/scg-fullerror/loghook"
)

type queryErr struct{ cause error }

func (e *queryErr) Error() string { return "query failed" }
func (e *queryErr) Unwrap() error { return e.cause }

func newLogger(h logrus.Hook) (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.AddHook(h)

	return l, &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	return out
}

func TestHook_ExpandsErrorField(t *testing.T) {
	t.Parallel()

	h := loghook.New(loghook.WithRenderOptions(fullerror.WithHeader("from =>")))
	l, buf := newLogger(h)

	l.WithError(&queryErr{cause: errors.New("timeout")}).Error("load user")

	out := decode(t, buf)
	assert.Equal(t, "query failed\nfrom => timeout", out[logrus.ErrorKey])
	assert.Equal(t, "load user", out["msg"])
}

func TestHook_CustomKeyAndLevels(t *testing.T) {
	t.Parallel()

	h := loghook.New(
		loghook.WithKey("cause"),
		loghook.WithLevels(logrus.ErrorLevel),
		loghook.WithRenderOptions(fullerror.WithHeader("<-")),
	)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, h.Levels())

	l, buf := newLogger(h)
	l.WithField("cause", &queryErr{cause: errors.New("timeout")}).Error("load user")

	assert.Equal(t, "query failed\n<- timeout", decode(t, buf)["cause"])
}

func TestHook_LeavesOtherFieldsAlone(t *testing.T) {
	t.Parallel()

	h := loghook.New()

	entry := logrus.NewEntry(logrus.New()).WithField("user", 42)
	require.NoError(t, h.Fire(entry))
	assert.Equal(t, 42, entry.Data["user"])

	entry = logrus.NewEntry(logrus.New()).WithField(logrus.ErrorKey, "not an error")
	require.NoError(t, h.Fire(entry))
	assert.Equal(t, "not an error", entry.Data[logrus.ErrorKey])
}

func TestHook_DefaultLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logrus.AllLevels, loghook.New().Levels())
}
