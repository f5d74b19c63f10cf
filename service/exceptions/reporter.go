package exceptions

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const defaultFlushTimeout = time.Second * 5

// Fields carry context about a failed operation, such as the seek target
// and the player position at the time
type Fields map[string]interface{}

// Reporter sends exceptions to an external source
type Reporter interface {
	ReportException(err error, fields Fields)
}

// NoopReporter is a no-op exception reporter
type NoopReporter struct{}

// ReportException does nothing
func (r *NoopReporter) ReportException(error, Fields) {}

// LogReporter writes exceptions to a logger at error level
type LogReporter struct {
	Logger logrus.FieldLogger
}

// ReportException logs err with its fields
func (r *LogReporter) ReportException(err error, fields Fields) {
	r.Logger.WithFields(logrus.Fields(fields)).WithError(err).Error("exception")
}

// SentryReporter is a Reporter that sends error information to Sentry
type SentryReporter struct {
	flushTimeout time.Duration
}

// NewSentryReporter creates and returns an instance of SentryReporter
func NewSentryReporter(dsn, env string) (*SentryReporter, error) {
	err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: env})
	if err != nil {
		return nil, err
	}

	return &SentryReporter{flushTimeout: defaultFlushTimeout}, nil
}

// ReportException will send errors to Sentry, with fields attached as
// extra data
func (r *SentryReporter) ReportException(err error, fields Fields) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetExtras(fields)
		sentry.CaptureException(err)
	})
	sentry.Flush(r.flushTimeout)
}

// New returns a SentryReporter when dsn is set, and a LogReporter on
// logger otherwise
func New(dsn, env string, logger logrus.FieldLogger) (Reporter, error) {
	if dsn == "" {
		return &LogReporter{Logger: logger}, nil
	}
	return NewSentryReporter(dsn, env)
}
