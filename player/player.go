// Package player applies frame accurate seeks to a media player and polls
// it for the frame currently on screen. The player itself, and clamping
// positions to the media duration, belong to the caller.
package player

import (
	"io/ioutil"
	"time"

	"github.com/cbsinteractive/frameseek/service/exceptions"
	"github.com/sirupsen/logrus"
)

// Player is the media element being driven. Positions are in seconds.
type Player interface {
	CurrentTime() float64
	SetCurrentTime(t float64)
	Paused() bool
	Ended() bool
	Pause()
}

// SeekerOption configures a Seeker
type SeekerOption interface {
	applySeeker(*Seeker)
}

// PollerOption configures a Poller
type PollerOption interface {
	applyPoller(*Poller)
}

type seekerOptionFunc func(*Seeker)

func (f seekerOptionFunc) applySeeker(s *Seeker) { f(s) }

type pollerOptionFunc func(*Poller)

func (f pollerOptionFunc) applyPoller(p *Poller) { f(p) }

// LoggerOption sets the logger of a Seeker or a Poller
type LoggerOption struct {
	logger logrus.FieldLogger
}

func (o LoggerOption) applySeeker(s *Seeker) { s.logger = o.logger }
func (o LoggerOption) applyPoller(p *Poller) { p.logger = o.logger }

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) LoggerOption {
	return LoggerOption{logger: l}
}

// WithReporter sets where a Seeker reports rejected seeks
func WithReporter(r exceptions.Reporter) SeekerOption {
	return seekerOptionFunc(func(s *Seeker) { s.reporter = r })
}

// WithInterval sets the poll interval of a Poller. Zero or less keeps the
// default of half a frame.
func WithInterval(d time.Duration) PollerOption {
	return pollerOptionFunc(func(p *Poller) { p.interval = d })
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}
