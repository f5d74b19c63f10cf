package player

import (
	"fmt"
	"math"

	"github.com/cbsinteractive/frameseek/frame"
	"github.com/cbsinteractive/frameseek/service/exceptions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNonFiniteTarget is returned when a seek target resolves to NaN or an
// infinity, usually because of a malformed timecode
var ErrNonFiniteTarget = errors.New("seek target is not a finite position")

// Seeker moves a Player to frame accurate positions
type Seeker struct {
	player   Player
	conv     *frame.Converter
	logger   logrus.FieldLogger
	reporter exceptions.Reporter
}

// NewSeeker returns a Seeker driving p with positions computed by c
func NewSeeker(p Player, c *frame.Converter, opts ...SeekerOption) *Seeker {
	s := &Seeker{
		player:   p,
		conv:     c,
		logger:   discardLogger(),
		reporter: &exceptions.NoopReporter{},
	}
	for _, o := range opts {
		o.applySeeker(s)
	}
	return s
}

// Frame returns the frame currently shown
func (s *Seeker) Frame() int64 { return s.conv.FrameAt(s.player.CurrentTime()) }

// SMPTE returns the current position as HH:MM:SS:FF
func (s *Seeker) SMPTE() string { return s.conv.SMPTE(s.player.CurrentTime()) }

// Time returns the current position as HH:MM:SS
func (s *Seeker) Time() string { return s.conv.Time(s.player.CurrentTime()) }

// SeekTo moves the player to target. A target that does not resolve to a
// finite position leaves the player where it is; the failure is logged,
// reported and returned.
func (s *Seeker) SeekTo(target frame.Target) error {
	pos := s.conv.Resolve(target)
	fields := logrus.Fields{
		"target":       fmt.Sprintf("%T(%v)", target, target),
		"current_time": s.player.CurrentTime(),
		"position":     pos,
	}
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		err := errors.Wrapf(ErrNonFiniteTarget, "seek to %v", fields["target"])
		s.logger.WithFields(fields).Warn("ignoring seek")
		s.reporter.ReportException(err, exceptions.Fields(fields))
		return err
	}
	s.logger.WithFields(fields).Debug("seek")
	s.player.SetCurrentTime(pos)
	return nil
}

// SeekForward pauses the player and moves it n frames forward. Zero
// counts as a single frame; a negative n moves back.
func (s *Seeker) SeekForward(n int64) { s.step(n, frame.Forward) }

// SeekBackward pauses the player and moves it n frames back. Zero counts
// as a single frame; a negative n moves forward.
func (s *Seeker) SeekBackward(n int64) { s.step(n, frame.Backward) }

func (s *Seeker) step(n int64, d frame.Direction) {
	if n == 0 {
		n = 1
	}
	if !s.player.Paused() {
		s.player.Pause()
	}
	cur := s.Frame()
	pos := s.conv.Step(cur, n, d)
	s.logger.WithFields(logrus.Fields{
		"frame":     cur,
		"frames":    n,
		"direction": d,
		"position":  pos,
	}).Debug("step")
	s.player.SetCurrentTime(pos)
}
