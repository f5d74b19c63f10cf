package player

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cbsinteractive/frameseek/frame"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyStarted is returned by Start on a running Poller
var ErrAlreadyStarted = errors.New("poller already started")

// Format selects how a Poller reports the current position
type Format int

// Reading formats
const (
	FormatSMPTE Format = iota
	FormatTime
	FormatFrame
)

func (f Format) String() string {
	switch f {
	case FormatSMPTE:
		return "SMPTE"
	case FormatTime:
		return "time"
	case FormatFrame:
		return "frame"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Reading is the position of the player at one poll
type Reading struct {
	Format Format
	Frame  int64

	// Value is the position in Format; the decimal frame number for
	// FormatFrame.
	Value string
}

// Callback receives readings. It runs on the poller's goroutine and must
// not call Stop.
type Callback func(Reading)

// Poller periodically reads the position of a playing Player and calls
// back whenever the reading changes.
type Poller struct {
	player   Player
	conv     *frame.Converter
	format   Format
	callback Callback
	logger   logrus.FieldLogger
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
	last string
}

// NewPoller returns a stopped Poller reporting the position of p in format f
func NewPoller(p Player, c *frame.Converter, f Format, cb Callback, opts ...PollerOption) *Poller {
	pl := &Poller{player: p, conv: c, format: f, callback: cb, logger: discardLogger()}
	for _, o := range opts {
		o.applyPoller(pl)
	}
	if pl.interval <= 0 {
		pl.interval = halfFrame(c.Rate())
	}
	return pl
}

func halfFrame(r frame.Rate) time.Duration {
	d := time.Duration(float64(time.Second) / r.FPS() / 2)
	if d <= 0 {
		d = 1
	}
	return d
}

// Interval returns the time between polls
func (p *Poller) Interval() time.Duration { return p.interval }

// Start begins polling until Stop is called or ctx is done. It returns
// ErrAlreadyStarted until the goroutine of a previous Start has exited.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != nil {
		select {
		case <-p.done:
		default:
			return ErrAlreadyStarted
		}
	}

	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.last = ""
	go p.run(ctx, p.stop, p.done)

	p.logger.WithFields(logrus.Fields{
		"format":   p.format,
		"interval": p.interval,
	}).Debug("poller started")
	return nil
}

// Stop ends polling and waits for an in flight callback to return.
// Stopping a stopped Poller does nothing.
func (p *Poller) Stop() {
	// done stays set until the goroutine closes it, so a concurrent Start
	// cannot launch a second one
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop = nil
	p.mu.Unlock()

	if done == nil {
		return
	}
	if stop != nil {
		close(stop)
	}
	<-done
	if stop != nil {
		p.logger.Debug("poller stopped")
	}
}

func (p *Poller) run(ctx context.Context, stop, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-t.C:
			p.poll()
		}
	}
}

// poll delivers the current reading if the player is playing and the
// reading differs from the last one delivered
func (p *Poller) poll() {
	if p.player.Paused() || p.player.Ended() {
		return
	}
	r := p.read()
	if r.Value == p.last {
		return
	}
	p.last = r.Value
	p.callback(r)
}

func (p *Poller) read() Reading {
	t := p.player.CurrentTime()
	r := Reading{Format: p.format, Frame: p.conv.FrameAt(t)}
	switch p.format {
	case FormatSMPTE:
		r.Value = p.conv.SMPTE(t)
	case FormatTime:
		r.Value = p.conv.Time(t)
	default:
		r.Value = strconv.FormatInt(r.Frame, 10)
	}
	return r
}
