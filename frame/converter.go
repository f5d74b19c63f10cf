package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Converter converts playback positions and timecodes at a fixed rate
type Converter struct {
	rate       Rate
	clockHours bool
}

// Option configures a Converter
type Option func(*Converter)

// WithClockHours makes Time and SMPTE report hours the way a 12 hour
// wall clock would: hours of the day, with 13 and above shown as h-12.
// Timecodes written by older review clients use this form. Without it,
// hours are unbounded.
func WithClockHours() Option {
	return func(c *Converter) { c.clockHours = true }
}

// New returns a Converter for rate. The rate must come from NewRate,
// RateFromFramerate or one of the predefined rates.
func New(rate Rate, opts ...Option) *Converter {
	c := &Converter{rate: rate}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Rate returns the frame rate of the converter
func (c *Converter) Rate() Rate { return c.rate }

func (c *Converter) fps() float64 { return float64(c.rate) }

// FrameAt returns the frame shown at playback position t
func (c *Converter) FrameAt(t float64) int64 {
	return int64(math.Floor(t * c.fps()))
}

// Time formats playback position t as HH:MM:SS
func (c *Converter) Time(t float64) string {
	h, m, s := c.clock(t)
	return pad(h) + ":" + pad(m) + ":" + pad(s)
}

// SMPTE formats playback position t as HH:MM:SS:FF. FF is the frame
// within the current second.
func (c *Converter) SMPTE(t float64) string {
	ff := math.Floor(math.Mod(t, 1) * c.fps())
	return c.Time(t) + ":" + pad(ff)
}

// SMPTEFromFrame formats frame number n as HH:MM:SS:FF
func (c *Converter) SMPTEFromFrame(n int64) string {
	var (
		fps    = c.fps()
		minute = fps * 60
		hour   = minute * 60
		f      = float64(n)
	)
	hh := math.Floor(f / hour)
	mm := math.Mod(math.Floor(f/minute), 60)
	ss := math.Mod(math.Floor(f/fps), 60)
	ff := math.Round(math.Mod(f, fps))
	return pad(hh) + ":" + pad(mm) + ":" + pad(ss) + ":" + pad(ff)
}

// Seconds returns the whole seconds of an HH:MM:SS or HH:MM:SS:FF
// timecode. The frame field is ignored.
func (c *Converter) Seconds(tc string) float64 {
	p := strings.Split(tc, ":")
	return segment(p, 0)*3600 + segment(p, 1)*60 + segment(p, 2)
}

// Frames returns the frame number of an HH:MM:SS:FF timecode. The result
// is NaN when any of the four fields is missing or malformed.
func (c *Converter) Frames(tc string) float64 {
	var (
		p   = strings.Split(tc, ":")
		fps = c.fps()
	)
	hh := segment(p, 0) * 3600 * fps
	mm := segment(p, 1) * 60 * fps
	ss := segment(p, 2) * fps
	ff := segment(p, 3)
	return math.Floor(hh + mm + ss + ff)
}

// Milliseconds returns the playback position of an HH:MM:SS:FF or
// HH:MM:SS timecode in milliseconds. A missing or malformed frame field
// counts as frame 0.
func (c *Converter) Milliseconds(tc string) float64 {
	ff := segment(strings.Split(tc, ":"), 3)
	if math.IsNaN(ff) {
		ff = 0
	}
	return math.Floor(c.Seconds(tc)*1000 + (1000/c.fps())*ff)
}

// clock splits t into hours, minutes and seconds. The position is
// truncated to whole milliseconds before it is split.
func (c *Converter) clock(t float64) (h, m, s float64) {
	ms := math.Trunc(t * 1000)
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		nan := math.NaN()
		return nan, nan, nan
	}
	sec := math.Floor(ms / 1000)
	h = math.Floor(sec / 3600)
	m = floorMod(math.Floor(sec/60), 60)
	s = floorMod(sec, 60)
	if c.clockHours {
		h = floorMod(h, 24)
		if h > 12 {
			h -= 12
		}
	}
	return h, m, s
}

func floorMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// pad formats a whole number with at least two digits
func pad(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return fmt.Sprintf("%02d", int64(v))
}

// segment returns field i of a split timecode as a number. A missing
// field is NaN, an empty one is 0.
func segment(p []string, i int) float64 {
	if i >= len(p) {
		return math.NaN()
	}
	return number(p[i])
}

func number(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat also accepts inf and nan spellings
	if strings.ContainsAny(s, "nN") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}
