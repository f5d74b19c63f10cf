package frame

import (
	"math"
	"sort"
	"strings"

	"github.com/cbsinteractive/pkg/timecode"
	"github.com/pkg/errors"
)

// ErrMalformedTimecode is the cause of every error returned by Validate
var ErrMalformedTimecode = errors.New("malformed timecode")

// Validate reports whether tc is a well formed HH:MM:SS or HH:MM:SS:FF
// timecode for the converter's rate. Minutes and seconds must be below
// 60. The frame field must be below the frame rate; at fractional rates
// it may also equal the rounded rate, as SMPTEFromFrame produces that.
func (c *Converter) Validate(tc string) error {
	_, err := c.parse(tc)
	return err
}

// Span converts an in and an out mark into a time range in seconds,
// ordered so that the start is not after the end.
func (c *Converter) Span(in, out string) (timecode.Range, error) {
	a, err := c.parse(in)
	if err != nil {
		return timecode.Range{}, errors.Wrap(err, "in mark")
	}
	b, err := c.parse(out)
	if err != nil {
		return timecode.Range{}, errors.Wrap(err, "out mark")
	}
	return timecode.Range{a, b}.Canon(), nil
}

// Splice converts pairs of in and out marks into a sorted splice
func (c *Converter) Splice(marks ...[2]string) (timecode.Splice, error) {
	s := make(timecode.Splice, 0, len(marks))
	for i, m := range marks {
		r, err := c.Span(m[0], m[1])
		if err != nil {
			return nil, errors.Wrapf(err, "span %d", i)
		}
		s = append(s, r)
	}
	sort.Sort(s)
	return s, nil
}

// maxFrame is the largest frame field SMPTEFromFrame can produce
func (c *Converter) maxFrame() float64 {
	fps := c.fps()
	if fps == math.Trunc(fps) {
		return fps - 1
	}
	return math.Round(fps)
}

// parse checks tc field by field and returns its position in seconds
func (c *Converter) parse(tc string) (float64, error) {
	p := strings.Split(tc, ":")
	switch len(p) {
	case 3:
		p = append(p, "00")
	case 4:
	default:
		return 0, errors.Wrapf(ErrMalformedTimecode, "%q: want 3 or 4 fields, got %d", tc, len(p))
	}

	names := [...]string{"hours", "minutes", "seconds", "frames"}
	for i, s := range p {
		s = strings.TrimSpace(s)
		p[i] = s
		v := number(s)
		if s == "" || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) {
			return 0, errors.Wrapf(ErrMalformedTimecode, "%q: %s field %q is not a whole number", tc, names[i], s)
		}
		switch {
		case (i == 1 || i == 2) && v >= 60:
			return 0, errors.Wrapf(ErrMalformedTimecode, "%q: %s %v out of range", tc, names[i], v)
		case i == 3 && v > c.maxFrame():
			return 0, errors.Wrapf(ErrMalformedTimecode, "%q: frame %v out of range at %s", tc, v, c.rate)
		}
	}

	r, err := timecode.Parse(strings.Join(p, ":"), c.fps())
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedTimecode, "%q: %v", tc, err)
	}
	return r[1], nil
}
