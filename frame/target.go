package frame

// Seek offsets added to resolved targets. Landing exactly on a frame
// boundary makes some players display the previous frame.
const (
	seekEpsilon = 0.001
	stepEpsilon = 0.00001
)

// Target is a seek destination in one of the supported units. The set of
// implementations is closed: SMPTE, Time, Number, Seconds and Milliseconds.
type Target interface {
	resolve(c *Converter) float64
}

// SMPTE is a seek target in HH:MM:SS:FF form
type SMPTE string

// Time is a seek target in HH:MM:SS form
type Time string

// Number is a seek target given as a frame number
type Number int64

// Seconds is a seek target given as a playback position in seconds
type Seconds float64

// Milliseconds is a seek target given as a playback position in milliseconds
type Milliseconds float64

func (t SMPTE) resolve(c *Converter) float64 { return c.Milliseconds(string(t))/1000 + seekEpsilon }

func (t Time) resolve(c *Converter) float64 { return c.Milliseconds(string(t))/1000 + seekEpsilon }

func (t Number) resolve(c *Converter) float64 {
	return SMPTE(c.SMPTEFromFrame(int64(t))).resolve(c)
}

func (t Seconds) resolve(*Converter) float64 { return float64(t) }

func (t Milliseconds) resolve(*Converter) float64 { return float64(t)/1000 + seekEpsilon }

// Resolve returns the playback position in seconds for seek target t.
// The result is not clamped to the media duration and is NaN when t holds
// a malformed timecode.
func (c *Converter) Resolve(t Target) float64 {
	return t.resolve(c)
}

// Direction of a frame step
type Direction int

// Frame step directions
const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Step returns the playback position delta frames away from frame in
// direction d. Negative results are returned as is.
func (c *Converter) Step(frame, delta int64, d Direction) float64 {
	n := frame + delta
	if d == Backward {
		n = frame - delta
	}
	return float64(n)/c.fps() + stepEpsilon
}
