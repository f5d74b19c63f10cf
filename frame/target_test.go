package frame

import (
	"math"
	"testing"

	"github.com/cbsinteractive/frameseek/test"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		rate   Rate
		target Target
		want   float64
	}{
		{"smpte", Rate24, SMPTE("00:01:12:22"), 72.916 + 0.001},
		{"time", Rate24, Time("00:01:12"), 72.001},
		{"frame", Rate25, Number(1750), 70.001},
		{"frame with remainder", Rate24, Number(1750), 72.917},
		{"seconds", Rate24, Seconds(72), 72},
		{"milliseconds", Rate24, Milliseconds(72916), 72.917},
		{"malformed smpte", Rate24, SMPTE("garbage"), math.NaN()},
		{"nan seconds", Rate24, Seconds(math.NaN()), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.AssertPosition(New(tt.rate).Resolve(tt.target), tt.want, "Resolve()", t)
		})
	}
}

func TestResolveExact(t *testing.T) {
	c := New(Rate24)
	if g, e := c.Resolve(Seconds(10)), 10.0; g != e {
		t.Errorf("Resolve(Seconds) must not offset the target, got %v, expected %v", g, e)
	}
	if g, e := c.Resolve(Milliseconds(2000)), 2.001; g != e {
		t.Errorf("Resolve(Milliseconds) wrong target, got %v, expected %v", g, e)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		rate  Rate
		frame int64
		delta int64
		dir   Direction
		want  float64
	}{
		{"forward", Rate24, 100, 5, Forward, stepAt(105, 24)},
		{"backward", Rate24, 100, 5, Backward, stepAt(95, 24)},
		{"forward pal", Rate25, 100, 5, Forward, stepAt(105, 25)},
		{"ntsc", Rate29_97, 100, 1, Forward, stepAt(101, float64(Rate29_97))},
		{"before start", Rate24, 2, 5, Backward, stepAt(-3, 24)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.rate)
			if g, e := c.Step(tt.frame, tt.delta, tt.dir), tt.want; g != e {
				t.Errorf("Step() wrong target, got %v, expected %v", g, e)
			}
		})
	}
}

// stepAt computes n/fps + 0.00001 at run time, as Step does
func stepAt(n, fps float64) float64 {
	return n/fps + 0.00001
}

func TestDirectionString(t *testing.T) {
	if g, e := Forward.String(), "forward"; g != e {
		t.Errorf("String() got %q, expected %q", g, e)
	}
	if g, e := Backward.String(), "backward"; g != e {
		t.Errorf("String() got %q, expected %q", g, e)
	}
}
