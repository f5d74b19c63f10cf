// Package test holds assertions shared by the package tests
package test

import (
	"math"
	"testing"
)

// AssertWantErr checks err against the wanted error message. It returns
// true when an error was received or expected, so the caller can stop
// checking results.
func AssertWantErr(err error, wantErr, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, wantErr)
		}
		return true
	} else if wantErr != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, wantErr)
		return true
	}
	return false
}

// AssertPosition compares two playback positions in seconds. NaN matches
// only NaN; finite values must agree to within a microsecond.
func AssertPosition(got, want float64, caller string, t *testing.T) {
	t.Helper()
	switch {
	case math.IsNaN(want):
		if !math.IsNaN(got) {
			t.Errorf("%s wrong position, got %v, expected NaN", caller, got)
		}
	case math.IsNaN(got) || math.Abs(got-want) > 1e-6:
		t.Errorf("%s wrong position, got %v, expected %v", caller, got, want)
	}
}
