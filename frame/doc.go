// Package frame converts between playback positions and frame accurate
// timecodes for a video of a fixed frame rate. The units handled are:
//
// 	frame number   a zero based frame index, frame 0 starts at 0s
// 	SMPTE          HH:MM:SS:FF
// 	time           HH:MM:SS
// 	seconds        a float64 playback position
// 	milliseconds   a float64 playback position
//
// A Converter is bound to one Rate and is safe for concurrent use. It
// never touches a player; it turns a current time into timecodes and a
// seek Target into the playback position to hand to one.
//
// Conversions that parse a timecode string do not fail. A malformed
// segment turns into NaN and the NaN propagates through the result, so
// callers that apply a result to a player must check it is finite first.
// Validate offers a strict check for callers that want an error instead.
package frame
