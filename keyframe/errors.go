package keyframe

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMotionNotFound is returned when an embedded motion does not exist.
	ErrMotionNotFound = errors.New("motion not found")

	// ErrNoKeyframeData is returned when a motion file holds no tracks.
	ErrNoKeyframeData = errors.New("no keyframe data")

	// ErrAlreadyPlaying is returned when Play is called on a busy Player.
	ErrAlreadyPlaying = errors.New("motion already playing")
)

// TrackLengthMismatchError is returned when a track has a different number of times and points.
type TrackLengthMismatchError struct {
	Joint  string
	Times  int
	Points int
}

// NewTrackLengthMismatchError returns a TrackLengthMismatchError.
func NewTrackLengthMismatchError(joint string, times, points int) error {
	return &TrackLengthMismatchError{Joint: joint, Times: times, Points: points}
}

func (e *TrackLengthMismatchError) Error() string {
	return fmt.Sprintf("track %q has %d times but %d points", e.Joint, e.Times, e.Points)
}

// NonMonotonicTimesError is returned when a track's timestamps decrease.
type NonMonotonicTimesError struct {
	Joint string
	Index int
	From  float64
	To    float64
}

// NewNonMonotonicTimesError returns a NonMonotonicTimesError for the segment starting at index.
func NewNonMonotonicTimesError(joint string, index int, from, to float64) error {
	return &NonMonotonicTimesError{Joint: joint, Index: index, From: from, To: to}
}

func (e *NonMonotonicTimesError) Error() string {
	return fmt.Sprintf("track %q times decrease at index %d (%v -> %v)", e.Joint, e.Index, e.From, e.To)
}
