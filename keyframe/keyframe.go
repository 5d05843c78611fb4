// Package keyframe turns timed per-joint Bezier control points into continuous joint angle
// trajectories. A Set holds one Track per joint and is immutable once built; Interpolate
// evaluates every track at an elapsed playback time.
package keyframe

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// InterpolationKind is the interpolation type tag authored on a handle. Evaluation is always
// cubic Bezier; the tag is carried for tools that use other schemes.
type InterpolationKind int

// Handle is a Bezier control point offset relative to its anchor point's (time, angle).
type Handle struct {
	Kind   InterpolationKind
	DTime  float64
	DAngle float64
}

// Point is one control point of a track. Left shapes the curve arriving at the point, Right
// shapes the curve leaving it.
type Point struct {
	Angle float64
	Left  Handle
	Right Handle
}

// Track is the trajectory of a single joint: one Point per timestamp.
type Track struct {
	Joint  string
	Times  []float64
	Points []Point
}

// Validate checks that times and points line up and that times never decrease. Equal
// neighbouring timestamps are allowed; those segments are skipped during evaluation.
func (tr Track) Validate() error {
	if len(tr.Times) != len(tr.Points) {
		return NewTrackLengthMismatchError(tr.Joint, len(tr.Times), len(tr.Points))
	}
	for i := 0; i+1 < len(tr.Times); i++ {
		if !(tr.Times[i] <= tr.Times[i+1]) {
			return NewNonMonotonicTimesError(tr.Joint, i, tr.Times[i], tr.Times[i+1])
		}
	}
	return nil
}

// DegenerateSegments returns the indices i for which Times[i] == Times[i+1].
func (tr Track) DegenerateSegments() []int {
	var idx []int
	for i := 0; i+1 < len(tr.Times); i++ {
		if tr.Times[i] == tr.Times[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Start returns the first timestamp of the track, or 0 for an empty track.
func (tr Track) Start() float64 {
	if len(tr.Times) == 0 {
		return 0
	}
	return tr.Times[0]
}

// End returns the last timestamp of the track, or 0 for an empty track.
func (tr Track) End() float64 {
	if len(tr.Times) == 0 {
		return 0
	}
	return tr.Times[len(tr.Times)-1]
}

func (tr Track) clone() Track {
	return Track{
		Joint:  tr.Joint,
		Times:  append([]float64(nil), tr.Times...),
		Points: append([]Point(nil), tr.Points...),
	}
}

// Set maps joint names to their tracks for one motion.
type Set struct {
	name   string
	tracks map[string]Track
	joints []string
}

// NewSet validates the tracks and returns an immutable set. Every invalid track is reported.
func NewSet(name string, tracks ...Track) (*Set, error) {
	s := &Set{name: name, tracks: make(map[string]Track, len(tracks))}

	var errs error
	for _, tr := range tracks {
		if tr.Joint == "" {
			errs = multierr.Append(errs, errors.New("track has no joint name"))
			continue
		}
		if _, ok := s.tracks[tr.Joint]; ok {
			errs = multierr.Append(errs, errors.Errorf("duplicate track for joint %q", tr.Joint))
			continue
		}
		if err := tr.Validate(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		s.tracks[tr.Joint] = tr.clone()
		s.joints = append(s.joints, tr.Joint)
	}
	if errs != nil {
		return nil, errors.Wrapf(errs, "invalid keyframes for motion %q", name)
	}

	sort.Strings(s.joints)
	return s, nil
}

// Name returns the motion name.
func (s *Set) Name() string {
	return s.name
}

// Joints returns the joints that have a track, sorted.
func (s *Set) Joints() []string {
	return append([]string(nil), s.joints...)
}

// Track returns a copy of the track for joint.
func (s *Set) Track(joint string) (Track, bool) {
	tr, ok := s.tracks[joint]
	if !ok {
		return Track{}, false
	}
	return tr.clone(), true
}

// Start returns the earliest timestamp across all tracks.
func (s *Set) Start() float64 {
	start, first := 0., true
	for _, tr := range s.tracks {
		if len(tr.Times) == 0 {
			continue
		}
		if first || tr.Start() < start {
			start, first = tr.Start(), false
		}
	}
	return start
}

// End returns the latest timestamp across all tracks.
func (s *Set) End() float64 {
	end, first := 0., true
	for _, tr := range s.tracks {
		if len(tr.Times) == 0 {
			continue
		}
		if first || tr.End() > end {
			end, first = tr.End(), false
		}
	}
	return end
}

// Duration returns End minus Start.
func (s *Set) Duration() float64 {
	return s.End() - s.Start()
}
