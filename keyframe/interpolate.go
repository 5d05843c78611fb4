package keyframe

import (
	"github.com/pkg/errors"
)

// EvalBezier evaluates the cubic Bezier with control values y0..y3 at u in [0, 1].
// It returns y0 exactly at u == 0 and y3 exactly at u == 1.
func EvalBezier(y0, y1, y2, y3, u float64) float64 {
	mu := 1 - u
	return mu*mu*mu*y0 + 3*mu*mu*u*y1 + 3*mu*u*u*y2 + u*u*u*y3
}

// AngleAt returns the joint angle at elapsed, and false when elapsed is not strictly inside
// any segment of the track.
func (tr Track) AngleAt(elapsed float64) (float64, bool) {
	n := len(tr.Times)
	if len(tr.Points) < n {
		n = len(tr.Points)
	}
	for i := 0; i+1 < n; i++ {
		t0, t1 := tr.Times[i], tr.Times[i+1]
		if t1 <= t0 {
			// zero length segment
			continue
		}
		if !(t0 < elapsed && elapsed < t1) {
			continue
		}

		start, end := tr.Points[i], tr.Points[i+1]
		y0 := start.Angle
		y1 := y0 + start.Right.DAngle
		y3 := end.Angle
		y2 := y3 - end.Left.DAngle
		u := (elapsed - t0) / (t1 - t0)
		return EvalBezier(y0, y1, y2, y3, u), true
	}
	return 0, false
}

// Interpolate returns the target angle of every joint whose track spans elapsed. Joints
// outside their track, or exactly on a keyframe boundary, are left out; callers keep their
// previous target for those.
func Interpolate(set *Set, elapsed float64) map[string]float64 {
	targets := make(map[string]float64, len(set.tracks))
	for joint, tr := range set.tracks {
		if angle, ok := tr.AngleAt(elapsed); ok {
			targets[joint] = angle
		}
	}
	return targets
}

// Sample is one evaluated point of a trajectory.
type Sample struct {
	Time  float64
	Angle float64
}

// SampleSet evaluates every track from `from` to `to` inclusive in increments of step and
// returns the defined samples per joint.
func SampleSet(set *Set, from, to, step float64) (map[string][]Sample, error) {
	if !(step > 0) {
		return nil, errors.Errorf("sample step must be positive, got %v", step)
	}
	if to < from {
		return nil, errors.Errorf("sample range end %v is before start %v", to, from)
	}

	samples := make(map[string][]Sample, len(set.tracks))
	for i := 0; ; i++ {
		t := from + float64(i)*step
		if t > to {
			break
		}
		for joint, angle := range Interpolate(set, t) {
			samples[joint] = append(samples[joint], Sample{Time: t, Angle: angle})
		}
	}
	return samples, nil
}
