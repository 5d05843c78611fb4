package keyframe

import (
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestTrackValidate(t *testing.T) {
	test.That(t, twoPointTrack("HeadYaw").Validate(), test.ShouldBeNil)

	mismatch := Track{Joint: "HeadYaw", Times: []float64{0, 1}, Points: []Point{{Angle: 0}}}
	err := mismatch.Validate()
	var lengthErr *TrackLengthMismatchError
	test.That(t, errors.As(err, &lengthErr), test.ShouldBeTrue)
	test.That(t, lengthErr.Joint, test.ShouldEqual, "HeadYaw")
	test.That(t, lengthErr.Times, test.ShouldEqual, 2)
	test.That(t, lengthErr.Points, test.ShouldEqual, 1)

	decreasing := Track{Joint: "HeadPitch", Times: []float64{0, 2, 1}, Points: make([]Point, 3)}
	err = decreasing.Validate()
	var orderErr *NonMonotonicTimesError
	test.That(t, errors.As(err, &orderErr), test.ShouldBeTrue)
	test.That(t, orderErr.Index, test.ShouldEqual, 1)
	test.That(t, err.Error(), test.ShouldContainSubstring, "HeadPitch")
}

func TestNewSet(t *testing.T) {
	head := twoPointTrack("HeadYaw")
	knee := Track{Joint: "LKneePitch", Times: []float64{0.5, 3}, Points: make([]Point, 2)}

	set, err := NewSet("wave", head, knee)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, set.Name(), test.ShouldEqual, "wave")
	test.That(t, set.Joints(), test.ShouldResemble, []string{"HeadYaw", "LKneePitch"})
	test.That(t, set.Start(), test.ShouldEqual, 0.5)
	test.That(t, set.End(), test.ShouldEqual, 3.)
	test.That(t, set.Duration(), test.ShouldEqual, 2.5)

	_, ok := set.Track("RKneePitch")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSetIsImmutable(t *testing.T) {
	head := twoPointTrack("HeadYaw")
	set, err := NewSet("wave", head)
	test.That(t, err, test.ShouldBeNil)

	head.Times[1] = 100
	head.Points[0].Angle = 100
	tr, ok := set.Track("HeadYaw")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, tr.Times, test.ShouldResemble, []float64{1, 2})

	tr.Points[0].Angle = -1
	again, _ := set.Track("HeadYaw")
	test.That(t, again.Points[0].Angle, test.ShouldEqual, 0.2)

	joints := set.Joints()
	joints[0] = "changed"
	test.That(t, set.Joints()[0], test.ShouldEqual, "HeadYaw")
}

func TestNewSetReportsEveryDefect(t *testing.T) {
	_, err := NewSet("broken",
		twoPointTrack("HeadYaw"),
		twoPointTrack("HeadYaw"),
		Track{Joint: "HeadPitch", Times: []float64{0}, Points: nil},
		Track{Times: []float64{0}, Points: make([]Point, 1)},
	)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "broken")
	test.That(t, len(multierr.Errors(errors.Cause(err))), test.ShouldEqual, 3)
}

func TestEmptySet(t *testing.T) {
	set, err := NewSet("empty")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, set.Start(), test.ShouldEqual, 0.)
	test.That(t, set.End(), test.ShouldEqual, 0.)
	test.That(t, Interpolate(set, 1), test.ShouldBeEmpty)
}
