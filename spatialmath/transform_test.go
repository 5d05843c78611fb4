package spatialmath

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestIdentity(t *testing.T) {
	id := NewIdentity()
	test.That(t, id.Rows(), test.ShouldResemble, [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	p := r3.Vector{X: 1, Y: -2, Z: 3}
	test.That(t, id.Apply(p), test.ShouldResemble, p)
	q := id.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, 1.)
	test.That(t, q.Imag, test.ShouldAlmostEqual, 0.)
}

func TestTranslation(t *testing.T) {
	tr := NewTranslation(r3.Vector{X: 0, Y: 50, Z: -85})
	test.That(t, tr.Translation(), test.ShouldResemble, r3.Vector{X: 0, Y: 50, Z: -85})
	test.That(t, tr.Apply(r3.Vector{X: 1, Y: 1, Z: 1}), test.ShouldResemble, r3.Vector{X: 1, Y: 51, Z: -84})
	test.That(t, NewIdentity().Mul(tr).Rows(), test.ShouldResemble, tr.Rows())
}

func TestElementaryRotations(t *testing.T) {
	th := math.Pi / 2

	// roll takes +y onto +z
	p := RotX(th).Apply(r3.Vector{Y: 1})
	test.That(t, p.X, test.ShouldAlmostEqual, 0.)
	test.That(t, p.Y, test.ShouldAlmostEqual, 0.)
	test.That(t, p.Z, test.ShouldAlmostEqual, 1.)

	// pitch takes +z onto +x
	p = RotY(th).Apply(r3.Vector{Z: 1})
	test.That(t, p.X, test.ShouldAlmostEqual, 1.)
	test.That(t, p.Z, test.ShouldAlmostEqual, 0.)

	// the yaw block is [[c s 0] [-s c 0] [0 0 1]], so +x goes to -y
	p = RotZ(th).Apply(r3.Vector{X: 1})
	test.That(t, p.X, test.ShouldAlmostEqual, 0.)
	test.That(t, p.Y, test.ShouldAlmostEqual, -1.)

	rows := RotZTranslated(0.3, r3.Vector{X: 1, Y: 2, Z: 3}).Rows()
	test.That(t, rows[0][1], test.ShouldEqual, math.Sin(0.3))
	test.That(t, rows[1][0], test.ShouldEqual, -math.Sin(0.3))
	test.That(t, rows[0][3], test.ShouldEqual, 1.)
	test.That(t, rows[1][3], test.ShouldEqual, 2.)
	test.That(t, rows[2][3], test.ShouldEqual, 3.)
}

func TestMulOrder(t *testing.T) {
	a := RotXTranslated(0.4, r3.Vector{Z: 100})
	b := RotYTranslated(-0.7, r3.Vector{X: 100})
	ab := a.Mul(b)
	ba := b.Mul(a)
	test.That(t, ab.AlmostEqual(ba, 1e-6), test.ShouldBeFalse)

	// applying a·b to a point equals applying b then a
	p := r3.Vector{X: 3, Y: -4, Z: 5}
	direct := ab.Apply(p)
	chained := a.Apply(b.Apply(p))
	test.That(t, direct.X, test.ShouldAlmostEqual, chained.X)
	test.That(t, direct.Y, test.ShouldAlmostEqual, chained.Y)
	test.That(t, direct.Z, test.ShouldAlmostEqual, chained.Z)
}

func TestQuaternion(t *testing.T) {
	th := math.Pi / 4
	q := RotX(th).Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Cos(th/2))
	test.That(t, q.Imag, test.ShouldAlmostEqual, math.Sin(th/2))
	test.That(t, q.Jmag, test.ShouldAlmostEqual, 0.)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, 0.)

	q = RotY(math.Pi).Quaternion()
	test.That(t, math.Abs(q.Jmag), test.ShouldAlmostEqual, 1.)
	test.That(t, q.Real, test.ShouldAlmostEqual, 0.)

	// yaw block is a rotation by -theta about z
	q = RotZ(th).Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Cos(th/2))
	test.That(t, q.Kmag, test.ShouldAlmostEqual, -math.Sin(th/2))
}

func TestTransformJSON(t *testing.T) {
	tf := RotYTranslated(0.25, r3.Vector{X: 0, Y: 98, Z: 100})
	data, err := json.Marshal(tf)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, `"matrix"`)
	test.That(t, string(data), test.ShouldContainSubstring, `"quaternion"`)

	var back Transform
	test.That(t, json.Unmarshal(data, &back), test.ShouldBeNil)
	test.That(t, back.AlmostEqual(tf, 1e-12), test.ShouldBeTrue)
}
