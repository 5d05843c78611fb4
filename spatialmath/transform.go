// Package spatialmath defines spatial mathematical operations
package spatialmath

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a 4x4 homogeneous matrix: a 3x3 rotation block, a translation column and the
// [0 0 0 1] row. Transforms are immutable; every operation returns a new one.
type Transform struct {
	m *mat.Dense
}

// NewIdentity returns the identity transform.
func NewIdentity() *Transform {
	return NewTransformFromRows([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// NewTransformFromRows builds a transform from its rows. The bottom row is taken as given.
func NewTransformFromRows(rows [4][4]float64) *Transform {
	data := make([]float64, 0, 16)
	for _, row := range rows {
		data = append(data, row[:]...)
	}
	return &Transform{m: mat.NewDense(4, 4, data)}
}

// NewTranslation returns a pure translation by v.
func NewTranslation(v r3.Vector) *Transform {
	return NewTransformFromRows([4][4]float64{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	})
}

// RotX returns a rotation of theta radians about the x axis (roll).
func RotX(theta float64) *Transform {
	return RotXTranslated(theta, r3.Vector{})
}

// RotY returns a rotation of theta radians about the y axis (pitch).
func RotY(theta float64) *Transform {
	return RotYTranslated(theta, r3.Vector{})
}

// RotZ returns a rotation of theta radians about the z axis (yaw).
func RotZ(theta float64) *Transform {
	return RotZTranslated(theta, r3.Vector{})
}

// RotXTranslated returns the roll block for theta with translation column v.
func RotXTranslated(theta float64, v r3.Vector) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewTransformFromRows([4][4]float64{
		{1, 0, 0, v.X},
		{0, c, -s, v.Y},
		{0, s, c, v.Z},
		{0, 0, 0, 1},
	})
}

// RotYTranslated returns the pitch block for theta with translation column v.
func RotYTranslated(theta float64, v r3.Vector) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewTransformFromRows([4][4]float64{
		{c, 0, s, v.X},
		{0, 1, 0, v.Y},
		{-s, 0, c, v.Z},
		{0, 0, 0, 1},
	})
}

// RotZTranslated returns the yaw block for theta with translation column v.
// The block is laid out as [[c s 0] [-s c 0] [0 0 1]], matching the NAO joint convention.
func RotZTranslated(theta float64, v r3.Vector) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewTransformFromRows([4][4]float64{
		{c, s, 0, v.X},
		{-s, c, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	})
}

// Mul returns t · o.
func (t *Transform) Mul(o *Transform) *Transform {
	var res mat.Dense
	res.Mul(t.m, o.m)
	return &Transform{m: &res}
}

// At returns the element at row r and column c.
func (t *Transform) At(r, c int) float64 {
	return t.m.At(r, c)
}

// Rows returns a copy of the matrix as rows.
func (t *Transform) Rows() [4][4]float64 {
	var rows [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = t.m.At(r, c)
		}
	}
	return rows
}

// Rotation returns a copy of the 3x3 rotation block.
func (t *Transform) Rotation() *mat.Dense {
	return mat.DenseCopyOf(t.m.Slice(0, 3, 0, 3))
}

// Translation returns the translation column.
func (t *Transform) Translation() r3.Vector {
	return r3.Vector{X: t.m.At(0, 3), Y: t.m.At(1, 3), Z: t.m.At(2, 3)}
}

// Apply maps the point p through the transform.
func (t *Transform) Apply(p r3.Vector) r3.Vector {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(t.m, in)
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Quaternion returns the unit quaternion of the rotation block.
func (t *Transform) Quaternion() quat.Number {
	m00, m01, m02 := t.m.At(0, 0), t.m.At(0, 1), t.m.At(0, 2)
	m10, m11, m12 := t.m.At(1, 0), t.m.At(1, 1), t.m.At(1, 2)
	m20, m21, m22 := t.m.At(2, 0), t.m.At(2, 1), t.m.At(2, 2)

	var q quat.Number
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		q = quat.Number{Real: 0.25 / s, Imag: (m21 - m12) * s, Jmag: (m02 - m20) * s, Kmag: (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}

	// keep the real part non-negative so equal rotations compare equal
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return quat.Scale(1/quat.Abs(q), q)
}

// AlmostEqual returns whether every element of t is within epsilon of the matching element of o.
func (t *Transform) AlmostEqual(o *Transform, epsilon float64) bool {
	return mat.EqualApprox(t.m, o.m, epsilon)
}

// String formats the matrix over four lines.
func (t *Transform) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.m, mat.Squeeze()))
}

type transformJSON struct {
	Matrix      [4][4]float64 `json:"matrix"`
	Translation r3.Vector     `json:"translation"`
	Quaternion  quat.Number   `json:"quaternion"`
}

// MarshalJSON writes the rows along with the derived translation and quaternion.
func (t *Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal(transformJSON{
		Matrix:      t.Rows(),
		Translation: t.Translation(),
		Quaternion:  t.Quaternion(),
	})
}

// UnmarshalJSON reads the matrix rows; derived fields are ignored.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var raw transformJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = *NewTransformFromRows(raw.Matrix)
	return nil
}
