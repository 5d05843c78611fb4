package kinematics

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/humanoid/spatialmath"
)

// Joint is the static geometry of one joint.
type Joint struct {
	Name string
	// Offset is the translation in millimeters from the parent joint's frame to this joint's
	// frame when this joint's angle is zero.
	Offset r3.Vector
	Axis   AxisKind
}

// Chain is an ordered path of joints from the root frame to an end effector.
type Chain struct {
	Name   string
	Joints []string
}

func (c Chain) clone() Chain {
	return Chain{Name: c.Name, Joints: append([]string(nil), c.Joints...)}
}

// LocalTransform returns the pose of joint j relative to its parent when rotated by angle radians.
func LocalTransform(j Joint, angle float64) (*spatialmath.Transform, error) {
	switch j.Axis {
	case Roll:
		return spatialmath.RotXTranslated(angle, j.Offset), nil
	case Pitch:
		return spatialmath.RotYTranslated(angle, j.Offset), nil
	case Yaw:
		return spatialmath.RotZTranslated(angle, j.Offset), nil
	case YawPitch:
		// offset · yaw · pitch: the pitch acts on a point first
		rot := spatialmath.RotZ(angle).Mul(spatialmath.RotY(angle))
		return spatialmath.NewTranslation(j.Offset).Mul(rot), nil
	default:
		return nil, errors.Wrapf(ErrUnknownAxisKind, "joint %q has axis %d", j.Name, int(j.Axis))
	}
}
