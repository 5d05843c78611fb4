// Package kinematics computes forward kinematics for humanoid joint chains: the pose of every
// joint in the chain root's frame, given fixed link offsets and current joint angles.
package kinematics

import (
	"strings"

	"github.com/pkg/errors"
)

// AxisKind classifies which rotation a joint's angle drives.
type AxisKind int

const (
	// Roll rotates about the local x axis.
	Roll AxisKind = iota + 1
	// Pitch rotates about the local y axis.
	Pitch
	// Yaw rotates about the local z axis.
	Yaw
	// YawPitch drives a yaw and a pitch rotation with the same angle, as on the NAO hip.
	YawPitch
)

func (k AxisKind) String() string {
	switch k {
	case Roll:
		return "Roll"
	case Pitch:
		return "Pitch"
	case Yaw:
		return "Yaw"
	case YawPitch:
		return "YawPitch"
	default:
		return "Unknown"
	}
}

func (k AxisKind) valid() bool {
	return k >= Roll && k <= YawPitch
}

// ParseAxisKind parses roll, pitch, yaw or yawpitch, ignoring case and separators.
func ParseAxisKind(s string) (AxisKind, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "roll":
		return Roll, nil
	case "pitch":
		return Pitch, nil
	case "yaw":
		return Yaw, nil
	case "yawpitch":
		return YawPitch, nil
	}
	return 0, errors.Wrapf(ErrUnknownAxisKind, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k AxisKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, errors.Wrapf(ErrUnknownAxisKind, "%d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AxisKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAxisKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
