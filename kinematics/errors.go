package kinematics

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownAxisKind is returned for an axis classification outside Roll, Pitch, Yaw and YawPitch.
	ErrUnknownAxisKind = errors.New("unknown axis kind")

	// ErrUnknownChain is returned when a model has no chain with the requested name.
	ErrUnknownChain = errors.New("unknown chain")
)

// MissingGeometryError is returned when a chain references a joint with no registered offset
// or axis classification.
type MissingGeometryError struct {
	Joint string
	Chain string
}

// NewMissingGeometryError returns a MissingGeometryError.
func NewMissingGeometryError(joint, chain string) error {
	return &MissingGeometryError{Joint: joint, Chain: chain}
}

func (e *MissingGeometryError) Error() string {
	return fmt.Sprintf("joint %q in chain %q has no geometry", e.Joint, e.Chain)
}

// IsMissingGeometryError returns whether err is or wraps a MissingGeometryError.
func IsMissingGeometryError(err error) bool {
	var target *MissingGeometryError
	return errors.As(err, &target)
}

// MissingAngleError is returned when no angle reading was supplied for a joint in a chain.
type MissingAngleError struct {
	Joint string
	Chain string
}

// NewMissingAngleError returns a MissingAngleError.
func NewMissingAngleError(joint, chain string) error {
	return &MissingAngleError{Joint: joint, Chain: chain}
}

func (e *MissingAngleError) Error() string {
	return fmt.Sprintf("no angle given for joint %q in chain %q", e.Joint, e.Chain)
}

// SharedJointError is returned when one joint appears in more than one chain, or twice in one.
// Such a joint would get whichever transform was computed last.
type SharedJointError struct {
	Joint  string
	Chains []string
}

// NewSharedJointError returns a SharedJointError.
func NewSharedJointError(joint string, chains ...string) error {
	return &SharedJointError{Joint: joint, Chains: chains}
}

func (e *SharedJointError) Error() string {
	return fmt.Sprintf("joint %q appears in more than one place: %s", e.Joint, strings.Join(e.Chains, ", "))
}
