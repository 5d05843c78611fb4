package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/humanoid/logging"
)

// NAO chain names.
const (
	HeadChain = "Head"
	LArmChain = "LArm"
	LLegChain = "LLeg"
	RLegChain = "RLeg"
	RArmChain = "RArm"
)

// NaoModelName is the name of the model returned by NaoModel.
const NaoModelName = "nao"

// NaoChains returns the NAO effector chains, rooted at the torso.
func NaoChains() []Chain {
	return []Chain{
		{Name: HeadChain, Joints: []string{"HeadYaw", "HeadPitch"}},
		{Name: LArmChain, Joints: []string{"LShoulderPitch", "LShoulderRoll", "LElbowYaw", "LElbowRoll"}},
		{Name: LLegChain, Joints: []string{"LHipYawPitch", "LHipRoll", "LHipPitch", "LKneePitch", "LAnklePitch", "LAnkleRoll"}},
		{Name: RLegChain, Joints: []string{"RHipYawPitch", "RHipRoll", "RHipPitch", "RKneePitch", "RAnklePitch", "RAnkleRoll"}},
		{Name: RArmChain, Joints: []string{"RShoulderPitch", "RShoulderRoll", "RElbowYaw", "RElbowRoll"}},
	}
}

// NaoJoints returns the NAO joint geometry. Offsets are in millimeters.
func NaoJoints() []Joint {
	return []Joint{
		{Name: "HeadYaw", Offset: r3.Vector{X: 0, Y: 0, Z: 126.5}, Axis: Yaw},
		{Name: "HeadPitch", Offset: r3.Vector{}, Axis: Pitch},

		{Name: "LShoulderPitch", Offset: r3.Vector{X: 0, Y: 98, Z: 100}, Axis: Pitch},
		{Name: "LShoulderRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "LElbowYaw", Offset: r3.Vector{X: 105, Y: 15, Z: 0}, Axis: Yaw},
		{Name: "LElbowRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "RShoulderPitch", Offset: r3.Vector{X: 0, Y: -98, Z: 100}, Axis: Pitch},
		{Name: "RShoulderRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "RElbowYaw", Offset: r3.Vector{X: 105, Y: -15, Z: 0}, Axis: Yaw},
		{Name: "RElbowRoll", Offset: r3.Vector{}, Axis: Roll},

		{Name: "LHipYawPitch", Offset: r3.Vector{X: 0, Y: 50, Z: -85}, Axis: YawPitch},
		{Name: "LHipRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "LHipPitch", Offset: r3.Vector{}, Axis: Pitch},
		{Name: "LKneePitch", Offset: r3.Vector{X: 0, Y: 0, Z: -100}, Axis: Pitch},
		{Name: "LAnklePitch", Offset: r3.Vector{X: 0, Y: 0, Z: -102.9}, Axis: Pitch},
		{Name: "LAnkleRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "RHipYawPitch", Offset: r3.Vector{X: 0, Y: -50, Z: -85}, Axis: YawPitch},
		{Name: "RHipRoll", Offset: r3.Vector{}, Axis: Roll},
		{Name: "RHipPitch", Offset: r3.Vector{}, Axis: Pitch},
		{Name: "RKneePitch", Offset: r3.Vector{X: 0, Y: 0, Z: -100}, Axis: Pitch},
		{Name: "RAnklePitch", Offset: r3.Vector{X: 0, Y: 0, Z: -102.9}, Axis: Pitch},
		{Name: "RAnkleRoll", Offset: r3.Vector{}, Axis: Roll},
	}
}

// NaoModel returns the NAO model. Each call builds a new value.
func NaoModel(logger logging.Logger) (*Model, error) {
	return NewModel(NaoModelName, NaoChains(), NaoJoints(), logger)
}
