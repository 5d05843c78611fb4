package kinematics

import (
	"go.viam.com/humanoid/spatialmath"
)

type jointTransform struct {
	joint     string
	transform *spatialmath.Transform
}

// ForwardKinematics returns the transform of every chain joint in its chain's root frame.
// Each chain is walked from the identity, right-multiplying the local transform of every joint
// in order. A joint without geometry or without an angle fails the whole call.
func ForwardKinematics(
	chains []Chain,
	joints map[string]Joint,
	angles map[string]float64,
) (map[string]*spatialmath.Transform, error) {
	transforms := map[string]*spatialmath.Transform{}
	for _, chain := range chains {
		walked, err := walkChain(chain, joints, angles)
		if err != nil {
			return nil, err
		}
		for _, jt := range walked {
			transforms[jt.joint] = jt.transform
		}
	}
	return transforms, nil
}

func walkChain(chain Chain, joints map[string]Joint, angles map[string]float64) ([]jointTransform, error) {
	walked := make([]jointTransform, 0, len(chain.Joints))
	tf := spatialmath.NewIdentity()
	for _, name := range chain.Joints {
		j, ok := joints[name]
		if !ok || !j.Axis.valid() {
			return nil, NewMissingGeometryError(name, chain.Name)
		}
		angle, ok := angles[name]
		if !ok {
			return nil, NewMissingAngleError(name, chain.Name)
		}
		local, err := LocalTransform(j, angle)
		if err != nil {
			return nil, err
		}
		tf = tf.Mul(local)
		walked = append(walked, jointTransform{joint: name, transform: tf})
	}
	return walked, nil
}
