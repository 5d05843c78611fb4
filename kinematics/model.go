package kinematics

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"go.viam.com/humanoid/logging"
	"go.viam.com/humanoid/spatialmath"
	"go.viam.com/humanoid/utils"
)

// Model is a validated, immutable set of chains and the geometry of their joints.
type Model struct {
	name   string
	chains []Chain
	joints map[string]Joint
}

// NewModel checks that every chain joint has geometry and that no joint is shared between
// chains, and returns the model. All defects found are reported together.
func NewModel(name string, chains []Chain, joints []Joint, logger logging.Logger) (*Model, error) {
	m := &Model{name: name, joints: make(map[string]Joint, len(joints))}

	var errs error
	for _, j := range joints {
		switch {
		case j.Name == "":
			errs = multierr.Append(errs, errors.New("joint has no name"))
		case !j.Axis.valid():
			errs = multierr.Append(errs, errors.Wrapf(ErrUnknownAxisKind, "joint %q", j.Name))
		default:
			if _, ok := m.joints[j.Name]; ok {
				errs = multierr.Append(errs, errors.Errorf("joint %q defined more than once", j.Name))
				continue
			}
			m.joints[j.Name] = j
		}
	}

	chainNames := map[string]bool{}
	owner := map[string]string{}
	for _, c := range chains {
		if c.Name == "" {
			errs = multierr.Append(errs, errors.New("chain has no name"))
			continue
		}
		if chainNames[c.Name] {
			errs = multierr.Append(errs, errors.Errorf("chain %q defined more than once", c.Name))
			continue
		}
		chainNames[c.Name] = true

		for _, jointName := range c.Joints {
			if _, ok := m.joints[jointName]; !ok {
				errs = multierr.Append(errs, NewMissingGeometryError(jointName, c.Name))
			}
			if prev, ok := owner[jointName]; ok {
				errs = multierr.Append(errs, NewSharedJointError(jointName, prev, c.Name))
				continue
			}
			owner[jointName] = c.Name
		}
		m.chains = append(m.chains, c.clone())
	}
	if errs != nil {
		return nil, errors.Wrapf(errs, "invalid kinematic model %q", name)
	}

	for jointName := range m.joints {
		if _, ok := owner[jointName]; !ok {
			logger.Debugw("joint is not part of any chain", "model", name, "joint", jointName)
		}
	}
	logger.Debugw("built kinematic model", "model", name, "chains", len(m.chains), "joints", len(m.joints))
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Chains returns a copy of the chains in definition order.
func (m *Model) Chains() []Chain {
	chains := make([]Chain, 0, len(m.chains))
	for _, c := range m.chains {
		chains = append(chains, c.clone())
	}
	return chains
}

// ChainNames returns the chain names in definition order.
func (m *Model) ChainNames() []string {
	names := make([]string, 0, len(m.chains))
	for _, c := range m.chains {
		names = append(names, c.Name)
	}
	return names
}

// Chain returns the chain with the given name.
func (m *Model) Chain(name string) (Chain, error) {
	for _, c := range m.chains {
		if c.Name == name {
			return c.clone(), nil
		}
	}
	return Chain{}, errors.Wrapf(ErrUnknownChain, "%q in model %q", name, m.name)
}

// Joint returns the geometry of the named joint.
func (m *Model) Joint(name string) (Joint, bool) {
	j, ok := m.joints[name]
	return j, ok
}

// JointNames returns every joint with geometry, sorted.
func (m *Model) JointNames() []string {
	names := make([]string, 0, len(m.joints))
	for name := range m.joints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ZeroAngles returns an angle of 0 for every joint in the model.
func (m *Model) ZeroAngles() map[string]float64 {
	angles := make(map[string]float64, len(m.joints))
	for name := range m.joints {
		angles[name] = 0
	}
	return angles
}

// ForwardKinematics returns the root frame transform of every chain joint.
func (m *Model) ForwardKinematics(angles map[string]float64) (map[string]*spatialmath.Transform, error) {
	return ForwardKinematics(m.chains, m.joints, angles)
}

// ForwardKinematicsParallel is ForwardKinematics with each chain walked on its own goroutine.
func (m *Model) ForwardKinematicsParallel(angles map[string]float64) (map[string]*spatialmath.Transform, error) {
	results := make([][]jointTransform, len(m.chains))

	var g errgroup.Group
	g.SetLimit(utils.Workers(len(m.chains)))
	for i, c := range m.chains {
		g.Go(func() error {
			walked, err := walkChain(c, m.joints, angles)
			results[i] = walked
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	transforms := map[string]*spatialmath.Transform{}
	for _, walked := range results {
		for _, jt := range walked {
			transforms[jt.joint] = jt.transform
		}
	}
	return transforms, nil
}

// EndEffectors returns, per chain name, the transform of the chain's last joint.
func (m *Model) EndEffectors(angles map[string]float64) (map[string]*spatialmath.Transform, error) {
	transforms, err := m.ForwardKinematics(angles)
	if err != nil {
		return nil, err
	}
	ends := make(map[string]*spatialmath.Transform, len(m.chains))
	for _, c := range m.chains {
		if len(c.Joints) == 0 {
			continue
		}
		ends[c.Name] = transforms[c.Joints[len(c.Joints)-1]]
	}
	return ends, nil
}
