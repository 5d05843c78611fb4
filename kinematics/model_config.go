package kinematics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/humanoid/logging"
)

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// ModelConfig represents all supported fields in a kinematic model file.
type ModelConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Chains []ChainConfig `json:"chains" yaml:"chains"`
	Joints []JointConfig `json:"joints" yaml:"joints"`
}

// ChainConfig is a chain entry of a model file.
type ChainConfig struct {
	Name   string   `json:"name" yaml:"name"`
	Joints []string `json:"joints" yaml:"joints"`
}

// JointConfig is a joint entry of a model file.
type JointConfig struct {
	ID     string       `json:"id" yaml:"id"`
	Axis   string       `json:"axis" yaml:"axis"`
	Offset OffsetConfig `json:"offset" yaml:"offset"`
}

// OffsetConfig is a translation in millimeters.
type OffsetConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// ParseConfig converts the ModelConfig into a Model with the name modelName, or the config's
// own name if modelName is empty.
func (cfg *ModelConfig) ParseConfig(modelName string, logger logging.Logger) (*Model, error) {
	if modelName == "" {
		modelName = cfg.Name
	}

	joints := make([]Joint, 0, len(cfg.Joints))
	for _, jc := range cfg.Joints {
		axis, err := ParseAxisKind(jc.Axis)
		if err != nil {
			return nil, errors.Wrapf(err, "joint %q", jc.ID)
		}
		joints = append(joints, Joint{
			Name:   jc.ID,
			Offset: r3.Vector{X: jc.Offset.X, Y: jc.Offset.Y, Z: jc.Offset.Z},
			Axis:   axis,
		})
	}

	chains := make([]Chain, 0, len(cfg.Chains))
	for _, cc := range cfg.Chains {
		chains = append(chains, Chain{Name: cc.Name, Joints: cc.Joints})
	}
	return NewModel(modelName, chains, joints, logger)
}

// Config returns the model as a ModelConfig, suitable for writing back to a file.
func (m *Model) Config() *ModelConfig {
	cfg := &ModelConfig{Name: m.name}
	written := map[string]bool{}
	addJoint := func(j Joint) {
		written[j.Name] = true
		cfg.Joints = append(cfg.Joints, JointConfig{
			ID:     j.Name,
			Axis:   j.Axis.String(),
			Offset: OffsetConfig{X: j.Offset.X, Y: j.Offset.Y, Z: j.Offset.Z},
		})
	}
	for _, c := range m.chains {
		cfg.Chains = append(cfg.Chains, ChainConfig{Name: c.Name, Joints: append([]string(nil), c.Joints...)})
		for _, name := range c.Joints {
			addJoint(m.joints[name])
		}
	}
	// joints outside every chain go last
	for _, name := range m.JointNames() {
		if !written[name] {
			addJoint(m.joints[name])
		}
	}
	return cfg
}

// UnmarshalModelJSON will parse the given JSON data into a kinematic model. modelName sets the
// name of the model, will use the name from the JSON if string is empty.
func UnmarshalModelJSON(jsonData []byte, modelName string, logger logging.Logger) (*Model, error) {
	// empty data probably means that the caller has no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}

	cfg := &ModelConfig{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(modelName, logger)
}

// ReadModelFile loads a .json, .yaml or .yml kinematic model file.
func ReadModelFile(path string, logger logging.Logger) (*Model, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read model file")
	}
	if len(data) == 0 {
		return nil, ErrNoModelInformation
	}

	cfg := &ModelConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.Errorf("unsupported model file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse model file %s", path)
	}
	return cfg.ParseConfig("", logger)
}

// ModelConfigFromAttributes decodes a generic attribute map, such as a section of a larger
// JSON or YAML config, into a ModelConfig.
func ModelConfigFromAttributes(attributes map[string]interface{}) (*ModelConfig, error) {
	if len(attributes) == 0 {
		return nil, ErrNoModelInformation
	}
	var cfg ModelConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "failed to decode model attributes")
	}
	return &cfg, nil
}
