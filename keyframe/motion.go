package keyframe

import (
	"bytes"
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/humanoid/logging"
)

//go:embed data/*.json
var embeddedMotions embed.FS

// MotionConfig represents all supported fields in a motion file. It mirrors the layout
// exported by the keyframe authoring tools: parallel lists of joint names, per-joint
// timestamps, and per-joint keys.
type MotionConfig struct {
	Name  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Names []string    `json:"names" yaml:"names"`
	Times [][]float64 `json:"times" yaml:"times"`
	Keys  [][]Point   `json:"keys" yaml:"keys"`
}

// ParseConfig converts the MotionConfig into a Set named motionName, or the config's own name
// if motionName is empty.
func (cfg *MotionConfig) ParseConfig(motionName string) (*Set, error) {
	if motionName == "" {
		motionName = cfg.Name
	}
	if len(cfg.Names) == 0 {
		return nil, errors.Wrapf(ErrNoKeyframeData, "motion %q", motionName)
	}
	if len(cfg.Times) != len(cfg.Names) || len(cfg.Keys) != len(cfg.Names) {
		return nil, errors.Errorf("motion %q has %d names, %d time rows and %d key rows",
			motionName, len(cfg.Names), len(cfg.Times), len(cfg.Keys))
	}

	tracks := make([]Track, 0, len(cfg.Names))
	for i, name := range cfg.Names {
		tracks = append(tracks, Track{Joint: name, Times: cfg.Times[i], Points: cfg.Keys[i]})
	}
	return NewSet(motionName, tracks...)
}

// UnmarshalMotionJSON parses JSON motion data. motionName overrides the name in the data when set.
func UnmarshalMotionJSON(data []byte, motionName string) (*Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoKeyframeData
	}
	cfg := &MotionConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal motion json")
	}
	return cfg.ParseConfig(motionName)
}

// UnmarshalMotionYAML parses YAML motion data. motionName overrides the name in the data when set.
func UnmarshalMotionYAML(data []byte, motionName string) (*Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoKeyframeData
	}
	cfg := &MotionConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal motion yaml")
	}
	return cfg.ParseConfig(motionName)
}

// ReadMotionFile loads a .json, .yaml or .yml motion file. Motions without a name are named
// after the file.
func ReadMotionFile(path string, logger logging.Logger) (*Set, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read motion file")
	}

	ext := strings.ToLower(filepath.Ext(path))
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var cfg MotionConfig
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, errors.Errorf("unsupported motion file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse motion file %s", path)
	}
	if cfg.Name == "" {
		cfg.Name = fallback
	}

	set, err := cfg.ParseConfig("")
	if err != nil {
		return nil, err
	}
	logDegenerateSegments(set, logger)
	logger.Debugw("loaded motion", "name", set.Name(), "joints", len(set.Joints()), "end", set.End())
	return set, nil
}

// LoadEmbedded loads one of the motions bundled with the package.
func LoadEmbedded(name string) (*Set, error) {
	data, err := embeddedMotions.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, errors.Wrapf(ErrMotionNotFound, "%q", name)
	}
	return UnmarshalMotionJSON(data, name)
}

// ListEmbedded returns the names of the bundled motions, sorted.
func ListEmbedded() ([]string, error) {
	entries, err := embeddedMotions.ReadDir("data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list embedded motions")
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func logDegenerateSegments(set *Set, logger logging.Logger) {
	for _, joint := range set.Joints() {
		tr, _ := set.Track(joint)
		if idx := tr.DegenerateSegments(); len(idx) > 0 {
			logger.Debugw("track has zero length segments that will never match", "joint", joint, "segments", idx)
		}
	}
}
