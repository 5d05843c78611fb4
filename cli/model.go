package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"go.viam.com/humanoid/kinematics"
	"go.viam.com/humanoid/utils"
)

// ForwardKinematicsAction prints the root frame transform of every chain joint.
func ForwardKinematicsAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	model, err := loadModel(c, logger)
	if err != nil {
		return err
	}
	angles, err := parseAngles(model, c.StringSlice(modelFlagAngle), c.Bool(modelFlagDegrees))
	if err != nil {
		return err
	}
	transforms, err := model.ForwardKinematics(angles)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, transforms)
}

// ExportModelAction prints the model as a model file that ReadModelFile accepts.
func ExportModelAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	model, err := loadModel(c, logger)
	if err != nil {
		return err
	}

	switch format := strings.ToLower(c.String(modelFlagFormat)); format {
	case "json":
		return printJSON(c.App.Writer, model.Config())
	case "yaml", "yml":
		out, err := yaml.Marshal(model.Config())
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(out)
		return err
	default:
		return errors.Errorf("unknown model format %q", format)
	}
}

// parseAngles starts every model joint at 0 and applies NAME=VALUE overrides.
func parseAngles(model *kinematics.Model, raw []string, degrees bool) (map[string]float64, error) {
	angles := model.ZeroAngles()
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.Errorf("angle %q is not of the form NAME=VALUE", entry)
		}
		name = strings.TrimSpace(name)
		if _, ok := model.Joint(name); !ok {
			return nil, errors.Errorf("model %q has no joint %q", model.Name(), name)
		}
		angle, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "angle for joint %q", name)
		}
		if degrees {
			angle = utils.DegToRad(angle)
		}
		angles[name] = angle
	}
	return angles, nil
}
