package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/humanoid/keyframe"
	"go.viam.com/humanoid/kinematics"
	"go.viam.com/humanoid/logging"
)

// printf prints a message with a newline to the given writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a message prefixed with "Warning: " to the given writer.
func warningf(w io.Writer, format string, a ...interface{}) {
	printf(w, "Warning: "+format, a...)
}

func loggerFromContext(c *cli.Context) (logging.Logger, error) {
	if c.Bool(debugFlag) {
		return logging.NewDebugLogger("humanoid"), nil
	}
	level, err := logging.LevelFromString(c.String(logLevelFlag))
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger("humanoid")
	logger.SetLevel(level)
	return logger, nil
}

// loadMotion reads the motion named by exactly one of --motion and --builtin.
func loadMotion(c *cli.Context, logger logging.Logger) (*keyframe.Set, error) {
	file, builtin := c.String(motionFlagFile), c.String(motionFlagBuiltin)
	switch {
	case file != "" && builtin != "":
		return nil, errors.Errorf("only one of --%s and --%s may be given", motionFlagFile, motionFlagBuiltin)
	case file != "":
		return keyframe.ReadMotionFile(file, logger)
	case builtin != "":
		return keyframe.LoadEmbedded(builtin)
	default:
		return nil, errors.Errorf("one of --%s or --%s is required", motionFlagFile, motionFlagBuiltin)
	}
}

// loadModel reads --model, falling back to the built in NAO model.
func loadModel(c *cli.Context, logger logging.Logger) (*kinematics.Model, error) {
	if file := c.String(modelFlagFile); file != "" {
		return kinematics.ReadModelFile(file, logger)
	}
	return kinematics.NaoModel(logger)
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	printf(w, "%s", out)
	return nil
}
