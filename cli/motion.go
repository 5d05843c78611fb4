package cli

import (
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"

	"go.viam.com/humanoid/keyframe"
	"go.viam.com/humanoid/spatialmath"
	"go.viam.com/humanoid/utils"
)

// ListMotionsAction prints the embedded motions with their joint count and time span.
func ListMotionsAction(c *cli.Context) error {
	names, err := keyframe.ListEmbedded()
	if err != nil {
		return err
	}
	for _, name := range names {
		set, err := keyframe.LoadEmbedded(name)
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%s\t%d joints\t%.2fs - %.2fs", name, len(set.Joints()), set.Start(), set.End())
	}
	return nil
}

// InterpolateAction prints the targets of every joint that has a keyframe segment at --time.
func InterpolateAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	set, err := loadMotion(c, logger)
	if err != nil {
		return err
	}

	elapsed := c.Float64(motionFlagTime)
	targets := keyframe.Interpolate(set, elapsed)
	if len(targets) == 0 {
		warningf(c.App.ErrWriter, "no joint of %q has keyframes around %vs", set.Name(), elapsed)
	}
	if c.Bool(modelFlagDegrees) {
		for joint, angle := range targets {
			targets[joint] = utils.RadToDeg(angle)
		}
	}
	return printJSON(c.App.Writer, targets)
}

// PlayAction plays a motion against the wall clock. Every tick the target table is run
// through forward kinematics and the end effector positions are logged.
func PlayAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	set, err := loadMotion(c, logger)
	if err != nil {
		return err
	}
	model, err := loadModel(c, logger)
	if err != nil {
		return err
	}
	for _, joint := range set.Joints() {
		if _, ok := model.Joint(joint); !ok {
			logger.Warnw("motion joint is not in the model", "motion", set.Name(), "model", model.Name(), "joint", joint)
		}
	}

	opts := keyframe.DefaultOptions()
	opts.Rate = c.Float64(motionFlagRate)
	opts.Speed = c.Float64(motionFlagSpeed)
	opts.Loop = c.Bool(motionFlagLoop)
	opts.Initial = model.ZeroAngles()

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
	defer cancel()

	var (
		fkErr    error
		lastEnds map[string]*spatialmath.Transform
		lastLog  time.Duration
	)
	player := keyframe.NewPlayer(nil, logger.Sublogger("player"))
	err = player.Play(ctx, set, opts, func(targets map[string]float64, elapsed time.Duration) bool {
		ends, err := model.EndEffectors(targets)
		if err != nil {
			fkErr = err
			return false
		}
		lastEnds = ends

		fields := make([]interface{}, 0, 2+2*len(ends))
		fields = append(fields, "elapsed", elapsed)
		for _, chain := range model.ChainNames() {
			if tf, ok := ends[chain]; ok {
				fields = append(fields, chain, tf.Translation())
			}
		}
		if elapsed-lastLog >= time.Second {
			lastLog = elapsed
			logger.Infow("end effectors", fields...)
		} else {
			logger.Debugw("end effectors", fields...)
		}
		return true
	})
	if err != nil {
		return err
	}
	if fkErr != nil {
		return fkErr
	}
	if lastEnds == nil {
		warningf(c.App.ErrWriter, "motion %q ended before the first tick", set.Name())
		return nil
	}
	return printJSON(c.App.Writer, lastEnds)
}
