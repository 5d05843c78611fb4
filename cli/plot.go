package cli

import (
	"github.com/aybabtme/uniplot/histogram"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	// png, jpeg and tiff output
	_ "gonum.org/v1/plot/vg/vgimg"

	"go.viam.com/humanoid/keyframe"
	"go.viam.com/humanoid/utils"
)

const maxHistogramBins = 100

// PlotAction samples every joint of a motion and draws the trajectories to --out.
// The image format follows the file extension.
func PlotAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	set, err := loadMotion(c, logger)
	if err != nil {
		return err
	}
	if len(set.Joints()) == 0 {
		return errors.Wrapf(keyframe.ErrNoKeyframeData, "motion %q", set.Name())
	}

	samples, err := keyframe.SampleSet(set, set.Start(), set.End(), c.Float64(motionFlagStep))
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = set.Name()
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "angle (rad)"
	p.Add(plotter.NewGrid())

	for i, joint := range set.Joints() {
		series := samples[joint]
		if len(series) == 0 {
			logger.Debugw("joint has no samples", "joint", joint)
			continue
		}
		pts := make(plotter.XYs, len(series))
		for j, s := range series {
			pts[j].X = s.Time
			pts[j].Y = s.Angle
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "joint %q", joint)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		p.Add(line)
		p.Legend.Add(joint, line)
	}

	out := c.String(motionFlagOut)
	if err := p.Save(10*vg.Inch, 5*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", out)
	}
	logger.Infow("wrote plot", "motion", set.Name(), "file", out)
	return nil
}

// HistogramAction prints a text histogram of one joint's sampled targets.
func HistogramAction(c *cli.Context) error {
	logger, err := loggerFromContext(c)
	if err != nil {
		return err
	}
	set, err := loadMotion(c, logger)
	if err != nil {
		return err
	}
	joint := c.String(motionFlagJoint)
	tr, ok := set.Track(joint)
	if !ok {
		return errors.Errorf("motion %q has no joint %q", set.Name(), joint)
	}

	samples, err := keyframe.SampleSet(set, tr.Start(), tr.End(), c.Float64(motionFlagStep))
	if err != nil {
		return err
	}
	series := samples[joint]
	if len(series) == 0 {
		return errors.Wrapf(keyframe.ErrNoKeyframeData, "joint %q", joint)
	}
	angles := make([]float64, 0, len(series))
	constant := true
	for _, s := range series {
		angles = append(angles, s.Angle)
		constant = constant && utils.Float64AlmostEqual(s.Angle, angles[0], 1e-12)
	}
	if constant {
		printf(c.App.Writer, "%s %s: %d samples, all %v", set.Name(), joint, len(angles), angles[0])
		return nil
	}

	bins := int(utils.Clamp(float64(c.Int(motionFlagBins)), 1, maxHistogramBins))
	printf(c.App.Writer, "%s %s: %d samples", set.Name(), joint, len(angles))
	return histogram.Fprint(c.App.Writer, histogram.Hist(bins, angles), histogram.Linear(40))
}
