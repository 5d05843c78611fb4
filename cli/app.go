// Package cli contains the humanoid command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Global flags.
	debugFlag    = "debug"
	logLevelFlag = "log-level"

	// Motion flags.
	motionFlagFile    = "motion"
	motionFlagBuiltin = "builtin"
	motionFlagTime    = "time"
	motionFlagRate    = "rate"
	motionFlagSpeed   = "speed"
	motionFlagLoop    = "loop"
	motionFlagStep    = "step"
	motionFlagOut     = "out"
	motionFlagJoint   = "joint"
	motionFlagBins    = "bins"

	// Model flags.
	modelFlagFile    = "model"
	modelFlagAngle   = "angle"
	modelFlagDegrees = "degrees"
	modelFlagFormat  = "format"
)

func withMotionSource(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  motionFlagFile,
			Usage: "motion `FILE` (.json, .yaml or .yml)",
		},
		&cli.StringFlag{
			Name:  motionFlagBuiltin,
			Usage: "name of an embedded motion",
		},
	}, flags...)
}

func modelFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  modelFlagFile,
		Usage: "kinematic model `FILE` (.json, .yaml or .yml); defaults to the NAO",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "humanoid",
		Usage:           "interpolate keyframe motions and solve humanoid forward kinematics",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Value: "info",
				Usage: "log level: debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "motions",
				Usage:  "list the embedded motions",
				Action: ListMotionsAction,
			},
			{
				Name:  "interpolate",
				Usage: "print the joint targets of a motion at one point in time",
				Flags: withMotionSource(
					&cli.Float64Flag{
						Name:     motionFlagTime,
						Aliases:  []string{"t"},
						Usage:    "elapsed motion time in seconds",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  modelFlagDegrees,
						Usage: "print targets in degrees instead of radians",
					},
				),
				Action: InterpolateAction,
			},
			{
				Name:      "fk",
				Usage:     "print the root frame pose of every joint",
				UsageText: "humanoid fk [--model FILE] --angle HeadYaw=0.3 --angle LKneePitch=1.2",
				Flags: []cli.Flag{
					modelFileFlag(),
					&cli.StringSliceFlag{
						Name:  modelFlagAngle,
						Usage: "joint angle as NAME=VALUE; unspecified joints are 0",
					},
					&cli.BoolFlag{
						Name:  modelFlagDegrees,
						Usage: "read --angle values as degrees instead of radians",
					},
				},
				Action: ForwardKinematicsAction,
			},
			{
				Name:  "play",
				Usage: "play a motion in real time, logging end effector positions",
				Flags: withMotionSource(
					modelFileFlag(),
					&cli.Float64Flag{
						Name:  motionFlagRate,
						Value: 50,
						Usage: "ticks per second",
					},
					&cli.Float64Flag{
						Name:  motionFlagSpeed,
						Value: 1,
						Usage: "playback speed multiplier",
					},
					&cli.BoolFlag{
						Name:  motionFlagLoop,
						Usage: "restart the motion when it ends",
					},
				),
				Action: PlayAction,
			},
			{
				Name:  "plot",
				Usage: "plot every joint trajectory of a motion to a PNG",
				Flags: withMotionSource(
					&cli.StringFlag{
						Name:     motionFlagOut,
						Aliases:  []string{"o"},
						Usage:    "output `FILE`",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  motionFlagStep,
						Value: 0.02,
						Usage: "sample step in seconds",
					},
				),
				Action: PlotAction,
			},
			{
				Name:  "histogram",
				Usage: "print the distribution of one joint's targets over a motion",
				Flags: withMotionSource(
					&cli.StringFlag{
						Name:     motionFlagJoint,
						Usage:    "joint name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  motionFlagBins,
						Value: 10,
						Usage: "number of buckets",
					},
					&cli.Float64Flag{
						Name:  motionFlagStep,
						Value: 0.02,
						Usage: "sample step in seconds",
					},
				),
				Action: HistogramAction,
			},
			{
				Name:  "model",
				Usage: "print a kinematic model as a model file",
				Flags: []cli.Flag{
					modelFileFlag(),
					&cli.StringFlag{
						Name:  modelFlagFormat,
						Value: "json",
						Usage: "output format: json or yaml",
					},
				},
				Action: ExportModelAction,
			},
		},
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
