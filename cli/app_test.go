package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"
	"gopkg.in/yaml.v3"

	"go.viam.com/humanoid/kinematics"
	"go.viam.com/humanoid/logging"
	"go.viam.com/humanoid/spatialmath"
	"go.viam.com/humanoid/utils"
)

// run executes the app with args and returns what it wrote to out and errOut.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	err := app.Run(append([]string{"humanoid", "--log-level", "error"}, args...))
	return out.String(), errOut.String(), err
}

func TestListMotions(t *testing.T) {
	out, _, err := run(t, "motions")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, len(lines), test.ShouldEqual, 2)
	test.That(t, lines[0], test.ShouldStartWith, "hello\t6 joints")
	test.That(t, lines[1], test.ShouldStartWith, "nod\t2 joints")
}

func TestInterpolate(t *testing.T) {
	out, _, err := run(t, "interpolate", "--builtin", "nod", "--time", "0.65")
	test.That(t, err, test.ShouldBeNil)

	var targets map[string]float64
	test.That(t, json.Unmarshal([]byte(out), &targets), test.ShouldBeNil)
	test.That(t, len(targets), test.ShouldEqual, 2)
	// halfway between bare keys 0 and 0.35
	test.That(t, targets["HeadPitch"], test.ShouldAlmostEqual, 0.175)
	test.That(t, targets["HeadYaw"], test.ShouldAlmostEqual, 0.)

	out, _, err = run(t, "interpolate", "--builtin", "nod", "--time", "0.65", "--degrees")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, json.Unmarshal([]byte(out), &targets), test.ShouldBeNil)
	test.That(t, targets["HeadPitch"], test.ShouldAlmostEqual, utils.RadToDeg(0.175))

	out, errOut, err := run(t, "interpolate", "--builtin", "nod", "-t", "5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.TrimSpace(out), test.ShouldEqual, "{}")
	test.That(t, errOut, test.ShouldContainSubstring, "Warning: ")

	out, _, err = run(t, "interpolate", "--motion", utils.ResolveFile("keyframe/data/hello.json"), "--time", "1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, json.Unmarshal([]byte(out), &targets), test.ShouldBeNil)
	test.That(t, targets, test.ShouldNotBeEmpty)
}

func TestInterpolateErrors(t *testing.T) {
	_, _, err := run(t, "interpolate", "--time", "1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "is required")

	_, _, err = run(t, "interpolate", "--builtin", "nod", "--motion", "x.json", "--time", "1")
	test.That(t, err, test.ShouldNotBeNil)

	_, _, err = run(t, "interpolate", "--builtin", "moonwalk", "--time", "1")
	test.That(t, err, test.ShouldNotBeNil)

	_, _, err = run(t, "interpolate", "--builtin", "nod")
	test.That(t, err, test.ShouldNotBeNil)

	var out, errOut bytes.Buffer
	err = NewApp(&out, &errOut).Run([]string{"humanoid", "--log-level", "loud", "interpolate", "--builtin", "nod", "-t", "1"})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestForwardKinematicsCommand(t *testing.T) {
	out, _, err := run(t, "fk", "--angle", "HeadYaw=90", "--angle", "LKneePitch=0", "--degrees")
	test.That(t, err, test.ShouldBeNil)

	var transforms map[string]spatialmath.Transform
	test.That(t, json.Unmarshal([]byte(out), &transforms), test.ShouldBeNil)
	test.That(t, len(transforms), test.ShouldEqual, 22)

	knee := transforms["LKneePitch"]
	p := knee.Translation()
	test.That(t, p.Y, test.ShouldAlmostEqual, 50.)
	test.That(t, p.Z, test.ShouldAlmostEqual, -185.)

	head := transforms["HeadYaw"]
	test.That(t, head.At(0, 0), test.ShouldAlmostEqual, 0.)
	test.That(t, head.At(0, 1), test.ShouldAlmostEqual, 1.)

	_, _, err = run(t, "fk", "--angle", "Tail=1")
	test.That(t, err, test.ShouldNotBeNil)
	_, _, err = run(t, "fk", "--angle", "HeadYaw")
	test.That(t, err, test.ShouldNotBeNil)
	_, _, err = run(t, "fk", "--angle", "HeadYaw=abc")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestExportModel(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewTestLogger(t)

	out, _, err := run(t, "model")
	test.That(t, err, test.ShouldBeNil)
	jsonPath := filepath.Join(dir, "nao.json")
	test.That(t, os.WriteFile(jsonPath, []byte(out), 0o600), test.ShouldBeNil)

	m, err := kinematics.ReadModelFile(jsonPath, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.ChainNames(), test.ShouldResemble, []string{
		kinematics.HeadChain, kinematics.LArmChain, kinematics.LLegChain, kinematics.RLegChain, kinematics.RArmChain,
	})

	out, _, err = run(t, "model", "--format", "yaml")
	test.That(t, err, test.ShouldBeNil)
	var cfg kinematics.ModelConfig
	test.That(t, yaml.Unmarshal([]byte(out), &cfg), test.ShouldBeNil)
	test.That(t, cfg.Name, test.ShouldEqual, kinematics.NaoModelName)

	// a model file round trips through --model
	out, _, err = run(t, "fk", "--model", jsonPath)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "RAnkleRoll")

	_, _, err = run(t, "model", "--format", "xml")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPlay(t *testing.T) {
	out, _, err := run(t, "play", "--builtin", "nod", "--rate", "100", "--speed", "20")
	test.That(t, err, test.ShouldBeNil)

	var ends map[string]spatialmath.Transform
	test.That(t, json.Unmarshal([]byte(out), &ends), test.ShouldBeNil)
	test.That(t, len(ends), test.ShouldEqual, 5)
	head := ends[kinematics.HeadChain]
	test.That(t, head.Translation().Z, test.ShouldAlmostEqual, 126.5)

	_, _, err = run(t, "play", "--builtin", "nod", "--rate", "0")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.png")
	_, _, err := run(t, "plot", "--builtin", "hello", "--out", path)
	test.That(t, err, test.ShouldBeNil)

	info, err := os.Stat(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)

	_, _, err = run(t, "plot", "--builtin", "hello", "--out", path, "--step", "0")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestHistogram(t *testing.T) {
	out, _, err := run(t, "histogram", "--builtin", "nod", "--joint", "HeadPitch", "--bins", "5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldStartWith, "nod HeadPitch: ")
	test.That(t, len(strings.Split(strings.TrimSpace(out), "\n")), test.ShouldBeGreaterThan, 1)

	out, _, err = run(t, "histogram", "--builtin", "nod", "--joint", "HeadYaw")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "all 0")

	_, _, err = run(t, "histogram", "--builtin", "nod", "--joint", "Tail")
	test.That(t, err, test.ShouldNotBeNil)
}
