package keyframe

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"go.viam.com/humanoid/logging"
)

// Callback receives the full target table after every tick. The map is owned by the callee.
// Returning false stops playback.
type Callback func(targets map[string]float64, elapsed time.Duration) bool

// Options configures playback.
type Options struct {
	// Rate is the number of ticks per second.
	Rate float64
	// Speed scales elapsed time; 2 plays twice as fast.
	Speed float64
	// Loop restarts the motion once it ends.
	Loop bool
	// Initial seeds the target table, typically with the current joint readings.
	Initial map[string]float64
}

// DefaultOptions returns 50Hz playback at normal speed.
func DefaultOptions() Options {
	return Options{Rate: 50, Speed: 1}
}

// Player drives a Set in real time. Each tick it interpolates at the elapsed playback time and
// merges the result into a target table, so joints outside their track keep the last target
// they were given.
type Player struct {
	clk    clock.Clock
	logger logging.Logger

	mu      sync.Mutex
	playing bool
	stopCh  chan struct{}
}

// NewPlayer returns a Player reading time from clk; a nil clk uses the wall clock.
func NewPlayer(clk clock.Clock, logger logging.Logger) *Player {
	if clk == nil {
		clk = clock.New()
	}
	return &Player{clk: clk, logger: logger}
}

// Play blocks until the motion ends, cb returns false, Stop is called or ctx is done.
func (p *Player) Play(ctx context.Context, set *Set, opts Options, cb Callback) error {
	if opts.Rate <= 0 {
		return errors.Errorf("playback rate must be positive, got %v", opts.Rate)
	}
	if opts.Speed <= 0 {
		return errors.Errorf("playback speed must be positive, got %v", opts.Speed)
	}

	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	p.playing = true
	stopCh := make(chan struct{})
	p.stopCh = stopCh
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	targets := make(map[string]float64, len(opts.Initial)+len(set.joints))
	for joint, angle := range opts.Initial {
		targets[joint] = angle
	}

	ticker := p.clk.Ticker(time.Duration(float64(time.Second) / opts.Rate))
	defer ticker.Stop()

	p.logger.Debugw("starting playback", "motion", set.Name(), "rate", opts.Rate, "speed", opts.Speed)
	start := p.clk.Now()
	end := set.End()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			p.logger.Debugw("playback stopped", "motion", set.Name())
			return nil
		case <-ticker.C:
		}

		elapsed := time.Duration(float64(p.clk.Since(start)) * opts.Speed)
		if elapsed.Seconds() > end {
			if !opts.Loop {
				p.logger.Debugw("playback finished", "motion", set.Name(), "elapsed", elapsed)
				return nil
			}
			start = p.clk.Now()
			elapsed = 0
		}

		for joint, angle := range Interpolate(set, elapsed.Seconds()) {
			targets[joint] = angle
		}

		out := make(map[string]float64, len(targets))
		for joint, angle := range targets {
			out[joint] = angle
		}
		if !cb(out, elapsed) {
			return nil
		}
	}
}

// Stop ends the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing && p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
}

// Playing returns whether a motion is being played.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
