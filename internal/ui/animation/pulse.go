// Package animation drives small time-based UI effects.
package animation

import (
	"context"
	"image/color"
	"sync"
	"time"
)

// Config contains pulse timing and palette.
type Config struct {
	Interval time.Duration
	Colors   []color.Color
}

// DefaultConfig returns the palette used for the running timer.
func DefaultConfig() Config {
	return Config{
		Interval: 600 * time.Millisecond,
		Colors: []color.Color{
			color.NRGBA{R: 22, G: 163, B: 74, A: 255},
			color.NRGBA{R: 74, G: 222, B: 128, A: 255},
		},
	}
}

// Pulse cycles a color through the configured palette until stopped.
type Pulse struct {
	mu     sync.Mutex
	config Config
	paint  func(color.Color)
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a pulse that reports each frame to paint.
func New(config Config, paint func(color.Color)) *Pulse {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	if len(config.Colors) == 0 {
		config.Colors = DefaultConfig().Colors
	}
	return &Pulse{config: config, paint: paint}
}

// Start begins pulsing. Calling Start while running is a no-op.
func (pulse *Pulse) Start(ctx context.Context) {
	pulse.mu.Lock()
	defer pulse.mu.Unlock()
	if pulse.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	pulse.cancel = cancel
	pulse.done = done

	go func() {
		defer close(done)
		pulse.run(runCtx)
	}()
}

// Stop terminates the pulse and waits for the last frame.
func (pulse *Pulse) Stop() {
	pulse.mu.Lock()
	cancel, done := pulse.cancel, pulse.done
	pulse.cancel, pulse.done = nil, nil
	pulse.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the pulse goroutine is active.
func (pulse *Pulse) Running() bool {
	pulse.mu.Lock()
	defer pulse.mu.Unlock()
	return pulse.cancel != nil
}

func (pulse *Pulse) run(ctx context.Context) {
	for frame := 0; ; frame++ {
		pulse.paint(pulse.config.Colors[frame%len(pulse.config.Colors)])
		if !sleepWithContext(ctx, pulse.config.Interval) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
