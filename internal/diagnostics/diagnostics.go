// Package diagnostics tracks frame timing and entity counts, logs them
// periodically and formats them for the on-screen overlay.
package diagnostics

import (
	"fmt"
	"time"

	"chosenoffset.com/colony/internal/logger"
)

const (
	historyLen = 20

	// smoothing is the exponential moving average factor for a window of
	// historyLen samples.
	smoothing = 2.0 / (historyLen + 1)
)

// Snapshot is the current diagnostic reading.
type Snapshot struct {
	FrameTime   time.Duration // mean over the history window
	FPS         float64       // from the mean frame time
	SmoothedFPS float64
	Frames      uint64
	Entities    int
}

// Diagnostics accumulates per-frame measurements.
type Diagnostics struct {
	log      logger.Logger
	interval time.Duration

	history [historyLen]time.Duration
	next    int
	filled  int

	smoothed float64 // seconds per frame
	frames   uint64
	entities int
	sinceLog time.Duration
}

// New creates diagnostics that log every interval. A non-positive interval
// disables logging.
func New(log logger.Logger, interval time.Duration) *Diagnostics {
	return &Diagnostics{
		log:      log.With(logger.Field{Key: "component", Value: "diagnostics"}),
		interval: interval,
	}
}

// Record adds one frame of duration dt with the given live entity count.
func (d *Diagnostics) Record(dt time.Duration, entities int) {
	if dt < 0 {
		dt = 0
	}
	d.frames++
	d.entities = entities

	d.history[d.next] = dt
	d.next = (d.next + 1) % historyLen
	if d.filled < historyLen {
		d.filled++
	}

	secs := dt.Seconds()
	if d.frames == 1 {
		d.smoothed = secs
	} else {
		d.smoothed += (secs - d.smoothed) * smoothing
	}

	if d.interval <= 0 {
		return
	}
	d.sinceLog += dt
	if d.sinceLog >= d.interval {
		d.sinceLog -= d.interval
		d.emit()
	}
}

// Snapshot returns the current reading.
func (d *Diagnostics) Snapshot() Snapshot {
	s := Snapshot{Frames: d.frames, Entities: d.entities}
	if d.filled == 0 {
		return s
	}

	var total time.Duration
	for i := 0; i < d.filled; i++ {
		total += d.history[i]
	}
	s.FrameTime = total / time.Duration(d.filled)
	if s.FrameTime > 0 {
		s.FPS = 1 / s.FrameTime.Seconds()
	}
	if d.smoothed > 0 {
		s.SmoothedFPS = 1 / d.smoothed
	}
	return s
}

// Lines formats the reading for the overlay.
func (d *Diagnostics) Lines() []string {
	s := d.Snapshot()
	return []string{
		fmt.Sprintf("fps: %.1f (avg %.1f)", s.SmoothedFPS, s.FPS),
		fmt.Sprintf("frame time: %.2fms", float64(s.FrameTime.Microseconds())/1000),
		fmt.Sprintf("frames: %d", s.Frames),
		fmt.Sprintf("entities: %d", s.Entities),
	}
}

func (d *Diagnostics) emit() {
	s := d.Snapshot()
	d.log.Info("Diagnostics",
		logger.Field{Key: "fps", Value: s.SmoothedFPS},
		logger.Field{Key: "fps_avg", Value: s.FPS},
		logger.Field{Key: "frame_time", Value: s.FrameTime},
		logger.Field{Key: "frames", Value: int64(s.Frames)},
		logger.Field{Key: "entities", Value: s.Entities})
}
