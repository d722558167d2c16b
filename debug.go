package motion

import (
	"time"
)

// debugStats holds per-frame timing and workload. Only logged when the
// stage is in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	animations int
	boxes      int
}

// debugLog writes the frame's stats at debug level.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		"frame", s.Frame(),
		"update", stats.updateTime,
		"draw", stats.drawTime,
		"total", stats.updateTime+stats.drawTime,
		"animations", stats.animations,
		"boxes", stats.boxes,
	)
}
