package config

import "math"

// DifficultyManager turns score and play time into the speed score that
// drives the gravity curve.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score
// or elapsed seconds.
func (d *DifficultyManager) Level(score int, seconds int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(seconds) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedScore maps the current level back onto the score scale used by the
// gravity curve. With score progression from level 0 it equals the score
// itself. From MaxAt on every preset has reached full level and the
// score is used as is, so gravity keeps speeding up toward its floor.
func (d *DifficultyManager) SpeedScore(score int, seconds int) int {
	if d.IsEnabled() && d.cfg.Progression.Type == "score" && score >= d.cfg.Progression.MaxAt {
		return score
	}
	return int(d.Level(score, seconds) * float64(d.cfg.Progression.MaxAt))
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
