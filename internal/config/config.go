// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Bag        BagConfig        `yaml:"bag"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Timing     TimingConfig     `yaml:"timing"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BagConfig defines the piece randomizer.
type BagConfig struct {
	History int `yaml:"history"` // anti-repetition window, 1..27
}

// RotationConfig defines kick behaviour.
type RotationConfig struct {
	RowBump bool `yaml:"row_bump"` // retry rotations one row lower
}

// TimingConfig defines the fixed waits of the game loop, in milliseconds.
type TimingConfig struct {
	CountdownFrom   int `yaml:"countdown_from"`
	CountdownShowMs int `yaml:"countdown_show_ms"`
	CountdownFadeMs int `yaml:"countdown_fade_ms"`
	GameOverMs      int `yaml:"game_over_ms"`
	PerfectClearMs  int `yaml:"perfect_clear_ms"`
	LockTickDivisor int `yaml:"lock_tick_divisor"` // lock tick = delay/divisor + base
	LockTickBaseMs  int `yaml:"lock_tick_base_ms"`
	ResumeDivisor   int `yaml:"resume_divisor"` // wait delay/divisor after a resume countdown
}

// GravityConfig defines the fall delay curve:
// delay = base * (1 + 1/decay)^-(speed >> shift) + floor.
type GravityConfig struct {
	BaseMs     float64 `yaml:"base_ms"`
	FloorMs    float64 `yaml:"floor_ms"`
	Decay      float64 `yaml:"decay"`
	ScoreShift int     `yaml:"score_shift"`
}

// ScoringConfig defines point values. Every award is multiplied by Unit.
type ScoringConfig struct {
	Unit         int `yaml:"unit"`
	Lock         int `yaml:"lock"`          // every locked piece
	Line         int `yaml:"line"`          // per cleared row
	LineOffset   int `yaml:"line_offset"`   // subtracted once when any row clears
	PerfectClear int `yaml:"perfect_clear"` // field emptied
	Combo        int `yaml:"combo"`         // per combo step
	Hold         int `yaml:"hold"`          // each successful hold
}

// Ms converts a millisecond setting to a duration.
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate reports settings the game cannot run with.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Field.Width < 4 || c.Field.Height < 4 {
		errs = append(errs, fmt.Errorf("field %dx%d is smaller than 4x4", c.Field.Width, c.Field.Height))
	}
	if c.Bag.History < 1 || c.Bag.History > 27 {
		errs = append(errs, fmt.Errorf("bag history %d outside 1..27", c.Bag.History))
	}
	if c.Timing.CountdownFrom < 0 {
		errs = append(errs, fmt.Errorf("countdown_from %d is negative", c.Timing.CountdownFrom))
	}
	if c.Timing.LockTickDivisor <= 0 || c.Timing.ResumeDivisor <= 0 {
		errs = append(errs, errors.New("timing divisors must be positive"))
	}
	if c.Timing.GameOverMs <= 0 {
		errs = append(errs, errors.New("game_over_ms must be positive"))
	}
	if c.Gravity.BaseMs < 0 || c.Gravity.FloorMs <= 0 || c.Gravity.Decay <= 0 || c.Gravity.ScoreShift < 0 {
		errs = append(errs, errors.New("gravity needs base_ms >= 0, floor_ms > 0, decay > 0, score_shift >= 0"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score (or seconds) at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the file".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
