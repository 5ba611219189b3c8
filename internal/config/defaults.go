package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Bag: BagConfig{
			History: 14,
		},
		Rotation: RotationConfig{
			RowBump: true,
		},
		Timing: TimingConfig{
			CountdownFrom:   3,
			CountdownShowMs: 200,
			CountdownFadeMs: 800,
			GameOverMs:      1000,
			PerfectClearMs:  200,
			LockTickDivisor: 16,
			LockTickBaseMs:  64,
			ResumeDivisor:   4,
		},
		Gravity: GravityConfig{
			BaseMs:     2048,
			FloorMs:    32,
			Decay:      16384,
			ScoreShift: 8,
		},
		Scoring: ScoringConfig{
			Unit:         10,
			Lock:         40,
			Line:         200,
			LineOffset:   100,
			PerfectClear: 1000,
			Combo:        5,
			Hold:         20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1 << 22,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
