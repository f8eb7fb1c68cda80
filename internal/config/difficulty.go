package config

// DifficultyPreset names a coarse tuning preset selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings (including
// empty) report ok = false and leave the config untouched.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	}
	return "", false
}

// ApplyPreset scales the mass economy for the given preset. Easier presets
// drain slower and pump faster; the mass bounds themselves never move, so
// the loss conditions stay identical across presets.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.ThrustDrain *= 0.6
		cfg.Physics.PumpRate *= 1.3
	case DifficultyHard:
		cfg.Physics.ThrustDrain *= 1.5
		cfg.Physics.PumpRate *= 0.75
	case DifficultyNormal:
		// Baseline tuning as loaded.
	}
}
