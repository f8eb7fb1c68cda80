package config

import (
	_ "embed"
)

//go:embed defaults/puffball.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when neither a
// user config nor the embedded YAML is usable.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			ThrustAccel: 216.0,
			ThrustDrain: 0.72,
			PumpRate:    2.75,
			StartMass:   28.0,
			MassMin:     4.0,
			MassMax:     36.0,
		},
		Objects: ObjectsConfig{
			GemSize:  24.0,
			PumpSize: 34.0,
			MineSize: 6.0,
			FlagSize: 24.0,
			PumpPad:  -2.0,
			TouchPad: 1.0,
		},
	}
}
