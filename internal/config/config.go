// Package config provides the tunable simulation constants, loaded from YAML
// with an embedded default. The collision shapes and thrust/pump rates are
// deliberately configuration rather than literals in the game core.
package config

import "fmt"

// Config is the full game tuning configuration.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Objects ObjectsConfig `yaml:"objects"`
}

// PhysicsConfig holds the integrator constants. Rates are per second of
// simulated time; mass is expressed as ball diameter in world units.
type PhysicsConfig struct {
	ThrustAccel float64 `yaml:"thrust_accel"` // Acceleration per held direction, units/s^2
	ThrustDrain float64 `yaml:"thrust_drain"` // Mass lost per second while thrusting
	PumpRate    float64 `yaml:"pump_rate"`    // Mass gained per second on a pump
	StartMass   float64 `yaml:"start_mass"`   // Ball diameter at attempt start
	MassMin     float64 `yaml:"mass_min"`     // At or below: implosion
	MassMax     float64 `yaml:"mass_max"`     // At or above: explosion
}

// ObjectsConfig holds the contact geometry of placed objects. Sizes are
// diameters in world units; pads widen (positive) or narrow (negative) the
// contact distance relative to the two radii.
type ObjectsConfig struct {
	GemSize  float64 `yaml:"gem_size"`
	PumpSize float64 `yaml:"pump_size"`
	MineSize float64 `yaml:"mine_size"`
	FlagSize float64 `yaml:"flag_size"`
	PumpPad  float64 `yaml:"pump_pad"`
	TouchPad float64 `yaml:"touch_pad"` // Applied to gems, mines and the flag
}

// Validate rejects configurations that would break simulation invariants.
// These are programmer/configuration errors caught before a session starts,
// never mid-tick.
func (c Config) Validate() error {
	p := c.Physics
	if p.ThrustAccel <= 0 {
		return fmt.Errorf("config: thrust_accel must be positive, got %g", p.ThrustAccel)
	}
	if p.ThrustDrain <= 0 {
		return fmt.Errorf("config: thrust_drain must be positive, got %g", p.ThrustDrain)
	}
	if p.PumpRate <= 0 {
		return fmt.Errorf("config: pump_rate must be positive, got %g", p.PumpRate)
	}
	if p.MassMin <= 0 {
		return fmt.Errorf("config: mass_min must be positive, got %g", p.MassMin)
	}
	if p.MassMax <= p.MassMin {
		return fmt.Errorf("config: mass_max (%g) must exceed mass_min (%g)", p.MassMax, p.MassMin)
	}
	if p.StartMass <= p.MassMin || p.StartMass >= p.MassMax {
		return fmt.Errorf("config: start_mass (%g) must lie strictly between mass bounds", p.StartMass)
	}

	o := c.Objects
	if o.GemSize <= 0 || o.PumpSize <= 0 || o.MineSize <= 0 || o.FlagSize <= 0 {
		return fmt.Errorf("config: object sizes must be positive")
	}
	return nil
}
