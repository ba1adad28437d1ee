package worldgen

import "fmt"

// NoiseConfigError reports an invalid generator parameter. It is produced
// once at startup; no chunk can be generated with a bad configuration.
type NoiseConfigError struct {
	Field  string
	Reason string
}

func (e *NoiseConfigError) Error() string {
	return fmt.Sprintf("worldgen: invalid noise config: %s %s", e.Field, e.Reason)
}

// Config holds the immutable noise parameters shared by all generation work.
// Identical (chunk coordinate, Config) pairs always produce bit-identical
// chunks.
type Config struct {
	Seed int64

	// DensityFrequency scales world coordinates before the 3D density
	// sample; DensityThreshold is the cutoff below which a cell is solid.
	DensityFrequency float64
	DensityThreshold float64

	// MaterialFrequency and MaterialExponent shape the second, slower noise
	// that picks stone over grass.
	MaterialFrequency float64
	MaterialExponent  float64
}

// DefaultConfig returns the parameters used by the standard world.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:              seed,
		DensityFrequency:  0.01,
		DensityThreshold:  -0.2,
		MaterialFrequency: 0.001,
		MaterialExponent:  5,
	}
}

// Validate checks the configuration. Called once when the generator is
// built, never per chunk.
func (c Config) Validate() error {
	if c.DensityFrequency <= 0 {
		return &NoiseConfigError{"density_frequency", "must be positive"}
	}
	if c.DensityThreshold < -1 || c.DensityThreshold > 1 {
		return &NoiseConfigError{"density_threshold", "must be within [-1, 1]"}
	}
	if c.MaterialFrequency <= 0 {
		return &NoiseConfigError{"material_frequency", "must be positive"}
	}
	if c.MaterialExponent <= 0 {
		return &NoiseConfigError{"material_exponent", "must be positive"}
	}
	return nil
}
