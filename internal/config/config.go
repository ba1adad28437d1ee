package config

import (
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the full runtime configuration, loadable from a YAML file.
// Zero or missing fields fall back to the defaults from Default.
type Settings struct {
	Stream StreamSettings `yaml:"stream"`
	World  WorldSettings  `yaml:"world"`
	Render RenderSettings `yaml:"render"`
}

// StreamSettings tunes chunk streaming.
type StreamSettings struct {
	LoadRadius      int           `yaml:"load_radius"`
	UnloadRadius    int           `yaml:"unload_radius"`
	Workers         int           `yaml:"workers"`
	MaxInFlight     int           `yaml:"max_in_flight"`
	UploadsPerFrame int           `yaml:"uploads_per_frame"`
	MeshWait        time.Duration `yaml:"mesh_wait"`
}

// WorldSettings tunes terrain generation.
type WorldSettings struct {
	Seed              int64   `yaml:"seed"`
	DensityFrequency  float64 `yaml:"density_frequency"`
	DensityThreshold  float64 `yaml:"density_threshold"`
	MaterialFrequency float64 `yaml:"material_frequency"`
	MaterialExponent  float64 `yaml:"material_exponent"`
}

// RenderSettings tunes the window and shading.
type RenderSettings struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FOV        float32 `yaml:"fov"`
	FogFalloff float32 `yaml:"fog_falloff"`
	FogCurve   float32 `yaml:"fog_curve"`
	VSync      bool    `yaml:"vsync"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		Stream: StreamSettings{
			LoadRadius:      8,
			UnloadRadius:    10,
			Workers:         max(runtime.NumCPU()-1, 1),
			MaxInFlight:     64,
			UploadsPerFrame: 256,
			MeshWait:        250 * time.Millisecond,
		},
		World: WorldSettings{
			Seed:              1,
			DensityFrequency:  0.01,
			DensityThreshold:  -0.2,
			MaterialFrequency: 0.001,
			MaterialExponent:  5,
		},
		Render: RenderSettings{
			Width:      1280,
			Height:     720,
			FOV:        70,
			FogFalloff: 250,
			FogCurve:   3,
			VSync:      true,
		},
	}
}

// Load reads settings from a YAML file, layering it over the defaults. A
// missing file is not an error; the defaults are returned as-is.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse config %s", path)
	}
	if err := s.Validate(); err != nil {
		return s, errors.Wrapf(err, "config %s", path)
	}
	return s, nil
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	if s.Stream.LoadRadius < 1 {
		return errors.Errorf("stream.load_radius %d: must be at least 1", s.Stream.LoadRadius)
	}
	if s.Stream.UnloadRadius <= s.Stream.LoadRadius {
		return errors.Errorf("stream.unload_radius %d: must exceed load_radius %d",
			s.Stream.UnloadRadius, s.Stream.LoadRadius)
	}
	if s.Stream.Workers < 1 {
		return errors.Errorf("stream.workers %d: must be at least 1", s.Stream.Workers)
	}
	if s.Stream.MaxInFlight < 1 {
		return errors.Errorf("stream.max_in_flight %d: must be at least 1", s.Stream.MaxInFlight)
	}
	if s.Stream.UploadsPerFrame < 1 {
		return errors.Errorf("stream.uploads_per_frame %d: must be at least 1", s.Stream.UploadsPerFrame)
	}
	if s.World.DensityFrequency <= 0 {
		return errors.Errorf("world.density_frequency %g: must be positive", s.World.DensityFrequency)
	}
	if s.World.MaterialFrequency <= 0 {
		return errors.Errorf("world.material_frequency %g: must be positive", s.World.MaterialFrequency)
	}
	if s.Render.Width < 1 || s.Render.Height < 1 {
		return errors.Errorf("render size %dx%d: must be positive", s.Render.Width, s.Render.Height)
	}
	if s.Render.FOV <= 0 || s.Render.FOV >= 180 {
		return errors.Errorf("render.fov %g: must be in (0, 180)", s.Render.FOV)
	}
	return nil
}
