// Package tuning loads the generation calibration constants from YAML.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	// SphereRadius is the procedural demo's ball radius, in voxels.
	SphereRadius int `yaml:"sphere_radius"`

	// Unit is the physical edge length of one voxel, in toolpath units
	// (mm for typical gcode).
	Unit float64 `yaml:"unit"`
	// BlocksPerE converts net extrusion length to a voxel budget.
	BlocksPerE float64 `yaml:"blocks_per_e"`
	// StepSize subdivides extruding segments, in toolpath units.
	StepSize float64 `yaml:"step_size"`
	// LayerDepth is the injection slab window below the nozzle, in voxels.
	LayerDepth int `yaml:"layer_depth"`
	// InjectDepth bounds the injector frontier search.
	InjectDepth int `yaml:"inject_depth"`

	// FrameEvery is the insertion interval between frame snapshots.
	FrameEvery int `yaml:"frame_every"`

	// Inject demo parameters: voxels per unit distance, seed step, total
	// march distance, slab half-height.
	DemoRate     int `yaml:"demo_rate"`
	DemoStep     int `yaml:"demo_step"`
	DemoDist     int `yaml:"demo_dist"`
	DemoSlabHalf int `yaml:"demo_slab_half"`
}

// Defaults mirrors a 0.4mm nozzle / 0.2mm layer setup at a 0.04mm voxel.
func Defaults() Tuning {
	return Tuning{
		SphereRadius: 100,
		Unit:         0.04,
		BlocksPerE:   29000,
		StepSize:     0.1,
		LayerDepth:   20,
		InjectDepth:  100,
		FrameEvery:   20000,
		DemoRate:     200,
		DemoStep:     5,
		DemoDist:     100,
		DemoSlabHalf: 5,
	}
}

func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning: %s: %w", path, err)
	}
	return t, nil
}
