package rig

import (
	"fmt"
	"os"

	"github.com/achilleasa/lumirig/types"
	"gopkg.in/yaml.v3"
)

// On-disk rig description. Field names follow the manifest vocabulary:
//
//	headbox:
//	  min: [-0.5, -0.5, -0.5]
//	  max: [0.5, 0.5, 0.5]
//	num_view_groups: 16
//	image_size: 1024
//	near_clip: 0.1
//	far_clip: 100.0
//	depth_type: EYE_Z
//	depth_channel_name: A
//	color_path_pattern: "%s_color.%04d.exr"
//	depth_path_pattern: "%s_depth.%04d.exr"
type rigConfig struct {
	Headbox struct {
		Min []float64 `yaml:"min"`
		Max []float64 `yaml:"max"`
	} `yaml:"headbox"`
	NumViewGroups    int     `yaml:"num_view_groups"`
	ImageSize        int     `yaml:"image_size"`
	NearClip         float64 `yaml:"near_clip"`
	FarClip          float64 `yaml:"far_clip"`
	DepthType        string  `yaml:"depth_type"`
	DepthChannelName string  `yaml:"depth_channel_name"`
	ColorPathPattern string  `yaml:"color_path_pattern"`
	DepthPathPattern string  `yaml:"depth_path_pattern"`
}

func vec3FromConfig(bound string, components []float64) (types.Vec3, error) {
	if len(components) != 3 {
		return types.Vec3{}, fmt.Errorf("rig: headbox %s must have 3 components; got %d", bound, len(components))
	}
	return types.Vec3{components[0], components[1], components[2]}, nil
}

// LoadParams reads a YAML rig description. The result is not validated;
// callers run Params.Validate (or Plan, which does) after applying any
// overrides.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}

	var cfg rigConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Params{}, fmt.Errorf("rig: could not parse %s: %w", path, err)
	}

	var p Params
	if p.HeadboxMin, err = vec3FromConfig("min", cfg.Headbox.Min); err != nil {
		return Params{}, err
	}
	if p.HeadboxMax, err = vec3FromConfig("max", cfg.Headbox.Max); err != nil {
		return Params{}, err
	}
	p.NumViewGroups = cfg.NumViewGroups
	p.ImageSize = cfg.ImageSize
	p.NearClip = cfg.NearClip
	p.FarClip = cfg.FarClip
	p.DepthType = cfg.DepthType
	p.DepthChannelName = cfg.DepthChannelName
	p.ColorPathPattern = cfg.ColorPathPattern
	p.DepthPathPattern = cfg.DepthPathPattern
	return p, nil
}
