package rig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/achilleasa/lumirig/types"
)

// Depth encodings understood by the downstream pipeline.
const (
	// Window-space Z in [0, 1].
	DepthWindowZ = "WINDOW_Z"
	// Negated eye-space Z in [0, inf); Arnold's encoding.
	DepthEyeZ = "EYE_Z"
	// Distance to the eye.
	DepthRayDepth = "RAY_DEPTH"
)

// DepthTypes lists the valid depth encodings.
func DepthTypes() []string {
	return []string{DepthWindowZ, DepthEyeZ, DepthRayDepth}
}

// Params collects everything needed to plan a capture rig.
type Params struct {
	// World-space bounds of the headbox.
	HeadboxMin types.Vec3
	HeadboxMax types.Vec3

	// Number of camera positions. Powers of two give the most even
	// Hammersley distribution.
	NumViewGroups int

	// Output images are square with this many pixels per side.
	ImageSize int

	// Eye-space Z positions of the clipping planes.
	NearClip float64
	FarClip  float64

	// Depth encoding, one of DepthTypes.
	DepthType string

	// Name of the depth channel in the output files. Commonly "R"
	// (VRay) or "A" (Arnold).
	DepthChannelName string

	// File name patterns with a face-name and a view-group-index
	// placeholder, e.g. "%s_color.%04d.exr".
	ColorPathPattern string
	DepthPathPattern string
}

// Headbox returns the headbox as a box value.
func (p Params) Headbox() types.Box {
	return types.Box{Min: p.HeadboxMin, Max: p.HeadboxMax}
}

// Validate checks every precondition the pipeline relies on. Planning
// fails fast here before any output is produced.
func (p Params) Validate() error {
	if !p.Headbox().Valid() {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidHeadbox, p.HeadboxMin, p.HeadboxMax)
	}
	if p.NumViewGroups <= 0 {
		return ErrInvalidCameraCount
	}
	if p.ImageSize <= 0 {
		return ErrInvalidImageSize
	}
	if p.NearClip <= 0 || p.FarClip <= p.NearClip {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidClipRange, p.NearClip, p.FarClip)
	}
	switch p.DepthType {
	case DepthWindowZ, DepthEyeZ, DepthRayDepth:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDepthType, p.DepthType)
	}
	if _, err := formatImagePath(p.ColorPathPattern, FaceFront, 0); err != nil {
		return err
	}
	if _, err := formatImagePath(p.DepthPathPattern, FaceFront, 0); err != nil {
		return err
	}
	return nil
}

// Plan generates the camera positions and the manifest for the rig.
func Plan(p Params) (*Manifest, []types.Vec3, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	headbox := p.Headbox()
	positions, err := GenerateCameraPositions(headbox, p.NumViewGroups)
	if err != nil {
		return nil, nil, err
	}

	manifest, err := BuildViewGroups(headbox.Center(), positions, p.ImageSize,
		p.NearClip, p.FarClip, p.DepthType, p.DepthChannelName,
		p.ColorPathPattern, p.DepthPathPattern)
	if err != nil {
		return nil, nil, err
	}

	return manifest, positions, nil
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// WriteFile persists the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Encode(f)
}

// DecodeManifest parses a manifest from r.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadManifest parses a manifest file.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeManifest(f)
}
