package rig

import (
	"fmt"

	"github.com/achilleasa/lumirig/types"
)

// FaceRotation expresses a cube-face orientation as single-axis angle
// offsets in degrees, the form host applications key on camera transforms.
type FaceRotation struct {
	YawDeg   float64
	PitchDeg float64
}

// RotationFor returns the rotation a host camera needs to look through the
// given cube face.
func RotationFor(face CubeFace) (FaceRotation, error) {
	switch face {
	case FaceFront:
		return FaceRotation{}, nil
	case FaceBack:
		return FaceRotation{YawDeg: 180}, nil
	case FaceLeft:
		return FaceRotation{YawDeg: 90}, nil
	case FaceRight:
		return FaceRotation{YawDeg: -90}, nil
	case FaceBottom:
		return FaceRotation{PitchDeg: -90}, nil
	case FaceTop:
		return FaceRotation{PitchDeg: 90}, nil
	}
	return FaceRotation{}, fmt.Errorf("%w: face %d", ErrInvalidFaceName, int(face))
}

// Target is the capability a host 3D application adapter implements so the
// rig can be materialized as live camera objects. The planner itself never
// talks to a host; it only drives this interface.
type Target interface {
	// SetPlaybackRange adjusts the host timeline to [start, end] frames.
	SetPlaybackRange(start, end int) error

	// CreateCamera creates one cube-face camera with the given rotation
	// and clip planes and returns a handle for keyframing.
	CreateCamera(face CubeFace, rot FaceRotation, nearClip, farClip float64) (string, error)

	// KeyframePosition keys the camera translation at an integer frame.
	KeyframePosition(camera string, frame int, position types.Vec3) error
}

// InstallRig drives a Target to create the six cube-face cameras and key
// each one's translation at frames 0..len(positions)-1, one keyframe per
// camera position. Cameras are created in the fixed face order.
func InstallRig(t Target, positions []types.Vec3, nearClip, farClip float64) error {
	if len(positions) == 0 {
		return ErrInvalidCameraCount
	}

	if err := t.SetPlaybackRange(0, len(positions)-1); err != nil {
		return err
	}

	for _, face := range cubeFaces {
		rot, err := RotationFor(face)
		if err != nil {
			return err
		}

		camera, err := t.CreateCamera(face, rot, nearClip, farClip)
		if err != nil {
			return err
		}

		for frame, position := range positions {
			if err = t.KeyframePosition(camera, frame, position); err != nil {
				return err
			}
		}
	}

	return nil
}
