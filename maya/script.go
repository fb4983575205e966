// Package maya renders a rig as a python script that rebuilds it inside
// Maya with maya.cmds calls. The planner stays host-free; sourcing the
// emitted script in Maya's script editor creates and keyframes the six
// cube-face cameras.
package maya

import (
	"fmt"
	"io"

	"github.com/achilleasa/lumirig/rig"
	"github.com/achilleasa/lumirig/types"
)

// Camera settings matching a square 90 degree viewport.
const (
	focalLength  = 12.7
	filmAperture = 1
)

// ScriptWriter implements rig.Target by emitting maya.cmds python calls.
// The first write error sticks and is returned by every later call.
type ScriptWriter struct {
	w   io.Writer
	err error
}

func NewScriptWriter(w io.Writer) *ScriptWriter {
	sw := &ScriptWriter{w: w}
	sw.printf("# Maya camera rig generated by lumirig. Source inside Maya to build the rig.\n")
	sw.printf("import maya.cmds\n")
	return sw
}

// Err returns the first write error encountered, if any.
func (sw *ScriptWriter) Err() error {
	return sw.err
}

func (sw *ScriptWriter) printf(format string, v ...interface{}) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, v...)
}

// SetPlaybackRange emits a playbackOptions call so the timeline exactly
// contains one frame per camera position.
func (sw *ScriptWriter) SetPlaybackRange(start, end int) error {
	sw.printf("\nmaya.cmds.playbackOptions(animationStartTime=%d, animationEndTime=%d, minTime=%d, maxTime=%d)\n",
		start, end, start, end)
	return sw.err
}

// CreateCamera emits a camera creation call followed by the rotation
// offsets for the face. The returned handle is the python variable holding
// the camera transform node.
func (sw *ScriptWriter) CreateCamera(face rig.CubeFace, rot rig.FaceRotation, nearClip, farClip float64) (string, error) {
	camera := "cam_" + face.String()
	sw.printf("\n%s = maya.cmds.camera(name='lumirig_%s', focalLength=%g, horizontalFilmAperture=%d, verticalFilmAperture=%d, nearClipPlane=%g, farClipPlane=%g)[0]\n",
		camera, face, focalLength, filmAperture, filmAperture, nearClip, farClip)
	if rot.YawDeg != 0 {
		sw.printf("maya.cmds.setAttr(%s + '.rotateY', %g)\n", camera, rot.YawDeg)
	}
	if rot.PitchDeg != 0 {
		sw.printf("maya.cmds.setAttr(%s + '.rotateX', %g)\n", camera, rot.PitchDeg)
	}
	return camera, sw.err
}

// KeyframePosition emits per-axis setKeyframe calls for one frame.
func (sw *ScriptWriter) KeyframePosition(camera string, frame int, position types.Vec3) error {
	for axis, attr := range [3]string{"translateX", "translateY", "translateZ"} {
		sw.printf("maya.cmds.setKeyframe(%s, at='%s', t=%d, v=%g)\n", camera, attr, frame, position[axis])
	}
	return sw.err
}

// WriteRig emits the full rig script for the given camera positions.
func WriteRig(w io.Writer, positions []types.Vec3, nearClip, farClip float64) error {
	sw := NewScriptWriter(w)
	if err := rig.InstallRig(sw, positions, nearClip, farClip); err != nil {
		return err
	}
	return sw.Err()
}
