package maya

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/achilleasa/lumirig/types"
)

func TestWriteRig(t *testing.T) {
	positions := []types.Vec3{{-0.5, 0, 0.25}, {0, 1, 0}}

	var buf bytes.Buffer
	if err := WriteRig(&buf, positions, 0.1, 100.0); err != nil {
		t.Fatal(err)
	}
	script := buf.String()

	if !strings.Contains(script, "import maya.cmds") {
		t.Fatal("expected the script to import maya.cmds")
	}
	if !strings.Contains(script, "maya.cmds.playbackOptions(animationStartTime=0, animationEndTime=1, minTime=0, maxTime=1)") {
		t.Fatal("expected the timeline to span one frame per camera position")
	}

	if got := strings.Count(script, "maya.cmds.camera(name='lumirig_"); got != 6 {
		t.Fatalf("expected 6 camera creations; got %d", got)
	}
	if !strings.Contains(script, "cam_front = maya.cmds.camera(name='lumirig_front', focalLength=12.7, horizontalFilmAperture=1, verticalFilmAperture=1, nearClipPlane=0.1, farClipPlane=100)[0]") {
		t.Fatal("expected the front camera creation call")
	}

	// Face rotations follow the single-axis offsets; the front camera
	// gets none.
	if strings.Contains(script, "cam_front + '.rotate") {
		t.Fatal("expected no rotation on the front camera")
	}
	for _, exp := range []string{
		"maya.cmds.setAttr(cam_back + '.rotateY', 180)",
		"maya.cmds.setAttr(cam_left + '.rotateY', 90)",
		"maya.cmds.setAttr(cam_right + '.rotateY', -90)",
		"maya.cmds.setAttr(cam_bottom + '.rotateX', -90)",
		"maya.cmds.setAttr(cam_top + '.rotateX', 90)",
	} {
		if !strings.Contains(script, exp) {
			t.Fatalf("expected script to contain %q", exp)
		}
	}

	// Three translate attributes per camera per position.
	if got := strings.Count(script, "maya.cmds.setKeyframe("); got != 6*len(positions)*3 {
		t.Fatalf("expected %d keyframe calls; got %d", 6*len(positions)*3, got)
	}
	if !strings.Contains(script, "maya.cmds.setKeyframe(cam_front, at='translateX', t=0, v=-0.5)") {
		t.Fatal("expected the first front keyframe")
	}
	if !strings.Contains(script, "maya.cmds.setKeyframe(cam_top, at='translateY', t=1, v=1)") {
		t.Fatal("expected the last top keyframe")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestScriptWriterStickyError(t *testing.T) {
	err := WriteRig(failingWriter{}, []types.Vec3{{0, 0, 0}}, 0.1, 100.0)
	if err == nil || err.Error() != "sink closed" {
		t.Fatalf("expected the write error to surface; got %v", err)
	}
}
