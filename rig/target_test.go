package rig

import (
	"errors"
	"testing"

	"github.com/achilleasa/lumirig/types"
)

type keyframe struct {
	frame    int
	position types.Vec3
}

type fakeTarget struct {
	playbackStart int
	playbackEnd   int
	playbackCalls int

	cameras   []string
	rotations map[string]FaceRotation
	keyframes map[string][]keyframe

	failCreate bool
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		rotations: make(map[string]FaceRotation),
		keyframes: make(map[string][]keyframe),
	}
}

func (ft *fakeTarget) SetPlaybackRange(start, end int) error {
	ft.playbackCalls++
	ft.playbackStart = start
	ft.playbackEnd = end
	return nil
}

func (ft *fakeTarget) CreateCamera(face CubeFace, rot FaceRotation, nearClip, farClip float64) (string, error) {
	if ft.failCreate {
		return "", errors.New("host refused camera creation")
	}
	name := face.String()
	ft.cameras = append(ft.cameras, name)
	ft.rotations[name] = rot
	return name, nil
}

func (ft *fakeTarget) KeyframePosition(camera string, frame int, position types.Vec3) error {
	ft.keyframes[camera] = append(ft.keyframes[camera], keyframe{frame, position})
	return nil
}

func TestRotationFor(t *testing.T) {
	cases := []struct {
		face CubeFace
		exp  FaceRotation
	}{
		{FaceFront, FaceRotation{}},
		{FaceBack, FaceRotation{YawDeg: 180}},
		{FaceLeft, FaceRotation{YawDeg: 90}},
		{FaceRight, FaceRotation{YawDeg: -90}},
		{FaceBottom, FaceRotation{PitchDeg: -90}},
		{FaceTop, FaceRotation{PitchDeg: 90}},
	}

	for _, c := range cases {
		rot, err := RotationFor(c.face)
		if err != nil {
			t.Fatal(err)
		}
		if rot != c.exp {
			t.Fatalf("expected rotation %+v for %v; got %+v", c.exp, c.face, rot)
		}
	}

	if _, err := RotationFor(CubeFace(-1)); !errors.Is(err, ErrInvalidFaceName) {
		t.Fatalf("expected ErrInvalidFaceName; got %v", err)
	}
}

func TestInstallRig(t *testing.T) {
	positions := []types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}}
	target := newFakeTarget()

	if err := InstallRig(target, positions, 0.1, 100.0); err != nil {
		t.Fatal(err)
	}

	if target.playbackCalls != 1 || target.playbackStart != 0 || target.playbackEnd != 2 {
		t.Fatalf("expected a single playback range [0, 2]; got %d calls with [%d, %d]",
			target.playbackCalls, target.playbackStart, target.playbackEnd)
	}

	expCameras := []string{"front", "back", "left", "right", "bottom", "top"}
	if len(target.cameras) != len(expCameras) {
		t.Fatalf("expected %d cameras; got %d", len(expCameras), len(target.cameras))
	}
	for i, name := range expCameras {
		if target.cameras[i] != name {
			t.Fatalf("expected camera %d to be %q; got %q", i, name, target.cameras[i])
		}
	}

	if rot := target.rotations["back"]; rot != (FaceRotation{YawDeg: 180}) {
		t.Fatalf("expected the back camera to carry a 180 degree yaw; got %+v", rot)
	}

	for _, name := range expCameras {
		keys := target.keyframes[name]
		if len(keys) != len(positions) {
			t.Fatalf("expected %d keyframes on %q; got %d", len(positions), name, len(keys))
		}
		for frame, key := range keys {
			if key.frame != frame {
				t.Fatalf("expected keyframe %d on %q at frame %d; got %d", frame, name, frame, key.frame)
			}
			if key.position != positions[frame] {
				t.Fatalf("expected position %v at frame %d on %q; got %v", positions[frame], frame, name, key.position)
			}
		}
	}
}

func TestInstallRigRejectsEmptyPositions(t *testing.T) {
	if err := InstallRig(newFakeTarget(), nil, 0.1, 100.0); !errors.Is(err, ErrInvalidCameraCount) {
		t.Fatalf("expected ErrInvalidCameraCount; got %v", err)
	}
}

func TestInstallRigPropagatesTargetErrors(t *testing.T) {
	target := newFakeTarget()
	target.failCreate = true

	err := InstallRig(target, []types.Vec3{{0, 0, 0}}, 0.1, 100.0)
	if err == nil || err.Error() != "host refused camera creation" {
		t.Fatalf("expected the host error to propagate; got %v", err)
	}
}
