package rig

import (
	"errors"
	"math"
	"testing"

	"github.com/achilleasa/lumirig/types"
)

func TestCubeFaceOrder(t *testing.T) {
	expNames := []string{"front", "back", "left", "right", "bottom", "top"}
	faces := CubeFaces()
	if len(faces) != len(expNames) {
		t.Fatalf("expected %d faces; got %d", len(expNames), len(faces))
	}
	for i, face := range faces {
		if face.String() != expNames[i] {
			t.Fatalf("expected face %d to be %q; got %q", i, expNames[i], face.String())
		}
	}
}

func TestFaceFromName(t *testing.T) {
	for _, face := range CubeFaces() {
		parsed, err := FaceFromName(face.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != face {
			t.Fatalf("expected %v to round-trip; got %v", face, parsed)
		}
	}

	if _, err := FaceFromName("diagonal"); !errors.Is(err, ErrInvalidFaceName) {
		t.Fatalf("expected ErrInvalidFaceName; got %v", err)
	}
}

func TestWorldFromEyeMatrixOrthonormal(t *testing.T) {
	ident3 := types.Ident4().Mat3()

	for _, face := range CubeFaces() {
		m, err := WorldFromEyeMatrix(face)
		if err != nil {
			t.Fatal(err)
		}

		if tr := m.Translation(); tr != (types.Vec3{}) {
			t.Fatalf("expected zero translation for %v; got %v", face, tr)
		}

		lin := m.Mat3()
		product := lin.Mul3(lin.Transpose())
		for i := 0; i < 9; i++ {
			if math.Abs(product[i]-ident3[i]) > 1e-12 {
				t.Fatalf("expected R*R^T to be identity for %v; got %v", face, product)
			}
		}
	}
}

func TestWorldFromEyeMatrixExactValues(t *testing.T) {
	m, err := WorldFromEyeMatrix(FaceFront)
	if err != nil {
		t.Fatal(err)
	}
	if m != types.Ident4() {
		t.Fatalf("expected identity for the front face; got %v", m)
	}

	m, err = WorldFromEyeMatrix(FaceBack)
	if err != nil {
		t.Fatal(err)
	}
	expBack := types.Mat4{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	if m != expBack {
		t.Fatalf("expected X and Z negation for the back face; got %v", m)
	}

	// The left face maps eye +Z to world -X and preserves Y.
	m, err = WorldFromEyeMatrix(FaceLeft)
	if err != nil {
		t.Fatal(err)
	}
	if out := m.Mul4x1(types.XYZW(0, 0, 1, 0)); out != (types.Vec4{-1, 0, 0, 0}) {
		t.Fatalf("expected left face to map eye +Z to world -X; got %v", out)
	}
	if out := m.Mul4x1(types.XYZW(0, 1, 0, 0)); out != (types.Vec4{0, 1, 0, 0}) {
		t.Fatalf("expected left face to preserve Y; got %v", out)
	}
}

func TestWorldFromEyeMatrixRejectsUnknownFace(t *testing.T) {
	if _, err := WorldFromEyeMatrix(CubeFace(42)); !errors.Is(err, ErrInvalidFaceName) {
		t.Fatalf("expected ErrInvalidFaceName; got %v", err)
	}
}

func TestCubeFaceProjectionMatrixRejectsBadClipRanges(t *testing.T) {
	cases := []struct{ near, far float64 }{
		{0, 100},
		{-1, 100},
		{1, 1},
		{1, 0.5},
	}

	for _, c := range cases {
		_, err := CubeFaceProjectionMatrix(c.near, c.far)
		if !errors.Is(err, ErrInvalidClipRange) {
			t.Fatalf("expected ErrInvalidClipRange for near=%g far=%g; got %v", c.near, c.far, err)
		}
	}
}

func TestCubeFaceProjectionMatrixValues(t *testing.T) {
	near, far := 0.1, 100.0
	m, err := CubeFaceProjectionMatrix(near, far)
	if err != nil {
		t.Fatal(err)
	}

	// A symmetric 90 degree frustum scales X and Y by exactly 1.
	if m[0] != 1.0 || m[5] != 1.0 {
		t.Fatalf("expected unit X/Y scale for a 90 degree FOV; got %g and %g", m[0], m[5])
	}
	if m[2] != 0.0 || m[6] != 0.0 {
		t.Fatalf("expected zero frustum offsets; got %g and %g", m[2], m[6])
	}

	e := (near + far) / (near - far)
	f := (2.0 * near * far) / (near - far)
	if math.Abs(m[10]-e) > 1e-12 || math.Abs(m[11]-f) > 1e-12 {
		t.Fatalf("unexpected depth mapping row: got %g and %g", m[10], m[11])
	}

	if m[14] != -1.0 || m[15] != 0.0 {
		t.Fatalf("expected perspective W row [0 0 -1 0]; got %v", m)
	}
}
