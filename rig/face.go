package rig

import (
	"fmt"

	"github.com/achilleasa/lumirig/types"
)

// CubeFace identifies one of the six cameras in a cube-map rig.
type CubeFace int

const (
	FaceFront CubeFace = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceBottom
	FaceTop
)

// The fixed face order used everywhere output ordering matters: manifest
// views, emitted host cameras and image file names all follow it.
var cubeFaces = [6]CubeFace{FaceFront, FaceBack, FaceLeft, FaceRight, FaceBottom, FaceTop}

// CubeFaces returns the six faces in manifest order.
func CubeFaces() []CubeFace {
	out := make([]CubeFace, len(cubeFaces))
	copy(out, cubeFaces[:])
	return out
}

func (f CubeFace) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	}
	return "unknown"
}

// FaceFromName maps a face name to its CubeFace value.
func FaceFromName(name string) (CubeFace, error) {
	for _, face := range cubeFaces {
		if face.String() == name {
			return face, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFaceName, name)
}

// WorldFromEyeMatrix returns the rotation that maps eye space to world
// space for a cube face. Eye space looks down -Z with Y up; the linear part
// is orthonormal and the translation column is zero.
func WorldFromEyeMatrix(face CubeFace) (types.Mat4, error) {
	switch face {
	case FaceFront:
		return types.Ident4(), nil
	case FaceBack:
		return types.Mat4{
			-1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, -1, 0,
			0, 0, 0, 1,
		}, nil
	case FaceLeft:
		return types.Mat4{
			0, 0, 1, 0,
			0, 1, 0, 0,
			-1, 0, 0, 0,
			0, 0, 0, 1,
		}, nil
	case FaceRight:
		return types.Mat4{
			0, 0, -1, 0,
			0, 1, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
		}, nil
	case FaceBottom:
		return types.Mat4{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, -1, 0, 0,
			0, 0, 0, 1,
		}, nil
	case FaceTop:
		return types.Mat4{
			1, 0, 0, 0,
			0, 0, -1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}, nil
	}
	return types.Mat4{}, fmt.Errorf("%w: face %d", ErrInvalidFaceName, int(face))
}

// CubeFaceProjectionMatrix builds the OpenGL-style clip-from-eye projection
// for a cube face: a symmetric 90 degree frustum with left=-near,
// right=near, bottom=-near, top=near.
func CubeFaceProjectionMatrix(near, far float64) (types.Mat4, error) {
	if near <= 0 || far <= near {
		return types.Mat4{}, fmt.Errorf("%w: near=%g far=%g", ErrInvalidClipRange, near, far)
	}

	left := -near
	right := near
	bottom := -near
	top := near
	a := (2.0 * near) / (right - left)
	b := (2.0 * near) / (top - bottom)
	c := (right + left) / (right - left)
	d := (top + bottom) / (top - bottom)
	e := (near + far) / (near - far)
	f := (2.0 * near * far) / (near - far)

	return types.Mat4{
		a, 0, c, 0,
		0, b, d, 0,
		0, 0, e, f,
		0, 0, -1, 0,
	}, nil
}
