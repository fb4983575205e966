package rig

import (
	"fmt"
	"strings"

	"github.com/achilleasa/lumirig/types"
)

// The manifest mirrors the JSON consumed by the downstream reconstruction
// pipeline. Matrices serialize as flat 16-element row-major arrays.

type ProjectiveCamera struct {
	ImageWidth         int        `json:"image_width"`
	ImageHeight        int        `json:"image_height"`
	ClipFromEyeMatrix  types.Mat4 `json:"clip_from_eye_matrix"`
	WorldFromEyeMatrix types.Mat4 `json:"world_from_eye_matrix"`
	DepthType          string     `json:"depth_type"`
}

type ColorImageFile struct {
	Path         string `json:"path"`
	Channel0     string `json:"channel_0"`
	Channel1     string `json:"channel_1"`
	Channel2     string `json:"channel_2"`
	ChannelAlpha string `json:"channel_alpha"`
}

type DepthImageFile struct {
	Path     string `json:"path"`
	Channel0 string `json:"channel_0"`
}

type ImageFiles struct {
	Color ColorImageFile `json:"color"`
	Depth DepthImageFile `json:"depth"`
}

// View describes a single camera: its projection, pose and the image files
// a renderer is expected to produce for it.
type View struct {
	ProjectiveCamera ProjectiveCamera `json:"projective_camera"`
	DepthImageFile   ImageFiles       `json:"depth_image_file"`
}

// ViewGroup holds the six cube-face views sharing one camera position.
type ViewGroup struct {
	Views []View `json:"views"`
}

type Manifest struct {
	ViewGroups []ViewGroup `json:"view_groups"`
}

// formatImagePath substitutes the face name and view group index into a
// caller-supplied pattern such as "%s_color.%04d.exr". Go's fmt reports a
// verb/argument mismatch in-band with a "%!" marker instead of an error,
// so the formatted path is scanned for the marker.
func formatImagePath(pattern string, face CubeFace, groupIndex int) (string, error) {
	path := fmt.Sprintf(pattern, face.String(), groupIndex)
	if strings.Contains(path, "%!") {
		return "", fmt.Errorf("%w: %q", ErrBadPathPattern, pattern)
	}
	return path, nil
}

// BuildViewGroups assembles the manifest for the given camera positions.
// The outer order follows the position sequence and the inner order the
// fixed cube-face order; image file names embed the view group index, so
// both orders are significant. The rotation matrix of each view carries
// the camera position relative to the headbox center in its translation
// column. depthType is forwarded verbatim into every view.
func BuildViewGroups(headboxCenter types.Vec3, positions []types.Vec3, imageSize int,
	nearClip, farClip float64, depthType, depthChannelName,
	colorPathPattern, depthPathPattern string) (*Manifest, error) {

	clipFromEye, err := CubeFaceProjectionMatrix(nearClip, farClip)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{ViewGroups: make([]ViewGroup, 0, len(positions))}
	for groupIndex, absolute := range positions {
		offset := absolute.Sub(headboxCenter)

		views := make([]View, 0, len(cubeFaces))
		for _, face := range cubeFaces {
			worldFromEye, err := WorldFromEyeMatrix(face)
			if err != nil {
				return nil, err
			}
			worldFromEye = worldFromEye.WithTranslation(offset)

			colorPath, err := formatImagePath(colorPathPattern, face, groupIndex)
			if err != nil {
				return nil, err
			}
			depthPath, err := formatImagePath(depthPathPattern, face, groupIndex)
			if err != nil {
				return nil, err
			}

			views = append(views, View{
				ProjectiveCamera: ProjectiveCamera{
					ImageWidth:         imageSize,
					ImageHeight:        imageSize,
					ClipFromEyeMatrix:  clipFromEye,
					WorldFromEyeMatrix: worldFromEye,
					DepthType:          depthType,
				},
				DepthImageFile: ImageFiles{
					Color: ColorImageFile{
						Path:         colorPath,
						Channel0:     "R",
						Channel1:     "G",
						Channel2:     "B",
						ChannelAlpha: "A",
					},
					Depth: DepthImageFile{
						Path:     depthPath,
						Channel0: depthChannelName,
					},
				},
			})
		}

		manifest.ViewGroups = append(manifest.ViewGroups, ViewGroup{Views: views})
	}

	return manifest, nil
}
