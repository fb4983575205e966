package rig

import (
	"sort"

	"github.com/achilleasa/lumirig/types"
)

// GenerateCameraPositions computes count camera positions inside the
// headbox as a 3D Hammersley point set. The raw samples are rescaled so
// their bounding box becomes exactly the unit cube, mapped into the
// headbox, and sorted by ascending distance to the headbox center. The
// nearest position is then replaced by the exact center so every rig
// contains a reference viewpoint. Positions with equal center distance
// keep their Hammersley generation order.
//
// The function is a pure computation: the same inputs produce the same
// sequence every time.
func GenerateCameraPositions(headbox types.Box, count int) ([]types.Vec3, error) {
	if count <= 0 {
		return nil, ErrInvalidCameraCount
	}

	center := headbox.Center()
	if count == 1 {
		// A single camera always sits at the headbox center.
		return []types.Vec3{center}, nil
	}

	samples := make([]types.Vec3, count)
	var maxSample types.Vec3
	for i := 0; i < count; i++ {
		samples[i] = HammersleySample(i, count)
		maxSample = types.MaxVec3(maxSample, samples[i])
	}

	positions := make([]types.Vec3, count)
	for i, sample := range samples {
		// Normalize so the sample bounding box is the unit cube. The
		// clamp keeps components at or below 1.0 under float rounding.
		for dim := 0; dim < 3; dim++ {
			sample[dim] /= maxSample[dim]
			if sample[dim] > 1.0 {
				sample[dim] = 1.0
			}
		}
		positions[i] = headbox.PointAt(sample)
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Dist(center) < positions[j].Dist(center)
	})
	positions[0] = center

	return positions, nil
}
