package types

// Box is an axis-aligned box in world space defined by its two extreme
// corners. A valid box satisfies Min[i] <= Max[i] on every axis.
type Box struct {
	Min Vec3
	Max Vec3
}

// Returns true if Min does not exceed Max on any axis.
func (b Box) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// PointAt maps a relative coordinate into the box: each axis is
// interpolated independently as Min + t*(Max-Min). The coordinate is not
// clamped to [0,1]; callers that need containment must clamp themselves.
func (b Box) PointAt(t Vec3) Vec3 {
	return b.Min.Add(b.Max.Sub(b.Min).MulVec(t))
}

// Center of the box.
func (b Box) Center() Vec3 {
	return b.PointAt(Vec3{0.5, 0.5, 0.5})
}
