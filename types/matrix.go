package types

import "golang.org/x/image/math/f64"

// Mat4 is a 4x4 matrix stored in row-major order: element (row, col) lives
// at index 4*row + col. Row-major is also the manifest wire order, so a
// matrix serializes without reshuffling.
type Mat4 f64.Mat4

type Mat3 f64.Mat3

// Create an identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Extract the top-left 3x3 matrix from a 4x4 matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Multiply with another 4x4 matrix.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*row+k] * m2[4*k+col]
			}
			out[4*row+col] = sum
		}
	}
	return out
}

// Multiply with a 4 component column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	var out Vec4
	for row := 0; row < 4; row++ {
		out[row] = m[4*row]*v[0] + m[4*row+1]*v[1] + m[4*row+2]*v[2] + m[4*row+3]*v[3]
	}
	return out
}

// Transpose the matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[4*col+row] = m[4*row+col]
		}
	}
	return out
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// WithTranslation returns a copy of the matrix with its translation column
// replaced by v. The linear part is left untouched.
func (m Mat4) WithTranslation(v Vec3) Mat4 {
	out := m
	out[3] = v[0]
	out[7] = v[1]
	out[11] = v[2]
	return out
}

// Multiply with another 3x3 matrix.
func (m Mat3) Mul3(m2 Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[3*row+k] * m2[3*k+col]
			}
			out[3*row+col] = sum
		}
	}
	return out
}

// Transpose the matrix.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[3*col+row] = m[3*row+col]
		}
	}
	return out
}
