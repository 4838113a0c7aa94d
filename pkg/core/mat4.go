package core

import "math"

// Mat4 is a row-major 4x4 matrix used for affine object-to-world transforms.
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * other.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// MulPoint transforms a point (w=1), applying the translation part
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3],
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3],
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3],
	}
}

// MulDirection transforms a direction (w=0), ignoring translation
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.M[i][j] = m.M[j][i]
		}
	}
	return out
}

// TranslateMatrix returns a translation matrix
func TranslateMatrix(t Vec3) Mat4 {
	out := Identity()
	out.M[0][3] = t.X
	out.M[1][3] = t.Y
	out.M[2][3] = t.Z
	return out
}

// ScaleMatrix returns a scale matrix
func ScaleMatrix(s Vec3) Mat4 {
	out := Identity()
	out.M[0][0] = s.X
	out.M[1][1] = s.Y
	out.M[2][2] = s.Z
	return out
}

// RotateXMatrix returns a rotation matrix about the X axis (radians)
func RotateXMatrix(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	out := Identity()
	out.M[1][1], out.M[1][2] = c, -s
	out.M[2][1], out.M[2][2] = s, c
	return out
}

// RotateYMatrix returns a rotation matrix about the Y axis (radians)
func RotateYMatrix(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	out := Identity()
	out.M[0][0], out.M[0][2] = c, s
	out.M[2][0], out.M[2][2] = -s, c
	return out
}

// RotateZMatrix returns a rotation matrix about the Z axis (radians)
func RotateZMatrix(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	out := Identity()
	out.M[0][0], out.M[0][1] = c, -s
	out.M[1][0], out.M[1][1] = s, c
	return out
}

// Transform bundles an object-to-world matrix with its inverse and
// inverse-transpose. The three are always built together from the same
// translate/rotate/scale components so they cannot drift apart.
type Transform struct {
	Matrix       Mat4 // local to world
	Inverse      Mat4 // world to local
	InvTranspose Mat4 // normal transformation
}

// degenerateScale is the threshold below which a scale axis is treated
// as singular. The inverse for such an axis is zeroed, which collapses
// transformed rays onto a plane and makes intersection tests miss
// rather than produce Inf/NaN.
const degenerateScale = 1e-12

// NewTransform builds a Transform from translation, rotation (degrees,
// applied X then Y then Z) and scale components.
func NewTransform(translate, rotateDeg, scale Vec3) Transform {
	rx := rotateDeg.X * math.Pi / 180
	ry := rotateDeg.Y * math.Pi / 180
	rz := rotateDeg.Z * math.Pi / 180

	rotation := RotateXMatrix(rx).Mul(RotateYMatrix(ry)).Mul(RotateZMatrix(rz))
	forward := TranslateMatrix(translate).Mul(rotation).Mul(ScaleMatrix(scale))

	// Inverse composed from component inverses: S⁻¹ · Rᵀ · T⁻¹
	invScale := ScaleMatrix(Vec3{
		X: safeInvert(scale.X),
		Y: safeInvert(scale.Y),
		Z: safeInvert(scale.Z),
	})
	inverse := invScale.Mul(rotation.Transpose()).Mul(TranslateMatrix(translate.Negate()))

	return Transform{
		Matrix:       forward,
		Inverse:      inverse,
		InvTranspose: inverse.Transpose(),
	}
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	return Transform{
		Matrix:       Identity(),
		Inverse:      Identity(),
		InvTranspose: Identity(),
	}
}

func safeInvert(s float64) float64 {
	if math.Abs(s) < degenerateScale {
		return 0
	}
	return 1 / s
}
