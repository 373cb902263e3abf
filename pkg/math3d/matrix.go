package math3d

import "math"

// Matrix4 is a 4x4 row-major matrix of homogeneous transform
// coefficients. m[row][col] addresses a single coefficient.
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m*n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row][k] * n[k][col]
			}
			out[row][col] = sum
		}
	}
	return out
}

// MulPoint transforms a Point (implicit w=1); the result is a Point.
func (m Matrix4) MulPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MulVector transforms a Vector (implicit w=0); the result is a Vector,
// so the translation column never contributes.
func (m Matrix4) MulVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// Equal reports whether m and n agree in every coefficient within Epsilon.
func (m Matrix4) Equal(n Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m[row][col], n[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix4) rows() [][]float64 {
	out := make([][]float64, 4)
	for i := range out {
		out[i] = append([]float64(nil), m[i][:]...)
	}
	return out
}

// Determinant returns the determinant of m, computed by cofactor
// expansion along the first row.
func (m Matrix4) Determinant() float64 {
	return determinant(m.rows())
}

// Invertible reports whether m has a non-zero determinant.
func (m Matrix4) Invertible() bool {
	return !FloatEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m, computed by cofactor expansion.
// Constructing an Object with a singular transform is a programming
// error in normal use (transforms are products of invertible
// primitives); Inverse panics rather than returning a nonsense matrix.
func (m Matrix4) Inverse() Matrix4 {
	rows := m.rows()
	det := determinant(rows)
	if det == 0 {
		panic("math3d: matrix is not invertible")
	}
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			c := cofactor(rows, row, col)
			// transposed: cofactor(row,col) lands at (col,row)
			out[col][row] = c / det
		}
	}
	return out
}

// determinant computes the determinant of a square matrix of any size
// via Laplace (cofactor) expansion along the first row.
func determinant(m [][]float64) float64 {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	var sum float64
	for col := 0; col < n; col++ {
		sum += m[0][col] * cofactor(m, 0, col)
	}
	return sum
}

// submatrix returns m with rowSub and colSub removed.
func submatrix(m [][]float64, rowSub, colSub int) [][]float64 {
	n := len(m)
	out := make([][]float64, 0, n-1)
	for row := 0; row < n; row++ {
		if row == rowSub {
			continue
		}
		line := make([]float64, 0, n-1)
		for col := 0; col < n; col++ {
			if col == colSub {
				continue
			}
			line = append(line, m[row][col])
		}
		out = append(out, line)
	}
	return out
}

func minor(m [][]float64, row, col int) float64 {
	return determinant(submatrix(m, row, col))
}

func cofactor(m [][]float64, row, col int) float64 {
	mi := minor(m, row, col)
	if (row+col)%2 != 0 {
		return -mi
	}
	return mi
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scale returns a scaling matrix.
func Scale(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateX returns a rotation matrix about the X axis (radians).
func RotateX(r float64) Matrix4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotateY returns a rotation matrix about the Y axis (radians).
func RotateY(r float64) Matrix4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotateZ returns a rotation matrix about the Z axis (radians).
func RotateZ(r float64) Matrix4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Shear returns a shearing matrix; each parameter moves one
// coordinate in proportion to another.
func Shear(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := Identity4()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// View constructs the world-to-camera transform for a camera located
// at from, looking toward to, with the given up direction.
func View(from, to Point, up Vector) Matrix4 {
	forward := to.Sub(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Mul(Translate(-from.X, -from.Y, -from.Z))
}
