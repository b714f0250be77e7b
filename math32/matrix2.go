// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix2 is a 2D affine transformation matrix:
//
//	XX  XY  X0
//	YX  YY  Y0
//	0   0   1
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the 2D identity matrix.
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 0, Y0: 0}
}

// Identity3 returns the identity matrix, as represented by the
// underlying 3x3 homogeneous form of [Matrix2]. It behaves identically
// to [Identity2] under [Matrix2.MulVector2AsPoint] and exists for
// call sites that conceptually operate on the 3x3 form.
func Identity3() Matrix2 {
	return Identity2()
}

// Translate2D returns a matrix that translates by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a matrix that scales by (x, y).
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YX: 0, XY: 0, YY: y, X0: 0, Y0: 0}
}

// Rotate2D returns a matrix that rotates by angle radians.
func Rotate2D(angle float32) Matrix2 {
	sin, cos := Sincos(angle)
	return Matrix2{XX: cos, YX: sin, XY: -sin, YY: cos, X0: 0, Y0: 0}
}

// Mul returns the matrix product m.other, applying other first.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// Translate returns m composed with a translation by (x, y), applied
// before m (i.e. m.Translate(x,y) == m.Mul(Translate2D(x,y))).
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns m composed with a scale by (x, y), applied before m.
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns m composed with a rotation by angle radians, applied
// before m.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// MulVector2AsPoint transforms the point v by m.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y + m.X0,
		Y: m.YX*v.X + m.YY*v.Y + m.Y0,
	}
}

// MulVector2AsVector transforms the vector v by m, ignoring translation.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y,
		Y: m.YX*v.X + m.YY*v.Y,
	}
}

// Inverse returns the inverse of m.
func (m Matrix2) Inverse() Matrix2 {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return Identity2()
	}
	invDet := 1 / det
	xx := m.YY * invDet
	yx := -m.YX * invDet
	xy := -m.XY * invDet
	yy := m.XX * invDet
	return Matrix2{
		XX: xx, YX: yx, XY: xy, YY: yy,
		X0: -(xx*m.X0 + xy*m.Y0),
		Y0: -(yx*m.X0 + yy*m.Y0),
	}
}

// ExtractRot returns the rotation angle, in radians, encoded in m.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}

// ExtractScale returns the x and y scale factors encoded in m.
func (m Matrix2) ExtractScale() (x, y float32) {
	x = Hypot(m.XX, m.YX)
	y = Hypot(m.XY, m.YY)
	return
}

// String returns an SVG-style transform-list representation of m,
// or "none" for the identity matrix.
func (m Matrix2) String() string {
	if m == Identity2() {
		return "none"
	}
	if m.XX != 0 && m.YX == 0 && m.XY == 0 && m.YY != 0 {
		if m.XX == 1 && m.YY == 1 {
			return fmt.Sprintf("translate(%s,%s)", ftoa(m.X0), ftoa(m.Y0))
		}
		if m.X0 == 0 && m.Y0 == 0 {
			return fmt.Sprintf("scale(%s,%s)", ftoa(m.XX), ftoa(m.YY))
		}
		return fmt.Sprintf("translate(%s,%s) scale(%s,%s)", ftoa(m.X0), ftoa(m.Y0), ftoa(m.XX), ftoa(m.YY))
	}
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", ftoa(m.XX), ftoa(m.YX), ftoa(m.XY), ftoa(m.YY), ftoa(m.X0), ftoa(m.Y0))
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// SetString parses an SVG-style transform-list string ("none",
// "matrix(...)", "translate(...)", "scale(...)") into m.
func (m *Matrix2) SetString(str string) error {
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		*m = Identity2()
		return nil
	}
	open := strings.IndexByte(str, '(')
	close := strings.LastIndexByte(str, ')')
	if open < 0 || close < open {
		*m = Identity2()
		return fmt.Errorf("math32: invalid transform string %q", str)
	}
	name := strings.TrimSpace(str[:open])
	args := strings.Split(str[open+1:close], ",")
	nums := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
		if err != nil {
			*m = Identity2()
			return fmt.Errorf("math32: invalid transform argument %q: %w", a, err)
		}
		nums[i] = float32(f)
	}
	switch name {
	case "matrix":
		if len(nums) != 6 {
			*m = Identity2()
			return fmt.Errorf("math32: matrix() requires 6 arguments, got %d", len(nums))
		}
		*m = Matrix2{XX: nums[0], YX: nums[1], XY: nums[2], YY: nums[3], X0: nums[4], Y0: nums[5]}
	case "translate":
		if len(nums) != 2 {
			*m = Identity2()
			return fmt.Errorf("math32: translate() requires 2 arguments, got %d", len(nums))
		}
		*m = Translate2D(nums[0], nums[1])
	case "scale":
		if len(nums) != 2 {
			*m = Identity2()
			return fmt.Errorf("math32: scale() requires 2 arguments, got %d", len(nums))
		}
		*m = Scale2D(nums[0], nums[1])
	default:
		*m = Identity2()
		return fmt.Errorf("math32: unknown transform function %q", name)
	}
	return nil
}
