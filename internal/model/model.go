package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GiftShape is the solid being wrapped.
type GiftShape int

const (
	ShapeCube     GiftShape = iota // One edge length
	ShapeCuboid                    // Width, height, depth
	ShapeCylinder                  // Radius, height
)

func (s GiftShape) String() string {
	switch s {
	case ShapeCuboid:
		return "Cuboid"
	case ShapeCylinder:
		return "Cylinder"
	default:
		return "Cube"
	}
}

// DimensionCount returns how many of a gift's lengths the shape uses.
func (s GiftShape) DimensionCount() int {
	switch s {
	case ShapeCuboid:
		return 3
	case ShapeCylinder:
		return 2
	default:
		return 1
	}
}

// DimensionNames returns the display name of each length the shape uses.
func (s GiftShape) DimensionNames() []string {
	switch s {
	case ShapeCuboid:
		return []string{"Width", "Height", "Depth"}
	case ShapeCylinder:
		return []string{"Radius", "Height"}
	default:
		return []string{"Edge"}
	}
}

// GiftShapes lists every supported shape in selection order.
func GiftShapes() []GiftShape {
	return []GiftShape{ShapeCube, ShapeCuboid, ShapeCylinder}
}

// ParseGiftShape accepts a shape name (any case) or its selection index.
func ParseGiftShape(s string) (GiftShape, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i >= 0 && i < len(GiftShapes()) {
			return GiftShape(i), nil
		}
		return ShapeCube, fmt.Errorf("unknown gift shape %q", s)
	}
	for _, shape := range GiftShapes() {
		if strings.EqualFold(shape.String(), s) {
			return shape, nil
		}
	}
	return ShapeCube, fmt.Errorf("unknown gift shape %q", s)
}

// Gift describes the parcel being wrapped. Lengths are in cm; which of
// X, Y and Z are meaningful depends on Shape.
type Gift struct {
	Shape GiftShape `json:"shape"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Z     float64   `json:"z"`
}

// NewGift returns the default gift: a 1cm cube.
func NewGift() Gift {
	return Gift{Shape: ShapeCube, X: 1, Y: 1, Z: 1}
}

// SetShape changes the shape without touching any stored length.
func (g *Gift) SetShape(s GiftShape) {
	g.Shape = s
}

// SetDimension sets length i (0=X, 1=Y, 2=Z).
func (g *Gift) SetDimension(i int, v float64) error {
	switch i {
	case 0:
		g.X = v
	case 1:
		g.Y = v
	case 2:
		g.Z = v
	default:
		return fmt.Errorf("dimension index %d out of range", i)
	}
	return nil
}

// Dimension returns length i (0=X, 1=Y, 2=Z).
func (g Gift) Dimension(i int) (float64, error) {
	switch i {
	case 0:
		return g.X, nil
	case 1:
		return g.Y, nil
	case 2:
		return g.Z, nil
	}
	return 0, fmt.Errorf("dimension index %d out of range", i)
}

// Dimensions is the result of reading a gift's lengths for its shape.
// Valid is false when any required length is not a finite number.
type Dimensions struct {
	Values []float64
	Valid  bool
}

// Dimensions returns the lengths required by the gift's shape, in order.
func (g Gift) Dimensions() Dimensions {
	all := [3]float64{g.X, g.Y, g.Z}
	values := make([]float64, g.Shape.DimensionCount())
	copy(values, all[:])

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Dimensions{Values: values, Valid: false}
		}
	}
	return Dimensions{Values: values, Valid: true}
}

// Point2D represents a 2D coordinate.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = o[0], o[0]
	for _, p := range o[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Translate returns a copy of the outline shifted by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}
