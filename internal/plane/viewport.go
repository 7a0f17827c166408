// Package plane maps between the infinite logical plane and a finite
// pixel grid. A Viewport is a pure description of that affine mapping:
// centre, zoom (pixels per plane unit) and the grid dimensions. The Y
// axis is inverted relative to the plane, matching the top-left origin
// of the display surface.
package plane

import "math"

type Viewport struct {
	Centre Point
	Zoom   float64
	Width  int
	Height int
}

// ColToX converts a pixel column to the plane x at the pixel's centre.
func (v Viewport) ColToX(col int) float64 {
	return (float64(col)+0.5-float64(v.Width)/2)/v.Zoom + v.Centre.X
}

// RowToY converts a pixel row to the plane y at the pixel's centre.
func (v Viewport) RowToY(row int) float64 {
	return (float64(row)-0.5-float64(v.Height)/2)/-v.Zoom + v.Centre.Y
}

// XToCol converts a plane x to the nearest pixel column. Inverse of
// ColToX up to the half-pixel centre convention.
func (v Viewport) XToCol(x float64) int {
	return int(math.Round((x-v.Centre.X)*v.Zoom + float64(v.Width)/2 - 0.5))
}

// YToRow converts a plane y to the nearest pixel row.
func (v Viewport) YToRow(y float64) int {
	return int(math.Round((y-v.Centre.Y)*-v.Zoom + float64(v.Height)/2 + 0.5))
}

// Contains reports whether p maps to an in-range pixel.
func (v Viewport) Contains(p Point) bool {
	col := v.XToCol(p.X)
	row := v.YToRow(p.Y)
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}
