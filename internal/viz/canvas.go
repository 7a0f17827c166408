// Package viz renders the pixel buffer as braille characters for
// terminal display.
package viz

import (
	"strings"

	"github.com/supermattydomain/AttractorCanvas/internal/raster"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var dotMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights a dot at (x, y) in sub-pixel coordinates. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(dotMap[y%4][x%2])
}

// Clear resets every cell to the empty braille char.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Blit downsamples the RGBA buffer onto the canvas: any lit buffer
// pixel lights the dot its position scales to.
func (c *Canvas) Blit(b *raster.Buffer) {
	c.Clear()

	subW := c.Width * 2
	subH := c.Height * 4
	if b.Width() == 0 || b.Height() == 0 {
		return
	}

	pix := b.Bytes()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			off := (row*b.Width() + col) * 4
			if pix[off] == 0 && pix[off+1] == 0 && pix[off+2] == 0 {
				continue
			}
			c.Set(col*subW/b.Width(), row*subH/b.Height())
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
