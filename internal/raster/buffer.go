// Package raster provides the RGBA pixel buffer the engine plots into
// and the Surface interface it is flushed through at slice boundaries.
package raster

import "github.com/supermattydomain/AttractorCanvas/internal/colormap"

// Buffer is a dense RGBA grid, row-major, origin top-left.
type Buffer struct {
	w, h int
	pix  []byte
}

func New(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Bytes exposes the raw RGBA data, length w*h*4. The slice is reused
// across runs; copy it to retain a snapshot.
func (b *Buffer) Bytes() []byte { return b.pix }

// Resize reallocates the grid. No-op when dimensions are unchanged.
func (b *Buffer) Resize(w, h int) {
	if w == b.w && h == b.h && b.pix != nil {
		return
	}
	b.w, b.h = w, h
	b.pix = make([]byte, w*h*4)
	b.Clear()
}

// Clear paints the whole grid opaque black.
func (b *Buffer) Clear() {
	for i := range b.pix {
		if i%4 == 3 {
			b.pix[i] = 0xff
		} else {
			b.pix[i] = 0
		}
	}
}

// Set writes one opaque pixel. Callers must have bounds-checked
// (col, row) already; the engine's visibility test guarantees this.
func (b *Buffer) Set(col, row int, c colormap.RGB) {
	off := row*b.w*4 + col*4
	b.pix[off] = c.R
	b.pix[off+1] = c.G
	b.pix[off+2] = c.B
	b.pix[off+3] = 0xff
}

// At reads back the pixel at (col, row).
func (b *Buffer) At(col, row int) colormap.RGB {
	off := row*b.w*4 + col*4
	return colormap.RGB{R: b.pix[off], G: b.pix[off+1], B: b.pix[off+2]}
}

// Lit counts pixels that differ from the cleared background.
func (b *Buffer) Lit() int {
	n := 0
	for i := 0; i < len(b.pix); i += 4 {
		if b.pix[i] != 0 || b.pix[i+1] != 0 || b.pix[i+2] != 0 {
			n++
		}
	}
	return n
}

// Surface receives the buffer contents at slice boundaries. The display
// side decides how to present it; the engine never blocks on it.
type Surface interface {
	Flush(b *Buffer)
}
