package viz

import (
	"strings"
	"testing"

	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/raster"
)

func TestSetAndClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("dot not set")
	}
	c.Set(-1, 2) // ignored
	c.Set(99, 2) // ignored

	c.Clear()
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("clear left dots behind")
			}
		}
	}
}

func TestSubPixelPacking(t *testing.T) {
	c := NewCanvas(1, 1)
	// all eight dots of one cell
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y)
		}
	}
	if c.Grid[0][0] != 0x28ff {
		t.Errorf("full cell = %#x, want 0x28ff", c.Grid[0][0])
	}
}

func TestBlit(t *testing.T) {
	b := raster.New(8, 8)
	b.Set(0, 0, colormap.RGB{R: 255})
	b.Set(7, 7, colormap.RGB{B: 255})

	c := NewCanvas(4, 2)
	c.Blit(b)

	if c.Grid[0][0] == 0x2800 {
		t.Error("top-left pixel not blitted")
	}
	if c.Grid[1][3] == 0x2800 {
		t.Error("bottom-right pixel not blitted")
	}
	if !strings.Contains(c.String(), "\n") {
		t.Error("String should be multi-line")
	}
}
