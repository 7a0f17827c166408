// Package colormap turns plotted samples into pixel colours.
//
// A Mapper is a pure function of the iteration index, the target pixel,
// and the previous point's x-coordinate. Strategies are interchangeable
// at run start; the engine holds whichever one was active when the run
// began.
package colormap

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type RGB struct {
	R, G, B uint8
}

type Mapper interface {
	Map(iter, row, col int, prevX float64) RGB
}

// Constant paints every sample the same colour.
type Constant struct {
	C RGB
}

func (c Constant) Map(int, int, int, float64) RGB { return c.C }

// Parity alternates between two colours by iteration parity.
type Parity struct {
	Even, Odd RGB
}

func (p Parity) Map(iter, _, _ int, _ float64) RGB {
	if iter%2 == 0 {
		return p.Even
	}
	return p.Odd
}

// Periodic cycles each channel sinusoidally over the iteration index.
// Period is the iteration count of one full cycle.
type Periodic struct {
	Period int
}

func (p Periodic) Map(iter, _, _ int, _ float64) RGB {
	period := p.Period
	if period <= 0 {
		period = 512
	}
	phase := 2 * math.Pi * float64(iter%period) / float64(period)
	return RGB{
		R: channel(phase),
		G: channel(phase + 2*math.Pi/3),
		B: channel(phase + 4*math.Pi/3),
	}
}

func channel(phase float64) uint8 {
	return uint8(math.Round(127.5 + 127.5*math.Sin(phase)))
}

// HueX derives the hue from the previous point's x-coordinate. Scale
// stretches plane units over the hue circle.
type HueX struct {
	Scale float64
}

func (h HueX) Map(_, _, _ int, prevX float64) RGB {
	scale := h.Scale
	if scale == 0 {
		scale = 90
	}
	hue := math.Mod(prevX*scale, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return RGB{R: r, G: g, B: b}
}

// ByName looks up a strategy for CLI and config use.
func ByName(name string) (Mapper, error) {
	switch name {
	case "white", "constant":
		return Constant{C: RGB{255, 255, 255}}, nil
	case "parity":
		return Parity{Even: RGB{255, 196, 64}, Odd: RGB{64, 160, 255}}, nil
	case "periodic":
		return Periodic{Period: 512}, nil
	case "hue":
		return HueX{Scale: 90}, nil
	}
	return nil, fmt.Errorf("colormap: unknown mode %q", name)
}

// Names lists the strategies ByName accepts, in display order.
func Names() []string {
	return []string{"hue", "periodic", "parity", "white"}
}
