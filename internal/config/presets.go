package config

// Presets are ready-made views worth looking at.
var Presets = map[string]*Config{
	"dejong-swirl": {
		System: "dejong", ParamSet: "swirl",
		Zoom: 100, Width: 400, Height: 400, Budget: 200000, Colour: "hue",
	},
	"dejong-rings": {
		System: "dejong", ParamSet: "rings",
		Zoom: 90, Width: 400, Height: 400, Budget: 200000, Colour: "periodic",
	},
	"clifford-wings": {
		System: "clifford", ParamSet: "wings",
		Zoom: 80, Width: 400, Height: 400, Budget: 150000, Colour: "hue",
	},
	"tinkerbell-classic": {
		System: "tinkerbell", ParamSet: "classic",
		CentreX: -0.3, CentreY: -0.5,
		Zoom:    220, Width: 400, Height: 400, Budget: 300000, Colour: "periodic",
	},
	"henon-classic": {
		System: "henon", ParamSet: "classic",
		Zoom: 140, Width: 400, Height: 400, Budget: 100000, Colour: "white",
	},
	"mira-lace": {
		System: "mira", ParamSet: "lace",
		Zoom: 12, Width: 400, Height: 400, Budget: 250000, Colour: "hue",
	},
}
