package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/supermattydomain/AttractorCanvas/internal/catalog"
	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/engine"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

const (
	DefaultSystem = "dejong"
	DefaultColour = "hue"
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultBudget = 100000
)

// Config selects a system, viewport and budget for a run. Zero values
// mean "use the default" where one exists.
type Config struct {
	System   string             `yaml:"system,omitempty"`
	ParamSet string             `yaml:"param_set,omitempty"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	CentreX  float64            `yaml:"centre_x,omitempty"`
	CentreY  float64            `yaml:"centre_y,omitempty"`
	Zoom     float64            `yaml:"zoom,omitempty"`
	Width    int                `yaml:"width,omitempty"`
	Height   int                `yaml:"height,omitempty"`
	Budget   int                `yaml:"budget,omitempty"`
	Colour   string             `yaml:"colour,omitempty"`
	Slice    int                `yaml:"slice,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		System: DefaultSystem,
		Colour: DefaultColour,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Budget: DefaultBudget,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply configures e for its next run.
func (cfg *Config) Apply(e *engine.Engine) error {
	cat := e.Catalog()

	if cfg.System != "" {
		idx := cat.IndexOf(cfg.System)
		if idx < 0 {
			return fmt.Errorf("config: unknown system %q", cfg.System)
		}
		if err := e.SelectSystem(idx); err != nil {
			return err
		}
	}

	if cfg.ParamSet != "" {
		sets, err := cat.ParamSets(e.SystemIndex())
		if err != nil {
			return err
		}
		found := -1
		for j, s := range sets {
			if s.Name == cfg.ParamSet {
				found = j
				break
			}
		}
		if found < 0 {
			return fmt.Errorf("config: unknown parameter set %q", cfg.ParamSet)
		}
		if err := e.SelectParamSet(found); err != nil {
			return err
		}
	}

	if len(cfg.Params) > 0 {
		if err := e.SetCustomParams(cfg.Params); err != nil {
			return err
		}
	}

	zoom := e.Zoom()
	if cfg.Zoom > 0 {
		zoom = cfg.Zoom
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	e.SetViewport(plane.Point{X: cfg.CentreX, Y: cfg.CentreY}, zoom, w, h)

	if cfg.Budget > 0 {
		e.SetIterationBudget(cfg.Budget)
	}
	if cfg.Slice > 0 {
		e.SetSliceSize(cfg.Slice)
	}
	if cfg.Colour != "" {
		m, err := colormap.ByName(cfg.Colour)
		if err != nil {
			return err
		}
		e.SetColorMapper(m)
	}
	return nil
}

// NewEngine builds a fresh engine over the built-in catalog,
// configured from cfg.
func (cfg *Config) NewEngine() (*engine.Engine, error) {
	e := engine.New(catalog.New())
	if err := cfg.Apply(e); err != nil {
		return nil, err
	}
	return e, nil
}
