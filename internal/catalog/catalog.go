// Package catalog holds the ordered registry of dynamical systems.
//
// Built-in systems are immutable; mutability is confined to a small
// fixed-size override table: one custom parameter set per system
// (always the last set in the list) and one custom iterate function
// for the last system. Replacing either never changes catalog size or
// ordering, and never affects a run already in progress — the engine
// snapshots the iterate function and parameters when a run starts.
package catalog

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/systems"
)

// CustomSetName labels the mutable parameter set appended per system.
const CustomSetName = "custom"

type override struct {
	params  attractor.Parameters
	iterate attractor.IterateFunc // non-nil only for the last system
}

type Catalog struct {
	builtins  []attractor.System
	overrides []override
}

// New builds a catalog over the built-in systems. Each system's custom
// parameter slot starts as a copy of its first built-in set.
func New() *Catalog {
	return FromSystems(systems.Builtins())
}

// FromSystems builds a catalog over an explicit system list; the last
// entry is the replaceable custom system.
func FromSystems(all []attractor.System) *Catalog {
	c := &Catalog{
		builtins:  all,
		overrides: make([]override, len(all)),
	}
	for i, s := range all {
		c.overrides[i].params = s.ParamSets[0].Values.Clone()
	}
	return c
}

func (c *Catalog) Len() int { return len(c.builtins) }

// System returns the system at i, with its custom iterate override
// applied and the custom parameter set appended.
func (c *Catalog) System(i int) (attractor.System, error) {
	if i < 0 || i >= len(c.builtins) {
		return attractor.System{}, attractor.ErrIndexRange
	}
	s := c.builtins[i]
	s.Iterate = c.iterate(i)
	s.ParamSets = c.paramSets(i)
	return s, nil
}

// Names returns the system names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.builtins))
	for i, s := range c.builtins {
		names[i] = s.Name
	}
	return names
}

// IndexOf returns the index of the named system, or -1.
func (c *Catalog) IndexOf(name string) int {
	for i, s := range c.builtins {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// ParamSets returns system i's ordered parameter sets: the immutable
// built-ins followed by the mutable custom set.
func (c *Catalog) ParamSets(i int) ([]attractor.ParameterSet, error) {
	if i < 0 || i >= len(c.builtins) {
		return nil, attractor.ErrIndexRange
	}
	return c.paramSets(i), nil
}

func (c *Catalog) paramSets(i int) []attractor.ParameterSet {
	builtin := c.builtins[i].ParamSets
	sets := make([]attractor.ParameterSet, 0, len(builtin)+1)
	sets = append(sets, builtin...)
	sets = append(sets, attractor.ParameterSet{
		Name:   CustomSetName,
		Values: c.overrides[i].params,
	})
	return sets
}

// Params returns parameter set j of system i.
func (c *Catalog) Params(i, j int) (attractor.Parameters, error) {
	sets, err := c.ParamSets(i)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= len(sets) {
		return nil, attractor.ErrIndexRange
	}
	return sets[j].Values, nil
}

// Iterate returns system i's active iterate function.
func (c *Catalog) Iterate(i int) (attractor.IterateFunc, error) {
	if i < 0 || i >= len(c.builtins) {
		return nil, attractor.ErrIndexRange
	}
	return c.iterate(i), nil
}

func (c *Catalog) iterate(i int) attractor.IterateFunc {
	if fn := c.overrides[i].iterate; fn != nil {
		return fn
	}
	return c.builtins[i].Iterate
}

// SetCustomParams replaces system i's custom parameter set. Takes
// effect on the next run.
func (c *Catalog) SetCustomParams(i int, p attractor.Parameters) error {
	if i < 0 || i >= len(c.builtins) {
		return attractor.ErrIndexRange
	}
	c.overrides[i].params = p.Clone()
	return nil
}

// SetCustomIterate replaces the iterate function of the final system.
// Only the last catalog entry is user-replaceable.
func (c *Catalog) SetCustomIterate(i int, fn attractor.IterateFunc) error {
	if i < 0 || i >= len(c.builtins) {
		return attractor.ErrIndexRange
	}
	if i != len(c.builtins)-1 {
		return attractor.ErrNotCustom
	}
	c.overrides[i].iterate = fn
	return nil
}
