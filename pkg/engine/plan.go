package engine

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
	"github.com/karvel/fenestra/pkg/window"
)

// ComponentKind identifies what a plan component builds.
type ComponentKind string

const (
	ComponentWindow ComponentKind = "window"
	ComponentSill   ComponentKind = "sill"
)

// Component is one buildable item produced by a script.
type Component struct {
	Kind   ComponentKind
	Name   string
	Window window.Params
	Sill   window.SillParams
}

// Plan is the ordered list of components a script declared.
// Evaluation collects components; building them against a kernel is a
// separate step so scripts can be checked without geometry work.
type Plan struct {
	Components []Component
}

// New returns an empty plan.
func New() *Plan {
	return &Plan{}
}

// add appends a component, assigning a positional name when the script
// did not provide one.
func (p *Plan) add(c Component) {
	if c.Name == "" {
		c.Name = fmt.Sprintf("%s-%d", c.Kind, len(p.Components)+1)
	}
	p.Components = append(p.Components, c)
}

// Build realizes every component against the kernel. Part names are
// prefixed with the component name so multi-component scripts produce
// distinguishable parts.
func (p *Plan) Build(k kernel.Kernel, cfg window.Config) ([]window.Part, error) {
	var parts []window.Part
	for _, c := range p.Components {
		switch c.Kind {
		case ComponentWindow:
			asm, err := window.BuildWindow(k, cfg, c.Window)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", c.Name, err)
			}
			for _, part := range asm.Parts {
				parts = append(parts, window.Part{
					Name:  c.Name + "/" + part.Name,
					Solid: part.Solid,
				})
			}
		case ComponentSill:
			s, err := window.BuildSill(k, c.Sill)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", c.Name, err)
			}
			parts = append(parts, window.Part{Name: c.Name, Solid: s})
		default:
			return nil, fmt.Errorf("component %q: unknown kind %q", c.Name, c.Kind)
		}
	}
	return parts, nil
}
