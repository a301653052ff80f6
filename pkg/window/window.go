package window

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
)

// Part is one named solid of a built assembly.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Assembly is the result of a window build: the named parts in composition
// order and the compound solid grouping them all.
type Assembly struct {
	// Solid is the compound of every part, in order: fixed frame first,
	// then one sash and one glass panel per bay, left to right.
	Solid kernel.Solid

	// Parts lists the same solids individually by name.
	Parts []Part

	// LightFactor is the glazed fraction of the opening width that the
	// build was validated against.
	LightFactor float64
}

// BuildWindow builds a complete window assembly from a dimension set:
// an outer fixed frame filling the opening, and per bay an inner sash
// frame plus a recessed glass panel.
//
// All validation happens before any kernel call. The build aborts with
// a LightFactorError when frame material would consume more than the
// configured share of the opening width, and with a PaneCountError for
// pane counts outside the supported 1..9 range (0, the fixed-light
// variant, is reserved and not implemented). A failed build returns no
// geometry, never a partial assembly.
func BuildWindow(k kernel.Kernel, cfg Config, p Params) (*Assembly, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch {
	case p.Panes == 0:
		return nil, &PaneCountError{Count: 0, Reason: "fixed light is not implemented"}
	case p.Panes < 0 || p.Panes > maxPanes:
		return nil, &PaneCountError{Count: p.Panes, Reason: fmt.Sprintf("supported range is 1 to %d", maxPanes)}
	}

	lf := LightFactor(p.OpeningWidth, p.FrameWidth, p.Panes)
	if min := cfg.minLightFactor(); lf < min {
		return nil, &LightFactorError{Panes: p.Panes, Factor: lf, Min: min}
	}

	// Frame members are square: one value serves as both horizontal and
	// vertical border.
	frameW := p.FrameWidth
	frameH := p.FrameWidth

	// Residual opening once the fixed frame's borders are subtracted.
	extentW := frameW * 2
	extentH := frameH * 2
	resW := p.OpeningWidth - extentW
	resH := p.OpeningHeight - extentH

	outer, err := BuildFrame(k, p.OpeningWidth, p.OpeningHeight, frameW, frameH, p.FrameThickness)
	if err != nil {
		return nil, fmt.Errorf("fixed frame: %w", err)
	}
	parts := []Part{{Name: "frame", Solid: outer}}

	// Glass panels are recessed to the mid-depth of the frame.
	glassDepth := (p.FrameThickness - p.GlassThickness) / 2

	if p.Panes == 1 {
		sash, err := BuildFrame(k, resW, resH, frameW, frameH, p.FrameThickness)
		if err != nil {
			return nil, fmt.Errorf("sash: %w", err)
		}
		sash = k.Translate(sash, kernel.Vec3{Z: frameH})

		glass, err := BuildGlass(k, resW, resH, extentW, extentH, cfg.GlassReveal, p.GlassThickness)
		if err != nil {
			return nil, err
		}
		glass = k.Translate(glass, kernel.Vec3{Y: glassDepth})

		parts = append(parts,
			Part{Name: "sash", Solid: sash},
			Part{Name: "glass", Solid: glass})
	} else {
		// Partition the residual width into equal bays, left to right.
		bayW := resW / float64(p.Panes)
		for i := 1; i <= p.Panes; i++ {
			ofx := -resW/2 + bayW/2 + float64(i-1)*bayW

			sash, err := BuildFrame(k, bayW, resH, frameW, frameH, p.FrameThickness)
			if err != nil {
				return nil, fmt.Errorf("bay %d sash: %w", i, err)
			}
			sash = k.Translate(sash, kernel.Vec3{X: ofx, Z: frameH})

			glass, err := BuildGlass(k, bayW, resH, extentW, extentH, cfg.GlassReveal, p.GlassThickness)
			if err != nil {
				return nil, fmt.Errorf("bay %d: %w", i, err)
			}
			glass = k.Translate(glass, kernel.Vec3{X: ofx, Y: glassDepth})

			parts = append(parts,
				Part{Name: fmt.Sprintf("sash-%d", i), Solid: sash},
				Part{Name: fmt.Sprintf("glass-%d", i), Solid: glass})
		}
	}

	solids := make([]kernel.Solid, len(parts))
	for i, part := range parts {
		solids[i] = part.Solid
	}
	return &Assembly{
		Solid:       k.MakeCompound(solids),
		Parts:       parts,
		LightFactor: lf,
	}, nil
}
