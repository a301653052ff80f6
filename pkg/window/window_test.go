package window

import (
	"errors"
	"math"
	"testing"

	"github.com/karvel/fenestra/pkg/kernel"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestBuildWindowSinglePane(t *testing.T) {
	k := &stubKernel{}
	asm, err := BuildWindow(k, DefaultConfig(), DefaultParams())
	if err != nil {
		t.Fatalf("BuildWindow failed: %v", err)
	}

	// One fixed frame, one sash, one glass panel.
	if len(asm.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(asm.Parts))
	}
	wantNames := []string{"frame", "sash", "glass"}
	for i, p := range asm.Parts {
		if p.Name != wantNames[i] {
			t.Errorf("part %d named %q, want %q", i, p.Name, wantNames[i])
		}
	}

	// Flattened: 4 legs per frame compound + 1 glass solid.
	if leaves := kernel.Flatten(asm.Solid); len(leaves) != 9 {
		t.Fatalf("flattened compound has %d solids, want 9", len(leaves))
	}

	// The sash's outer extent equals the residual opening exactly,
	// stepped up by one frame height.
	min, max := asm.Parts[1].Solid.BoundingBox()
	if !near(max.X-min.X, 1100) || !near(max.Z-min.Z, 1300) {
		t.Errorf("sash extent %gx%g, want 1100x1300", max.X-min.X, max.Z-min.Z)
	}
	if !near(min.Z, 50) {
		t.Errorf("sash base at z=%g, want 50", min.Z)
	}

	// The glass sits inside the sash rebate, recessed to mid-depth.
	gmin, gmax := asm.Parts[2].Solid.BoundingBox()
	if !near(gmax.X-gmin.X, 1000) {
		t.Errorf("glass width %g, want 1000", gmax.X-gmin.X)
	}
	if !near(gmin.Y, (50-21)/2.0) || !near(gmax.Y, (50-21)/2.0+21) {
		t.Errorf("glass depth spans %g..%g, want recessed to mid-frame", gmin.Y, gmax.Y)
	}
}

func TestBuildWindowBayWidthsSumToResidual(t *testing.T) {
	k := &stubKernel{}
	p := DefaultParams()
	p.OpeningWidth = 2400 // keep the light factor above threshold up to 9 bays
	p.FrameWidth = 40
	resW := p.OpeningWidth - 2*p.FrameWidth

	for panes := 2; panes <= 9; panes++ {
		p.Panes = panes
		asm, err := BuildWindow(k, DefaultConfig(), p)
		if err != nil {
			t.Fatalf("panes=%d: BuildWindow failed: %v", panes, err)
		}
		sum := 0.0
		for _, part := range asm.Parts[1:] { // skip fixed frame
			min, max := part.Solid.BoundingBox()
			if len(part.Name) >= 4 && part.Name[:4] == "sash" {
				sum += max.X - min.X
			}
		}
		if math.Abs(sum-resW) > 1e-6 {
			t.Errorf("panes=%d: bay widths sum to %g, want residual %g", panes, sum, resW)
		}
	}
}

func TestBuildWindowLightFactorBoundary(t *testing.T) {
	// opening_w=1200, frame_w=50: light factor drops below 0.40 exactly at
	// 7 panes ((1200-800)/1200 = 0.333); 6 panes still builds (0.4167).
	k := &stubKernel{}
	p := DefaultParams()

	tests := []struct {
		panes     int
		wantBuild bool
	}{
		{1, true},
		{4, true}, // 0.583
		{6, true}, // 0.4167
		{7, false},
		{9, false}, // 0.1667
	}
	for _, tt := range tests {
		p.Panes = tt.panes
		asm, err := BuildWindow(k, DefaultConfig(), p)
		if tt.wantBuild {
			if err != nil {
				t.Errorf("panes=%d: expected build, got %v", tt.panes, err)
			}
			continue
		}
		if asm != nil {
			t.Errorf("panes=%d: got geometry despite light factor abort", tt.panes)
		}
		var lfErr *LightFactorError
		if !errors.As(err, &lfErr) {
			t.Errorf("panes=%d: expected LightFactorError, got %v", tt.panes, err)
		}
	}
}

func TestBuildWindowUnsupportedPaneCounts(t *testing.T) {
	k := &stubKernel{}
	p := DefaultParams()

	for _, panes := range []int{0, 10, -1} {
		p.Panes = panes
		asm, err := BuildWindow(k, DefaultConfig(), p)
		if asm != nil {
			t.Errorf("panes=%d: got geometry, want unsupported error", panes)
		}
		var paneErr *PaneCountError
		if !errors.As(err, &paneErr) {
			t.Errorf("panes=%d: expected PaneCountError, got %v", panes, err)
			continue
		}
		if paneErr.Count != panes {
			t.Errorf("panes=%d: error reports count %d", panes, paneErr.Count)
		}
	}
}

func TestBuildWindowBaySymmetry(t *testing.T) {
	k := &stubKernel{}
	p := DefaultParams()
	p.OpeningWidth = 2400
	p.FrameWidth = 40

	for _, panes := range []int{2, 4, 6} {
		p.Panes = panes
		asm, err := BuildWindow(k, DefaultConfig(), p)
		if err != nil {
			t.Fatalf("panes=%d: BuildWindow failed: %v", panes, err)
		}

		// Collect sash bay centers in order.
		var centers []float64
		for _, part := range asm.Parts[1:] {
			if len(part.Name) >= 4 && part.Name[:4] == "sash" {
				min, max := part.Solid.BoundingBox()
				centers = append(centers, (min.X+max.X)/2)
			}
		}
		if len(centers) != panes {
			t.Fatalf("panes=%d: found %d sashes", panes, len(centers))
		}
		for i := 0; i < panes/2; i++ {
			if !near(centers[i], -centers[panes-1-i]) {
				t.Errorf("panes=%d: bay %d offset %g not mirrored by bay %d offset %g",
					panes, i+1, centers[i], panes-i, centers[panes-1-i])
			}
		}
	}
}

func TestBuildWindowIdempotent(t *testing.T) {
	k := &stubKernel{}
	p := DefaultParams()
	p.Panes = 3
	p.OpeningWidth = 1800

	a, err := BuildWindow(k, DefaultConfig(), p)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	b, err := BuildWindow(k, DefaultConfig(), p)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}

	amin, amax := a.Solid.BoundingBox()
	bmin, bmax := b.Solid.BoundingBox()
	if amin != bmin || amax != bmax {
		t.Errorf("repeated builds differ: %v..%v vs %v..%v", amin, amax, bmin, bmax)
	}
	if a.LightFactor != b.LightFactor {
		t.Errorf("repeated builds report different light factors")
	}
}

func TestBuildWindowRejectsBadParams(t *testing.T) {
	k := &stubKernel{}
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero width", func(p *Params) { p.OpeningWidth = 0 }},
		{"negative height", func(p *Params) { p.OpeningHeight = -1 }},
		{"zero frame width", func(p *Params) { p.FrameWidth = 0 }},
		{"zero glass", func(p *Params) { p.GlassThickness = 0 }},
		{"zero wall", func(p *Params) { p.OpeningThickness = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := BuildWindow(k, DefaultConfig(), p)
			var paramErr *ParamError
			if !errors.As(err, &paramErr) {
				t.Errorf("expected ParamError, got %v", err)
			}
		})
	}
}

func TestBuildWindowDegenerateFrame(t *testing.T) {
	// A frame member wider than half the opening inverts the inner
	// rectangle; the build must fail before reaching the kernel. The
	// light factor gate is bypassed with a permissive config so the
	// degenerate check itself is exercised.
	k := &stubKernel{}
	p := DefaultParams()
	p.OpeningWidth = 190
	p.OpeningHeight = 190
	p.FrameWidth = 95

	cfg := Config{MinLightFactor: -1}
	_, err := BuildWindow(k, cfg, p)
	var degenErr *DegenerateGeometryError
	if !errors.As(err, &degenErr) {
		t.Fatalf("expected DegenerateGeometryError, got %v", err)
	}
}

func TestLightFactor(t *testing.T) {
	// frame_ov_wid = n*2*fw + 2*fw; the documented example values.
	if got := LightFactor(1200, 50, 4); !near(got, (1200-500)/1200.0) {
		t.Errorf("LightFactor(1200, 50, 4) = %g", got)
	}
	if got := LightFactor(1200, 50, 9); !near(got, (1200-1000)/1200.0) {
		t.Errorf("LightFactor(1200, 50, 9) = %g", got)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"param", &ParamError{Field: "x"}, "invalid_parameter"},
		{"light", &LightFactorError{}, "light_factor"},
		{"panes", &PaneCountError{}, "unsupported_panes"},
		{"degenerate", &DegenerateGeometryError{}, "degenerate_geometry"},
		{"other", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind() = %q, want %q", got, tt.want)
			}
		})
	}
}
