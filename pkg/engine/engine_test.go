package engine

import (
	"strings"
	"testing"

	"github.com/karvel/fenestra/pkg/window"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	p, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if p == nil {
		t.Fatal("expected non-nil plan")
	}
	if len(p.Components) != 0 {
		t.Errorf("expected empty plan, got %d components", len(p.Components))
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	p, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if p == nil || len(p.Components) != 0 {
		t.Fatalf("expected empty plan, got %+v", p)
	}
}

func TestEvaluateWindow(t *testing.T) {
	eng := NewEngine()

	source := `
; a two-pane window for the street side
(window :opening-width 2400 :opening-height 1400 :panes 2 :name "street")
`
	p, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if len(p.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(p.Components))
	}

	c := p.Components[0]
	if c.Kind != ComponentWindow {
		t.Errorf("kind = %q, want window", c.Kind)
	}
	if c.Name != "street" {
		t.Errorf("name = %q, want street", c.Name)
	}
	if c.Window.OpeningWidth != 2400 {
		t.Errorf("opening width = %v, want 2400", c.Window.OpeningWidth)
	}
	if c.Window.Panes != 2 {
		t.Errorf("panes = %d, want 2", c.Window.Panes)
	}
	// Unset fields come from the defaults.
	if c.Window.FrameWidth != window.DefaultParams().FrameWidth {
		t.Errorf("frame width = %v, want default", c.Window.FrameWidth)
	}
}

func TestEvaluateSill(t *testing.T) {
	eng := NewEngine()

	source := `(sill :opening-width 1200 :host-thickness 300 :thickness 30
                 :front-protrusion 60 :lateral-protrusion 50 :inner-covering 20)`
	p, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if len(p.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(p.Components))
	}
	c := p.Components[0]
	if c.Kind != ComponentSill {
		t.Errorf("kind = %q, want sill", c.Kind)
	}
	if c.Name != "sill-1" {
		t.Errorf("anonymous name = %q, want sill-1", c.Name)
	}
	if c.Sill.FrontProtrusion != 60 {
		t.Errorf("front protrusion = %v, want 60", c.Sill.FrontProtrusion)
	}
}

func TestEvaluateMultipleComponents(t *testing.T) {
	eng := NewEngine()

	source := `
(def w 900)
(window :opening-width w :panes 1 :name "left")
(window :opening-width w :panes 1 :name "right")
(sill :opening-width w :host-thickness 300 :thickness 30 :name "ledge")
`
	p, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if len(p.Components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(p.Components))
	}
	if p.Components[1].Name != "right" {
		t.Errorf("second component name = %q", p.Components[1].Name)
	}
	if p.Components[2].Kind != ComponentSill {
		t.Errorf("third component kind = %q", p.Components[2].Kind)
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()

	p, evalErrs, err := eng.Evaluate("(window :panes")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil plan on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
}

func TestEvaluateInvalidParams(t *testing.T) {
	eng := NewEngine()

	p, evalErrs, err := eng.Evaluate("(window :opening-width -5)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil plan on invalid parameters")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
	found := false
	for _, e := range evalErrs {
		if strings.Contains(e.Message, "opening_width") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error mentioning opening_width, got %v", evalErrs)
	}
}

func TestEvaluateFreshEnvironment(t *testing.T) {
	eng := NewEngine()

	// Definitions do not leak between evaluations.
	if _, evalErrs, err := eng.Evaluate("(def w 900)"); err != nil || len(evalErrs) > 0 {
		t.Fatalf("setup eval failed: %v %v", evalErrs, err)
	}
	p, evalErrs, err := eng.Evaluate("(window :opening-width w)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if p != nil || len(evalErrs) == 0 {
		t.Errorf("expected undefined symbol error, got plan=%v errs=%v", p, evalErrs)
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", "(window :panes 2)", `(window "__kw_panes" 2)`},
		{"kebab keyword", ":opening-width", `"__kw_opening-width"`},
		{"kebab identifier", "(light-factor 1200)", "(light_factor 1200)"},
		{"minus stays", "(- 10 3)", "(- 10 3)"},
		{"string untouched", `"a-b :c"`, `"a-b :c"`},
		{"comment", "; note\n(+ 1 2)", "// note\n(+ 1 2)"},
		{"assignment", "x := 5", "x := 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseZygomysError(t *testing.T) {
	errs := parseZygomysError(errString("Error on line 3: unexpected token"))
	if len(errs) != 1 || errs[0].Line != 3 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Message != "unexpected token" {
		t.Errorf("message = %q", errs[0].Message)
	}

	errs = parseZygomysError(errString("something unstructured"))
	if len(errs) != 1 || errs[0].Line != 0 {
		t.Fatalf("got %v", errs)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
