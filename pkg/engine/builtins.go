package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/karvel/fenestra/pkg/window"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms fenestra Lisp source code before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: light-factor -> light_factor
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// setDim assigns a keyword value to a float field if the keyword is present.
func setDim(pa kwArgs, key, fn string, dst *float64) error {
	v, ok := pa.kw[key]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	*dst = f
	return nil
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpComponentRef wraps a plan component so scripts can hold a handle
// to what they declared.
type sexpComponentRef struct {
	kind ComponentKind
	name string
}

func (c *sexpComponentRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", c.kind, c.name)
}
func (c *sexpComponentRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the fenestra DSL builtins into a zygomys
// environment. The builtins append components to the provided plan
// during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, plan *Plan) {

	// -----------------------------------------------------------------------
	// (window :opening-width 1200 :opening-height 1400 :frame-width 50
	//         :frame-thickness 50 :glass-thickness 21 :panes 2
	//         :name "street")
	//
	// Unset dimensions fall back to the defaults.
	// -----------------------------------------------------------------------
	env.AddFunction("window", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p := window.DefaultParams()

		for _, dim := range []struct {
			key string
			dst *float64
		}{
			{"opening-width", &p.OpeningWidth},
			{"opening-height", &p.OpeningHeight},
			{"opening-thickness", &p.OpeningThickness},
			{"frame-width", &p.FrameWidth},
			{"frame-thickness", &p.FrameThickness},
			{"glass-thickness", &p.GlassThickness},
		} {
			if err := setDim(pa, dim.key, "window", dim.dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		if v, ok := pa.kw["panes"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("window: panes: %w", err)
			}
			p.Panes = n
		}

		var cname string
		if v, ok := pa.kw["name"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("window: name: %w", err)
			}
			cname = s
		}

		if err := p.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("window: %w", err)
		}

		c := Component{Kind: ComponentWindow, Name: cname, Window: p}
		plan.add(c)
		return &sexpComponentRef{kind: ComponentWindow, name: plan.Components[len(plan.Components)-1].Name}, nil
	})

	// -----------------------------------------------------------------------
	// (sill :opening-width 1200 :host-thickness 300 :thickness 30
	//       :front-protrusion 60 :lateral-protrusion 50
	//       :inner-covering 20 :name "street-sill")
	// -----------------------------------------------------------------------
	env.AddFunction("sill", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var sp window.SillParams

		for _, dim := range []struct {
			key string
			dst *float64
		}{
			{"opening-width", &sp.OpeningWidth},
			{"host-thickness", &sp.HostThickness},
			{"thickness", &sp.Thickness},
			{"front-protrusion", &sp.FrontProtrusion},
			{"lateral-protrusion", &sp.LateralProtrusion},
			{"inner-covering", &sp.InnerCovering},
		} {
			if err := setDim(pa, dim.key, "sill", dim.dst); err != nil {
				return zygo.SexpNull, err
			}
		}

		var cname string
		if v, ok := pa.kw["name"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sill: name: %w", err)
			}
			cname = s
		}

		if err := sp.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("sill: %w", err)
		}

		c := Component{Kind: ComponentSill, Name: cname, Sill: sp}
		plan.add(c)
		return &sexpComponentRef{kind: ComponentSill, name: plan.Components[len(plan.Components)-1].Name}, nil
	})
}
