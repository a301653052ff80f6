package window

// DefaultMinLightFactor is the minimum glazed fraction of the opening
// width. Builds that fall below it are rejected before any geometry is
// produced.
const DefaultMinLightFactor = 0.40

// Config carries build policy separate from the dimension set. The zero
// value is usable: a zero MinLightFactor falls back to the default, and a
// zero GlassReveal seats the glass flush against the sash rebate.
type Config struct {
	// MinLightFactor is the abort threshold for the glazed fraction.
	MinLightFactor float64 `json:"min_light_factor"`

	// GlassReveal is the margin by which each glass panel overlaps into
	// the sash rebate on every side.
	GlassReveal float64 `json:"glass_reveal"`
}

// DefaultConfig returns the stock build policy.
func DefaultConfig() Config {
	return Config{MinLightFactor: DefaultMinLightFactor}
}

func (c Config) minLightFactor() float64 {
	if c.MinLightFactor == 0 {
		return DefaultMinLightFactor
	}
	return c.MinLightFactor
}
