package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karvel/fenestra/pkg/config"
	"github.com/karvel/fenestra/pkg/export"
	"github.com/karvel/fenestra/pkg/kernel/sdfx"
	"github.com/karvel/fenestra/pkg/tessellate"
	"github.com/karvel/fenestra/pkg/window"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	params         window.Params
	minLightFactor float64
	presetsFile    string
	preset         string
	output         string
}

// newBuildCmd creates the build command. Dimensions default to the stock
// parameter set and can be overridden per flag, or loaded wholesale from
// a named preset in a TOML file.
func newBuildCmd() *cobra.Command {
	opts := buildOpts{
		params:         window.DefaultParams(),
		minLightFactor: window.DefaultMinLightFactor,
		output:         "window.stl",
	}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a window assembly and export it as STL",
		Long: `Build a window assembly (fixed frame, sashes, glass panels) and
export it as a binary STL mesh.

Examples:
  fenestra build --opening-width 1200 --opening-height 1400 --panes 2
  fenestra build --presets presets.toml --preset casement -o casement.stl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if opts.preset != "" {
				if opts.presetsFile == "" {
					return fmt.Errorf("--preset requires --presets")
				}
				f, err := config.Load(opts.presetsFile)
				if err != nil {
					return err
				}
				p, err := f.Params(opts.preset)
				if err != nil {
					return err
				}
				opts.params = p
				logger.Debug("loaded preset", "name", opts.preset, "file", opts.presetsFile)
			}

			k := sdfx.New()
			cfg := window.Config{MinLightFactor: opts.minLightFactor}

			asm, err := window.BuildWindow(k, cfg, opts.params)
			if err != nil {
				return err
			}
			logger.Info("built window",
				"parts", len(asm.Parts),
				"panes", opts.params.Panes,
				"light_factor", fmt.Sprintf("%.3f", asm.LightFactor))

			meshes, err := tessellate.Parts(asm.Parts, k)
			if err != nil {
				return err
			}
			if err := export.SaveSTL(opts.output, meshes); err != nil {
				return err
			}
			logger.Info("wrote STL", "path", opts.output, "meshes", len(meshes))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&opts.params.OpeningWidth, "opening-width", opts.params.OpeningWidth, "opening width in mm")
	fl.Float64Var(&opts.params.OpeningHeight, "opening-height", opts.params.OpeningHeight, "opening height in mm")
	fl.Float64Var(&opts.params.OpeningThickness, "opening-thickness", opts.params.OpeningThickness, "host wall depth in mm")
	fl.Float64Var(&opts.params.FrameWidth, "frame-width", opts.params.FrameWidth, "frame member face width in mm")
	fl.Float64Var(&opts.params.FrameThickness, "frame-thickness", opts.params.FrameThickness, "frame extrusion depth in mm")
	fl.Float64Var(&opts.params.GlassThickness, "glass-thickness", opts.params.GlassThickness, "glass panel thickness in mm")
	fl.IntVar(&opts.params.Panes, "panes", opts.params.Panes, "number of openable bays (1-9)")
	fl.Float64Var(&opts.minLightFactor, "min-light-factor", opts.minLightFactor, "minimum glazed fraction before the build aborts")
	fl.StringVar(&opts.presetsFile, "presets", "", "path to a TOML preset file")
	fl.StringVar(&opts.preset, "preset", "", "preset name to load from --presets")
	fl.StringVarP(&opts.output, "output", "o", opts.output, "output STL path")

	return cmd
}
