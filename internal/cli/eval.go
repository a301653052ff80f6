package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karvel/fenestra/pkg/engine"
	"github.com/karvel/fenestra/pkg/export"
	"github.com/karvel/fenestra/pkg/kernel/sdfx"
	"github.com/karvel/fenestra/pkg/tessellate"
	"github.com/karvel/fenestra/pkg/window"
)

// newEvalCmd creates the eval command, which runs a fenestra Lisp script
// and exports one STL per declared component.
func newEvalCmd() *cobra.Command {
	var outDir string
	minLightFactor := window.DefaultMinLightFactor

	cmd := &cobra.Command{
		Use:   "eval <script.fen>",
		Short: "Evaluate a script and export its components as STL",
		Long: `Evaluate a fenestra Lisp script and export one STL file per
declared component.

A script declares windows and sills:

  ; south facade
  (window :opening-width 2400 :panes 2 :name "south")
  (sill :opening-width 2400 :host-thickness 300 :thickness 30 :name "south-sill")`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			eng := engine.NewEngine()
			plan, evalErrs, err := eng.Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					logger.Error("script error", "err", e.Error())
				}
				return fmt.Errorf("%d script error(s)", len(evalErrs))
			}
			logger.Info("evaluated script", "components", len(plan.Components))

			k := sdfx.New()
			cfg := window.Config{MinLightFactor: minLightFactor}
			for _, c := range plan.Components {
				sub := &engine.Plan{Components: []engine.Component{c}}
				parts, err := sub.Build(k, cfg)
				if err != nil {
					return err
				}
				meshes, err := tessellate.Parts(parts, k)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, sanitize(c.Name)+".stl")
				if err := export.SaveSTL(path, meshes); err != nil {
					return err
				}
				logger.Info("wrote STL", "component", c.Name, "path", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", ".", "directory for STL output")
	cmd.Flags().Float64Var(&minLightFactor, "min-light-factor", minLightFactor, "minimum glazed fraction before a window build aborts")
	return cmd
}

// sanitize makes a component name safe for use as a file name.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, name)
}
