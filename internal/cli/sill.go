package cli

import (
	"github.com/spf13/cobra"

	"github.com/karvel/fenestra/pkg/export"
	"github.com/karvel/fenestra/pkg/kernel/sdfx"
	"github.com/karvel/fenestra/pkg/tessellate"
	"github.com/karvel/fenestra/pkg/window"
)

// newSillCmd creates the sill command.
func newSillCmd() *cobra.Command {
	params := window.SillParams{
		OpeningWidth:      1200,
		HostThickness:     300,
		Thickness:         30,
		FrontProtrusion:   60,
		LateralProtrusion: 50,
		InnerCovering:     20,
	}
	output := "sill.stl"

	cmd := &cobra.Command{
		Use:   "sill",
		Short: "Build a window sill and export it as STL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			k := sdfx.New()
			solid, err := window.BuildSill(k, params)
			if err != nil {
				return err
			}
			min, max := solid.BoundingBox()
			logger.Info("built sill",
				"width", max.X-min.X,
				"depth", max.Y-min.Y,
				"thickness", max.Z-min.Z)

			meshes, err := tessellate.Parts([]window.Part{{Name: "sill", Solid: solid}}, k)
			if err != nil {
				return err
			}
			if err := export.SaveSTL(output, meshes); err != nil {
				return err
			}
			logger.Info("wrote STL", "path", output)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&params.OpeningWidth, "opening-width", params.OpeningWidth, "opening width in mm")
	fl.Float64Var(&params.HostThickness, "host-thickness", params.HostThickness, "host wall depth in mm")
	fl.Float64Var(&params.Thickness, "thickness", params.Thickness, "slab thickness in mm")
	fl.Float64Var(&params.FrontProtrusion, "front-protrusion", params.FrontProtrusion, "overhang past the outer wall face in mm")
	fl.Float64Var(&params.LateralProtrusion, "lateral-protrusion", params.LateralProtrusion, "overhang past each jamb in mm")
	fl.Float64Var(&params.InnerCovering, "inner-covering", params.InnerCovering, "setback from the inner wall face in mm")
	fl.StringVarP(&output, "output", "o", output, "output STL path")

	return cmd
}
