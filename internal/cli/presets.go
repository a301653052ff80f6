package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karvel/fenestra/pkg/config"
)

// newPresetsCmd creates the presets command, which lists the presets a
// TOML file defines with their resolved dimensions.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets <file.toml>",
		Short: "List the window presets defined in a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}
			for _, name := range f.Names() {
				p, err := f.Params(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %gx%g mm, %d pane(s), frame %g mm\n",
					name, p.OpeningWidth, p.OpeningHeight, p.Panes, p.FrameWidth)
			}
			return nil
		},
	}
}
