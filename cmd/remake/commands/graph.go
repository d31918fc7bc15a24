package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/remake/internal/app"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [script|-]",
		Short: "Print the dependency graph",
		Long: `Print the dependency graph declared by the project file and, when given,
a script. The dot format is Graphviz; the order format lists one target per
line with dependencies first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			switch ports.GraphFormat(format) {
			case ports.GraphFormatDOT, ports.GraphFormatOrder:
			default:
				return zerr.With(zerr.New("unsupported graph format"), "format", format)
			}

			var script io.Reader
			if len(args) > 0 {
				rc, err := openScript(cmd, args)
				if err != nil {
					return err
				}
				defer func() { _ = rc.Close() }()
				script = rc
			}

			return c.app.Graph(cmd.Context(), cmd.OutOrStdout(), script, app.GraphOptions{
				ConfigPath: configPath(cmd),
				Format:     ports.GraphFormat(format),
			})
		},
	}
	cmd.Flags().StringP("format", "f", string(ports.GraphFormatDOT), "Output format: dot or order")
	return cmd
}
