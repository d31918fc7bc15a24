package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/remake/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Rebuild targets declared in the project file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			touch, _ := cmd.Flags().GetStringSlice("touch")
			strict, _ := cmd.Flags().GetBool("strict")
			summary, _ := cmd.Flags().GetBool("summary")

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				ConfigPath: configPath(cmd),
				Touch:      touch,
				Strict:     strict,
				Summary:    summary,
				Trace:      traceWriter(cmd),
			})
		},
	}
	cmd.Flags().StringSliceP("touch", "t", nil, "Touch these leaf targets before building")
	cmd.Flags().Bool("strict", false, "Stop at the first command the graph rejects")
	cmd.Flags().BoolP("summary", "s", false, "Print the final state of the graph")
	cmd.Flags().Bool("trace", false, "Replay the recorded rebuild requests to stderr")
	return cmd
}
