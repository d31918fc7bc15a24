package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/remake/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script|-]",
		Short: "Apply the commands of a script to the graph",
		Long: `Apply the commands of a script, one per line:

  app: main.o lib.o   declare that app depends on main.o and lib.o
  touch main.c        update a leaf target
  build app           rebuild a target and whatever it needs

The script is read from standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := openScript(cmd, args)
			if err != nil {
				return err
			}
			defer func() { _ = script.Close() }()

			strict, _ := cmd.Flags().GetBool("strict")
			summary, _ := cmd.Flags().GetBool("summary")

			return c.app.Run(cmd.Context(), script, app.RunOptions{
				ConfigPath: configPath(cmd),
				Strict:     strict,
				Summary:    summary,
				Trace:      traceWriter(cmd),
			})
		},
	}
	cmd.Flags().Bool("strict", false, "Stop at the first command the graph rejects")
	cmd.Flags().BoolP("summary", "s", false, "Print the final state of the graph")
	cmd.Flags().Bool("trace", false, "Replay the recorded rebuild requests to stderr")
	return cmd
}
