// Package commands implements the CLI commands for the remake build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/remake/internal/app"
	"go.trai.ch/remake/internal/build"
)

// Application represents the application logic the commands drive.
type Application interface {
	Run(ctx context.Context, script io.Reader, opts app.RunOptions) error
	Build(ctx context.Context, targets []string, opts app.BuildOptions) error
	Graph(ctx context.Context, w io.Writer, script io.Reader, opts app.GraphOptions) error
	ConfigureLogging(verbose, jsonLogs bool)
	ConfigureOutput(stdout, stderr io.Writer)
}

// CLI represents the command line interface for remake.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "remake",
		Short:         "Rebuild stale targets of a dependency graph on a logical clock",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags come first so -v stays with --verbose.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the project file (default \"remake.yaml\")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.ConfigureOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		c.app.ConfigureLogging(verbose, jsonLogs)
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the stream scripts are read from when none is named.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// traceWriter returns stderr when --trace is set.
func traceWriter(cmd *cobra.Command) io.Writer {
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		return cmd.ErrOrStderr()
	}
	return nil
}
