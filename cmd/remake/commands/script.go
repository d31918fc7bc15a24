package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// openScript opens the script named by args, or stdin when args is empty or "-".
func openScript(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open script"), "path", args[0])
	}
	return f, nil
}
