package cmds

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deltabp-tool",
	Short: "deltabp-tool encodes, decodes and inspects DELTA_BINARY_PACKED streams",
}

// Execute tries to find and execute the command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %q", err)
	}
}
