package cmds

import (
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/fraugster/deltabp"
)

var inspectWidth string

func init() {
	inspectCmd.Flags().StringVar(&inspectWidth, "width", "i32", "value width: i32 or i64")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [input-file]",
	Short: "Print a DELTA_BINARY_PACKED stream's header fields without decoding its values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := lookupWidth(inspectWidth); err != nil {
			log.Fatalf("%v", err)
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("Can not open input file: %q", err)
			}
			defer f.Close()
			in = f
		}

		data, err := io.ReadAll(in)
		if err != nil {
			log.Fatalf("Reading input failed: %q", err)
		}

		var info deltabp.HeaderInfo
		switch inspectWidth {
		case "i32":
			info, err = deltabp.InspectI32Header(data)
		case "i64":
			info, err = deltabp.InspectI64Header(data)
		}
		if err != nil {
			log.Fatalf("Reading header failed: %q", err)
		}

		spew.Dump(info)
	},
}
