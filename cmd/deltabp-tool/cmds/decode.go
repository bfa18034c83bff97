package cmds

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraugster/deltabp"
)

var decodeWidth string

func init() {
	decodeCmd.Flags().StringVar(&decodeWidth, "width", "i32", "value width: i32 or i64")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [input-file]",
	Short: "Decode a DELTA_BINARY_PACKED stream into decimal integers, one per line",
	Run: func(cmd *cobra.Command, args []string) {
		if err := lookupWidth(decodeWidth); err != nil {
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

		var out []int64
		switch decodeWidth {
		case "i32":
			info, err := deltabp.InspectI32Header(data)
			if err != nil {
				log.Fatalf("Reading header failed: %q", err)
			}
			dest := make([]int32, info.TotalValueCount)
			if _, _, err := deltabp.DecodeI32(data, dest); err != nil {
				log.Fatalf("Decoding failed: %q", err)
			}
			out = make([]int64, len(dest))
			for i, v := range dest {
				out[i] = int64(v)
			}
		case "i64":
			info, err := deltabp.InspectI64Header(data)
			if err != nil {
				log.Fatalf("Reading header failed: %q", err)
			}
			dest := make([]int64, info.TotalValueCount)
			if _, _, err := deltabp.DecodeI64(data, dest); err != nil {
				log.Fatalf("Decoding failed: %q", err)
			}
			out = dest
		}

		if err := writeIntLines(os.Stdout, out); err != nil {
			log.Fatalf("Writing output failed: %q", err)
		}
	},
}
