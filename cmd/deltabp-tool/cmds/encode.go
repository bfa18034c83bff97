package cmds

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraugster/deltabp"
)

var (
	encodeWidth          string
	encodeBlockSize      int
	encodeMiniBlockSize  int
	encodeOutputFileName string
)

func init() {
	encodeCmd.Flags().StringVar(&encodeWidth, "width", "i32", "value width: i32 or i64")
	encodeCmd.Flags().IntVar(&encodeBlockSize, "block-size", 128, "values per block")
	encodeCmd.Flags().IntVar(&encodeMiniBlockSize, "miniblock-size", 32, "values per miniblock")
	encodeCmd.Flags().StringVar(&encodeOutputFileName, "output", "", "output file; stdout if empty")
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [input-file]",
	Short: "Encode decimal integers (one per line) into a DELTA_BINARY_PACKED stream",
	Run: func(cmd *cobra.Command, args []string) {
		if err := lookupWidth(encodeWidth); err != nil {
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

		values, err := readIntLines(in)
		if err != nil {
			log.Fatalf("Reading input failed: %q", err)
		}

		out := os.Stdout
		if encodeOutputFileName != "" {
			f, err := os.Create(encodeOutputFileName)
			if err != nil {
				log.Fatalf("Can not create output file: %q", err)
			}
			defer f.Close()
			out = f
		}

		switch encodeWidth {
		case "i32":
			vs := make([]int32, len(values))
			for i, v := range values {
				vs[i] = int32(v)
			}
			if err := deltabp.EncodeI32(vs, out, encodeBlockSize, encodeMiniBlockSize); err != nil {
				log.Fatalf("Encoding failed: %q", err)
			}
		case "i64":
			if err := deltabp.EncodeI64(values, out, encodeBlockSize, encodeMiniBlockSize); err != nil {
				log.Fatalf("Encoding failed: %q", err)
			}
		}
	},
}
