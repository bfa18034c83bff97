package cmds

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readIntLines reads one decimal integer per non-blank line from r.
func readIntLines(r io.Reader) ([]int64, error) {
	var out []int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", line, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeIntLines(w io.Writer, values []int64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// lookupWidth validates the --width flag, matching the acceptableSuffix
// style lookup table the parquet-tool helpers use for human-readable
// byte sizes: a small fixed set of allowed string values.
func lookupWidth(width string) error {
	switch width {
	case "i32", "i64":
		return nil
	default:
		return fmt.Errorf("invalid width %q: must be i32 or i64", width)
	}
}
