package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fleetgateway/internal/domain/adapter"

	"github.com/spf13/cobra"
)

var ErrUnknownKind = errors.New("unknown adapter kind")

func newAdaptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adapt <kind> [file]",
		Short: "Reshape an upstream response offline",
		Long: fmt.Sprintf(`Read an upstream JSON response from file, or stdin when no file is
given, run it through one adapter and print the legacy shape.

Kinds: %s`, kindList()),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := adapter.Lookup(adapter.Kind(args[0]))
			if !ok {
				return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownKind, args[0], kindList())
			}

			in := cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			doc, err := adapter.Decode(data)
			if err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fn(doc))
		},
	}
}

func kindList() string {
	kinds := adapter.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
