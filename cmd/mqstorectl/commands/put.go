package commands

import (
	"os"

	"github.com/spf13/cobra"

	"mqstore/internal/domain"
)

// put <key> <file>...: store files as the buffers of one record.
func putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <file>...",
		Short: "Store files as one record (testing aid)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs := make([][]byte, 0, len(args)-1)
			for _, path := range args[1:] {
				b, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				bufs = append(bufs, b)
			}
			bufs, err := wire.Transform.Encode(bufs)
			if err != nil {
				return err
			}
			return wire.Store.Put(domain.Key(args[0]), bufs)
		},
	}
}
