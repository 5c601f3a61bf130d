package commands

import (
	"os"

	"github.com/spf13/cobra"

	"mqstore/internal/domain"
)

// cat <key>: print a record to stdout, decoded unless --raw.
func catCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "cat <key>",
		Short: "Print one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := wire.Store.Get(domain.Key(args[0]))
			if err != nil {
				return err
			}
			if !raw {
				if rec, err = wire.Transform.Decode(rec); err != nil {
					return err
				}
			}
			_, err = os.Stdout.Write(rec)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print stored bytes without decoding")
	return cmd
}
