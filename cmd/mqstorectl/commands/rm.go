package commands

import (
	"github.com/spf13/cobra"

	"mqstore/internal/domain"
)

// rm <key>: remove one record. Removing an absent key succeeds.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <key>",
		Short: "Remove one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Store.Remove(domain.Key(args[0]))
		},
	}
}
