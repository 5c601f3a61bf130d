package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clear: wipe every record in the session namespace.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every record in the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Store.Clear(); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
}
